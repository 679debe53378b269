package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/AhmedAllam0/pingpong/internal/game"
)

const (
	BallChar     = '█' // █
	PaddleChar   = '█' // █
	TrailChar    = '·' // ·
	ParticleChar = '•' // •
	NetChar      = '│' // │
)

// Renderer draws the engine snapshots onto the terminal. The court's
// 800x500 logical units are scaled to whatever cells are available
// below the HUD row.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// courtRect returns the cell region the court maps onto.
func (r *Renderer) courtRect() (x, y, w, h int) {
	sw, sh := r.screen.Size()
	return 1, 2, sw - 2, sh - 4
}

// toCell maps court coordinates to a terminal cell inside the court
// region, applying the shake offset.
func toCell(cx, cy, cw, ch int, snap game.Snapshot, x, y float64, dx, dy int) (int, int) {
	px := cx + int(x/snap.Width*float64(cw-1)) + dx
	py := cy + int(y/snap.Height*float64(ch-1)) + dy
	return px, py
}

// RenderMenu displays the title screen with the current settings.
func (r *Renderer) RenderMenu(snap game.Snapshot) {
	r.screen.Clear()
	sw, sh := r.screen.Size()
	accent := StyleFromColor(snap.Theme.Accent).Bold(true)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	title := "=== PINGPONG ==="
	r.screen.DrawText((sw-len(title))/2, 2, title, accent)

	lines := []string{
		fmt.Sprintf("Mode:         %s  (2 toggles)", snap.Mode),
		fmt.Sprintf("Difficulty:   %s  (d cycles)", snap.Difficulty),
		fmt.Sprintf("Win score:    %d", snap.WinScore),
		fmt.Sprintf("Theme:        %s  (t cycles)", snap.Theme.Name),
		fmt.Sprintf("Adaptive AI:  %v  (a toggles)", snap.AdaptiveAI),
		fmt.Sprintf("Power-ups:    %v  (o toggles)", snap.PowerUpsEnabled),
		fmt.Sprintf("Spawn rate:   %s  (r cycles)", snap.SpawnRate),
	}
	y := 5
	for i, line := range lines {
		r.screen.DrawText(6, y+i, line, StyleFromColor(snap.Theme.CourtLine))
	}

	r.screen.DrawText(6, sh-4, "Press ENTER to start", tcell.StyleDefault.Foreground(tcell.ColorGreen))
	r.screen.DrawText(6, sh-2, "w/s and arrows move - p pauses - q quits", dim)
	r.screen.Show()
}

// RenderGame draws the live court with all cosmetics.
func (r *Renderer) RenderGame(snap game.Snapshot, fx *Effects) {
	r.screen.Clear()
	cx, cy, cw, ch := r.courtRect()
	dx, dy := fx.Offset()

	lineStyle := StyleFromColor(snap.Theme.CourtLine)
	r.screen.DrawBox(cx-1+dx, cy-1+dy, cw+2, ch+2, lineStyle)
	r.screen.DrawVerticalLine(cx+cw/2+dx, cy+dy, cy+ch-1+dy, lineStyle, NetChar)

	r.drawHUD(snap)
	r.drawTrail(snap, fx, cx, cy, cw, ch, dx, dy)
	r.drawPowerUps(snap, cx, cy, cw, ch, dx, dy)
	r.drawPaddles(snap, cx, cy, cw, ch, dx, dy)
	r.drawBall(snap, cx, cy, cw, ch, dx, dy)
	r.drawParticles(snap, fx, cx, cy, cw, ch, dx, dy)

	if snap.ServeSeconds > 0 {
		r.drawServeCountdown(snap)
	}
	if snap.Status == game.StatusPaused {
		r.drawPauseOverlay(snap)
	}

	r.screen.Show()
}

func (r *Renderer) drawHUD(snap game.Snapshot) {
	sw, _ := r.screen.Size()
	leftStyle := StyleFromColor(snap.Theme.LeftPaddle).Bold(true)
	rightStyle := StyleFromColor(snap.Theme.RightPad).Bold(true)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	score := fmt.Sprintf("%d : %d", snap.Left.Score, snap.Right.Score)
	r.screen.DrawText((sw-len(score))/2, 0, score, tcell.StyleDefault.Bold(true))

	leftName, rightName := "Player", "AI"
	if snap.Mode == game.ModeMulti {
		leftName, rightName = "P1", "P2"
	}
	r.screen.DrawText(1, 0, leftName, leftStyle)
	r.screen.DrawText(sw-1-len(rightName), 0, rightName, rightStyle)

	stats := fmt.Sprintf("rally %d  best %d", snap.Rally, snap.MaxRally)
	if snap.Combo > 1 {
		stats += fmt.Sprintf("  combo x%d", snap.Combo)
	}
	r.screen.DrawText(1, 1, stats, dim)

	effects := effectsLine(snap)
	if effects != "" {
		r.screen.DrawText(sw-1-len(effects), 1, effects, dim)
	}
}

// effectsLine formats the active effect timers as compact HUD tags.
func effectsLine(snap game.Snapshot) string {
	out := ""
	add := func(tag string, secs int) {
		if secs > 0 {
			if out != "" {
				out += " "
			}
			out += fmt.Sprintf("%s:%ds", tag, secs)
		}
	}
	add("L+", snap.Effects.Enlarge[game.SideLeft])
	add("L-", snap.Effects.Shrink[game.SideLeft])
	add("R+", snap.Effects.Enlarge[game.SideRight])
	add("R-", snap.Effects.Shrink[game.SideRight])
	add("slow", snap.Effects.Slow)
	add("fast", snap.Effects.Fast)
	return out
}

func (r *Renderer) drawPaddles(snap game.Snapshot, cx, cy, cw, ch, dx, dy int) {
	for _, pv := range []struct {
		p     game.PaddleView
		style tcell.Style
	}{
		{snap.Left, StyleFromColor(snap.Theme.LeftPaddle)},
		{snap.Right, StyleFromColor(snap.Theme.RightPad)},
	} {
		px, topY := toCell(cx, cy, cw, ch, snap, pv.p.X, pv.p.Y-pv.p.Height/2, dx, dy)
		_, botY := toCell(cx, cy, cw, ch, snap, pv.p.X, pv.p.Y+pv.p.Height/2, dx, dy)
		r.screen.DrawVerticalLine(px, topY, botY, pv.style, PaddleChar)
	}
}

func (r *Renderer) drawBall(snap game.Snapshot, cx, cy, cw, ch, dx, dy int) {
	if snap.ServeSeconds > 0 && snap.Tick%20 < 10 {
		return // blink while waiting to serve
	}
	style := StyleFromColor(snap.Theme.Ball)
	if snap.Ball.PowerHit {
		style = StyleFromColor(snap.Theme.Accent).Bold(true)
	}
	bx, by := toCell(cx, cy, cw, ch, snap, snap.Ball.X, snap.Ball.Y, dx, dy)
	r.screen.SetCell(bx, by, style, BallChar)
}

func (r *Renderer) drawTrail(snap game.Snapshot, fx *Effects, cx, cy, cw, ch, dx, dy int) {
	style := StyleFromColor(snap.Theme.CourtLine)
	for _, tp := range fx.Trail {
		tx, ty := toCell(cx, cy, cw, ch, snap, tp.X, tp.Y, dx, dy)
		r.screen.SetCell(tx, ty, style, TrailChar)
	}
}

func (r *Renderer) drawParticles(snap game.Snapshot, fx *Effects, cx, cy, cw, ch, dx, dy int) {
	for _, p := range fx.Particles {
		if p.X < 0 || p.X > snap.Width || p.Y < 0 || p.Y > snap.Height {
			continue
		}
		px, py := toCell(cx, cy, cw, ch, snap, p.X, p.Y, dx, dy)
		r.screen.SetCell(px, py, StyleFromColor(p.Color), ParticleChar)
	}
}

func powerUpGlyph(t game.PowerUpType) rune {
	switch t {
	case game.PowerEnlarge:
		return 'E'
	case game.PowerShrink:
		return 'S'
	case game.PowerSlow:
		return '-'
	case game.PowerFast:
		return '+'
	}
	return '?'
}

func (r *Renderer) drawPowerUps(snap game.Snapshot, cx, cy, cw, ch, dx, dy int) {
	style := StyleFromColor(snap.Theme.PowerUp).Bold(true)
	dim := StyleFromColor(snap.Theme.PowerUp)
	for _, pu := range snap.PowerUps {
		px, py := toCell(cx, cy, cw, ch, snap, pu.X, pu.Y, dx, dy)
		// Blink in the last quarter of the TTL as an expiry warning
		if pu.Fraction < 0.25 && snap.Tick%10 < 5 {
			continue
		}
		r.screen.SetCell(px, py, style, powerUpGlyph(pu.Type))
		r.screen.DrawText(px-1, py+1, fmt.Sprintf("%2ds", pu.Seconds), dim)
	}
}

func (r *Renderer) drawServeCountdown(snap game.Snapshot) {
	sw, sh := r.screen.Size()
	text := fmt.Sprintf("%d", snap.ServeSeconds)
	style := StyleFromColor(snap.Theme.Accent).Bold(true)
	r.screen.DrawText((sw-len(text))/2, sh/2-2, text, style)
}

func (r *Renderer) drawPauseOverlay(snap game.Snapshot) {
	sw, sh := r.screen.Size()
	box := "  PAUSED - press p to resume  "
	x := (sw - len(box)) / 2
	y := sh / 2
	r.screen.FillRect(x-1, y-1, len(box)+2, 3, tcell.StyleDefault, ' ')
	r.screen.DrawBox(x-1, y-1, len(box)+2, 3, StyleFromColor(snap.Theme.Accent))
	r.screen.DrawText(x, y, box, tcell.StyleDefault.Bold(true))
}

// RenderGameOver displays the winner and the match statistics.
func (r *Renderer) RenderGameOver(snap game.Snapshot) {
	r.screen.Clear()
	sw, sh := r.screen.Size()
	accent := StyleFromColor(snap.Theme.Accent).Bold(true)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	title := fmt.Sprintf("=== %s WINS ===", snap.Winner)
	r.screen.DrawText((sw-len(title))/2, sh/2-5, title, accent)

	score := fmt.Sprintf("%d : %d", snap.Left.Score, snap.Right.Score)
	r.screen.DrawText((sw-len(score))/2, sh/2-3, score, tcell.StyleDefault.Bold(true))

	var dur time.Duration
	if !snap.EndedAt.IsZero() {
		dur = snap.EndedAt.Sub(snap.StartedAt).Round(time.Second)
	}
	stats := []string{
		fmt.Sprintf("longest rally  %d", snap.MaxRally),
		fmt.Sprintf("power-ups      %d / %d", snap.PickupCounts[game.SideLeft], snap.PickupCounts[game.SideRight]),
		fmt.Sprintf("duration       %s", dur),
	}
	for i, line := range stats {
		r.screen.DrawText((sw-24)/2, sh/2-1+i, line, StyleFromColor(snap.Theme.CourtLine))
	}

	r.screen.DrawText((sw-30)/2, sh/2+4, "ENTER rematch - m menu - q quit", dim)
	r.screen.Show()
}

// RenderError shows an error message and waits for input.
func (r *Renderer) RenderError(msg string) {
	r.screen.Clear()
	style := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	r.screen.DrawText(2, 2, "Error: "+msg, style)
	r.screen.DrawText(2, 4, "Press any key to exit", tcell.StyleDefault)
	r.screen.Show()
}
