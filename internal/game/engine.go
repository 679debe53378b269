package game

import (
	"math"
	"math/rand"
	"time"
)

// Constants for the match simulation
const (
	TickRate    = 60 // logical ticks per second
	CourtWidth  = 800.0
	CourtHeight = 500.0

	SpeedIncrement    = 1.05 // per paddle hit
	MaxBallSpeed      = 14.0 // cap before difficulty multiplier
	PowerHitIncrement = 1.2
	PowerHitSpeedCap  = 16.0
	PowerHitFlagTicks = TickRate / 2 // 0.5s power-hit flag

	ServeCountdownTicks = 3 * TickRate
	ScoreMargin         = 20.0 // how far past the edge counts as a point

	ComboWindow = 2 * time.Second // wall-clock window for player combos
)

// Status is the match lifecycle state.
type Status int

const (
	StatusMenu Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "menu"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "gameOver"
	}
	return "unknown"
}

// Mode selects single-player (AI right paddle) or local two-player.
type Mode int

const (
	ModeSingle Mode = iota
	ModeMulti
)

func (m Mode) String() string {
	if m == ModeSingle {
		return "single"
	}
	return "multi"
}

// Engine owns the entire match state. It is single-writer: only Update
// and the explicit entry points mutate it, collaborators read value
// snapshots. All timers run in ticks except the combo window.
type Engine struct {
	Width, Height float64

	Status     Status
	Mode       Mode
	Difficulty Difficulty
	WinScore   int

	Theme           Theme
	ReducedMotion   bool
	AdaptiveAI      bool
	PowerUpsEnabled bool
	SpawnRate       SpawnRate

	Ball        *Ball
	Left, Right *Paddle

	Tick      int
	Rally     int
	MaxRally  int
	Combo     int
	LastHitBy Side

	ServeTicks int
	serveDir   float64 // +1 launches right, -1 left

	PowerUps     []*PowerUp
	PickupCounts [2]int
	spawnTicks   int

	enlargeTicks [2]int
	shrinkTicks  [2]int
	slowTicks    int
	fastTicks    int
	slowFactor   float64
	fastFactor   float64

	powerHitTicks int

	Winner    Side
	hasWinner bool
	StartedAt time.Time
	EndedAt   time.Time

	lastPlayerHit time.Time

	rng    *rand.Rand
	now    func() time.Time
	events []Event
}

// NewEngine creates an engine in the menu state with default settings.
func NewEngine() *Engine {
	theme, _ := ThemeByName("classic")
	e := &Engine{
		Width:           CourtWidth,
		Height:          CourtHeight,
		Status:          StatusMenu,
		Difficulty:      DifficultyNormal,
		WinScore:        7,
		Theme:           theme,
		PowerUpsEnabled: true,
		SpawnRate:       SpawnRateNormal,
		slowFactor:      1,
		fastFactor:      1,
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
		now:             time.Now,
	}
	e.Ball = NewBall(e.Width/2, e.Height/2)
	e.Left = NewPaddle(SideLeft, e.Width, e.Height)
	e.Right = NewPaddle(SideRight, e.Width, e.Height)
	return e
}

func (e *Engine) paddle(side Side) *Paddle {
	if side == SideLeft {
		return e.Left
	}
	return e.Right
}

// Start fully resets the match and begins the first serve sequence.
// Valid from any state.
func (e *Engine) Start(difficulty Difficulty, winScore int, mode Mode) {
	if winScore < 1 {
		winScore = 1
	}
	e.Difficulty = difficulty
	e.WinScore = winScore
	e.Mode = mode

	e.Left.Reset()
	e.Right.Reset()
	e.clearPowerUps()
	e.PickupCounts = [2]int{}
	e.Rally = 0
	e.MaxRally = 0
	e.Combo = 0
	e.powerHitTicks = 0
	e.hasWinner = false
	e.StartedAt = e.now()
	e.EndedAt = time.Time{}
	e.Status = StatusPlaying

	dir := 1.0
	if e.rng.Intn(2) == 0 {
		dir = -1
	}
	e.enterServe(dir)
}

// TogglePause flips between playing and paused. No-op elsewhere.
func (e *Engine) TogglePause() {
	switch e.Status {
	case StatusPlaying:
		e.Status = StatusPaused
	case StatusPaused:
		e.Status = StatusPlaying
	}
}

// ReturnToMenu abandons the current match.
func (e *Engine) ReturnToMenu() {
	e.Status = StatusMenu
}

// Rematch restarts with the previous parameters. Only valid from the
// game-over screen.
func (e *Engine) Rematch() {
	if e.Status != StatusGameOver {
		return
	}
	e.Start(e.Difficulty, e.WinScore, e.Mode)
}

// Setting setters, consumed on the next tick.

func (e *Engine) SetDifficulty(d Difficulty) { e.Difficulty = d }

func (e *Engine) SetTheme(name string) {
	t, _ := ThemeByName(name)
	e.Theme = t
}

func (e *Engine) CycleTheme() { e.Theme = NextTheme(e.Theme.Name) }

func (e *Engine) SetReducedMotion(on bool) { e.ReducedMotion = on }

func (e *Engine) SetAdaptiveAI(on bool) { e.AdaptiveAI = on }

// SetPowerUpsEnabled clears all standing pickups immediately when
// disabling; running effects still expire on their own timers.
func (e *Engine) SetPowerUpsEnabled(on bool) {
	e.PowerUpsEnabled = on
	if !on {
		e.PowerUps = nil
	}
}

func (e *Engine) SetSpawnRate(r SpawnRate) { e.SpawnRate = r }

// enterServe freezes the ball at center and arms the countdown. Every
// rally starts from neutral: power-ups, effects, rally and combo all
// reset here.
func (e *Engine) enterServe(dir float64) {
	e.clearPowerUps()
	e.reseedSpawn()
	e.Rally = 0
	e.Combo = 0
	e.LastHitBy = SideLeft
	e.powerHitTicks = 0
	e.serveDir = dir
	e.ServeTicks = ServeCountdownTicks
	e.Ball.Freeze(e.Width/2, e.Height/2)
}

// Update advances the simulation by one logical tick. It is the sole
// per-tick entry point; calls outside the playing state are no-op
// ticks.
func (e *Engine) Update(left, right Control) {
	if e.Status != StatusPlaying {
		return
	}
	e.Tick++

	if e.ServeTicks > 0 {
		e.updateServe()
		return
	}

	if e.Mode == ModeSingle {
		e.updateAI()
	} else {
		e.Right.Apply(right)
	}
	e.Left.Apply(left)

	e.stepBall()
	e.resolvePaddleCollision()
	e.updatePowerUps()

	if e.powerHitTicks > 0 {
		e.powerHitTicks--
	}

	e.checkScore()
}

// updateServe runs one countdown tick: the ball stays frozen, paddles
// and physics are skipped, but per-second feedback keeps firing.
func (e *Engine) updateServe() {
	e.ServeTicks--
	if e.ServeTicks <= 0 {
		e.ServeTicks = 0
		prof := e.Difficulty.Profile()
		e.Ball.Launch(e.serveDir, prof.BallSpeed*prof.BallMul, e.rng)
		e.emitTone(900, 120*time.Millisecond, 0.25)
		e.emitBurst(e.Ball.X, e.Ball.Y, e.Theme.Ball, 10, 2.5)
		return
	}
	if e.ServeTicks%TickRate == 0 {
		e.emitTone(600, 60*time.Millisecond, 0.2)
	}
}

// stepBall integrates the ball and reflects it off the top and bottom
// walls, clamping position so a fast ball cannot escape the court.
func (e *Engine) stepBall() {
	e.Ball.Move()

	if e.Ball.Y-e.Ball.Radius <= 0 {
		e.Ball.Y = e.Ball.Radius
		e.Ball.VY = math.Abs(e.Ball.VY)
		e.wallFeedback()
	} else if e.Ball.Y+e.Ball.Radius >= e.Height {
		e.Ball.Y = e.Height - e.Ball.Radius
		e.Ball.VY = -math.Abs(e.Ball.VY)
		e.wallFeedback()
	}
}

func (e *Engine) wallFeedback() {
	e.emitTone(440, 30*time.Millisecond, 0.2)
	e.emitBurst(e.Ball.X, e.Ball.Y, e.Theme.Accent, 6, 1.5)
	e.emitShake(1.5)
}

// resolvePaddleCollision tests only the paddle the ball is moving
// toward, deflects, escalates speed, and does the rally/combo
// bookkeeping.
func (e *Engine) resolvePaddleCollision() {
	var p *Paddle
	var side float64
	switch {
	case e.Ball.VX < 0:
		p, side = e.Left, 1
	case e.Ball.VX > 0:
		p, side = e.Right, -1
	default:
		return
	}
	if !p.Overlaps(e.Ball.X, e.Ball.Y, e.Ball.Radius) {
		return
	}

	prof := e.Difficulty.Profile()

	e.Ball.Speed *= SpeedIncrement
	if limit := MaxBallSpeed * prof.BallMul; e.Ball.Speed > limit {
		e.Ball.Speed = limit
	}

	power := math.Abs(p.DY) > PowerHitThreshold
	if power {
		e.Ball.Speed *= PowerHitIncrement
		if limit := PowerHitSpeedCap * prof.BallMul; e.Ball.Speed > limit {
			e.Ball.Speed = limit
		}
		e.powerHitTicks = PowerHitFlagTicks
	}

	e.Ball.Deflect(p.Y, p.Height, side, e.slowFactor*e.fastFactor)

	// Reposition just outside the paddle so the same hit cannot
	// re-trigger next tick.
	if p.Side == SideLeft {
		e.Ball.X = p.X + p.Width + e.Ball.Radius
	} else {
		e.Ball.X = p.X - e.Ball.Radius
	}

	e.Rally++
	if e.Rally > e.MaxRally {
		e.MaxRally = e.Rally
	}
	if p.Side == SideLeft {
		now := e.now()
		if !e.lastPlayerHit.IsZero() && now.Sub(e.lastPlayerHit) <= ComboWindow {
			e.Combo++
		} else {
			e.Combo = 1
		}
		e.lastPlayerHit = now
	}
	e.LastHitBy = p.Side

	e.paddleFeedback(p, power)
}

func (e *Engine) paddleFeedback(p *Paddle, power bool) {
	freq := 880.0
	color := e.Theme.LeftPaddle
	if p.Side == SideRight {
		freq = 780
		color = e.Theme.RightPad
	}
	if power {
		e.emitTone(1100, 80*time.Millisecond, 0.3)
		e.emitBurst(e.Ball.X, e.Ball.Y, color, 24, 4)
		e.emitShake(6)
	} else {
		e.emitTone(freq, 50*time.Millisecond, 0.2)
		e.emitBurst(e.Ball.X, e.Ball.Y, color, 12, 2.5)
		e.emitShake(2.5)
	}
}

// checkScore awards the point once the ball is fully past an edge and
// either ends the match or re-enters the serve sequence toward the
// side that lost.
func (e *Engine) checkScore() {
	switch {
	case e.Ball.X < -ScoreMargin:
		e.scorePoint(SideRight)
	case e.Ball.X > e.Width+ScoreMargin:
		e.scorePoint(SideLeft)
	}
}

func (e *Engine) scorePoint(scorer Side) {
	p := e.paddle(scorer)
	p.Score++

	e.scoreFeedback(scorer)

	if p.Score >= e.WinScore {
		e.Status = StatusGameOver
		e.hasWinner = true
		e.Winner = scorer
		e.EndedAt = e.now()
		return
	}

	loser := scorer.Opponent()
	dir := 1.0
	if loser == SideLeft {
		dir = -1
	}
	e.enterServe(dir)
}

func (e *Engine) scoreFeedback(scorer Side) {
	edgeX := 0.0
	color := e.Theme.RightPad
	if scorer == SideLeft {
		edgeX = e.Width
		color = e.Theme.LeftPaddle
	}
	e.emitBurst(edgeX, e.Ball.Y, color, 20, 3)
	e.emitShake(5)

	// Ascending arpeggio for the left side's point, descending for the
	// right's (the human's win/lose variants in single-player mode).
	if scorer == SideLeft {
		e.emitTone(523, 100*time.Millisecond, 0.25)
		e.emitToneAfter(100*time.Millisecond, 659, 100*time.Millisecond, 0.25)
		e.emitToneAfter(200*time.Millisecond, 784, 150*time.Millisecond, 0.25)
	} else {
		e.emitTone(440, 100*time.Millisecond, 0.25)
		e.emitToneAfter(100*time.Millisecond, 349, 100*time.Millisecond, 0.25)
		e.emitToneAfter(200*time.Millisecond, 262, 150*time.Millisecond, 0.25)
	}
}
