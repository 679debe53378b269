package game

import "time"

// BallView is the render view of the ball.
type BallView struct {
	X, Y     float64
	VX, VY   float64
	Radius   float64
	PowerHit bool
}

// PaddleView is the render view of one paddle.
type PaddleView struct {
	X, Y   float64
	Width  float64
	Height float64
	Score  int
}

// PowerUpView is the render view of a standing pickup. Fraction is
// TTL/initial for the countdown ring.
type PowerUpView struct {
	X, Y     float64
	Radius   float64
	Type     PowerUpType
	Seconds  int
	Fraction float64
}

// EffectsView carries the ceil-rounded remaining seconds of every
// active effect timer, indexed by Side for the paddle effects.
type EffectsView struct {
	Enlarge [2]int
	Shrink  [2]int
	Slow    int
	Fast    int
}

// Snapshot is the read-only state surface handed to the render/audio/UI
// collaborators after each tick. Value types only; mutating a snapshot
// never touches the engine.
type Snapshot struct {
	Status     Status
	Mode       Mode
	Difficulty Difficulty
	WinScore   int
	Theme      Theme

	Tick          int
	Width, Height float64

	Ball        BallView
	Left, Right PaddleView
	PowerUps    []PowerUpView

	Rally    int
	MaxRally int
	Combo    int

	ServeSeconds int // 0 when the ball is live
	Winner       string

	PickupCounts [2]int
	Effects      EffectsView

	AdaptiveAI      bool
	PowerUpsEnabled bool
	SpawnRate       SpawnRate
	ReducedMotion   bool

	StartedAt time.Time
	EndedAt   time.Time
}

func ceilSeconds(ticks int) int {
	if ticks <= 0 {
		return 0
	}
	return (ticks + TickRate - 1) / TickRate
}

// WinnerLabel names the winning side for the current mode.
func (e *Engine) WinnerLabel() string {
	if !e.hasWinner {
		return ""
	}
	if e.Mode == ModeSingle {
		if e.Winner == SideLeft {
			return "Player"
		}
		return "AI"
	}
	if e.Winner == SideLeft {
		return "P1"
	}
	return "P2"
}

func paddleView(p *Paddle) PaddleView {
	return PaddleView{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height, Score: p.Score}
}

// Snapshot builds the read-only view of the current match state.
func (e *Engine) Snapshot() Snapshot {
	pus := make([]PowerUpView, len(e.PowerUps))
	for i, pu := range e.PowerUps {
		pus[i] = PowerUpView{
			X:        pu.X,
			Y:        pu.Y,
			Radius:   pu.Radius,
			Type:     pu.Type,
			Seconds:  ceilSeconds(pu.TTL),
			Fraction: float64(pu.TTL) / float64(pu.InitialTTL),
		}
	}

	return Snapshot{
		Status:     e.Status,
		Mode:       e.Mode,
		Difficulty: e.Difficulty,
		WinScore:   e.WinScore,
		Theme:      e.Theme,

		Tick:   e.Tick,
		Width:  e.Width,
		Height: e.Height,

		Ball: BallView{
			X: e.Ball.X, Y: e.Ball.Y,
			VX: e.Ball.VX, VY: e.Ball.VY,
			Radius:   e.Ball.Radius,
			PowerHit: e.powerHitTicks > 0,
		},
		Left:     paddleView(e.Left),
		Right:    paddleView(e.Right),
		PowerUps: pus,

		Rally:    e.Rally,
		MaxRally: e.MaxRally,
		Combo:    e.Combo,

		ServeSeconds: ceilSeconds(e.ServeTicks),
		Winner:       e.WinnerLabel(),

		PickupCounts: e.PickupCounts,
		Effects: EffectsView{
			Enlarge: [2]int{ceilSeconds(e.enlargeTicks[SideLeft]), ceilSeconds(e.enlargeTicks[SideRight])},
			Shrink:  [2]int{ceilSeconds(e.shrinkTicks[SideLeft]), ceilSeconds(e.shrinkTicks[SideRight])},
			Slow:    ceilSeconds(e.slowTicks),
			Fast:    ceilSeconds(e.fastTicks),
		},

		AdaptiveAI:      e.AdaptiveAI,
		PowerUpsEnabled: e.PowerUpsEnabled,
		SpawnRate:       e.SpawnRate,
		ReducedMotion:   e.ReducedMotion,

		StartedAt: e.StartedAt,
		EndedAt:   e.EndedAt,
	}
}
