package ui

import (
	"math"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/AhmedAllam0/pingpong/internal/game"
)

const (
	particleLife = 30 // frames
	trailLength  = 10
	shakeDecay   = 0.85
)

// Particle is a short-lived cosmetic dot in court coordinates.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   int
	Max    int
	Color  colorful.Color
}

// TrailPoint is one sample of the ball's recent path.
type TrailPoint struct {
	X, Y float64
}

// Effects owns every cosmetic the renderer animates: particle bursts,
// the ball trail and screen shake. It consumes the engine's feedback
// events and never feeds anything back into the simulation.
type Effects struct {
	Particles []Particle
	Trail     []TrailPoint
	Shake     float64

	rng *rand.Rand
}

func NewEffects() *Effects {
	return &Effects{rng: rand.New(rand.NewSource(1))}
}

// Consume applies one engine event to the cosmetic state. Tone events
// are not handled here; the app routes those to the audio package.
func (fx *Effects) Consume(ev game.Event) {
	switch ev := ev.(type) {
	case game.BurstEvent:
		fx.burst(ev)
	case game.ShakeEvent:
		if ev.Intensity > fx.Shake {
			fx.Shake = ev.Intensity
		}
	}
}

func (fx *Effects) burst(ev game.BurstEvent) {
	for i := 0; i < ev.Count; i++ {
		angle := fx.rng.Float64() * 2 * math.Pi
		speed := ev.Spread * (0.4 + fx.rng.Float64()*0.6)
		fx.Particles = append(fx.Particles, Particle{
			X: ev.X, Y: ev.Y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  particleLife,
			Max:   particleLife,
			Color: ev.Color,
		})
	}
}

// Step advances all cosmetics by one frame. Runs every frame, even
// while the simulation is serving or paused, so visuals never freeze.
func (fx *Effects) Step(ballX, ballY float64, ballLive bool) {
	live := fx.Particles[:0]
	for _, p := range fx.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= 0.92
		p.VY *= 0.92
		p.Life--
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	fx.Particles = live

	if ballLive {
		fx.Trail = append(fx.Trail, TrailPoint{X: ballX, Y: ballY})
		if len(fx.Trail) > trailLength {
			fx.Trail = fx.Trail[1:]
		}
	} else if len(fx.Trail) > 0 {
		fx.Trail = fx.Trail[1:]
	}

	fx.Shake *= shakeDecay
	if fx.Shake < 0.1 {
		fx.Shake = 0
	}
}

// Offset returns this frame's shake displacement in terminal cells.
func (fx *Effects) Offset() (int, int) {
	if fx.Shake == 0 {
		return 0, 0
	}
	dx := int((fx.rng.Float64()*2 - 1) * fx.Shake / 3)
	dy := int((fx.rng.Float64()*2 - 1) * fx.Shake / 5)
	return dx, dy
}

// Reset drops all cosmetic state (on return to menu).
func (fx *Effects) Reset() {
	fx.Particles = fx.Particles[:0]
	fx.Trail = fx.Trail[:0]
	fx.Shake = 0
}
