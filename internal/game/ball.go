package game

import (
	"math"
	"math/rand"
)

const (
	MaxBounceAngle = math.Pi / 3 // 60 degrees max
	BallRadius     = 8.0
	ServeAngle     = math.Pi / 6 // vertical spread on launch
)

// Ball carries both the raw velocity and the logical speed magnitude.
// Speed is what escalates on paddle hits; slow/fast power-up factors
// scale the velocity on top of it without touching Speed itself.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Speed  float64
	Radius float64
}

func NewBall(x, y float64) *Ball {
	return &Ball{X: x, Y: y, Radius: BallRadius}
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// Freeze centers the ball with zero velocity for a serve countdown.
func (b *Ball) Freeze(centerX, centerY float64) {
	b.X = centerX
	b.Y = centerY
	b.VX = 0
	b.VY = 0
}

// Launch sends the ball from its current position in the given horizontal
// direction (+1 right, -1 left) with a small random vertical component.
func (b *Ball) Launch(dir float64, speed float64, rng *rand.Rand) {
	angle := (rng.Float64() - 0.5) * ServeAngle
	b.Speed = speed
	b.VX = dir * speed * math.Cos(angle)
	b.VY = speed * math.Sin(angle)
}

// Deflect recomputes velocity off a paddle, angle based on hit position.
// paddleY is center Y. side is +1 off the left paddle, -1 off the right.
// factor is the product of any active slow/fast velocity factors.
func (b *Ball) Deflect(paddleY, paddleHeight, side, factor float64) {
	// Where on the paddle the ball hit (-1 to 1, 0 = center)
	relativeHit := (b.Y - paddleY) / (paddleHeight / 2)
	if relativeHit < -1 {
		relativeHit = -1
	}
	if relativeHit > 1 {
		relativeHit = 1
	}

	bounceAngle := relativeHit * MaxBounceAngle
	b.VX = math.Cos(bounceAngle) * b.Speed * side * factor
	b.VY = math.Sin(bounceAngle) * b.Speed * factor
}

// Scale multiplies the raw velocity by factor (power-up slow/fast).
func (b *Ball) Scale(factor float64) {
	b.VX *= factor
	b.VY *= factor
}

// VelocityMagnitude returns the actual speed of travel, factors included.
func (b *Ball) VelocityMagnitude() float64 {
	return math.Sqrt(b.VX*b.VX + b.VY*b.VY)
}
