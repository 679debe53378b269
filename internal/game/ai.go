package game

import "math"

const (
	adaptiveGain = 0.45
	adaptiveMin  = 0.6
	adaptiveMax  = 2.0
)

// aiSpeed returns the AI paddle's max per-tick movement, scaled by the
// live score gap when adaptive difficulty is on.
func (e *Engine) aiSpeed() float64 {
	base := e.Difficulty.Profile().AISpeed
	if !e.AdaptiveAI {
		return base
	}
	speed := base + adaptiveGain*float64(e.Left.Score-e.Right.Score)
	if speed < adaptiveMin*base {
		speed = adaptiveMin * base
	}
	if speed > adaptiveMax*base {
		speed = adaptiveMax * base
	}
	return speed
}

// aiTarget picks the y the AI paddle should chase. When the ball moves
// toward the AI it extrapolates the ball to the paddle's x and folds
// the result back into the court, mirroring wall bounces without
// simulating them. Moving away, it just tracks the ball.
func (e *Engine) aiTarget() float64 {
	prof := e.Difficulty.Profile()
	b := e.Ball

	target := b.Y
	if b.VX > 0 {
		ticks := (e.Right.X - b.X) / b.VX
		target = reflectIntoCourt(b.Y+b.VY*ticks, b.Radius, e.Height-b.Radius)
	}
	return target + (e.rng.Float64()-0.5)*prof.AIError
}

// reflectIntoCourt folds an extrapolated y back into [lo, hi] as a
// triangle wave, the closed form of repeated wall reflections.
func reflectIntoCourt(y, lo, hi float64) float64 {
	span := hi - lo
	if span <= 0 {
		return lo
	}
	y = math.Mod(y-lo, 2*span)
	if y < 0 {
		y += 2 * span
	}
	if y > span {
		y = 2*span - y
	}
	return lo + y
}

// updateAI drives the right paddle for one tick in single-player mode.
func (e *Engine) updateAI() {
	prof := e.Difficulty.Profile()
	target := e.aiTarget()

	diff := target - e.Right.Y
	step := math.Abs(diff)*prof.AIReaction + 0.5
	if limit := e.aiSpeed(); step > limit {
		step = limit
	}
	if diff < 0 {
		step = -step
	}
	e.Right.MoveBy(step)
}
