package game

import "time"

// PowerUpType tags the four pickup variants.
type PowerUpType int

const (
	PowerEnlarge PowerUpType = iota
	PowerShrink
	PowerSlow
	PowerFast
)

func (t PowerUpType) String() string {
	switch t {
	case PowerEnlarge:
		return "enlarge"
	case PowerShrink:
		return "shrink"
	case PowerSlow:
		return "slow"
	case PowerFast:
		return "fast"
	}
	return "unknown"
}

const (
	PowerUpRadius   = 14.0
	PowerUpTTLTicks = 10 * TickRate // 10 seconds standing on court
	EffectTicks     = 6 * TickRate  // 6 second effect duration
	MaxPowerUps     = 3
	PowerUpInset    = 60.0 // spawn distance from court edges

	EnlargeFactor = 1.6
	ShrinkFactor  = 0.6
	SlowFactor    = 0.6
	FastFactor    = 1.6
)

// PowerUp is a standing pickup on the court. TTL counts down in ticks;
// InitialTTL only feeds the countdown ring in the UI.
type PowerUp struct {
	X, Y       float64
	Radius     float64
	Type       PowerUpType
	TTL        int
	InitialTTL int
}

// rollPowerUpType draws a type with the fixed weights:
// enlarge 30, slow 25, fast 25, shrink 20.
func (e *Engine) rollPowerUpType() PowerUpType {
	roll := e.rng.Intn(100)
	switch {
	case roll < 30:
		return PowerEnlarge
	case roll < 55:
		return PowerSlow
	case roll < 80:
		return PowerFast
	default:
		return PowerShrink
	}
}

// reseedSpawn arms the spawn countdown from the rate tier's range.
func (e *Engine) reseedSpawn() {
	lo, hi := e.SpawnRate.Interval()
	secs := lo + e.rng.Float64()*(hi-lo)
	e.spawnTicks = int(secs * TickRate)
}

// spawnPowerUp places a new pickup at a random inset position, evicting
// the oldest standing one if the court is already at capacity.
func (e *Engine) spawnPowerUp() {
	x := PowerUpInset + e.rng.Float64()*(e.Width-2*PowerUpInset)
	y := PowerUpInset + e.rng.Float64()*(e.Height-2*PowerUpInset)
	pu := &PowerUp{
		X:          x,
		Y:          y,
		Radius:     PowerUpRadius,
		Type:       e.rollPowerUpType(),
		TTL:        PowerUpTTLTicks,
		InitialTTL: PowerUpTTLTicks,
	}
	if len(e.PowerUps) >= MaxPowerUps {
		e.PowerUps = e.PowerUps[1:]
	}
	e.PowerUps = append(e.PowerUps, pu)
}

// updatePowerUps runs the whole subsystem for one playing tick: spawn
// scheduling, TTL expiry, pickup detection, and effect timer decay.
func (e *Engine) updatePowerUps() {
	if e.PowerUpsEnabled {
		e.spawnTicks--
		if e.spawnTicks <= 0 {
			e.spawnPowerUp()
			e.reseedSpawn()
		}
	}

	// TTL decay; expired pickups vanish without award
	live := e.PowerUps[:0]
	for _, pu := range e.PowerUps {
		pu.TTL--
		if pu.TTL > 0 {
			live = append(live, pu)
		}
	}
	e.PowerUps = live

	e.checkPickups()
	e.decayEffects()
}

// checkPickups detects ball/power-up overlap and applies the effect to
// the beneficiary - the side that last touched the ball.
func (e *Engine) checkPickups() {
	live := e.PowerUps[:0]
	for _, pu := range e.PowerUps {
		dx := e.Ball.X - pu.X
		dy := e.Ball.Y - pu.Y
		rr := e.Ball.Radius + pu.Radius
		if dx*dx+dy*dy > rr*rr {
			live = append(live, pu)
			continue
		}
		e.PickupCounts[e.LastHitBy]++
		e.applyEffect(pu.Type, e.LastHitBy)
		e.emitBurst(pu.X, pu.Y, e.Theme.PowerUp, 18, 3.5)
		e.emitTone(1320, 90*time.Millisecond, 0.25)
	}
	e.PowerUps = live
}

// applyEffect mutates paddle size or ball velocity for a picked-up
// power-up. Enlarge and shrink on the same paddle are mutually
// exclusive: applying one clears the other's timer and rebuilds the
// height from base.
func (e *Engine) applyEffect(t PowerUpType, beneficiary Side) {
	switch t {
	case PowerEnlarge:
		p := e.paddle(beneficiary)
		e.shrinkTicks[beneficiary] = 0
		p.SetHeight(BasePaddleHeight * EnlargeFactor)
		e.enlargeTicks[beneficiary] = EffectTicks

	case PowerShrink:
		opp := beneficiary.Opponent()
		p := e.paddle(opp)
		e.enlargeTicks[opp] = 0
		p.SetHeight(BasePaddleHeight * ShrinkFactor)
		e.shrinkTicks[opp] = EffectTicks

	case PowerSlow:
		// Re-pickup refreshes the timer without multiplying again
		if e.slowTicks == 0 {
			e.Ball.Scale(SlowFactor)
			e.slowFactor = SlowFactor
		}
		e.slowTicks = EffectTicks

	case PowerFast:
		if e.fastTicks == 0 {
			e.Ball.Scale(FastFactor)
			e.fastFactor = FastFactor
		}
		e.fastTicks = EffectTicks
	}
}

// decayEffects ticks every active effect timer down and reverses the
// effect exactly when one expires: paddle heights return to base, ball
// factors divide back out so any other active factor keeps its effect.
func (e *Engine) decayEffects() {
	for _, side := range []Side{SideLeft, SideRight} {
		if e.enlargeTicks[side] > 0 {
			e.enlargeTicks[side]--
			if e.enlargeTicks[side] == 0 {
				e.paddle(side).SetHeight(BasePaddleHeight)
			}
		}
		if e.shrinkTicks[side] > 0 {
			e.shrinkTicks[side]--
			if e.shrinkTicks[side] == 0 {
				e.paddle(side).SetHeight(BasePaddleHeight)
			}
		}
	}

	if e.slowTicks > 0 {
		e.slowTicks--
		if e.slowTicks == 0 {
			e.Ball.Scale(1 / e.slowFactor)
			e.slowFactor = 1
		}
	}
	if e.fastTicks > 0 {
		e.fastTicks--
		if e.fastTicks == 0 {
			e.Ball.Scale(1 / e.fastFactor)
			e.fastFactor = 1
		}
	}
}

// clearPowerUps removes every standing pickup and reverses every active
// effect. Called at each serve boundary and when power-ups get disabled
// so every rally starts from neutral conditions.
func (e *Engine) clearPowerUps() {
	e.PowerUps = nil
	for _, side := range []Side{SideLeft, SideRight} {
		if e.enlargeTicks[side] > 0 || e.shrinkTicks[side] > 0 {
			e.paddle(side).SetHeight(BasePaddleHeight)
		}
		e.enlargeTicks[side] = 0
		e.shrinkTicks[side] = 0
	}
	if e.slowTicks > 0 {
		e.Ball.Scale(1 / e.slowFactor)
	}
	e.slowTicks = 0
	e.slowFactor = 1
	if e.fastTicks > 0 {
		e.Ball.Scale(1 / e.fastFactor)
	}
	e.fastTicks = 0
	e.fastFactor = 1
}
