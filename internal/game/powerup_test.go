package game

import (
	"math"
	"testing"
)

func TestPowerUp_SpawnCapsAtThree(t *testing.T) {
	e := newTestEngine()
	beginRally(e, ModeSingle)

	for i := 0; i < 5; i++ {
		e.spawnPowerUp()
	}

	if len(e.PowerUps) != MaxPowerUps {
		t.Errorf("expected %d power-ups, got %d", MaxPowerUps, len(e.PowerUps))
	}
}

func TestPowerUp_OldestEvictedFirst(t *testing.T) {
	e := newTestEngine()
	beginRally(e, ModeSingle)

	e.spawnPowerUp()
	oldest := e.PowerUps[0]
	e.spawnPowerUp()
	e.spawnPowerUp()
	e.spawnPowerUp()

	for _, pu := range e.PowerUps {
		if pu == oldest {
			t.Errorf("oldest power-up should have been evicted")
		}
	}
}

func TestPowerUp_SpawnStaysInsetFromEdges(t *testing.T) {
	e := newTestEngine()
	beginRally(e, ModeSingle)

	for i := 0; i < 50; i++ {
		e.spawnPowerUp()
		pu := e.PowerUps[len(e.PowerUps)-1]
		if pu.X < PowerUpInset || pu.X > e.Width-PowerUpInset {
			t.Fatalf("power-up X=%f outside inset range", pu.X)
		}
		if pu.Y < PowerUpInset || pu.Y > e.Height-PowerUpInset {
			t.Fatalf("power-up Y=%f outside inset range", pu.Y)
		}
	}
}

func TestPowerUp_TTLExpiryDropsWithoutAward(t *testing.T) {
	e := newTestEngine()
	beginRally(e, ModeSingle)
	e.Ball.Freeze(e.Width/2, e.Height/2) // keep ball away from pickups
	e.spawnTicks = 1 << 30               // no new spawns during the test

	e.PowerUps = append(e.PowerUps, &PowerUp{X: 100, Y: 100, Radius: PowerUpRadius, Type: PowerEnlarge, TTL: 2, InitialTTL: PowerUpTTLTicks})

	e.updatePowerUps()
	if len(e.PowerUps) != 1 {
		t.Fatalf("expected power-up still live, got %d", len(e.PowerUps))
	}
	e.updatePowerUps()
	if len(e.PowerUps) != 0 {
		t.Errorf("expected power-up expired, got %d live", len(e.PowerUps))
	}
	if e.PickupCounts[SideLeft] != 0 || e.PickupCounts[SideRight] != 0 {
		t.Errorf("expiry must not award a pickup, counts=%v", e.PickupCounts)
	}
}

// placePickup puts a power-up directly on the ball so the next
// subsystem tick collects it.
func placePickup(e *Engine, typ PowerUpType) {
	e.PowerUps = append(e.PowerUps, &PowerUp{
		X: e.Ball.X, Y: e.Ball.Y,
		Radius: PowerUpRadius, Type: typ,
		TTL: PowerUpTTLTicks, InitialTTL: PowerUpTTLTicks,
	})
}

func TestPowerUp_EnlargeAppliesToBeneficiary(t *testing.T) {
	e := newTestEngine()
	beginRally(e, ModeSingle)
	e.spawnTicks = 1 << 30
	e.LastHitBy = SideLeft

	placePickup(e, PowerEnlarge)
	e.updatePowerUps()

	want := BasePaddleHeight * EnlargeFactor
	if e.Left.Height != want {
		t.Errorf("expected left paddle height %f, got %f", want, e.Left.Height)
	}
	if e.enlargeTicks[SideLeft] != EffectTicks-1 {
		t.Errorf("expected enlarge timer armed, got %d", e.enlargeTicks[SideLeft])
	}
	if e.PickupCounts[SideLeft] != 1 {
		t.Errorf("expected left pickup count 1, got %d", e.PickupCounts[SideLeft])
	}
}

func TestPowerUp_ShrinkHitsOpponent(t *testing.T) {
	e := newTestEngine()
	beginRally(e, ModeSingle)
	e.spawnTicks = 1 << 30
	e.LastHitBy = SideLeft
	e.enlargeTicks[SideRight] = EffectTicks // opponent currently enlarged

	placePickup(e, PowerShrink)
	e.updatePowerUps()

	want := math.Max(BasePaddleHeight*ShrinkFactor, MinPaddleHeight)
	if e.Right.Height != want {
		t.Errorf("expected right paddle height %f, got %f", want, e.Right.Height)
	}
	if e.enlargeTicks[SideRight] != 0 {
		t.Errorf("shrink must clear the opponent's enlarge timer, got %d", e.enlargeTicks[SideRight])
	}
	if e.shrinkTicks[SideRight] != EffectTicks-1 {
		t.Errorf("expected shrink timer armed, got %d", e.shrinkTicks[SideRight])
	}
	if e.Left.Height != BasePaddleHeight {
		t.Errorf("beneficiary's own paddle must be untouched, got %f", e.Left.Height)
	}
}

func TestPowerUp_EnlargeAndShrinkExclusive(t *testing.T) {
	e := newTestEngine()
	beginRally(e, ModeSingle)
	e.spawnTicks = 1 << 30

	// Right paddle shrunk by the left side...
	e.LastHitBy = SideLeft
	placePickup(e, PowerShrink)
	e.updatePowerUps()

	// ...then the right side earns an enlarge for itself
	e.LastHitBy = SideRight
	placePickup(e, PowerEnlarge)
	e.updatePowerUps()

	if e.shrinkTicks[SideRight] != 0 {
		t.Errorf("enlarge must clear the shrink timer, got %d", e.shrinkTicks[SideRight])
	}
	if e.enlargeTicks[SideRight] == 0 {
		t.Errorf("expected enlarge timer armed")
	}
	if e.Right.Height != BasePaddleHeight*EnlargeFactor {
		t.Errorf("expected height %f, got %f", BasePaddleHeight*EnlargeFactor, e.Right.Height)
	}

	// Timers on the same paddle are never simultaneously non-zero
	if e.enlargeTicks[SideRight] != 0 && e.shrinkTicks[SideRight] != 0 {
		t.Errorf("enlarge and shrink active together on one paddle")
	}
}

func TestPowerUp_SlowScalesVelocityOnce(t *testing.T) {
	e := newTestEngine()
	beginRally(e, ModeSingle)
	e.spawnTicks = 1 << 30
	e.Ball.VX = 10
	e.Ball.VY = 0

	placePickup(e, PowerSlow)
	e.updatePowerUps()

	if math.Abs(e.Ball.VX-6) > 1e-9 {
		t.Errorf("expected VX=6 after slow, got %f", e.Ball.VX)
	}
	firstTimer := e.slowTicks

	// Re-pickup refreshes the timer without multiplying again
	for i := 0; i < 100; i++ {
		e.updatePowerUps()
	}
	placePickup(e, PowerSlow)
	e.updatePowerUps()

	if math.Abs(e.Ball.VX-6) > 1e-9 {
		t.Errorf("re-pickup must not re-multiply, got VX=%f", e.Ball.VX)
	}
	if e.slowTicks < firstTimer {
		t.Errorf("expected timer refreshed, got %d < %d", e.slowTicks, firstTimer)
	}
}

func TestPowerUp_FactorExpiryRestoresMagnitude(t *testing.T) {
	e := newTestEngine()
	beginRally(e, ModeSingle)
	e.spawnTicks = 1 << 30
	e.Ball.VX = 8
	e.Ball.VY = 6
	before := e.Ball.VelocityMagnitude()

	placePickup(e, PowerFast)
	e.updatePowerUps()

	if math.Abs(e.Ball.VelocityMagnitude()-before*FastFactor) > 1e-9 {
		t.Fatalf("expected magnitude %f, got %f", before*FastFactor, e.Ball.VelocityMagnitude())
	}

	for e.fastTicks > 0 {
		e.updatePowerUps()
	}

	if math.Abs(e.Ball.VelocityMagnitude()-before) > 1e-9 {
		t.Errorf("expected magnitude restored to %f, got %f", before, e.Ball.VelocityMagnitude())
	}
}

func TestPowerUp_SlowAndFastStack(t *testing.T) {
	e := newTestEngine()
	beginRally(e, ModeSingle)
	e.spawnTicks = 1 << 30
	e.Ball.VX = 10
	e.Ball.VY = 0

	placePickup(e, PowerSlow)
	e.updatePowerUps()
	placePickup(e, PowerFast)
	e.updatePowerUps()

	want := 10 * SlowFactor * FastFactor
	if math.Abs(e.Ball.VX-want) > 1e-9 {
		t.Fatalf("expected VX=%f with both factors, got %f", want, e.Ball.VX)
	}

	// Slow expires first (picked up first); fast keeps its effect
	for e.slowTicks > 0 {
		e.updatePowerUps()
	}
	want = 10 * FastFactor
	if math.Abs(e.Ball.VX-want) > 1e-6 {
		t.Errorf("expected VX=%f after slow expiry, got %f", want, e.Ball.VX)
	}
}

func TestPowerUp_ServeClearsEverything(t *testing.T) {
	e := newTestEngine()
	beginRally(e, ModeSingle)
	e.spawnTicks = 1 << 30
	e.Ball.VX = 10
	e.Ball.VY = 0

	placePickup(e, PowerSlow)
	e.updatePowerUps()
	placePickup(e, PowerEnlarge)
	e.updatePowerUps()
	e.spawnPowerUp()

	e.enterServe(1)

	if len(e.PowerUps) != 0 {
		t.Errorf("expected no live power-ups after serve entry, got %d", len(e.PowerUps))
	}
	if e.slowTicks != 0 || e.fastTicks != 0 {
		t.Errorf("expected ball factors cleared, slow=%d fast=%d", e.slowTicks, e.fastTicks)
	}
	if e.slowFactor != 1 || e.fastFactor != 1 {
		t.Errorf("expected factors reset, slow=%f fast=%f", e.slowFactor, e.fastFactor)
	}
	if e.Left.Height != BasePaddleHeight || e.Right.Height != BasePaddleHeight {
		t.Errorf("expected paddle heights restored, got %f and %f", e.Left.Height, e.Right.Height)
	}
}

func TestPowerUp_DisableClearsStandingPickups(t *testing.T) {
	e := newTestEngine()
	beginRally(e, ModeSingle)
	e.spawnPowerUp()
	e.spawnPowerUp()

	e.SetPowerUpsEnabled(false)

	if len(e.PowerUps) != 0 {
		t.Errorf("expected pickups cleared on disable, got %d", len(e.PowerUps))
	}

	// No spawns while disabled
	e.spawnTicks = 1
	e.updatePowerUps()
	if len(e.PowerUps) != 0 {
		t.Errorf("expected no spawns while disabled, got %d", len(e.PowerUps))
	}
}

func TestPowerUp_WeightedDraw(t *testing.T) {
	e := newTestEngine()

	counts := map[PowerUpType]int{}
	const n = 10000
	for i := 0; i < n; i++ {
		counts[e.rollPowerUpType()]++
	}

	tests := []struct {
		typ    PowerUpType
		weight float64
	}{
		{PowerEnlarge, 0.30},
		{PowerSlow, 0.25},
		{PowerFast, 0.25},
		{PowerShrink, 0.20},
	}
	for _, tt := range tests {
		got := float64(counts[tt.typ]) / n
		if math.Abs(got-tt.weight) > 0.03 {
			t.Errorf("%v: expected weight ~%.2f, got %.3f", tt.typ, tt.weight, got)
		}
	}
}
