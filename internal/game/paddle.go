package game

const (
	PaddleWidth      = 12.0
	BasePaddleHeight = 100.0
	MinPaddleHeight  = 40.0 // floor keeps hit-position math away from zero divisors
	PaddleSpeed      = 7.0
	PaddleMargin     = 30.0 // distance of paddle face from court edge

	PowerHitThreshold = 4.0 // per-tick displacement that counts as a power hit
)

// Side identifies a paddle / player.
type Side int

const (
	SideLeft  Side = 0
	SideRight Side = 1
)

func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Control is the abstracted per-tick input for one paddle. Either a
// delta-style move in [-1, 1] (keyboard) or an absolute target center-Y
// (pointer/touch). Displacement for power-hit detection is never taken
// from the control itself; it is derived from the paddle's actual
// position change.
type Control struct {
	Move      float64
	Target    float64
	UseTarget bool
}

// Paddle is positioned by its center Y. X is the left edge of its body
// and stays fixed for the whole match.
type Paddle struct {
	Side   Side
	X      float64
	Y      float64
	Width  float64
	Height float64
	Speed  float64
	Score  int

	// DY is the actual displacement over the last tick, recomputed by
	// Apply. Correct under both delta and absolute control sources.
	DY float64

	CourtHeight float64
}

func NewPaddle(side Side, courtWidth, courtHeight float64) *Paddle {
	p := &Paddle{
		Side:        side,
		Width:       PaddleWidth,
		Height:      BasePaddleHeight,
		Speed:       PaddleSpeed,
		Y:           courtHeight / 2,
		CourtHeight: courtHeight,
	}
	if side == SideLeft {
		p.X = PaddleMargin
	} else {
		p.X = courtWidth - PaddleMargin - PaddleWidth
	}
	return p
}

// Apply moves the paddle according to the control signal and records the
// true displacement. Out-of-range targets are clamped, not rejected.
func (p *Paddle) Apply(c Control) {
	prev := p.Y
	if c.UseTarget {
		p.Y = c.Target
	} else {
		move := c.Move
		if move > 1 {
			move = 1
		}
		if move < -1 {
			move = -1
		}
		p.Y += move * p.Speed
	}
	p.clamp()
	p.DY = p.Y - prev
}

// MoveBy shifts the paddle center directly (AI driver) and records the
// true displacement.
func (p *Paddle) MoveBy(dy float64) {
	prev := p.Y
	p.Y += dy
	p.clamp()
	p.DY = p.Y - prev
}

func (p *Paddle) clamp() {
	half := p.Height / 2
	if p.Y < half {
		p.Y = half
	}
	if p.Y > p.CourtHeight-half {
		p.Y = p.CourtHeight - half
	}
}

// SetHeight clamps the new height to the legal range and keeps the
// paddle inside the court afterwards.
func (p *Paddle) SetHeight(h float64) {
	maxH := p.CourtHeight - 20
	if h > maxH {
		h = maxH
	}
	if h < MinPaddleHeight {
		h = MinPaddleHeight
	}
	p.Height = h
	p.clamp()
}

func (p *Paddle) TopY() float64 {
	return p.Y - p.Height/2
}

func (p *Paddle) BottomY() float64 {
	return p.Y + p.Height/2
}

// Overlaps reports whether a circle at (x,y) with radius r intersects
// the paddle body rectangle.
func (p *Paddle) Overlaps(x, y, r float64) bool {
	cx := x
	if cx < p.X {
		cx = p.X
	}
	if cx > p.X+p.Width {
		cx = p.X + p.Width
	}
	cy := y
	if cy < p.TopY() {
		cy = p.TopY()
	}
	if cy > p.BottomY() {
		cy = p.BottomY()
	}
	dx := x - cx
	dy := y - cy
	return dx*dx+dy*dy <= r*r
}

// Reset recenters the paddle and restores its base size for a new match.
func (p *Paddle) Reset() {
	p.Height = BasePaddleHeight
	p.Y = p.CourtHeight / 2
	p.DY = 0
	p.Score = 0
}
