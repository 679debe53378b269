package game

import (
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Event is a fire-and-forget feedback request emitted by the simulation
// for the render/audio collaborators. Events never feed back into
// physics; dropping them is always safe.
type Event interface {
	isEvent()
}

// BurstEvent asks the renderer for a particle burst.
type BurstEvent struct {
	X, Y   float64
	Color  colorful.Color
	Count  int
	Spread float64 // initial particle speed
}

// ShakeEvent asks the renderer to kick the screen shake intensity.
type ShakeEvent struct {
	Intensity float64
}

// ToneEvent asks the audio collaborator for a discrete tone. Delay lets
// the core sequence short arpeggios without owning a scheduler.
type ToneEvent struct {
	Freq     float64
	Duration time.Duration
	Volume   float64
	Delay    time.Duration
}

func (BurstEvent) isEvent() {}
func (ShakeEvent) isEvent() {}
func (ToneEvent) isEvent()  {}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

// emitBurst scales the particle count by the reduced-motion setting.
func (e *Engine) emitBurst(x, y float64, c colorful.Color, count int, spread float64) {
	if e.ReducedMotion {
		count = (count + 2) / 3
	}
	e.emit(BurstEvent{X: x, Y: y, Color: c, Count: count, Spread: spread})
}

func (e *Engine) emitShake(intensity float64) {
	if e.ReducedMotion {
		intensity *= 0.3
	}
	e.emit(ShakeEvent{Intensity: intensity})
}

func (e *Engine) emitTone(freq float64, dur time.Duration, vol float64) {
	e.emit(ToneEvent{Freq: freq, Duration: dur, Volume: vol})
}

func (e *Engine) emitToneAfter(delay time.Duration, freq float64, dur time.Duration, vol float64) {
	e.emit(ToneEvent{Freq: freq, Duration: dur, Volume: vol, Delay: delay})
}

// DrainEvents returns all events emitted since the last drain and
// clears the queue. Called by the host once per tick.
func (e *Engine) DrainEvents() []Event {
	evs := e.events
	e.events = nil
	return evs
}
