package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// squareWave generates a square wave tone (retro/8-bit feel)
func squareWave(freq float64, duration time.Duration, volume float64) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// PlayTone plays a single square-wave tone. The engine emits these as
// fire-and-forget feedback requests; a delay schedules arpeggio notes.
func PlayTone(freq float64, duration time.Duration, volume float64, delay time.Duration) {
	if !initialized {
		return
	}
	if delay > 0 {
		time.AfterFunc(delay, func() {
			if initialized {
				speaker.Play(squareWave(freq, duration, volume))
			}
		})
		return
	}
	speaker.Play(squareWave(freq, duration, volume))
}
