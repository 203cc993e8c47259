// Package chime plays the audible warning through the default audio device.
// The speaker backend needs cgo and the platform audio headers, so only the
// composition root imports this package.
package chime

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/five82/lullaby/internal/notify"
)

const sampleRate = beep.SampleRate(44100)

// Chime plays a short two-tone chime on the default audio device. The speaker
// is initialised on first use; if that fails the chime stays silent.
type Chime struct {
	once    sync.Once
	initErr error
}

// New returns an uninitialised chime.
func New() *Chime {
	return &Chime{}
}

// Notify starts the chime and returns without waiting for playback.
func (c *Chime) Notify(_ context.Context, _ notify.Message) error {
	c.once.Do(func() {
		c.initErr = speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond))
	})
	if c.initErr != nil {
		return fmt.Errorf("init audio: %w", c.initErr)
	}
	speaker.Play(streamer(sampleRate))
	return nil
}

// streamer is a high-low pair of notes separated by a short gap.
func streamer(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		newTone(sr, 880, 180*time.Millisecond),
		beep.Silence(sr.N(60*time.Millisecond)),
		newTone(sr, 660, 260*time.Millisecond),
	)
}

// tone is a sine oscillator with a linear fade-out to avoid clicks.
type tone struct {
	freq     float64
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
}

func newTone(sr beep.SampleRate, freq float64, d time.Duration) *tone {
	return &tone{freq: freq, length: sr.N(d), rate: sr}
}

const amplitude = 0.3

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}
		fade := 1 - float64(t.position)/float64(t.length)
		val := amplitude * fade * math.Sin(2*math.Pi*t.phase)
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
