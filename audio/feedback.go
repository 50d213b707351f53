// Package audio produces short tone feedback through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/mouselook/parameter"
)

// Options tunes the feedback tone. Zero values fall back to defaults.
type Options struct {
	Enabled   bool
	Frequency float64
	Length    time.Duration
}

// Feedback plays a sine blip when asked, rate-limited so rapid triggers
// collapse into one tone. All methods are safe without a working audio
// device; they simply do nothing until Init succeeds.
type Feedback struct {
	enabled   bool
	frequency float64
	length    time.Duration

	mu       sync.Mutex
	ready    bool
	lastBlip time.Time
}

func New(opts Options) *Feedback {
	if opts.Frequency <= 0 {
		opts.Frequency = parameter.BlipFrequency
	}
	if opts.Length <= 0 {
		opts.Length = parameter.BlipDuration
	}
	return &Feedback{
		enabled:   opts.Enabled,
		frequency: opts.Frequency,
		length:    opts.Length,
	}
}

// Init opens the speaker. Failure is expected on machines without audio
// and should be logged, not treated as fatal.
func (f *Feedback) Init() error {
	if !f.enabled {
		return nil
	}

	sampleRate := beep.SampleRate(parameter.AudioSampleRate)
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.SpeakerBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	f.mu.Lock()
	f.ready = true
	f.mu.Unlock()
	return nil
}

// Blip plays the feedback tone unless one played within the cooldown.
func (f *Feedback) Blip() {
	if !f.armed(time.Now()) {
		return
	}

	sampleRate := beep.SampleRate(parameter.AudioSampleRate)
	sine, _ := generators.SineTone(sampleRate, f.frequency)
	speaker.Play(beep.Take(sampleRate.N(f.length), sine))
}

// Close releases the speaker if it was opened.
func (f *Feedback) Close() {
	f.mu.Lock()
	ready := f.ready
	f.ready = false
	f.mu.Unlock()

	if ready {
		speaker.Close()
	}
}

// armed reports whether a blip may play now, recording the trigger time
// when it may.
func (f *Feedback) armed(now time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.ready {
		return false
	}
	if now.Sub(f.lastBlip) < parameter.BlipCooldown {
		return false
	}
	f.lastBlip = now
	return true
}
