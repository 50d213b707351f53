package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// SpeakerBufferDuration determines playback latency
	SpeakerBufferDuration = 100 * time.Millisecond
)

// Landmark Blip Sound
const (
	BlipFrequency = 880.0
	BlipDuration  = 60 * time.Millisecond

	// BlipCooldown suppresses re-triggering while the crosshair sweeps along the bar
	BlipCooldown = 150 * time.Millisecond
)
