package parameter

import "time"

// Chime
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100
	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
	// ChimeNoteDuration is the length of one note of the selection chime
	ChimeNoteDuration = 90 * time.Millisecond
	// ChimeGap is the silence between chime notes
	ChimeGap = 15 * time.Millisecond
	// ChimeVolume scales the sine output
	ChimeVolume = 0.25
)

// Chime envelope
const (
	ChimeAttack  = 5 * time.Millisecond
	ChimeRelease = 60 * time.Millisecond
)
