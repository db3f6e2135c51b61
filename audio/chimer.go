// Package audio plays the season selection chime through the system speaker
package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/seasons/parameter"
	"github.com/lixenwraith/seasons/season"
)

// Silent is a chimer that never plays
type Silent struct{}

func (Silent) Chime(season.Season) {}

// BeepChimer plays chimes through a shared speaker mixer
// Safe for concurrent use, playback runs on the speaker goroutine
type BeepChimer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	log         *slog.Logger
	initialized bool

	muted atomic.Bool
}

// NewBeepChimer creates a chimer, Initialize must succeed before anything is heard
func NewBeepChimer(log *slog.Logger) *BeepChimer {
	if log == nil {
		log = slog.Default()
	}
	return &BeepChimer{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: parameter.ChimeVolume,
		log:    log,
	}
}

// Initialize opens the speaker once
func (c *BeepChimer) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(c.rate, c.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(c.mixer)
	c.initialized = true
	c.log.Debug("audio initialized", "sample_rate", int(c.rate))
	return nil
}

// Chime queues the arpeggio of s, no-op when muted or not initialized
func (c *BeepChimer) Chime(s season.Season) {
	if c.muted.Load() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}

	st, err := CreateChime(s, c.rate, c.volume)
	if err != nil {
		c.log.Warn("chime build failed", "season", s.String(), "error", err)
		return
	}

	speaker.Lock()
	c.mixer.Add(st)
	speaker.Unlock()
}

// SetMuted enables or disables playback
func (c *BeepChimer) SetMuted(muted bool) {
	c.muted.Store(muted)
}

// ToggleMute flips the mute state and returns the new one
func (c *BeepChimer) ToggleMute() bool {
	for {
		old := c.muted.Load()
		if c.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether playback is disabled
func (c *BeepChimer) Muted() bool {
	return c.muted.Load()
}

// Cleanup drops queued chimes and closes the speaker
func (c *BeepChimer) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	c.initialized = false
}
