// Package particle spawns, animates and reaps the falling season glyphs
package particle

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/lixenwraith/seasons/season"
)

// ID is a session-unique particle identifier, assigned monotonically
type ID uint64

// Particle is the immutable record of one falling glyph
type Particle struct {
	ID     ID
	Batch  ulid.ULID
	Season season.Season
	Glyph  string
	// Delay is the wait between batch creation and the start of the animation
	Delay time.Duration
}

// Sprite is a particle with its motion parameters and spawn time
type Sprite struct {
	Particle
	Motion Params
	Born   time.Time
}

// Batch is the group of particles created by one selection
type Batch struct {
	ID       ulid.ULID
	Season   season.Season
	Created  time.Time
	Deadline time.Time
	Sprites  []Sprite
}

// Phase is the lifecycle position of a sprite at a given instant
type Phase uint8

const (
	// Scheduled sprites are waiting out their delay
	Scheduled Phase = iota
	// Animating sprites are travelling across the viewport
	Animating
	// Done sprites have finished their travel and await removal
	Done
)

func (p Phase) String() string {
	switch p {
	case Scheduled:
		return "scheduled"
	case Animating:
		return "animating"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Elapsed returns animation time at now, negative while scheduled
func (s Sprite) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.Born) - s.Delay
}

// Frame evaluates the sprite at now
func (s Sprite) Frame(now time.Time) Frame {
	return s.Motion.At(s.Elapsed(now))
}

// End returns the instant the animation completes
func (s Sprite) End() time.Time {
	return s.Born.Add(s.Delay + s.Motion.Duration)
}
