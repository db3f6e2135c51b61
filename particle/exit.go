package particle

import (
	"time"

	"github.com/lixenwraith/seasons/motion"
)

// Exit is a sprite cut by its batch timeout, fading out from its last frame
// It is no longer live and never emits a completion signal
type Exit struct {
	Sprite
	From Frame
	At   time.Time
}

// NewExit captures the frame of sp at now, false when sp was not on screen
func NewExit(sp Sprite, now time.Time) (Exit, bool) {
	f := sp.Frame(now)
	if f.Phase != Animating {
		return Exit{}, false
	}
	return Exit{Sprite: sp, From: f, At: now}, true
}

// Frame returns the exit frame at now, opacity and scale shrink to zero over fade
// False once the fade is over
func (e Exit) Frame(now time.Time, fade time.Duration) (Frame, bool) {
	p := motion.Progress(now.Sub(e.At).Seconds(), fade.Seconds())
	if p >= 1 {
		return Frame{}, false
	}
	f := e.From
	k := 1 - motion.EaseOut(p)
	f.Opacity *= k
	f.Scale *= k
	return f, true
}

// Done reports whether the fade is over at now
func (e Exit) Done(now time.Time, fade time.Duration) bool {
	return now.Sub(e.At) >= fade
}
