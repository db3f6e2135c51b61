package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/seasons/parameter"
	"github.com/lixenwraith/seasons/season"
)

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope limits s to duration and shapes it with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	return &envelope{
		streamer:       beep.Take(total, s),
		attackSamples:  min(rate.N(attack), total),
		releaseSamples: min(rate.N(release), total),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so 0 volume is expressed as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateChime builds the selection arpeggio of s: three enveloped sine notes
// separated by short gaps
func CreateChime(s season.Season, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes := Arpeggio(s)
	parts := make([]beep.Streamer, 0, len(notes)*2-1)

	for i, freq := range notes {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, fmt.Errorf("sine tone %.2f Hz: %w", freq, err)
		}
		if i > 0 {
			parts = append(parts, beep.Silence(rate.N(parameter.ChimeGap)))
		}
		parts = append(parts, NewEnvelope(tone, parameter.ChimeNoteDuration, parameter.ChimeAttack, parameter.ChimeRelease, rate))
	}

	return newVolume(beep.Seq(parts...), volume), nil
}

// ChimeLength returns the sample count of a chime at rate
func ChimeLength(rate beep.SampleRate) int {
	return 3*rate.N(parameter.ChimeNoteDuration) + 2*rate.N(parameter.ChimeGap)
}
