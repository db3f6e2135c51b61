package particle

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/seasons/motion"
	"github.com/lixenwraith/seasons/parameter"
)

var (
	fallEase = motion.CubicBezier(
		parameter.FallBezierX1, parameter.FallBezierY1,
		parameter.FallBezierX2, parameter.FallBezierY2,
	)
	opacityTrack = motion.MustTrack(parameter.OpacityTimes, parameter.OpacityValues, nil)
	scaleTrack   = motion.MustTrack(parameter.ScaleTimes, parameter.ScaleValues, nil)
)

// Params is the randomized animation record of one particle
// Positions are in cells relative to the viewport origin
type Params struct {
	StartX float64
	Drift  float64
	StartY float64
	EndY   float64
	// Rotate holds the initial, mid and end angle in degrees
	Rotate   [3]float64
	Scale0   float64
	Duration time.Duration
}

// Frame is a sampled animation state
type Frame struct {
	Phase    Phase
	Progress float64
	X, Y     float64
	Rotation float64
	Opacity  float64
	Scale    float64
}

// NewParams draws animation parameters for a viewport of width x height cells
// Deterministic for a given rng state
func NewParams(rng *rand.Rand, width, height int, s Settings) Params {
	span := float64(width - parameter.GlyphWidth)
	if span < 1 {
		span = 1
	}

	duration := s.MinDuration
	if s.DurationJitter > 0 {
		duration += time.Duration(rng.Int63n(int64(s.DurationJitter)))
	}

	return Params{
		StartX: rng.Float64() * span,
		Drift:  (rng.Float64()*2 - 1) * s.Drift,
		StartY: -parameter.FallMargin,
		EndY:   float64(height) + parameter.FallMargin,
		Rotate: [3]float64{
			rng.Float64() * parameter.RotateInitialRange,
			parameter.RotateMidBase + rng.Float64()*parameter.RotateMidRange,
			parameter.RotateEndBase + rng.Float64()*parameter.RotateEndRange,
		},
		Scale0:   parameter.ScaleInitialMin + rng.Float64()*parameter.ScaleInitialRange,
		Duration: duration,
	}
}

// At samples the animation t after its start, t < 0 is before the start
func (p Params) At(t time.Duration) Frame {
	f := Frame{Phase: Animating}
	switch {
	case t < 0:
		f.Phase = Scheduled
	case t >= p.Duration:
		f.Phase = Done
	}

	f.Progress = motion.Progress(t.Seconds(), p.Duration.Seconds())
	if t < 0 {
		f.Progress = 0
	}

	f.Y = motion.Lerp(p.StartY, p.EndY, fallEase(f.Progress))
	f.X = p.StartX + p.Drift*motion.EaseInOut(f.Progress)
	f.Rotation = p.rotation(f.Progress)
	f.Opacity = opacityTrack.At(f.Progress)
	f.Scale = scaleTrack.With(p.Scale0).At(f.Progress)
	return f
}

func (p Params) rotation(progress float64) float64 {
	tr := motion.Track{Times: parameter.RotateTimes, Values: p.Rotate[:]}
	return tr.At(progress)
}
