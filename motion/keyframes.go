package motion

import "fmt"

// Track interpolates a sequence of keyframe values placed at fractional times
// Segments are eased independently with Ease, linear when nil
type Track struct {
	Times  []float64
	Values []float64
	Ease   Ease
}

// NewTrack validates and builds a track
// Times must start at 0, end at 1 and be non-decreasing, one per value
func NewTrack(times, values []float64, ease Ease) (Track, error) {
	if len(values) == 0 {
		return Track{}, fmt.Errorf("keyframe track has no values")
	}
	if len(times) != len(values) {
		return Track{}, fmt.Errorf("keyframe track has %d times for %d values", len(times), len(values))
	}
	if times[0] != 0 || times[len(times)-1] != 1 {
		return Track{}, fmt.Errorf("keyframe times must span 0..1, got %v..%v", times[0], times[len(times)-1])
	}
	for i := 1; i < len(times); i++ {
		if times[i] < times[i-1] {
			return Track{}, fmt.Errorf("keyframe times decrease at index %d", i)
		}
	}
	return Track{Times: times, Values: values, Ease: ease}, nil
}

// MustTrack is NewTrack for static tables, panics on invalid input
func MustTrack(times, values []float64, ease Ease) Track {
	t, err := NewTrack(times, values, ease)
	if err != nil {
		panic(err)
	}
	return t
}

// With returns a copy whose first value is replaced, for tracks that start
// from a per instance value
func (tr Track) With(first float64) Track {
	values := make([]float64, len(tr.Values))
	copy(values, tr.Values)
	values[0] = first
	return Track{Times: tr.Times, Values: values, Ease: tr.Ease}
}

// At samples the track at progress p, clamped to [0,1]
func (tr Track) At(p float64) float64 {
	n := len(tr.Values)
	if n == 1 {
		return tr.Values[0]
	}
	p = Clamp01(p)
	if p >= 1 {
		return tr.Values[n-1]
	}

	// Last segment whose start time is <= p
	i := 0
	for i < n-2 && tr.Times[i+1] <= p {
		i++
	}

	span := tr.Times[i+1] - tr.Times[i]
	local := 1.0
	if span > 0 {
		local = (p - tr.Times[i]) / span
	}
	if tr.Ease != nil {
		local = tr.Ease(local)
	}
	return Lerp(tr.Values[i], tr.Values[i+1], local)
}
