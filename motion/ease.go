// Package motion provides easing curves, keyframe tracks and a damped spring
// All functions are pure and operate on normalized progress
package motion

import "math"

// Ease maps linear progress in [0,1] to eased progress
type Ease func(t float64) float64

// Linear is the identity easing
func Linear(t float64) float64 { return t }

// Preset curves matching the usual CSS keywords
var (
	EaseIn    = CubicBezier(0.42, 0, 1, 1)
	EaseOut   = CubicBezier(0, 0, 0.58, 1)
	EaseInOut = CubicBezier(0.42, 0, 0.58, 1)
)

const (
	newtonIterations = 8
	newtonEpsilon    = 1e-7
	bisectIterations = 32
)

// CubicBezier builds an easing from the two inner control points of a cubic
// bezier anchored at (0,0) and (1,1). x1 and x2 must lie in [0,1]
func CubicBezier(x1, y1, x2, y2 float64) Ease {
	x1 = Clamp01(x1)
	x2 = Clamp01(x2)

	// Polynomial coefficients of B(s) = ((a*s + b)*s + c)*s
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	solve := func(x float64) float64 {
		s := x
		for i := 0; i < newtonIterations; i++ {
			dx := sampleX(s) - x
			if math.Abs(dx) < newtonEpsilon {
				return s
			}
			d := slopeX(s)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= dx / d
		}

		// Newton stalled, fall back to bisection
		lo, hi := 0.0, 1.0
		s = x
		for i := 0; i < bisectIterations; i++ {
			v := sampleX(s)
			if math.Abs(v-x) < newtonEpsilon {
				return s
			}
			if v < x {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return s
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return sampleY(solve(t))
	}
}

// Clamp01 limits v to [0,1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Lerp interpolates a to b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Progress returns elapsed/total clamped to [0,1], zero total is complete
func Progress(elapsed, total float64) float64 {
	if total <= 0 {
		return 1
	}
	return Clamp01(elapsed / total)
}
