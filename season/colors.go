package season

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// GradientAngle is the CSS angle of every background gradient
const GradientAngle = 135

// Stop offsets of the three background gradient colors
var StopOffsets = [3]float64{0, 0.5, 1}

// Colors is the hex palette of a theme
type Colors struct {
	// Background holds the gradient stops at 0%, 50% and 100%
	Background [3]string
	Primary    string
	Secondary  string
	Accent     string
}

// Gradient renders the background as a CSS linear-gradient string
func (c Colors) Gradient() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "linear-gradient(%ddeg", GradientAngle)
	for i, hex := range c.Background {
		fmt.Fprintf(&sb, ", %s %d%%", hex, int(StopOffsets[i]*100))
	}
	sb.WriteByte(')')
	return sb.String()
}

// mustHex parses a catalog hex color, catalog entries are constants so a bad one panics
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("season: bad hex color %q: %v", s, err))
	}
	return c
}

// Stops parses the background gradient stops
func (c Colors) Stops() [3]colorful.Color {
	var out [3]colorful.Color
	for i, hex := range c.Background {
		out[i] = mustHex(hex)
	}
	return out
}

// At samples the background gradient at t in [0,1]
func (c Colors) At(t float64) colorful.Color {
	return SampleStops(c.Stops(), t)
}

// SampleStops samples three pre-parsed gradient stops at t in [0,1]
func SampleStops(stops [3]colorful.Color, t float64) colorful.Color {
	switch {
	case t <= StopOffsets[0]:
		return stops[0]
	case t >= StopOffsets[2]:
		return stops[2]
	case t < StopOffsets[1]:
		return stops[0].BlendRgb(stops[1], (t-StopOffsets[0])/(StopOffsets[1]-StopOffsets[0]))
	default:
		return stops[1].BlendRgb(stops[2], (t-StopOffsets[1])/(StopOffsets[2]-StopOffsets[1]))
	}
}

// Blend mixes two palettes channel by channel, t=0 is c and t=1 is other
// Result keeps hex form so it can be blended again
func (c Colors) Blend(other Colors, t float64) Colors {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	mix := func(a, b string) string {
		return mustHex(a).BlendRgb(mustHex(b), t).Clamped().Hex()
	}
	var out Colors
	for i := range c.Background {
		out.Background[i] = mix(c.Background[i], other.Background[i])
	}
	out.Primary = mix(c.Primary, other.Primary)
	out.Secondary = mix(c.Secondary, other.Secondary)
	out.Accent = mix(c.Accent, other.Accent)
	return out
}
