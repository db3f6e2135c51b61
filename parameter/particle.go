// Package parameter holds the tuning constants of the picker
package parameter

import (
	"time"
)

// Batch spawning
const (
	// BatchSize is the number of particles spawned per season selection
	BatchSize = 30
	// BatchStagger is the delay step between consecutive particles of a batch
	BatchStagger = 250 * time.Millisecond
	// BatchTimeout bounds every particle lifetime, survivors are reaped when it fires
	BatchTimeout = 25 * time.Second
)

// Falling glyph motion, distances in terminal cells
const (
	// FallMinDuration is the shortest travel time from top to bottom
	FallMinDuration = 10 * time.Second
	// FallDurationJitter is the random extra travel time added per particle
	FallDurationJitter = 6 * time.Second
	// FallMargin is how many rows above and below the viewport travel starts and ends
	FallMargin = 2.0
	// FallDrift is the maximum horizontal drift either side of the start column
	FallDrift = 3.0
	// GlyphWidth is the column width reserved for an emoji glyph
	GlyphWidth = 2
)

// Keyframes of the falling glyph, times are fractions of the travel duration
var (
	OpacityTimes  = []float64{0, 0.1, 0.3, 0.7, 0.9, 1}
	OpacityValues = []float64{0, 1, 1, 0.8, 0.3, 0}

	// ScaleValues[0] is replaced by the per particle initial scale
	ScaleTimes  = []float64{0, 0.1, 0.3, 0.6, 0.8, 1}
	ScaleValues = []float64{0, 1, 1.1, 1, 0.8, 0.2}

	RotateTimes = []float64{0, 0.3, 1}
)

// Randomized ranges of per particle rotation and initial scale
const (
	RotateInitialRange = 360.0
	RotateMidBase      = 180.0
	RotateMidRange     = 360.0
	RotateEndBase      = 720.0
	RotateEndRange     = 180.0

	ScaleInitialMin   = 0.3
	ScaleInitialRange = 0.5
)

// ExitFade is how long a sprite cut by its batch timeout takes to fade out
const ExitFade = 300 * time.Millisecond

// Fall easing, cubic-bezier control points of the vertical sweep
const (
	FallBezierX1 = 0.25
	FallBezierY1 = 0.46
	FallBezierX2 = 0.45
	FallBezierY2 = 0.94
)

// Terminal projection
const (
	// GlyphDotScale is the scale under which a glyph is drawn as a dot
	GlyphDotScale = 0.35
	// GlyphDotOpacity is the opacity under which a glyph is drawn as a dot
	GlyphDotOpacity = 0.35
	// GlyphMinOpacity is the opacity under which a glyph is not drawn
	GlyphMinOpacity = 0.05
	// WobbleAmplitude is the horizontal offset in columns produced by rotation
	WobbleAmplitude = 0.5
)
