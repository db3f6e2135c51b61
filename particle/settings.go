package particle

import (
	"time"

	"github.com/lixenwraith/seasons/parameter"
)

// Settings are the spawn and motion tunables of a batch
type Settings struct {
	BatchSize      int
	Stagger        time.Duration
	Timeout        time.Duration
	MinDuration    time.Duration
	DurationJitter time.Duration
	// Drift is the maximum horizontal drift in columns either side
	Drift float64
}

// DefaultSettings returns the stock tuning
func DefaultSettings() Settings {
	return Settings{
		BatchSize:      parameter.BatchSize,
		Stagger:        parameter.BatchStagger,
		Timeout:        parameter.BatchTimeout,
		MinDuration:    parameter.FallMinDuration,
		DurationJitter: parameter.FallDurationJitter,
		Drift:          parameter.FallDrift,
	}
}

// WorstCaseLifetime is the longest time a particle of a batch can animate
func (s Settings) WorstCaseLifetime() time.Duration {
	last := time.Duration(0)
	if s.BatchSize > 0 {
		last = time.Duration(s.BatchSize-1) * s.Stagger
	}
	return last + s.MinDuration + s.DurationJitter
}
