// Package season holds the static catalog of the four seasonal themes
package season

import (
	"errors"
	"fmt"
	"strings"
)

// Season identifies one of the four fixed visual themes
type Season uint8

const (
	Spring Season = iota
	Summer
	Autumn
	Winter

	// Count is the number of seasons, not a season
	Count = 4
)

// ErrUnknownSeason is returned by Parse for names outside the catalog
var ErrUnknownSeason = errors.New("unknown season")

var identifiers = [Count]string{"spring", "summer", "autumn", "winter"}

// All returns the seasons in tile display order
func All() []Season {
	return []Season{Spring, Summer, Autumn, Winter}
}

// Valid reports whether s is a catalog season
func (s Season) Valid() bool {
	return s < Count
}

// String returns the lowercase identifier
func (s Season) String() string {
	if !s.Valid() {
		return fmt.Sprintf("season(%d)", uint8(s))
	}
	return identifiers[s]
}

// Parse resolves an identifier or display name, case-insensitive and trimmed
func Parse(name string) (Season, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, id := range identifiers {
		if id == n || strings.ToLower(catalog[i].Name) == n {
			return Season(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSeason, name)
}
