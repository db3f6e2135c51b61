package season

import "fmt"

// Config is the immutable display record of a season
type Config struct {
	// Name is the localized display name
	Name string
	// Label is the kanji label with its reading
	Label string
	// Glyphs are grapheme clusters, the first one is shown on the tile
	Glyphs []string
	Colors Colors
}

// Primary returns the glyph shown on the season tile
func (c Config) Primary() string {
	return c.Glyphs[0]
}

// Has reports whether glyph belongs to the palette
func (c Config) Has(glyph string) bool {
	for _, g := range c.Glyphs {
		if g == glyph {
			return true
		}
	}
	return false
}

var catalog = [Count]Config{
	Spring: {
		Name:   "Primavera",
		Label:  "春 (はる)",
		Glyphs: []string{"🌸", "🌺", "🦋", "🌷", "🌻", "🐝"},
		Colors: Colors{
			Background: [3]string{"#ffb3d9", "#ffe6f2", "#f0f8ff"},
			Primary:    "#ff9ec7",
			Secondary:  "#ffb3d9",
			Accent:     "#ff69b4",
		},
	},
	Summer: {
		Name:   "Verano",
		Label:  "夏 (なつ)",
		Glyphs: []string{"☀️", "🌞", "🏖️", "🌊", "🍦", "🦜"},
		Colors: Colors{
			Background: [3]string{"#87ceeb", "#ffeb3b", "#ffe082"},
			Primary:    "#4fc3f7",
			Secondary:  "#81c784",
			Accent:     "#ffb74d",
		},
	},
	Autumn: {
		Name:   "Otoño",
		Label:  "秋 (あき)",
		Glyphs: []string{"🍂", "🍁", "🦔", "🎃", "🌰", "🦉"},
		Colors: Colors{
			Background: [3]string{"#d2691e", "#daa520", "#f4a460"},
			Primary:    "#d2691e",
			Secondary:  "#daa520",
			Accent:     "#cd853f",
		},
	},
	Winter: {
		Name:   "Invierno",
		Label:  "冬 (ふゆ)",
		Glyphs: []string{"❄️", "⛄", "🎿", "🔥", "☃️", "🧊"},
		Colors: Colors{
			Background: [3]string{"#b0e0e6", "#e6f3ff", "#f0f8ff"},
			Primary:    "#87ceeb",
			Secondary:  "#b0e0e6",
			Accent:     "#4682b4",
		},
	},
}

// DefaultColors is the palette shown before any selection
var DefaultColors = Colors{
	Background: [3]string{"#ffb3d9", "#ffe6f2", "#e1f5fe"},
	Primary:    "#ff9ec7",
	Secondary:  "#b39ddb",
	Accent:     "#81c784",
}

// Lookup returns the config of s. Panics on values outside the catalog
func Lookup(s Season) Config {
	if !s.Valid() {
		panic(fmt.Sprintf("season: lookup of %s", s))
	}
	return catalog[s]
}
