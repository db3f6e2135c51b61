// Package terminal wraps a tcell screen behind a small cell-flush and event API
package terminal

import (
	"fmt"
	"io"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrReverse   Attr = 1 << 4
)

// Cell represents a single terminal cell
// Glyph is one grapheme cluster, empty renders as a space
// A wide glyph occupies Width columns, the cells it covers set Covered
type Cell struct {
	Glyph   string
	Width   int
	Covered bool
	Fg      RGB
	Bg      RGB
	Attrs   Attr
}

// Terminal provides screen access for one full-screen session
type Terminal interface {
	// Init enters the alternate screen, hides the cursor and enables the mouse
	Init() error
	// Fini restores the terminal, safe to call more than once
	Fini()
	// Size returns the screen size in cells
	Size() (width, height int)
	// Flush writes a row-major cell grid and shows it
	Flush(cells []Cell, width, height int)
	// Sync forces a full repaint on next flush
	Sync()
	// PollEvent blocks until the next input, resize or close event
	PollEvent() Event
	// ColorMode returns the color depth used for output
	ColorMode() ColorMode
}

// EmergencyReset writes escape sequences that leave the alternate screen,
// show the cursor and reset attributes. Used on crash paths when Fini may not run
func EmergencyReset(w io.Writer) {
	fmt.Fprint(w, "\x1b[0m\x1b[?1000l\x1b[?1006l\x1b[?25h\x1b[?1049l")
}
