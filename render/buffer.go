package render

import (
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/seasons/terminal"
)

// RenderBuffer is a compositor backed by a terminal.Cell array
// Wide glyphs own their first cell and mark the following cells as covered
type RenderBuffer struct {
	cells  []terminal.Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]terminal.Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = terminal.Cell{Width: 1, Bg: RGBBlack}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// Cells exposes the backing row-major slice
func (b *RenderBuffer) Cells() []terminal.Cell {
	return b.cells
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), zero Cell when out of bounds
func (b *RenderBuffer) Get(x, y int) terminal.Cell {
	if !b.inBounds(x, y) {
		return terminal.Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetBg replaces the background color, glyphs are preserved
func (b *RenderBuffer) SetBg(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Bg = bg
}

// BlendBg mixes bg over the existing background with alpha
func (b *RenderBuffer) BlendBg(x, y int, bg RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Bg = Lerp(dst.Bg, bg, alpha)
}

// SetGlyph writes one grapheme cluster with its display width
// Returns the width written, 0 when the glyph does not fit
func (b *RenderBuffer) SetGlyph(x, y int, glyph string, fg RGB, attrs terminal.Attr) int {
	w := uniseg.StringWidth(glyph)
	if w < 1 {
		w = 1
	}
	if !b.inBounds(x, y) || x+w > b.width {
		return 0
	}

	for i := 0; i < w; i++ {
		b.release(x+i, y)
	}

	idx := y*b.width + x
	dst := &b.cells[idx]
	dst.Glyph = glyph
	dst.Width = w
	dst.Covered = false
	dst.Fg = fg
	dst.Attrs = attrs
	for i := 1; i < w; i++ {
		c := &b.cells[idx+i]
		c.Glyph = ""
		c.Width = 0
		c.Covered = true
	}
	return w
}

// release clears any wide glyph overlapping (x, y) so it can be overwritten
func (b *RenderBuffer) release(x, y int) {
	idx := y*b.width + x
	c := &b.cells[idx]

	if c.Covered {
		// Walk back to the owner and blank it
		o := x - 1
		for o >= 0 && b.cells[y*b.width+o].Covered {
			o--
		}
		if o >= 0 {
			b.blank(o, y)
		}
	} else if c.Width > 1 {
		b.blank(x, y)
	}
}

// blank turns the glyph at owner (x, y) and its covered cells into spaces
func (b *RenderBuffer) blank(x, y int) {
	idx := y*b.width + x
	w := b.cells[idx].Width
	for i := 0; i < max(w, 1) && x+i < b.width; i++ {
		c := &b.cells[idx+i]
		c.Glyph = ""
		c.Width = 1
		c.Covered = false
	}
}

// SetText writes s grapheme by grapheme from (x, y) and returns the columns used
// Clusters that would cross the right edge are dropped
func (b *RenderBuffer) SetText(x, y int, s string, fg RGB, attrs terminal.Attr) int {
	col := x
	state := -1
	for len(s) > 0 {
		var cluster string
		var w int
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if w < 1 {
			w = 1
		}
		if col >= 0 {
			if b.SetGlyph(col, y, cluster, fg, attrs) == 0 {
				break
			}
		}
		col += w
	}
	return col - x
}

// FlushToTerminal writes render buffer to terminal
func (b *RenderBuffer) FlushToTerminal(term terminal.Terminal) {
	term.Flush(b.cells, b.width, b.height)
}
