package tui

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]string{
	LineSingle:  {"┌", "─", "┐", "│", "└", "┘"},
	LineDouble:  {"╔", "═", "╗", "║", "╚", "╝"},
	LineRounded: {"╭", "─", "╮", "│", "╰", "╯"},
	LineHeavy:   {"┏", "━", "┓", "┃", "┗", "┛"},
	LineNone:    {" ", " ", " ", " ", " ", " "},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)

// Box walks the border of r, calling draw with absolute coordinates and the glyph of each cell
// Regions smaller than 2x2 draw nothing
func (r Region) Box(line LineType, draw func(x, y int, glyph string)) {
	if r.W < 2 || r.H < 2 {
		return
	}
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}

	chars := boxChars[line]
	right, bottom := r.X+r.W-1, r.Y+r.H-1

	// Corners
	draw(r.X, r.Y, chars[boxTL])
	draw(right, r.Y, chars[boxTR])
	draw(r.X, bottom, chars[boxBL])
	draw(right, bottom, chars[boxBR])

	// Horizontal edges
	for x := r.X + 1; x < right; x++ {
		draw(x, r.Y, chars[boxH])
		draw(x, bottom, chars[boxH])
	}

	// Vertical edges
	for y := r.Y + 1; y < bottom; y++ {
		draw(r.X, y, chars[boxV])
		draw(right, y, chars[boxV])
	}
}
