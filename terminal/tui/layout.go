package tui

import "github.com/lixenwraith/seasons/parameter"

// Center returns a centered region of given size within outer
func Center(outer Region, w, h int) Region {
	x := (outer.W - w) / 2
	y := (outer.H - h) / 2
	return outer.Sub(x, y, w, h)
}

// Columns calculates how many columns fit in width
func Columns(availableW, itemW, gap int) int {
	if itemW <= 0 || availableW < itemW {
		return 0
	}
	// First item has no gap, subsequent items need gap + itemW
	return 1 + (availableW-itemW)/(itemW+gap)
}

// Scene is the screen layout of the picker
type Scene struct {
	Screen Region
	// TitleY is the resting row of the title
	TitleY int
	// Cols is the tile grid column count, 4 or fewer on narrow screens
	Cols  int
	Tiles []Region
	// InfoY is the first row of the info panel
	InfoY int
	// HintY is the row of the key hint bar
	HintY int
}

// Layout places title, tiles, info panel and hint bar for a width x height screen
// The tile block is centered, tiles wrap to fewer columns when the screen is narrow
func Layout(width, height, tileCount int) Scene {
	screen := Region{W: width, H: height}
	s := Scene{Screen: screen, TitleY: 1, HintY: height - 1}

	cols := Columns(width, parameter.TileWidth, parameter.TileGapX)
	cols = min(max(cols, 1), tileCount)
	// Rows are kept full, 3 columns for 4 tiles becomes 2
	for cols > 1 && tileCount%cols != 0 {
		cols--
	}
	rows := (tileCount + cols - 1) / cols
	s.Cols = cols

	blockW := cols*parameter.TileWidth + (cols-1)*parameter.TileGapX
	blockH := rows*parameter.TileHeight + (rows-1)*parameter.TileGapY
	block := Center(screen, blockW, blockH)
	if block.Y < s.TitleY+2 {
		block = screen.Sub(block.X, s.TitleY+2, blockW, blockH)
	}

	s.Tiles = make([]Region, tileCount)
	for i := range s.Tiles {
		col, row := i%cols, i/cols
		s.Tiles[i] = Region{
			X: block.X + col*(parameter.TileWidth+parameter.TileGapX),
			Y: block.Y + row*(parameter.TileHeight+parameter.TileGapY),
			W: parameter.TileWidth,
			H: parameter.TileHeight,
		}
	}

	s.InfoY = block.Y + blockH + 1
	return s
}

// HitTest returns the tile index under (x, y) or -1
func (s Scene) HitTest(x, y int) int {
	for i, t := range s.Tiles {
		if t.Contains(x, y) {
			return i
		}
	}
	return -1
}
