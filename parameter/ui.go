package parameter

import "time"

// Frame timing
const (
	// FPS is the default frame rate
	FPS = 60
	// FrameInterval is the frame period at the default frame rate
	FrameInterval = time.Second / FPS
)

// Theme transitions
const (
	// BackgroundTransition is the crossfade time between season palettes
	BackgroundTransition = 800 * time.Millisecond
	// TitleEntrance is the slide-in time of the title
	TitleEntrance = time.Second
	// TitleDrop is how many rows the title slides down during its entrance
	TitleDrop = 3
	// InfoDelay is the wait before the info panel appears after a selection
	InfoDelay = 300 * time.Millisecond
	// InfoFade is the fade and rise time of the info panel
	InfoFade = 400 * time.Millisecond
	// InfoRise is the number of rows the info panel rises while fading in
	InfoRise = 2
	// PressFlash is the duration of the tile tap feedback
	PressFlash = 150 * time.Millisecond
)

// Tile spring, same constants as the hover spring of the tiles
const (
	SpringStiffness = 400.0
	SpringDamping   = 25.0
	SpringMass      = 0.8
	// TileLift is the focused tile offset in rows
	TileLift = 1.0
)

// Tile grid geometry
const (
	TileWidth  = 20
	TileHeight = 5
	TileGapX   = 2
	TileGapY   = 1
)

// Text
const (
	Title       = "🌈 Estaciones Kawaii 🌈"
	InfoHeading = "¡Has seleccionado %s!"
	InfoBody    = "Disfruta de la magia de %s ✨"
	HintText    = "1-4 pick  ←→↑↓ move  ⏎ select  q quit"
	PausedText  = "⏸ paused"
)

// TextColor is the tile text color
const TextColor = "#2c3e50"

// TileIdleColor is the tile fill when not selected
const TileIdleColor = "#ffffff"

// TileIdleAlpha is the opacity of the idle tile fill
const TileIdleAlpha = 0.9

// TileSelectedAlpha is the tint strength of the selected tile (0x40..0x60 of the primary/secondary)
const TileSelectedAlpha = 0.3

// TileBorderAlpha is the accent border opacity of the selected tile
const TileBorderAlpha = 0.5
