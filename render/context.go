package render

import (
	"time"

	"github.com/lixenwraith/seasons/terminal/tui"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Now time.Time
	// DeltaTime is the time since the previous frame in seconds
	DeltaTime float64

	ScreenWidth  int
	ScreenHeight int

	// Scene is the layout for the current screen size
	Scene tui.Scene
}

// NewRenderContext builds the context of one frame
func NewRenderContext(now time.Time, delta time.Duration, scene tui.Scene) RenderContext {
	return RenderContext{
		Now:          now,
		DeltaTime:    delta.Seconds(),
		ScreenWidth:  scene.Screen.W,
		ScreenHeight: scene.Screen.H,
		Scene:        scene,
	}
}
