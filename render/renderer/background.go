package renderer

import (
	"github.com/lixenwraith/seasons/engine"
	"github.com/lixenwraith/seasons/render"
	"github.com/lixenwraith/seasons/season"
	"github.com/lixenwraith/seasons/terminal"
)

// BackgroundRenderer fills the screen with the diagonal season gradient
type BackgroundRenderer struct {
	ctrl *engine.Controller
}

func NewBackgroundRenderer(ctrl *engine.Controller) *BackgroundRenderer {
	return &BackgroundRenderer{ctrl: ctrl}
}

func (r *BackgroundRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	w, h := buf.Bounds()
	if w == 0 || h == 0 {
		return
	}
	stops := r.ctrl.Palette(ctx.Now).Stops()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := season.SampleStops(stops, diagonal(x, y, w, h))
			buf.SetBg(x, y, terminal.FromColorful(c))
		}
	}
}

// diagonal projects (x, y) on the 135deg axis, top-left 0 to bottom-right 1
func diagonal(x, y, w, h int) float64 {
	fx, fy := 0.0, 0.0
	if w > 1 {
		fx = float64(x) / float64(w-1)
	}
	if h > 1 {
		fy = float64(y) / float64(h-1)
	}
	return (fx + fy) / 2
}
