package renderer

import (
	"fmt"

	"github.com/lixenwraith/seasons/engine"
	"github.com/lixenwraith/seasons/parameter"
	"github.com/lixenwraith/seasons/render"
	"github.com/lixenwraith/seasons/terminal"
)

// HintRenderer draws key help on the left and live counters on the right of the last row
type HintRenderer struct {
	ctrl    *engine.Controller
	visible bool
	paused  bool
}

func NewHintRenderer(ctrl *engine.Controller) *HintRenderer {
	return &HintRenderer{ctrl: ctrl, visible: true}
}

// Toggle flips the hint bar visibility
func (r *HintRenderer) Toggle() {
	r.visible = !r.visible
}

// SetPaused switches the counters for a paused marker
func (r *HintRenderer) SetPaused(paused bool) {
	r.paused = paused
}

func (r *HintRenderer) IsVisible() bool {
	return r.visible
}

func (r *HintRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	y := ctx.Scene.HintY
	if y < 0 {
		return
	}
	w := ctx.ScreenWidth

	st := r.ctrl.Stats()
	stats := fmt.Sprintf("%d live · %d spawned", st.Live, st.Spawned)
	if r.paused {
		stats = parameter.PausedText
	}

	fg := terminal.Hex(parameter.TextColor)
	for x := 0; x < w; x++ {
		buf.BlendBg(x, y, render.RGBWhite, 0.35)
	}

	sw := render.TextWidth(stats)
	budget := w - 2
	showStats := render.TextWidth(parameter.HintText)+sw+3 <= w
	if showStats {
		budget = w - sw - 3
	}

	buf.SetText(1, y, render.Truncate(parameter.HintText, max(budget, 0), "…"), fg, terminal.AttrDim)
	if showStats {
		buf.SetText(w-sw-1, y, stats, fg, terminal.AttrDim)
	}
}
