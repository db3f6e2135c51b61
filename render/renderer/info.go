package renderer

import (
	"fmt"
	"math"

	"github.com/rivo/uniseg"

	"github.com/lixenwraith/seasons/engine"
	"github.com/lixenwraith/seasons/motion"
	"github.com/lixenwraith/seasons/parameter"
	"github.com/lixenwraith/seasons/render"
	"github.com/lixenwraith/seasons/terminal"
)

// InfoRenderer draws the selected season panel in the accent color
// The panel fades and rises in once, after the first selection
type InfoRenderer struct {
	ctrl *engine.Controller
}

func NewInfoRenderer(ctrl *engine.Controller) *InfoRenderer {
	return &InfoRenderer{ctrl: ctrl}
}

// IsVisible hides the panel until a season is selected
func (r *InfoRenderer) IsVisible() bool {
	_, ok := r.ctrl.Current()
	return ok
}

func (r *InfoRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	cfg, ok := r.ctrl.Config()
	if !ok {
		return
	}

	since := ctx.Now.Sub(r.ctrl.FirstSelectedAt()) - parameter.InfoDelay
	if since < 0 {
		return
	}
	p := motion.EaseOut(motion.Progress(since.Seconds(), parameter.InfoFade.Seconds()))
	y := ctx.Scene.InfoY + int(math.Round(float64(parameter.InfoRise)*(1-p)))
	accent := terminal.Hex(r.ctrl.Palette(ctx.Now).Accent)

	lines := []struct {
		text  string
		attrs terminal.Attr
	}{
		{fmt.Sprintf(parameter.InfoHeading, cfg.Label), terminal.AttrBold},
		{fmt.Sprintf(parameter.InfoBody, cfg.Name), terminal.AttrItalic},
	}
	for i, l := range lines {
		row := y + i*2
		if row >= ctx.Scene.HintY {
			break
		}
		x := (ctx.ScreenWidth - uniseg.StringWidth(l.text)) / 2
		bg := buf.Get(max(x, 0), row).Bg
		buf.SetText(x, row, l.text, render.Lerp(bg, accent, p), l.attrs)
	}
}
