package renderer

import (
	"math"

	"github.com/lixenwraith/seasons/engine"
	"github.com/lixenwraith/seasons/motion"
	"github.com/lixenwraith/seasons/parameter"
	"github.com/lixenwraith/seasons/render"
	"github.com/lixenwraith/seasons/terminal"
)

// TitleRenderer draws the heading, sliding down and fading in at startup
type TitleRenderer struct {
	ctrl  *engine.Controller
	color render.RGB
}

func NewTitleRenderer(ctrl *engine.Controller) *TitleRenderer {
	return &TitleRenderer{
		ctrl:  ctrl,
		color: terminal.Hex(parameter.TextColor),
	}
}

func (r *TitleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := motion.EaseOut(motion.Progress(
		ctx.Now.Sub(r.ctrl.Started()).Seconds(),
		parameter.TitleEntrance.Seconds(),
	))

	y := ctx.Scene.TitleY - int(math.Round(float64(parameter.TitleDrop)*(1-p)))
	if y < 0 {
		return
	}

	text := render.Truncate(parameter.Title, ctx.ScreenWidth, "")
	x := (ctx.ScreenWidth - render.TextWidth(text)) / 2
	bg := buf.Get(max(x, 0), y).Bg
	buf.SetText(x, y, text, render.Lerp(bg, r.color, p), terminal.AttrBold)
}
