package renderer

import (
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/seasons/engine"
	"github.com/lixenwraith/seasons/motion"
	"github.com/lixenwraith/seasons/parameter"
	"github.com/lixenwraith/seasons/render"
	"github.com/lixenwraith/seasons/season"
	"github.com/lixenwraith/seasons/terminal"
	"github.com/lixenwraith/seasons/terminal/tui"
)

// TilesRenderer draws the season tiles with selection tint and focus lift
type TilesRenderer struct {
	ctrl    *engine.Controller
	springs [season.Count]*motion.Spring
	text    render.RGB
	idle    render.RGB
}

func NewTilesRenderer(ctrl *engine.Controller) *TilesRenderer {
	r := &TilesRenderer{
		ctrl: ctrl,
		text: terminal.Hex(parameter.TextColor),
		idle: terminal.Hex(parameter.TileIdleColor),
	}
	for i := range r.springs {
		r.springs[i] = motion.NewSpring(parameter.SpringStiffness, parameter.SpringDamping, parameter.SpringMass, 0)
	}
	return r
}

// Lift returns the current spring offset of tile i in rows
func (r *TilesRenderer) Lift(i int) float64 {
	return r.springs[i].Position
}

func (r *TilesRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	current, selected := r.ctrl.Current()
	focus := r.ctrl.Focus()
	pressed, pressedAt := r.ctrl.Pressed()
	flashing := pressed >= 0 && ctx.Now.Sub(pressedAt) < parameter.PressFlash

	for i, s := range season.All() {
		if i >= len(ctx.Scene.Tiles) {
			break
		}

		sp := r.springs[i]
		sp.Target = 0
		if i == focus {
			sp.Target = parameter.TileLift
		}
		if flashing && i == pressed {
			// Tap pushes the tile back toward the baseline
			sp.Target = parameter.TileLift / 4
		}
		lift := sp.Step(ctx.DeltaTime)

		region := ctx.Scene.Tiles[i].Offset(0, -int(lift+0.5))
		r.drawTile(buf, region, s, selected && s == current, i == focus)
	}
}

func (r *TilesRenderer) drawTile(buf *render.RenderBuffer, t tui.Region, s season.Season, active, focused bool) {
	cfg := season.Lookup(s)

	borderColor := render.RGBWhite
	borderAlpha := 0.3
	if active {
		borderColor = terminal.Hex(cfg.Colors.Accent)
		borderAlpha = parameter.TileBorderAlpha
	}
	if focused {
		borderAlpha = 1
	}

	primary := terminal.Hex(cfg.Colors.Primary)
	secondary := terminal.Hex(cfg.Colors.Secondary)

	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			ax, ay := t.X+x, t.Y+y
			if active {
				// Primary to secondary across the tile diagonal
				tint := render.Lerp(primary, secondary, diagonal(x, y, t.W, t.H))
				buf.BlendBg(ax, ay, tint, parameter.TileSelectedAlpha)
			} else {
				buf.BlendBg(ax, ay, r.idle, parameter.TileIdleAlpha)
			}
		}
	}

	line := tui.LineRounded
	if focused {
		line = tui.LineHeavy
	}
	t.Box(line, func(x, y int, glyph string) {
		fg := render.Lerp(buf.Get(x, y).Bg, borderColor, borderAlpha)
		buf.SetGlyph(x, y, glyph, fg, terminal.AttrNone)
	})

	inner := t.Inset(1)
	r.centered(buf, inner, 0, cfg.Primary(), r.text, terminal.AttrNone)
	r.centered(buf, inner, 1, cfg.Label, r.text, terminal.AttrNone)
	r.centered(buf, inner, 2, cfg.Name, r.text, terminal.AttrBold)
}

func (r *TilesRenderer) centered(buf *render.RenderBuffer, area tui.Region, row int, text string, fg render.RGB, attrs terminal.Attr) {
	if row >= area.H {
		return
	}
	x := area.X + (area.W-uniseg.StringWidth(text))/2
	buf.SetText(max(x, area.X), area.Y+row, text, fg, attrs)
}
