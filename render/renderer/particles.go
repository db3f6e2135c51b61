package renderer

import (
	"math"

	"github.com/lixenwraith/seasons/engine"
	"github.com/lixenwraith/seasons/parameter"
	"github.com/lixenwraith/seasons/particle"
	"github.com/lixenwraith/seasons/render"
	"github.com/lixenwraith/seasons/terminal"
)

const (
	dotLarge = "•"
	dotSmall = "·"
)

// ParticlesRenderer draws every live particle and emits its completion signal
// on the first frame its animation is done
type ParticlesRenderer struct {
	ctrl     *engine.Controller
	complete func(particle.ID) bool
	finished []particle.ID
}

// NewParticlesRenderer creates the renderer, complete receives completion signals
func NewParticlesRenderer(ctrl *engine.Controller, complete func(particle.ID) bool) *ParticlesRenderer {
	return &ParticlesRenderer{
		ctrl:     ctrl,
		complete: complete,
		finished: make([]particle.ID, 0, parameter.BatchSize),
	}
}

func (r *ParticlesRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	r.finished = r.finished[:0]
	accent := terminal.Hex(r.ctrl.Palette(ctx.Now).Accent)

	// Reaped sprites fade under the live ones
	for _, e := range r.ctrl.Exits() {
		if f, ok := e.Frame(ctx.Now, parameter.ExitFade); ok {
			drawSprite(buf, e.Glyph, f, accent)
		}
	}

	for _, sp := range r.ctrl.Sprites() {
		f := sp.Frame(ctx.Now)
		switch f.Phase {
		case particle.Scheduled:
			continue
		case particle.Done:
			r.finished = append(r.finished, sp.ID)
			continue
		}
		drawSprite(buf, sp.Glyph, f, accent)
	}

	// Signals are delivered after the pass so the live set is not mutated mid-iteration
	for _, id := range r.finished {
		r.complete(id)
	}
}

// drawSprite projects one frame onto the grid, faint frames are skipped
func drawSprite(buf *render.RenderBuffer, glyph string, f particle.Frame, accent terminal.RGB) {
	if f.Opacity < parameter.GlyphMinOpacity {
		return
	}

	wobble := math.Sin(f.Rotation*math.Pi/180) * parameter.WobbleAmplitude
	x := int(math.Round(f.X + wobble))
	y := int(math.Round(f.Y))

	// Emoji keep their own colors, only dots fade through the background
	fg := render.Lerp(buf.Get(x, y).Bg, accent, f.Opacity)
	buf.SetGlyph(x, y, glyphFor(glyph, f), fg, terminal.AttrNone)
}

// glyphFor picks the glyph drawn for a frame, shrunk or faint sprites become dots
func glyphFor(glyph string, f particle.Frame) string {
	switch {
	case f.Scale < parameter.GlyphDotScale:
		return dotSmall
	case f.Opacity < parameter.GlyphDotOpacity:
		return dotLarge
	}
	return glyph
}
