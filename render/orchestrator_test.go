package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/seasons/terminal"
	"github.com/lixenwraith/seasons/terminal/tui"
)

type fakeTerminal struct {
	flushes int
	syncs   int
	last    []terminal.Cell
}

func (f *fakeTerminal) Init() error               { return nil }
func (f *fakeTerminal) Fini()                     {}
func (f *fakeTerminal) Size() (int, int)          { return 0, 0 }
func (f *fakeTerminal) Sync()                     { f.syncs++ }
func (f *fakeTerminal) PollEvent() terminal.Event { return terminal.Event{Type: terminal.EventClosed} }
func (f *fakeTerminal) ColorMode() terminal.ColorMode {
	return terminal.ColorModeTrueColor
}
func (f *fakeTerminal) Flush(cells []terminal.Cell, width, height int) {
	f.flushes++
	f.last = append(f.last[:0], cells...)
}

type recordingRenderer struct {
	name    string
	log     *[]string
	visible bool
}

func (r *recordingRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	*r.log = append(*r.log, r.name)
	buf.SetText(0, 0, r.name, RGBWhite, terminal.AttrNone)
}

func (r *recordingRenderer) IsVisible() bool { return r.visible }

func TestOrchestratorPriorityOrder(t *testing.T) {
	term := &fakeTerminal{}
	o := NewRenderOrchestrator(term, 4, 1)
	var log []string

	o.Register(&recordingRenderer{name: "p", log: &log, visible: true}, PriorityParticle)
	o.Register(&recordingRenderer{name: "b", log: &log, visible: true}, PriorityBackground)
	o.Register(&recordingRenderer{name: "u1", log: &log, visible: true}, PriorityUI)
	o.Register(&recordingRenderer{name: "u2", log: &log, visible: true}, PriorityUI)
	o.Register(&recordingRenderer{name: "o", log: &log, visible: false}, PriorityOverlay)

	scene := tui.Layout(4, 1, 4)
	o.RenderFrame(NewRenderContext(time.Unix(0, 0), time.Second/60, scene))

	assert.Equal(t, []string{"b", "u1", "u2", "p"}, log)
	assert.Equal(t, 1, term.flushes)
	assert.Equal(t, uint64(1), o.Frames())
	// Last visible renderer wins the cell
	assert.Equal(t, "p", term.last[0].Glyph)
}

func TestOrchestratorClearsEachFrame(t *testing.T) {
	term := &fakeTerminal{}
	o := NewRenderOrchestrator(term, 2, 1)
	o.Buffer().SetGlyph(1, 0, "z", RGBWhite, terminal.AttrNone)

	o.RenderFrame(RenderContext{})
	assert.Equal(t, "", term.last[1].Glyph)

	o.Resize(3, 2)
	assert.Equal(t, 1, term.syncs)
	w, h := o.Buffer().Bounds()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
}

func TestNewRenderContext(t *testing.T) {
	scene := tui.Layout(80, 24, 4)
	ctx := NewRenderContext(time.Unix(5, 0), 500*time.Millisecond, scene)
	assert.Equal(t, 80, ctx.ScreenWidth)
	assert.Equal(t, 24, ctx.ScreenHeight)
	assert.InDelta(t, 0.5, ctx.DeltaTime, 1e-9)
}
