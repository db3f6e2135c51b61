package render

import (
	"slices"

	"github.com/lixenwraith/seasons/terminal"
)

type layer struct {
	renderer SystemRenderer
	priority RenderPriority
}

// RenderOrchestrator draws the registered layers into one buffer and flushes it per frame
type RenderOrchestrator struct {
	term   terminal.Terminal
	buffer *RenderBuffer
	layers []layer
	frames uint64
}

// NewRenderOrchestrator creates an orchestrator with the given terminal and dimensions
func NewRenderOrchestrator(term terminal.Terminal, width, height int) *RenderOrchestrator {
	return &RenderOrchestrator{
		term:   term,
		buffer: NewRenderBuffer(width, height),
		layers: make([]layer, 0, 8),
	}
}

// Register adds a renderer at priority, after any already registered at the same priority
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	pos := slices.IndexFunc(o.layers, func(l layer) bool { return l.priority > priority })
	if pos < 0 {
		pos = len(o.layers)
	}
	o.layers = slices.Insert(o.layers, pos, layer{renderer: r, priority: priority})
}

// Resize updates buffer dimensions and syncs terminal
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.term.Sync()
}

// Buffer returns the compositor of the last frame
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// Frames returns the number of frames flushed
func (o *RenderOrchestrator) Frames() uint64 {
	return o.frames
}

// RenderFrame clears the buffer, draws visible layers bottom-up and flushes once
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.Clear()

	for _, l := range o.layers {
		if vt, ok := l.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		l.renderer.Render(ctx, o.buffer)
	}

	o.buffer.FlushToTerminal(o.term)
	o.frames++
}
