// Package app wires the terminal, controller, renderers and input into the
// frame loop of the season picker
package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/seasons/engine"
	"github.com/lixenwraith/seasons/input"
	"github.com/lixenwraith/seasons/parameter"
	"github.com/lixenwraith/seasons/particle"
	"github.com/lixenwraith/seasons/render"
	"github.com/lixenwraith/seasons/render/renderer"
	"github.com/lixenwraith/seasons/season"
	"github.com/lixenwraith/seasons/terminal"
	"github.com/lixenwraith/seasons/terminal/tui"
)

// eventBuffer is the capacity of the input channel
const eventBuffer = 256

// muter is implemented by chimers that can be silenced at runtime
type muter interface {
	ToggleMute() bool
}

// Options configure an App, zero values get defaults
type Options struct {
	Clock         engine.Clock
	Settings      particle.Settings
	Rand          *rand.Rand
	Logger        *slog.Logger
	Chimer        engine.Chimer
	FrameInterval time.Duration
	// KeyTable replaces the default bindings when set
	KeyTable *input.KeyTable
	// InitialSeason is selected on the first frame when set
	InitialSeason *season.Season
}

// App owns one session on an initialized terminal
// Everything but the input poller runs on the goroutine calling Run
type App struct {
	term         terminal.Terminal
	clock        *engine.PausableClock
	ctrl         *engine.Controller
	orchestrator *render.RenderOrchestrator
	machine      *input.Machine
	hint         *renderer.HintRenderer
	chimer       engine.Chimer
	log          *slog.Logger

	scene     tui.Scene
	frame     time.Duration
	lastFrame time.Time
	pending   *season.Season
}

// New builds the app for term, which must already be initialized
func New(term terminal.Terminal, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = parameter.FrameInterval
	}

	clock := engine.NewPausableClock(opts.Clock)
	machine := input.NewMachine()
	if opts.KeyTable != nil {
		machine = input.NewMachineWithTable(opts.KeyTable)
	}

	now := clock.Now()
	w, h := term.Size()

	ctrl := engine.NewController(engine.Options{
		Settings: opts.Settings,
		Rand:     opts.Rand,
		Logger:   opts.Logger,
		Chimer:   opts.Chimer,
	}, now, w, h)

	a := &App{
		term:         term,
		clock:        clock,
		ctrl:         ctrl,
		orchestrator: render.NewRenderOrchestrator(term, w, h),
		machine:      machine,
		hint:         renderer.NewHintRenderer(ctrl),
		chimer:       opts.Chimer,
		log:          opts.Logger,
		scene:        tui.Layout(w, h, season.Count),
		frame:        opts.FrameInterval,
		lastFrame:    now,
		pending:      opts.InitialSeason,
	}

	type rendererDef struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}
	for _, def := range []rendererDef{
		{renderer.NewBackgroundRenderer(ctrl), render.PriorityBackground},
		{renderer.NewTitleRenderer(ctrl), render.PriorityUI},
		{renderer.NewTilesRenderer(ctrl), render.PriorityUI},
		{renderer.NewInfoRenderer(ctrl), render.PriorityUI},
		{renderer.NewParticlesRenderer(ctrl, ctrl.Complete), render.PriorityParticle},
		{a.hint, render.PriorityOverlay},
	} {
		a.orchestrator.Register(def.renderer, def.priority)
	}

	return a
}

// Controller exposes the view state
func (a *App) Controller() *engine.Controller {
	return a.ctrl
}

// Now returns the scene time, frozen while paused
func (a *App) Now() time.Time {
	return a.clock.Now()
}

// Paused reports whether scene time is frozen
func (a *App) Paused() bool {
	return a.clock.IsPaused()
}

// Scene returns the current layout
func (a *App) Scene() tui.Scene {
	return a.scene
}

// Buffer returns the compositor of the last frame
func (a *App) Buffer() *render.RenderBuffer {
	return a.orchestrator.Buffer()
}

// HandleEvent applies one terminal event, false means quit
func (a *App) HandleEvent(ev terminal.Event) bool {
	in := a.machine.Process(ev)
	if in == nil {
		return true
	}
	return a.Apply(*in, a.clock.Now())
}

// Apply executes an intent at now, false means quit
func (a *App) Apply(in input.Intent, now time.Time) bool {
	switch in.Type {
	case input.IntentQuit:
		a.log.Info("quit requested")
		return false
	case input.IntentResize:
		a.resize(in.W, in.H)
	case input.IntentResync:
		a.term.Sync()
	case input.IntentToggleHint:
		a.hint.Toggle()
	case input.IntentToggleMute:
		if m, ok := a.chimer.(muter); ok {
			a.log.Info("audio mute toggled", "muted", m.ToggleMute())
		}
	case input.IntentTogglePause:
		paused := a.clock.Toggle()
		a.hint.SetPaused(paused)
		a.log.Info("pause toggled", "paused", paused, "total", a.clock.TotalPauseDuration().String())
	case input.IntentSelect:
		a.ctrl.SelectAt(in.Index, now)
	case input.IntentFocus:
		a.ctrl.MoveFocus(in.DX, in.DY, a.scene.Cols)
	case input.IntentPress:
		a.ctrl.Press(now)
	case input.IntentClick:
		if idx := a.scene.HitTest(in.X, in.Y); idx >= 0 {
			a.ctrl.SelectAt(idx, now)
		}
	}
	return true
}

func (a *App) resize(w, h int) {
	if w <= 0 || h <= 0 {
		w, h = a.term.Size()
	}
	a.scene = tui.Layout(w, h, season.Count)
	a.ctrl.Resize(w, h)
	a.orchestrator.Resize(w, h)
}

// Step advances one frame at now: fires due batch timeouts then renders
func (a *App) Step(now time.Time) {
	if a.pending != nil {
		a.ctrl.Select(*a.pending, now)
		a.pending = nil
	}

	a.ctrl.Update(now)

	delta := now.Sub(a.lastFrame)
	a.lastFrame = now
	a.orchestrator.RenderFrame(render.NewRenderContext(now, delta, a.scene))
}

// Run drives the loop until quit, terminal closure or ctx cancellation
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	events := make(chan terminal.Event, eventBuffer)
	done := make(chan struct{})
	defer close(done)

	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash("EVENT POLLER CRASHED", r)
			}
		}()

		for {
			ev := a.term.PollEvent()
			select {
			case events <- ev:
			case <-done:
				return
			}
			if ev.Type == terminal.EventClosed || ev.Type == terminal.EventError {
				return
			}
		}
	}()

	a.log.Info("loop started", "frame", a.frame.String())
	a.Step(a.clock.Now())

	for {
		select {
		case <-ctx.Done():
			a.log.Info("loop cancelled")
			return ctx.Err()

		case ev := <-events:
			if ev.Type == terminal.EventError && ev.Err != nil {
				a.log.Error("terminal event error", "error", ev.Err)
			}
			if !a.HandleEvent(ev) {
				st := a.ctrl.Stats()
				a.log.Info("loop stopped",
					"spawned", st.Spawned,
					"completed", st.Completed,
					"reaped", st.Reaped,
					"live", st.Live,
				)
				return nil
			}

		case <-ticker.C:
			a.Step(a.clock.Now())
		}
	}
}

// crash restores the terminal and exits with the panic and stack on stderr
func crash(what string, r any) {
	terminal.EmergencyReset(os.Stdout)
	// Use \r\n for raw mode compatibility to avoid zig-zag output
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s: %v\x1b[0m\r\n", what, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

// Recover is deferred by the caller of Run to reset the terminal on panics
func Recover() {
	if r := recover(); r != nil {
		crash("SEASONS CRASHED", r)
	}
}
