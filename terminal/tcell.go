package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// tcellTerminal implements Terminal on a tcell screen
type tcellTerminal struct {
	screen tcell.Screen
	mode   ColorMode

	finiOnce sync.Once
	// last button state, tcell reports motion with the button still held
	lastButtons tcell.ButtonMask
}

// New creates a terminal on the process tty
func New(mode ColorMode) (Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(screen, mode), nil
}

// NewWithScreen wraps an existing tcell screen, simulation screens included
func NewWithScreen(screen tcell.Screen, mode ColorMode) Terminal {
	return &tcellTerminal{screen: screen, mode: mode}
}

func (t *tcellTerminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.HideCursor()
	t.screen.EnableMouse(tcell.MouseButtonEvents)
	t.screen.SetStyle(tcell.StyleDefault)
	t.screen.Clear()
	return nil
}

func (t *tcellTerminal) Fini() {
	t.finiOnce.Do(t.screen.Fini)
}

func (t *tcellTerminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *tcellTerminal) ColorMode() ColorMode {
	return t.mode
}

func (t *tcellTerminal) Sync() {
	t.screen.Sync()
}

func (t *tcellTerminal) Flush(cells []Cell, width, height int) {
	for y := 0; y < height; y++ {
		row := cells[y*width : (y+1)*width]
		for x := range row {
			c := &row[x]
			if c.Covered {
				continue
			}
			mainc, combining := splitGlyph(c.Glyph)
			t.screen.SetContent(x, y, mainc, combining, t.style(c))
		}
	}
	t.screen.Show()
}

func (t *tcellTerminal) style(c *Cell) tcell.Style {
	st := tcell.StyleDefault.Foreground(t.color(c.Fg)).Background(t.color(c.Bg))
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.Attrs&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

func (t *tcellTerminal) color(c RGB) tcell.Color {
	if t.mode == ColorMode256 {
		return tcell.PaletteColor(int(RGBTo256(c)))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// splitGlyph returns the first rune of the first grapheme cluster and the
// runes combining with it
func splitGlyph(g string) (rune, []rune) {
	if g == "" {
		return ' ', nil
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(g, -1)
	runes := []rune(cluster)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return runes[0], runes[1:]
}

func (t *tcellTerminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{Type: EventClosed}
	}
	return t.translate(ev)
}

func (t *tcellTerminal) translate(ev tcell.Event) Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)
	case *tcell.EventMouse:
		x, y := ev.Position()
		buttons := ev.Buttons()
		out := Event{Type: EventMouse, X: x, Y: y, Mod: translateMod(ev.Modifiers())}
		// Only report presses, not drags or releases
		pressed := buttons &^ t.lastButtons
		t.lastButtons = buttons
		switch {
		case pressed&tcell.Button1 != 0:
			out.Button = MouseLeft
		case pressed&tcell.Button3 != 0:
			out.Button = MouseMiddle
		case pressed&tcell.Button2 != 0:
			out.Button = MouseRight
		}
		return out
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventError:
		return Event{Type: EventError, Err: ev}
	default:
		return Event{Type: EventKey, Key: KeyNone}
	}
}

func translateKey(ev *tcell.EventKey) Event {
	out := Event{Type: EventKey, Mod: translateMod(ev.Modifiers())}
	switch ev.Key() {
	case tcell.KeyRune:
		out.Key = KeyRune
		out.Rune = ev.Rune()
	case tcell.KeyEscape:
		out.Key = KeyEscape
	case tcell.KeyEnter:
		out.Key = KeyEnter
	case tcell.KeyTab:
		out.Key = KeyTab
	case tcell.KeyBacktab:
		out.Key = KeyBacktab
	case tcell.KeyUp:
		out.Key = KeyUp
	case tcell.KeyDown:
		out.Key = KeyDown
	case tcell.KeyLeft:
		out.Key = KeyLeft
	case tcell.KeyRight:
		out.Key = KeyRight
	case tcell.KeyCtrlC:
		out.Key = KeyCtrlC
	case tcell.KeyCtrlL:
		out.Key = KeyCtrlL
	default:
		out.Key = KeyNone
	}
	return out
}

func translateMod(m tcell.ModMask) Modifier {
	var out Modifier
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= ModAlt
	}
	return out
}
