package input

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/seasons/terminal"
)

func runeEvent(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}

func keyEvent(k terminal.Key) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: k}
}

func TestDigitsSelect(t *testing.T) {
	m := NewMachine()
	for i, r := range "1234" {
		in := m.Process(runeEvent(r))
		require.NotNil(t, in)
		assert.Equal(t, IntentSelect, in.Type)
		assert.Equal(t, i, in.Index)
	}
	assert.Nil(t, m.Process(runeEvent('5')))
	assert.Nil(t, m.Process(runeEvent('0')))
}

func TestFocusBindings(t *testing.T) {
	tests := []struct {
		name   string
		ev     terminal.Event
		dx, dy int
	}{
		{"h", runeEvent('h'), -1, 0},
		{"l", runeEvent('l'), 1, 0},
		{"k", runeEvent('k'), 0, -1},
		{"j", runeEvent('j'), 0, 1},
		{"left", keyEvent(terminal.KeyLeft), -1, 0},
		{"right", keyEvent(terminal.KeyRight), 1, 0},
		{"up", keyEvent(terminal.KeyUp), 0, -1},
		{"down", keyEvent(terminal.KeyDown), 0, 1},
		{"tab", keyEvent(terminal.KeyTab), 1, 0},
		{"backtab", keyEvent(terminal.KeyBacktab), -1, 0},
	}
	m := NewMachine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := m.Process(tt.ev)
			require.NotNil(t, in)
			assert.Equal(t, IntentFocus, in.Type)
			assert.Equal(t, tt.dx, in.DX)
			assert.Equal(t, tt.dy, in.DY)
		})
	}
}

func TestSystemBindings(t *testing.T) {
	tests := []struct {
		name string
		ev   terminal.Event
		want IntentType
	}{
		{"q", runeEvent('q'), IntentQuit},
		{"esc", keyEvent(terminal.KeyEscape), IntentQuit},
		{"ctrl-c", keyEvent(terminal.KeyCtrlC), IntentQuit},
		{"r", runeEvent('r'), IntentResync},
		{"ctrl-l", keyEvent(terminal.KeyCtrlL), IntentResync},
		{"enter", keyEvent(terminal.KeyEnter), IntentPress},
		{"space", runeEvent(' '), IntentPress},
		{"help", runeEvent('?'), IntentToggleHint},
		{"mute", runeEvent('m'), IntentToggleMute},
		{"closed", terminal.Event{Type: terminal.EventClosed}, IntentQuit},
		{"error", terminal.Event{Type: terminal.EventError, Err: errors.New("tty gone")}, IntentQuit},
	}
	m := NewMachine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := m.Process(tt.ev)
			require.NotNil(t, in)
			assert.Equal(t, tt.want, in.Type, in.Type.String())
		})
	}
}

func TestResizeCarriesSize(t *testing.T) {
	in := NewMachine().Process(terminal.Event{Type: terminal.EventResize, Width: 100, Height: 30})
	require.NotNil(t, in)
	assert.Equal(t, IntentResize, in.Type)
	assert.Equal(t, 100, in.W)
	assert.Equal(t, 30, in.H)
}

func TestMouseLeftOnly(t *testing.T) {
	m := NewMachine()

	in := m.Process(terminal.Event{Type: terminal.EventMouse, Button: terminal.MouseLeft, X: 12, Y: 7})
	require.NotNil(t, in)
	assert.Equal(t, IntentClick, in.Type)
	assert.Equal(t, 12, in.X)
	assert.Equal(t, 7, in.Y)

	assert.Nil(t, m.Process(terminal.Event{Type: terminal.EventMouse, Button: terminal.MouseRight}))
	assert.Nil(t, m.Process(terminal.Event{Type: terminal.EventMouse, Button: terminal.MouseNone}))
}

func TestUnboundKeys(t *testing.T) {
	m := NewMachine()
	assert.Nil(t, m.Process(runeEvent('x')))
	assert.Nil(t, m.Process(keyEvent(terminal.KeyNone)))
}

func TestCustomTable(t *testing.T) {
	kt := DefaultKeyTable()
	kt.Runes['x'] = KeyEntry{Type: IntentQuit}
	delete(kt.Runes, 'q')

	m := NewMachineWithTable(kt)
	require.NotNil(t, m.Process(runeEvent('x')))
	assert.Nil(t, m.Process(runeEvent('q')))
}

func TestIntentTypeString(t *testing.T) {
	assert.Equal(t, "select", IntentSelect.String())
	assert.Equal(t, "unknown", IntentType(200).String())
}
