// Package input turns terminal events into picker intents
package input

import (
	"github.com/lixenwraith/seasons/terminal"
)

// Machine parses terminal.Event into semantic Intent
// The picker has no multi-key sequences, each event maps to at most one intent
type Machine struct {
	keyTable *KeyTable
}

// NewMachine creates a machine with the default bindings
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// NewMachineWithTable creates a machine with custom bindings
func NewMachineWithTable(kt *KeyTable) *Machine {
	return &Machine{keyTable: kt}
}

// Process parses a terminal event and returns an Intent
// Returns nil for events with no binding
func (m *Machine) Process(ev terminal.Event) *Intent {
	switch ev.Type {
	case terminal.EventResize:
		return &Intent{Type: IntentResize, W: ev.Width, H: ev.Height}
	case terminal.EventKey:
		return m.processKey(ev)
	case terminal.EventMouse:
		return m.processMouse(ev)
	case terminal.EventClosed, terminal.EventError:
		return &Intent{Type: IntentQuit}
	}
	return nil
}

func (m *Machine) processKey(ev terminal.Event) *Intent {
	var (
		entry KeyEntry
		ok    bool
	)
	if ev.Key == terminal.KeyRune {
		entry, ok = m.keyTable.Runes[ev.Rune]
	} else {
		entry, ok = m.keyTable.SpecialKeys[ev.Key]
	}
	if !ok || entry.Type == IntentNone {
		return nil
	}
	return &Intent{Type: entry.Type, Index: entry.Index, DX: entry.DX, DY: entry.DY}
}

func (m *Machine) processMouse(ev terminal.Event) *Intent {
	if ev.Button != terminal.MouseLeft {
		return nil
	}
	return &Intent{Type: IntentClick, X: ev.X, Y: ev.Y}
}
