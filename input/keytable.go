package input

import "github.com/lixenwraith/seasons/terminal"

// KeyEntry describes the intent a key produces
type KeyEntry struct {
	Type   IntentType
	Index  int
	DX, DY int
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[terminal.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[terminal.Key]KeyEntry{
			terminal.KeyCtrlC:   {Type: IntentQuit},
			terminal.KeyEscape:  {Type: IntentQuit},
			terminal.KeyCtrlL:   {Type: IntentResync},
			terminal.KeyEnter:   {Type: IntentPress},
			terminal.KeyUp:      {Type: IntentFocus, DY: -1},
			terminal.KeyDown:    {Type: IntentFocus, DY: 1},
			terminal.KeyLeft:    {Type: IntentFocus, DX: -1},
			terminal.KeyRight:   {Type: IntentFocus, DX: 1},
			terminal.KeyTab:     {Type: IntentFocus, DX: 1},
			terminal.KeyBacktab: {Type: IntentFocus, DX: -1},
		},

		Runes: map[rune]KeyEntry{
			'1': {Type: IntentSelect, Index: 0},
			'2': {Type: IntentSelect, Index: 1},
			'3': {Type: IntentSelect, Index: 2},
			'4': {Type: IntentSelect, Index: 3},

			'h': {Type: IntentFocus, DX: -1},
			'j': {Type: IntentFocus, DY: 1},
			'k': {Type: IntentFocus, DY: -1},
			'l': {Type: IntentFocus, DX: 1},

			' ': {Type: IntentPress},
			'q': {Type: IntentQuit},
			'r': {Type: IntentResync},
			'?': {Type: IntentToggleHint},
			'm': {Type: IntentToggleMute},
			'p': {Type: IntentTogglePause},
		},
	}
}
