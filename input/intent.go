package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Esc, Ctrl+C, closed screen
	IntentResync      // r, Ctrl+L
	IntentResize      // Terminal resize event
	IntentToggleHint  // ?
	IntentToggleMute  // m
	IntentTogglePause // p

	// Picker intents
	IntentSelect // 1-4, Index holds the tile
	IntentFocus  // arrows, hjkl
	IntentPress  // Enter, Space
	IntentClick  // Left click, X and Y hold the cell
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentResync:      "resync",
	IntentResize:      "resize",
	IntentToggleHint:  "toggle_hint",
	IntentToggleMute:  "toggle_mute",
	IntentTogglePause: "toggle_pause",
	IntentSelect:      "select",
	IntentFocus:       "focus",
	IntentPress:       "press",
	IntentClick:       "click",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type   IntentType
	Index  int // Tile index for IntentSelect
	DX, DY int // Focus direction for IntentFocus
	X, Y   int // Cell for IntentClick
	W, H   int // Screen size for IntentResize
}
