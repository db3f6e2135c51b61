package terminal

// EventType classifies an Event
type EventType uint8

const (
	EventKey EventType = iota
	EventMouse
	EventResize
	EventClosed
	EventError
)

// Key identifies a non-rune key, KeyRune carries Event.Rune
type Key uint16

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
	KeyCtrlL
)

// Modifier is a bitmask of held modifier keys
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModCtrl  Modifier = 1 << 1
	ModAlt   Modifier = 1 << 2
)

// MouseButton identifies the pressed button of a mouse event
type MouseButton uint8

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
)

// Event is a terminal input event
type Event struct {
	Type EventType

	// Key events
	Key  Key
	Rune rune
	Mod  Modifier

	// Mouse events
	X, Y   int
	Button MouseButton

	// Resize events
	Width, Height int

	Err error
}
