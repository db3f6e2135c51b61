package input

import "sort"

// actionRegistry maps canonical action names to KeyEntry structs
// Used by the key binding loader to resolve config action strings
var actionRegistry = map[string]KeyEntry{
	// Unbind sentinel
	"none": {},

	// System
	"quit":         {Type: IntentQuit},
	"resync":       {Type: IntentResync},
	"toggle_hint":  {Type: IntentToggleHint},
	"toggle_mute":  {Type: IntentToggleMute},
	"toggle_pause": {Type: IntentTogglePause},

	// Tiles
	"select_1": {Type: IntentSelect, Index: 0},
	"select_2": {Type: IntentSelect, Index: 1},
	"select_3": {Type: IntentSelect, Index: 2},
	"select_4": {Type: IntentSelect, Index: 3},
	"press":    {Type: IntentPress},

	// Focus
	"focus_left":  {Type: IntentFocus, DX: -1},
	"focus_right": {Type: IntentFocus, DX: 1},
	"focus_up":    {Type: IntentFocus, DY: -1},
	"focus_down":  {Type: IntentFocus, DY: 1},
}

// ActionEntry returns the KeyEntry for a canonical action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}

// IsActionName returns true if name is a registered action
func IsActionName(name string) bool {
	_, ok := actionRegistry[name]
	return ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ActionName returns the canonical name of the action an entry performs, empty if none matches
func ActionName(e KeyEntry) string {
	for name, entry := range actionRegistry {
		if name != "none" && entry == e {
			return name
		}
	}
	return ""
}
