package input

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/lixenwraith/seasons/terminal"
)

// Rune aliases for keys that can't be written as bare single-char config keys
var runeAliases = map[string]rune{
	"space":    ' ',
	"question": '?',
}

// LoadKeyConfig parses key name to action name bindings into a sparse override KeyTable
// Keys are special key names (enter, up, ctrl_c), rune aliases or single characters
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[terminal.Key]KeyEntry),
		Runes:       make(map[rune]KeyEntry),
	}

	for keyStr, actionName := range bindings {
		entry, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}

		name := strings.ToLower(strings.TrimSpace(keyStr))
		if k, ok := terminal.KeyByName(name); ok {
			kt.SpecialKeys[k] = entry
			continue
		}

		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}
		kt.Runes[r] = entry
	}

	return kt, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}

	return 0, fmt.Errorf("invalid key: %q (expected key name, single character or alias)", s)
}

// resolveAction converts an action name string to a KeyEntry
func resolveAction(name string) (KeyEntry, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	entry, ok := ActionEntry(name)
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", name)
	}
	return entry, nil
}

// Clone returns a deep copy of the table
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// MergeKeyTable returns a new KeyTable with base values overridden by override
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	mergeMap(result.Runes, override.Runes)
	mergeMap(result.SpecialKeys, override.SpecialKeys)
	return result
}

func mergeMap[K comparable](base, override map[K]KeyEntry) {
	for k, v := range override {
		if v.Type == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}

// NewMachineWithBindings creates a machine with the default table overridden by bindings
func NewMachineWithBindings(bindings map[string]string) (*Machine, error) {
	if len(bindings) == 0 {
		return NewMachine(), nil
	}
	override, err := LoadKeyConfig(bindings)
	if err != nil {
		return nil, err
	}
	return NewMachineWithTable(MergeKeyTable(DefaultKeyTable(), override)), nil
}

// Binding is one key to action pair in config notation
type Binding struct {
	Key    string
	Action string
}

// Bindings lists the table in config notation, special keys first, each group sorted
// Entries without a named action are skipped
func (kt *KeyTable) Bindings() []Binding {
	var special, runes []Binding
	for k, e := range kt.SpecialKeys {
		if name := terminal.KeyName(k); name != "" {
			if action := ActionName(e); action != "" {
				special = append(special, Binding{Key: name, Action: action})
			}
		}
	}
	for r, e := range kt.Runes {
		action := ActionName(e)
		if action == "" {
			continue
		}
		key := string(r)
		for alias, ar := range runeAliases {
			if ar == r {
				key = alias
			}
		}
		runes = append(runes, Binding{Key: key, Action: action})
	}
	byKey := func(a, b Binding) int { return strings.Compare(a.Key, b.Key) }
	slices.SortFunc(special, byKey)
	slices.SortFunc(runes, byKey)
	return append(special, runes...)
}
