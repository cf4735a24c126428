package widget

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

// Action represents a keyboard action that can be triggered by key bindings.
type Action int

const (
	// ActionNone represents no action (the key goes to the text input).
	ActionNone Action = iota

	// Dropdown navigation
	ActionNext     // Highlight the next suggestion (Down, Ctrl+N, Tab)
	ActionPrevious // Highlight the previous suggestion (Up, Ctrl+P, Shift+Tab)

	// Selection
	ActionSelect // Commit the highlighted suggestion, or submit when closed (Enter)
	ActionClose  // Close the dropdown without committing (Escape)

	// Special actions
	ActionInterrupt // Abandon input (Ctrl+C)
	ActionPaste     // Paste from clipboard (Ctrl+V)
)

// String returns the string representation of an Action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNext:
		return "Next"
	case ActionPrevious:
		return "Previous"
	case ActionSelect:
		return "Select"
	case ActionClose:
		return "Close"
	case ActionInterrupt:
		return "Interrupt"
	case ActionPaste:
		return "Paste"
	default:
		return "Unknown"
	}
}

// ParseAction returns the bindable action with the given name, ignoring case.
func ParseAction(name string) (Action, error) {
	for a := ActionNext; a <= ActionPaste; a++ {
		if strings.EqualFold(a.String(), name) {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown key action %q", name)
}

// KeyBinding represents a single key binding that maps keys to an action.
type KeyBinding struct {
	// Keys is the list of key sequences that trigger this binding.
	// Each string should be a valid tea.KeyMsg string representation.
	Keys []string
	// Action is the action to perform when this binding is triggered.
	Action Action
}

// KeyMap holds the key bindings for the widget.
type KeyMap struct {
	bindings []KeyBinding
	lookup   map[string]Action
}

// NewKeyMap creates a new KeyMap with the given bindings.
func NewKeyMap(bindings []KeyBinding) *KeyMap {
	km := &KeyMap{
		bindings: bindings,
	}
	km.rebuildLookup()
	return km
}

// rebuildLookup must be called after any modification to bindings.
func (km *KeyMap) rebuildLookup() {
	km.lookup = make(map[string]Action)
	for _, b := range km.bindings {
		for _, key := range b.Keys {
			km.lookup[key] = b.Action
		}
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() *KeyMap {
	return NewKeyMap([]KeyBinding{
		{Keys: []string{"down", "ctrl+n", "tab"}, Action: ActionNext},
		{Keys: []string{"up", "ctrl+p", "shift+tab"}, Action: ActionPrevious},
		{Keys: []string{"enter"}, Action: ActionSelect},
		{Keys: []string{"esc"}, Action: ActionClose},
		{Keys: []string{"ctrl+c"}, Action: ActionInterrupt},
		{Keys: []string{"ctrl+v"}, Action: ActionPaste},
	})
}

// Lookup finds the action for the given key message.
// Returns ActionNone if no binding matches.
func (km *KeyMap) Lookup(msg tea.KeyMsg) Action {
	if action, ok := km.lookup[msg.String()]; ok {
		return action
	}
	return ActionNone
}

// SetBinding adds or replaces the binding for binding.Action.
func (km *KeyMap) SetBinding(binding KeyBinding) {
	for i, b := range km.bindings {
		if b.Action == binding.Action {
			km.bindings[i] = binding
			km.rebuildLookup()
			return
		}
	}
	km.bindings = append(km.bindings, binding)
	km.rebuildLookup()
}

// RemoveBinding removes all bindings for the given action.
func (km *KeyMap) RemoveBinding(action Action) {
	newBindings := make([]KeyBinding, 0, len(km.bindings))
	for _, b := range km.bindings {
		if b.Action != action {
			newBindings = append(newBindings, b)
		}
	}
	km.bindings = newBindings
	km.rebuildLookup()
}

// AddKeys adds keys to an existing action binding, creating it if needed.
func (km *KeyMap) AddKeys(action Action, keys ...string) {
	for i := range km.bindings {
		if km.bindings[i].Action == action {
			km.bindings[i].Keys = append(km.bindings[i].Keys, keys...)
			km.rebuildLookup()
			return
		}
	}
	km.bindings = append(km.bindings, KeyBinding{
		Keys:   keys,
		Action: action,
	})
	km.rebuildLookup()
}

// Bindings returns a copy of all bindings in the keymap.
func (km *KeyMap) Bindings() []KeyBinding {
	result := make([]KeyBinding, len(km.bindings))
	for i, b := range km.bindings {
		keys := make([]string, len(b.Keys))
		copy(keys, b.Keys)
		result[i] = KeyBinding{
			Keys:   keys,
			Action: b.Action,
		}
	}
	return result
}

// Apply rebinds actions by name. Entries in replace become the action's only
// keys, and an empty list unbinds it. Entries in extra are added to whatever
// the action is bound to after replace. Unknown action names are skipped and
// returned as errors, in name order.
func (km *KeyMap) Apply(replace, extra map[string][]string) []error {
	var errs []error

	for _, name := range sortedNames(replace) {
		action, err := ParseAction(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("keys: %w", err))
			continue
		}
		if keys := replace[name]; len(keys) > 0 {
			km.SetBinding(KeyBinding{Keys: slices.Clone(keys), Action: action})
		} else {
			km.RemoveBinding(action)
		}
	}

	for _, name := range sortedNames(extra) {
		action, err := ParseAction(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("extraKeys: %w", err))
			continue
		}
		km.AddKeys(action, extra[name]...)
	}

	return errs
}

func sortedNames(m map[string][]string) []string {
	names := lo.Keys(m)
	slices.Sort(names)
	return names
}
