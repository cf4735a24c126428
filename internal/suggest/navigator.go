package suggest

// State is the visible state of a suggestion dropdown.
type State int

const (
	// StateClosed means no suggestions are shown.
	StateClosed State = iota
	// StateOpen means suggestions are shown but none is highlighted.
	StateOpen
	// StateHighlighted means suggestions are shown and one is highlighted.
	StateHighlighted
)

// String returns the string representation of a State.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "Closed"
	case StateOpen:
		return "Open"
	case StateHighlighted:
		return "Highlighted"
	default:
		return "Unknown"
	}
}

// Navigator tracks which suggestion, if any, is highlighted.
// The highlight index is always -1 or a valid index into the suggestions.
type Navigator struct {
	// suggestions is the current suggestion set
	suggestions []string

	// selected is the index of the highlighted suggestion (-1 if none)
	selected int
}

// NewNavigator creates a Navigator with no suggestions.
func NewNavigator() *Navigator {
	return &Navigator{
		selected: -1,
	}
}

// SetSuggestions replaces the suggestion set and clears the highlight.
// Any previously shown list is implicitly closed.
func (n *Navigator) SetSuggestions(suggestions []string) {
	n.suggestions = suggestions
	n.selected = -1
}

// Suggestions returns the current suggestion set.
func (n *Navigator) Suggestions() []string {
	return n.suggestions
}

// Index returns the highlight index, or -1 when nothing is highlighted.
func (n *Navigator) Index() int {
	return n.selected
}

// Len returns the number of suggestions.
func (n *Navigator) Len() int {
	return len(n.suggestions)
}

// IsOpen returns true if there are suggestions to show.
func (n *Navigator) IsOpen() bool {
	return len(n.suggestions) > 0
}

// State returns the dropdown state derived from the suggestions and highlight.
func (n *Navigator) State() State {
	switch {
	case len(n.suggestions) == 0:
		return StateClosed
	case n.selected < 0:
		return StateOpen
	default:
		return StateHighlighted
	}
}

// Next moves the highlight down, wrapping to the first suggestion after the
// last one. With no highlight it lands on the first suggestion.
func (n *Navigator) Next() {
	if len(n.suggestions) == 0 {
		return
	}
	n.selected++
	if n.selected >= len(n.suggestions) {
		n.selected = 0
	}
}

// Previous moves the highlight up, wrapping to the last suggestion before the
// first one. With no highlight it lands on the last suggestion.
func (n *Navigator) Previous() {
	if len(n.suggestions) == 0 {
		return
	}
	n.selected--
	if n.selected < 0 {
		n.selected = len(n.suggestions) - 1
	}
}

// Active returns the highlighted suggestion. ok is false when nothing is
// highlighted.
func (n *Navigator) Active() (suggestion string, ok bool) {
	if n.selected < 0 || n.selected >= len(n.suggestions) {
		return "", false
	}
	return n.suggestions[n.selected], true
}

// Close clears the suggestions and the highlight.
func (n *Navigator) Close() {
	n.suggestions = nil
	n.selected = -1
}
