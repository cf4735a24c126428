package suggest

import "github.com/rivo/uniseg"

// Row is one line of a suggestion dropdown.
type Row struct {
	// Value is the full candidate text.
	Value string
	// Matched is the part of Value covered by the query, in Value's own case.
	Matched string
	// Rest is the remainder of Value after Matched.
	Rest string
	// Highlighted is true for the keyboard-selected row.
	Highlighted bool
}

// BuildRows maps suggestions and a highlight index to rows. It does no styling.
func BuildRows(query string, suggestions []string, index int) []Row {
	if len(suggestions) == 0 {
		return nil
	}

	n := uniseg.GraphemeClusterCount(query)
	rows := make([]Row, len(suggestions))
	for i, suggestion := range suggestions {
		head, tail, _ := SplitPrefix(suggestion, n)
		rows[i] = Row{
			Value:       suggestion,
			Matched:     head,
			Rest:        tail,
			Highlighted: i == index,
		}
	}
	return rows
}
