// Package suggest implements the state behind an autocomplete input: prefix
// filtering of a candidate list and keyboard-driven highlight navigation.
// Nothing in this package depends on a terminal; the widget package renders it.
package suggest

import (
	"strings"

	"github.com/rivo/uniseg"
	"github.com/samber/lo"
)

// Filter returns the candidates whose first len(query) characters equal query,
// ignoring letter case. Characters are grapheme clusters, so "é" typed as a
// combining sequence counts once. The result keeps the candidates' original
// order and is never nil. An empty query matches nothing.
func Filter(query string, candidates []string) []string {
	if query == "" || len(candidates) == 0 {
		return []string{}
	}

	n := uniseg.GraphemeClusterCount(query)
	return lo.Filter(candidates, func(candidate string, _ int) bool {
		return HasPrefixFold(candidate, query, n)
	})
}

// HasPrefixFold reports whether the first n graphemes of candidate equal
// query under case folding. n must be the grapheme count of query.
func HasPrefixFold(candidate, query string, n int) bool {
	head, _, ok := SplitPrefix(candidate, n)
	if !ok {
		return false
	}
	return strings.EqualFold(head, query)
}

// SplitPrefix splits s after its n-th grapheme cluster. ok is false when s has
// fewer than n graphemes, in which case head is all of s and tail is empty.
func SplitPrefix(s string, n int) (head, tail string, ok bool) {
	if n <= 0 {
		return "", s, true
	}

	gr := uniseg.NewGraphemes(s)
	count := 0
	for gr.Next() {
		count++
		if count == n {
			_, to := gr.Positions()
			return s[:to], s[to:], true
		}
	}
	return s, "", false
}
