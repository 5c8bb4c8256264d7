// Package textmatch implements the case-insensitive substring search shared by
// the dashboard list endpoints.
package textmatch

import (
	"strings"

	"golang.org/x/text/cases"
)

// Matcher holds a case-folded search term.
type Matcher struct {
	term string
}

// New returns a Matcher for term. An empty term matches everything.
func New(term string) Matcher {
	return Matcher{term: Fold(term)}
}

// Empty reports whether the matcher has no search term.
func (m Matcher) Empty() bool {
	return m.term == ""
}

// Any reports whether any field contains the search term, ignoring case.
func (m Matcher) Any(fields ...string) bool {
	if m.term == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(Fold(field), m.term) {
			return true
		}
	}
	return false
}

// folder is stateless and safe for concurrent use.
var folder = cases.Fold()

// Fold returns the Unicode case-folded form of s.
func Fold(s string) string {
	return folder.String(s)
}
