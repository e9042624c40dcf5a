package main

import (
	"regexp"
	"slices"
)

// Alternation keeps the leftmost comment start: a `//` inside a block comment is
// consumed with the block, and a `/*` after `//` is consumed with the line.
var commentRegexp = regexp.MustCompile(`(?s)/\*.*?\*/|//[^\n]*`)

// RemoveCommentsFromCode removes line and block comments from the given code.
// It is a textual replacement and does not know about string or template literals,
// so `"http://example.com"` is cut at `//`. Newlines ending line comments are kept.
func RemoveCommentsFromCode(code string) string {
	return commentRegexp.ReplaceAllString(code, "")
}

type stringSet map[string]struct{}

func (s stringSet) Add(value string) {
	s[value] = struct{}{}
}

func (s stringSet) Has(value string) bool {
	_, ok := s[value]
	return ok
}

// Sorted returns set members in ascending byte order
func (s stringSet) Sorted() []string {
	result := make([]string, 0, len(s))
	for value := range s {
		result = append(result, value)
	}
	slices.Sort(result)
	return result
}
