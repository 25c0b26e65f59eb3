// Package cli provides CLI infrastructure for party.
package cli

import (
	"strings"
)

// MatchOption finds a unique option from a case-insensitive prefix. An exact
// match wins over prefix matches. It returns "" and a nil error when nothing
// matches, so callers can treat the input as free text.
func MatchOption(kind, input string, options []string) (string, error) {
	needle := strings.ToLower(strings.TrimSpace(input))

	for _, opt := range options {
		if strings.ToLower(opt) == needle {
			return opt, nil
		}
	}
	if needle == "" {
		return "", nil
	}

	var matches []string
	for _, opt := range options {
		if strings.HasPrefix(strings.ToLower(opt), needle) {
			matches = append(matches, opt)
		}
	}

	switch len(matches) {
	case 0:
		return "", nil
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousError{Type: kind, Input: input, Matches: matches}
	}
}
