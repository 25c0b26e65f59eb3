package cli

import (
	"fmt"
	"strings"
)

// NotFoundError indicates a guest or goody bag item was not found.
type NotFoundError struct {
	Type string // "guest" or "item"
	ID   string // the ID or prefix that was not found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Type, e.ID)
}

// AmbiguousError indicates an ID prefix or theme prefix matched several
// candidates.
type AmbiguousError struct {
	Type    string   // "guest", "item" or "theme"
	Input   string   // what the user typed
	Matches []string // the candidates it matched
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous %s %q matches: %s", e.Type, e.Input, strings.Join(e.Matches, ", "))
}

// ValidationError indicates a validation failure.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
