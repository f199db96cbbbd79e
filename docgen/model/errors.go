package model

import (
	"errors"
	"strings"
)

// ErrUnknownKind indicates an unrecognized document kind.
var ErrUnknownKind = errors.New("unknown document kind")

// FieldViolation describes a single invalid or missing field.
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports every violation found in a piece of content.
// Validation is exhaustive: callers receive the full set at once.
type ValidationError struct {
	Violations []FieldViolation
}

// Error summarizes all violations in one line.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "invalid content"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Reason)
	}
	return "invalid content: " + strings.Join(parts, "; ")
}

// Fields returns the violated field paths in report order.
func (e *ValidationError) Fields() []string {
	out := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		out = append(out, v.Field)
	}
	return out
}

// Has reports whether the given field path is among the violations.
func (e *ValidationError) Has(field string) bool {
	for _, v := range e.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}
