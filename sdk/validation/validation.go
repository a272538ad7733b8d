// Package validation holds small helpers shared by input validation code.
package validation

import (
	"fmt"
	"strings"
)

// Blank reports whether s is empty or whitespace only.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors collects field failures in the order they were found.
type FieldErrors []FieldError

// Add records a failure for field.
func (fe *FieldErrors) Add(field, message string) {
	*fe = append(*fe, FieldError{Field: field, Message: message})
}

// Required records a failure when value is blank.
func (fe *FieldErrors) Required(field, value string) {
	if Blank(value) {
		fe.Add(field, "is required")
	}
}

// Empty reports whether no failures were recorded.
func (fe FieldErrors) Empty() bool {
	return len(fe) == 0
}

// Fields maps each failed field to its message.
func (fe FieldErrors) Fields() map[string]string {
	m := make(map[string]string, len(fe))
	for _, f := range fe {
		m[f.Field] = f.Message
	}
	return m
}

func (fe FieldErrors) Error() string {
	parts := make([]string, len(fe))
	for i, f := range fe {
		parts[i] = fmt.Sprintf("%s %s", f.Field, f.Message)
	}
	return strings.Join(parts, ", ")
}
