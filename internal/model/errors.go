package model

import (
	"encoding/json"
	"sort"
	"strings"
)

// ValidationError lists every violated rule of a rejected input.
// FormErrors apply to the input as a whole; FieldErrors are keyed by field name.
type ValidationError struct {
	FormErrors  []string            `json:"formErrors"`
	FieldErrors map[string][]string `json:"fieldErrors"`
}

// NewValidationError returns an empty ValidationError ready to collect violations.
func NewValidationError() *ValidationError {
	return &ValidationError{FormErrors: []string{}, FieldErrors: map[string][]string{}}
}

// AddForm records an input-wide violation.
func (e *ValidationError) AddForm(msg string) {
	e.FormErrors = append(e.FormErrors, msg)
}

// AddField records a violation of field.
func (e *ValidationError) AddField(field, msg string) {
	e.FieldErrors[field] = append(e.FieldErrors[field], msg)
}

// Empty reports whether no violation was recorded.
func (e *ValidationError) Empty() bool {
	return len(e.FormErrors) == 0 && len(e.FieldErrors) == 0
}

func (e *ValidationError) Error() string {
	parts := append([]string{}, e.FormErrors...)
	fields := make([]string, 0, len(e.FieldErrors))
	for f := range e.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e.FieldErrors[f], "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// ToJSON serializes the ValidationError to a JSON string.
func (e *ValidationError) ToJSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}
