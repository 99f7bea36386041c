package errors

import (
	"net/http"
	"sort"
	"strings"
)

// FieldViolations is a ValidationError carrying per-field messages.
// It is recovered at the form boundary and re-presented to the caller field
// by field instead of as a single opaque message.
type FieldViolations struct {
	fields map[string]string
}

// NewFieldViolations creates an empty violation set.
func NewFieldViolations() *FieldViolations {
	return &FieldViolations{fields: make(map[string]string)}
}

// Add records a violation message for a field. The first message per field wins.
func (e *FieldViolations) Add(field, message string) *FieldViolations {
	if _, ok := e.fields[field]; !ok {
		e.fields[field] = message
	}

	return e
}

// Empty reports whether no violations were recorded.
func (e *FieldViolations) Empty() bool {
	return len(e.fields) == 0
}

// Fields returns the per-field violation messages.
func (e *FieldViolations) Fields() map[string]string {
	return e.fields
}

// Error implements the error interface
func (e *FieldViolations) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code
func (e *FieldViolations) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *FieldViolations) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *FieldViolations) Message() string {
	return "輸入資料驗證失敗"
}

// Details joins the field messages in a stable order.
func (e *FieldViolations) Details() string {
	parts := make([]string, 0, len(e.fields))
	for field, message := range e.fields {
		parts = append(parts, field+": "+message)
	}
	sort.Strings(parts)

	return strings.Join(parts, "; ")
}
