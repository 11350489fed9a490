package errors

import (
	"net/http"
	"strings"
)

// Field error codes shared by the validation layer and the persistence constraint mapping.
const (
	CodeRequired  = "required"
	CodeInvalid   = "invalid"
	CodeTooShort  = "too_short"
	CodeTooLong   = "too_long"
	CodeMismatch  = "mismatch"
	CodeDuplicate = "duplicate"
)

// FieldError describes a single user-correctable problem with one input field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError aggregates field errors. It matches ErrValidationFailed with errors.Is,
// and additionally ErrDuplicateEntity when one of its fields failed a uniqueness check.
type ValidationError struct {
	fields []FieldError
}

// NewValidationError creates a ValidationError from the given field errors.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{fields: append([]FieldError(nil), fields...)}
}

// NewDuplicateError creates a ValidationError for a single value that is already taken.
func NewDuplicateError(field, message string) *ValidationError {
	return NewValidationError(FieldError{Field: field, Code: CodeDuplicate, Message: message})
}

// Add appends a field error.
func (e *ValidationError) Add(field, code, message string) {
	e.fields = append(e.fields, FieldError{Field: field, Code: code, Message: message})
}

// Merge appends the field errors of another validation error.
func (e *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	e.fields = append(e.fields, other.fields...)
}

// Empty reports whether no field failed.
func (e *ValidationError) Empty() bool {
	return e == nil || len(e.fields) == 0
}

// Fields returns a copy of the field errors.
func (e *ValidationError) Fields() []FieldError {
	return append([]FieldError(nil), e.fields...)
}

// Field returns the first error recorded for the given field.
func (e *ValidationError) Field(name string) (FieldError, bool) {
	for _, f := range e.fields {
		if f.Field == name {
			return f, true
		}
	}

	return FieldError{}, false
}

// IsDuplicate reports whether any field failed a uniqueness check.
func (e *ValidationError) IsDuplicate() bool {
	for _, f := range e.fields {
		if f.Code == CodeDuplicate {
			return true
		}
	}

	return false
}

// Is supports errors.Is against the validation sentinels.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrValidationFailed:
		return true
	case ErrDuplicateEntity:
		return e.IsDuplicate()
	default:
		return false
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.fields) == 0 {
		return ErrValidationFailed.Message()
	}

	parts := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return ErrValidationFailed.Message() + ": " + strings.Join(parts, "; ")
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	if e.IsDuplicate() {
		return ErrDuplicateEntity.ErrorCode()
	}

	return ErrValidationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details returns the failing field names
func (e *ValidationError) Details() string {
	names := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		names = append(names, f.Field)
	}

	return strings.Join(names, ",")
}
