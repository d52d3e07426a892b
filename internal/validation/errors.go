package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationErrorType names the rule an entry broke
type ValidationErrorType string

const (
	ErrorTypeRequired      ValidationErrorType = "required"
	ErrorTypeInvalidLength ValidationErrorType = "invalid_length"
)

// FieldError is one broken rule for one entry kind
type FieldError struct {
	Field   string
	Type    ValidationErrorType
	Message string
	Value   interface{}
}

func (fe *FieldError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", fe.Field, fe.Message)
}

// ValidationError collects every rule a submission broke
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError creates an empty ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{Errors: make([]FieldError, 0)}
}

func (ve *ValidationError) Error() string {
	switch len(ve.Errors) {
	case 0:
		return "validation error"
	case 1:
		return ve.Errors[0].Error()
	}

	parts := make([]string, 0, len(ve.Errors))
	for i := range ve.Errors {
		parts = append(parts, ve.Errors[i].Error())
	}
	return "multiple validation errors: " + strings.Join(parts, "; ")
}

// IsValidationError reports whether err is or wraps a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// HasErrors reports whether any rule was broken
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

func (ve *ValidationError) add(field string, errorType ValidationErrorType, message string, value interface{}) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Type:    errorType,
		Message: message,
		Value:   value,
	})
}

// AddMissingEntryError records an empty submission using the prompt shown
// to the user, e.g. "Please enter a goal!"
func (ve *ValidationError) AddMissingEntryError(field string, value interface{}) {
	ve.add(field, ErrorTypeRequired, fmt.Sprintf("Please enter a %s!", field), value)
}

// AddInvalidLengthError records an entry longer than the input field allows
func (ve *ValidationError) AddInvalidLengthError(field string, value interface{}, max int) {
	ve.add(field, ErrorTypeInvalidLength, fmt.Sprintf("%s must be at most %d characters long", field, max), value)
}

// GetUserFriendlyMessage returns the message shown in an alert dialog
func (ve *ValidationError) GetUserFriendlyMessage() string {
	switch len(ve.Errors) {
	case 0:
		return "Input validation failed"
	case 1:
		return ve.Errors[0].Message
	}

	var b strings.Builder
	b.WriteString("Multiple validation errors occurred:")
	for _, fe := range ve.Errors {
		b.WriteString("\n- ")
		b.WriteString(fe.Message)
	}
	return b.String()
}

// UserMessage returns the alert text for err, or "" when err is nil
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.GetUserFriendlyMessage()
	}
	return err.Error()
}
