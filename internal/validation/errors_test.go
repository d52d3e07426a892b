package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		errors   []FieldError
		expected string
	}{
		{"no errors", []FieldError{}, "validation error"},
		{"single error", []FieldError{{Field: "task", Message: "Please enter a task!"}}, "validation error for field 'task': Please enter a task!"},
		{"multiple errors", []FieldError{
			{Field: "task", Message: "a"},
			{Field: "time", Message: "b"},
		}, "multiple validation errors: validation error for field 'task': a; validation error for field 'time': b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			assert.Equal(t, tt.expected, ve.Error())
		})
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	ve := NewValidationError()
	assert.Equal(t, "Input validation failed", ve.GetUserFriendlyMessage())

	ve.AddMissingEntryError(EntryGoal, "")
	assert.Equal(t, "Please enter a goal!", ve.GetUserFriendlyMessage())

	ve.AddInvalidLengthError(EntryGoal, "", 8)
	assert.Equal(t,
		"Multiple validation errors occurred:\n- Please enter a goal!\n- goal must be at most 8 characters long",
		ve.GetUserFriendlyMessage())
	assert.Equal(t, ErrorTypeInvalidLength, ve.Errors[1].Type)
}

func TestIsValidationError(t *testing.T) {
	ve := NewValidationError()
	assert.True(t, IsValidationError(ve))
	assert.True(t, IsValidationError(fmt.Errorf("submit: %w", ve)))
	assert.False(t, IsValidationError(errors.New("plain")))
}

func TestUserMessage(t *testing.T) {
	ve := NewValidationError()
	ve.AddMissingEntryError(EntryTask, "")

	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "Please enter a task!", UserMessage(fmt.Errorf("wrapped: %w", ve)))
	assert.Equal(t, "plain", UserMessage(errors.New("plain")))
}
