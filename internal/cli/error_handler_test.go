package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "productivity-tracker/internal/errors"
	"productivity-tracker/internal/logging"
	"productivity-tracker/internal/validation"
)

func missingTaskError() error {
	ve := validation.NewValidationError()
	ve.AddMissingEntryError(validation.EntryTask, "")
	return ve
}

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Validation error",
			operation: "replay script",
			err:       apperrors.NewValidationError("reminder time cannot be empty", nil),
			expected:  "failed to replay script: reminder time cannot be empty",
		},
		{
			name:      "Field validation error",
			operation: "add task",
			err:       fmt.Errorf("submit: %w", missingTaskError()),
			expected:  "failed to add task: Please enter a task!",
		},
		{
			name:      "Scheduling error",
			operation: "schedule reminder",
			err:       apperrors.NewSchedulingError("Buy milk", -600_000_000_000),
			expected:  "failed to schedule reminder: Please select a future time!",
		},
		{
			name:      "Database error",
			operation: "list reminders",
			err:       apperrors.NewDatabaseError("select", errors.New("closed")),
			expected:  "failed to list reminders: The reminder ledger failed. Please try again.",
		},
		{
			name:      "Regular error",
			operation: "open script",
			err:       errors.New("regular error"),
			expected:  "failed to open script: regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.Handle(tt.operation, tt.err)
			assert.EqualError(t, result, tt.expected)
		})
	}
}

func TestErrorHandler_HandleNil(t *testing.T) {
	eh := NewErrorHandler()
	assert.NoError(t, eh.Handle("anything", nil))
	assert.NoError(t, eh.HandleSimple(nil))
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Validation error", apperrors.NewValidationError("invalid input", nil), "invalid input"},
		{"Field validation error", missingTaskError(), "Please enter a task!"},
		{"Invalid input", apperrors.NewInvalidInputError("time", "x", "bad"), "invalid input for time: bad"},
		{"Regular error", errors.New("regular error"), "regular error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, eh.HandleSimple(tt.err), tt.expected)
		})
	}
}

func TestErrorHandler_LogsUnexpectedErrors(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	logging.SetVerbose(true)
	t.Cleanup(func() {
		logging.SetVerbose(false)
		logging.SetOutput(nil)
	})

	eh := NewErrorHandler()
	_ = eh.Handle("list reminders", apperrors.NewDatabaseError("select", errors.New("closed")))
	assert.Contains(t, buf.String(), "list reminders [DATABASE_ERROR]")

	buf.Reset()
	_ = eh.Handle("open script", errors.New("no such file"))
	assert.Contains(t, buf.String(), "open script [UNKNOWN_ERROR]: no such file")

	buf.Reset()
	_ = eh.Handle("add task", missingTaskError())
	assert.Empty(t, buf.String())

	buf.Reset()
	_ = eh.Handle("replay line 2", apperrors.NewInvalidInputError("script", "x", "bad"))
	assert.Empty(t, buf.String())
}
