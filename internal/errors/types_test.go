package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		want      string
	}{
		{ErrorTypeValidation, "validation"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeDatabase, "database"},
		{ErrorTypeInvalidInput, "invalid_input"},
		{ErrorTypeTimeout, "timeout"},
		{ErrorTypePermission, "permission"},
		{ErrorTypeScheduling, "scheduling"},
		{ErrorType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.errorType.String())
		})
	}
}

func TestAppError_Error(t *testing.T) {
	plain := &AppError{Type: ErrorTypeValidation, Message: "bad entry"}
	assert.Equal(t, "validation: bad entry", plain.Error())

	caused := &AppError{Type: ErrorTypeDatabase, Message: "insert", Cause: errors.New("locked")}
	assert.Equal(t, "database: insert (caused by: locked)", caused.Error())
}

func TestAppError_Is(t *testing.T) {
	err := NewNotFoundError("reminder", "1")

	assert.True(t, errors.Is(err, &AppError{Type: ErrorTypeNotFound, Code: "NOT_FOUND"}))
	assert.False(t, errors.Is(err, &AppError{Type: ErrorTypeNotFound, Code: "OTHER"}))
	assert.False(t, errors.Is(err, errors.New("not found")))
}

func TestAppError_WithContext(t *testing.T) {
	err := &AppError{Type: ErrorTypeTimeout}
	err.WithContext("operation", "replay").WithContext("attempt", 2)

	value, ok := err.GetContext("operation")
	assert.True(t, ok)
	assert.Equal(t, "replay", value)

	_, ok = err.GetContext("missing")
	assert.False(t, ok)

	var empty AppError
	_, ok = empty.GetContext("anything")
	assert.False(t, ok)
}
