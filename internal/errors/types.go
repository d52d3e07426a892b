package errors

import (
	"fmt"
)

// ErrorType classifies an AppError for user messages and logging
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeNotFound
	ErrorTypeDatabase
	ErrorTypeInvalidInput
	ErrorTypeTimeout
	ErrorTypePermission
	ErrorTypeScheduling
)

var typeNames = [...]string{
	ErrorTypeValidation:   "validation",
	ErrorTypeNotFound:     "not_found",
	ErrorTypeDatabase:     "database",
	ErrorTypeInvalidInput: "invalid_input",
	ErrorTypeTimeout:      "timeout",
	ErrorTypePermission:   "permission",
	ErrorTypeScheduling:   "scheduling",
}

func (et ErrorType) String() string {
	if et < 0 || int(et) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[et]
}

// isUserError reports whether the type describes a mistake in what the user
// typed rather than a failure of the program
func (et ErrorType) isUserError() bool {
	switch et {
	case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput, ErrorTypeScheduling:
		return true
	}
	return false
}

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType
	Message string
	Code    string
	Cause   error
	Context map[string]interface{}
}

// Error formats as "<type>: <message>", followed by the cause if there is one
func (e *AppError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (caused by: %v)", msg, e.Cause)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an AppError with the same type and code
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

// WithContext adds context information to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// GetContext retrieves context information from the error
func (e *AppError) GetContext(key string) (interface{}, bool) {
	if e.Context == nil {
		return nil, false
	}
	value, exists := e.Context[key]
	return value, exists
}
