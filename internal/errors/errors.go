package errors

import (
	"errors"
	"fmt"
	"time"
)

func newAppError(errorType ErrorType, code, message string, cause error, context map[string]interface{}) *AppError {
	if context == nil {
		context = make(map[string]interface{})
	}
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    code,
		Cause:   cause,
		Context: context,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return newAppError(ErrorTypeValidation, "VALIDATION_FAILED", message, cause, nil)
}

// NewNotFoundError reports a missing ledger row or list entry
func NewNotFoundError(resource string, identifier string) *AppError {
	return newAppError(ErrorTypeNotFound, "NOT_FOUND",
		fmt.Sprintf("%s not found: %s", resource, identifier), nil,
		map[string]interface{}{"resource": resource, "identifier": identifier})
}

// NewDatabaseError wraps a reminder ledger failure
func NewDatabaseError(operation string, cause error) *AppError {
	return newAppError(ErrorTypeDatabase, "DATABASE_ERROR",
		fmt.Sprintf("database operation failed: %s", operation), cause,
		map[string]interface{}{"operation": operation})
}

// NewInvalidInputError reports a malformed flag, script line or time value
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return newAppError(ErrorTypeInvalidInput, "INVALID_INPUT",
		fmt.Sprintf("invalid input for %s: %s", field, reason), nil,
		map[string]interface{}{"field": field, "value": value, "reason": reason})
}

// NewTimeoutError reports an operation that outlived its deadline
func NewTimeoutError(operation string, timeout interface{}) *AppError {
	return newAppError(ErrorTypeTimeout, "TIMEOUT",
		fmt.Sprintf("operation timed out: %s", operation), nil,
		map[string]interface{}{"operation": operation, "timeout": timeout})
}

// NewPermissionError reports an action the scheduler refuses
func NewPermissionError(operation string, resource string) *AppError {
	return newAppError(ErrorTypePermission, "PERMISSION_DENIED",
		fmt.Sprintf("permission denied for %s on %s", operation, resource), nil,
		map[string]interface{}{"operation": operation, "resource": resource})
}

// NewSchedulingError creates an error for a reminder that cannot be armed.
// delay is the computed offset from now; negative means the time has passed
func NewSchedulingError(reminder string, delay time.Duration) *AppError {
	return newAppError(ErrorTypeScheduling, "REMINDER_IN_PAST",
		fmt.Sprintf("reminder %q is %s in the past", reminder, (-delay).Round(time.Second)), nil,
		map[string]interface{}{"reminder": reminder, "delay": delay})
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// Fixed messages for types whose details are not useful on screen. Other
// types show their own message
var userMessages = map[ErrorType]string{
	ErrorTypeScheduling: "Please select a future time!",
	ErrorTypeDatabase:   "The reminder ledger failed. Please try again.",
	ErrorTypeTimeout:    "The operation timed out. Please try again.",
}

// GetUserMessage returns the text shown to the user for err
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}
	if message, fixed := userMessages[appErr.Type]; fixed {
		return message
	}
	if appErr.Type.isUserError() || appErr.Type == ErrorTypePermission {
		return appErr.Message
	}
	return "An unexpected error occurred. Please try again."
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError reports whether err is worth a debug log line. Mistakes in
// user input are not
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return !appErr.Type.isUserError()
	}
	return true
}
