package cli

import (
	"fmt"

	"productivity-tracker/internal/errors"
	"productivity-tracker/internal/logging"
	"productivity-tracker/internal/validation"
)

// ErrorHandler converts command errors into messages for the terminal
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle returns "failed to <operation>: <message>" where message is the
// user-facing text for err. Errors without user-facing text are wrapped
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	if !validation.IsValidationError(err) && errors.ShouldLogError(err) {
		logging.Debugf("%s [%s]: %v\n", operation, errors.GetErrorCode(err), err)
	}

	if msg, ok := userMessage(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, msg)
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple is Handle without the operation prefix
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}
	if msg, ok := userMessage(err); ok {
		return fmt.Errorf("%s", msg)
	}
	return err
}

func userMessage(err error) (string, bool) {
	if validation.IsValidationError(err) {
		return validation.UserMessage(err), true
	}
	if _, ok := errors.AsAppError(err); ok {
		return errors.GetUserMessage(err), true
	}
	return "", false
}
