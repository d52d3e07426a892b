package validation

// Entry kinds, used as the field name in validation errors
const (
	EntryTask = "task"
	EntryGoal = "goal"
)

// EntryValidator validates submitted entry text for both screens. The two
// screens intentionally disagree on whitespace-only text
type EntryValidator struct {
	validator *Validator
	maxLength int
}

// NewEntryValidator creates a validator with no length limit
func NewEntryValidator() *EntryValidator {
	return &EntryValidator{validator: NewValidator()}
}

// WithMaxLength returns a copy that also rejects text longer than max runes
func (ev *EntryValidator) WithMaxLength(max int) *EntryValidator {
	copied := *ev
	copied.maxLength = max
	return &copied
}

// ValidateTaskGoalEntry checks a task or goal submission: any non-empty text
// is accepted, including whitespace
func (ev *EntryValidator) ValidateTaskGoalEntry(kind, text string) error {
	validationError := NewValidationError()

	if !ev.validator.IsPresent(text) {
		validationError.AddMissingEntryError(kind, text)
		return validationError
	}
	if !ev.validator.IsWithinLength(text, ev.maxLength) {
		validationError.AddInvalidLengthError(kind, text, ev.maxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateSimpleEntry checks a simple-screen submission: the trimmed text
// must be non-empty
func (ev *EntryValidator) ValidateSimpleEntry(text string) error {
	validationError := NewValidationError()

	if !ev.validator.IsNonEmptyString(text) {
		validationError.AddMissingEntryError(EntryTask, text)
		return validationError
	}
	if !ev.validator.IsWithinLength(text, ev.maxLength) {
		validationError.AddInvalidLengthError(EntryTask, text, ev.maxLength)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}
