package validation

import (
	"strings"
	"unicode/utf8"
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsPresent reports whether s has any characters at all. Whitespace counts
func (v *Validator) IsPresent(s string) bool {
	return s != ""
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsWithinLength reports whether s has at most max runes. max <= 0 means no limit
func (v *Validator) IsWithinLength(s string, max int) bool {
	return max <= 0 || utf8.RuneCountInString(s) <= max
}
