package models

import (
	"regexp"
	"strings"
)

// Email validation regex pattern
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var nonDigitRegex = regexp.MustCompile(`\D`)

// localPhoneDigits is the digit count required once the country code and
// formatting characters are stripped from the phone input.
const localPhoneDigits = 10

// ValidationError reports a rejected submission field. It is expected,
// user-facing feedback, not a server fault.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidEmail reports whether the address matches the accepted
// local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// CleanPhoneDigits removes every occurrence of the country code substring
// from the phone input, then strips all remaining non-digit characters.
// Removal is by substring, not prefix: a country code embedded mid-string is
// stripped wherever it occurs, which affects the resulting digit count.
func CleanPhoneDigits(phone, countryCode string) string {
	withoutCode := phone
	if countryCode != "" {
		withoutCode = strings.ReplaceAll(phone, countryCode, "")
	}
	return nonDigitRegex.ReplaceAllString(withoutCode, "")
}

// IsValidPhone reports whether the phone input yields exactly ten local
// digits after cleaning.
func IsValidPhone(phone, countryCode string) bool {
	return len(CleanPhoneDigits(phone, countryCode)) == localPhoneDigits
}
