package services

import (
	"regexp"
	"strings"
	"unicode"
)

// Advisory field validation. It runs on every field change in the UI and only
// informs the operator; the gateway response is always the authoritative
// accept/reject decision.

const (
	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 8

	// PasswordSymbols is the set of special characters a password must draw from.
	PasswordSymbols = "@$!%*#?&."

	msgEmailRequired    = "Email is required"
	msgEmailPattern     = "Please enter a valid email address"
	msgPasswordRequired = "Password is required"
	msgPasswordPattern  = "Password must be at least 8 characters and include letters, numbers, and special characters"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail returns a user-facing message when value does not look like
// an email address, or an empty string when it does.
func ValidateEmail(value string) string {
	if value == "" {
		return msgEmailRequired
	}
	if !emailPattern.MatchString(value) {
		return msgEmailPattern
	}
	return ""
}

// ValidatePassword returns a user-facing message when value does not satisfy
// the password policy: at least MinPasswordLength characters, at least one
// letter, one digit, and one symbol from PasswordSymbols, with no characters
// outside those classes.
func ValidatePassword(value string) string {
	if value == "" {
		return msgPasswordRequired
	}
	if !passwordAcceptable(value) {
		return msgPasswordPattern
	}
	return ""
}

func passwordAcceptable(value string) bool {
	if len(value) < MinPasswordLength {
		return false
	}

	var hasLetter, hasDigit, hasSymbol bool
	for _, r := range value {
		switch {
		case unicode.IsLetter(r) && r <= unicode.MaxASCII:
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(PasswordSymbols, r):
			hasSymbol = true
		default:
			return false
		}
	}
	return hasLetter && hasDigit && hasSymbol
}
