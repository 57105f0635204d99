// Package validation checks user-supplied input before it reaches the
// services.
package validation

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Display name bounds, measured in runes after whitespace normalization
const (
	nameMinLen = 2
	nameMaxLen = 20
)

// profaneWords is a small embedded screen for kid-entered names. The game
// runs offline, so the list is static rather than fetched.
var profaneWords = map[string]bool{
	"ass": true, "arse": true, "bastard": true, "bitch": true,
	"crap": true, "damn": true, "dick": true, "fuck": true,
	"hell": true, "piss": true, "poop": true, "sex": true,
	"shit": true, "slut": true, "turd": true, "wank": true,
}

// ValidatePlayerName checks a child's display name: length bounds, a friendly
// character set (letters, digits, spaces, hyphens, apostrophes), not digits
// only, and a profanity screen on each word.
func ValidatePlayerName(name string) error {
	normalized := strings.Join(strings.Fields(name), " ")
	runes := []rune(normalized)

	if len(runes) == 0 {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(runes) < nameMinLen {
		return ValidationError{Field: "name", Message: fmt.Sprintf("name must be at least %d characters", nameMinLen)}
	}
	if len(runes) > nameMaxLen {
		return ValidationError{Field: "name", Message: fmt.Sprintf("name must be at most %d characters", nameMaxLen)}
	}

	digitsOnly := true
	for _, r := range runes {
		switch {
		case unicode.IsLetter(r):
			digitsOnly = false
		case unicode.IsDigit(r), r == ' ', r == '-', r == '\'':
		default:
			return ValidationError{Field: "name", Message: "name contains unsupported characters"}
		}
	}
	if digitsOnly {
		return ValidationError{Field: "name", Message: "name cannot be numbers only"}
	}

	for _, word := range strings.Fields(strings.ToLower(normalized)) {
		if profaneWords[strings.Trim(word, "-'0123456789")] {
			return ValidationError{Field: "name", Message: "please pick a different name"}
		}
	}

	return nil
}
