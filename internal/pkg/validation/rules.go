package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Name pattern - letters and spaces only
	NamePattern = `^[a-zA-Z\s]+$`

	// Name length bounds
	NameMinLength = 3
	NameMaxLength = 255

	// Email max length per RFC 5321
	EmailMaxLength = 254

	// Password length bounds
	PasswordMinLength = 6
	PasswordMaxLength = 64
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Name  *regexp.Regexp
	Upper *regexp.Regexp
	Lower *regexp.Regexp
	Digit *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Name:  regexp.MustCompile(NamePattern),
	Upper: regexp.MustCompile(`[A-Z]`),
	Lower: regexp.MustCompile(`[a-z]`),
	Digit: regexp.MustCompile(`\d`),
}

// ValidEmail reports whether the value looks like an email address of acceptable length.
func ValidEmail(email string) bool {
	if email == "" || len(email) > EmailMaxLength {
		return false
	}
	return CompiledPatterns.Email.MatchString(email)
}

// ValidName reports whether the value is an acceptable display name.
func ValidName(name string) bool {
	if len(name) < NameMinLength || len(name) > NameMaxLength {
		return false
	}
	return CompiledPatterns.Name.MatchString(name)
}

// ValidPassword reports whether the password satisfies length and character-class rules:
// at least one uppercase letter, one lowercase letter and one digit.
func ValidPassword(password string) bool {
	if len(password) < PasswordMinLength || len(password) > PasswordMaxLength {
		return false
	}
	return CompiledPatterns.Upper.MatchString(password) &&
		CompiledPatterns.Lower.MatchString(password) &&
		CompiledPatterns.Digit.MatchString(password)
}
