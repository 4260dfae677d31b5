package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	validation "github.com/jellydator/validation"
)

// passwordSymbols is the set of characters accepted as special characters.
const passwordSymbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// commonSequences are keyboard and counting runs rejected in passwords (matched case-insensitively).
var commonSequences = []string{"123", "abc", "qwe", "asd", "zxc"}

// PasswordStrength validates password meets minimum strength requirements.
// It is a heuristic check, not a security guarantee.
type PasswordStrength struct {
	MinLength         int
	MaxLength         int // 0 disables the upper bound
	RequireUpper      bool
	RequireLower      bool
	RequireNumber     bool
	RequireSpecial    bool
	PreventSequential bool
	PreventRepeating  bool
}

// DefaultPasswordStrength is the policy used by ValidatePassword.
var DefaultPasswordStrength = PasswordStrength{
	MinLength:         8,
	MaxLength:         128,
	RequireUpper:      true,
	RequireLower:      true,
	RequireNumber:     true,
	RequireSpecial:    true,
	PreventSequential: true,
	PreventRepeating:  true,
}

// ValidatePassword reports whether password satisfies DefaultPasswordStrength.
func ValidatePassword(password string) bool {
	return len(DefaultPasswordStrength.Violations(password)) == 0
}

// Validate checks if the password meets the configured requirements.
// Returns the first violated requirement.
func (p PasswordStrength) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_password_strength", "password must be a string")
	}

	if violations := p.check(s); len(violations) > 0 {
		return validation.NewError(violations[0].code, violations[0].message)
	}

	return nil
}

// Violations returns a message for every requirement the password breaks, in a stable order.
func (p PasswordStrength) Violations(password string) []string {
	violations := p.check(password)
	messages := make([]string, 0, len(violations))
	for _, v := range violations {
		messages = append(messages, v.message)
	}
	return messages
}

type passwordViolation struct {
	code    string
	message string
}

func (p PasswordStrength) check(s string) []passwordViolation {
	var violations []passwordViolation
	add := func(code, message string) {
		violations = append(violations, passwordViolation{code: code, message: message})
	}

	length := utf8.RuneCountInString(s)
	if length < p.MinLength {
		add("validation_password_min_length", fmt.Sprintf("password must be at least %d characters", p.MinLength))
	}
	if p.MaxLength > 0 && length > p.MaxLength {
		add("validation_password_max_length", fmt.Sprintf("password must be at most %d characters", p.MaxLength))
	}

	if p.RequireUpper && !hasUpperCase(s) {
		add("validation_password_uppercase", "password must contain at least one uppercase letter")
	}

	if p.RequireLower && !hasLowerCase(s) {
		add("validation_password_lowercase", "password must contain at least one lowercase letter")
	}

	if p.RequireNumber && !hasNumber(s) {
		add("validation_password_number", "password must contain at least one number")
	}

	if p.RequireSpecial && !hasSpecialChar(s) {
		add("validation_password_special", "password must contain at least one special character")
	}

	if p.PreventSequential && hasCommonSequence(s) {
		add("validation_password_sequential", "password must not contain common sequences")
	}

	if p.PreventRepeating && hasRepeatedRun(s, 3) {
		add("validation_password_repeating", "password must not repeat a character more than twice in a row")
	}

	return violations
}

// hasUpperCase checks if string contains ASCII uppercase letters
func hasUpperCase(s string) bool {
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}

// hasLowerCase checks if string contains ASCII lowercase letters
func hasLowerCase(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return true
		}
	}
	return false
}

// hasNumber checks if string contains ASCII digits
func hasNumber(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// hasSpecialChar checks if string contains one of passwordSymbols
func hasSpecialChar(s string) bool {
	return strings.ContainsAny(s, passwordSymbols)
}

// hasCommonSequence checks for any of commonSequences, ignoring case
func hasCommonSequence(s string) bool {
	lower := strings.ToLower(s)
	for _, seq := range commonSequences {
		if strings.Contains(lower, seq) {
			return true
		}
	}
	return false
}

// hasRepeatedRun checks if any character appears run or more times consecutively
func hasRepeatedRun(s string, run int) bool {
	var prev rune
	count := 0
	for i, r := range s {
		if i > 0 && r == prev {
			count++
		} else {
			count = 1
		}
		if count >= run {
			return true
		}
		prev = r
	}
	return false
}
