package validation

import (
	"regexp"
	"strings"
)

const (
	// MaxEmailLocalPartLength is the maximum length of the part before the "@".
	MaxEmailLocalPartLength = 64

	// MaxEmailDomainLength is the maximum length of the part after the "@".
	MaxEmailDomainLength = 253
)

// emailRegex is a basic email validation pattern
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail reports whether email matches the address pattern, respects the part
// length limits and has no leading, trailing or doubled dots in either part.
func ValidateEmail(email string) bool {
	if !emailRegex.MatchString(email) {
		return false
	}

	localPart, domainPart, _ := strings.Cut(email, "@")

	if len(localPart) > MaxEmailLocalPartLength || len(domainPart) > MaxEmailDomainLength {
		return false
	}

	return !hasMisplacedDots(localPart) && !hasMisplacedDots(domainPart)
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ExtractDomain returns the part after the "@" of a valid email.
func ExtractDomain(email string) (string, bool) {
	if !ValidateEmail(email) {
		return "", false
	}
	_, domainPart, _ := strings.Cut(email, "@")
	return domainPart, true
}

// ExtractLocalPart returns the part before the "@" of a valid email.
func ExtractLocalPart(email string) (string, bool) {
	if !ValidateEmail(email) {
		return "", false
	}
	localPart, _, _ := strings.Cut(email, "@")
	return localPart, true
}

// IsFromDomain reports whether a valid email belongs to domain or one of its
// subdomains. The comparison is case-insensitive.
func IsFromDomain(email, domain string) bool {
	if domain == "" {
		return false
	}

	emailDomain, ok := ExtractDomain(email)
	if !ok {
		return false
	}

	emailDomain = strings.ToLower(emailDomain)
	domain = strings.ToLower(domain)

	return emailDomain == domain || strings.HasSuffix(emailDomain, "."+domain)
}

// hasMisplacedDots checks for a leading, trailing or doubled dot
func hasMisplacedDots(part string) bool {
	return strings.HasPrefix(part, ".") || strings.HasSuffix(part, ".") || strings.Contains(part, "..")
}
