// Package service provides the check-digit engine and the CPF/CNPJ identifiers built on it.
// Every identifier shares one weighted mod-11 routine and differs only by its layout:
// digit count, weight tables and display separators.
package service

import (
	"github.com/allisson/brdocs/internal/document/domain"
)

// Identifier defines the operations available for a registration identifier type.
// Implementations are immutable and safe for concurrent use.
type Identifier interface {
	// Kind returns the identifier type.
	Kind() domain.Kind

	// Length returns the number of digits of an unmasked value.
	Length() int

	// Validate reports whether raw, once normalized, has the expected length, is not a
	// single repeated digit and carries both correct check digits. It never fails.
	Validate(raw string) bool

	// Mask returns the canonical display form of raw. Returns *domain.FormatError when
	// the normalized value does not have exactly Length digits. Check digits are not verified.
	Mask(raw string) (string, error)

	// Unmask returns the digit-only form of raw.
	Unmask(raw string) string

	// Generate returns a random unmasked value that passes Validate.
	Generate() string

	// IsValidFormat reports whether raw looks like a masked, unmasked or partially typed
	// value. It is meant for live input assistance and never replaces Validate.
	IsValidFormat(raw string) bool
}
