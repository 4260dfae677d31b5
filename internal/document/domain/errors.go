package domain

import (
	"fmt"

	"github.com/allisson/brdocs/internal/errors"
)

var (
	// ErrUnknownKind indicates the identifier kind is not supported.
	ErrUnknownKind = errors.Wrap(errors.ErrNotFound, "unknown document kind")

	// ErrInvalidFormat indicates a value does not have the digit count its kind requires.
	ErrInvalidFormat = errors.Wrap(errors.ErrInvalidInput, "invalid document format")

	// ErrInvalidCount indicates a generation request asked for too few or too many identifiers.
	ErrInvalidCount = errors.Wrap(errors.ErrInvalidInput, "invalid generation count")
)

// FormatError is returned by masking when the normalized value does not have
// exactly RequiredLength digits.
type FormatError struct {
	Kind           Kind
	RequiredLength int
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s must have %d digits", e.Kind, e.RequiredLength)
}

// Unwrap allows errors.Is(err, ErrInvalidFormat).
func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}
