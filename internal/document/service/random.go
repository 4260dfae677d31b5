package service

import (
	"math/rand/v2"
)

// DigitSource returns a decimal digit in 0..9. It must be safe for concurrent use
// when the identifier using it is shared between goroutines.
type DigitSource func() int

// defaultDigitSource draws from the math/rand/v2 global generator, which is safe for
// concurrent use. It is not cryptographically secure: generated identifiers are test
// data and must not be used as secrets.
func defaultDigitSource() int {
	//nolint:gosec // identifiers are synthetic test data, not secrets
	return rand.IntN(10)
}

// Option configures an identifier.
type Option func(*mod11Identifier)

// WithDigitSource replaces the random source used by Generate.
func WithDigitSource(source DigitSource) Option {
	return func(m *mod11Identifier) {
		if source != nil {
			m.source = source
		}
	}
}
