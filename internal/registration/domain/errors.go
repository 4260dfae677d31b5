package domain

import (
	"github.com/allisson/brdocs/internal/errors"
)

// ErrInvalidRegistration indicates that at least one submitted field failed its check.
var ErrInvalidRegistration = errors.Wrap(errors.ErrInvalidInput, "invalid registration data")

const (
	// TestPassword is the password assigned to synthetic test records.
	TestPassword = "Teste987!@#"

	// IntegrityInvalidDomain is reported when the email domain could not be extracted.
	IntegrityInvalidDomain = "invalid email domain"
	// IntegrityInvalidCNPJFormat is reported when the masked CNPJ does not match the CNPJ pattern.
	IntegrityInvalidCNPJFormat = "invalid CNPJ format"
)
