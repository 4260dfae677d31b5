// Package usecase defines interfaces and implementations for document use cases.
// Exposes the CPF and CNPJ identifiers behind a single kind-keyed, context-aware API.
package usecase

import (
	"context"

	documentDomain "github.com/allisson/brdocs/internal/document/domain"
)

// DocumentUseCase defines the interface for identifier operations.
// Every method returns documentDomain.ErrUnknownKind when kind is not supported.
type DocumentUseCase interface {
	// Validate reports whether value is a valid identifier of the given kind.
	Validate(ctx context.Context, kind documentDomain.Kind, value string) (bool, error)

	// Mask returns the display form of value. Returns *documentDomain.FormatError if the
	// digit count does not match the kind.
	Mask(ctx context.Context, kind documentDomain.Kind, value string) (string, error)

	// Unmask returns the digit-only form of value.
	Unmask(ctx context.Context, kind documentDomain.Kind, value string) (string, error)

	// Generate returns count random valid identifiers, masked if requested.
	// Returns documentDomain.ErrInvalidCount when count is outside 1..max.
	Generate(ctx context.Context, kind documentDomain.Kind, count int, masked bool) ([]string, error)

	// CheckFormat reports whether value looks like a complete or partially typed identifier.
	CheckFormat(ctx context.Context, kind documentDomain.Kind, value string) (bool, error)

	// Inspect returns the normalized digits, masked form, validity and format match of value.
	Inspect(ctx context.Context, kind documentDomain.Kind, value string) (*documentDomain.Inspection, error)
}
