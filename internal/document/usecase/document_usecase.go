package usecase

import (
	"context"
	"fmt"

	documentDomain "github.com/allisson/brdocs/internal/document/domain"
	documentService "github.com/allisson/brdocs/internal/document/service"
)

// documentUseCase implements DocumentUseCase on top of the identifier services.
type documentUseCase struct {
	identifiers      map[documentDomain.Kind]documentService.Identifier
	maxGenerateCount int
}

// NewDocumentUseCase creates a new DocumentUseCase serving the given identifiers.
// maxGenerateCount bounds the number of identifiers a single Generate call may return.
func NewDocumentUseCase(maxGenerateCount int, identifiers ...documentService.Identifier) DocumentUseCase {
	byKind := make(map[documentDomain.Kind]documentService.Identifier, len(identifiers))
	for _, id := range identifiers {
		byKind[id.Kind()] = id
	}

	return &documentUseCase{
		identifiers:      byKind,
		maxGenerateCount: maxGenerateCount,
	}
}

// Validate reports whether value is a valid identifier of the given kind.
func (d *documentUseCase) Validate(_ context.Context, kind documentDomain.Kind, value string) (bool, error) {
	id, err := d.identifier(kind)
	if err != nil {
		return false, err
	}
	return id.Validate(value), nil
}

// Mask returns the display form of value.
func (d *documentUseCase) Mask(_ context.Context, kind documentDomain.Kind, value string) (string, error) {
	id, err := d.identifier(kind)
	if err != nil {
		return "", err
	}
	return id.Mask(value)
}

// Unmask returns the digit-only form of value.
func (d *documentUseCase) Unmask(_ context.Context, kind documentDomain.Kind, value string) (string, error) {
	id, err := d.identifier(kind)
	if err != nil {
		return "", err
	}
	return id.Unmask(value), nil
}

// Generate returns count random valid identifiers.
func (d *documentUseCase) Generate(
	_ context.Context,
	kind documentDomain.Kind,
	count int,
	masked bool,
) ([]string, error) {
	id, err := d.identifier(kind)
	if err != nil {
		return nil, err
	}

	if count < 1 || count > d.maxGenerateCount {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", documentDomain.ErrInvalidCount, d.maxGenerateCount)
	}

	values := make([]string, 0, count)
	for i := 0; i < count; i++ {
		value := id.Generate()
		if masked {
			// Generated values always have the expected length
			value, err = id.Mask(value)
			if err != nil {
				return nil, err
			}
		}
		values = append(values, value)
	}

	return values, nil
}

// CheckFormat reports whether value looks like a complete or partially typed identifier.
func (d *documentUseCase) CheckFormat(_ context.Context, kind documentDomain.Kind, value string) (bool, error) {
	id, err := d.identifier(kind)
	if err != nil {
		return false, err
	}
	return id.IsValidFormat(value), nil
}

// Inspect gathers every derived view of value in one call.
func (d *documentUseCase) Inspect(
	_ context.Context,
	kind documentDomain.Kind,
	value string,
) (*documentDomain.Inspection, error) {
	id, err := d.identifier(kind)
	if err != nil {
		return nil, err
	}

	inspection := &documentDomain.Inspection{
		Kind:        kind,
		Digits:      id.Unmask(value),
		Valid:       id.Validate(value),
		FormatMatch: id.IsValidFormat(value),
	}

	// Masking only fails on a length mismatch, which leaves Masked empty
	if masked, err := id.Mask(value); err == nil {
		inspection.Masked = masked
	}

	return inspection, nil
}

func (d *documentUseCase) identifier(kind documentDomain.Kind) (documentService.Identifier, error) {
	id, ok := d.identifiers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", documentDomain.ErrUnknownKind, kind)
	}
	return id, nil
}
