package service

import (
	"github.com/allisson/brdocs/internal/document/domain"
)

// NewIdentifier creates a new identifier based on the specified kind.
func NewIdentifier(kind domain.Kind, opts ...Option) (Identifier, error) {
	switch kind {
	case domain.KindCPF:
		return NewCPF(opts...), nil
	case domain.KindCNPJ:
		return NewCNPJ(opts...), nil
	default:
		return nil, domain.ErrUnknownKind
	}
}
