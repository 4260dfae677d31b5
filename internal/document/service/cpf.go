package service

import (
	"github.com/allisson/brdocs/internal/document/domain"
)

// cpfLayout is the CPF shape: nine base digits weighted 10..2 for the first check
// digit, ten digits weighted 11..2 for the second, displayed as ###.###.###-##.
var cpfLayout = layout{
	kind:          domain.KindCPF,
	length:        domain.CPFLength,
	firstWeights:  descendingWeights(10, domain.CPFLength-2),
	secondWeights: descendingWeights(11, domain.CPFLength-1),
	groups:        []int{3, 3, 3, 2},
	separators:    []string{".", ".", "-"},
}

// NewCPF creates the CPF (Cadastro de Pessoas Físicas) identifier.
func NewCPF(opts ...Option) Identifier {
	return newMod11Identifier(cpfLayout, opts...)
}
