package service

import (
	"github.com/allisson/brdocs/internal/document/domain"
)

// cnpjLayout is the CNPJ shape: twelve base digits, weights cycling 9..2 from the
// right, displayed as ##.###.###/####-##.
var cnpjLayout = layout{
	kind:          domain.KindCNPJ,
	length:        domain.CNPJLength,
	firstWeights:  []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2},
	secondWeights: []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2},
	groups:        []int{2, 3, 3, 4, 2},
	separators:    []string{".", ".", "/", "-"},
}

// NewCNPJ creates the CNPJ (Cadastro Nacional da Pessoa Jurídica) identifier.
func NewCNPJ(opts ...Option) Identifier {
	return newMod11Identifier(cnpjLayout, opts...)
}
