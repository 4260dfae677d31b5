// Package domain defines core models for Brazilian registration identifiers.
// Supports CPF (personal, 11 digits) and CNPJ (company, 14 digits), both protected
// by a pair of weighted mod-11 check digits.
package domain

// Kind identifies a registration identifier type.
type Kind string

const (
	KindCPF  Kind = "cpf"
	KindCNPJ Kind = "cnpj"
)

// Identifier length and checksum constants
const (
	// CPFLength is the number of digits in an unmasked CPF.
	CPFLength = 11

	// CNPJLength is the number of digits in an unmasked CNPJ.
	CNPJLength = 14

	// CheckDigitCount is the number of trailing check digits on every identifier.
	CheckDigitCount = 2

	// Modulus is the divisor of the weighted checksum.
	Modulus = 11
)

// Validate checks if the kind is supported.
func (k Kind) Validate() error {
	switch k {
	case KindCPF, KindCNPJ:
		return nil
	default:
		return ErrUnknownKind
	}
}

// Length returns the number of digits of an unmasked identifier of this kind, or 0 if unknown.
func (k Kind) Length() int {
	switch k {
	case KindCPF:
		return CPFLength
	case KindCNPJ:
		return CNPJLength
	default:
		return 0
	}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// ParseKind converts a string into a Kind, returning ErrUnknownKind if unsupported.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}
