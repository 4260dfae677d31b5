package domain

// Inspection summarizes everything known about a raw identifier value.
type Inspection struct {
	Kind Kind
	// Digits is the normalized, digit-only value.
	Digits string
	// Masked is empty when Digits does not have the length of Kind.
	Masked string
	// Valid reports whether both check digits are correct.
	Valid bool
	// FormatMatch reports whether the raw value looks like a (possibly partial) identifier.
	FormatMatch bool
}
