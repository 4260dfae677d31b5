// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/brdocs/internal/validation"
)

// MaxValueLength bounds the raw identifier accepted in a request, separators included.
const MaxValueLength = 64

// CheckRequest carries the raw value for the validate and format routes. Both answer a
// yes/no question for any string, so the value itself is never rejected: empty, blank
// and oversized values get a negative answer instead of a validation error.
type CheckRequest struct {
	Value string `json:"value"`
}

// ExceedsMaxLength reports whether the value is longer than MaxValueLength bytes.
// Such values are answered without being checked.
func (r *CheckRequest) ExceedsMaxLength() bool {
	return len(r.Value) > MaxValueLength
}

// ValueRequest carries a raw identifier, masked, unmasked or partially typed, for the
// routes that transform it (mask, unmask, inspect).
type ValueRequest struct {
	Value string `json:"value"`
}

// Validate checks if the value request is valid.
func (r *ValueRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Value,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, MaxValueLength),
		),
	)
}

// GenerateRequest contains the parameters for generating identifiers.
type GenerateRequest struct {
	Count  int  `json:"count"` // defaults to 1 when omitted
	Masked bool `json:"masked"`
}

// Validate checks if the generate request is valid. The upper bound is enforced by the use case.
func (r *GenerateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Count, validation.Min(1)),
	)
}

// CountOrDefault returns the requested count, or 1 when none was given.
func (r *GenerateRequest) CountOrDefault() int {
	if r.Count == 0 {
		return 1
	}
	return r.Count
}
