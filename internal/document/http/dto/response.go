package dto

import (
	documentDomain "github.com/allisson/brdocs/internal/document/domain"
)

// ValidateResponse represents the outcome of a check-digit validation.
type ValidateResponse struct {
	Kind  string `json:"kind"`
	Valid bool   `json:"valid"`
}

// MaskResponse represents a masked identifier.
type MaskResponse struct {
	Kind   string `json:"kind"`
	Masked string `json:"masked"`
}

// UnmaskResponse represents the digit-only form of an identifier.
type UnmaskResponse struct {
	Kind   string `json:"kind"`
	Digits string `json:"digits"`
}

// FormatResponse represents the outcome of a format match.
type FormatResponse struct {
	Kind  string `json:"kind"`
	Match bool   `json:"match"`
}

// GenerateResponse represents a batch of generated identifiers.
type GenerateResponse struct {
	Kind   string   `json:"kind"`
	Count  int      `json:"count"`
	Values []string `json:"values"`
}

// InspectResponse represents every derived view of an identifier.
type InspectResponse struct {
	Kind        string `json:"kind"`
	Digits      string `json:"digits"`
	Masked      string `json:"masked,omitempty"`
	Valid       bool   `json:"valid"`
	FormatMatch bool   `json:"format_match"`
}

// MapInspectResponse converts a domain inspection into an API response.
func MapInspectResponse(inspection *documentDomain.Inspection) InspectResponse {
	return InspectResponse{
		Kind:        inspection.Kind.String(),
		Digits:      inspection.Digits,
		Masked:      inspection.Masked,
		Valid:       inspection.Valid,
		FormatMatch: inspection.FormatMatch,
	}
}
