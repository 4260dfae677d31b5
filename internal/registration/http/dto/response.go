package dto

import (
	"time"

	registrationDomain "github.com/allisson/brdocs/internal/registration/domain"
)

// ChecksResponse represents the per-field outcome of a registration check.
type ChecksResponse struct {
	Valid              bool     `json:"valid"`
	Email              bool     `json:"email"`
	Password           bool     `json:"password"`
	CNPJ               bool     `json:"cnpj"`
	InvalidFields      []string `json:"invalid_fields"`
	PasswordViolations []string `json:"password_violations"`
}

// MapChecksResponse converts domain checks into an API response.
func MapChecksResponse(checks *registrationDomain.Checks) ChecksResponse {
	return ChecksResponse{
		Valid:              checks.Valid(),
		Email:              checks.EmailValid,
		Password:           checks.PasswordValid,
		CNPJ:               checks.CNPJValid,
		InvalidFields:      nonNil(checks.InvalidFields()),
		PasswordViolations: nonNil(checks.PasswordViolations),
	}
}

// EmailInspectionResponse represents an inspected email address.
type EmailInspectionResponse struct {
	Email                  string `json:"email"`
	Normalized             string `json:"normalized"`
	Valid                  bool   `json:"valid"`
	Domain                 string `json:"domain,omitempty"`
	LocalPart              string `json:"local_part,omitempty"`
	FromRegistrationDomain bool   `json:"from_registration_domain"`
}

// MapEmailInspectionResponse converts a domain email inspection into an API response.
func MapEmailInspectionResponse(inspection *registrationDomain.EmailInspection) EmailInspectionResponse {
	return EmailInspectionResponse{
		Email:                  inspection.Email,
		Normalized:             inspection.Normalized,
		Valid:                  inspection.Valid,
		Domain:                 inspection.Domain,
		LocalPart:              inspection.LocalPart,
		FromRegistrationDomain: inspection.FromRegistrationDomain,
	}
}

// PasswordCheckResponse represents a password strength verdict.
type PasswordCheckResponse struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations"`
}

// MapPasswordCheckResponse converts a domain password check into an API response.
func MapPasswordCheckResponse(check *registrationDomain.PasswordCheck) PasswordCheckResponse {
	return PasswordCheckResponse{
		Valid:      check.Valid,
		Violations: nonNil(check.Violations),
	}
}

// ProfileResponse is the normalized view of the submitted data.
type ProfileResponse struct {
	Email                  string `json:"email"`
	Domain                 string `json:"domain"`
	LocalPart              string `json:"local_part"`
	FromRegistrationDomain bool   `json:"from_registration_domain"`
	CNPJ                   string `json:"cnpj"`
	MaskedCNPJ             string `json:"masked_cnpj"`
	CNPJFormatMatch        bool   `json:"cnpj_format_match"`
}

// TestRecordResponse is the synthetic record generated with the report.
type TestRecordResponse struct {
	Email      string `json:"email"`
	CNPJ       string `json:"cnpj"`
	MaskedCNPJ string `json:"masked_cnpj"`
}

// BatchItemResponse is the evaluation of one batch record.
type BatchItemResponse struct {
	Index int    `json:"index"`
	Email string `json:"email"`
	CNPJ  string `json:"cnpj"`
	Valid bool   `json:"valid"`
}

// SummaryResponse counts the batch outcome.
type SummaryResponse struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

// IntegrityResponse lists the consistency problems found.
type IntegrityResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// AuditResponse counts records that deserve a second look.
type AuditResponse struct {
	SuspiciousEmails int `json:"suspicious_emails"`
	DuplicateCNPJs   int `json:"duplicate_cnpjs"`
}

// ReportResponse represents a processed registration.
type ReportResponse struct {
	ID         string              `json:"id"`
	CreatedAt  time.Time           `json:"created_at"`
	Profile    ProfileResponse     `json:"profile"`
	TestRecord TestRecordResponse  `json:"test_record"`
	Batch      []BatchItemResponse `json:"batch"`
	Summary    SummaryResponse     `json:"summary"`
	Integrity  IntegrityResponse   `json:"integrity"`
	Audit      AuditResponse       `json:"audit"`
}

// MapReportResponse converts a domain report into an API response.
func MapReportResponse(report *registrationDomain.Report) ReportResponse {
	batch := make([]BatchItemResponse, 0, len(report.Batch))
	for _, item := range report.Batch {
		batch = append(batch, BatchItemResponse{
			Index: item.Index,
			Email: item.Email,
			CNPJ:  item.CNPJ,
			Valid: item.Valid,
		})
	}

	return ReportResponse{
		ID:        report.ID.String(),
		CreatedAt: report.CreatedAt,
		Profile: ProfileResponse{
			Email:                  report.Profile.Email,
			Domain:                 report.Profile.Domain,
			LocalPart:              report.Profile.LocalPart,
			FromRegistrationDomain: report.Profile.FromRegistrationDomain,
			CNPJ:                   report.Profile.CNPJ,
			MaskedCNPJ:             report.Profile.MaskedCNPJ,
			CNPJFormatMatch:        report.Profile.CNPJFormatMatch,
		},
		TestRecord: TestRecordResponse{
			Email:      report.TestRecord.Email,
			CNPJ:       report.TestRecord.CNPJ,
			MaskedCNPJ: report.TestRecord.MaskedCNPJ,
		},
		Batch: batch,
		Summary: SummaryResponse{
			Total:   report.Summary.Total,
			Valid:   report.Summary.Valid,
			Invalid: report.Summary.Invalid,
		},
		Integrity: IntegrityResponse{
			Valid:  report.Integrity.Valid,
			Errors: nonNil(report.Integrity.Errors),
		},
		Audit: AuditResponse{
			SuspiciousEmails: report.Audit.SuspiciousEmails,
			DuplicateCNPJs:   report.Audit.DuplicateCNPJs,
		},
	}
}

// nonNil keeps empty lists encoded as [] instead of null.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
