package domain

import (
	"time"

	"github.com/google/uuid"
)

// Report is the outcome of processing a valid registration.
// It never carries passwords.
type Report struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	Profile    Profile
	TestRecord TestRecord
	Batch      []BatchItem
	Summary    Summary
	Integrity  Integrity
	Audit      Audit
}

// Profile is the normalized view of the submitted data.
type Profile struct {
	Email                  string
	Domain                 string
	LocalPart              string
	FromRegistrationDomain bool
	CNPJ                   string
	MaskedCNPJ             string
	CNPJFormatMatch        bool
}

// TestRecord is the synthetic registration generated alongside the submitted one.
type TestRecord struct {
	Email      string
	CNPJ       string
	MaskedCNPJ string
}

// BatchItem is the evaluation of one record of the batch.
type BatchItem struct {
	Index int
	// Email is normalized and CNPJ is masked when its length allows.
	Email string
	CNPJ  string
	Valid bool
}

// Summary counts the batch outcome.
type Summary struct {
	Total   int
	Valid   int
	Invalid int
}

// Integrity lists the consistency problems found in the profile.
type Integrity struct {
	Valid  bool
	Errors []string
}

// Audit counts records that deserve a second look.
type Audit struct {
	// SuspiciousEmails counts records whose email contains "test" or "admin".
	SuspiciousEmails int
	// DuplicateCNPJs counts records sharing the CNPJ of the first record, the first included.
	DuplicateCNPJs int
}
