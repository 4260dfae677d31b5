// Package usecase implements registration checks and report processing on top of the
// CNPJ identifier and the email and password validators.
package usecase

import (
	"context"

	registrationDomain "github.com/allisson/brdocs/internal/registration/domain"
)

// RegistrationUseCase defines the interface for registration operations.
type RegistrationUseCase interface {
	// Check runs every field check on input without failing.
	Check(ctx context.Context, input *registrationDomain.Input) *registrationDomain.Checks

	// Process validates input and builds a report for it. Returns
	// registrationDomain.ErrInvalidRegistration naming the failing fields when any check fails.
	Process(ctx context.Context, input *registrationDomain.Input) (*registrationDomain.Report, error)

	// InspectEmail describes email relative to the registration domain.
	InspectEmail(ctx context.Context, email string) *registrationDomain.EmailInspection

	// CheckPassword lists the strength rules password breaks.
	CheckPassword(ctx context.Context, password string) *registrationDomain.PasswordCheck
}
