// Package mocks provides mock implementations of the registration use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	registrationDomain "github.com/allisson/brdocs/internal/registration/domain"
)

// MockRegistrationUseCase is a mock implementation of RegistrationUseCase for testing.
type MockRegistrationUseCase struct {
	mock.Mock
}

// Check mocks the Check method of RegistrationUseCase.
func (m *MockRegistrationUseCase) Check(
	ctx context.Context,
	input *registrationDomain.Input,
) *registrationDomain.Checks {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*registrationDomain.Checks)
}

// Process mocks the Process method of RegistrationUseCase.
func (m *MockRegistrationUseCase) Process(
	ctx context.Context,
	input *registrationDomain.Input,
) (*registrationDomain.Report, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registrationDomain.Report), args.Error(1)
}

// InspectEmail mocks the InspectEmail method of RegistrationUseCase.
func (m *MockRegistrationUseCase) InspectEmail(
	ctx context.Context,
	email string,
) *registrationDomain.EmailInspection {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*registrationDomain.EmailInspection)
}

// CheckPassword mocks the CheckPassword method of RegistrationUseCase.
func (m *MockRegistrationUseCase) CheckPassword(
	ctx context.Context,
	password string,
) *registrationDomain.PasswordCheck {
	args := m.Called(ctx, password)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*registrationDomain.PasswordCheck)
}
