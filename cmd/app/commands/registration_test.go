package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	registrationDomain "github.com/allisson/brdocs/internal/registration/domain"
	registrationMocks "github.com/allisson/brdocs/internal/registration/usecase/mocks"
)

func TestRunCheckEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("valid-text", func(t *testing.T) {
		mockUseCase := &registrationMocks.MockRegistrationUseCase{}
		mockUseCase.On("InspectEmail", ctx, "Contato@Empresa.com").Return(&registrationDomain.EmailInspection{
			Email:                  "Contato@Empresa.com",
			Normalized:             "contato@empresa.com",
			Valid:                  true,
			Domain:                 "empresa.com",
			LocalPart:              "contato",
			FromRegistrationDomain: true,
		})

		var out bytes.Buffer
		err := RunCheckEmail(ctx, mockUseCase, &out, "Contato@Empresa.com", "text")
		require.NoError(t, err)
		require.Contains(t, out.String(), "Normalized:  contato@empresa.com")
		require.Contains(t, out.String(), "Registered:  true")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("invalid-json", func(t *testing.T) {
		mockUseCase := &registrationMocks.MockRegistrationUseCase{}
		mockUseCase.On("InspectEmail", ctx, "not-an-email").Return(&registrationDomain.EmailInspection{
			Email:      "not-an-email",
			Normalized: "not-an-email",
		})

		var out bytes.Buffer
		err := RunCheckEmail(ctx, mockUseCase, &out, "not-an-email", "json")
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid email")

		var result map[string]interface{}
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		require.Equal(t, false, result["valid"])
	})
}

func TestRunCheckPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("strong", func(t *testing.T) {
		mockUseCase := &registrationMocks.MockRegistrationUseCase{}
		mockUseCase.On("CheckPassword", ctx, "Secure#Pass90").
			Return(&registrationDomain.PasswordCheck{Valid: true, Violations: []string{}})

		var out bytes.Buffer
		err := RunCheckPassword(ctx, mockUseCase, &out, "Secure#Pass90", "text")
		require.NoError(t, err)
		require.Contains(t, out.String(), "PASSED")
		require.NotContains(t, out.String(), "Secure#Pass90")
	})

	t.Run("weak", func(t *testing.T) {
		mockUseCase := &registrationMocks.MockRegistrationUseCase{}
		mockUseCase.On("CheckPassword", ctx, "short").Return(&registrationDomain.PasswordCheck{
			Violations: []string{"must be at least 8 characters long"},
		})

		var out bytes.Buffer
		err := RunCheckPassword(ctx, mockUseCase, &out, "short", "text")
		require.Error(t, err)
		require.Contains(t, out.String(), "FAILED")
		require.Contains(t, out.String(), "  - must be at least 8 characters long")
	})
}

func TestRunRegister(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	input := &registrationDomain.Input{
		Email:    "contato@empresa.com",
		Password: "Secure#Pass90",
		CNPJ:     "11.222.333/0001-81",
	}
	report := &registrationDomain.Report{
		ID:        uuid.Must(uuid.NewV7()),
		CreatedAt: time.UnixMilli(1700000000000).UTC(),
		Profile: registrationDomain.Profile{
			Email:      "contato@empresa.com",
			Domain:     "empresa.com",
			LocalPart:  "contato",
			CNPJ:       "11222333000181",
			MaskedCNPJ: "11.222.333/0001-81",
		},
		Batch: []registrationDomain.BatchItem{
			{Index: 0, Email: "contato@empresa.com", CNPJ: "11.222.333/0001-81", Valid: true},
		},
		Summary:   registrationDomain.Summary{Total: 1, Valid: 1},
		Integrity: registrationDomain.Integrity{Valid: true},
		Audit:     registrationDomain.Audit{DuplicateCNPJs: 1},
	}

	t.Run("success-text", func(t *testing.T) {
		mockUseCase := &registrationMocks.MockRegistrationUseCase{}
		mockUseCase.On("Process", ctx, input).Return(report, nil)

		var out bytes.Buffer
		err := RunRegister(ctx, mockUseCase, logger, &out, input.Email, input.Password, input.CNPJ, "text")
		require.NoError(t, err)
		require.Contains(t, out.String(), "Registration Report")
		require.Contains(t, out.String(), report.ID.String())
		require.Contains(t, out.String(), "Status: PASSED")
		require.NotContains(t, out.String(), input.Password)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("success-json", func(t *testing.T) {
		mockUseCase := &registrationMocks.MockRegistrationUseCase{}
		mockUseCase.On("Process", ctx, input).Return(report, nil)

		var out bytes.Buffer
		err := RunRegister(ctx, mockUseCase, logger, &out, input.Email, input.Password, input.CNPJ, "json")
		require.NoError(t, err)
		require.NotContains(t, out.String(), input.Password)

		var result map[string]interface{}
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		require.Equal(t, report.ID.String(), result["id"])
	})

	t.Run("invalid-registration", func(t *testing.T) {
		mockUseCase := &registrationMocks.MockRegistrationUseCase{}
		mockUseCase.On("Process", ctx, input).Return(nil, registrationDomain.ErrInvalidRegistration)

		err := RunRegister(ctx, mockUseCase, logger, &bytes.Buffer{}, input.Email, input.Password, input.CNPJ, "text")
		require.Error(t, err)
		require.True(t, errors.Is(err, registrationDomain.ErrInvalidRegistration))
	})
}
