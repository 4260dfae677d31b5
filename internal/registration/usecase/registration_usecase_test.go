package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	documentService "github.com/allisson/brdocs/internal/document/service"
	apperrors "github.com/allisson/brdocs/internal/errors"
	registrationDomain "github.com/allisson/brdocs/internal/registration/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = time.UnixMilli(1700000000000)

// cyclingSource yields 0, 1, ..., 9, 0, 1, ... so the first CNPJ generated is 01234567890107.
func cyclingSource() documentService.DigitSource {
	var mu sync.Mutex
	i := 0
	return func() int {
		mu.Lock()
		defer mu.Unlock()
		d := i % 10
		i++
		return d
	}
}

func newTestUseCase() RegistrationUseCase {
	return NewRegistrationUseCase(
		documentService.NewCNPJ(documentService.WithDigitSource(cyclingSource())),
		"empresa.com",
		WithClock(func() time.Time { return fixedNow }),
	)
}

func validInput() *registrationDomain.Input {
	return &registrationDomain.Input{
		Email:    "Contato@Empresa.com",
		Password: "Secure#Pass90",
		CNPJ:     "11.222.333/0001-81",
	}
}

func TestRegistrationUseCase_Check(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	t.Run("Success_AllValid", func(t *testing.T) {
		checks := uc.Check(ctx, validInput())

		assert.True(t, checks.EmailValid)
		assert.True(t, checks.PasswordValid)
		assert.True(t, checks.CNPJValid)
		assert.Empty(t, checks.PasswordViolations)
		assert.True(t, checks.Valid())
	})

	t.Run("Failure_AllInvalid", func(t *testing.T) {
		checks := uc.Check(ctx, &registrationDomain.Input{
			Email:    "invalid",
			Password: "weak",
			CNPJ:     "11.222.333/0001-82",
		})

		assert.False(t, checks.EmailValid)
		assert.False(t, checks.PasswordValid)
		assert.False(t, checks.CNPJValid)
		assert.NotEmpty(t, checks.PasswordViolations)
		assert.Equal(t, []string{"email", "password", "cnpj"}, checks.InvalidFields())
	})
}

func TestRegistrationUseCase_Process(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_BuildsReport", func(t *testing.T) {
		report, err := newTestUseCase().Process(ctx, validInput())
		require.NoError(t, err)

		assert.Equal(t, uuidVersion7, int(report.ID.Version()))
		assert.Equal(t, fixedNow.UTC(), report.CreatedAt)

		assert.Equal(t, registrationDomain.Profile{
			Email:                  "contato@empresa.com",
			Domain:                 "empresa.com",
			LocalPart:              "contato",
			FromRegistrationDomain: true,
			CNPJ:                   "11222333000181",
			MaskedCNPJ:             "11.222.333/0001-81",
			CNPJFormatMatch:        true,
		}, report.Profile)

		assert.Equal(t, registrationDomain.TestRecord{
			Email:      "teste.1700000000000@empresa.com",
			CNPJ:       "01234567890107",
			MaskedCNPJ: "01.234.567/8901-07",
		}, report.TestRecord)

		assert.Equal(t, []registrationDomain.BatchItem{
			{Index: 0, Email: "contato@empresa.com", CNPJ: "11.222.333/0001-81", Valid: true},
			{Index: 1, Email: "teste.1700000000000@empresa.com", CNPJ: "01.234.567/8901-07", Valid: true},
		}, report.Batch)

		assert.Equal(t, registrationDomain.Summary{Total: 2, Valid: 2, Invalid: 0}, report.Summary)
		assert.True(t, report.Integrity.Valid)
		assert.Empty(t, report.Integrity.Errors)
		assert.Equal(t, registrationDomain.Audit{SuspiciousEmails: 1, DuplicateCNPJs: 1}, report.Audit)
	})

	t.Run("Success_OutsideRegistrationDomain", func(t *testing.T) {
		input := validInput()
		input.Email = "admin@outra.com.br"

		report, err := newTestUseCase().Process(ctx, input)
		require.NoError(t, err)

		assert.False(t, report.Profile.FromRegistrationDomain)
		assert.Equal(t, "outra.com.br", report.Profile.Domain)
		assert.Equal(t, 2, report.Audit.SuspiciousEmails)
	})

	t.Run("Success_UnmaskedCNPJIsMasked", func(t *testing.T) {
		input := validInput()
		input.CNPJ = "11222333000181"

		report, err := newTestUseCase().Process(ctx, input)
		require.NoError(t, err)

		assert.Equal(t, "11.222.333/0001-81", report.Profile.MaskedCNPJ)
		assert.Equal(t, "11.222.333/0001-81", report.Batch[0].CNPJ)
	})

	t.Run("Error_InvalidInputNamesFields", func(t *testing.T) {
		input := validInput()
		input.Password = "password"
		input.CNPJ = "11111111111111"

		report, err := newTestUseCase().Process(ctx, input)

		assert.Nil(t, report)
		assert.ErrorIs(t, err, registrationDomain.ErrInvalidRegistration)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		assert.Contains(t, err.Error(), "password, cnpj")
		assert.NotContains(t, err.Error(), "email")
	})

	t.Run("Error_ContextCanceled", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		report, err := newTestUseCase().Process(canceled, validInput())

		assert.Nil(t, report)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRegistrationUseCase_InspectEmail(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	t.Run("ValidSubdomainEmail", func(t *testing.T) {
		inspection := uc.InspectEmail(ctx, "  Vendas@RH.Empresa.COM ")

		assert.Equal(t, "  Vendas@RH.Empresa.COM ", inspection.Email)
		assert.Equal(t, "vendas@rh.empresa.com", inspection.Normalized)
		assert.True(t, inspection.Valid)
		assert.Equal(t, "rh.empresa.com", inspection.Domain)
		assert.Equal(t, "vendas", inspection.LocalPart)
		assert.True(t, inspection.FromRegistrationDomain)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		inspection := uc.InspectEmail(ctx, "not-an-email")

		assert.False(t, inspection.Valid)
		assert.Empty(t, inspection.Domain)
		assert.Empty(t, inspection.LocalPart)
		assert.False(t, inspection.FromRegistrationDomain)
	})
}

func TestRegistrationUseCase_CheckPassword(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	strong := uc.CheckPassword(ctx, "Secure#Pass90")
	assert.True(t, strong.Valid)
	assert.Empty(t, strong.Violations)

	weak := uc.CheckPassword(ctx, "abc")
	assert.False(t, weak.Valid)
	assert.NotEmpty(t, weak.Violations)
}

func TestTestPasswordIsStrong(t *testing.T) {
	uc := newTestUseCase()
	assert.True(t, uc.CheckPassword(context.Background(), registrationDomain.TestPassword).Valid)
}

const uuidVersion7 = 7
