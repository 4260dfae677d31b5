package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	documentService "github.com/allisson/brdocs/internal/document/service"
	registrationDomain "github.com/allisson/brdocs/internal/registration/domain"
	"github.com/allisson/brdocs/internal/validation"
)

// registrationUseCase implements RegistrationUseCase.
type registrationUseCase struct {
	cnpj   documentService.Identifier
	domain string
	now    func() time.Time
}

// Option configures a registration use case.
type Option func(*registrationUseCase)

// WithClock replaces the time source used for report timestamps and test emails.
func WithClock(now func() time.Time) Option {
	return func(r *registrationUseCase) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRegistrationUseCase creates a new RegistrationUseCase. registrationDomain is the
// company email domain used for test records and domain membership checks.
func NewRegistrationUseCase(
	cnpj documentService.Identifier,
	registrationDomain string,
	opts ...Option,
) RegistrationUseCase {
	r := &registrationUseCase{
		cnpj:   cnpj,
		domain: registrationDomain,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Check runs every field check on input.
func (r *registrationUseCase) Check(
	_ context.Context,
	input *registrationDomain.Input,
) *registrationDomain.Checks {
	violations := validation.DefaultPasswordStrength.Violations(input.Password)

	return &registrationDomain.Checks{
		EmailValid:         validation.ValidateEmail(input.Email),
		PasswordValid:      len(violations) == 0,
		CNPJValid:          r.cnpj.Validate(input.CNPJ),
		PasswordViolations: violations,
	}
}

// Process validates input, builds a synthetic test record and evaluates both as a batch.
func (r *registrationUseCase) Process(
	ctx context.Context,
	input *registrationDomain.Input,
) (*registrationDomain.Report, error) {
	checks := r.Check(ctx, input)
	if !checks.Valid() {
		return nil, fmt.Errorf(
			"%w: %s",
			registrationDomain.ErrInvalidRegistration,
			strings.Join(checks.InvalidFields(), ", "),
		)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate report id: %w", err)
	}

	now := r.now()
	profile, err := r.buildProfile(input)
	if err != nil {
		return nil, err
	}
	testRecord, testInput := r.buildTestRecord(now)

	batch, err := r.evaluateBatch(ctx, []registrationDomain.Input{*input, testInput})
	if err != nil {
		return nil, err
	}

	return &registrationDomain.Report{
		ID:         id,
		CreatedAt:  now.UTC(),
		Profile:    profile,
		TestRecord: testRecord,
		Batch:      batch,
		Summary:    summarize(batch),
		Integrity:  checkIntegrity(profile),
		Audit:      audit([]registrationDomain.Input{*input, testInput}),
	}, nil
}

// InspectEmail describes email relative to the registration domain.
func (r *registrationUseCase) InspectEmail(_ context.Context, email string) *registrationDomain.EmailInspection {
	normalized := validation.NormalizeEmail(email)
	inspection := &registrationDomain.EmailInspection{
		Email:      email,
		Normalized: normalized,
		Valid:      validation.ValidateEmail(normalized),
	}

	inspection.Domain, _ = validation.ExtractDomain(normalized)
	inspection.LocalPart, _ = validation.ExtractLocalPart(normalized)
	inspection.FromRegistrationDomain = validation.IsFromDomain(normalized, r.domain)

	return inspection
}

// CheckPassword lists the strength rules password breaks.
func (r *registrationUseCase) CheckPassword(_ context.Context, password string) *registrationDomain.PasswordCheck {
	violations := validation.DefaultPasswordStrength.Violations(password)
	return &registrationDomain.PasswordCheck{
		Valid:      len(violations) == 0,
		Violations: violations,
	}
}

func (r *registrationUseCase) buildProfile(input *registrationDomain.Input) (registrationDomain.Profile, error) {
	masked, err := r.cnpj.Mask(input.CNPJ)
	if err != nil {
		return registrationDomain.Profile{}, err
	}

	email := validation.NormalizeEmail(input.Email)
	domain, _ := validation.ExtractDomain(email)
	localPart, _ := validation.ExtractLocalPart(email)

	return registrationDomain.Profile{
		Email:                  email,
		Domain:                 domain,
		LocalPart:              localPart,
		FromRegistrationDomain: validation.IsFromDomain(email, r.domain),
		CNPJ:                   r.cnpj.Unmask(masked),
		MaskedCNPJ:             masked,
		CNPJFormatMatch:        r.cnpj.IsValidFormat(masked),
	}, nil
}

func (r *registrationUseCase) buildTestRecord(now time.Time) (registrationDomain.TestRecord, registrationDomain.Input) {
	cnpj := r.cnpj.Generate()
	email := fmt.Sprintf("teste.%d@%s", now.UnixMilli(), r.domain)

	// Generated values always have the expected length
	masked, _ := r.cnpj.Mask(cnpj)

	record := registrationDomain.TestRecord{
		Email:      email,
		CNPJ:       cnpj,
		MaskedCNPJ: masked,
	}
	input := registrationDomain.Input{
		Email:    email,
		Password: registrationDomain.TestPassword,
		CNPJ:     cnpj,
	}
	return record, input
}

// evaluateBatch checks every record concurrently, keeping input order in the result.
func (r *registrationUseCase) evaluateBatch(
	ctx context.Context,
	inputs []registrationDomain.Input,
) ([]registrationDomain.BatchItem, error) {
	items := make([]registrationDomain.BatchItem, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	for i, input := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			items[i] = r.evaluate(i, input)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *registrationUseCase) evaluate(index int, input registrationDomain.Input) registrationDomain.BatchItem {
	cnpj, err := r.cnpj.Mask(input.CNPJ)
	if err != nil {
		cnpj = r.cnpj.Unmask(input.CNPJ)
	}

	return registrationDomain.BatchItem{
		Index: index,
		Email: validation.NormalizeEmail(input.Email),
		CNPJ:  cnpj,
		Valid: validation.ValidateEmail(input.Email) &&
			validation.ValidatePassword(input.Password) &&
			r.cnpj.Validate(input.CNPJ),
	}
}

func summarize(batch []registrationDomain.BatchItem) registrationDomain.Summary {
	summary := registrationDomain.Summary{Total: len(batch)}
	for _, item := range batch {
		if item.Valid {
			summary.Valid++
		} else {
			summary.Invalid++
		}
	}
	return summary
}

func checkIntegrity(profile registrationDomain.Profile) registrationDomain.Integrity {
	var errs []string
	if profile.Domain == "" {
		errs = append(errs, registrationDomain.IntegrityInvalidDomain)
	}
	if !profile.CNPJFormatMatch {
		errs = append(errs, registrationDomain.IntegrityInvalidCNPJFormat)
	}
	return registrationDomain.Integrity{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

func audit(inputs []registrationDomain.Input) registrationDomain.Audit {
	var result registrationDomain.Audit
	if len(inputs) == 0 {
		return result
	}

	first := inputs[0].CNPJ
	for _, input := range inputs {
		if strings.Contains(input.Email, "test") || strings.Contains(input.Email, "admin") {
			result.SuspiciousEmails++
		}
		if input.CNPJ == first {
			result.DuplicateCNPJs++
		}
	}
	return result
}
