package usecase

import (
	"context"
	"time"

	"github.com/allisson/brdocs/internal/metrics"
	registrationDomain "github.com/allisson/brdocs/internal/registration/domain"
)

const metricsDomain = "registration"

// registrationUseCaseWithMetrics decorates RegistrationUseCase with metrics instrumentation.
type registrationUseCaseWithMetrics struct {
	next    RegistrationUseCase
	metrics metrics.BusinessMetrics
}

// NewRegistrationUseCaseWithMetrics wraps a RegistrationUseCase with metrics recording.
func NewRegistrationUseCaseWithMetrics(
	useCase RegistrationUseCase,
	m metrics.BusinessMetrics,
) RegistrationUseCase {
	return &registrationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Check records metrics for field checks. Failing checks are a result, not an error.
func (r *registrationUseCaseWithMetrics) Check(
	ctx context.Context,
	input *registrationDomain.Input,
) *registrationDomain.Checks {
	start := time.Now()
	checks := r.next.Check(ctx, input)
	r.record(ctx, "check", start, nil)
	return checks
}

// Process records metrics for registration processing.
func (r *registrationUseCaseWithMetrics) Process(
	ctx context.Context,
	input *registrationDomain.Input,
) (*registrationDomain.Report, error) {
	start := time.Now()
	report, err := r.next.Process(ctx, input)
	r.record(ctx, "process", start, err)
	return report, err
}

// InspectEmail records metrics for email inspections.
func (r *registrationUseCaseWithMetrics) InspectEmail(
	ctx context.Context,
	email string,
) *registrationDomain.EmailInspection {
	start := time.Now()
	inspection := r.next.InspectEmail(ctx, email)
	r.record(ctx, "inspect_email", start, nil)
	return inspection
}

// CheckPassword records metrics for password checks.
func (r *registrationUseCaseWithMetrics) CheckPassword(
	ctx context.Context,
	password string,
) *registrationDomain.PasswordCheck {
	start := time.Now()
	check := r.next.CheckPassword(ctx, password)
	r.record(ctx, "check_password", start, nil)
	return check
}

func (r *registrationUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	op := metrics.Operation{Domain: metricsDomain, Name: operation}
	status := metrics.StatusFor(err)
	r.metrics.RecordOperation(ctx, op, status)
	r.metrics.RecordDuration(ctx, op, time.Since(start), status)
}
