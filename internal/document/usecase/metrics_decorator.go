package usecase

import (
	"context"
	"time"

	documentDomain "github.com/allisson/brdocs/internal/document/domain"
	"github.com/allisson/brdocs/internal/metrics"
)

// documentUseCaseWithMetrics decorates DocumentUseCase with metrics instrumentation.
type documentUseCaseWithMetrics struct {
	next    DocumentUseCase
	metrics metrics.BusinessMetrics
}

// NewDocumentUseCaseWithMetrics wraps a DocumentUseCase with metrics recording.
func NewDocumentUseCaseWithMetrics(useCase DocumentUseCase, m metrics.BusinessMetrics) DocumentUseCase {
	return &documentUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Validate records metrics for validation operations.
func (d *documentUseCaseWithMetrics) Validate(
	ctx context.Context,
	kind documentDomain.Kind,
	value string,
) (bool, error) {
	start := time.Now()
	valid, err := d.next.Validate(ctx, kind, value)
	d.record(ctx, kind, "validate", start, err)
	return valid, err
}

// Mask records metrics for masking operations.
func (d *documentUseCaseWithMetrics) Mask(
	ctx context.Context,
	kind documentDomain.Kind,
	value string,
) (string, error) {
	start := time.Now()
	masked, err := d.next.Mask(ctx, kind, value)
	d.record(ctx, kind, "mask", start, err)
	return masked, err
}

// Unmask records metrics for unmasking operations.
func (d *documentUseCaseWithMetrics) Unmask(
	ctx context.Context,
	kind documentDomain.Kind,
	value string,
) (string, error) {
	start := time.Now()
	unmasked, err := d.next.Unmask(ctx, kind, value)
	d.record(ctx, kind, "unmask", start, err)
	return unmasked, err
}

// Generate records metrics for generation operations.
func (d *documentUseCaseWithMetrics) Generate(
	ctx context.Context,
	kind documentDomain.Kind,
	count int,
	masked bool,
) ([]string, error) {
	start := time.Now()
	values, err := d.next.Generate(ctx, kind, count, masked)
	d.record(ctx, kind, "generate", start, err)
	return values, err
}

// CheckFormat records metrics for format matching operations.
func (d *documentUseCaseWithMetrics) CheckFormat(
	ctx context.Context,
	kind documentDomain.Kind,
	value string,
) (bool, error) {
	start := time.Now()
	match, err := d.next.CheckFormat(ctx, kind, value)
	d.record(ctx, kind, "check_format", start, err)
	return match, err
}

// Inspect records metrics for inspection operations.
func (d *documentUseCaseWithMetrics) Inspect(
	ctx context.Context,
	kind documentDomain.Kind,
	value string,
) (*documentDomain.Inspection, error) {
	start := time.Now()
	inspection, err := d.next.Inspect(ctx, kind, value)
	d.record(ctx, kind, "inspect", start, err)
	return inspection, err
}

// record emits the counter and histogram for one operation, labeled with its kind.
// Unsupported kinds are labeled "unknown" to keep the label set bounded.
func (d *documentUseCaseWithMetrics) record(
	ctx context.Context,
	kind documentDomain.Kind,
	operation string,
	start time.Time,
	err error,
) {
	kindLabel := kind.String()
	if kind.Validate() != nil {
		kindLabel = "unknown"
	}

	op := metrics.Operation{Domain: "document", Name: operation, Kind: kindLabel}
	status := metrics.StatusFor(err)
	d.metrics.RecordOperation(ctx, op, status)
	d.metrics.RecordDuration(ctx, op, time.Since(start), status)
}
