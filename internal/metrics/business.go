package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Operation statuses recorded on every business metric.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Operation identifies a recorded business operation.
// Kind is the identifier kind (cpf, cnpj) for document operations and empty otherwise;
// the kind label is only attached when it is set.
type Operation struct {
	Domain string
	Name   string
	Kind   string
}

// StatusFor maps an operation result to its status label.
func StatusFor(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}

func (o Operation) attributes(status string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("domain", o.Domain),
		attribute.String("operation", o.Name),
		attribute.String("status", status),
	}
	if o.Kind != "" {
		attrs = append(attrs, attribute.String("kind", o.Kind))
	}
	return attrs
}

// BusinessMetrics records counts and durations of document and registration operations.
type BusinessMetrics interface {
	// RecordOperation counts one finished operation.
	RecordOperation(ctx context.Context, op Operation, status string)

	// RecordDuration records how long an operation took, in seconds.
	RecordDuration(ctx context.Context, op Operation, duration time.Duration, status string)
}

type businessMetrics struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
}

// NewBusinessMetrics creates the operation counter and duration histogram on meterProvider.
// Instrument names are prefixed with namespace, e.g. "brdocs_operations_total".
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of document and registration operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of document and registration operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &businessMetrics{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
	}, nil
}

func (b *businessMetrics) RecordOperation(ctx context.Context, op Operation, status string) {
	b.operationCounter.Add(ctx, 1, metric.WithAttributes(op.attributes(status)...))
}

func (b *businessMetrics) RecordDuration(ctx context.Context, op Operation, duration time.Duration, status string) {
	b.durationHisto.Record(ctx, duration.Seconds(), metric.WithAttributes(op.attributes(status)...))
}

// NoOpBusinessMetrics discards everything; used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, op Operation, status string) {}

func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	op Operation,
	duration time.Duration,
	status string,
) {
}
