// Package metrics holds the OpenTelemetry instruments recorded by the service.
// Instruments are created from a metric.Meter so the exporter (Prometheus in
// production, a manual reader in tests) stays the caller's choice.
package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// MeterName is the instrumentation scope of every instrument in this package.
const MeterName = "sattva"

// Auth attempt outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeConflict = "conflict"
)

// Recorder groups the service instruments.
type Recorder struct {
	requestDuration metric.Float64Histogram
	authAttempts    metric.Int64Counter
	batchesCreated  metric.Int64Counter
	ledgerWrites    metric.Int64Counter
}

// New creates every instrument on the given meter.
func New(meter metric.Meter) (*Recorder, error) {
	requestDuration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of HTTP server requests."),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create request duration histogram: %w", err)
	}

	authAttempts, err := meter.Int64Counter("sattva.auth.attempts",
		metric.WithDescription("Login and registration attempts by operation and outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create auth attempts counter: %w", err)
	}

	batchesCreated, err := meter.Int64Counter("sattva.batches.created",
		metric.WithDescription("Herb batches created."))
	if err != nil {
		return nil, fmt.Errorf("could not create batches counter: %w", err)
	}

	ledgerWrites, err := meter.Int64Counter("sattva.ledger.writes",
		metric.WithDescription("Batches anchored on the ledger by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create ledger writes counter: %w", err)
	}

	return &Recorder{
		requestDuration: requestDuration,
		authAttempts:    authAttempts,
		batchesCreated:  batchesCreated,
		ledgerWrites:    ledgerWrites,
	}, nil
}

// Nop returns a recorder backed by a no-op meter.
func Nop() *Recorder {
	r, _ := New(noop.NewMeterProvider().Meter(MeterName))

	return r
}

// RequestServed records the latency of a finished HTTP request.
func (r *Recorder) RequestServed(ctx context.Context, method, route string, status int, took time.Duration) {
	if r == nil {
		return
	}

	r.requestDuration.Record(ctx, took.Seconds(), metric.WithAttributes(
		attribute.String("http.request.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.response.status_code", status),
	))
}

// AuthAttempt counts a login or registration attempt.
func (r *Recorder) AuthAttempt(ctx context.Context, operation, outcome string) {
	if r == nil {
		return
	}

	r.authAttempts.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	))
}

// BatchCreated counts a created batch for the given herb.
func (r *Recorder) BatchCreated(ctx context.Context, herbName string) {
	if r == nil {
		return
	}

	r.batchesCreated.Add(ctx, 1, metric.WithAttributes(attribute.String("herb", herbName)))
}

// LedgerWrite counts a ledger anchoring attempt.
func (r *Recorder) LedgerWrite(ctx context.Context, outcome string) {
	if r == nil {
		return
	}

	r.ledgerWrites.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
