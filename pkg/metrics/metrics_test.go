package metrics_test

import (
	"context"
	"net/http"
	"sattva/pkg/metrics"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}

	return out
}

func TestRecorder(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	rec, err := metrics.New(mp.Meter(metrics.MeterName))
	require.NoError(t, err)

	ctx := context.Background()
	rec.AuthAttempt(ctx, "login", metrics.OutcomeFailure)
	rec.AuthAttempt(ctx, "login", metrics.OutcomeFailure)
	rec.BatchCreated(ctx, "Tulsi")
	rec.LedgerWrite(ctx, metrics.OutcomeSuccess)
	rec.RequestServed(ctx, http.MethodGet, "GET /api/batches", http.StatusOK, 20*time.Millisecond)

	got := collect(t, reader)

	auth, ok := got["sattva.auth.attempts"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, auth.DataPoints, 1)
	require.Equal(t, int64(2), auth.DataPoints[0].Value)

	batches, ok := got["sattva.batches.created"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Equal(t, int64(1), batches.DataPoints[0].Value)

	hist, ok := got["http.server.request.duration"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	require.Equal(t, uint64(1), hist.DataPoints[0].Count)
	require.Equal(t, metrics.DefaultBuckets, hist.DataPoints[0].Bounds)
}

func TestRecorder_NilAndNop(t *testing.T) {
	var rec *metrics.Recorder
	require.NotPanics(t, func() {
		rec.AuthAttempt(context.Background(), "login", metrics.OutcomeSuccess)
		rec.LedgerWrite(context.Background(), metrics.OutcomeFailure)
	})

	require.NotPanics(t, func() {
		metrics.Nop().BatchCreated(context.Background(), "Neem")
	})
}
