package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sattva/pkg/controller"
	"sattva/pkg/metrics"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestWithMetrics_RecordsRouteAndStatus(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	rec, err := metrics.New(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter(metrics.MeterName))
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/verify", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	route := func(r *http.Request) string {
		_, pattern := mux.Handler(r)

		return pattern
	}

	h := controller.WithMetrics(mux, rec, route)
	res := httptest.NewRecorder()
	h.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api/verify?batchId=nope", nil))
	require.Equal(t, http.StatusNotFound, res.Code)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	var found bool
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name != "http.server.request.duration" {
			continue
		}
		hist, ok := m.Data.(metricdata.Histogram[float64])
		require.True(t, ok)
		require.Len(t, hist.DataPoints, 1)
		route, ok := hist.DataPoints[0].Attributes.Value("http.route")
		require.True(t, ok)
		require.Equal(t, "GET /api/verify", route.AsString())
		status, ok := hist.DataPoints[0].Attributes.Value("http.response.status_code")
		require.True(t, ok)
		require.Equal(t, int64(http.StatusNotFound), status.AsInt64())
		found = true
	}
	require.True(t, found, "request duration histogram not recorded")
}
