package controller

import (
	"net/http"
	"sattva/pkg/metrics"
	"time"
)

// WithMetrics returns a middleware recording the latency of every request.
// route maps a request to a low-cardinality label (usually the mux pattern);
// requests it cannot resolve are labelled "unmatched".
func WithMetrics(next http.Handler, rec *metrics.Recorder, route func(r *http.Request) string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sr, r)

		label := "unmatched"
		if route != nil {
			if p := route(r); p != "" {
				label = p
			}
		}
		rec.RequestServed(r.Context(), r.Method, label, sr.status, time.Since(start))
	})
}
