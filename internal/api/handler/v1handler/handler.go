package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sattva/internal/auth"
	"sattva/internal/marketplace"
	"sattva/internal/traceability"
	"sattva/pkg/ledger"
	"sattva/pkg/logger"
	"sattva/pkg/quality"
	"sattva/pkg/serrors"

	"go.uber.org/zap"
)

// MaxBodyBytes caps the size of JSON request bodies.
const MaxBodyBytes = 1 << 20

// Deps are the services the handlers delegate to.
type Deps struct {
	Auth         auth.Service
	Traceability traceability.Service
	Marketplace  marketplace.Service
	Quality      quality.Analyzer
	Ledger       ledger.Ledger
}

// Handler serves the v1 JSON API.
type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorBody is the JSON document of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ErrorResponse is an error translated for the client.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

// NewError maps err to a response. Messages of errors without a semantic kind
// never reach the client.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	status := serrors.HTTPStatus(err)

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &ErrorResponse{
		StatusCode: status,
		Response: ErrorBody{
			Error: serrors.PublicMessage(err),
			Code:  kind.Error(),
		},
	}
}

// handlerFunc is an HTTP handler that reports failures as errors.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// serve adapts fn to http.HandlerFunc, writing returned errors as JSON.
func (h Handler) serve(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			res := h.NewError(r.Context(), err)
			writeJSON(r.Context(), w, res.StatusCode, res.Response)
		}
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// decode reads a JSON body into dst.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return serrors.With(serrors.ErrBadRequest, "Request body is required")
		}

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return serrors.Wrap(serrors.ErrBadRequest, err, "Request body too large")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "Invalid JSON body")
	}

	return nil
}
