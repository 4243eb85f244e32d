package v1handler

import (
	"context"
	"fmt"
	"net/http"
	"sattva/internal/auth"
	"sattva/pkg/domain"
	"sattva/pkg/logger"
	"sattva/pkg/serrors"
	"strings"

	"go.uber.org/zap"
)

type contextKey string

const (
	// UserIDKey holds the domain.UserID of the authenticated caller.
	UserIDKey contextKey = "userID"
	// RoleKey holds the domain.Role of the authenticated caller.
	RoleKey contextKey = "role"

	bearerPrefix = "Bearer "
)

// SecHandlerOptions configure bearer token validation.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key that verifies tokens.
	PublicKey string
}

// SecHandler authenticates requests carrying an RS256 bearer token.
type SecHandler struct {
	verifier *auth.Verifier
}

func NewSecHandler(options *SecHandlerOptions) (*SecHandler, error) {
	verifier, err := auth.NewVerifier(options.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("could not create token verifier: %w", err)
	}

	return &SecHandler{verifier: verifier}, nil
}

// HandleBearerAuth validates token and stores the caller in the returned context.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	userID, role, err := s.verifier.Verify(token)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "unauthorized")
	}

	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, RoleKey, role)
	ctx = logger.WithFields(ctx, zap.Stringer("userID", userID))

	return ctx, nil
}

// authenticate validates the bearer token of r. The returned bool is false
// when the request carries no token at all.
func (s SecHandler) authenticate(r *http.Request) (context.Context, bool, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return r.Context(), false, nil
	}

	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || token == "" {
		return r.Context(), true, serrors.With(serrors.ErrUnauthorized, "unauthorized")
	}

	ctx, err := s.HandleBearerAuth(r.Context(), token)

	return ctx, true, err
}

// Require rejects requests without a valid token (401) or whose role lacks
// capability (403).
func (s SecHandler) Require(capability domain.Capability, next handlerFunc) handlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		ctx, present, err := s.authenticate(r)
		if err != nil {
			return err
		}
		if !present {
			return serrors.With(serrors.ErrUnauthorized, "missing bearer token")
		}

		if capability != "" && !GetRoleFromContext(ctx).Can(capability) {
			return serrors.With(serrors.ErrForbidden, "forbidden")
		}

		return next(w, r.WithContext(ctx))
	}
}

// Optional authenticates the request when it carries a token. An invalid
// token is still rejected with 401.
func (s SecHandler) Optional(next handlerFunc) handlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		ctx, _, err := s.authenticate(r)
		if err != nil {
			return err
		}

		return next(w, r.WithContext(ctx))
	}
}

// GetUserIDFromContext returns the authenticated caller, or the zero id.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	id, _ := ctx.Value(UserIDKey).(domain.UserID)

	return id
}

// GetRoleFromContext returns the role of the authenticated caller, or "".
func GetRoleFromContext(ctx context.Context) domain.Role {
	role, _ := ctx.Value(RoleKey).(domain.Role)

	return role
}

// authenticated reports whether ctx carries a caller.
func authenticated(ctx context.Context) bool {
	_, ok := ctx.Value(UserIDKey).(domain.UserID)

	return ok
}
