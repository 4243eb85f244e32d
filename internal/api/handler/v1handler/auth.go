package v1handler

import (
	"net/http"
	"sattva/internal/auth"
	"sattva/pkg/domain"
	"sattva/pkg/serrors"
)

type loginRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// Login exchanges credentials for a session.
func (h Handler) Login(w http.ResponseWriter, r *http.Request) error {
	var req loginRequest
	if err := decode(w, r, &req); err != nil {
		return err
	}
	if !req.Role.Valid() {
		// same answer as any other failed login
		return serrors.With(serrors.ErrUnauthorized, auth.ErrInvalidCredentials)
	}

	session, err := h.deps.Auth.Authenticate(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(r.Context(), w, http.StatusOK, session)

	return nil
}

// Register creates an account and logs it in.
func (h Handler) Register(w http.ResponseWriter, r *http.Request) error {
	var req auth.Registration
	if err := decode(w, r, &req); err != nil {
		return err
	}

	session, err := h.deps.Auth.Register(r.Context(), req)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(r.Context(), w, http.StatusCreated, session)

	return nil
}

// Me returns the authenticated user.
func (h Handler) Me(w http.ResponseWriter, r *http.Request) error {
	user, err := h.deps.Auth.User(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{"user": user})

	return nil
}

// Navigation returns the navigation items of the caller's role.
func (h Handler) Navigation(w http.ResponseWriter, r *http.Request) error {
	role := GetRoleFromContext(r.Context())
	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"role":  role,
		"items": domain.Navigation(role),
	})

	return nil
}
