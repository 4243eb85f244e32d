// Package auth implements login and registration on top of the password
// hashing in pkg/password and issues RS256 bearer tokens.
package auth

import (
	"context"
	"sattva/pkg/domain"
)

// Session is returned by a successful login or registration.
type Session struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// Registration holds the fields of a new account.
type Registration struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

//go:generate mockgen -package mockauth -source=interface.go -destination=mock/mockauth.go *
type Service interface {
	Authenticate(ctx context.Context, email string, password string, role domain.Role) (*Session, error)
	Register(ctx context.Context, input Registration) (*Session, error)
	User(ctx context.Context, id domain.UserID) (*domain.User, error)
}
