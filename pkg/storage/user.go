package storage

import (
	"context"
	"sattva/pkg/domain"
)

// UserStorage persists accounts.
type UserStorage interface {
	// StoreUser inserts a user and returns the stored row. Emails are unique
	// case-insensitively; a clash returns ErrDuplicate.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByEmail looks a user up by email, ignoring case. Returns nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UserByID returns the user with the given ID, or nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
}
