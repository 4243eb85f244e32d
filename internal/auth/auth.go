package auth

import (
	"context"
	"errors"
	"fmt"
	"sattva/internal/config"
	"sattva/pkg/domain"
	"sattva/pkg/logger"
	"sattva/pkg/metrics"
	"sattva/pkg/password"
	"sattva/pkg/serrors"
	"sattva/pkg/storage"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// ErrInvalidCredentials is the only message a failed login ever returns, so a
	// caller cannot tell a missing account from a wrong password or role.
	ErrInvalidCredentials = "No user exists with these credentials for the selected role"
	// ErrEmailTaken is returned when registering an email that already has an account.
	ErrEmailTaken = "A user with this email already exists."

	// MinPasswordLength is the shortest accepted password.
	MinPasswordLength = 6
)

// Options configure password hashing for new accounts.
type Options struct {
	// PerUserSalt draws a random salt for every new account. When false the
	// fixed salt of the account's role is used.
	PerUserSalt bool
	// RoleSalts are the fixed salts per role.
	RoleSalts map[domain.Role]string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PerUserSalt: cfg.Auth.PerUserSalt,
		RoleSalts: map[domain.Role]string{
			domain.RoleFarmer:       cfg.Auth.FarmerSalt,
			domain.RoleManufacturer: cfg.Auth.ManufacturerSalt,
			domain.RoleConsumer:     cfg.Auth.ConsumerSalt,
		},
	}
}

type service struct {
	options Options
	storage storage.Storage
	signer  *Signer
	metrics *metrics.Recorder
	now     func() time.Time
}

// Authenticate checks the credentials of a user for the selected role.
func (s *service) Authenticate(ctx context.Context,
	email string,
	pass string,
	role domain.Role) (*Session, error) {
	user, err := s.storage.UserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}

	// missing user, wrong password and wrong role must be indistinguishable
	if user == nil || !password.Verify(pass, user.PasswordHash) || user.Role != role {
		s.metrics.AuthAttempt(ctx, "login", metrics.OutcomeFailure)
		logger.Debug(ctx, "login rejected", zap.String("role", string(role)))

		return nil, serrors.With(serrors.ErrUnauthorized, ErrInvalidCredentials)
	}

	session, err := s.session(*user)
	if err != nil {
		return nil, err
	}
	s.metrics.AuthAttempt(ctx, "login", metrics.OutcomeSuccess)

	return session, nil
}

// Register creates a new account and logs it in.
func (s *service) Register(ctx context.Context, input Registration) (*Session, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = domain.NormalizeEmail(input.Email)
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	existing, err := s.storage.UserByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if existing != nil {
		s.metrics.AuthAttempt(ctx, "register", metrics.OutcomeConflict)

		return nil, serrors.With(serrors.ErrConflict, ErrEmailTaken)
	}

	salt, err := s.salt(input.Role)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.StoreUser(ctx, domain.User{
		ID:           domain.UserID(uuid.New()),
		Name:         input.Name,
		Email:        input.Email,
		Role:         input.Role,
		CreatedAt:    s.now(),
		PasswordHash: password.Hash(input.Password, salt),
	})
	if err != nil {
		// another registration for the same email won the race
		if errors.Is(err, storage.ErrDuplicate) {
			s.metrics.AuthAttempt(ctx, "register", metrics.OutcomeConflict)

			return nil, serrors.Wrap(serrors.ErrConflict, err, ErrEmailTaken)
		}

		return nil, fmt.Errorf("could not store user: %w", err)
	}

	session, err := s.session(*user)
	if err != nil {
		return nil, err
	}
	s.metrics.AuthAttempt(ctx, "register", metrics.OutcomeSuccess)
	logger.Info(ctx, "user registered", zap.Stringer("userID", user.ID), zap.String("role", string(user.Role)))

	return session, nil
}

// User returns the sanitized account with the given id.
func (s *service) User(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	sanitized := user.Sanitized()

	return &sanitized, nil
}

func (s *service) salt(role domain.Role) (string, error) {
	if !s.options.PerUserSalt {
		if salt, ok := s.options.RoleSalts[role]; ok && salt != "" {
			return salt, nil
		}
	}

	salt, err := password.NewSalt()
	if err != nil {
		return "", fmt.Errorf("could not generate salt: %w", err)
	}

	return salt, nil
}

func (s *service) session(user domain.User) (*Session, error) {
	token, err := s.signer.Sign(user)
	if err != nil {
		return nil, fmt.Errorf("could not issue token: %w", err)
	}

	return &Session{User: user.Sanitized(), Token: token}, nil
}

func validateRegistration(input Registration) error {
	switch {
	case input.Name == "":
		return serrors.With(serrors.ErrBadRequest, "Name is required")
	case !strings.Contains(input.Email, "@"):
		return serrors.With(serrors.ErrBadRequest, "A valid email is required")
	case len(input.Password) < MinPasswordLength:
		return serrors.With(serrors.ErrBadRequest, "Password must be at least %d characters", MinPasswordLength)
	case !input.Role.Valid():
		return serrors.With(serrors.ErrBadRequest, "Unknown role %q", input.Role)
	}

	return nil
}

// New creates a new Service backed by the provided storage. A nil recorder
// disables metrics.
func New(storage storage.Storage, signer *Signer, recorder *metrics.Recorder, options Options) Service {
	return &service{
		options: options,
		storage: storage,
		signer:  signer,
		metrics: recorder,
		now:     time.Now,
	}
}
