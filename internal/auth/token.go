package auth

import (
	"errors"
	"fmt"
	"sattva/pkg/domain"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT claims of a bearer token. The subject is the user id.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Signer issues RS256 tokens.
type Signer struct {
	key    any
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewSigner parses a PEM encoded RSA private key.
func NewSigner(privateKeyPEM string, ttl time.Duration, issuer string) (*Signer, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}

	return &Signer{key: key, ttl: ttl, issuer: issuer, now: time.Now}, nil
}

// Sign returns a token for user valid for the signer's TTL.
func (s *Signer) Sign(user domain.User) (string, error) {
	return s.SignFor(user.ID, user.Role, s.ttl)
}

// SignFor returns a token for the given subject and role valid for ttl.
func (s *Signer) SignFor(userID domain.UserID, role domain.Role, ttl time.Duration) (string, error) {
	now := s.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, nil
}

// Verifier checks RS256 tokens issued by a Signer.
type Verifier struct {
	key    any
	parser *jwt.Parser
}

// NewVerifier parses a PEM encoded RSA public key.
func NewVerifier(publicKeyPEM string) (*Verifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &Verifier{
		key: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
	}, nil
}

// Verify validates the token and returns the user id and role it carries.
func (v *Verifier) Verify(token string) (domain.UserID, domain.Role, error) {
	var claims Claims
	if _, err := v.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	}); err != nil {
		return domain.UserID{}, "", fmt.Errorf("invalid token: %w", err)
	}

	userID, err := domain.ParseUserID(claims.Subject)
	if err != nil {
		return domain.UserID{}, "", fmt.Errorf("invalid subject: %w", err)
	}

	if !claims.Role.Valid() {
		return domain.UserID{}, "", errors.New("invalid role claim")
	}

	return userID, claims.Role, nil
}
