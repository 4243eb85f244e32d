package auth_test

import (
	"sattva/internal/auth"
	"sattva/pkg/domain"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSignerVerifier(t *testing.T) {
	privPEM, pubPEM := genKeys(t)
	signer, err := auth.NewSigner(privPEM, time.Hour, "sattva")
	require.NoError(t, err)
	verifier, err := auth.NewVerifier(pubPEM)
	require.NoError(t, err)

	uid := domain.UserID(uuid.New())
	token, err := signer.SignFor(uid, domain.RoleManufacturer, time.Minute)
	require.NoError(t, err)

	gotID, gotRole, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uid, gotID)
	require.Equal(t, domain.RoleManufacturer, gotRole)
}

func TestVerifier_Rejects(t *testing.T) {
	privPEM, pubPEM := genKeys(t)
	otherPriv, _ := genKeys(t)

	signer, err := auth.NewSigner(privPEM, time.Hour, "sattva")
	require.NoError(t, err)
	otherSigner, err := auth.NewSigner(otherPriv, time.Hour, "sattva")
	require.NoError(t, err)
	verifier, err := auth.NewVerifier(pubPEM)
	require.NoError(t, err)

	uid := domain.UserID(uuid.New())

	expired, err := signer.SignFor(uid, domain.RoleFarmer, -time.Minute)
	require.NoError(t, err)
	foreign, err := otherSigner.SignFor(uid, domain.RoleFarmer, time.Minute)
	require.NoError(t, err)
	badRole, err := signer.SignFor(uid, "admin", time.Minute)
	require.NoError(t, err)

	hmac, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		Role: domain.RoleFarmer,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(pubPEM))
	require.NoError(t, err)

	tests := map[string]string{
		"expired":        expired,
		"other key":      foreign,
		"unknown role":   badRole,
		"hmac algorithm": hmac,
		"garbage":        "not-a-jwt",
		"empty":          "",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := verifier.Verify(token)
			require.Error(t, err)
		})
	}
}

func TestNewSigner_BadKey(t *testing.T) {
	_, err := auth.NewSigner("-----BEGIN NOTHING-----", time.Hour, "sattva")
	require.Error(t, err)

	_, err = auth.NewVerifier("")
	require.Error(t, err)
}
