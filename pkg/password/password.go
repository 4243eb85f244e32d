// Package password hashes and verifies account passwords.
//
// Hashes are stored as "$sha256$<salt>$<hex digest>" where the digest is
// SHA-256 over the salt followed by the password. The format carries its own
// salt, so hashes made with the fixed per-role salts of the seeded accounts
// and hashes made with per-user random salts verify the same way.
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"sattva/pkg/domain"
	"strings"
)

// Algorithm is the tag embedded in every hash.
const Algorithm = "sha256"

const (
	separator = "$"
	saltBytes = 16
)

// Hash returns the salted SHA-256 hash of password. It is deterministic for a
// given salt.
func Hash(password, salt string) string {
	return separator + Algorithm + separator + salt + separator + digest(salt, password)
}

// Verify reports whether password matches stored. It fails closed: anything
// that is not exactly "$sha256$<salt>$<digest>" is rejected.
func Verify(password, stored string) bool {
	parts := strings.Split(stored, separator)
	if len(parts) != 4 || parts[0] != "" || parts[1] != Algorithm {
		return false
	}

	salt, expected := parts[2], parts[3]
	actual := digest(salt, password)

	return subtle.ConstantTimeCompare([]byte(actual), []byte(expected)) == 1
}

// NewSalt returns a random salt of 32 hex characters, the same shape as the
// fixed role salts.
func NewSalt() (string, error) {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("could not read random salt: %w", err)
	}

	return hex.EncodeToString(b), nil
}

func digest(salt, password string) string {
	sum := sha256.Sum256([]byte(salt + password))

	return hex.EncodeToString(sum[:])
}

// DefaultRoleSalts are the fixed salts of the seeded demo accounts, one per role.
func DefaultRoleSalts() map[domain.Role]string {
	return map[domain.Role]string{
		domain.RoleFarmer:       "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4",
		domain.RoleManufacturer: "f1e2d3c4b5a6f1e2d3c4b5a6f1e2d3c4",
		domain.RoleConsumer:     "1a2b3c4d5e6f1a2b3c4d5e6f1a2b3c4d",
	}
}
