package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical UUID representation.
func (id UserID) String() string { return uuid.UUID(id).String() }

// ParseUserID parses the textual UUID form of a user id.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, err //nolint: wrapcheck
	}

	return UserID(id), nil
}

// MarshalText encodes the id as a UUID string.
func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a UUID string.
func (id *UserID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// Role is the part a user plays in the supply chain.
type Role string

const (
	RoleFarmer       Role = "farmer"
	RoleManufacturer Role = "manufacturer"
	RoleConsumer     Role = "consumer"
)

// Roles lists every known role.
var Roles = []Role{RoleFarmer, RoleManufacturer, RoleConsumer} //nolint: gochecknoglobals

// Valid reports whether r is a known role.
func (r Role) Valid() bool { return slices.Contains(Roles, r) }

// Capability names a permission checked by the API.
type Capability string

const (
	CapBatchesRead        Capability = "batches:read"
	CapBatchesCreate      Capability = "batches:create"
	CapTransfersRead      Capability = "transfers:read"
	CapTransfersCreate    Capability = "transfers:create"
	CapVerificationManage Capability = "verification:manage"
	CapAnalyticsRead      Capability = "analytics:read"
	CapQRManage           Capability = "qr:manage"
	CapSettingsRead       Capability = "settings:read"
	CapMarketplaceRead    Capability = "marketplace:read"
	CapOrdersCreate       Capability = "orders:create"
	CapOrdersRead         Capability = "orders:read"
	CapProfileManage      Capability = "profile:manage"
)

// roleCapabilities is the fixed capability set of every role.
var roleCapabilities = map[Role][]Capability{ //nolint: gochecknoglobals
	RoleFarmer: {
		CapBatchesRead, CapBatchesCreate, CapTransfersRead, CapTransfersCreate,
		CapAnalyticsRead, CapSettingsRead,
	},
	RoleManufacturer: {
		CapBatchesRead, CapTransfersRead, CapTransfersCreate, CapVerificationManage,
		CapAnalyticsRead, CapQRManage, CapSettingsRead,
	},
	RoleConsumer: {
		CapMarketplaceRead, CapOrdersCreate, CapOrdersRead, CapProfileManage,
	},
}

// Capabilities returns a copy of the capability set of r.
func (r Role) Capabilities() []Capability {
	return slices.Clone(roleCapabilities[r])
}

// Can reports whether r holds capability c.
func (r Role) Can(c Capability) bool {
	return slices.Contains(roleCapabilities[r], c)
}

// User is a registered account. PasswordHash never leaves the service layer;
// use Sanitized before returning a user to a caller.
type User struct {
	ID             UserID    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	WalletAddress  string    `json:"walletAddress,omitempty"`
	VerifiedStatus bool      `json:"verifiedStatus"`
	CreatedAt      time.Time `json:"createdAt"`
	Avatar         string    `json:"avatar,omitempty"`
	PasswordHash   string    `json:"-"`
}

// Sanitized returns a copy of u without the password hash.
func (u User) Sanitized() User {
	u.PasswordHash = ""

	return u
}

// NormalizeEmail lower-cases and trims an email for case-insensitive matching.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DemoFarmerID is the seeded farmer that owns batches created without an
// authenticated caller.
var DemoFarmerID = UserID(uuid.MustParse("00000000-0000-4000-8000-000000000001")) //nolint: gochecknoglobals
