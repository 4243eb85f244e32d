// Package marketplace implements the consumer side: browsing verified herb
// products, placing orders and managing the consumer profile.
package marketplace

import (
	"context"
	"sattva/pkg/domain"
)

// Filter sentinels sent by clients meaning "no filter".
const (
	AllRegions = "All Regions"
	AllHerbs   = "All Herbs"
)

// ProductQuery filters the product listing.
type ProductQuery struct {
	Search       string
	Region       string
	Herb         string
	VerifiedOnly bool
}

// NewOrder holds the fields of an order being placed.
type NewOrder struct {
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
	DeliveryAddress string `json:"deliveryAddress"`
}

// ProfileUpdate replaces the editable fields of a consumer profile.
type ProfileUpdate struct {
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Phone         string   `json:"phone"`
	Preferences   []string `json:"preferences"`
	WalletAddress string   `json:"walletAddress,omitempty"`
}

//go:generate mockgen -package mockmarketplace -source=interface.go -destination=mock/mockmarketplace.go *
type Service interface {
	Products(ctx context.Context, query ProductQuery) ([]domain.Product, error)
	Product(ctx context.Context, id string) (*domain.ProductDetail, error)
	PlaceOrder(ctx context.Context, consumer domain.UserID, input NewOrder) (*domain.Order, error)
	Orders(ctx context.Context, consumer domain.UserID) ([]domain.Order, error)
	Profile(ctx context.Context, user domain.UserID) (*domain.ConsumerProfile, error)
	UpdateProfile(ctx context.Context, user domain.UserID, input ProfileUpdate) (*domain.ConsumerProfile, error)
}
