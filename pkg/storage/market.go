package storage

import (
	"context"
	"sattva/pkg/domain"
)

// ProductFilter narrows the marketplace listing. Zero fields do not filter.
type ProductFilter struct {
	// Search keeps products whose herb name or description contains it, ignoring case.
	Search string
	// Region keeps products from exactly this region.
	Region string
	// Herb keeps products whose herb name contains it, ignoring case.
	Herb string
	// VerifiedOnly keeps verified products only.
	VerifiedOnly bool
}

// MarketStorage persists the consumer marketplace: products, orders and profiles.
type MarketStorage interface {
	// Products returns the products matching filter ordered by id.
	Products(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	// ProductByID returns a product, or nil when not found.
	ProductByID(ctx context.Context, id string) (*domain.Product, error)

	// StoreOrder inserts an order and returns the stored row.
	StoreOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
	// ConsumerOrders returns the orders of a consumer, newest first.
	ConsumerOrders(ctx context.Context, consumerID domain.UserID) ([]domain.Order, error)

	// ProfileByUser returns the profile of a user, or nil when none is stored.
	ProfileByUser(ctx context.Context, userID domain.UserID) (*domain.ConsumerProfile, error)
	// StoreProfile inserts or replaces the profile of profile.UserID.
	StoreProfile(ctx context.Context, profile domain.ConsumerProfile) (*domain.ConsumerProfile, error)
}
