package marketplace

import (
	"context"
	"fmt"
	"math"
	"sattva/pkg/domain"
	"sattva/pkg/logger"
	"sattva/pkg/serrors"
	"sattva/pkg/storage"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type service struct {
	storage storage.Storage
	now     func() time.Time
}

// Products lists the products matching query.
func (s *service) Products(ctx context.Context, query ProductQuery) ([]domain.Product, error) {
	filter := storage.ProductFilter{
		Search:       strings.TrimSpace(query.Search),
		Region:       strings.TrimSpace(query.Region),
		Herb:         strings.TrimSpace(query.Herb),
		VerifiedOnly: query.VerifiedOnly,
	}
	if filter.Region == AllRegions {
		filter.Region = ""
	}
	if filter.Herb == AllHerbs {
		filter.Herb = ""
	}

	products, err := s.storage.Products(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not get products: %w", err)
	}

	return products, nil
}

// Product returns a product together with the provenance of its batch.
func (s *service) Product(ctx context.Context, id string) (*domain.ProductDetail, error) {
	product, err := s.storage.ProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get product: %w", err)
	}
	if product == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Product not found")
	}

	res := domain.ProductDetail{Product: *product}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res.Batch, err = s.storage.BatchByID(gctx, product.BatchID)

		return err //nolint: wrapcheck
	})
	g.Go(func() (err error) {
		res.Events, err = s.storage.BatchEvents(gctx, product.BatchID)

		return err //nolint: wrapcheck
	})
	g.Go(func() (err error) {
		res.Lab, err = s.storage.LabReportByBatch(gctx, product.BatchID)

		return err //nolint: wrapcheck
	})
	g.Go(func() (err error) {
		res.Farm, err = s.storage.FarmByID(gctx, product.FarmID)

		return err //nolint: wrapcheck
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("could not get product provenance: %w", err)
	}

	if res.Events == nil {
		res.Events = []domain.SupplyChainEvent{}
	}

	return &res, nil
}

// PlaceOrder orders an in-stock product for a consumer.
func (s *service) PlaceOrder(ctx context.Context, consumer domain.UserID, input NewOrder) (*domain.Order, error) {
	input.DeliveryAddress = strings.TrimSpace(input.DeliveryAddress)
	switch {
	case input.ProductID == "":
		return nil, serrors.With(serrors.ErrBadRequest, "Product ID is required")
	case input.Quantity < 1:
		return nil, serrors.With(serrors.ErrBadRequest, "Quantity must be at least 1")
	case input.DeliveryAddress == "":
		return nil, serrors.With(serrors.ErrBadRequest, "Delivery address is required")
	}

	product, err := s.storage.ProductByID(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("could not get product: %w", err)
	}
	if product == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Product not found")
	}
	if !product.InStock {
		return nil, serrors.With(serrors.ErrConflict, "%s is out of stock", product.HerbName)
	}

	order, err := s.storage.StoreOrder(ctx, domain.Order{
		ID:              domain.NewID(domain.PrefixOrder),
		ConsumerID:      consumer,
		ProductID:       product.ID,
		ProductName:     product.HerbName,
		Quantity:        input.Quantity,
		TotalPrice:      math.Round(product.Price*float64(input.Quantity)*100) / 100,
		Status:          domain.OrderProcessing,
		CreatedAt:       s.now(),
		DeliveryAddress: input.DeliveryAddress,
		BatchID:         product.BatchID,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store order: %w", err)
	}

	logger.Info(ctx, "order placed", zap.String("orderID", order.ID), zap.String("productID", product.ID))

	return order, nil
}

// Orders lists the orders of a consumer, newest first.
func (s *service) Orders(ctx context.Context, consumer domain.UserID) ([]domain.Order, error) {
	orders, err := s.storage.ConsumerOrders(ctx, consumer)
	if err != nil {
		return nil, fmt.Errorf("could not get orders: %w", err)
	}

	return orders, nil
}

// Profile returns the stored profile of a user, or one derived from the
// account when none was saved yet.
func (s *service) Profile(ctx context.Context, userID domain.UserID) (*domain.ConsumerProfile, error) {
	profile, err := s.storage.ProfileByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get profile: %w", err)
	}
	if profile != nil {
		return profile, nil
	}

	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.ConsumerProfile{
		UserID:        user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Preferences:   []string{},
		WalletAddress: user.WalletAddress,
	}, nil
}

// UpdateProfile replaces the editable profile fields. The email always
// follows the account.
func (s *service) UpdateProfile(ctx context.Context,
	userID domain.UserID,
	input ProfileUpdate) (*domain.ConsumerProfile, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := domain.ConsumerProfile{
		UserID:        user.ID,
		Name:          strings.TrimSpace(input.Name),
		Email:         user.Email,
		Address:       strings.TrimSpace(input.Address),
		Phone:         strings.TrimSpace(input.Phone),
		Preferences:   cleanPreferences(input.Preferences),
		WalletAddress: strings.TrimSpace(input.WalletAddress),
	}
	if profile.Name == "" {
		profile.Name = user.Name
	}

	stored, err := s.storage.StoreProfile(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("could not store profile: %w", err)
	}

	return stored, nil
}

func (s *service) user(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// cleanPreferences trims, drops empty entries and removes case-insensitive
// duplicates keeping the first spelling.
func cleanPreferences(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, p := range in {
		p = strings.TrimSpace(p)
		key := strings.ToLower(p)
		if _, dup := seen[key]; p == "" || dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}

	return out
}

// New creates a new marketplace Service backed by the provided storage.
func New(storage storage.Storage) Service {
	return &service{storage: storage, now: time.Now}
}
