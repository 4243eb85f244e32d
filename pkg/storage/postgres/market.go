package postgres

import (
	"context"
	"fmt"
	"sattva/pkg/domain"
	"sattva/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func (p *PgSQL) Products(ctx context.Context, filter storage.ProductFilter) ([]domain.Product, error) {
	var w []goqu.Expression
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		w = append(w, goqu.Or(
			goqu.I("herb_name").ILike(pattern),
			goqu.I("description").ILike(pattern),
		))
	}
	if filter.Region != "" {
		w = append(w, goqu.I("region").Eq(filter.Region))
	}
	if filter.Herb != "" {
		w = append(w, goqu.I("herb_name").ILike(likePattern(filter.Herb)))
	}
	if filter.VerifiedOnly {
		w = append(w, goqu.I("verified").IsTrue())
	}

	var rows []PgProduct
	if err := p.Builder.From(productsTable).
		Where(w...).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch products from pg: %w", err)
	}

	out := make([]domain.Product, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) ProductByID(ctx context.Context, id string) (*domain.Product, error) {
	var row PgProduct
	found, err := p.Builder.From(productsTable).
		Where(goqu.I("id").Eq(id)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch product by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StoreOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	var row PgOrder
	row.FromDomain(order)

	var stored PgOrder
	if _, err := p.Builder.Insert(ordersTable).
		Rows(row).
		Returning(&PgOrder{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store order into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) ConsumerOrders(ctx context.Context, consumerID domain.UserID) ([]domain.Order, error) {
	var rows []PgOrder
	if err := p.Builder.From(ordersTable).
		Where(goqu.I("consumer_id").Eq(uuid.UUID(consumerID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch consumer orders from pg: %w", err)
	}

	out := make([]domain.Order, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) ProfileByUser(ctx context.Context, userID domain.UserID) (*domain.ConsumerProfile, error) {
	var row PgProfile
	found, err := p.Builder.From(consumerProfilesTbl).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch consumer profile: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// StoreProfile upserts on user_id.
func (p *PgSQL) StoreProfile(ctx context.Context, profile domain.ConsumerProfile) (*domain.ConsumerProfile, error) {
	var row PgProfile
	if err := row.FromDomain(profile); err != nil {
		return nil, err
	}

	var stored PgProfile
	if _, err := p.Builder.Insert(consumerProfilesTbl).
		Rows(row).
		OnConflict(goqu.DoUpdate("user_id", goqu.Record{
			"name":           goqu.L("EXCLUDED.name"),
			"email":          goqu.L("EXCLUDED.email"),
			"address":        goqu.L("EXCLUDED.address"),
			"phone":          goqu.L("EXCLUDED.phone"),
			"preferences":    goqu.L("EXCLUDED.preferences"),
			"wallet_address": goqu.L("EXCLUDED.wallet_address"),
		})).
		Returning(&PgProfile{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store consumer profile into pg: %w", err)
	}

	return stored.ToDomain()
}
