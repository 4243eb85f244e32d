package postgres_test

import (
	"context"
	"sattva/pkg/domain"
	"sattva/pkg/storage"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var consumerID = domain.UserID(uuid.MustParse("00000000-0000-4000-8000-000000000003"))

func productIDs(products []domain.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	return ids
}

func TestPgSQL_Market(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	t.Run("product filters", func(t *testing.T) {
		cases := []struct {
			name   string
			filter storage.ProductFilter
			want   []string
		}{
			{"no filter", storage.ProductFilter{}, []string{"p1", "p2", "p3", "p4", "p5"}},
			{"search in description", storage.ProductFilter{Search: "MEMORY"}, []string{"p3"}},
			{"region", storage.ProductFilter{Region: "Uttarakhand"}, []string{"p3", "p5"}},
			{"herb substring", storage.ProductFilter{Herb: "tulsi"}, []string{"p2"}},
			{"verified only", storage.ProductFilter{VerifiedOnly: true}, []string{"p1", "p2", "p4", "p5"}},
			{"combined", storage.ProductFilter{Region: "Uttarakhand", VerifiedOnly: true}, []string{"p5"}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, err := pgSQL.Products(ctx, tc.filter)
				require.NoError(t, err)
				require.Equal(t, tc.want, productIDs(got))
			})
		}
	})

	t.Run("product by id", func(t *testing.T) {
		p, err := pgSQL.ProductByID(ctx, "p5")
		require.NoError(t, err)
		require.False(t, p.InStock)
		require.Equal(t, "b6", p.BatchID)

		missing, err := pgSQL.ProductByID(ctx, "p404")
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("orders", func(t *testing.T) {
		stored, err := pgSQL.StoreOrder(ctx, domain.Order{
			ID: domain.NewID(domain.PrefixOrder), ConsumerID: consumerID, ProductID: "p4",
			ProductName: "Turmeric Powder", Quantity: 3, TotalPrice: 897, Status: domain.OrderProcessing,
			DeliveryAddress: "12 MG Road", BatchID: "b4",
		})
		require.NoError(t, err)
		require.False(t, stored.CreatedAt.IsZero())

		orders, err := pgSQL.ConsumerOrders(ctx, consumerID)
		require.NoError(t, err)
		require.Len(t, orders, 3)
		require.Equal(t, stored.ID, orders[0].ID)

		none, err := pgSQL.ConsumerOrders(ctx, domain.DemoFarmerID)
		require.NoError(t, err)
		require.Empty(t, none)
	})

	t.Run("profile upsert", func(t *testing.T) {
		p, err := pgSQL.ProfileByUser(ctx, consumerID)
		require.NoError(t, err)
		require.Equal(t, []string{"Ashwagandha", "Tulsi", "Organic"}, p.Preferences)

		p.Phone = "+91 90000 00000"
		p.Preferences = nil
		updated, err := pgSQL.StoreProfile(ctx, *p)
		require.NoError(t, err)
		require.Equal(t, "+91 90000 00000", updated.Phone)
		require.Empty(t, updated.Preferences)

		none, err := pgSQL.ProfileByUser(ctx, domain.DemoFarmerID)
		require.NoError(t, err)
		require.Nil(t, none)
	})
}
