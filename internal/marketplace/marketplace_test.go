package marketplace_test

import (
	"context"
	"errors"
	"sattva/internal/marketplace"
	"sattva/pkg/domain"
	"sattva/pkg/serrors"
	"sattva/pkg/storage"
	"testing"

	mockstorage "sattva/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var consumerID = domain.UserID(uuid.MustParse("00000000-0000-4000-8000-000000000003"))

func newTestService(t *testing.T) (*mockstorage.MockStorage, marketplace.Service) {
	t.Helper()

	st := mockstorage.NewMockStorage(gomock.NewController(t))

	return st, marketplace.New(st)
}

func TestProducts_Sentinels(t *testing.T) {
	tests := []struct {
		name  string
		query marketplace.ProductQuery
		want  storage.ProductFilter
	}{
		{
			name:  "sentinels mean no filter",
			query: marketplace.ProductQuery{Region: marketplace.AllRegions, Herb: marketplace.AllHerbs},
			want:  storage.ProductFilter{},
		},
		{
			name:  "concrete filters pass through",
			query: marketplace.ProductQuery{Search: " memory ", Region: "Uttarakhand", Herb: "Brahmi", VerifiedOnly: true},
			want:  storage.ProductFilter{Search: "memory", Region: "Uttarakhand", Herb: "Brahmi", VerifiedOnly: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, s := newTestService(t)
			st.EXPECT().Products(gomock.Any(), tt.want).Return([]domain.Product{{ID: "p1"}}, nil)

			got, err := s.Products(context.Background(), tt.query)
			require.NoError(t, err)
			require.Len(t, got, 1)
		})
	}
}

func TestProduct(t *testing.T) {
	st, s := newTestService(t)

	st.EXPECT().ProductByID(gomock.Any(), "p1").Return(&domain.Product{ID: "p1", BatchID: "b1", FarmID: "f1"}, nil)
	st.EXPECT().BatchByID(gomock.Any(), "b1").Return(&domain.Batch{ID: "b1"}, nil)
	st.EXPECT().BatchEvents(gomock.Any(), "b1").Return(nil, nil)
	st.EXPECT().LabReportByBatch(gomock.Any(), "b1").Return(&domain.LabReport{ID: "lab1"}, nil)
	st.EXPECT().FarmByID(gomock.Any(), "f1").Return(&domain.Farm{ID: "f1"}, nil)

	detail, err := s.Product(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, "b1", detail.Batch.ID)
	require.Equal(t, "lab1", detail.Lab.ID)
	require.NotNil(t, detail.Events)

	st.EXPECT().ProductByID(gomock.Any(), "p9").Return(nil, nil)
	_, err = s.Product(context.Background(), "p9")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestPlaceOrder(t *testing.T) {
	st, s := newTestService(t)

	st.EXPECT().ProductByID(gomock.Any(), "p2").Return(&domain.Product{
		ID: "p2", HerbName: "Tulsi Leaf Tea", Price: 349.5, BatchID: "b2", InStock: true,
	}, nil)
	st.EXPECT().StoreOrder(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o domain.Order) (*domain.Order, error) { return &o, nil })

	order, err := s.PlaceOrder(context.Background(), consumerID, marketplace.NewOrder{
		ProductID: "p2", Quantity: 3, DeliveryAddress: " 12 MG Road, Bengaluru ",
	})
	require.NoError(t, err)
	require.Equal(t, 1048.5, order.TotalPrice)
	require.Equal(t, domain.OrderProcessing, order.Status)
	require.Equal(t, "b2", order.BatchID)
	require.Equal(t, "12 MG Road, Bengaluru", order.DeliveryAddress)
	require.Equal(t, consumerID, order.ConsumerID)
}

func TestPlaceOrder_Rejected(t *testing.T) {
	ctx := context.Background()

	invalid := []marketplace.NewOrder{
		{Quantity: 1, DeliveryAddress: "Pune"},
		{ProductID: "p1", Quantity: 0, DeliveryAddress: "Pune"},
		{ProductID: "p1", Quantity: 1, DeliveryAddress: "   "},
	}
	for _, in := range invalid {
		_, s := newTestService(t)
		_, err := s.PlaceOrder(ctx, consumerID, in)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	}

	st, s := newTestService(t)
	st.EXPECT().ProductByID(gomock.Any(), "p5").Return(&domain.Product{ID: "p5", HerbName: "Shatavari", InStock: false}, nil)
	_, err := s.PlaceOrder(ctx, consumerID, marketplace.NewOrder{ProductID: "p5", Quantity: 1, DeliveryAddress: "Pune"})
	require.ErrorIs(t, err, serrors.ErrConflict)

	st.EXPECT().ProductByID(gomock.Any(), "p404").Return(nil, nil)
	_, err = s.PlaceOrder(ctx, consumerID, marketplace.NewOrder{ProductID: "p404", Quantity: 1, DeliveryAddress: "Pune"})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestProfile_DefaultsFromUser(t *testing.T) {
	st, s := newTestService(t)

	st.EXPECT().ProfileByUser(gomock.Any(), consumerID).Return(nil, nil)
	st.EXPECT().UserByID(gomock.Any(), consumerID).Return(&domain.User{
		ID: consumerID, Name: "Ananya Iyer", Email: "consumer@sattva.io",
	}, nil)

	p, err := s.Profile(context.Background(), consumerID)
	require.NoError(t, err)
	require.Equal(t, "Ananya Iyer", p.Name)
	require.Equal(t, "consumer@sattva.io", p.Email)
	require.NotNil(t, p.Preferences)
}

func TestUpdateProfile(t *testing.T) {
	st, s := newTestService(t)

	st.EXPECT().UserByID(gomock.Any(), consumerID).Return(&domain.User{
		ID: consumerID, Name: "Ananya Iyer", Email: "consumer@sattva.io",
	}, nil)
	st.EXPECT().StoreProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.ConsumerProfile) (*domain.ConsumerProfile, error) { return &p, nil })

	p, err := s.UpdateProfile(context.Background(), consumerID, marketplace.ProfileUpdate{
		Address:     "Indiranagar, Bengaluru",
		Preferences: []string{"Tulsi", " tulsi ", "", "Organic"},
	})
	require.NoError(t, err)
	require.Equal(t, "Ananya Iyer", p.Name, "blank name keeps the account name")
	require.Equal(t, "consumer@sattva.io", p.Email)
	require.Equal(t, []string{"Tulsi", "Organic"}, p.Preferences)
}

func TestOrders_StorageError(t *testing.T) {
	st, s := newTestService(t)
	boom := errors.New("boom")
	st.EXPECT().ConsumerOrders(gomock.Any(), consumerID).Return(nil, boom)

	_, err := s.Orders(context.Background(), consumerID)
	require.ErrorIs(t, err, boom)
}
