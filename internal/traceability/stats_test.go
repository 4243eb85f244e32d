package traceability_test

import (
	"context"
	"sattva/pkg/domain"
	"sattva/pkg/storage"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func seededBatches() []domain.Batch {
	mk := func(id, herb, date string, status domain.BatchStatus, score float64) domain.Batch {
		return domain.Batch{ID: id, HerbName: herb, HarvestDate: date, Status: status, AIQualityScore: score}
	}

	return []domain.Batch{
		mk("b1", "Ashwagandha", "2025-09-15", domain.BatchStatusQRGenerated, 94.5),
		mk("b2", "Tulsi", "2025-09-22", domain.BatchStatusLabTested, 91.3),
		mk("b3", "Brahmi", "2025-10-02", domain.BatchStatusInTransit, 88.7),
		mk("b5", "Neem", "2025-10-18", domain.BatchStatusHarvested, 0),
		mk("b6", "Ashwagandha", "2025-08-28", domain.BatchStatusDelivered, 96.0),
	}
}

func TestStats(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().Batches(gomock.Any(), storage.BatchFilter{CreatedBy: &farmerID}).Return(seededBatches(), nil)
	st.EXPECT().Transfers(gomock.Any(), "").Return([]domain.Transfer{
		{BatchID: "b1"}, {BatchID: "b3"}, {BatchID: "elsewhere"},
	}, nil)
	st.EXPECT().LabReports(gomock.Any(), domain.LabReportPending).Return([]domain.LabReport{
		{BatchID: "b3"}, {BatchID: "elsewhere"},
	}, nil)

	stats, err := s.Stats(context.Background(), &farmerID)
	require.NoError(t, err)

	want := domain.DashboardStats{
		TotalBatches:      5,
		ActiveBatches:     4,
		VerifiedBatches:   4,
		QualityScore:      92.6,
		TotalTransfers:    2,
		PendingLabReports: 1,
	}
	if diff := cmp.Diff(want, *stats); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalytics(t *testing.T) {
	_, st, s := newTestService(t)
	st.EXPECT().Batches(gomock.Any(), storage.BatchFilter{}).Return(seededBatches(), nil)

	got, err := s.Analytics(context.Background())
	require.NoError(t, err)

	want := domain.Analytics{
		Monthly: []domain.MonthlyBatches{
			{Month: "2025-08", Batches: 1, QualityScore: 96},
			{Month: "2025-09", Batches: 2, QualityScore: 92.9},
			{Month: "2025-10", Batches: 2, QualityScore: 88.7},
		},
		HerbDistribution: []domain.HerbShare{
			{HerbName: "Ashwagandha", Batches: 2},
			{HerbName: "Brahmi", Batches: 1},
			{HerbName: "Neem", Batches: 1},
			{HerbName: "Tulsi", Batches: 1},
		},
	}
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Fatalf("analytics mismatch (-want +got):\n%s", diff)
	}
}
