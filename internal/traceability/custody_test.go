package traceability_test

import (
	"context"
	"sattva/internal/traceability"
	"sattva/pkg/domain"
	"sattva/pkg/serrors"
	"sattva/pkg/storage"
	"strings"
	"testing"

	mockstorage "sattva/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTransfer(t *testing.T) {
	ctrl, st, s := newTestService(t)

	st.EXPECT().BatchByID(gomock.Any(), "b4").Return(batch("b4", domain.BatchStatusVerified), nil)
	st.EXPECT().UserByID(gomock.Any(), farmerID).Return(farmer, nil)
	st.EXPECT().UserByID(gomock.Any(), manufacturerID).Return(manufacturer, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreTransfer(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr domain.Transfer) (*domain.Transfer, error) {
				require.Equal(t, "Rajesh Kumar", tr.FromUserName)
				require.Equal(t, "Priya Sharma", tr.ToUserName)
				require.True(t, strings.HasPrefix(tr.ID, "t_"))

				return &tr, nil
			})
		tx.EXPECT().LockBatch(gomock.Any(), "b4").Return(batch("b4", domain.BatchStatusVerified), nil)
		tx.EXPECT().UpdateBatch(gomock.Any(), "b4", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, u storage.BatchUpdates) (*domain.Batch, error) {
				require.Equal(t, domain.BatchStatusInTransit, *u.Status)

				return batch("b4", *u.Status), nil
			})
		tx.EXPECT().StoreEvents(gomock.Any(), gomock.Any()).Return(nil)
	})

	tr, err := s.Transfer(context.Background(), farmerID, "b4", manufacturerID)
	require.NoError(t, err)
	require.Equal(t, "b4", tr.BatchID)
}

func TestTransfer_NeverMovesStatusBack(t *testing.T) {
	ctrl, st, s := newTestService(t)

	st.EXPECT().BatchByID(gomock.Any(), "b2").Return(batch("b2", domain.BatchStatusLabTested), nil)
	st.EXPECT().UserByID(gomock.Any(), farmerID).Return(farmer, nil)
	st.EXPECT().UserByID(gomock.Any(), manufacturerID).Return(manufacturer, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreTransfer(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr domain.Transfer) (*domain.Transfer, error) { return &tr, nil })
		tx.EXPECT().LockBatch(gomock.Any(), "b2").Return(batch("b2", domain.BatchStatusLabTested), nil)
		// no UpdateBatch: lab_tested is later than in_transit
		tx.EXPECT().StoreEvents(gomock.Any(), gomock.Any()).Return(nil)
	})

	_, err := s.Transfer(context.Background(), farmerID, "b2", manufacturerID)
	require.NoError(t, err)
}

func TestTransfer_KeepsStatusChangedConcurrently(t *testing.T) {
	ctrl, st, s := newTestService(t)

	// read as verified, but a lab report lands before the transfer commits
	st.EXPECT().BatchByID(gomock.Any(), "b4").Return(batch("b4", domain.BatchStatusVerified), nil)
	st.EXPECT().UserByID(gomock.Any(), farmerID).Return(farmer, nil)
	st.EXPECT().UserByID(gomock.Any(), manufacturerID).Return(manufacturer, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreTransfer(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr domain.Transfer) (*domain.Transfer, error) { return &tr, nil })
		tx.EXPECT().LockBatch(gomock.Any(), "b4").Return(batch("b4", domain.BatchStatusLabTested), nil)
		// no UpdateBatch: writing in_transit would undo the lab report
		tx.EXPECT().StoreEvents(gomock.Any(), gomock.Any()).Return(nil)
	})

	_, err := s.Transfer(context.Background(), farmerID, "b4", manufacturerID)
	require.NoError(t, err)
}

func TestTransfer_BatchDeletedBeforeCommit(t *testing.T) {
	ctrl, st, s := newTestService(t)

	st.EXPECT().BatchByID(gomock.Any(), "b4").Return(batch("b4", domain.BatchStatusVerified), nil)
	st.EXPECT().UserByID(gomock.Any(), farmerID).Return(farmer, nil)
	st.EXPECT().UserByID(gomock.Any(), manufacturerID).Return(manufacturer, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreTransfer(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr domain.Transfer) (*domain.Transfer, error) { return &tr, nil })
		tx.EXPECT().LockBatch(gomock.Any(), "b4").Return(nil, nil)
	})

	_, err := s.Transfer(context.Background(), farmerID, "b4", manufacturerID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestTransfer_Rejected(t *testing.T) {
	ctx := context.Background()

	t.Run("to self", func(t *testing.T) {
		_, _, s := newTestService(t)
		_, err := s.Transfer(ctx, farmerID, "b4", farmerID)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("recipient is not a manufacturer", func(t *testing.T) {
		_, st, s := newTestService(t)
		st.EXPECT().BatchByID(gomock.Any(), "b4").Return(batch("b4", domain.BatchStatusVerified), nil)
		st.EXPECT().UserByID(gomock.Any(), farmerID).Return(farmer, nil)
		st.EXPECT().UserByID(gomock.Any(), consumerID).Return(consumer, nil)

		_, err := s.Transfer(ctx, farmerID, "b4", consumerID)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("unknown batch", func(t *testing.T) {
		_, st, s := newTestService(t)
		st.EXPECT().BatchByID(gomock.Any(), "b99").Return(nil, nil)

		_, err := s.Transfer(ctx, farmerID, "b99", manufacturerID)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}

func TestUploadLabReport(t *testing.T) {
	ctrl, st, s := newTestService(t)

	st.EXPECT().BatchByID(gomock.Any(), "b3").Return(batch("b3", domain.BatchStatusInTransit), nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreLabReport(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r domain.LabReport) (*domain.LabReport, error) {
				require.Equal(t, domain.LabReportVerified, r.VerificationStatus)
				require.Regexp(t, `^Qm[1-9A-HJ-NP-Za-km-z]{44}$`, r.IPFSHash)
				require.Equal(t, "A+", r.Results.Grade, "grade derives from purity when omitted")

				return &r, nil
			})
		tx.EXPECT().LockBatch(gomock.Any(), "b3").Return(batch("b3", domain.BatchStatusInTransit), nil)
		tx.EXPECT().UpdateBatch(gomock.Any(), "b3", storage.BatchUpdates{Status: ptr(domain.BatchStatusLabTested)}).
			Return(batch("b3", domain.BatchStatusLabTested), nil)
		tx.EXPECT().UserByID(gomock.Any(), manufacturerID).Return(manufacturer, nil)
		tx.EXPECT().StoreEvents(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, events []domain.SupplyChainEvent) error {
				require.Equal(t, "Purity 97.4%, no contaminants detected", events[0].Description)
				require.Equal(t, "Priya Sharma", events[0].Actor)

				return nil
			})
	})

	report, err := s.UploadLabReport(context.Background(), manufacturerID, "b3",
		domain.LabResults{Purity: 97.4, ActiveCompounds: 4.1})
	require.NoError(t, err)
	require.Equal(t, "b3", report.BatchID)
}

func TestUploadLabReport_WrongStatus(t *testing.T) {
	_, st, s := newTestService(t)
	st.EXPECT().BatchByID(gomock.Any(), "b5").Return(batch("b5", domain.BatchStatusHarvested), nil)

	_, err := s.UploadLabReport(context.Background(), manufacturerID, "b5", domain.LabResults{Purity: 90})
	require.ErrorIs(t, err, serrors.ErrConflict)

	_, err = s.UploadLabReport(context.Background(), manufacturerID, "b5", domain.LabResults{Purity: 120})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestGenerateQR(t *testing.T) {
	ctrl, st, s := newTestService(t)

	st.EXPECT().BatchByID(gomock.Any(), "b2").Return(batch("b2", domain.BatchStatusLabTested), nil)
	st.EXPECT().QRRecordByBatch(gomock.Any(), "b2").Return(nil, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreQRRecord(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r domain.QRRecord) (*domain.QRRecord, error) { return &r, nil })
		tx.EXPECT().LockBatch(gomock.Any(), "b2").Return(batch("b2", domain.BatchStatusLabTested), nil)
		tx.EXPECT().UpdateBatch(gomock.Any(), "b2", storage.BatchUpdates{Status: ptr(domain.BatchStatusQRGenerated)}).
			Return(batch("b2", domain.BatchStatusQRGenerated), nil)
		tx.EXPECT().UserByID(gomock.Any(), manufacturerID).Return(manufacturer, nil)
		tx.EXPECT().StoreEvents(gomock.Any(), gomock.Any()).Return(nil)
	})

	record, err := s.GenerateQR(context.Background(), manufacturerID, "b2")
	require.NoError(t, err)
	require.Equal(t, "https://sattva.io/verify?batchId=b2", record.QRCodeURL)
}

func TestGenerateQR_Idempotent(t *testing.T) {
	_, st, s := newTestService(t)
	existing := &domain.QRRecord{ID: "qr1", BatchID: "b1", QRCodeURL: "https://sattva.io/verify?batchId=b1"}

	st.EXPECT().BatchByID(gomock.Any(), "b1").Return(batch("b1", domain.BatchStatusQRGenerated), nil).Times(2)
	st.EXPECT().QRRecordByBatch(gomock.Any(), "b1").Return(existing, nil).Times(2)

	for range 2 {
		record, err := s.GenerateQR(context.Background(), manufacturerID, "b1")
		require.NoError(t, err)
		require.Equal(t, existing, record)
	}
}

func TestGenerateQR_NotReady(t *testing.T) {
	_, st, s := newTestService(t)
	st.EXPECT().BatchByID(gomock.Any(), "b4").Return(batch("b4", domain.BatchStatusVerified), nil)
	st.EXPECT().QRRecordByBatch(gomock.Any(), "b4").Return(nil, nil)

	_, err := s.GenerateQR(context.Background(), manufacturerID, "b4")
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestLabReports_Status(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().LabReports(gomock.Any(), domain.LabReportPending).Return([]domain.LabReport{{ID: "lab3"}}, nil)
	got, err := s.LabReports(context.Background(), "pending")
	require.NoError(t, err)
	require.Len(t, got, 1)

	st.EXPECT().LabReports(gomock.Any(), domain.LabReportStatus("")).Return(nil, nil)
	_, err = s.LabReports(context.Background(), traceability.StatusAll)
	require.NoError(t, err)

	_, err = s.LabReports(context.Background(), "lost")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func ptr[T any](v T) *T { return &v }
