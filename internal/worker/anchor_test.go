package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"sattva/internal/traceability"
	"sattva/internal/worker"
	"sattva/pkg/domain"
	"sattva/pkg/ledger"
	"sattva/pkg/logger"
	"sattva/pkg/metrics"
	"sattva/pkg/serrors"
	"sattva/pkg/storage"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	mockledger "sattva/pkg/ledger/mock"
	mockquality "sattva/pkg/quality/mock"
	mockstorage "sattva/pkg/storage/mock"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

const hash = "0x5f16f4c7f149ac4f9510d9cf8cf384038ad348b3bcdc01915f95de12df9d1b02"

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	goleak.VerifyTestMain(m)
}

type fixture struct {
	ctrl    *gomock.Controller
	storage *mockstorage.MockStorage
	quality *mockquality.MockAnalyzer
	ledger  *mockledger.MockLedger
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	return fixture{
		ctrl:    ctrl,
		storage: mockstorage.NewMockStorage(ctrl),
		quality: mockquality.NewMockAnalyzer(ctrl),
		ledger:  mockledger.NewMockLedger(ctrl),
	}
}

func (f fixture) worker(concurrency int64) *worker.AnchorWorker {
	return worker.NewAnchorWorker(f.storage, f.quality, f.ledger, metrics.Nop(), concurrency)
}

func makeJob(id int64, batchID string) *river.Job[traceability.AnchorBatchArgs] {
	return &river.Job[traceability.AnchorBatchArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   traceability.AnchorBatchArgs{BatchID: batchID},
	}
}

func harvested(id string) *domain.Batch {
	return &domain.Batch{
		ID: id, HerbName: "Neem", Quantity: 80, Unit: "kg", HarvestDate: "2025-10-18",
		Status: domain.BatchStatusHarvested, FarmID: "f2",
	}
}

func report() domain.QualityReport {
	return domain.QualityReport{Score: 93.4, Grade: "A", Confidence: 95.1}
}

// expectCommit wires Storage.WithTx to a transaction that records the anchoring.
func (f fixture) expectCommit(t *testing.T, times int) {
	t.Helper()

	f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(times).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(f.ctrl)
			tx.EXPECT().LockBatch(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, id string) (*domain.Batch, error) { return harvested(id), nil })
			tx.EXPECT().UpdateBatch(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, id string, u storage.BatchUpdates) (*domain.Batch, error) {
					require.Equal(t, domain.BatchStatusVerified, *u.Status)
					require.InDelta(t, 93.4, *u.AIQualityScore, 1e-9)
					require.Equal(t, hash, *u.BlockchainHash)

					return harvested(id), nil
				})
			tx.EXPECT().StoreEvents(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, events []domain.SupplyChainEvent) error {
					require.Equal(t, domain.EventVerification, events[0].Type)
					require.Equal(t, "AI quality score 93.4 (Grade A)", events[0].Description)

					return nil
				})

			return cb(tx)
		})
}

func TestAnchorWorker_Success(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().BatchByID(gomock.Any(), "b5").Return(harvested("b5"), nil)
	f.quality.EXPECT().VerifyHerb(gomock.Any(), "Neem", "b5").Return(report(), nil)
	f.ledger.EXPECT().Write(gomock.Any(), "b5", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, data []byte) (ledger.WriteReceipt, error) {
			var payload map[string]any
			require.NoError(t, json.Unmarshal(data, &payload))
			require.Equal(t, "b5", payload["batchId"])
			require.Equal(t, "A", payload["grade"])

			return ledger.WriteReceipt{Hash: hash, BlockNumber: 15_123_456}, nil
		})
	f.expectCommit(t, 1)

	require.NoError(t, f.worker(1).Work(context.Background(), makeJob(1, "b5")))
}

func TestAnchorWorker_KeepsStatusChangedWhileScoring(t *testing.T) {
	f := newFixture(t)

	// the row as the database holds it
	var mu sync.Mutex
	stored := harvested("b5")

	f.storage.EXPECT().BatchByID(gomock.Any(), "b5").DoAndReturn(
		func(context.Context, string) (*domain.Batch, error) {
			mu.Lock()
			defer mu.Unlock()
			b := *stored

			return &b, nil
		})
	f.quality.EXPECT().VerifyHerb(gomock.Any(), "Neem", "b5").DoAndReturn(
		func(context.Context, string, string) (domain.QualityReport, error) {
			// the farmer transfers the batch while it is being scored
			mu.Lock()
			stored.Status = domain.BatchStatusInTransit
			mu.Unlock()

			return report(), nil
		})
	f.ledger.EXPECT().Write(gomock.Any(), "b5", gomock.Any()).Return(ledger.WriteReceipt{Hash: hash}, nil)
	f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(f.ctrl)
			tx.EXPECT().LockBatch(gomock.Any(), "b5").DoAndReturn(
				func(context.Context, string) (*domain.Batch, error) {
					mu.Lock()
					defer mu.Unlock()
					b := *stored

					return &b, nil
				})
			tx.EXPECT().UpdateBatch(gomock.Any(), "b5", gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, u storage.BatchUpdates) (*domain.Batch, error) {
					mu.Lock()
					defer mu.Unlock()
					stored.Status = *u.Status
					stored.BlockchainHash = *u.BlockchainHash

					return stored, nil
				})
			tx.EXPECT().StoreEvents(gomock.Any(), gomock.Any()).Return(nil)

			return cb(tx)
		})

	require.NoError(t, f.worker(1).Work(context.Background(), makeJob(6, "b5")))
	require.Equal(t, domain.BatchStatusInTransit, stored.Status)
	require.Equal(t, hash, stored.BlockchainHash)
}

func TestAnchorWorker_BatchDeletedBeforeCommitCancels(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().BatchByID(gomock.Any(), "b5").Return(harvested("b5"), nil)
	f.quality.EXPECT().VerifyHerb(gomock.Any(), "Neem", "b5").Return(report(), nil)
	f.ledger.EXPECT().Write(gomock.Any(), "b5", gomock.Any()).Return(ledger.WriteReceipt{Hash: hash}, nil)
	f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(f.ctrl)
			tx.EXPECT().LockBatch(gomock.Any(), "b5").Return(nil, nil)

			return cb(tx)
		})

	err := f.worker(1).Work(context.Background(), makeJob(7, "b5"))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestAnchorWorker_RetryAfterFailedCommitWritesLedgerAgain(t *testing.T) {
	f := newFixture(t)
	commitErr := errors.New("connection reset")

	// the hash never reached the batch, so the retry is not skipped
	f.storage.EXPECT().BatchByID(gomock.Any(), "b5").Times(2).Return(harvested("b5"), nil)
	f.quality.EXPECT().VerifyHerb(gomock.Any(), "Neem", "b5").Times(2).Return(report(), nil)
	f.ledger.EXPECT().Write(gomock.Any(), "b5", gomock.Any()).Times(2).Return(ledger.WriteReceipt{Hash: hash}, nil)
	gomock.InOrder(
		f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(commitErr),
		f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(nil),
	)

	w := f.worker(1)
	err := w.Work(context.Background(), makeJob(8, "b5"))
	require.ErrorIs(t, err, commitErr)

	require.NoError(t, w.Work(context.Background(), makeJob(8, "b5")))
}

func TestAnchorWorker_MissingBatchCancels(t *testing.T) {
	f := newFixture(t)
	f.storage.EXPECT().BatchByID(gomock.Any(), "gone").Return(nil, nil)

	err := f.worker(1).Work(context.Background(), makeJob(2, "gone"))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestAnchorWorker_AlreadyAnchoredSkips(t *testing.T) {
	f := newFixture(t)
	b := harvested("b4")
	b.BlockchainHash = hash
	f.storage.EXPECT().BatchByID(gomock.Any(), "b4").Return(b, nil)

	// no quality or ledger calls expected
	require.NoError(t, f.worker(1).Work(context.Background(), makeJob(3, "b4")))
}

func TestAnchorWorker_RateLimitedSnoozes(t *testing.T) {
	f := newFixture(t)
	f.storage.EXPECT().BatchByID(gomock.Any(), "b5").Return(harvested("b5"), nil)
	f.quality.EXPECT().VerifyHerb(gomock.Any(), "Neem", "b5").
		Return(domain.QualityReport{}, serrors.With(serrors.ErrRateLimited, "slow down"))

	err := f.worker(1).Work(context.Background(), makeJob(4, "b5"))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Equal(t, worker.RateLimitSnooze, snoozeErr.Duration)
}

func TestAnchorWorker_LedgerErrorRetries(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("node unreachable")
	f.storage.EXPECT().BatchByID(gomock.Any(), "b5").Return(harvested("b5"), nil)
	f.quality.EXPECT().VerifyHerb(gomock.Any(), "Neem", "b5").Return(report(), nil)
	f.ledger.EXPECT().Write(gomock.Any(), "b5", gomock.Any()).Return(ledger.WriteReceipt{}, boom)

	err := f.worker(1).Work(context.Background(), makeJob(5, "b5"))
	require.ErrorIs(t, err, boom)

	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
}

func TestAnchorWorker_BoundsLedgerConcurrency(t *testing.T) {
	const (
		jobs        = 8
		concurrency = 2
	)

	f := newFixture(t)
	var inFlight, peak atomic.Int32

	f.storage.EXPECT().BatchByID(gomock.Any(), gomock.Any()).Times(jobs).DoAndReturn(
		func(_ context.Context, id string) (*domain.Batch, error) { return harvested(id), nil })
	f.quality.EXPECT().VerifyHerb(gomock.Any(), gomock.Any(), gomock.Any()).Times(jobs).Return(report(), nil)
	f.ledger.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Times(jobs).DoAndReturn(
		func(context.Context, string, []byte) (ledger.WriteReceipt, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			inFlight.Add(-1)

			return ledger.WriteReceipt{Hash: hash}, nil
		})
	f.expectCommit(t, jobs)

	w := f.worker(concurrency)
	var wg sync.WaitGroup
	errs := make(chan error, jobs)
	for i := range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- w.Work(context.Background(), makeJob(int64(i), "b5"))
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.LessOrEqual(t, peak.Load(), int32(concurrency))
	require.Positive(t, peak.Load())
}
