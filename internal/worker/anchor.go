package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sattva/internal/traceability"
	"sattva/pkg/domain"
	"sattva/pkg/ledger"
	"sattva/pkg/logger"
	"sattva/pkg/metrics"
	"sattva/pkg/quality"
	"sattva/pkg/serrors"
	"sattva/pkg/storage"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

const (
	// RateLimitSnooze is how long a job waits when the quality provider rate limits us.
	RateLimitSnooze = 30 * time.Second

	verifierActor = "Sattva AI"
)

// anchorPayload is the record written to the ledger for a batch.
type anchorPayload struct {
	BatchID      string  `json:"batchId"`
	HerbName     string  `json:"herbName"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	HarvestDate  string  `json:"harvestDate"`
	FarmID       string  `json:"farmId"`
	QualityScore float64 `json:"qualityScore"`
	Grade        string  `json:"grade"`
}

// AnchorWorker is a River worker that scores a freshly harvested batch and
// anchors it on the ledger.
//
// A batch that already carries a ledger hash is skipped. The hash is only
// saved together with the status change, so a retry after a failed commit
// writes the record to the ledger again. The number of ledger writes in
// flight across all jobs is bounded by a weighted semaphore.
//
// The status is computed from the batch row locked inside the final
// transaction, never from the copy read when the job started, so a transfer
// or lab report recorded while the job was scoring the batch is kept.
//
// Error handling: a missing batch cancels the job. A rate limited quality
// provider snoozes the job for RateLimitSnooze. Other errors are returned
// and retried by River.
type AnchorWorker struct {
	river.WorkerDefaults[traceability.AnchorBatchArgs]

	storage storage.Storage
	quality quality.Analyzer
	ledger  ledger.Ledger
	metrics *metrics.Recorder
	// ledgerSlots bounds concurrent ledger writes.
	ledgerSlots *semaphore.Weighted
	now         func() time.Time
}

// NewAnchorWorker constructs an AnchorWorker allowing at most
// ledgerConcurrency concurrent ledger writes. A nil recorder disables metrics.
func NewAnchorWorker(storage storage.Storage,
	analyzer quality.Analyzer,
	l ledger.Ledger,
	recorder *metrics.Recorder,
	ledgerConcurrency int64) *AnchorWorker {
	if ledgerConcurrency < 1 {
		ledgerConcurrency = 1
	}

	return &AnchorWorker{
		storage:     storage,
		quality:     analyzer,
		ledger:      l,
		metrics:     recorder,
		ledgerSlots: semaphore.NewWeighted(ledgerConcurrency),
		now:         time.Now,
	}
}

// Work anchors a single batch.
func (a *AnchorWorker) Work(ctx context.Context, job *river.Job[traceability.AnchorBatchArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("batchID", job.Args.BatchID))

	batch, err := a.storage.BatchByID(ctx, job.Args.BatchID)
	if err != nil {
		return fmt.Errorf("could not get batch: %w", err)
	}
	if batch == nil {
		logger.Warn(ctx, "batch vanished before anchoring")

		return river.JobCancel(serrors.With(serrors.ErrNotFound, "batch %s not found", job.Args.BatchID)) //nolint: wrapcheck
	}
	if batch.Anchored() {
		logger.Info(ctx, "batch already anchored", zap.String("hash", batch.BlockchainHash))

		return nil
	}

	report, err := a.quality.VerifyHerb(ctx, batch.HerbName, batch.ID)
	if err != nil {
		if errors.Is(err, serrors.ErrRateLimited) {
			logger.Warn(ctx, "quality provider rate limited", zap.Error(err))

			return river.JobSnooze(RateLimitSnooze) //nolint: wrapcheck
		}

		return fmt.Errorf("could not verify herb quality: %w", err)
	}

	receipt, err := a.write(ctx, batch, report)
	if err != nil {
		a.metrics.LedgerWrite(ctx, metrics.OutcomeFailure)
		logger.Error(ctx, "error writing batch to ledger", zap.Error(err))

		return err
	}
	a.metrics.LedgerWrite(ctx, metrics.OutcomeSuccess)

	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.LockBatch(ctx, batch.ID)
		if err != nil {
			return fmt.Errorf("could not lock batch: %w", err)
		}
		if current == nil {
			return serrors.With(serrors.ErrNotFound, "batch %s not found", batch.ID)
		}

		status := current.Status.Advance(domain.BatchStatusVerified)
		if _, err := tx.UpdateBatch(ctx, batch.ID, storage.BatchUpdates{
			Status:         &status,
			AIQualityScore: &report.Score,
			BlockchainHash: &receipt.Hash,
		}); err != nil {
			return fmt.Errorf("could not update batch: %w", err)
		}

		if err := tx.StoreEvents(ctx, []domain.SupplyChainEvent{{
			ID:          domain.NewID(domain.PrefixEvent),
			BatchID:     batch.ID,
			Type:        domain.EventVerification,
			Title:       "AI Quality Verified",
			Description: fmt.Sprintf("AI quality score %.1f (Grade %s)", report.Score, report.Grade),
			Timestamp:   a.now(),
			Actor:       verifierActor,
			Verified:    true,
		}}); err != nil {
			return fmt.Errorf("could not store verification event: %w", err)
		}

		return nil
	}); err != nil {
		if errors.Is(err, serrors.ErrNotFound) {
			logger.Warn(ctx, "batch vanished while anchoring", zap.String("hash", receipt.Hash))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		return fmt.Errorf("could not record anchoring: %w", err)
	}

	logger.Info(ctx, "batch anchored",
		zap.String("hash", receipt.Hash),
		zap.Uint64("block", receipt.BlockNumber),
		zap.Float64("score", report.Score))

	return nil
}

// write waits for a free ledger slot and writes the batch record.
func (a *AnchorWorker) write(ctx context.Context,
	batch *domain.Batch,
	report domain.QualityReport) (*ledger.WriteReceipt, error) {
	payload, err := json.Marshal(anchorPayload{
		BatchID:      batch.ID,
		HerbName:     batch.HerbName,
		Quantity:     batch.Quantity,
		Unit:         batch.Unit,
		HarvestDate:  batch.HarvestDate,
		FarmID:       batch.FarmID,
		QualityScore: report.Score,
		Grade:        report.Grade,
	})
	if err != nil {
		return nil, fmt.Errorf("could not encode ledger payload: %w", err)
	}

	if err := a.ledgerSlots.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("could not acquire ledger slot: %w", err)
	}
	defer a.ledgerSlots.Release(1)

	receipt, err := a.ledger.Write(ctx, batch.ID, payload)
	if err != nil {
		return nil, fmt.Errorf("could not write to ledger: %w", err)
	}

	return &receipt, nil
}
