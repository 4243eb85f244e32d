package traceability

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/url"
	"sattva/pkg/domain"
	"sattva/pkg/logger"
	"sattva/pkg/serrors"
	"sattva/pkg/storage"
	"strings"

	"go.uber.org/zap"
)

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Transfers lists custody transfers, optionally of a single batch.
func (s *service) Transfers(ctx context.Context, batchID string) ([]domain.Transfer, error) {
	transfers, err := s.storage.Transfers(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("could not get transfers: %w", err)
	}

	return transfers, nil
}

// Transfer hands a batch over to a manufacturer.
func (s *service) Transfer(ctx context.Context,
	actor domain.UserID,
	batchID string,
	to domain.UserID) (*domain.Transfer, error) {
	if actor == to {
		return nil, serrors.With(serrors.ErrBadRequest, "Cannot transfer a batch to yourself")
	}

	batch, err := s.batch(ctx, batchID)
	if err != nil {
		return nil, err
	}

	from, err := s.storage.UserByID(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("could not get sender: %w", err)
	}
	if from == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "unknown sender")
	}

	recipient, err := s.storage.UserByID(ctx, to)
	if err != nil {
		return nil, fmt.Errorf("could not get recipient: %w", err)
	}
	if recipient == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Recipient not found")
	}
	if recipient.Role != domain.RoleManufacturer {
		return nil, serrors.With(serrors.ErrBadRequest, "Batches can only be transferred to a manufacturer")
	}

	var stored *domain.Transfer
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		now := s.now()

		stored, err = tx.StoreTransfer(ctx, domain.Transfer{
			ID:           domain.NewID(domain.PrefixTransfer),
			BatchID:      batch.ID,
			FromUserID:   from.ID,
			ToUserID:     recipient.ID,
			Timestamp:    now,
			FromUserName: from.Name,
			ToUserName:   recipient.Name,
		})
		if err != nil {
			return fmt.Errorf("could not store transfer: %w", err)
		}

		if err := advance(ctx, tx, batch, domain.BatchStatusInTransit); err != nil {
			return err
		}

		return storeEvent(ctx, tx, domain.SupplyChainEvent{
			BatchID:     batch.ID,
			Type:        domain.EventTransfer,
			Title:       "Transferred to Manufacturer",
			Description: "Custody transferred to " + recipient.Name,
			Timestamp:   now,
			Actor:       from.Name,
			Verified:    true,
		})
	}); err != nil {
		return nil, fmt.Errorf("could not transfer batch: %w", err)
	}

	logger.Info(ctx, "batch transferred",
		zap.String("batchID", batch.ID),
		zap.Stringer("from", from.ID),
		zap.Stringer("to", recipient.ID))

	return stored, nil
}

// LabReports lists lab reports. An empty status lists all of them.
func (s *service) LabReports(ctx context.Context, status string) ([]domain.LabReport, error) {
	st := domain.LabReportStatus(status)
	if status == StatusAll {
		st = ""
	}
	if st != "" && !st.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "Unknown lab report status %q", status)
	}

	reports, err := s.storage.LabReports(ctx, st)
	if err != nil {
		return nil, fmt.Errorf("could not get lab reports: %w", err)
	}

	return reports, nil
}

// UploadLabReport attaches a verified lab report to a batch.
func (s *service) UploadLabReport(ctx context.Context,
	actor domain.UserID,
	batchID string,
	results domain.LabResults) (*domain.LabReport, error) {
	if results.Purity < 0 || results.Purity > 100 || results.ActiveCompounds < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "Invalid lab results")
	}
	if results.Grade == "" {
		results.Grade = domain.Grade(results.Purity)
	}

	batch, err := s.batch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if !batch.Status.In(domain.BatchStatusVerified, domain.BatchStatusInTransit, domain.BatchStatusLabTested) {
		return nil, serrors.With(serrors.ErrConflict, "Batch in status %s cannot receive a lab report", batch.Status)
	}

	var stored *domain.LabReport
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		now := s.now()

		stored, err = tx.StoreLabReport(ctx, domain.LabReport{
			ID:                 domain.NewID(domain.PrefixLabReport),
			BatchID:            batch.ID,
			IPFSHash:           newIPFSHash(),
			VerificationStatus: domain.LabReportVerified,
			TestDate:           now,
			Results:            results,
		})
		if err != nil {
			return fmt.Errorf("could not store lab report: %w", err)
		}

		if err := advance(ctx, tx, batch, domain.BatchStatusLabTested); err != nil {
			return err
		}

		return storeEvent(ctx, tx, domain.SupplyChainEvent{
			BatchID:     batch.ID,
			Type:        domain.EventLabTest,
			Title:       "Lab Tested",
			Description: labSummary(results),
			Timestamp:   now,
			Actor:       s.actorName(ctx, tx, actor),
			Verified:    true,
		})
	}); err != nil {
		return nil, fmt.Errorf("could not upload lab report: %w", err)
	}

	return stored, nil
}

// GenerateQR issues the consumer verification QR record of a batch. Calling it
// again returns the record issued first.
func (s *service) GenerateQR(ctx context.Context, actor domain.UserID, batchID string) (*domain.QRRecord, error) {
	batch, err := s.batch(ctx, batchID)
	if err != nil {
		return nil, err
	}

	existing, err := s.storage.QRRecordByBatch(ctx, batch.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get QR record: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	if !batch.Status.In(domain.BatchStatusLabTested, domain.BatchStatusQRGenerated, domain.BatchStatusDelivered) {
		return nil, serrors.With(serrors.ErrConflict, "Batch in status %s is not ready for a QR code", batch.Status)
	}

	var stored *domain.QRRecord
	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		now := s.now()

		stored, err = tx.StoreQRRecord(ctx, domain.QRRecord{
			ID:          domain.NewID(domain.PrefixQRRecord),
			BatchID:     batch.ID,
			QRCodeURL:   s.verifyURL(batch.ID),
			GeneratedAt: now,
		})
		if err != nil {
			return fmt.Errorf("could not store QR record: %w", err)
		}

		if err := advance(ctx, tx, batch, domain.BatchStatusQRGenerated); err != nil {
			return err
		}

		return storeEvent(ctx, tx, domain.SupplyChainEvent{
			BatchID:     batch.ID,
			Type:        domain.EventQRGenerated,
			Title:       "QR Code Generated",
			Description: "Consumer verification QR code issued",
			Timestamp:   now,
			Actor:       s.actorName(ctx, tx, actor),
			Verified:    true,
		})
	})
	if errors.Is(err, storage.ErrDuplicate) {
		// a concurrent request issued it first
		return s.storage.QRRecordByBatch(ctx, batch.ID) //nolint: wrapcheck
	}
	if err != nil {
		return nil, fmt.Errorf("could not generate QR record: %w", err)
	}

	return stored, nil
}

// QRRecord returns the QR record of a batch, or nil when none was issued yet.
func (s *service) QRRecord(ctx context.Context, batchID string) (*domain.QRRecord, error) {
	batch, err := s.batch(ctx, batchID)
	if err != nil {
		return nil, err
	}

	record, err := s.storage.QRRecordByBatch(ctx, batch.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get QR record: %w", err)
	}

	return record, nil
}

// QRRecords lists every issued QR record.
func (s *service) QRRecords(ctx context.Context) ([]domain.QRRecord, error) {
	records, err := s.storage.QRRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get QR records: %w", err)
	}

	return records, nil
}

func (s *service) verifyURL(batchID string) string {
	return strings.TrimRight(s.options.PublicBaseURL, "/") + "/verify?batchId=" + url.QueryEscape(batchID)
}

// advance moves batch forward to status. The status is read from the row
// locked in tx, so a concurrent change that went further is kept.
func advance(ctx context.Context, tx storage.BatchStorage, batch *domain.Batch, status domain.BatchStatus) error {
	current, err := tx.LockBatch(ctx, batch.ID)
	if err != nil {
		return fmt.Errorf("could not lock batch: %w", err)
	}
	if current == nil {
		return serrors.With(serrors.ErrNotFound, "Batch %s not found", batch.ID)
	}

	next := current.Status.Advance(status)
	if next != current.Status {
		if _, err := tx.UpdateBatch(ctx, batch.ID, storage.BatchUpdates{Status: &next}); err != nil {
			return fmt.Errorf("could not update batch status: %w", err)
		}
	}
	batch.Status = next

	return nil
}

func storeEvent(ctx context.Context, tx storage.TraceStorage, event domain.SupplyChainEvent) error {
	event.ID = domain.NewID(domain.PrefixEvent)
	if err := tx.StoreEvents(ctx, []domain.SupplyChainEvent{event}); err != nil {
		return fmt.Errorf("could not store %s event: %w", event.Type, err)
	}

	return nil
}

func labSummary(r domain.LabResults) string {
	if r.Contaminants {
		return fmt.Sprintf("Purity %.1f%%, contaminants detected", r.Purity)
	}

	return fmt.Sprintf("Purity %.1f%%, no contaminants detected", r.Purity)
}

// newIPFSHash returns a random CIDv0 shaped identifier.
func newIPFSHash() string {
	var b strings.Builder
	b.WriteString("Qm")
	for range 44 {
		b.WriteByte(base58Alphabet[rand.IntN(len(base58Alphabet))]) //nolint: gosec
	}

	return b.String()
}
