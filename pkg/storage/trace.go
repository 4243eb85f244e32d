package storage

import (
	"context"
	"sattva/pkg/domain"
)

// TraceStorage persists the records that make up the history of a batch:
// events, lab reports, transport logs, transfers, QR records and farms.
// Lookups by ID return nil when nothing matches.
type TraceStorage interface {
	// StoreEvents inserts supply chain events.
	StoreEvents(ctx context.Context, events []domain.SupplyChainEvent) error
	// BatchEvents returns the events of a batch, oldest first.
	BatchEvents(ctx context.Context, batchID string) ([]domain.SupplyChainEvent, error)

	// StoreLabReport inserts a lab report and returns the stored row.
	StoreLabReport(ctx context.Context, report domain.LabReport) (*domain.LabReport, error)
	// LabReportByBatch returns the latest lab report of a batch.
	LabReportByBatch(ctx context.Context, batchID string) (*domain.LabReport, error)
	// LabReports returns all lab reports, newest first, optionally filtered by status.
	LabReports(ctx context.Context, status domain.LabReportStatus) ([]domain.LabReport, error)

	// TransportLogs returns the sensor readings of a batch, oldest first.
	TransportLogs(ctx context.Context, batchID string) ([]domain.TransportLog, error)
	// FarmByID returns a farm.
	FarmByID(ctx context.Context, id string) (*domain.Farm, error)

	// StoreTransfer inserts a custody transfer and returns the stored row.
	StoreTransfer(ctx context.Context, transfer domain.Transfer) (*domain.Transfer, error)
	// Transfers returns transfers, newest first. An empty batchID returns all of them.
	Transfers(ctx context.Context, batchID string) ([]domain.Transfer, error)

	// StoreQRRecord inserts a QR record. A batch has at most one; a second
	// insert returns ErrDuplicate.
	StoreQRRecord(ctx context.Context, record domain.QRRecord) (*domain.QRRecord, error)
	// QRRecordByBatch returns the QR record of a batch.
	QRRecordByBatch(ctx context.Context, batchID string) (*domain.QRRecord, error)
	// QRRecords returns every QR record, newest first.
	QRRecords(ctx context.Context) ([]domain.QRRecord, error)
}
