// Package traceability implements the farmer and manufacturer side of the
// supply chain: batches, custody transfers, lab reports, QR records and the
// consumer facing verification of a batch.
package traceability

import (
	"context"
	"sattva/pkg/domain"
	"time"
)

// BatchQuery filters the batch listing. Status "" or "all" does not filter.
type BatchQuery struct {
	Status    string
	Search    string
	CreatedBy *domain.UserID
}

// NewBatch holds the fields of a batch being registered.
type NewBatch struct {
	HerbName    string  `json:"herbName"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit,omitempty"`
	HarvestDate string  `json:"harvestDate"`
	FarmID      string  `json:"farmId,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// Verification is the full provenance of a batch shown to a consumer.
type Verification struct {
	Batch         domain.Batch              `json:"batch"`
	Events        []domain.SupplyChainEvent `json:"events"`
	Lab           *domain.LabReport         `json:"lab,omitempty"`
	TransportLogs []domain.TransportLog     `json:"transportLogs"`
	Farm          *domain.Farm              `json:"farm,omitempty"`
	Verified      bool                      `json:"verified"`
	VerifiedAt    time.Time                 `json:"verifiedAt"`
}

//go:generate mockgen -package mocktraceability -source=interface.go -destination=mock/mocktraceability.go *
type Service interface {
	Batches(ctx context.Context, query BatchQuery) ([]domain.Batch, error)
	Batch(ctx context.Context, id string) (*domain.Batch, error)
	CreateBatch(ctx context.Context, actor *domain.UserID, input NewBatch) (*domain.Batch, error)
	Verify(ctx context.Context, batchID string) (*Verification, error)
	Transfers(ctx context.Context, batchID string) ([]domain.Transfer, error)
	Transfer(ctx context.Context, actor domain.UserID, batchID string, to domain.UserID) (*domain.Transfer, error)
	LabReports(ctx context.Context, status string) ([]domain.LabReport, error)
	UploadLabReport(ctx context.Context, actor domain.UserID, batchID string, results domain.LabResults) (*domain.LabReport, error)
	GenerateQR(ctx context.Context, actor domain.UserID, batchID string) (*domain.QRRecord, error)
	QRRecord(ctx context.Context, batchID string) (*domain.QRRecord, error)
	QRRecords(ctx context.Context) ([]domain.QRRecord, error)
	Stats(ctx context.Context, createdBy *domain.UserID) (*domain.DashboardStats, error)
	Analytics(ctx context.Context) (*domain.Analytics, error)
}
