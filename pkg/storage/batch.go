package storage

import (
	"context"
	"sattva/pkg/domain"
)

// BatchFilter narrows the batches returned by Batches. Zero fields do not filter.
type BatchFilter struct {
	// Status keeps only batches in this status.
	Status domain.BatchStatus
	// Search keeps batches whose herb name or id contains it, ignoring case.
	Search string
	// CreatedBy keeps batches created by this user.
	CreatedBy *domain.UserID
}

// BatchUpdates lists the batch fields to change. Only non-nil fields are updated.
type BatchUpdates struct {
	Status         *domain.BatchStatus
	AIQualityScore *float64
	BlockchainHash *string
}

// BatchStorage persists herb batches.
type BatchStorage interface {
	// StoreBatch inserts a batch and returns the stored row.
	StoreBatch(ctx context.Context, batch domain.Batch) (*domain.Batch, error)
	// BatchByID returns the batch with the given ID, or nil when not found.
	BatchByID(ctx context.Context, id string) (*domain.Batch, error)
	// LockBatch is BatchByID that also locks the row until the surrounding
	// transaction ends. Status changes must read the batch through it.
	LockBatch(ctx context.Context, id string) (*domain.Batch, error)
	// Batches returns the batches matching filter, newest first.
	Batches(ctx context.Context, filter BatchFilter) ([]domain.Batch, error)
	// UpdateBatch applies updates to a batch and returns the updated row, or nil
	// when the batch does not exist.
	UpdateBatch(ctx context.Context, id string, updates BatchUpdates) (*domain.Batch, error)
}
