// Package quality defines the AI quality assessment of herb batches.
package quality

import (
	"context"
	"sattva/pkg/domain"
)

// Analyzer scores herb batches and predicts how long they keep.
//
//go:generate mockgen -package mockquality -source=interface.go -destination=mock/mockquality.go *
type Analyzer interface {
	// VerifyHerb scores a batch of the named herb.
	VerifyHerb(ctx context.Context, herbName, batchID string) (domain.QualityReport, error)
	// PredictShelfLife estimates the shelf life for a quality score.
	PredictShelfLife(ctx context.Context, herbName string, qualityScore float64) (domain.ShelfLife, error)
}
