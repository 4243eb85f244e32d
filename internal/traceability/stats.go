package traceability

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"sattva/pkg/domain"
	"sattva/pkg/storage"
	"slices"
)

// Stats computes the dashboard counters. A non-nil createdBy restricts them to
// the batches of that user.
func (s *service) Stats(ctx context.Context, createdBy *domain.UserID) (*domain.DashboardStats, error) {
	batches, err := s.storage.Batches(ctx, storage.BatchFilter{CreatedBy: createdBy})
	if err != nil {
		return nil, fmt.Errorf("could not get batches: %w", err)
	}
	transfers, err := s.storage.Transfers(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("could not get transfers: %w", err)
	}
	pending, err := s.storage.LabReports(ctx, domain.LabReportPending)
	if err != nil {
		return nil, fmt.Errorf("could not get lab reports: %w", err)
	}

	owned := make(map[string]struct{}, len(batches))
	stats := domain.DashboardStats{TotalBatches: len(batches)}
	var scores []float64

	for _, b := range batches {
		owned[b.ID] = struct{}{}
		if b.Status != domain.BatchStatusDelivered {
			stats.ActiveBatches++
		}
		if !b.Status.Before(domain.BatchStatusVerified) {
			stats.VerifiedBatches++
		}
		if b.AIQualityScore > 0 {
			scores = append(scores, b.AIQualityScore)
		}
	}
	stats.QualityScore = average(scores)

	for _, t := range transfers {
		if _, ok := owned[t.BatchID]; ok {
			stats.TotalTransfers++
		}
	}
	for _, r := range pending {
		if _, ok := owned[r.BatchID]; ok {
			stats.PendingLabReports++
		}
	}

	return &stats, nil
}

// Analytics aggregates batches per harvest month and per herb.
func (s *service) Analytics(ctx context.Context) (*domain.Analytics, error) {
	batches, err := s.storage.Batches(ctx, storage.BatchFilter{})
	if err != nil {
		return nil, fmt.Errorf("could not get batches: %w", err)
	}

	monthScores := map[string][]float64{}
	monthCounts := map[string]int{}
	herbCounts := map[string]int{}

	for _, b := range batches {
		month := b.HarvestDate
		if len(month) >= len("2006-01") {
			month = month[:len("2006-01")]
		}
		monthCounts[month]++
		if b.AIQualityScore > 0 {
			monthScores[month] = append(monthScores[month], b.AIQualityScore)
		}
		herbCounts[b.HerbName]++
	}

	res := domain.Analytics{
		Monthly:          make([]domain.MonthlyBatches, 0, len(monthCounts)),
		HerbDistribution: make([]domain.HerbShare, 0, len(herbCounts)),
	}
	for month, n := range monthCounts {
		res.Monthly = append(res.Monthly, domain.MonthlyBatches{
			Month:        month,
			Batches:      n,
			QualityScore: average(monthScores[month]),
		})
	}
	slices.SortFunc(res.Monthly, func(a, b domain.MonthlyBatches) int { return cmp.Compare(a.Month, b.Month) })

	for herb, n := range herbCounts {
		res.HerbDistribution = append(res.HerbDistribution, domain.HerbShare{HerbName: herb, Batches: n})
	}
	slices.SortFunc(res.HerbDistribution, func(a, b domain.HerbShare) int {
		return cmp.Or(cmp.Compare(b.Batches, a.Batches), cmp.Compare(a.HerbName, b.HerbName))
	})

	return &res, nil
}

// average returns the mean rounded to one decimal, or 0 for no values.
func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return math.Round(sum/float64(len(values))*10) / 10
}
