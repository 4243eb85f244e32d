// Package stub is a quality.Analyzer that draws plausible scores at random.
package stub

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sattva/pkg/domain"
	"sattva/pkg/quality"
	"sattva/pkg/serrors"
	"sync"
	"time"
)

// StorageConditions is the advice attached to every shelf life prediction.
const StorageConditions = "Store in cool, dry place. Avoid direct sunlight. Keep sealed."

// premiumScore is the score from which a batch counts as premium.
const premiumScore = 90

// Delay is a base latency plus a uniformly drawn jitter in [0, Jitter).
type Delay struct {
	Base   time.Duration
	Jitter time.Duration
}

// Options tunes the stub. The zero value means no delays.
type Options struct {
	VerifyDelay    Delay
	ShelfLifeDelay Delay
	// Rand is the randomness source; nil uses a randomly seeded PCG.
	Rand *rand.Rand
}

// DefaultOptions returns the latencies of a real model call.
func DefaultOptions() Options {
	return Options{
		VerifyDelay:    Delay{Base: 2 * time.Second, Jitter: 1500 * time.Millisecond},
		ShelfLifeDelay: Delay{Base: 800 * time.Millisecond},
	}
}

// Analyzer is the random quality analyzer. It is safe for concurrent use.
type Analyzer struct {
	opts Options

	mu  sync.Mutex
	rnd *rand.Rand
}

var _ quality.Analyzer = (*Analyzer)(nil)

// New creates a stub analyzer.
func New(opts Options) *Analyzer {
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec
	}

	return &Analyzer{opts: opts, rnd: rnd}
}

// VerifyHerb draws a score in [85, 99) and derives grade, factors and a
// recommendation from it.
func (a *Analyzer) VerifyHerb(ctx context.Context, herbName, batchID string) (domain.QualityReport, error) {
	if err := a.wait(ctx, a.opts.VerifyDelay); err != nil {
		return domain.QualityReport{}, err
	}

	a.mu.Lock()
	score := 85 + a.rnd.Float64()*14
	confidence := 90 + a.rnd.Float64()*9
	visual := 88 + a.rnd.Float64()*11
	chemical := 85 + a.rnd.Float64()*14
	contamination := 92 + a.rnd.Float64()*7
	origin := 87 + a.rnd.Float64()*12
	a.mu.Unlock()

	originStatus := domain.FactorWarn
	if score > premiumScore {
		originStatus = domain.FactorPass
	}

	recommendation := fmt.Sprintf(
		"%s batch %s meets standard quality. Minor improvements suggested in storage conditions.", herbName, batchID)
	if score >= premiumScore {
		recommendation = fmt.Sprintf(
			"%s batch %s meets premium quality standards. Recommended for immediate processing.", herbName, batchID)
	}

	return domain.QualityReport{
		Score:      round1(score),
		Grade:      domain.Grade(score),
		Confidence: round1(confidence),
		Factors: []domain.QualityFactor{
			{Name: "Visual Analysis", Score: round1(visual), Status: domain.FactorPass},
			{Name: "Chemical Profile", Score: round1(chemical), Status: domain.FactorPass},
			{Name: "Contamination Check", Score: round1(contamination), Status: domain.FactorPass},
			{Name: "Origin Verification", Score: round1(origin), Status: originStatus},
		},
		Recommendation: recommendation,
	}, nil
}

// PredictShelfLife maps the score to 24, 18 or 12 months.
func (a *Analyzer) PredictShelfLife(ctx context.Context, _ string, qualityScore float64) (domain.ShelfLife, error) {
	if err := a.wait(ctx, a.opts.ShelfLifeDelay); err != nil {
		return domain.ShelfLife{}, err
	}

	return domain.ShelfLife{
		Months:     domain.ShelfLifeMonths(qualityScore),
		Conditions: StorageConditions,
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func (a *Analyzer) wait(ctx context.Context, d Delay) error {
	total := d.Base
	if d.Jitter > 0 {
		a.mu.Lock()
		total += time.Duration(a.rnd.Int64N(int64(d.Jitter)))
		a.mu.Unlock()
	}

	if total > 0 {
		t := time.NewTimer(total)
		defer t.Stop()

		select {
		case <-ctx.Done():
		case <-t.C:
		}
	}

	if err := ctx.Err(); err != nil {
		return serrors.Wrap(serrors.ErrTimeout, err, "quality analysis cancelled")
	}

	return nil
}
