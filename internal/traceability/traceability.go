package traceability

import (
	"context"
	"fmt"
	"sattva/internal/config"
	"sattva/pkg/domain"
	"sattva/pkg/logger"
	"sattva/pkg/metrics"
	"sattva/pkg/serrors"
	"sattva/pkg/storage"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// StatusAll lists batches in every status.
	StatusAll = "all"

	harvestDateLayout = "2006-01-02"
	unknownActor      = "Unknown"
)

// Options configure the traceability service.
type Options struct {
	// PublicBaseURL prefixes the verification links encoded in QR codes.
	PublicBaseURL string
	// MaxAttempts is the maximum number of attempts of an anchoring job.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PublicBaseURL: cfg.HTTP.PublicBaseURL,
		MaxAttempts:   cfg.Worker.MaxAttempts,
	}
}

type service struct {
	options Options
	storage storage.Storage
	metrics *metrics.Recorder
	now     func() time.Time
}

// Batches lists the batches matching query, newest first. No batch is ever in
// an unknown status, so filtering by one matches nothing.
func (s *service) Batches(ctx context.Context, query BatchQuery) ([]domain.Batch, error) {
	filter := storage.BatchFilter{
		Search:    strings.TrimSpace(query.Search),
		CreatedBy: query.CreatedBy,
	}

	if query.Status != "" && query.Status != StatusAll {
		status := domain.BatchStatus(query.Status)
		if !status.Valid() {
			logger.Debug(ctx, "batches filtered by unknown status", zap.String("status", query.Status))

			return []domain.Batch{}, nil
		}
		filter.Status = status
	}

	batches, err := s.storage.Batches(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not get batches: %w", err)
	}

	return batches, nil
}

// Batch returns a single batch.
func (s *service) Batch(ctx context.Context, id string) (*domain.Batch, error) {
	return s.batch(ctx, id)
}

// CreateBatch registers a harvested batch. The batch, its harvest event and
// the anchoring job are stored in one transaction.
func (s *service) CreateBatch(ctx context.Context, actor *domain.UserID, input NewBatch) (*domain.Batch, error) {
	input.HerbName = strings.TrimSpace(input.HerbName)
	if input.HerbName == "" || input.Quantity <= 0 || strings.TrimSpace(input.HarvestDate) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "Missing required fields")
	}

	harvestDate, err := parseHarvestDate(input.HarvestDate)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "Invalid harvest date")
	}

	createdBy := domain.DemoFarmerID
	if actor != nil {
		createdBy = *actor
	}

	batch := domain.Batch{
		ID:          domain.NewID(domain.PrefixBatch),
		HerbName:    input.HerbName,
		Quantity:    input.Quantity,
		Unit:        valueOr(strings.TrimSpace(input.Unit), domain.DefaultBatchUnit),
		HarvestDate: harvestDate,
		Status:      domain.BatchStatusHarvested,
		CreatedBy:   createdBy,
		FarmID:      valueOr(strings.TrimSpace(input.FarmID), domain.DefaultFarmID),
		ImageURL:    input.ImageURL,
		CreatedAt:   s.now(),
	}

	var stored *domain.Batch
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		farm, err := tx.FarmByID(ctx, batch.FarmID)
		if err != nil {
			return fmt.Errorf("could not get farm: %w", err)
		}
		if farm == nil {
			return serrors.With(serrors.ErrBadRequest, "Unknown farm %q", batch.FarmID)
		}

		stored, err = tx.StoreBatch(ctx, batch)
		if err != nil {
			return fmt.Errorf("could not store batch: %w", err)
		}

		if err := tx.StoreEvents(ctx, []domain.SupplyChainEvent{{
			ID:          domain.NewID(domain.PrefixEvent),
			BatchID:     stored.ID,
			Type:        domain.EventHarvest,
			Title:       "Harvested",
			Description: fmt.Sprintf("%s harvested at %s", stored.HerbName, farm.FarmName),
			Timestamp:   stored.CreatedAt,
			Actor:       s.actorName(ctx, tx, createdBy),
			Verified:    false,
		}}); err != nil {
			return fmt.Errorf("could not store harvest event: %w", err)
		}

		if _, err := tx.AddJob(ctx, NewAnchorBatchArgs(stored.ID, s.options.MaxAttempts), nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create batch: %w", err)
	}

	s.metrics.BatchCreated(ctx, stored.HerbName)
	logger.Info(ctx, "batch created", zap.String("batchID", stored.ID), zap.String("herb", stored.HerbName))

	return stored, nil
}

// batch loads a batch or returns a not-found error.
func (s *service) batch(ctx context.Context, id string) (*domain.Batch, error) {
	if id == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "Batch ID is required")
	}

	batch, err := s.storage.BatchByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get batch: %w", err)
	}
	if batch == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Batch not found")
	}

	return batch, nil
}

// actorName resolves the display name recorded on events. Lookup failures
// only degrade the event text.
func (s *service) actorName(ctx context.Context, st storage.UserStorage, id domain.UserID) string {
	user, err := st.UserByID(ctx, id)
	if err != nil {
		logger.Warn(ctx, "could not resolve actor name", zap.Stringer("userID", id), zap.Error(err))

		return unknownActor
	}
	if user == nil {
		return unknownActor
	}

	return user.Name
}

// parseHarvestDate accepts a calendar date or an RFC3339 timestamp and
// returns the calendar date.
func parseHarvestDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(harvestDateLayout, s); err == nil {
		return t.Format(harvestDateLayout), nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "", fmt.Errorf("harvest date must be YYYY-MM-DD or RFC3339: %w", err)
	}

	return t.Format(harvestDateLayout), nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}

	return v
}

// New creates a new traceability Service backed by the provided storage. A nil
// recorder disables metrics.
func New(storage storage.Storage, recorder *metrics.Recorder, options Options) Service {
	return &service{
		options: options,
		storage: storage,
		metrics: recorder,
		now:     time.Now,
	}
}
