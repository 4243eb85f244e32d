package traceability

import (
	"context"
	"fmt"
	"sattva/pkg/domain"

	"golang.org/x/sync/errgroup"
)

// Verify returns the provenance of a batch. The records hanging off the batch
// are loaded concurrently.
func (s *service) Verify(ctx context.Context, batchID string) (*Verification, error) {
	batch, err := s.batch(ctx, batchID)
	if err != nil {
		return nil, err
	}

	res := Verification{Batch: *batch}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		events, err := s.storage.BatchEvents(gctx, batch.ID)
		if err != nil {
			return fmt.Errorf("could not get events: %w", err)
		}
		res.Events = events

		return nil
	})
	g.Go(func() error {
		lab, err := s.storage.LabReportByBatch(gctx, batch.ID)
		if err != nil {
			return fmt.Errorf("could not get lab report: %w", err)
		}
		res.Lab = lab

		return nil
	})
	g.Go(func() error {
		logs, err := s.storage.TransportLogs(gctx, batch.ID)
		if err != nil {
			return fmt.Errorf("could not get transport logs: %w", err)
		}
		res.TransportLogs = logs

		return nil
	})
	g.Go(func() error {
		farm, err := s.storage.FarmByID(gctx, batch.FarmID)
		if err != nil {
			return fmt.Errorf("could not get farm: %w", err)
		}
		res.Farm = farm

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("could not verify batch: %w", err)
	}

	if res.Events == nil {
		res.Events = []domain.SupplyChainEvent{}
	}
	if res.TransportLogs == nil {
		res.TransportLogs = []domain.TransportLog{}
	}
	res.Verified = true
	res.VerifiedAt = s.now().UTC()

	return &res, nil
}
