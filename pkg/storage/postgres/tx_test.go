package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"sattva/pkg/domain"
	"sattva/pkg/storage"
	"sattva/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

// newHarvest returns a fresh batch on the demo farm and its harvest event.
func newHarvest() (domain.Batch, domain.SupplyChainEvent) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	b := domain.Batch{
		ID:          domain.NewID(domain.PrefixBatch),
		HerbName:    "Brahmi",
		Quantity:    12,
		Unit:        domain.DefaultBatchUnit,
		HarvestDate: "2025-10-19",
		Status:      domain.BatchStatusHarvested,
		CreatedBy:   domain.DemoFarmerID,
		FarmID:      domain.DefaultFarmID,
		CreatedAt:   now,
	}

	return b, domain.SupplyChainEvent{
		ID:          domain.NewID(domain.PrefixEvent),
		BatchID:     b.ID,
		Type:        domain.EventHarvest,
		Title:       "Harvested",
		Description: "Brahmi harvested at Green Valley Farm",
		Timestamp:   now,
		Actor:       "Rajesh Kumar",
	}
}

// storeHarvest writes a batch and its harvest event through s.
func storeHarvest(ctx context.Context, s storage.AllStorage, b domain.Batch, e domain.SupplyChainEvent) error {
	if _, err := s.StoreBatch(ctx, b); err != nil {
		return err //nolint: wrapcheck
	}

	return s.StoreEvents(ctx, []domain.SupplyChainEvent{e}) //nolint: wrapcheck
}

func requireHarvestStored(t *testing.T, pg *postgres.PgSQL, batchID string, stored bool) {
	t.Helper()
	ctx := context.Background()

	b, err := pg.BatchByID(ctx, batchID)
	require.NoError(t, err)
	events, err := pg.BatchEvents(ctx, batchID)
	require.NoError(t, err)

	if !stored {
		require.Nil(t, b)
		require.Empty(t, events)

		return
	}
	require.NotNil(t, b)
	require.Len(t, events, 1)
	require.Equal(t, domain.EventHarvest, events[0].Type)
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// seeded rows are visible inside the tx
	b, err := txStorage.BatchByID(ctx, "b1")
	require.NoError(t, err)
	require.Equal(t, "Ashwagandha", b.HerbName)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)

	b, e := newHarvest()
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, storeHarvest(ctx, txStorage, b, e))

	// not visible outside the tx before commit
	requireHarvestStored(t, pg, b.ID, false)

	require.NoError(t, txStorage.Commit())
	requireHarvestStored(t, pg, b.ID, true)
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	b, e := newHarvest()
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, storeHarvest(ctx, txStorage, b, e))
	require.NoError(t, txStorage.Rollback())

	requireHarvestStored(t, pg, b.ID, false)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	committed, committedEvent := newHarvest()
	require.NoError(t, pg.WithTx(ctx, func(s storage.AllStorage) error {
		return storeHarvest(ctx, s, committed, committedEvent)
	}))
	requireHarvestStored(t, pg, committed.ID, true)

	// the event insert fails on the duplicate id, taking the batch with it
	rolledBack, _ := newHarvest()
	dupEvent := committedEvent
	dupEvent.BatchID = rolledBack.ID
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		return storeHarvest(ctx, s, rolledBack, dupEvent)
	})
	require.Error(t, err)
	requireHarvestStored(t, pg, rolledBack.ID, false)

	boom := errors.New("boom")
	b, e := newHarvest()
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		require.NoError(t, storeHarvest(ctx, s, b, e))

		return boom
	})
	require.ErrorIs(t, err, boom)
	requireHarvestStored(t, pg, b.ID, false)
}

func TestPgSQL_LockBatch_SerializesStatusChanges(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	b, e := newHarvest()
	require.NoError(t, storeHarvest(ctx, pg, b, e))

	first, err := pg.Begin(ctx)
	require.NoError(t, err)
	locked, err := first.LockBatch(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, domain.BatchStatusHarvested, locked.Status)

	// a second locker waits for the first tx
	second, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = second.Rollback() }()

	type lockResult struct {
		batch *domain.Batch
		err   error
	}
	done := make(chan lockResult, 1)
	go func() {
		got, err := second.LockBatch(ctx, b.ID)
		done <- lockResult{got, err}
	}()

	select {
	case <-done:
		t.Fatal("LockBatch returned while the row was locked")
	case <-time.After(300 * time.Millisecond):
	}

	transit := domain.BatchStatusInTransit
	_, err = first.UpdateBatch(ctx, b.ID, storage.BatchUpdates{Status: &transit})
	require.NoError(t, err)
	require.NoError(t, first.Commit())

	res := <-done
	require.NoError(t, res.err)
	require.Equal(t, domain.BatchStatusInTransit, res.batch.Status, "the waiter sees the committed status")

	missing, err := pg.LockBatch(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, missing)
}
