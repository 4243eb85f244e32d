package postgres

import (
	"context"
	"fmt"
	"sattva/pkg/domain"
	"sattva/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

func (p *PgSQL) StoreBatch(ctx context.Context, batch domain.Batch) (*domain.Batch, error) {
	var row PgBatch
	row.FromDomain(batch)

	var stored PgBatch
	if _, err := p.Builder.Insert(batchesTable).
		Rows(row).
		Returning(&PgBatch{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store batch into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) BatchByID(ctx context.Context, id string) (*domain.Batch, error) {
	return p.batchByID(ctx, p.Builder.From(batchesTable), id)
}

// LockBatch selects the batch FOR UPDATE. Outside a transaction the lock is
// released as soon as the statement completes.
func (p *PgSQL) LockBatch(ctx context.Context, id string) (*domain.Batch, error) {
	return p.batchByID(ctx, p.Builder.From(batchesTable).ForUpdate(exp.Wait), id)
}

func (p *PgSQL) batchByID(ctx context.Context, ds *goqu.SelectDataset, id string) (*domain.Batch, error) {
	var row PgBatch
	found, err := ds.Where(goqu.I("id").Eq(id)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch batch by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Batches returns the batches matching filter ordered by created_at DESC, id DESC.
func (p *PgSQL) Batches(ctx context.Context, filter storage.BatchFilter) ([]domain.Batch, error) {
	var w []goqu.Expression
	if filter.Status != "" {
		w = append(w, goqu.I("status").Eq(string(filter.Status)))
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		w = append(w, goqu.Or(
			goqu.I("herb_name").ILike(pattern),
			goqu.I("id").ILike(pattern),
		))
	}
	if filter.CreatedBy != nil {
		w = append(w, goqu.I("created_by").Eq(uuid.UUID(*filter.CreatedBy)))
	}

	var rows []PgBatch
	if err := p.Builder.From(batchesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch batches from pg: %w", err)
	}

	out := make([]domain.Batch, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) UpdateBatch(ctx context.Context, id string, updates storage.BatchUpdates) (*domain.Batch, error) {
	rec := goqu.Record{}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	if updates.AIQualityScore != nil {
		rec["ai_quality_score"] = *updates.AIQualityScore
	}
	if updates.BlockchainHash != nil {
		rec["blockchain_hash"] = *updates.BlockchainHash
	}
	if len(rec) == 0 {
		return p.BatchByID(ctx, id)
	}

	var row PgBatch
	found, err := p.Builder.Update(batchesTable).
		Set(rec).
		Where(goqu.I("id").Eq(id)).
		Returning(&PgBatch{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update batch in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
