package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sattva/pkg/logger"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

// AddJob enqueues a River job. Inside a transaction it uses InsertTx, so the
// job only becomes visible to workers once the transaction commits: a batch
// created by CreateBatch and its anchoring job are stored together or not at
// all. Outside a transaction the job is inserted right away.
//
// Options returned by the args' InsertOpts apply when opts is nil. AddJob
// reports false when River skipped the job as a duplicate of a unique job.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)
	switch db := p.DB.(type) {
	case *sql.Tx:
		var client *river.Client[*sql.Tx]
		if client, err = insertClient(nil); err != nil {
			return false, err
		}
		res, err = client.InsertTx(ctx, db, args, opts)
	case *sql.DB:
		var client *river.Client[*sql.Tx]
		if client, err = insertClient(db); err != nil {
			return false, err
		}
		res, err = client.Insert(ctx, args, opts)
	default:
		return false, fmt.Errorf("could not insert job: unsupported executor %T", p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	if res.UniqueSkippedAsDuplicate {
		logger.Debug(ctx, "job already queued", zap.String("kind", args.Kind()), zap.Int64("jobID", res.Job.ID))

		return false, nil
	}
	logger.Debug(ctx, "job queued", zap.String("kind", args.Kind()), zap.Int64("jobID", res.Job.ID))

	return true, nil
}

// insertClient returns an insert-only River client. A nil db is enough for
// InsertTx, which runs on the transaction it is given.
func insertClient(db *sql.DB) (*river.Client[*sql.Tx], error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return client, nil
}
