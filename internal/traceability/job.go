package traceability

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// AnchorBatchArgs contains the arguments of the job that scores a new batch
// and writes it to the ledger.
type AnchorBatchArgs struct {
	// BatchID is the batch to anchor. It is the unique key of the job so a
	// batch is never anchored twice.
	BatchID string `json:"batchId" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the anchoring worker.
func (args AnchorBatchArgs) Kind() string { return "AnchorBatchJob" }

// InsertOpts returns the River options that control how the job is enqueued.
// A batch has at most one anchoring job in any non-final state.
func (args AnchorBatchArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// NewAnchorBatchArgs returns the job arguments for batchID.
func NewAnchorBatchArgs(batchID string, maxAttempts int) AnchorBatchArgs {
	return AnchorBatchArgs{BatchID: batchID, maxAttempts: maxAttempts}
}
