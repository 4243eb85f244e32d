// Package ledger defines the contract of the tamper-evident ledger batches are
// anchored on, and the receipts it hands back.
package ledger

import (
	"context"
	"time"
)

// Transaction types reported by History.
const (
	TxBatchCreated      = "BATCH_CREATED"
	TxQualityVerified   = "QUALITY_VERIFIED"
	TxOwnershipTransfer = "OWNERSHIP_TRANSFER"
	TxLabReportAdded    = "LAB_REPORT_ADDED"
)

// WriteReceipt is returned once a record is written to the ledger.
type WriteReceipt struct {
	Hash        string    `json:"hash"`
	Timestamp   time.Time `json:"timestamp"`
	BlockNumber uint64    `json:"blockNumber"`
}

// Verification is the on-chain status of a transaction hash.
type Verification struct {
	Verified      bool      `json:"verified"`
	Confirmations int       `json:"confirmations"`
	Timestamp     time.Time `json:"timestamp"`
}

// Transaction is one entry of a batch history.
type Transaction struct {
	Hash        string    `json:"hash"`
	Type        string    `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	BlockNumber uint64    `json:"blockNumber"`
}

// Ledger writes batch records and answers questions about them.
//
//go:generate mockgen -package mockledger -source=interface.go -destination=mock/mockledger.go *
type Ledger interface {
	// Write anchors data for batchID. data is the JSON document being anchored
	// and may be empty.
	Write(ctx context.Context, batchID string, data []byte) (WriteReceipt, error)
	// Verify checks a transaction hash. A hash that is not 32 bytes of 0x
	// prefixed hex is a BAD_REQUEST.
	Verify(ctx context.Context, hash string) (Verification, error)
	// History returns the transactions recorded for batchID, oldest first.
	History(ctx context.Context, batchID string) ([]Transaction, error)
}
