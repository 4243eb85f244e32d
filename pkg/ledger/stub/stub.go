// Package stub is a Ledger that never leaves the process. It returns
// plausible receipts after an artificial delay so clients can exercise the
// full flow without a chain.
package stub

import (
	"context"
	"encoding/binary"
	"math/rand/v2"
	"sattva/pkg/ledger"
	"sattva/pkg/serrors"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	firstBlock  = 15_000_000
	blockSpread = 1_000_000

	minConfirmations    = 12
	confirmationsSpread = 50
)

// Delay is a base latency plus a uniformly drawn jitter in [0, Jitter).
type Delay struct {
	Base   time.Duration
	Jitter time.Duration
}

// Options tunes the stub. The zero value means no delays.
type Options struct {
	WriteDelay   Delay
	VerifyDelay  Delay
	HistoryDelay Delay
	// Rand is the randomness source; nil uses a randomly seeded PCG.
	Rand *rand.Rand
	// Now returns the current time; nil uses time.Now.
	Now func() time.Time
}

// DefaultOptions returns the latencies of a slow public chain.
func DefaultOptions() Options {
	return Options{
		WriteDelay:   Delay{Base: 1500 * time.Millisecond, Jitter: time.Second},
		VerifyDelay:  Delay{Base: 800 * time.Millisecond, Jitter: 500 * time.Millisecond},
		HistoryDelay: Delay{Base: 600 * time.Millisecond},
	}
}

// Ledger is the in-process ledger stub. It is safe for concurrent use.
type Ledger struct {
	opts Options

	mu  sync.Mutex
	rnd *rand.Rand
}

var _ ledger.Ledger = (*Ledger)(nil)

// New creates a stub ledger.
func New(opts Options) *Ledger {
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Ledger{opts: opts, rnd: rnd}
}

// Write returns a receipt whose hash is keccak256 over the batch id, the data
// and a random nonce.
func (l *Ledger) Write(ctx context.Context, batchID string, data []byte) (ledger.WriteReceipt, error) {
	if err := l.wait(ctx, l.opts.WriteDelay); err != nil {
		return ledger.WriteReceipt{}, err
	}

	nonce := make([]byte, 8)
	binary.BigEndian.PutUint64(nonce, l.uint64())
	hash := crypto.Keccak256Hash([]byte(batchID), data, nonce)

	return ledger.WriteReceipt{
		Hash:        hash.Hex(),
		Timestamp:   l.opts.Now().UTC(),
		BlockNumber: firstBlock + uint64(l.intN(blockSpread)), //nolint: gosec
	}, nil
}

// Verify reports every well formed hash as verified.
func (l *Ledger) Verify(ctx context.Context, hash string) (ledger.Verification, error) {
	b, err := hexutil.Decode(hash)
	if err != nil || len(b) != common.HashLength {
		return ledger.Verification{}, serrors.With(serrors.ErrBadRequest, "Invalid transaction hash")
	}

	if err := l.wait(ctx, l.opts.VerifyDelay); err != nil {
		return ledger.Verification{}, err
	}

	return ledger.Verification{
		Verified:      true,
		Confirmations: minConfirmations + l.intN(confirmationsSpread),
		Timestamp:     l.opts.Now().UTC(),
	}, nil
}

// History returns the fixed demo history of a batch with fresh hashes.
func (l *Ledger) History(ctx context.Context, batchID string) ([]ledger.Transaction, error) {
	if err := l.wait(ctx, l.opts.HistoryDelay); err != nil {
		return nil, err
	}

	history := []ledger.Transaction{
		{Type: ledger.TxBatchCreated, Timestamp: time.Date(2025, 9, 15, 6, 0, 0, 0, time.UTC), BlockNumber: 15234567},
		{Type: ledger.TxQualityVerified, Timestamp: time.Date(2025, 9, 16, 10, 0, 0, 0, time.UTC), BlockNumber: 15234890},
		{Type: ledger.TxOwnershipTransfer, Timestamp: time.Date(2025, 9, 20, 14, 0, 0, 0, time.UTC), BlockNumber: 15235123},
		{Type: ledger.TxLabReportAdded, Timestamp: time.Date(2025, 9, 25, 16, 0, 0, 0, time.UTC), BlockNumber: 15236001},
	}
	for i := range history {
		history[i].Hash = l.randomHash().Hex()
	}

	return history, nil
}

func (l *Ledger) randomHash() common.Hash {
	var h common.Hash
	for i := 0; i < common.HashLength; i += 8 {
		binary.BigEndian.PutUint64(h[i:], l.uint64())
	}

	return h
}

func (l *Ledger) wait(ctx context.Context, d Delay) error {
	total := d.Base
	if d.Jitter > 0 {
		total += time.Duration(l.int64N(int64(d.Jitter)))
	}
	if total <= 0 {
		if err := ctx.Err(); err != nil {
			return serrors.Wrap(serrors.ErrTimeout, err, "ledger call cancelled")
		}

		return nil
	}

	t := time.NewTimer(total)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return serrors.Wrap(serrors.ErrTimeout, ctx.Err(), "ledger call cancelled")
	case <-t.C:
		return nil
	}
}

func (l *Ledger) uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rnd.Uint64()
}

func (l *Ledger) intN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rnd.IntN(n)
}

func (l *Ledger) int64N(n int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.rnd.Int64N(n)
}
