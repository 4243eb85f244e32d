package stub_test

import (
	"context"
	"math/rand/v2"
	"sattva/pkg/ledger"
	"sattva/pkg/ledger/stub"
	"sattva/pkg/serrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

func newLedger(opts stub.Options) *stub.Ledger {
	opts.Rand = rand.New(rand.NewPCG(1, 2))
	opts.Now = func() time.Time { return fixedNow }

	return stub.New(opts)
}

func TestLedger_Write(t *testing.T) {
	l := newLedger(stub.Options{})

	for range 50 {
		r, err := l.Write(context.Background(), "b1", []byte(`{"herbName":"Tulsi"}`))
		require.NoError(t, err)
		require.Regexp(t, `^0x[0-9a-f]{64}$`, r.Hash)
		require.GreaterOrEqual(t, r.BlockNumber, uint64(15_000_000))
		require.Less(t, r.BlockNumber, uint64(16_000_000))
		require.Equal(t, fixedNow, r.Timestamp)
	}
}

func TestLedger_Write_HashesDiffer(t *testing.T) {
	l := newLedger(stub.Options{})

	a, err := l.Write(context.Background(), "b1", nil)
	require.NoError(t, err)
	b, err := l.Write(context.Background(), "b1", nil)
	require.NoError(t, err)
	require.NotEqual(t, a.Hash, b.Hash)
}

func TestLedger_Verify(t *testing.T) {
	l := newLedger(stub.Options{})

	receipt, err := l.Write(context.Background(), "b1", nil)
	require.NoError(t, err)

	for range 50 {
		v, err := l.Verify(context.Background(), receipt.Hash)
		require.NoError(t, err)
		require.True(t, v.Verified)
		require.GreaterOrEqual(t, v.Confirmations, 12)
		require.Less(t, v.Confirmations, 62)
	}
}

func TestLedger_Verify_Malformed(t *testing.T) {
	l := newLedger(stub.Options{})

	for _, h := range []string{"", "0x", "abc", "0x1234", "0x" + string(make([]byte, 64)), "0xzz00000000000000000000000000000000000000000000000000000000000000"} {
		_, err := l.Verify(context.Background(), h)
		require.ErrorIs(t, err, serrors.ErrBadRequest, "hash %q", h)
	}
}

func TestLedger_History(t *testing.T) {
	l := newLedger(stub.Options{})

	h, err := l.History(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, h, 4)

	types := make([]string, 0, len(h))
	for _, tx := range h {
		types = append(types, tx.Type)
		require.Regexp(t, `^0x[0-9a-f]{64}$`, tx.Hash)
	}
	require.Equal(t, []string{
		ledger.TxBatchCreated, ledger.TxQualityVerified, ledger.TxOwnershipTransfer, ledger.TxLabReportAdded,
	}, types)
	require.Equal(t, uint64(15234567), h[0].BlockNumber)
	require.Equal(t, time.Date(2025, 9, 25, 16, 0, 0, 0, time.UTC), h[3].Timestamp)
}

func TestLedger_DelayHonoursContext(t *testing.T) {
	l := newLedger(stub.Options{WriteDelay: stub.Delay{Base: time.Hour}})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := l.Write(ctx, "b1", nil)
	require.ErrorIs(t, err, serrors.ErrTimeout)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), time.Second)
}

func TestLedger_CancelledWithoutDelay(t *testing.T) {
	l := newLedger(stub.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.History(ctx, "b1")
	require.ErrorIs(t, err, context.Canceled)
}

func TestDefaultOptions(t *testing.T) {
	opts := stub.DefaultOptions()
	require.Equal(t, 1500*time.Millisecond, opts.WriteDelay.Base)
	require.Equal(t, time.Second, opts.WriteDelay.Jitter)
	require.Equal(t, 600*time.Millisecond, opts.HistoryDelay.Base)
}
