package monitor_test

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/util/monitor"
)

// scriptedReader replays infos in order and then keeps returning the last.
type scriptedReader struct {
	mu    sync.Mutex
	infos []onyxcommon.TxInfo
	calls int
}

func (s *scriptedReader) TxInfoFromHash(ctx context.Context, hash common.Hash) (onyxcommon.TxInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	if i >= len(s.infos) {
		i = len(s.infos) - 1
	}
	s.calls++
	return s.infos[i], nil
}

func receiptAt(block int64) *types.Receipt {
	return &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(block)}
}

func TestBlockingWaitForConfirmations(t *testing.T) {
	r := &scriptedReader{infos: []onyxcommon.TxInfo{
		{Status: onyxcommon.TxStatusNotFound},
		{Status: onyxcommon.TxStatusPending},
		{Status: onyxcommon.TxStatusDone, Receipt: receiptAt(5), Confirmations: 1},
		{Status: onyxcommon.TxStatusDone, Receipt: receiptAt(5), Confirmations: 2},
	}}
	m := monitor.NewGenericTxMonitor(r, nil).WithInterval(time.Millisecond, time.Minute)

	info, err := m.BlockingWait(context.Background(), common.HexToHash("0x1"), 2)
	require.NoError(t, err)
	assert.Equal(t, onyxcommon.TxStatusDone, info.Status)
	assert.Equal(t, uint64(2), info.Confirmations)
	assert.Equal(t, 4, r.calls)
}

func TestBlockingWaitReportsLostTx(t *testing.T) {
	r := &scriptedReader{infos: []onyxcommon.TxInfo{{Status: onyxcommon.TxStatusNotFound}}}
	m := monitor.NewGenericTxMonitor(r, nil).WithInterval(time.Millisecond, 10*time.Millisecond)

	info, err := m.BlockingWait(context.Background(), common.HexToHash("0x1"), 1)
	require.Error(t, err)
	assert.Equal(t, onyxcommon.TxStatusLost, info.Status)
}

func TestBlockingWaitStopsWithContext(t *testing.T) {
	r := &scriptedReader{infos: []onyxcommon.TxInfo{{Status: onyxcommon.TxStatusPending}}}
	m := monitor.NewGenericTxMonitor(r, nil).WithInterval(time.Millisecond, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := m.BlockingWait(ctx, common.HexToHash("0x1"), 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
