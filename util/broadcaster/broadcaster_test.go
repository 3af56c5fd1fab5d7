package broadcaster_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/onyxkit/util/broadcaster"
)

type fakeSender struct {
	mu   sync.Mutex
	err  error
	sent []string
}

func (f *fakeSender) CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, args[0].(string))
	return f.err
}

func signedLikeTx() *types.Transaction {
	to := common.HexToAddress("0x1")
	return types.NewTx(&types.LegacyTx{Nonce: 1, To: &to, Gas: 21000, GasPrice: big.NewInt(1), Value: big.NewInt(1)})
}

func TestBroadcastSucceedsWhenOneNodeAccepts(t *testing.T) {
	good := &fakeSender{}
	bad := &fakeSender{err: errors.New("nonce too low")}
	b := broadcaster.NewBroadcasterFromClients(map[string]broadcaster.RawTxSender{"good": good, "bad": bad}, nil)

	tx := signedLikeTx()
	hash, err := b.BroadcastTx(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, tx.Hash(), hash)
	assert.Len(t, good.sent, 1)
	assert.Len(t, bad.sent, 1)
}

func TestBroadcastFailsWhenEveryNodeRejects(t *testing.T) {
	b := broadcaster.NewBroadcasterFromClients(map[string]broadcaster.RawTxSender{
		"a": &fakeSender{err: errors.New("underpriced")},
		"b": &fakeSender{err: errors.New("underpriced")},
	}, nil)

	_, err := b.BroadcastTx(context.Background(), signedLikeTx())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "couldn't broadcast")
	assert.Contains(t, err.Error(), "a: underpriced")
}

func TestBroadcastWithoutNodes(t *testing.T) {
	b := broadcaster.NewBroadcasterFromClients(map[string]broadcaster.RawTxSender{}, nil)
	_, err := b.BroadcastTx(context.Background(), signedLikeTx())
	assert.Error(t, err)
}
