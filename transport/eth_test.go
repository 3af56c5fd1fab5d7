package transport_test

import (
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/transport"
)

// ethNode serves the handful of eth_ methods a write goes through. Its
// pending nonce never moves, the way a node behaves before it sees our txs.
type ethNode struct {
	mu      sync.Mutex
	pending uint64
	reject  int
	nonces  []uint64
}

func (n *ethNode) ChainId() *hexutil.Big {
	return (*hexutil.Big)(big.NewInt(31337))
}

func (n *ethNode) GetTransactionCount(addr common.Address, block string) hexutil.Uint64 {
	return hexutil.Uint64(n.pending)
}

func (n *ethNode) GasPrice() *hexutil.Big {
	return (*hexutil.Big)(big.NewInt(1e9))
}

func (n *ethNode) GetBlockByNumber(number string, full bool) *types.Header {
	return &types.Header{Number: big.NewInt(1), Difficulty: big.NewInt(0)}
}

func (n *ethNode) SendRawTransaction(data hexutil.Bytes) (common.Hash, error) {
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(data); err != nil {
		return common.Hash{}, err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.nonces = append(n.nonces, tx.Nonce())
	if n.reject > 0 {
		n.reject--
		return common.Hash{}, errors.New("replacement transaction underpriced")
	}
	return tx.Hash(), nil
}

func dialNode(t *testing.T, node *ethNode) *transport.Eth {
	t.Helper()
	srv := rpc.NewServer()
	require.NoError(t, srv.RegisterName("eth", node))
	t.Cleanup(srv.Stop)
	e, err := transport.Dial(transport.Config{Source: rpc.DialInProc(srv), PrivateKey: devKey})
	require.NoError(t, err)
	return e
}

func approve(t *testing.T, e *transport.Eth) error {
	t.Helper()
	_, err := e.Write(
		t.Context(),
		common.HexToAddress("0x00000000000000000000000000000000000000cc"),
		onyxcommon.GetERC20ABI(),
		"approve",
		[]interface{}{common.HexToAddress("0x00000000000000000000000000000000000000dd"), big.NewInt(1)},
		transport.CallOpts{GasLimit: 100000},
	)
	return err
}

func TestRejectedBroadcastGivesNonceBack(t *testing.T) {
	node := &ethNode{pending: 7, reject: 1}
	e := dialNode(t, node)

	assert.Error(t, approve(t, e))
	require.NoError(t, approve(t, e))
	require.NoError(t, approve(t, e))

	assert.Equal(t, []uint64{7, 7, 8}, node.nonces)
}

func TestConsecutiveWritesUseIncreasingNonces(t *testing.T) {
	node := &ethNode{pending: 3}
	e := dialNode(t, node)

	for i := 0; i < 3; i++ {
		require.NoError(t, approve(t, e))
	}
	assert.Equal(t, []uint64{3, 4, 5}, node.nonces)
}
