package broadcaster

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	onyxcommon "github.com/tranvictor/onyxkit/common"
)

const TIMEOUT time.Duration = 4 * time.Second

// RawTxSender is the one RPC call the broadcaster needs. *rpc.Client
// satisfies it.
type RawTxSender interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}

// Broadcaster takes a signed tx and try to broadcast it to all
// nodes that it manages as fast as possible. A tx counts as broadcasted
// as soon as one node accepts it.
type Broadcaster struct {
	clients map[string]RawTxSender
	logger  *zap.Logger
}

func NewGenericBroadcaster(nodes map[string]string, logger *zap.Logger) *Broadcaster {
	if logger == nil {
		logger = zap.NewNop()
	}
	clients := map[string]RawTxSender{}
	for name, url := range nodes {
		client, err := rpc.Dial(url)
		if err != nil {
			logger.Warn("couldn't connect to node", zap.String("node", name), zap.Error(err))
			continue
		}
		clients[name] = client
	}
	return NewBroadcasterFromClients(clients, logger)
}

func NewBroadcasterFromClients(clients map[string]RawTxSender, logger *zap.Logger) *Broadcaster {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Broadcaster{
		clients: clients,
		logger:  logger,
	}
}

func (b *Broadcaster) NumNodes() int {
	return len(b.clients)
}

func (b *Broadcaster) BroadcastTx(ctx context.Context, tx *types.Transaction) (common.Hash, error) {
	data, err := tx.MarshalBinary()
	if err != nil {
		return common.Hash{}, fmt.Errorf("tx is not valid, couldn't use rlp to encode it: %w", err)
	}
	return b.Broadcast(ctx, hexutil.Encode(data))
}

// Broadcast sends data, the hex encoding of a signed tx, to every node.
func (b *Broadcaster) Broadcast(ctx context.Context, data string) (common.Hash, error) {
	hash := common.HexToHash(onyxcommon.RawTxToHash(data))
	if len(b.clients) == 0 {
		return hash, fmt.Errorf("no node to broadcast %s to", hash.Hex())
	}

	timeout, cancel := context.WithTimeout(ctx, TIMEOUT)
	defer cancel()
	tasks := []func() error{}
	for name, cli := range b.clients {
		name, cli := name, cli
		tasks = append(tasks, func() error {
			if err := cli.CallContext(timeout, nil, "eth_sendRawTransaction", data); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}
	err, numErrs := onyxcommon.RunParallel(tasks...)
	if numErrs == len(b.clients) {
		return hash, fmt.Errorf("couldn't broadcast %s to any node: %w", hash.Hex(), err)
	}
	if err != nil {
		b.logger.Debug("some nodes rejected the tx", zap.Stringer("tx", hash), zap.Error(err))
	}
	return hash, nil
}
