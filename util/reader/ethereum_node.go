package reader

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// EthereumNode is one JSON-RPC endpoint. Every call is bounded by TIMEOUT
// on top of the caller's context.
type EthereumNode interface {
	NodeName() string
	NodeURL() string
	ChainID(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (gas uint64, err error)
	GetBalance(ctx context.Context, address common.Address) (balance *big.Int, err error)
	GetPendingNonce(ctx context.Context, address common.Address) (nonce uint64, err error)
	TransactionReceipt(ctx context.Context, hash common.Hash) (receipt *types.Receipt, err error)
	TransactionByHash(ctx context.Context, hash common.Hash) (tx *types.Transaction, isPending bool, err error)
	SuggestedGasPrice(ctx context.Context) (*big.Int, error)
	SuggestedGasTipCap(ctx context.Context) (*big.Int, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg) ([]byte, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}
