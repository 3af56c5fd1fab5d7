package reader

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"

	onyxcommon "github.com/tranvictor/onyxkit/common"
)

// EthReader fans every read out to all of its nodes and returns the first
// successful answer.
type EthReader struct {
	nodes map[string]EthereumNode
}

func NewEthReaderGeneric(nodes map[string]string) *EthReader {
	ns := map[string]EthereumNode{}
	for name, url := range nodes {
		ns[name] = NewOneNodeReader(name, url)
	}
	return &EthReader{nodes: ns}
}

func NewEthReaderFromClients(clients map[string]*rpc.Client) *EthReader {
	ns := map[string]EthereumNode{}
	for name, c := range clients {
		ns[name] = NewOneNodeReaderFromClient(name, c)
	}
	return &EthReader{nodes: ns}
}

// NewEthReaderFromNodes is mostly useful to plug fake nodes in.
func NewEthReaderFromNodes(nodes ...EthereumNode) *EthReader {
	ns := map[string]EthereumNode{}
	for _, n := range nodes {
		ns[n.NodeName()] = n
	}
	return &EthReader{nodes: ns}
}

func (er *EthReader) NodeNames() []string {
	res := make([]string, 0, len(er.nodes))
	for name := range er.nodes {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

func fanOut[T any](er *EthReader, call func(n EthereumNode) (T, error)) (T, error) {
	calls := map[string]func() (T, error){}
	for name, n := range er.nodes {
		n := n
		calls[name] = func() (T, error) {
			return call(n)
		}
	}
	return onyxcommon.FirstSuccess(calls)
}

func (er *EthReader) ChainID(ctx context.Context) (uint64, error) {
	id, err := fanOut(er, func(n EthereumNode) (*big.Int, error) {
		return n.ChainID(ctx)
	})
	if err != nil {
		return 0, err
	}
	return id.Uint64(), nil
}

func (er *EthReader) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	return fanOut(er, func(n EthereumNode) (uint64, error) {
		return n.EstimateGas(ctx, msg)
	})
}

func (er *EthReader) GetBalance(ctx context.Context, address common.Address) (*big.Int, error) {
	return fanOut(er, func(n EthereumNode) (*big.Int, error) {
		return n.GetBalance(ctx, address)
	})
}

func (er *EthReader) GetPendingNonce(ctx context.Context, address common.Address) (uint64, error) {
	return fanOut(er, func(n EthereumNode) (uint64, error) {
		return n.GetPendingNonce(ctx, address)
	})
}

func (er *EthReader) SuggestedGasPrice(ctx context.Context) (*big.Int, error) {
	return fanOut(er, func(n EthereumNode) (*big.Int, error) {
		return n.SuggestedGasPrice(ctx)
	})
}

func (er *EthReader) SuggestedGasTipCap(ctx context.Context) (*big.Int, error) {
	return fanOut(er, func(n EthereumNode) (*big.Int, error) {
		return n.SuggestedGasTipCap(ctx)
	})
}

func (er *EthReader) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return fanOut(er, func(n EthereumNode) (*types.Header, error) {
		return n.HeaderByNumber(ctx, number)
	})
}

// CurrentBlock returns the number of the head block.
func (er *EthReader) CurrentBlock(ctx context.Context) (uint64, error) {
	header, err := er.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, err
	}
	return header.Number.Uint64(), nil
}

// CheckDynamicFeeTxAvailable reports whether the head block carries a base
// fee, meaning the chain accepts EIP-1559 txs.
func (er *EthReader) CheckDynamicFeeTxAvailable(ctx context.Context) (bool, error) {
	header, err := er.HeaderByNumber(ctx, nil)
	if err != nil {
		return false, err
	}
	return header.BaseFee != nil && header.BaseFee.Sign() > 0, nil
}

func (er *EthReader) ReadContractToBytes(ctx context.Context, from, to common.Address, data []byte) ([]byte, error) {
	return fanOut(er, func(n EthereumNode) ([]byte, error) {
		return n.CallContract(ctx, ethereum.CallMsg{
			From: from,
			To:   &to,
			Data: data,
		})
	})
}

// ReadContract packs method with args, calls it on to and unpacks the
// outputs.
func (er *EthReader) ReadContract(
	ctx context.Context,
	from, to common.Address,
	contract *abi.ABI,
	method string,
	args ...interface{},
) ([]interface{}, error) {
	data, err := contract.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("couldn't pack %s: %w", method, err)
	}
	out, err := er.ReadContractToBytes(ctx, from, to, data)
	if err != nil {
		return nil, err
	}
	res, err := contract.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("couldn't unpack %s output: %w", method, err)
	}
	return res, nil
}

// TxInfoFromHash reports where a tx is. Confirmations is only set once the
// tx is mined.
func (er *EthReader) TxInfoFromHash(ctx context.Context, hash common.Hash) (onyxcommon.TxInfo, error) {
	receipt, err := fanOut(er, func(n EthereumNode) (*types.Receipt, error) {
		return n.TransactionReceipt(ctx, hash)
	})
	if err == nil && receipt != nil {
		status := onyxcommon.TxStatusDone
		if receipt.Status != types.ReceiptStatusSuccessful {
			status = onyxcommon.TxStatusReverted
		}
		info := onyxcommon.TxInfo{Status: status, Receipt: receipt}
		head, err := er.CurrentBlock(ctx)
		if err != nil {
			return onyxcommon.TxInfo{Status: onyxcommon.TxStatusError}, err
		}
		if receipt.BlockNumber != nil && head >= receipt.BlockNumber.Uint64() {
			info.Confirmations = head - receipt.BlockNumber.Uint64() + 1
		}
		return info, nil
	}

	type txResult struct {
		tx        *types.Transaction
		isPending bool
	}
	res, err := fanOut(er, func(n EthereumNode) (txResult, error) {
		tx, isPending, err := n.TransactionByHash(ctx, hash)
		return txResult{tx, isPending}, err
	})
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return onyxcommon.TxInfo{Status: onyxcommon.TxStatusNotFound}, nil
		}
		return onyxcommon.TxInfo{Status: onyxcommon.TxStatusError}, err
	}
	if res.isPending {
		return onyxcommon.TxInfo{Status: onyxcommon.TxStatusPending}, nil
	}
	// mined but the receipt is not indexed yet
	return onyxcommon.TxInfo{Status: onyxcommon.TxStatusPending}, nil
}
