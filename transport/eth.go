package transport

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"go.uber.org/zap"

	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/networks"
	"github.com/tranvictor/onyxkit/util/account"
	"github.com/tranvictor/onyxkit/util/broadcaster"
	"github.com/tranvictor/onyxkit/util/monitor"
	"github.com/tranvictor/onyxkit/util/reader"
)

// GasLimitBufferPercent is added on top of the node's gas estimation.
const GasLimitBufferPercent = 20

// Eth is a Transport over one or more JSON-RPC nodes. Reads go to every
// node at once and the first answer wins; signed txs are broadcasted to all
// of them.
type Eth struct {
	reader      *reader.EthReader
	broadcaster *broadcaster.Broadcaster
	monitor     *monitor.TxMonitor
	account     *account.Account
	registry    *networks.Registry
	networkHint string
	logger      *zap.Logger

	mu        sync.Mutex
	chainID   *big.Int
	nextNonce *uint64
}

var _ Transport = (*Eth)(nil)

func (e *Eth) from() common.Address {
	if e.account == nil {
		return common.Address{}
	}
	return e.account.Address()
}

func (e *Eth) Read(
	ctx context.Context,
	to common.Address,
	contract *abi.ABI,
	method string,
	params []interface{},
	opts CallOpts,
) ([]interface{}, error) {
	return e.reader.ReadContract(ctx, e.from(), to, contract, method, params...)
}

func (e *Eth) getChainID(ctx context.Context) (*big.Int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.chainID != nil {
		return e.chainID, nil
	}
	id, err := e.reader.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	e.chainID = new(big.Int).SetUint64(id)
	return e.chainID, nil
}

// nonce returns the pending nonce of the node or, when this transport sent
// txs the node has not seen yet, the one after the last it used.
func (e *Eth) nonce(ctx context.Context) (uint64, error) {
	pending, err := e.reader.GetPendingNonce(ctx, e.account.Address())
	if err != nil {
		return 0, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.nextNonce != nil && *e.nextNonce > pending {
		pending = *e.nextNonce
	}
	next := pending + 1
	e.nextNonce = &next
	return pending, nil
}

// releaseNonce hands nonce back when the tx that took it never reached a
// node, so the next write fills the slot instead of leaving a gap.
func (e *Eth) releaseNonce(nonce uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.nextNonce != nil && *e.nextNonce == nonce+1 {
		e.nextNonce = &nonce
	}
}

func (e *Eth) gasSettings(ctx context.Context) (onyxcommon.GasSettings, error) {
	dynamic, err := e.reader.CheckDynamicFeeTxAvailable(ctx)
	if err != nil {
		return onyxcommon.GasSettings{}, err
	}
	if !dynamic {
		price, err := e.reader.SuggestedGasPrice(ctx)
		if err != nil {
			return onyxcommon.GasSettings{}, err
		}
		return onyxcommon.GasSettings{GasPrice: price}, nil
	}
	tip, err := e.reader.SuggestedGasTipCap(ctx)
	if err != nil {
		return onyxcommon.GasSettings{}, err
	}
	header, err := e.reader.HeaderByNumber(ctx, nil)
	if err != nil {
		return onyxcommon.GasSettings{}, err
	}
	// leaves room for the base fee to double before the tx is priced out
	feeCap := new(big.Int).Add(new(big.Int).Mul(header.BaseFee, big.NewInt(2)), tip)
	return onyxcommon.GasSettings{GasPrice: feeCap, TipCap: tip}, nil
}

func (e *Eth) Write(
	ctx context.Context,
	to common.Address,
	contract *abi.ABI,
	method string,
	params []interface{},
	opts CallOpts,
) (TxHandle, error) {
	if e.account == nil {
		return nil, fmt.Errorf("couldn't send %s: the connection has no private key or mnemonic", method)
	}
	data, err := contract.Pack(method, params...)
	if err != nil {
		return nil, fmt.Errorf("couldn't pack %s: %w", method, err)
	}
	value := opts.Value
	if value == nil {
		value = big.NewInt(0)
	}
	chainID, err := e.getChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("couldn't get chain id: %w", err)
	}

	gasLimit := opts.GasLimit
	if gasLimit == 0 {
		estimated, err := e.reader.EstimateGas(ctx, ethereum.CallMsg{
			From:  e.account.Address(),
			To:    &to,
			Value: value,
			Data:  data,
		})
		if err != nil {
			return nil, fmt.Errorf("couldn't estimate gas for %s: %w", method, err)
		}
		gasLimit = estimated * (100 + GasLimitBufferPercent) / 100
	}

	gas, err := e.gasSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("couldn't get gas price: %w", err)
	}
	nonce, err := e.nonce(ctx)
	if err != nil {
		return nil, fmt.Errorf("couldn't get nonce: %w", err)
	}

	tx := onyxcommon.BuildExactTx(nonce, to, value, gasLimit, gas, data, chainID)
	signed, err := e.account.SignTx(tx, chainID)
	if err != nil {
		e.releaseNonce(nonce)
		return nil, err
	}
	hash, err := e.broadcaster.BroadcastTx(ctx, signed)
	if err != nil {
		e.releaseNonce(nonce)
		return nil, err
	}
	e.logger.Info("broadcasted tx",
		zap.String("method", method),
		zap.Stringer("to", to),
		zap.Stringer("tx", hash),
		zap.Uint64("nonce", nonce),
		zap.Uint64("gas_limit", gasLimit),
	)
	return &txHandle{hash: hash, monitor: e.monitor}, nil
}

func (e *Eth) ResolveNetwork(ctx context.Context) (NetworkInfo, error) {
	id, err := e.getChainID(ctx)
	if err != nil {
		return NetworkInfo{}, err
	}
	info := NetworkInfo{ChainID: id.Uint64(), Name: e.networkHint}
	if info.Name == "" {
		if p, err := e.registry.ByChainID(info.ChainID); err == nil {
			info.Name = p.GetName()
		}
	}
	return info, nil
}

func (e *Eth) Account(ctx context.Context) (common.Address, error) {
	if e.account == nil {
		return common.Address{}, fmt.Errorf("the connection has no private key or mnemonic")
	}
	return e.account.Address(), nil
}

func (e *Eth) SignTypedData(ctx context.Context, data apitypes.TypedData) ([]byte, error) {
	if e.account == nil {
		return nil, fmt.Errorf("the connection has no private key or mnemonic")
	}
	digest, err := onyxcommon.TypedDataDigest(data)
	if err != nil {
		return nil, err
	}
	return e.account.SignHash(digest)
}

func (e *Eth) Balance(ctx context.Context, holder common.Address) (*big.Int, error) {
	return e.reader.GetBalance(ctx, holder)
}
