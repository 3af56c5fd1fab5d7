package onyx_test

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/stretchr/testify/require"

	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/networks"
	"github.com/tranvictor/onyxkit/onyx"
	"github.com/tranvictor/onyxkit/transport"
)

const devKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

type recordedCall struct {
	Kind   string // "read" or "write"
	To     common.Address
	ABI    *abi.ABI
	Method string
	Params []interface{}
	Opts   transport.CallOpts
}

type readHandler func(to common.Address, params []interface{}) ([]interface{}, error)

// fakeTransport records every read and write in order and answers reads
// from per method handlers.
type fakeTransport struct {
	mu    sync.Mutex
	calls []recordedCall

	chainID      uint64
	resolveErr   error
	release      chan struct{}
	resolveCalls int

	reads    map[string]readHandler
	writeErr error
	waitErr  error
	waits    int

	key *ecdsa.PrivateKey
}

func newFakeTransport(t *testing.T) *fakeTransport {
	t.Helper()
	key, err := crypto.HexToECDSA(devKey)
	require.NoError(t, err)
	return &fakeTransport{
		chainID: networks.Hardhat.GetChainID(),
		reads:   map[string]readHandler{},
		key:     key,
	}
}

func (f *fakeTransport) address() common.Address {
	return crypto.PubkeyToAddress(f.key.PublicKey)
}

func (f *fakeTransport) onRead(method string, h readHandler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads[method] = h
}

func (f *fakeTransport) returns(method string, values ...interface{}) {
	f.onRead(method, func(common.Address, []interface{}) ([]interface{}, error) {
		return values, nil
	})
}

func (f *fakeTransport) recorded() []recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedCall{}, f.calls...)
}

func (f *fakeTransport) writes() []recordedCall {
	res := []recordedCall{}
	for _, c := range f.recorded() {
		if c.Kind == "write" {
			res = append(res, c)
		}
	}
	return res
}

func (f *fakeTransport) Read(
	ctx context.Context,
	to common.Address,
	contract *abi.ABI,
	method string,
	params []interface{},
	opts transport.CallOpts,
) ([]interface{}, error) {
	f.mu.Lock()
	f.calls = append(f.calls, recordedCall{"read", to, contract, method, params, opts})
	h, found := f.reads[method]
	f.mu.Unlock()
	if !found {
		return nil, fmt.Errorf("no handler for %s", method)
	}
	return h(to, params)
}

func (f *fakeTransport) Write(
	ctx context.Context,
	to common.Address,
	contract *abi.ABI,
	method string,
	params []interface{},
	opts transport.CallOpts,
) (transport.TxHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedCall{"write", to, contract, method, params, opts})
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	// the method must exist and the params must pack
	if _, err := contract.Pack(method, params...); err != nil {
		return nil, err
	}
	return &fakeTx{
		hash: common.BigToHash(big.NewInt(int64(len(f.calls)))),
		t:    f,
	}, nil
}

func (f *fakeTransport) ResolveNetwork(ctx context.Context) (transport.NetworkInfo, error) {
	f.mu.Lock()
	f.resolveCalls++
	release := f.release
	f.mu.Unlock()
	if release != nil {
		<-release
	}
	if f.resolveErr != nil {
		return transport.NetworkInfo{}, f.resolveErr
	}
	return transport.NetworkInfo{ChainID: f.chainID}, nil
}

func (f *fakeTransport) Account(ctx context.Context) (common.Address, error) {
	return f.address(), nil
}

func (f *fakeTransport) SignTypedData(ctx context.Context, data apitypes.TypedData) ([]byte, error) {
	digest, err := onyxcommon.TypedDataDigest(data)
	if err != nil {
		return nil, err
	}
	sig, err := crypto.Sign(digest, f.key)
	if err != nil {
		return nil, err
	}
	sig[64] += 27
	return sig, nil
}

func (f *fakeTransport) Balance(ctx context.Context, holder common.Address) (*big.Int, error) {
	return big.NewInt(42), nil
}

type fakeTx struct {
	hash common.Hash
	t    *fakeTransport
}

func (tx *fakeTx) Hash() common.Hash {
	return tx.hash
}

func (tx *fakeTx) Wait(ctx context.Context, confirmations uint64) (*transport.Receipt, error) {
	tx.t.mu.Lock()
	defer tx.t.mu.Unlock()
	tx.t.waits++
	if tx.t.waitErr != nil {
		return &transport.Receipt{TxHash: tx.hash}, tx.t.waitErr
	}
	return &transport.Receipt{TxHash: tx.hash, Status: 1}, nil
}

func newTestClient(t *testing.T, f *fakeTransport, opts onyx.Options) *onyx.Client {
	t.Helper()
	if opts.Registry == nil {
		r, err := networks.NewRegistry(networks.Hardhat, feedProfile(t))
		require.NoError(t, err)
		opts.Registry = r
	}
	c, err := onyx.New(f, opts)
	require.NoError(t, err)
	return c
}

// feedProfile is a deployment with an open price feed.
func feedProfile(t *testing.T) *networks.Profile {
	t.Helper()
	cfg := networks.Hardhat.Config()
	cfg.Name = "feednet"
	cfg.AlternativeNames = nil
	cfg.ChainID = 424242
	cfg.Addresses[networks.PriceFeedContract] = "0x00000000000000000000000000000000000f33d0"
	p, err := networks.NewProfile(cfg)
	require.NoError(t, err)
	return p
}

func addr(t *testing.T, p *networks.Profile, name string) common.Address {
	t.Helper()
	a, err := p.LookupAddress(name)
	require.NoError(t, err)
	return a
}

func bigString(t *testing.T, s string) *big.Int {
	t.Helper()
	b, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, s)
	return b
}
