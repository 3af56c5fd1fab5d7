// Package transport defines what the client needs from a blockchain
// connection and ships a go-ethereum backed implementation of it.
package transport

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// CallOpts are the per call overrides forwarded to the transport.
type CallOpts struct {
	// GasLimit replaces gas estimation when non zero.
	GasLimit uint64
	// Value is the native asset amount attached to the call.
	Value *big.Int
}

// NetworkInfo is what a connection reports about the chain it talks to.
// Name is a hint and may be empty.
type NetworkInfo struct {
	ChainID uint64
	Name    string
}

// Event is one decoded log of a receipt.
type Event struct {
	Name    string
	Address common.Address
	Args    map[string]interface{}
	Index   uint
}

type Receipt struct {
	TxHash      common.Hash
	BlockNumber uint64
	// Status is 1 for success, 0 for revert.
	Status  uint64
	GasUsed uint64
	// Events are in log order. Logs no known ABI can decode are skipped.
	Events []Event
}

// EventsNamed returns the events of the receipt with the given name.
func (r *Receipt) EventsNamed(name string) []Event {
	res := []Event{}
	for _, e := range r.Events {
		if e.Name == name {
			res = append(res, e)
		}
	}
	return res
}

// TxHandle is a submitted transaction.
type TxHandle interface {
	Hash() common.Hash
	// Wait blocks until the tx has the given number of confirmations and
	// returns its receipt. A reverted tx returns its receipt together with
	// an error.
	Wait(ctx context.Context, confirmations uint64) (*Receipt, error)
}

// Transport is the connection the client sends reads and writes through.
type Transport interface {
	Read(ctx context.Context, to common.Address, contract *abi.ABI, method string, params []interface{}, opts CallOpts) ([]interface{}, error)
	Write(ctx context.Context, to common.Address, contract *abi.ABI, method string, params []interface{}, opts CallOpts) (TxHandle, error)
	ResolveNetwork(ctx context.Context) (NetworkInfo, error)
	// Account returns the address the transport signs with.
	Account(ctx context.Context) (common.Address, error)
	// SignTypedData returns a 65 byte [R || S || V] signature with V in
	// {27, 28}.
	SignTypedData(ctx context.Context, data apitypes.TypedData) ([]byte, error)
	Balance(ctx context.Context, holder common.Address) (*big.Int, error)
}
