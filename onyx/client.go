// Package onyx is a client for the Onyx lending protocol. It resolves asset
// symbols against the connected network, converts human amounts to the
// fixed point values the contracts expect and sequences the transactions a
// logical action needs (approve then mint, for example).
package onyx

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/networks"
	"github.com/tranvictor/onyxkit/transport"
	"github.com/tranvictor/onyxkit/units"
)

// Options configure New.
type Options struct {
	// PrivateKey, Mnemonic and Keystore are mutually exclusive and are
	// ignored when the provider is already a transport.Transport.
	PrivateKey       string
	Mnemonic         string
	DerivationPath   string
	Keystore         string
	KeystorePassword string

	// Registry defaults to networks.Default().
	Registry *networks.Registry
	Logger   *zap.Logger

	// SkipApprovalWait sends the main call right after the approval is
	// broadcasted instead of waiting for the approval to be mined. Ordering
	// then relies on the transport's nonce sequencing.
	SkipApprovalWait bool
}

// CallOptions are the per call overrides every operation accepts.
type CallOptions struct {
	// Mantissa means the amount is already scaled to the asset's decimals.
	Mantissa bool
	// GasLimit replaces gas estimation. It applies to the approval as well.
	GasLimit uint64
	// ABI replaces the ABI picked for the main call.
	ABI *abi.ABI
	// Value is native asset attached to the main call. Operations that move
	// the native asset set it themselves.
	Value *big.Int
}

func (o CallOptions) transportOpts() transport.CallOpts {
	return transport.CallOpts{GasLimit: o.GasLimit, Value: o.Value}
}

// Client exposes every protocol operation. It is safe for concurrent use.
type Client struct {
	transport        transport.Transport
	registry         *networks.Registry
	logger           *zap.Logger
	gate             *gate
	skipApprovalWait bool
}

// New connects to provider and starts resolving the network it points to.
// provider is anything transport.Dial accepts as a source, or a
// transport.Transport to use as is.
func New(provider interface{}, opts Options) (*Client, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := opts.Registry
	if registry == nil {
		registry = networks.Default()
	}

	var tr transport.Transport
	if t, ok := provider.(transport.Transport); ok {
		tr = t
	} else {
		eth, err := transport.Dial(transport.Config{
			Source:           provider,
			PrivateKey:       opts.PrivateKey,
			Mnemonic:         opts.Mnemonic,
			DerivationPath:   opts.DerivationPath,
			Keystore:         opts.Keystore,
			KeystorePassword: opts.KeystorePassword,
			Registry:         registry,
			Logger:           logger,
		})
		if err != nil {
			return nil, onyxcommon.WrapError("new", onyxcommon.ErrInvalidArgument, err, "Unable to create the connection.")
		}
		tr = eth
	}

	c := &Client{
		transport:        tr,
		registry:         registry,
		logger:           logger,
		skipApprovalWait: opts.SkipApprovalWait,
	}
	c.gate = newGate(c.resolveNetwork)
	return c, nil
}

func (c *Client) resolveNetwork() (*networks.Profile, error) {
	info, err := c.transport.ResolveNetwork(context.Background())
	if err != nil {
		c.logger.Error("couldn't resolve network", zap.Error(err))
		return nil, fmt.Errorf("couldn't resolve the connected network: %w", err)
	}
	p, err := c.registry.ByChainID(info.ChainID)
	if err != nil && info.Name != "" {
		p, err = c.registry.ByName(info.Name)
	}
	if err != nil {
		c.logger.Error("connected to an unsupported network",
			zap.Uint64("chain_id", info.ChainID), zap.String("name", info.Name))
		return nil, err
	}
	c.logger.Debug("network resolved", zap.String("network", p.GetName()), zap.Uint64("chain_id", p.GetChainID()))
	return p, nil
}

// network waits for the connection gate and returns the profile of the
// connected network.
func (c *Client) network(ctx context.Context, op string) (*networks.Profile, error) {
	p, err := c.gate.wait(ctx)
	if err == nil {
		return p, nil
	}
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return nil, onyxcommon.WrapError(op, nil, err, "Gave up waiting for the network")
	}
	return nil, onyxcommon.WrapError(op, onyxcommon.ErrUnsupportedNetwork, err, "Network is not available")
}

// Network returns the profile of the network the client is connected to.
func (c *Client) Network(ctx context.Context) (*networks.Profile, error) {
	return c.network(ctx, "network")
}

// Transport returns the connection the client sends calls through.
func (c *Client) Transport() transport.Transport {
	return c.transport
}

func (c *Client) address(op string, profile *networks.Profile, name string) (common.Address, error) {
	addr, err := profile.LookupAddress(name)
	if err != nil {
		return common.Address{}, onyxcommon.WrapError(op, onyxcommon.ErrUnknownContract, err, "%s is not deployed on %s", name, profile.GetName())
	}
	return addr, nil
}

func (c *Client) signer(ctx context.Context, op string) (common.Address, error) {
	addr, err := c.transport.Account(ctx)
	if err != nil {
		return common.Address{}, onyxcommon.WrapError(op, onyxcommon.ErrTransactionFailed, err, "Unable to get the signer address")
	}
	return addr, nil
}

func (c *Client) read(
	ctx context.Context,
	op string,
	to common.Address,
	contract *abi.ABI,
	method string,
	params []interface{},
) ([]interface{}, error) {
	res, err := c.transport.Read(ctx, to, contract, method, params, transport.CallOpts{})
	if err != nil {
		return nil, onyxcommon.WrapError(op, onyxcommon.ErrTransactionFailed, err, "Call to %s on %s failed", method, to.Hex())
	}
	return res, nil
}

func (c *Client) readBig(
	ctx context.Context,
	op string,
	to common.Address,
	contract *abi.ABI,
	method string,
	params ...interface{},
) (*big.Int, error) {
	res, err := c.read(ctx, op, to, contract, method, params)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, onyxcommon.NewError(op, onyxcommon.ErrTransactionFailed, "%s returned nothing", method)
	}
	v, ok := res[0].(*big.Int)
	if !ok {
		return nil, onyxcommon.NewError(op, onyxcommon.ErrTransactionFailed, "%s returned %T instead of an integer", method, res[0])
	}
	return v, nil
}

func (c *Client) write(
	ctx context.Context,
	op string,
	to common.Address,
	contract *abi.ABI,
	method string,
	params []interface{},
	opts transport.CallOpts,
) (transport.TxHandle, error) {
	c.logger.Debug("sending tx", zap.String("op", op), zap.String("method", method), zap.Stringer("to", to))
	tx, err := c.transport.Write(ctx, to, contract, method, params, opts)
	if err != nil {
		return nil, onyxcommon.WrapError(op, onyxcommon.ErrTransactionFailed, err, "Transaction %s on %s failed", method, to.Hex())
	}
	return tx, nil
}

// mainABI is the ABI of the state changing call of an operation, honoring
// the caller's override.
func mainABI(opts CallOptions, picked *abi.ABI) *abi.ABI {
	if opts.ABI != nil {
		return opts.ABI
	}
	return picked
}

func marketABI(nativeMarket bool) *abi.ABI {
	if nativeMarket {
		return onyxcommon.MustABI(onyxcommon.OEtherABIName)
	}
	return onyxcommon.MustABI(onyxcommon.OErc20ABIName)
}

// checkAmount validates amount before any network access.
func checkAmount(op string, amount units.Amount, opts CallOptions) error {
	if err := units.Validate(amount, opts.Mantissa); err != nil {
		return onyxcommon.WrapError(op, onyxcommon.ErrInvalidAmount, err, "Argument `amount` must be a non-negative number")
	}
	return nil
}

func toMantissa(op string, amount units.Amount, decimals uint64, opts CallOptions) (*big.Int, error) {
	res, err := units.ToMantissa(amount, decimals, opts.Mantissa)
	if err != nil {
		return nil, onyxcommon.WrapError(op, onyxcommon.ErrInvalidAmount, err, "Argument `amount` must be a non-negative number")
	}
	return res, nil
}

// checkAddress parses a user supplied address.
func checkAddress(op, s, msg string) (common.Address, error) {
	if !onyxcommon.IsAddress(s) {
		return common.Address{}, onyxcommon.NewError(op, onyxcommon.ErrInvalidArgument, "%s", msg)
	}
	return common.HexToAddress(s), nil
}
