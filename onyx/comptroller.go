package onyx

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/networks"
	"github.com/tranvictor/onyxkit/transport"
)

// marketName prefixes name with the market token prefix when it lacks one.
func marketName(name string) string {
	if strings.HasPrefix(name, networks.MarketTokenPrefix) {
		return name
	}
	return networks.MarketTokenPrefix + name
}

func checkMarket(op, name string) (string, error) {
	market := marketName(name)
	if !networks.IsMarketToken(market) {
		return "", onyxcommon.NewError(op, onyxcommon.ErrUnsupportedAsset, "Provided market `%s` is not a recognized oToken.", market)
	}
	return market, nil
}

func (c *Client) comptroller(op string, profile *networks.Profile) (common.Address, error) {
	return c.address(op, profile, networks.ComptrollerContract)
}

// EnterMarkets makes the signer's supply in markets count as collateral.
// Underlying symbols are accepted and mapped to their market.
func (c *Client) EnterMarkets(ctx context.Context, markets []string, opts CallOptions) (transport.TxHandle, error) {
	const op = "enterMarkets"
	if len(markets) == 0 {
		return nil, onyxcommon.NewError(op, onyxcommon.ErrInvalidArgument, "Argument `markets` must contain at least one market.")
	}
	names := make([]string, 0, len(markets))
	for _, m := range markets {
		market, err := checkMarket(op, m)
		if err != nil {
			return nil, err
		}
		names = append(names, market)
	}

	profile, err := c.network(ctx, op)
	if err != nil {
		return nil, err
	}
	addresses := make([]common.Address, 0, len(names))
	for _, name := range names {
		addr, err := c.address(op, profile, name)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, addr)
	}
	comptroller, err := c.comptroller(op, profile)
	if err != nil {
		return nil, err
	}
	contract := mainABI(opts, onyxcommon.MustABI(onyxcommon.ComptrollerABIName))
	return c.write(ctx, op, comptroller, contract, "enterMarkets", []interface{}{addresses}, opts.transportOpts())
}

// ExitMarket stops market from counting as the signer's collateral.
func (c *Client) ExitMarket(ctx context.Context, market string, opts CallOptions) (transport.TxHandle, error) {
	const op = "exitMarket"
	if strings.TrimSpace(market) == "" {
		return nil, onyxcommon.NewError(op, onyxcommon.ErrInvalidArgument, "Argument `market` must be a string of a oToken market name.")
	}
	name, err := checkMarket(op, market)
	if err != nil {
		return nil, err
	}

	profile, err := c.network(ctx, op)
	if err != nil {
		return nil, err
	}
	addr, err := c.address(op, profile, name)
	if err != nil {
		return nil, err
	}
	comptroller, err := c.comptroller(op, profile)
	if err != nil {
		return nil, err
	}
	contract := mainABI(opts, onyxcommon.MustABI(onyxcommon.ComptrollerABIName))
	return c.write(ctx, op, comptroller, contract, "exitMarket", []interface{}{addr}, opts.transportOpts())
}

// GetAssetsIn returns the market symbols holder has entered. Markets the
// profile has no symbol for are reported by address.
func (c *Client) GetAssetsIn(ctx context.Context, holder string) ([]string, error) {
	const op = "getAssetsIn"
	holderAddr, err := checkAddress(op, holder, "Argument `_address` must be a valid Ethereum address.")
	if err != nil {
		return nil, err
	}
	profile, err := c.network(ctx, op)
	if err != nil {
		return nil, err
	}
	comptroller, err := c.comptroller(op, profile)
	if err != nil {
		return nil, err
	}
	res, err := c.read(ctx, op, comptroller, onyxcommon.MustABI(onyxcommon.ComptrollerABIName), "getAssetsIn", []interface{}{holderAddr})
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, onyxcommon.NewError(op, onyxcommon.ErrTransactionFailed, "getAssetsIn returned nothing")
	}
	addresses, ok := res[0].([]common.Address)
	if !ok {
		return nil, onyxcommon.NewError(op, onyxcommon.ErrTransactionFailed, "getAssetsIn returned %T instead of addresses", res[0])
	}
	symbols := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if symbol, found := profile.SymbolOf(addr); found {
			symbols = append(symbols, symbol)
		} else {
			symbols = append(symbols, addr.Hex())
		}
	}
	return symbols, nil
}

// ClaimXcn claims every XCN reward the signer accrued across markets.
func (c *Client) ClaimXcn(ctx context.Context, opts CallOptions) (transport.TxHandle, error) {
	const op = "claimXcn"
	profile, err := c.network(ctx, op)
	if err != nil {
		return nil, err
	}
	holder, err := c.signer(ctx, op)
	if err != nil {
		return nil, err
	}
	comptroller, err := c.comptroller(op, profile)
	if err != nil {
		return nil, err
	}
	contract := mainABI(opts, onyxcommon.MustABI(onyxcommon.ComptrollerABIName))
	return c.write(ctx, op, comptroller, contract, "claimXcn", []interface{}{holder}, opts.transportOpts())
}

// GetXcnAccrued returns the XCN mantissa holder accrued but has not claimed.
func (c *Client) GetXcnAccrued(ctx context.Context, holder string) (*big.Int, error) {
	const op = "getXcnAccrued"
	holderAddr, err := checkAddress(op, holder, "Argument `_address` must be a valid Ethereum address.")
	if err != nil {
		return nil, err
	}
	profile, err := c.network(ctx, op)
	if err != nil {
		return nil, err
	}
	comptroller, err := c.comptroller(op, profile)
	if err != nil {
		return nil, err
	}
	return c.readBig(ctx, op, comptroller, onyxcommon.MustABI(onyxcommon.ComptrollerABIName), "xcnAccrued", holderAddr)
}
