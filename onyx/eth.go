package onyx

import (
	"context"
	"math/big"

	"github.com/tranvictor/onyxkit/asset"
	onyxcommon "github.com/tranvictor/onyxkit/common"
)

// GetBalance returns holder's native asset balance in wei.
func (c *Client) GetBalance(ctx context.Context, holder string) (*big.Int, error) {
	const op = "getBalance"
	holderAddr, err := checkAddress(op, holder, invalidAddressMsg)
	if err != nil {
		return nil, err
	}
	balance, err := c.transport.Balance(ctx, holderAddr)
	if err != nil {
		return nil, onyxcommon.WrapError(op, onyxcommon.ErrTransactionFailed, err, "Unable to get the balance of %s", holderAddr.Hex())
	}
	return balance, nil
}

// GetAssetBalance returns holder's balance mantissa of an underlying or a
// market token. The native asset reads the account balance.
func (c *Client) GetAssetBalance(ctx context.Context, symbol, holder string) (*big.Int, error) {
	const op = "getAssetBalance"
	s, err := asset.Parse(op, "asset", symbol, asset.Strict)
	if err != nil {
		return nil, err
	}
	holderAddr, err := checkAddress(op, holder, invalidAddressMsg)
	if err != nil {
		return nil, err
	}
	profile, err := c.network(ctx, op)
	if err != nil {
		return nil, err
	}
	d, err := asset.Bind(op, s, profile, asset.Strict)
	if err != nil {
		return nil, err
	}

	switch {
	case d.IsMarketToken:
		return c.readBig(ctx, op, d.MarketAddress, marketABI(d.IsNative(profile)), "balanceOf", holderAddr)
	case d.IsNative(profile):
		return c.GetBalance(ctx, holder)
	default:
		return c.readBig(ctx, op, *d.UnderlyingAddress, onyxcommon.GetERC20ABI(), "balanceOf", holderAddr)
	}
}
