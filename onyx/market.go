package onyx

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/tranvictor/onyxkit/asset"
	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/networks"
	"github.com/tranvictor/onyxkit/transport"
	"github.com/tranvictor/onyxkit/units"
)

// parseUnderlying accepts plain underlyings only. Any other symbol fails
// with "Argument `asset` <rejection>."
func parseUnderlying(op, raw, rejection string) (asset.Symbol, error) {
	s, err := asset.Parse(op, "asset", raw, asset.Strict)
	if err != nil {
		if errors.Is(err, onyxcommon.ErrInvalidArgument) {
			return asset.Symbol{}, err
		}
		return asset.Symbol{}, onyxcommon.NewError(op, onyxcommon.ErrUnsupportedAsset, "Argument `asset` %s.", rejection)
	}
	if s.IsMarketToken {
		return asset.Symbol{}, onyxcommon.NewError(op, onyxcommon.ErrUnsupportedAsset, "Argument `asset` %s.", rejection)
	}
	return s, nil
}

// approveIfNeeded makes sure spender may move amount of token on behalf of
// the signer. When the allowance falls short it sends an approval and, unless
// the client skips it, waits for the approval to be mined.
func (c *Client) approveIfNeeded(
	ctx context.Context,
	op string,
	token, spender common.Address,
	amount *big.Int,
	opts CallOptions,
) error {
	holder, err := c.signer(ctx, op)
	if err != nil {
		return err
	}
	erc20 := onyxcommon.GetERC20ABI()
	allowance, err := c.readBig(ctx, op, token, erc20, "allowance", holder, spender)
	if err != nil {
		return err
	}
	if allowance.Cmp(amount) >= 0 {
		return nil
	}

	tx, err := c.write(ctx, op, token, erc20, "approve", []interface{}{spender, amount}, transport.CallOpts{GasLimit: opts.GasLimit})
	if err != nil {
		return err
	}
	c.logger.Info("approval sent",
		zap.String("op", op),
		zap.Stringer("token", token),
		zap.Stringer("spender", spender),
		zap.Stringer("tx", tx.Hash()),
	)
	if c.skipApprovalWait {
		return nil
	}
	if _, err := tx.Wait(ctx, 1); err != nil {
		return onyxcommon.WrapError(op, onyxcommon.ErrTransactionFailed, err, "Approval %s failed", tx.Hash().Hex())
	}
	return nil
}

// Supply mints market tokens against amount of an underlying. Native asset
// is attached as value, any other asset is approved first unless noApprove
// is set or the allowance already covers amount.
func (c *Client) Supply(
	ctx context.Context,
	symbol string,
	amount units.Amount,
	noApprove bool,
	opts CallOptions,
) (transport.TxHandle, error) {
	const op = "supply"
	s, err := parseUnderlying(op, symbol, "cannot be supplied")
	if err != nil {
		return nil, err
	}
	if err := checkAmount(op, amount, opts); err != nil {
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
	mantissa, err := toMantissa(op, amount, d.UnderlyingDecimals, opts)
	if err != nil {
		return nil, err
	}

	native := d.IsNative(profile)
	txOpts := opts.transportOpts()
	params := []interface{}{}
	if native {
		txOpts.Value = mantissa
	} else {
		if !noApprove {
			if err := c.approveIfNeeded(ctx, op, *d.UnderlyingAddress, d.MarketAddress, mantissa, opts); err != nil {
				return nil, err
			}
		}
		params = append(params, mantissa)
	}
	return c.write(ctx, op, d.MarketAddress, mainABI(opts, marketABI(native)), "mint", params, txOpts)
}

// Redeem takes supplied asset back. Given a market token symbol amount is
// counted in market tokens (redeem), otherwise in the underlying
// (redeemUnderlying).
func (c *Client) Redeem(
	ctx context.Context,
	symbol string,
	amount units.Amount,
	opts CallOptions,
) (transport.TxHandle, error) {
	const op = "redeem"
	s, err := asset.Parse(op, "asset", symbol, asset.Strict)
	if err != nil {
		return nil, err
	}
	if err := checkAmount(op, amount, opts); err != nil {
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

	method := "redeemUnderlying"
	decimals := d.UnderlyingDecimals
	if d.IsMarketToken {
		method = "redeem"
		decimals, err = profile.LookupDecimals(d.MarketSymbol)
		if err != nil {
			decimals = networks.MarketTokenDecimals
		}
	}
	mantissa, err := toMantissa(op, amount, decimals, opts)
	if err != nil {
		return nil, err
	}
	contract := mainABI(opts, marketABI(d.IsNative(profile)))
	return c.write(ctx, op, d.MarketAddress, contract, method, []interface{}{mantissa}, opts.transportOpts())
}

// Borrow borrows amount of an underlying. The signer must have entered
// markets holding enough collateral.
func (c *Client) Borrow(
	ctx context.Context,
	symbol string,
	amount units.Amount,
	opts CallOptions,
) (transport.TxHandle, error) {
	const op = "borrow"
	s, err := parseUnderlying(op, symbol, "cannot be borrowed")
	if err != nil {
		return nil, err
	}
	if err := checkAmount(op, amount, opts); err != nil {
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
	mantissa, err := toMantissa(op, amount, d.UnderlyingDecimals, opts)
	if err != nil {
		return nil, err
	}
	contract := mainABI(opts, marketABI(d.IsNative(profile)))
	return c.write(ctx, op, d.MarketAddress, contract, "borrow", []interface{}{mantissa}, opts.transportOpts())
}

// RepayBorrow repays the signer's own borrow, or borrower's when borrower
// is not empty.
func (c *Client) RepayBorrow(
	ctx context.Context,
	symbol string,
	amount units.Amount,
	borrower string,
	noApprove bool,
	opts CallOptions,
) (transport.TxHandle, error) {
	const op = "repayBorrow"
	s, err := parseUnderlying(op, symbol, "is not supported")
	if err != nil {
		return nil, err
	}
	if err := checkAmount(op, amount, opts); err != nil {
		return nil, err
	}
	onBehalf := borrower != ""
	var borrowerAddr common.Address
	if onBehalf {
		if borrowerAddr, err = checkAddress(op, borrower, "Invalid `borrower` address."); err != nil {
			return nil, err
		}
	}

	profile, err := c.network(ctx, op)
	if err != nil {
		return nil, err
	}
	d, err := asset.Bind(op, s, profile, asset.Strict)
	if err != nil {
		return nil, err
	}
	mantissa, err := toMantissa(op, amount, d.UnderlyingDecimals, opts)
	if err != nil {
		return nil, err
	}

	native := d.IsNative(profile)
	txOpts := opts.transportOpts()
	method := "repayBorrow"
	params := []interface{}{}
	if onBehalf {
		method = "repayBorrowBehalf"
		params = append(params, borrowerAddr)
	}
	if native {
		txOpts.Value = mantissa
	} else {
		if !noApprove {
			if err := c.approveIfNeeded(ctx, op, *d.UnderlyingAddress, d.MarketAddress, mantissa, opts); err != nil {
				return nil, err
			}
		}
		params = append(params, mantissa)
	}
	return c.write(ctx, op, d.MarketAddress, mainABI(opts, marketABI(native)), method, params, txOpts)
}
