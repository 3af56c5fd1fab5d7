package onyx

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/tranvictor/onyxkit/asset"
	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/networks"
	"github.com/tranvictor/onyxkit/units"
)

// DefaultQuoteAsset is what GetPrice expresses prices in when the caller
// gives no quote asset.
const DefaultQuoteAsset = "USDC"

// GetPrice is Price as a float64. The conversion may lose precision; use
// Price when the exact value matters.
func (c *Client) GetPrice(ctx context.Context, symbol, inSymbol string) (float64, error) {
	p, err := c.Price(ctx, symbol, inSymbol)
	if err != nil {
		return 0, err
	}
	f, _ := p.Float64()
	return f, nil
}

// Price returns how many units of inSymbol one unit of symbol is worth.
// Both may be an underlying or a market token. inSymbol defaults to
// DefaultQuoteAsset.
//
// When the profile has a PriceFeed contract prices come from its
// price(symbol), otherwise from the comptroller's oracle.
func (c *Client) Price(ctx context.Context, symbol, inSymbol string) (decimal.Decimal, error) {
	const op = "getPrice"
	if inSymbol == "" {
		inSymbol = DefaultQuoteAsset
	}
	a, err := asset.Parse(op, "asset", symbol, asset.PriceFeed)
	if err != nil {
		return decimal.Zero, err
	}
	b, err := asset.Parse(op, "inAsset", inSymbol, asset.PriceFeed)
	if err != nil {
		return decimal.Zero, err
	}

	profile, err := c.network(ctx, op)
	if err != nil {
		return decimal.Zero, err
	}
	da, err := asset.Bind(op, a, profile, asset.PriceFeed)
	if err != nil {
		return decimal.Zero, err
	}
	db, err := asset.Bind(op, b, profile, asset.PriceFeed)
	if err != nil {
		return decimal.Zero, err
	}

	var aInB decimal.Decimal
	if profile.HasAddress(networks.PriceFeedContract) {
		aInB, err = c.feedCrossRate(ctx, op, profile, da, db)
	} else {
		aInB, err = c.oracleCrossRate(ctx, op, profile, da, db)
	}
	if err != nil {
		return decimal.Zero, err
	}

	var rateA, rateB *decimal.Decimal
	if da.IsMarketToken {
		r, err := c.exchangeRate(ctx, op, profile, da)
		if err != nil {
			return decimal.Zero, err
		}
		rateA = &r
	}
	if db.IsMarketToken {
		r, err := c.exchangeRate(ctx, op, profile, db)
		if err != nil {
			return decimal.Zero, err
		}
		rateB = &r
	}
	res, err := units.ComposePrice(aInB, rateA, rateB)
	if err != nil {
		return decimal.Zero, onyxcommon.WrapError(op, onyxcommon.ErrTransactionFailed, err, "Unable to price %s in %s", symbol, inSymbol)
	}
	return res, nil
}

// feedCrossRate prices both underlyings with the open price feed, which
// reports every asset with the same precision.
func (c *Client) feedCrossRate(ctx context.Context, op string, profile *networks.Profile, a, b asset.Descriptor) (decimal.Decimal, error) {
	feed, err := c.address(op, profile, networks.PriceFeedContract)
	if err != nil {
		return decimal.Zero, err
	}
	feedABI := onyxcommon.MustABI(onyxcommon.PriceFeedABIName)
	pa, err := c.readBig(ctx, op, feed, feedABI, "price", a.PriceSymbol)
	if err != nil {
		return decimal.Zero, err
	}
	pb, err := c.readBig(ctx, op, feed, feedABI, "price", b.PriceSymbol)
	if err != nil {
		return decimal.Zero, err
	}
	res, err := units.CrossRate(pa, 0, pb, 0)
	if err != nil {
		return decimal.Zero, onyxcommon.WrapError(op, onyxcommon.ErrTransactionFailed, err, "Price feed has no price for %s", b.PriceSymbol)
	}
	return res, nil
}

// oracleCrossRate prices both underlyings with the comptroller's oracle.
// The oracle scales a price by 10^(36 - decimals), so the raw prices are
// moved to a common base with the underlying decimals.
func (c *Client) oracleCrossRate(ctx context.Context, op string, profile *networks.Profile, a, b asset.Descriptor) (decimal.Decimal, error) {
	for _, d := range []asset.Descriptor{a, b} {
		if !d.HasMarket {
			return decimal.Zero, onyxcommon.NewError(op, onyxcommon.ErrUnknownContract, "Market %s is not deployed on %s", d.MarketSymbol, profile.GetName())
		}
	}
	comptroller, err := c.comptroller(op, profile)
	if err != nil {
		return decimal.Zero, err
	}
	res, err := c.read(ctx, op, comptroller, onyxcommon.MustABI(onyxcommon.ComptrollerABIName), "oracle", nil)
	if err != nil {
		return decimal.Zero, err
	}
	if len(res) == 0 {
		return decimal.Zero, onyxcommon.NewError(op, onyxcommon.ErrTransactionFailed, "oracle returned nothing")
	}
	oracle, ok := res[0].(common.Address)
	if !ok {
		return decimal.Zero, onyxcommon.NewError(op, onyxcommon.ErrTransactionFailed, "oracle returned %T instead of an address", res[0])
	}

	oracleABI := onyxcommon.MustABI(onyxcommon.PriceOracleABIName)
	pa, err := c.readBig(ctx, op, oracle, oracleABI, "getUnderlyingPrice", a.MarketAddress)
	if err != nil {
		return decimal.Zero, err
	}
	pb, err := c.readBig(ctx, op, oracle, oracleABI, "getUnderlyingPrice", b.MarketAddress)
	if err != nil {
		return decimal.Zero, err
	}
	rate, err := units.CrossRate(pa, a.UnderlyingDecimals, pb, b.UnderlyingDecimals)
	if err != nil {
		return decimal.Zero, onyxcommon.WrapError(op, onyxcommon.ErrTransactionFailed, err, "Oracle has no price for %s", b.UnderlyingSymbol)
	}
	return rate, nil
}

// exchangeRate returns how many underlying units one token of d's market is
// worth.
func (c *Client) exchangeRate(ctx context.Context, op string, profile *networks.Profile, d asset.Descriptor) (decimal.Decimal, error) {
	raw, err := c.readBig(ctx, op, d.MarketAddress, marketABI(d.IsNative(profile)), "exchangeRateCurrent")
	if err != nil {
		return decimal.Zero, err
	}
	return units.MarketTokenExchangeRate(raw, d.UnderlyingDecimals), nil
}
