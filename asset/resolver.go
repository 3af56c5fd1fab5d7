// Package asset turns the symbols callers pass around (USDC, oUSDC, ETH...)
// into the addresses and precisions of a deployment.
package asset

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/networks"
)

// Mode selects which asset set a symbol is checked against.
type Mode int

const (
	// Strict accepts only symbols that have a market.
	Strict Mode = iota
	// PriceFeed also accepts assets the price feed knows but that have no
	// market. Only price lookups use it.
	PriceFeed
)

// Symbol is the network independent part of a descriptor.
type Symbol struct {
	Raw              string
	IsMarketToken    bool
	MarketSymbol     string
	UnderlyingSymbol string
	// PriceSymbol is what a price feed calls the underlying. It differs from
	// UnderlyingSymbol for WBTC only and never takes part in address lookups.
	PriceSymbol string
}

// Descriptor is a Symbol bound to a network profile.
type Descriptor struct {
	Symbol

	// HasMarket is false only in PriceFeed mode, for assets without a
	// deployed market. MarketAddress is the zero address then.
	HasMarket     bool
	MarketAddress common.Address
	// UnderlyingAddress is nil for the chain's native asset and, in
	// PriceFeed mode, for assets the profile has no address for.
	UnderlyingAddress  *common.Address
	UnderlyingDecimals uint64
}

// IsNative reports whether the underlying is the native asset of the
// profile the descriptor was resolved against.
func (d Descriptor) IsNative(profile *networks.Profile) bool {
	return d.UnderlyingSymbol == profile.GetNativeTokenSymbol()
}

// Parse validates raw without touching any network data. Errors carry op in
// their prefix and name the offending argument.
func Parse(op, argName, raw string, mode Mode) (Symbol, error) {
	if strings.TrimSpace(raw) == "" {
		return Symbol{}, onyxcommon.NewError(
			op, onyxcommon.ErrInvalidArgument,
			"Argument `%s` must be a non-empty string.", argName,
		)
	}

	known := networks.IsUnderlying
	if mode == PriceFeed {
		known = func(s string) bool {
			return networks.IsUnderlying(s) || networks.IsPriceFeedAsset(s)
		}
	}

	s := Symbol{Raw: raw}
	rest := strings.TrimPrefix(raw, networks.MarketTokenPrefix)
	switch {
	case rest != raw && known(rest):
		s.IsMarketToken = true
		s.UnderlyingSymbol = rest
	case known(raw):
		s.UnderlyingSymbol = raw
	case rest != raw:
		s.IsMarketToken = true
		s.UnderlyingSymbol = rest
	default:
		s.UnderlyingSymbol = raw
	}
	s.MarketSymbol = networks.MarketTokenPrefix + s.UnderlyingSymbol
	s.PriceSymbol = networks.PriceSymbol(s.UnderlyingSymbol)

	supported := networks.IsMarketToken(s.MarketSymbol) && networks.IsUnderlying(s.UnderlyingSymbol)
	if mode == PriceFeed && !s.IsMarketToken {
		supported = supported || networks.IsPriceFeedAsset(s.UnderlyingSymbol)
	}
	if !supported {
		return Symbol{}, onyxcommon.NewError(
			op, onyxcommon.ErrUnsupportedAsset,
			"Argument `%s` is not supported.", argName,
		)
	}
	return s, nil
}

// Resolve parses raw and binds it to profile.
func Resolve(op, argName, raw string, profile *networks.Profile, mode Mode) (Descriptor, error) {
	s, err := Parse(op, argName, raw, mode)
	if err != nil {
		return Descriptor{}, err
	}
	return Bind(op, s, profile, mode)
}

// Bind looks the addresses and precision of an already parsed symbol up in
// profile.
func Bind(op string, s Symbol, profile *networks.Profile, mode Mode) (Descriptor, error) {
	d := Descriptor{Symbol: s}

	marketAddr, err := profile.LookupAddress(s.MarketSymbol)
	switch {
	case err == nil:
		d.HasMarket = true
		d.MarketAddress = marketAddr
	case mode == PriceFeed && !s.IsMarketToken:
	default:
		return Descriptor{}, onyxcommon.WrapError(
			op, onyxcommon.ErrUnknownContract, err,
			"Market %s is not deployed on %s", s.MarketSymbol, profile.GetName(),
		)
	}

	if s.UnderlyingSymbol != profile.GetNativeTokenSymbol() {
		addr, err := profile.LookupAddress(s.UnderlyingSymbol)
		switch {
		case err == nil:
			d.UnderlyingAddress = &addr
		case mode == PriceFeed:
		default:
			return Descriptor{}, onyxcommon.WrapError(
				op, onyxcommon.ErrUnknownContract, err,
				"Underlying %s has no address on %s", s.UnderlyingSymbol, profile.GetName(),
			)
		}
	}

	d.UnderlyingDecimals, err = profile.LookupDecimals(s.UnderlyingSymbol)
	if err != nil {
		return Descriptor{}, onyxcommon.WrapError(
			op, onyxcommon.ErrUnknownAsset, err,
			"Underlying %s has no known precision on %s", s.UnderlyingSymbol, profile.GetName(),
		)
	}
	return d, nil
}
