package units

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/networks"
)

// RatioPrecision is the number of fractional digits kept by the divisions
// in this package.
const RatioPrecision int32 = 18

// ToMantissa scales a to decimals. When alreadyScaled is set, or a is a
// ScaledInteger, the value must already be a whole number and is returned
// unchanged. Otherwise it is multiplied by 10^decimals and rounded half away
// from zero. Negative amounts are rejected.
func ToMantissa(a Amount, decimals uint64, alreadyScaled bool) (*big.Int, error) {
	d, err := parse(a, alreadyScaled)
	if err != nil {
		return nil, err
	}
	if alreadyScaled || a.kind == KindScaledInteger {
		return d.BigInt(), nil
	}
	return d.Shift(int32(decimals)).Round(0).BigInt(), nil
}

// Validate runs the checks of ToMantissa that do not depend on the asset.
func Validate(a Amount, alreadyScaled bool) error {
	_, err := parse(a, alreadyScaled)
	return err
}

func parse(a Amount, alreadyScaled bool) (decimal.Decimal, error) {
	var d decimal.Decimal
	switch a.kind {
	case KindDecimalString:
		parsed, err := decimal.NewFromString(strings.TrimSpace(a.text))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%q is not a number: %w", a.text, onyxcommon.ErrInvalidAmount)
		}
		d = parsed
	case KindInteger, KindScaledInteger:
		d = decimal.NewFromBigInt(a.value, 0)
	default:
		return decimal.Zero, fmt.Errorf("amount is %s: %w", a.kind, onyxcommon.ErrInvalidAmount)
	}

	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s is negative: %w", a, onyxcommon.ErrInvalidAmount)
	}
	if (alreadyScaled || a.kind == KindScaledInteger) && !d.IsInteger() {
		return decimal.Zero, fmt.Errorf("%s is not a whole mantissa: %w", a, onyxcommon.ErrInvalidAmount)
	}
	return d, nil
}

// ToHuman is the inverse of ToMantissa.
func ToHuman(mantissa *big.Int, decimals uint64) decimal.Decimal {
	return decimal.NewFromBigInt(mantissa, -int32(decimals))
}

// CrossRate expresses one unit of asset A in units of asset B given both
// oracle prices. priceA is first moved to B's decimal base, multiplying by
// 10^(decimalsA-decimalsB) or dividing by 10^(decimalsB-decimalsA), and then
// divided by priceB.
func CrossRate(priceA *big.Int, decimalsA uint64, priceB *big.Int, decimalsB uint64) (decimal.Decimal, error) {
	if priceA == nil || priceB == nil {
		return decimal.Zero, fmt.Errorf("missing price: %w", onyxcommon.ErrInvalidArgument)
	}
	if priceB.Sign() == 0 {
		return decimal.Zero, fmt.Errorf("price of the quote asset is zero: %w", onyxcommon.ErrInvalidArgument)
	}
	a := decimal.NewFromBigInt(priceA, 0).Shift(int32(decimalsA) - int32(decimalsB))
	return a.DivRound(decimal.NewFromBigInt(priceB, 0), RatioPrecision), nil
}

// MarketTokenExchangeRate turns the raw exchangeRateCurrent of a market
// into how many underlying units one market token is worth.
func MarketTokenExchangeRate(raw *big.Int, underlyingDecimals uint64) decimal.Decimal {
	scale := 18 + int32(underlyingDecimals) - int32(networks.MarketTokenDecimals)
	return decimal.NewFromBigInt(raw, -scale)
}

// ComposePrice combines the cross rate of the two underlyings with the
// exchange rates of whichever sides are market tokens. A nil rate means that
// side is a plain underlying.
//
//	neither:   aInB
//	A only:    aInB * rateA
//	B only:    aInB / rateB
//	both:      rateB * (aInB / rateA)
func ComposePrice(aInB decimal.Decimal, rateA, rateB *decimal.Decimal) (decimal.Decimal, error) {
	if rateA != nil && rateA.IsZero() || rateB != nil && rateB.IsZero() {
		return decimal.Zero, fmt.Errorf("market exchange rate is zero: %w", onyxcommon.ErrInvalidArgument)
	}
	switch {
	case rateA == nil && rateB == nil:
		return aInB, nil
	case rateA != nil && rateB == nil:
		return aInB.Mul(*rateA), nil
	case rateA == nil && rateB != nil:
		return aInB.DivRound(*rateB, RatioPrecision), nil
	default:
		return rateB.Mul(aInB.DivRound(*rateA, RatioPrecision)), nil
	}
}
