package units_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/units"
)

func bigFromString(t *testing.T, s string) *big.Int {
	t.Helper()
	b, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, s)
	return b
}

// --------------------------------------------------------------------------
// ToMantissa
// --------------------------------------------------------------------------

func TestToMantissa(t *testing.T) {
	cases := []struct {
		name     string
		amount   units.Amount
		decimals uint64
		scaled   bool
		want     string
	}{
		{"decimal string", units.DecimalString("1.5"), 6, false, "1500000"},
		{"float", units.Float(0.1), 18, false, "100000000000000000"},
		{"integer", units.Int(2), 6, false, "2000000"},
		{"rounds half up", units.DecimalString("0.0000005"), 6, false, "1"},
		{"rounds down", units.DecimalString("0.0000004"), 6, false, "0"},
		{"already scaled string", units.DecimalString("123"), 18, true, "123"},
		{"already scaled integer", units.Int(123), 18, true, "123"},
		{"scaled integer ignores flag", units.ScaledInteger(big.NewInt(42)), 18, false, "42"},
		{"big decimal", units.DecimalString("123456789.123456789123456789"), 18, false, "123456789123456789123456789"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := units.ToMantissa(c.amount, c.decimals, c.scaled)
			require.NoError(t, err)
			assert.Equal(t, c.want, got.String())
		})
	}
}

func TestToMantissaRejectsBadAmounts(t *testing.T) {
	cases := []struct {
		name   string
		amount units.Amount
		scaled bool
	}{
		{"zero value", units.Amount{}, false},
		{"nil integer", units.Integer(nil), false},
		{"not a number", units.DecimalString("one"), false},
		{"empty string", units.DecimalString(""), false},
		{"negative", units.DecimalString("-1"), false},
		{"fractional mantissa", units.DecimalString("1.5"), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := units.ToMantissa(c.amount, 18, c.scaled)
			require.Error(t, err)
			assert.ErrorIs(t, err, onyxcommon.ErrInvalidAmount)
			assert.ErrorIs(t, err, onyxcommon.ErrInvalidArgument)
			assert.ErrorIs(t, units.Validate(c.amount, c.scaled), onyxcommon.ErrInvalidAmount)
		})
	}
}

func TestMantissaRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, decimals := range []uint64{0, 6, 8, 18} {
		for i := 0; i < 200; i++ {
			m := new(big.Int).Rand(rng, new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil))
			human := units.ToHuman(m, decimals)
			back, err := units.ToMantissa(units.DecimalString(human.String()), decimals, false)
			require.NoError(t, err)
			assert.Equal(t, 0, m.Cmp(back), "decimals %d mantissa %s", decimals, m)
		}
	}
}

// --------------------------------------------------------------------------
// CrossRate
// --------------------------------------------------------------------------

func TestCrossRateOfAssetWithItselfIsOne(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, d := range []uint64{0, 6, 8, 18, 30} {
		for i := 0; i < 50; i++ {
			p := new(big.Int).Add(big.NewInt(1), new(big.Int).Rand(rng, big.NewInt(1e18)))
			r, err := units.CrossRate(p, d, p, d)
			require.NoError(t, err)
			assert.True(t, r.Equal(decimal.NewFromInt(1)), "price %s decimals %d gave %s", p, d, r)
		}
	}
}

func TestCrossRateRescalesByDecimalDelta(t *testing.T) {
	// 18 decimal asset priced 2000 vs 6 decimal asset priced 1
	r, err := units.CrossRate(big.NewInt(2000), 18, big.NewInt(1), 6)
	require.NoError(t, err)
	assert.Equal(t, "2000000000000000", r.String())

	r, err = units.CrossRate(big.NewInt(2000), 6, big.NewInt(1), 18)
	require.NoError(t, err)
	assert.Equal(t, "0.000000002", r.String())
}

func TestCrossRateRejectsZeroQuote(t *testing.T) {
	_, err := units.CrossRate(big.NewInt(1), 18, big.NewInt(0), 18)
	assert.ErrorIs(t, err, onyxcommon.ErrInvalidArgument)
}

// --------------------------------------------------------------------------
// Market token exchange rate and price composition
// --------------------------------------------------------------------------

func TestMarketTokenExchangeRate(t *testing.T) {
	// 0.02 USDC per oUSDC: scale is 18 + 6 - 8 = 16
	rate := units.MarketTokenExchangeRate(bigFromString(t, "200000000000000"), 6)
	assert.Equal(t, "0.02", rate.String())

	// 0.02 ETH per oETH: scale is 18 + 18 - 8 = 28
	rate = units.MarketTokenExchangeRate(bigFromString(t, "200000000000000000000000000"), 18)
	assert.Equal(t, "0.02", rate.String())
}

func TestComposePriceBranches(t *testing.T) {
	aInB := decimal.NewFromInt(2000)
	rateA := decimal.RequireFromString("0.02")
	rateB := decimal.RequireFromString("0.5")

	got, err := units.ComposePrice(aInB, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "2000", got.String(), "neither side is a market token")

	got, err = units.ComposePrice(aInB, &rateA, nil)
	require.NoError(t, err)
	assert.Equal(t, "40", got.String(), "asset is a market token")

	got, err = units.ComposePrice(aInB, nil, &rateB)
	require.NoError(t, err)
	assert.Equal(t, "4000", got.String(), "quote is a market token")

	got, err = units.ComposePrice(aInB, &rateA, &rateB)
	require.NoError(t, err)
	assert.Equal(t, "50000", got.String(), "both are market tokens")
}

func TestComposePriceRejectsZeroRate(t *testing.T) {
	zero := decimal.Zero
	_, err := units.ComposePrice(decimal.NewFromInt(1), nil, &zero)
	assert.ErrorIs(t, err, onyxcommon.ErrInvalidArgument)
}
