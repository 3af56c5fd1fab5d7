package onyx_test

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/networks"
	"github.com/tranvictor/onyxkit/onyx"
)

var oracleAddress = common.HexToAddress("0x00000000000000000000000000000000000a11ce")

// withOracle answers oracle reads with prices in the 10^(36 - decimals)
// scale: ETH at 2000, USDC at 1 and DAI at 1. oETH is worth 0.02 ETH and
// oUSDC 0.025 USDC.
func withOracle(t *testing.T, f *fakeTransport) {
	p := networks.Hardhat
	prices := map[common.Address]*big.Int{
		addr(t, p, "oETH"):  bigString(t, "2000000000000000000000"),
		addr(t, p, "oUSDC"): bigString(t, "1000000000000000000000000000000"),
		addr(t, p, "oDAI"):  bigString(t, "1000000000000000000"),
	}
	rates := map[common.Address]*big.Int{
		addr(t, p, "oETH"):  bigString(t, "200000000000000000000000000"),
		addr(t, p, "oUSDC"): bigString(t, "250000000000000"),
	}
	f.returns("oracle", oracleAddress)
	f.onRead("getUnderlyingPrice", func(to common.Address, params []interface{}) ([]interface{}, error) {
		if to != oracleAddress {
			return nil, fmt.Errorf("price read from %s", to.Hex())
		}
		price, found := prices[params[0].(common.Address)]
		if !found {
			return nil, fmt.Errorf("no price")
		}
		return []interface{}{price}, nil
	})
	f.onRead("exchangeRateCurrent", func(to common.Address, _ []interface{}) ([]interface{}, error) {
		rate, found := rates[to]
		if !found {
			return nil, fmt.Errorf("no rate")
		}
		return []interface{}{rate}, nil
	})
}

func TestGetPriceFromOracle(t *testing.T) {
	cases := []struct {
		asset    string
		inAsset  string
		expected string
	}{
		{"ETH", "USDC", "2000"},
		{"ETH", "", "2000"},
		{"USDC", "ETH", "0.0005"},
		{"DAI", "USDC", "1"},
		{"USDC", "USDC", "1"},
		// oETH only: 2000 * 0.02
		{"oETH", "USDC", "40"},
		// oUSDC only: 2000 / 0.025
		{"ETH", "oUSDC", "80000"},
		// both: 0.025 * (2000 / 0.02)
		{"oETH", "oUSDC", "2500"},
	}
	for _, tc := range cases {
		t.Run(tc.asset+"/"+tc.inAsset, func(t *testing.T) {
			f := newFakeTransport(t)
			withOracle(t, f)
			c := newTestClient(t, f, onyx.Options{})

			price, err := c.Price(context.Background(), tc.asset, tc.inAsset)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, price.String())
			for _, call := range f.recorded() {
				assert.Equal(t, "read", call.Kind)
			}
		})
	}
}

func TestGetPriceReturnsFloat(t *testing.T) {
	f := newFakeTransport(t)
	withOracle(t, f)
	c := newTestClient(t, f, onyx.Options{})

	price, err := c.GetPrice(context.Background(), "oETH", "USDC")
	require.NoError(t, err)
	assert.InDelta(t, 40.0, price, 1e-9)
}

func TestGetPriceFromPriceFeed(t *testing.T) {
	f := newFakeTransport(t)
	f.chainID = 424242
	feedPrices := map[string]int64{"ETH": 2000000000, "USDC": 1000000, "BTC": 30000000000}
	f.onRead("price", func(to common.Address, params []interface{}) ([]interface{}, error) {
		price, found := feedPrices[params[0].(string)]
		if !found {
			return nil, fmt.Errorf("no price for %v", params[0])
		}
		return []interface{}{big.NewInt(price)}, nil
	})
	c := newTestClient(t, f, onyx.Options{})
	ctx := context.Background()

	price, err := c.Price(ctx, "WBTC", "USDC")
	require.NoError(t, err)
	assert.Equal(t, "30000", price.String())

	price, err = c.Price(ctx, "BTC", "ETH")
	require.NoError(t, err)
	assert.Equal(t, "15", price.String())

	for _, call := range f.recorded() {
		assert.Equal(t, "price", call.Method)
		assert.NotEqual(t, "WBTC", call.Params[0])
	}
}

func TestGetPriceRejectsUnknownAssets(t *testing.T) {
	f := newFakeTransport(t)
	withOracle(t, f)
	c := newTestClient(t, f, onyx.Options{})
	ctx := context.Background()

	_, err := c.GetPrice(ctx, "", "USDC")
	assert.EqualError(t, err, "Onyx [getPrice] | Argument `asset` must be a non-empty string.")
	_, err = c.GetPrice(ctx, "ETH", "DOGE")
	assert.EqualError(t, err, "Onyx [getPrice] | Argument `inAsset` is not supported.")
	_, err = c.GetPrice(ctx, "oBTC", "USDC")
	assert.ErrorIs(t, err, onyxcommon.ErrUnsupportedAsset)

	// BTC has a feed price but no market for the oracle to price.
	_, err = c.GetPrice(ctx, "BTC", "USDC")
	assert.ErrorIs(t, err, onyxcommon.ErrUnknownContract)
}

func TestGetPriceZeroQuoteFails(t *testing.T) {
	f := newFakeTransport(t)
	f.returns("oracle", oracleAddress)
	f.returns("getUnderlyingPrice", big.NewInt(0))
	c := newTestClient(t, f, onyx.Options{})

	_, err := c.GetPrice(context.Background(), "ETH", "USDC")
	assert.ErrorIs(t, err, onyxcommon.ErrTransactionFailed)
}
