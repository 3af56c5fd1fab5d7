package asset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/onyxkit/asset"
	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/networks"
)

func TestUnderlyingAndMarketFormsShareUnderlyingAddress(t *testing.T) {
	p := networks.EthereumMainnet
	for _, u := range networks.Underlyings() {
		plain, err := asset.Resolve("supply", "asset", u, p, asset.Strict)
		require.NoError(t, err, u)
		market, err := asset.Resolve("supply", "asset", "o"+u, p, asset.Strict)
		require.NoError(t, err, u)

		assert.False(t, plain.IsMarketToken, u)
		assert.True(t, market.IsMarketToken, u)
		assert.Equal(t, plain.UnderlyingAddress, market.UnderlyingAddress, u)
		assert.Equal(t, plain.MarketAddress, market.MarketAddress, u)
		assert.Equal(t, plain.UnderlyingDecimals, market.UnderlyingDecimals, u)
		assert.Equal(t, "o"+u, market.MarketSymbol)
		assert.Equal(t, u, market.UnderlyingSymbol)
	}
}

func TestNativeAssetHasNoUnderlyingAddress(t *testing.T) {
	d, err := asset.Resolve("supply", "asset", "ETH", networks.EthereumMainnet, asset.Strict)
	require.NoError(t, err)
	assert.Nil(t, d.UnderlyingAddress)
	assert.True(t, d.IsNative(networks.EthereumMainnet))
	assert.Equal(t, "0x2A5eaf0CaF7a8D9104338CD06687402e181603e4", d.MarketAddress.Hex())
	assert.Equal(t, uint64(18), d.UnderlyingDecimals)
}

func TestResolveRejectsEmptySymbol(t *testing.T) {
	_, err := asset.Resolve("redeem", "asset", "", networks.EthereumMainnet, asset.Strict)
	require.Error(t, err)
	assert.ErrorIs(t, err, onyxcommon.ErrInvalidArgument)
	assert.Equal(t, "Onyx [redeem] | Argument `asset` must be a non-empty string.", err.Error())
}

func TestResolveRejectsUnsupportedSymbols(t *testing.T) {
	for _, raw := range []string{"DOGE", "oDOGE", "usdc", "OUSDC", "BTC", "oBTC"} {
		_, err := asset.Resolve("redeem", "asset", raw, networks.EthereumMainnet, asset.Strict)
		require.Error(t, err, raw)
		assert.ErrorIs(t, err, onyxcommon.ErrUnsupportedAsset, raw)
		assert.Equal(t, "Onyx [redeem] | Argument `asset` is not supported.", err.Error())
	}
}

func TestPriceFeedModeAcceptsFeedOnlyAssets(t *testing.T) {
	d, err := asset.Resolve("getPrice", "asset", "BTC", networks.EthereumMainnet, asset.PriceFeed)
	require.NoError(t, err)
	assert.False(t, d.HasMarket)
	assert.Nil(t, d.UnderlyingAddress)
	assert.Equal(t, uint64(8), d.UnderlyingDecimals)

	_, err = asset.Resolve("getPrice", "inAsset", "oBTC", networks.EthereumMainnet, asset.PriceFeed)
	require.Error(t, err)
	assert.Equal(t, "Onyx [getPrice] | Argument `inAsset` is not supported.", err.Error())
}

func TestWrappedBitcoinRemapOnlyAffectsPriceSymbol(t *testing.T) {
	wbtc, err := asset.Resolve("getPrice", "asset", "WBTC", networks.EthereumMainnet, asset.PriceFeed)
	require.NoError(t, err)
	assert.Equal(t, "BTC", wbtc.PriceSymbol)
	assert.Equal(t, "WBTC", wbtc.UnderlyingSymbol)

	want, err := networks.EthereumMainnet.LookupAddress("WBTC")
	require.NoError(t, err)
	require.NotNil(t, wbtc.UnderlyingAddress)
	assert.Equal(t, want, *wbtc.UnderlyingAddress)

	market, err := networks.EthereumMainnet.LookupAddress("oWBTC")
	require.NoError(t, err)
	assert.Equal(t, market, wbtc.MarketAddress)
}

func TestMarketTokenInterpretationWins(t *testing.T) {
	s, err := asset.Parse("redeem", "asset", "oXCN", asset.Strict)
	require.NoError(t, err)
	assert.True(t, s.IsMarketToken)
	assert.Equal(t, "XCN", s.UnderlyingSymbol)
	assert.Equal(t, "oXCN", s.MarketSymbol)
}

func TestBindFailsFastOnIncompleteProfile(t *testing.T) {
	sparse, err := networks.NewProfile(networks.ProfileConfig{
		Name:      "sparse",
		ChainID:   4242,
		Addresses: map[string]string{"oUSDC": "0x4444444444444444444444444444444444444444"},
		Decimals:  map[string]uint64{"USDC": 6},
	})
	require.NoError(t, err)

	_, err = asset.Resolve("supply", "asset", "USDC", sparse, asset.Strict)
	require.Error(t, err)
	assert.ErrorIs(t, err, onyxcommon.ErrUnknownContract)
	assert.Contains(t, err.Error(), "Onyx [supply] | ")

	_, err = asset.Resolve("supply", "asset", "DAI", sparse, asset.Strict)
	assert.ErrorIs(t, err, onyxcommon.ErrUnknownContract)
}
