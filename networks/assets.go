package networks

import "strings"

// MarketTokenPrefix marks market-token symbols, e.g. oUSDC. It is case
// sensitive.
const MarketTokenPrefix = "o"

// MarketTokenDecimals is the precision every market token reports.
const MarketTokenDecimals uint64 = 8

// Names of the core contracts in a profile's address table.
const (
	ComptrollerContract = "Comptroller"
	PriceFeedContract   = "PriceFeed"
	XCNContract         = "XCN"
	GovernorContract    = "Governor"
)

// NativeAsset is the underlying whose market token takes value attached to
// the call instead of an ERC-20 allowance.
const NativeAsset = "ETH"

var underlyingAssets = []string{
	"ETH",
	"USDC",
	"USDT",
	"DAI",
	"WBTC",
	"UNI",
	"LINK",
	"BUSD",
	"XCN",
	"PEPE",
	"SHIB",
}

// priceFeedOnlyAssets can be priced but have no market.
var priceFeedOnlyAssets = []string{
	"BTC",
}

var (
	underlyingSet = map[string]bool{}
	marketSet     = map[string]bool{}
	priceFeedSet  = map[string]bool{}
)

func init() {
	for _, s := range underlyingAssets {
		underlyingSet[s] = true
		marketSet[MarketTokenPrefix+s] = true
		priceFeedSet[s] = true
	}
	for _, s := range priceFeedOnlyAssets {
		priceFeedSet[s] = true
	}
}

// Underlyings returns every supported underlying symbol.
func Underlyings() []string {
	return append([]string{}, underlyingAssets...)
}

// MarketTokens returns every supported market-token symbol.
func MarketTokens() []string {
	res := make([]string, 0, len(underlyingAssets))
	for _, s := range underlyingAssets {
		res = append(res, MarketTokenPrefix+s)
	}
	return res
}

func IsUnderlying(symbol string) bool {
	return underlyingSet[symbol]
}

func IsMarketToken(symbol string) bool {
	return marketSet[symbol]
}

func IsPriceFeedAsset(symbol string) bool {
	return priceFeedSet[symbol]
}

// IsMarketTokenSymbol reports whether symbol has the shape of a market
// token, without checking it is supported.
func IsMarketTokenSymbol(symbol string) bool {
	return len(symbol) > len(MarketTokenPrefix) && strings.HasPrefix(symbol, MarketTokenPrefix)
}

// PriceSymbol is the symbol an open price feed knows an underlying by. The
// feed reports BTC rather than WBTC.
func PriceSymbol(underlying string) string {
	if underlying == "WBTC" {
		return "BTC"
	}
	return underlying
}
