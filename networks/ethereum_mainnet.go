package networks

var mainnetAddresses = map[string]string{
	ComptrollerContract: "0x7D61ed92a6778f5ABf5c94085739f1EDAbec2800",
	XCNContract:         "0xA2cd3D43c775978A96BdBf12d733D5A1ED94fb18",
	GovernorContract:    "0x5a322a84b6f895124da9972bb1c2dedfdc9678ca",

	"USDC": "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
	"USDT": "0xdAC17F958D2ee523a2206206994597C13D831ec7",
	"DAI":  "0x6B175474E89094C44Da98b954EedeAC495271d0F",
	"WBTC": "0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599",
	"UNI":  "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984",
	"LINK": "0x514910771AF9Ca656af840dff83E8264EcF986CA",
	"BUSD": "0x4Fabb145d64652a948d72533023f6E7A623C7C53",
	"PEPE": "0x6982508145454Ce325dDbE47a25d4ec3d2311933",
	"SHIB": "0x95aD61b0a150d79219dCF64E1E6Cc01f0B64C4cE",

	"oETH":  "0x2A5eaf0CaF7a8D9104338CD06687402e181603e4",
	"oUSDC": "0x76edce1d1d59bba10289f31603edc64da293d489",
	"oUSDT": "0x0c6df754f0823062b52d4f41fa4a239680d449fe",
	"oDAI":  "0x5b86fd0134e023cfdc24132926009d02e363ba7b",
	"oWBTC": "0x0ff84401e018f19b652d1a950e7f32a73f53da25",
	"oUNI":  "0x88126e1d80b7ece8ffcf785b6b1664b9cef2899f",
	"oLINK": "0x84c7b0dc623c87422a4fd4471769e3aa98781d93",
	"oBUSD": "0x2789e562f65e2fa7b9ca1c92742f5e0740cfdd4c",
	"oXCN":  "0x8b1ddfabc600730c4f55d02ee8e889c1d9225f7a",
	"oPEPE": "0x9aaacfc98750afe79151103492dc4601dddafa24",
	"oSHIB": "0x9d2a6b5adfbefc173de061a16ea9bf586e4410ca",
}

var mainnetDecimals = map[string]uint64{
	"ETH":  18,
	"USDC": 6,
	"USDT": 6,
	"DAI":  18,
	"WBTC": 8,
	"BTC":  8,
	"UNI":  18,
	"LINK": 18,
	"BUSD": 18,
	"XCN":  18,
	"PEPE": 18,
	"SHIB": 18,
}

var EthereumMainnet = mustNewProfile(ProfileConfig{
	Name:              "mainnet",
	AlternativeNames:  []string{"ethereum", "homestead"},
	ChainID:           1,
	NativeTokenSymbol: "ETH",
	NodeVariableName:  "ONYX_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"mainnet-publicnode": "https://ethereum-rpc.publicnode.com",
		"mainnet-llamarpc":   "https://eth.llamarpc.com",
	},
	Addresses: mainnetAddresses,
	Decimals:  mainnetDecimals,
})

// Hardhat is a local mainnet fork, so it shares the mainnet tables.
var Hardhat = mustNewProfile(ProfileConfig{
	Name:              "hardhat",
	AlternativeNames:  []string{"localhost"},
	ChainID:           31337,
	NativeTokenSymbol: "ETH",
	NodeVariableName:  "ONYX_HARDHAT_NODE",
	DefaultNodes: map[string]string{
		"localhost": "http://127.0.0.1:8545",
	},
	Addresses: mainnetAddresses,
	Decimals:  mainnetDecimals,
})
