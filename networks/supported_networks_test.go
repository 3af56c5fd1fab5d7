package networks_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/networks"
)

func newTestRegistry(t *testing.T) *networks.Registry {
	t.Helper()
	r, err := networks.NewRegistry(networks.EthereumMainnet, networks.Hardhat)
	require.NoError(t, err)
	return r
}

func TestResolveByIDAndName(t *testing.T) {
	r := newTestRegistry(t)

	p, err := r.Resolve("1")
	require.NoError(t, err)
	assert.Equal(t, "mainnet", p.GetName())

	p, err = r.Resolve("homestead")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), p.GetChainID())

	p, err = r.Resolve("localhost")
	require.NoError(t, err)
	assert.Equal(t, uint64(31337), p.GetChainID())
}

func TestResolveUnknownNetwork(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.Resolve("5")
	require.Error(t, err)
	assert.ErrorIs(t, err, onyxcommon.ErrUnsupportedNetwork)
	assert.Contains(t, err.Error(), "network id 5 is not supported")

	_, err = r.Resolve("sepolia")
	assert.ErrorIs(t, err, networks.ErrNetworkNotFound)
}

func TestDuplicateNamesAreRejected(t *testing.T) {
	dup, err := networks.NewProfile(networks.ProfileConfig{
		Name:    "fork",
		ChainID: 99,
		// clashes with the hardhat profile
		AlternativeNames: []string{"localhost"},
	})
	require.NoError(t, err)

	_, err = networks.NewRegistry(networks.Hardhat, dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "localhost")
}

func TestBuiltinProfilesAreComplete(t *testing.T) {
	for _, p := range []*networks.Profile{networks.EthereumMainnet, networks.Hardhat} {
		for _, name := range []string{networks.ComptrollerContract, networks.XCNContract, networks.GovernorContract} {
			_, err := p.LookupAddress(name)
			assert.NoError(t, err, "%s on %s", name, p.GetName())
		}
		for _, market := range networks.MarketTokens() {
			_, err := p.LookupAddress(market)
			assert.NoError(t, err, "%s on %s", market, p.GetName())

			d, err := p.LookupDecimals(market)
			require.NoError(t, err)
			assert.Equal(t, networks.MarketTokenDecimals, d)
		}
		for _, u := range networks.Underlyings() {
			_, err := p.LookupDecimals(u)
			assert.NoError(t, err, "%s on %s", u, p.GetName())
			if u != networks.NativeAsset {
				_, err = p.LookupAddress(u)
				assert.NoError(t, err, "%s on %s", u, p.GetName())
			}
		}
	}
}

func TestLookupFailsFast(t *testing.T) {
	_, err := networks.EthereumMainnet.LookupAddress("oDOGE")
	assert.ErrorIs(t, err, onyxcommon.ErrUnknownContract)

	_, err = networks.EthereumMainnet.LookupDecimals("DOGE")
	assert.ErrorIs(t, err, onyxcommon.ErrUnknownAsset)

	_, err = networks.EthereumMainnet.LookupAddress(networks.PriceFeedContract)
	assert.ErrorIs(t, err, onyxcommon.ErrUnknownContract)
}

func TestProfileIsImmutable(t *testing.T) {
	cfg := networks.EthereumMainnet.Config()
	cfg.Addresses["oUSDC"] = "0x0000000000000000000000000000000000000001"
	cfg.Decimals["USDC"] = 18

	addr, err := networks.EthereumMainnet.LookupAddress("oUSDC")
	require.NoError(t, err)
	assert.NotEqual(t, "0x0000000000000000000000000000000000000001", addr.Hex())

	d, err := networks.EthereumMainnet.LookupDecimals("USDC")
	require.NoError(t, err)
	assert.Equal(t, uint64(6), d)
}

func TestNewProfileRejectsBadAddress(t *testing.T) {
	_, err := networks.NewProfile(networks.ProfileConfig{
		Name:      "broken",
		ChainID:   7,
		Addresses: map[string]string{"oUSDC": "0xnotanaddress"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oUSDC")
}

func TestLoadCustomProfiles(t *testing.T) {
	dir := t.TempDir()

	jsonProfile := `{
		"name": "sepolia",
		"chain_id": 11155111,
		"native_token_symbol": "ETH",
		"default_nodes": {"sepolia-public": "https://rpc.sepolia.org"},
		"addresses": {"Comptroller": "0x1111111111111111111111111111111111111111", "oETH": "0x2222222222222222222222222222222222222222"},
		"decimals": {"ETH": 18}
	}`
	yamlProfile := `
name: devnet
alternative_names: [dev]
chain_id: 1337
addresses:
  Comptroller: "0x3333333333333333333333333333333333333333"
  oUSDC: "0x4444444444444444444444444444444444444444"
  USDC: "0x5555555555555555555555555555555555555555"
decimals:
  USDC: 6
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sepolia.json"), []byte(jsonProfile), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "devnet.yaml"), []byte(yamlProfile), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644))

	profiles, warnings := networks.LoadCustomProfiles(dir)
	require.Len(t, profiles, 2)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].Error(), "broken.json")

	r := newTestRegistry(t)
	for _, p := range profiles {
		r.Add(p)
	}

	dev, err := r.Resolve("dev")
	require.NoError(t, err)
	d, err := dev.LookupDecimals("oUSDC")
	require.NoError(t, err)
	assert.Equal(t, networks.MarketTokenDecimals, d)

	addr, err := r.Address("11155111", "oETH")
	require.NoError(t, err)
	assert.Equal(t, "0x2222222222222222222222222222222222222222", addr.Hex())
	assert.Len(t, r.Profiles(), 4)
}

func TestAddReplacesSameChainID(t *testing.T) {
	r := newTestRegistry(t)
	fork, err := networks.NewProfile(networks.ProfileConfig{Name: "my-fork", ChainID: 31337})
	require.NoError(t, err)

	r.Add(fork)

	p, err := r.Resolve("31337")
	require.NoError(t, err)
	assert.Equal(t, "my-fork", p.GetName())
	_, err = r.Resolve("localhost")
	assert.Error(t, err)
}

func TestPriceSymbolRemapsWrappedBitcoinOnly(t *testing.T) {
	assert.Equal(t, "BTC", networks.PriceSymbol("WBTC"))
	assert.Equal(t, "USDC", networks.PriceSymbol("USDC"))
}

func TestNameForChainID(t *testing.T) {
	assert.Equal(t, "mainnet", networks.NameForChainID(1))
	assert.Equal(t, "hardhat", networks.NameForChainID(31337))
	assert.Empty(t, networks.NameForChainID(424242))
}
