package addrbook_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/onyxkit/networks"
	"github.com/tranvictor/onyxkit/util/addrbook"
)

func TestProfileResolvesRegisteredNames(t *testing.T) {
	p, err := networks.Default().ByName("mainnet")
	require.NoError(t, err)
	oETH, err := p.LookupAddress("oETH")
	require.NoError(t, err)

	r := addrbook.NewProfile(p)
	assert.Equal(t, "oETH", r.Resolve(oETH))
	assert.Equal(t, addrbook.Unknown, r.Resolve(common.HexToAddress("0xdead")))
	assert.Equal(t, addrbook.Unknown, addrbook.NewProfile(nil).Resolve(oETH))
}

func TestLabel(t *testing.T) {
	usdc := common.HexToAddress("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48")
	r := addrbook.Map{usdc: "USDC"}
	assert.Equal(t, usdc.Hex()+" (USDC)", addrbook.Label(r, usdc))
	assert.Equal(t, common.HexToAddress("0x1").Hex(), addrbook.Label(r, common.HexToAddress("0x1")))
}
