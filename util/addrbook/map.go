package addrbook

import (
	"github.com/ethereum/go-ethereum/common"
)

// Map is a lightweight AddressResolver for tests. Anything not in the map
// resolves to Unknown.
//
// Example:
//
//	r := addrbook.Map{
//	    common.HexToAddress("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48"): "USDC",
//	}
type Map map[common.Address]string

func (m Map) Resolve(addr common.Address) string {
	if name, ok := m[addr]; ok {
		return name
	}
	return Unknown
}
