// Package addrbook maps raw addresses to the names a network profile
// registers for them, so receipts and listings can show "oUSDC" instead of
// a bare hex address.
//
// Production code uses [Profile]. Tests inject [Map], which resolves to
// fixed names without any registry.
package addrbook

import (
	"github.com/ethereum/go-ethereum/common"
)

// Unknown is the name of an address no resolver knows.
const Unknown = "unknown"

// AddressResolver maps an address to a human-readable name.
//
// Contract: if the address is not known, the name is Unknown.
type AddressResolver interface {
	Resolve(addr common.Address) string
}

// Label renders addr followed by its name when r knows it.
func Label(r AddressResolver, addr common.Address) string {
	name := r.Resolve(addr)
	if name == Unknown {
		return addr.Hex()
	}
	return addr.Hex() + " (" + name + ")"
}
