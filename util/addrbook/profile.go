package addrbook

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/tranvictor/onyxkit/networks"
)

// Profile resolves addresses against the address table of one network.
type Profile struct {
	profile *networks.Profile
}

// NewProfile returns a resolver for p. A nil p knows no address.
func NewProfile(p *networks.Profile) AddressResolver {
	return Profile{profile: p}
}

func (r Profile) Resolve(addr common.Address) string {
	if r.profile == nil {
		return Unknown
	}
	if name, found := r.profile.SymbolOf(addr); found {
		return name
	}
	return Unknown
}
