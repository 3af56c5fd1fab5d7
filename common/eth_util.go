package common

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Names of the contract ABIs known to the client. The names double as the
// keys callers pass to ABIFor.
const (
	ERC20ABIName       = "ERC20"
	OErc20ABIName      = "oErc20"
	OEtherABIName      = "oEther"
	ComptrollerABIName = "Comptroller"
	PriceOracleABIName = "PriceOracle"
	PriceFeedABIName   = "PriceFeed"
	XCNABIName         = "XCN"
	GovernorABIName    = "Governor"
)

var rawABIs = map[string]string{
	ERC20ABIName:       erc20ABI,
	OErc20ABIName:      oErc20ABI,
	OEtherABIName:      oEtherABI,
	ComptrollerABIName: comptrollerABI,
	PriceOracleABIName: priceOracleABI,
	PriceFeedABIName:   priceFeedABI,
	XCNABIName:         xcnABI,
	GovernorABIName:    governorABI,
}

var (
	parsedABIs     map[string]*abi.ABI
	parsedABIsOnce sync.Once
)

func mustParseABIs() map[string]*abi.ABI {
	parsedABIsOnce.Do(func() {
		parsedABIs = map[string]*abi.ABI{}
		for name, raw := range rawABIs {
			a, err := abi.JSON(strings.NewReader(raw))
			if err != nil {
				panic(fmt.Errorf("abi %s is malformed: %w", name, err))
			}
			parsedABIs[name] = &a
		}
	})
	return parsedABIs
}

// ABIFor returns the parsed ABI registered under name.
func ABIFor(name string) (*abi.ABI, error) {
	a, found := mustParseABIs()[name]
	if !found {
		return nil, fmt.Errorf("abi %q: %w", name, ErrUnknownContract)
	}
	return a, nil
}

// MustABI is ABIFor for names that are compiled into the binary.
func MustABI(name string) *abi.ABI {
	a, err := ABIFor(name)
	if err != nil {
		panic(err)
	}
	return a
}

func GetERC20ABI() *abi.ABI {
	return MustABI(ERC20ABIName)
}

// ABINames lists every known ABI name in a stable order.
func ABINames() []string {
	res := make([]string, 0, len(rawABIs))
	for name := range rawABIs {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// EventByID looks an event up by its topic across every known ABI.
func EventByID(topic common.Hash) (*abi.Event, bool) {
	abis := mustParseABIs()
	for _, name := range ABINames() {
		if ev, err := abis[name].EventByID(topic); err == nil {
			return ev, true
		}
	}
	return nil, false
}

func HexToAddress(hex string) common.Address {
	return common.HexToAddress(hex)
}

// IsAddress reports whether s is a 20 byte hex address, with or without
// the 0x prefix.
func IsAddress(s string) bool {
	return common.IsHexAddress(s)
}
