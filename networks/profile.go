package networks

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"

	onyxcommon "github.com/tranvictor/onyxkit/common"
)

// ProfileConfig is the serializable form of a Profile, used by the built-in
// tables and by custom profile files.
type ProfileConfig struct {
	Name              string            `json:"name" yaml:"name"`
	AlternativeNames  []string          `json:"alternative_names,omitempty" yaml:"alternative_names,omitempty"`
	ChainID           uint64            `json:"chain_id" yaml:"chain_id"`
	NativeTokenSymbol string            `json:"native_token_symbol" yaml:"native_token_symbol"`
	NodeVariableName  string            `json:"node_variable_name,omitempty" yaml:"node_variable_name,omitempty"`
	DefaultNodes      map[string]string `json:"default_nodes,omitempty" yaml:"default_nodes,omitempty"`
	// Addresses maps market-token symbols, underlying symbols and core
	// contract names (Comptroller, XCN, Governor, PriceFeed) to addresses.
	Addresses map[string]string `json:"addresses" yaml:"addresses"`
	// Decimals maps asset symbols to their on-chain precision. Market
	// tokens that are missing here get MarketTokenDecimals.
	Decimals map[string]uint64 `json:"decimals" yaml:"decimals"`
}

// Profile is the address and precision table of one deployment. It is
// immutable once built by NewProfile and safe for concurrent use.
type Profile struct {
	config    ProfileConfig
	addresses map[string]common.Address
}

func NewProfile(config ProfileConfig) (*Profile, error) {
	if strings.TrimSpace(config.Name) == "" {
		return nil, fmt.Errorf("network profile must have a name")
	}
	if config.ChainID == 0 {
		return nil, fmt.Errorf("network profile %s must have a non zero chain id", config.Name)
	}
	if config.NativeTokenSymbol == "" {
		config.NativeTokenSymbol = "ETH"
	}

	cfg := ProfileConfig{
		Name:              config.Name,
		AlternativeNames:  append([]string{}, config.AlternativeNames...),
		ChainID:           config.ChainID,
		NativeTokenSymbol: config.NativeTokenSymbol,
		NodeVariableName:  config.NodeVariableName,
		DefaultNodes:      map[string]string{},
		Addresses:         map[string]string{},
		Decimals:          map[string]uint64{},
	}
	for k, v := range config.DefaultNodes {
		cfg.DefaultNodes[k] = v
	}
	for k, v := range config.Decimals {
		cfg.Decimals[k] = v
	}

	addresses := map[string]common.Address{}
	for name, hex := range config.Addresses {
		if !common.IsHexAddress(hex) {
			return nil, fmt.Errorf("network profile %s: address of %s (%q) is not a valid address", config.Name, name, hex)
		}
		cfg.Addresses[name] = hex
		addresses[name] = common.HexToAddress(hex)
		if IsMarketTokenSymbol(name) {
			if _, found := cfg.Decimals[name]; !found {
				cfg.Decimals[name] = MarketTokenDecimals
			}
		}
	}
	return &Profile{
		config:    cfg,
		addresses: addresses,
	}, nil
}

func mustNewProfile(config ProfileConfig) *Profile {
	p, err := NewProfile(config)
	if err != nil {
		panic(err)
	}
	return p
}

func NewProfileFromJSON(content []byte) (*Profile, error) {
	config := ProfileConfig{}
	if err := json.Unmarshal(content, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal network profile: %w", err)
	}
	return NewProfile(config)
}

func NewProfileFromYAML(content []byte) (*Profile, error) {
	config := ProfileConfig{}
	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal network profile: %w", err)
	}
	return NewProfile(config)
}

func (p *Profile) GetName() string {
	return p.config.Name
}

func (p *Profile) GetChainID() uint64 {
	return p.config.ChainID
}

func (p *Profile) GetAlternativeNames() []string {
	return append([]string{}, p.config.AlternativeNames...)
}

func (p *Profile) GetNativeTokenSymbol() string {
	return p.config.NativeTokenSymbol
}

func (p *Profile) GetNodeVariableName() string {
	return p.config.NodeVariableName
}

func (p *Profile) GetDefaultNodes() map[string]string {
	res := map[string]string{}
	for k, v := range p.config.DefaultNodes {
		res[k] = v
	}
	return res
}

// Nodes returns the nodes to talk to. A non empty value in the profile's
// node environment variable replaces the default nodes.
func (p *Profile) Nodes() map[string]string {
	if p.config.NodeVariableName != "" {
		if custom := strings.TrimSpace(os.Getenv(p.config.NodeVariableName)); custom != "" {
			return map[string]string{"custom-node": custom}
		}
	}
	return p.GetDefaultNodes()
}

// LookupAddress returns the address registered under a market-token symbol,
// an underlying symbol or a core contract name.
func (p *Profile) LookupAddress(name string) (common.Address, error) {
	addr, found := p.addresses[name]
	if !found {
		return common.Address{}, fmt.Errorf("%s has no address on %s: %w", name, p.config.Name, onyxcommon.ErrUnknownContract)
	}
	return addr, nil
}

func (p *Profile) HasAddress(name string) bool {
	_, found := p.addresses[name]
	return found
}

// LookupDecimals returns the on-chain precision of an asset symbol.
func (p *Profile) LookupDecimals(symbol string) (uint64, error) {
	d, found := p.config.Decimals[symbol]
	if !found {
		return 0, fmt.Errorf("%s has no decimals on %s: %w", symbol, p.config.Name, onyxcommon.ErrUnknownAsset)
	}
	return d, nil
}

// SymbolOf does the reverse of LookupAddress. Names are tried in sorted
// order so the result is stable when one address is registered twice.
func (p *Profile) SymbolOf(addr common.Address) (string, bool) {
	names := make([]string, 0, len(p.addresses))
	for name := range p.addresses {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if p.addresses[name] == addr {
			return name, true
		}
	}
	return "", false
}

// Config returns a deep copy of the profile's configuration.
func (p *Profile) Config() ProfileConfig {
	cfg := p.config
	cfg.AlternativeNames = p.GetAlternativeNames()
	cfg.DefaultNodes = p.GetDefaultNodes()
	cfg.Addresses = map[string]string{}
	for k, v := range p.config.Addresses {
		cfg.Addresses[k] = v
	}
	cfg.Decimals = map[string]uint64{}
	for k, v := range p.config.Decimals {
		cfg.Decimals[k] = v
	}
	return cfg
}

func (p *Profile) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Config())
}

func (p *Profile) String() string {
	return fmt.Sprintf("%s (chain id %d)", p.config.Name, p.config.ChainID)
}
