package networks

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	onyxcommon "github.com/tranvictor/onyxkit/common"
)

// Insert more profiles here to support more deployments
var supportedProfiles = []*Profile{
	EthereumMainnet,
	Hardhat,
}

var ErrNetworkNotFound = fmt.Errorf("network not found: %w", onyxcommon.ErrUnsupportedNetwork)

// Registry maps network names, alternative names and chain ids to
// profiles. Lookups are safe to call concurrently.
type Registry struct {
	mu           sync.RWMutex
	networks     map[string]*Profile
	networksByID map[uint64]*Profile
}

// NewRegistry builds a registry out of profiles. Two profiles sharing a
// name or an alternative name is an error.
func NewRegistry(profiles ...*Profile) (*Registry, error) {
	r := &Registry{
		networks:     map[string]*Profile{},
		networksByID: map[uint64]*Profile{},
	}
	for _, p := range profiles {
		for _, name := range append([]string{p.GetName()}, p.GetAlternativeNames()...) {
			if _, found := r.networks[name]; found {
				return nil, fmt.Errorf("network with name or alternative name of '%s' already exists", name)
			}
			r.networks[name] = p
		}
		r.networksByID[p.GetChainID()] = p
	}
	return r, nil
}

// Add registers p, replacing any profile that shares its name, one of its
// alternative names or its chain id.
func (r *Registry) Add(p *Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if old, found := r.networksByID[p.GetChainID()]; found {
		r.removeLocked(old)
	}
	if old, found := r.networks[p.GetName()]; found {
		r.removeLocked(old)
	}
	r.networks[p.GetName()] = p
	for _, an := range p.GetAlternativeNames() {
		r.networks[an] = p
	}
	r.networksByID[p.GetChainID()] = p
}

func (r *Registry) removeLocked(p *Profile) {
	for name, n := range r.networks {
		if n == p {
			delete(r.networks, name)
		}
	}
	if r.networksByID[p.GetChainID()] == p {
		delete(r.networksByID, p.GetChainID())
	}
}

func (r *Registry) ByName(name string) (*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, found := r.networks[name]
	if !found {
		return nil, fmt.Errorf("network name '%s': %w", name, ErrNetworkNotFound)
	}
	return res, nil
}

func (r *Registry) ByChainID(id uint64) (*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, found := r.networksByID[id]
	if !found {
		return nil, fmt.Errorf("network id %d is not supported: %w", id, ErrNetworkNotFound)
	}
	return res, nil
}

// Resolve accepts either a decimal chain id or a network name.
func (r *Registry) Resolve(chainIDOrName string) (*Profile, error) {
	key := strings.TrimSpace(chainIDOrName)
	if id, err := strconv.ParseUint(key, 10, 64); err == nil {
		return r.ByChainID(id)
	}
	return r.ByName(key)
}

// Address looks name up in the profile of network.
func (r *Registry) Address(network, name string) (common.Address, error) {
	p, err := r.Resolve(network)
	if err != nil {
		return common.Address{}, err
	}
	return p.LookupAddress(name)
}

// Profiles returns every distinct profile sorted by chain id.
func (r *Registry) Profiles() []*Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]*Profile, 0, len(r.networksByID))
	for _, p := range r.networksByID {
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].GetChainID() < res[j].GetChainID()
	})
	return res
}

func (r *Registry) Names() []string {
	res := []string{}
	for _, p := range r.Profiles() {
		res = append(res, p.GetName())
		res = append(res, p.GetAlternativeNames()...)
	}
	return res
}

// LoadCustomProfiles reads every *.json, *.yaml and *.yml file in dir.
// A file that fails to parse is reported in the returned warnings and
// skipped.
func LoadCustomProfiles(dir string) ([]*Profile, []error) {
	warnings := []error{}
	files := []string{}
	for _, pattern := range []string{"*.json", "*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			warnings = append(warnings, fmt.Errorf("failed to glob %s files in %s: %w", pattern, dir, err))
			continue
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	profiles := []*Profile{}
	for _, file := range files {
		p, err := LoadProfileFile(file)
		if err != nil {
			warnings = append(warnings, err)
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, warnings
}

func LoadProfileFile(file string) (*Profile, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", file, err)
	}
	var p *Profile
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		p, err = NewProfileFromYAML(content)
	default:
		p, err = NewProfileFromJSON(content)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse network profile from file %s: %w", file, err)
	}
	return p, nil
}

// CustomProfilesDir is where Default looks for custom profiles.
func CustomProfilesDir() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get current user: %w", err)
	}
	return filepath.Join(usr.HomeDir, ".onyx", "networks"), nil
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process wide registry: the built-in profiles plus the
// custom profiles found in CustomProfilesDir, which take precedence.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		r, err := NewRegistry(supportedProfiles...)
		if err != nil {
			panic(err)
		}
		defaultRegistry = r

		dir, err := CustomProfilesDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: Failed to load custom networks: %s. Ignore and continue with built-in networks.\n", err)
			return
		}
		profiles, warnings := LoadCustomProfiles(dir)
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "WARNING: %s. Ignore and continue with other custom networks.\n", w)
		}
		for _, p := range profiles {
			r.Add(p)
		}
	})
	return defaultRegistry
}

// NameForChainID returns the name of the default registry's profile for id,
// or an empty string.
func NameForChainID(id uint64) string {
	p, err := Default().ByChainID(id)
	if err != nil {
		return ""
	}
	return p.GetName()
}
