package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	PrivateKeyEnv       = "ONYX_PRIVATE_KEY"
	MnemonicEnv         = "ONYX_MNEMONIC"
	KeystoreEnv         = "ONYX_KEYSTORE"
	KeystorePasswordEnv = "ONYX_KEYSTORE_PASSWORD"

	DefaultNetwork       = "mainnet"
	DefaultConfirmations = 1
)

// Flag-bound settings shared by every onyx command.
var (
	Network        string
	Node           string
	ConfigFile     string
	DerivationPath string
	Mantissa       bool
	NoApprove      bool
	GasLimit       uint64
	NoWait         bool
	Confirmations  uint64
	Verbose        bool
	NoColor        bool
	Yes            bool
	JSONOutput     bool
	APIBaseURL     string
)

// File is the optional YAML config file. Every field is a default that an
// explicitly passed flag overrides.
type File struct {
	Network        string `yaml:"network"`
	Node           string `yaml:"node"`
	DerivationPath string `yaml:"derivation_path"`
	Confirmations  uint64 `yaml:"confirmations"`
	GasLimit       uint64 `yaml:"gas_limit"`
	NoApprove      bool   `yaml:"no_approve"`
	APIBaseURL     string `yaml:"api_base_url"`
}

// DefaultFilePath returns ~/.onyx/config.yaml.
func DefaultFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".onyx", "config.yaml"), nil
}

// Load reads and validates a config file. A missing file at the default
// location is not an error and yields an empty File.
func Load(path string) (File, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultFilePath()
		if err != nil {
			return File{}, nil
		}
		path = p
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return File{}, nil
		}
		return File{}, fmt.Errorf("read config: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(content, &f); err != nil {
		return File{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	f.normalize()
	if err := f.validate(); err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

func (f *File) normalize() {
	f.Network = strings.ToLower(strings.TrimSpace(f.Network))
	f.Node = strings.TrimSpace(f.Node)
	f.DerivationPath = strings.TrimSpace(f.DerivationPath)
	f.APIBaseURL = strings.TrimRight(strings.TrimSpace(f.APIBaseURL), "/")
}

func (f *File) validate() error {
	if f.DerivationPath != "" && !strings.HasPrefix(f.DerivationPath, "m/") {
		return fmt.Errorf("derivation_path %q must start with m/", f.DerivationPath)
	}
	if f.APIBaseURL != "" && !strings.HasPrefix(f.APIBaseURL, "http://") && !strings.HasPrefix(f.APIBaseURL, "https://") {
		return fmt.Errorf("api_base_url %q must be an http(s) URL", f.APIBaseURL)
	}
	return nil
}

// Apply copies the file's values into the globals whose flags were not
// set explicitly. changed reports whether a flag was passed.
func (f File) Apply(changed func(flag string) bool) {
	if f.Network != "" && !changed("network") {
		Network = f.Network
	}
	if f.Node != "" && !changed("node") {
		Node = f.Node
	}
	if f.DerivationPath != "" && !changed("derivation-path") {
		DerivationPath = f.DerivationPath
	}
	if f.Confirmations != 0 && !changed("confirmations") {
		Confirmations = f.Confirmations
	}
	if f.GasLimit != 0 && !changed("gas") {
		GasLimit = f.GasLimit
	}
	if f.NoApprove && !changed("no-approve") {
		NoApprove = true
	}
	if f.APIBaseURL != "" && !changed("api-url") {
		APIBaseURL = f.APIBaseURL
	}
}

// Source returns what the client should dial: the explicit node URL when
// given, otherwise the network name.
func Source() string {
	if Node != "" {
		return Node
	}
	if Network != "" {
		return Network
	}
	return DefaultNetwork
}
