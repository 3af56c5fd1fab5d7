package transport

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/networks"
	"github.com/tranvictor/onyxkit/util/account"
	"github.com/tranvictor/onyxkit/util/broadcaster"
	"github.com/tranvictor/onyxkit/util/monitor"
	"github.com/tranvictor/onyxkit/util/reader"
)

// DefaultNetwork is used when Config.Source is empty.
const DefaultNetwork = "mainnet"

// Config describes the connection Dial builds.
type Config struct {
	// Source is one of:
	//   - "" or nil: the default nodes of DefaultNetwork
	//   - a node URL (http, https, ws, wss or a path to an IPC socket)
	//   - a network name known to Registry: its nodes
	//   - map[string]string: node name to node URL
	//   - *rpc.Client: a connection the caller already holds
	Source interface{}
	// PrivateKey, Mnemonic and Keystore are mutually exclusive. Without
	// any of them the connection is read only.
	PrivateKey       string
	Mnemonic         string
	DerivationPath   string
	Keystore         string
	KeystorePassword string
	Registry         *networks.Registry
	Logger           *zap.Logger
}

func (c Config) Validate() error {
	given := 0
	for _, s := range []string{c.PrivateKey, c.Mnemonic, c.Keystore} {
		if s != "" {
			given++
		}
	}
	if given > 1 {
		return fmt.Errorf("private key, mnemonic and keystore are mutually exclusive: %w", onyxcommon.ErrInvalidArgument)
	}
	return nil
}

func isNodeURL(s string) bool {
	return strings.Contains(s, "://") || strings.HasSuffix(s, ".ipc")
}

// Dial builds a go-ethereum backed Transport out of cfg. Nodes are dialed
// lazily, so Dial itself does no network I/O for URL sources.
func Dial(cfg Config) (*Eth, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := cfg.Registry
	if registry == nil {
		registry = networks.Default()
	}

	e := &Eth{
		registry: registry,
		logger:   logger,
	}

	source := cfg.Source
	if s, ok := source.(string); ok && strings.TrimSpace(s) == "" {
		source = nil
	}
	if source == nil {
		source = DefaultNetwork
	}

	switch src := source.(type) {
	case *rpc.Client:
		e.reader = reader.NewEthReaderFromClients(map[string]*rpc.Client{"provided": src})
		e.broadcaster = broadcaster.NewBroadcasterFromClients(
			map[string]broadcaster.RawTxSender{"provided": src}, logger,
		)
	case map[string]string:
		if len(src) == 0 {
			return nil, fmt.Errorf("no node given: %w", onyxcommon.ErrInvalidArgument)
		}
		e.reader = reader.NewEthReaderGeneric(src)
		e.broadcaster = broadcaster.NewGenericBroadcaster(src, logger)
	case string:
		src = strings.TrimSpace(src)
		nodes := map[string]string{"provided": src}
		if !isNodeURL(src) {
			p, err := registry.Resolve(src)
			if err != nil {
				return nil, err
			}
			nodes = p.Nodes()
			e.networkHint = p.GetName()
		}
		e.reader = reader.NewEthReaderGeneric(nodes)
		e.broadcaster = broadcaster.NewGenericBroadcaster(nodes, logger)
	default:
		return nil, fmt.Errorf("provider source of type %T is not supported: %w", source, onyxcommon.ErrInvalidArgument)
	}
	e.monitor = monitor.NewGenericTxMonitor(e.reader, logger)
	logger.Debug("transport dialed",
		zap.Strings("readers", e.reader.NodeNames()),
		zap.Int("broadcasters", e.broadcaster.NumNodes()),
		zap.String("network_hint", e.networkHint),
	)

	var err error
	switch {
	case cfg.PrivateKey != "":
		e.account, err = account.NewPrivateKeyAccount(cfg.PrivateKey)
	case cfg.Mnemonic != "":
		e.account, err = account.NewMnemonicAccount(cfg.Mnemonic, cfg.DerivationPath)
	case cfg.Keystore != "":
		e.account, err = account.NewKeystoreAccount(cfg.Keystore, cfg.KeystorePassword)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err, onyxcommon.ErrInvalidArgument)
	}
	return e, nil
}
