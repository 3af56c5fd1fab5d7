package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/onyxkit/config"
	"github.com/tranvictor/onyxkit/networks"
)

var NetworkForce bool

var addNetworkCmd = &cobra.Command{
	Use:   "add [file]",
	Short: "Add a network profile to ~/.onyx/networks",
	Long: `The file is a JSON or YAML network profile, for example:

	name: my-fork
	alternative_names: [fork]
	chain_id: 1337
	native_token_symbol: ETH
	node_variable_name: ONYX_MY_FORK_NODE
	default_nodes:
	  local: http://127.0.0.1:8545
	addresses:
	  Comptroller: "0x..."
	  oETH: "0x..."
	decimals:
	  ETH: 18

A profile whose chain id or name is already known replaces the existing
one only with --force.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := newUI()
		p, err := networks.LoadProfileFile(args[0])
		if err != nil {
			return err
		}

		registry := networks.Default()
		names := append([]string{p.GetName()}, p.GetAlternativeNames()...)
		for _, name := range names {
			if _, err := registry.ByName(name); err == nil && !NetworkForce {
				return fmt.Errorf("network with name %s already exists, use --force to replace it", name)
			}
		}
		if _, err := registry.ByChainID(p.GetChainID()); err == nil && !NetworkForce {
			return fmt.Errorf("network with chain id %d already exists, use --force to replace it", p.GetChainID())
		}

		dir, err := networks.CustomProfilesDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
		content, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		dest := filepath.Join(dir, p.GetName()+strings.ToLower(filepath.Ext(args[0])))
		if err := os.WriteFile(dest, content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", dest, err)
		}
		u.Success("Network %s with chain ID %d saved to %s.", p.GetName(), p.GetChainID(), dest)
		return nil
	},
}

var listNetworkCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all of supported networks",
	Long:  ``,
	RunE: func(cmd *cobra.Command, args []string) error {
		u := newUI()
		profiles := networks.Default().Profiles()
		if asJSON() {
			return printJSON(profiles)
		}
		rows := [][]string{}
		for _, p := range profiles {
			nodes := p.Nodes()
			keys := make([]string, 0, len(nodes))
			for k := range nodes {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			rows = append(rows, []string{
				p.GetName(),
				fmt.Sprintf("%d", p.GetChainID()),
				p.GetNativeTokenSymbol(),
				p.GetNodeVariableName(),
				strings.Join(keys, ", "),
			})
		}
		u.Table([]string{"Name", "Chain ID", "Native", "Node env var", "Nodes"}, rows)
		u.Info("Add a network with \"onyx networks add <file>\" or by dropping its profile in ~/.onyx/networks/.")
		return nil
	},
}

var addressNetworkCmd = &cobra.Command{
	Use:   "address [contract or asset]",
	Short: "Show the address of a contract or asset on the selected network",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := networks.Default().Resolve(config.Network)
		if err != nil {
			return err
		}
		addr, err := p.LookupAddress(args[0])
		if err != nil {
			return err
		}
		if asJSON() {
			return printJSON(map[string]string{"network": p.GetName(), "name": args[0], "address": addr.Hex()})
		}
		newUI().Info("%s", addr.Hex())
		return nil
	},
}

var networkCmd = &cobra.Command{
	Use:     "networks",
	Aliases: []string{"network"},
	Short:   "Manage the networks onyx knows",
	Long:    ``,
}

func init() {
	addNetworkCmd.Flags().BoolVarP(&NetworkForce, "force", "f", false, "replace an existing network with the same name or chain id")
	networkCmd.AddCommand(addNetworkCmd, listNetworkCmd, addressNetworkCmd)
	rootCmd.AddCommand(networkCmd)
}
