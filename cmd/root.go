// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tranvictor/onyxkit/config"
	"github.com/tranvictor/onyxkit/transport"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "onyx",
	Short: "Supply, borrow and vote on the Onyx lending protocol from the command line",
	Long: fmt.Sprintf(`onyx is a command line client for the Onyx lending protocol.

It resolves asset symbols such as ETH, USDC or oUSDC against the connected
network, converts human amounts to the fixed point values the contracts
expect and sends the transactions an action needs. Supplying an ERC-20, for
example, approves the market first when its allowance is too low.

Signing commands read the key from %s, the seed phrase from %s
or a keystore file path from %s (its password from %s).
When none is set you will be asked for a key. Read only commands never
need one.

By default onyx talks to mainnet through its public nodes. Point it to
another chain with --network (a name or a chain id) or to a specific node
with --node. Each network's nodes can also be overridden by an environment
variable, see "onyx networks".

Settings can be kept in a YAML file, %s by default:

	network: mainnet
	node: https://my-node.example
	confirmations: 2`,
		config.PrivateKeyEnv,
		config.MnemonicEnv,
		config.KeystoreEnv,
		config.KeystorePasswordEnv,
		"~/.onyx/config.yaml",
	),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		f, err := config.Load(config.ConfigFile)
		if err != nil {
			return err
		}
		f.Apply(cmd.Flags().Changed)
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&config.Network, "network", "k", transport.DefaultNetwork, "network name or chain id, see \"onyx networks\"")
	flags.StringVar(&config.Node, "node", "", "node URL to use instead of the network's default nodes")
	flags.StringVar(&config.ConfigFile, "config", "", "YAML config file (default ~/.onyx/config.yaml)")
	flags.StringVar(&config.DerivationPath, "derivation-path", "", "BIP-32 path for keys derived from a mnemonic (default m/44'/60'/0'/0/0)")
	flags.BoolVarP(&config.Verbose, "verbose", "v", false, "print debug logs")
	flags.BoolVar(&config.NoColor, "no-color", false, "disable coloured output")
	flags.BoolVar(&config.JSONOutput, "json", false, "print results as JSON")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
