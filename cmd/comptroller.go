package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/onyxkit/transport"
)

var enterCmd = &cobra.Command{
	Use:   "enter [market...]",
	Short: "Use markets as collateral",
	Long: `Enter adds markets to your account liquidity so your supply there can back
borrows. Markets may be given as market tokens (oETH) or underlyings (ETH).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, true)
		if err != nil {
			return err
		}
		rows := [][2]string{{"Markets", strings.Join(args, ", ")}}
		return s.send("Enter markets", rows, func() (transport.TxHandle, error) {
			return s.client.EnterMarkets(s.ctx, args, callOptions())
		}, args...)
	},
}

var exitCmd = &cobra.Command{
	Use:   "exit [market]",
	Short: "Stop using a market as collateral",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, true)
		if err != nil {
			return err
		}
		rows := [][2]string{{"Market", args[0]}}
		return s.send("Exit market", rows, func() (transport.TxHandle, error) {
			return s.client.ExitMarket(s.ctx, args[0], callOptions())
		}, args[0])
	},
}

var assetsInCmd = &cobra.Command{
	Use:   "assets [address]",
	Short: "List the markets an account has entered",
	Long:  `Without an address the signing account is used.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, holder, err := holderSession(cmd, args, 0)
		if err != nil {
			return err
		}
		markets, err := s.client.GetAssetsIn(s.ctx, holder)
		if err != nil {
			return err
		}
		if asJSON() {
			return printJSON(markets)
		}
		if len(markets) == 0 {
			s.ui.Info("%s has not entered any market.", holder)
			return nil
		}
		rows := make([][]string, 0, len(markets))
		for _, m := range markets {
			rows = append(rows, []string{m})
		}
		s.ui.Table([]string{"Entered markets"}, rows)
		return nil
	},
}

func init() {
	AddCommonFlagsToTransactionalCmds(enterCmd)
	AddCommonFlagsToTransactionalCmds(exitCmd)
	rootCmd.AddCommand(enterCmd, exitCmd, assetsInCmd)
}
