package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tranvictor/onyxkit/config"
	"github.com/tranvictor/onyxkit/transport"
	"github.com/tranvictor/onyxkit/units"
)

// amountRows describes an amount the way the user typed it.
func amountRows(asset, amount string) [][2]string {
	unit := "human units"
	if config.Mantissa {
		unit = "mantissa"
	}
	return [][2]string{
		{"Asset", asset},
		{"Amount", amount + " (" + unit + ")"},
	}
}

var supplyCmd = &cobra.Command{
	Use:   "supply [asset] [amount]",
	Short: "Supply an asset to its market",
	Long: `Supply mints market tokens for the given amount of an underlying asset,
for example "onyx supply USDC 100". ERC-20 assets are approved to the market
first when the current allowance is too low, unless --no-approve is given.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, true)
		if err != nil {
			return err
		}
		return s.send("Supply", amountRows(args[0], args[1]), func() (transport.TxHandle, error) {
			return s.client.Supply(s.ctx, args[0], units.DecimalString(args[1]), config.NoApprove, callOptions())
		}, args[0])
	},
}

var redeemCmd = &cobra.Command{
	Use:   "redeem [asset] [amount]",
	Short: "Take a supplied asset back",
	Long: `With an underlying symbol (USDC) the amount is counted in the underlying.
With a market token symbol (oUSDC) it is counted in market tokens.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, true)
		if err != nil {
			return err
		}
		return s.send("Redeem", amountRows(args[0], args[1]), func() (transport.TxHandle, error) {
			return s.client.Redeem(s.ctx, args[0], units.DecimalString(args[1]), callOptions())
		}, args[0])
	},
}

var borrowCmd = &cobra.Command{
	Use:   "borrow [asset] [amount]",
	Short: "Borrow an asset against your collateral",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, true)
		if err != nil {
			return err
		}
		return s.send("Borrow", amountRows(args[0], args[1]), func() (transport.TxHandle, error) {
			return s.client.Borrow(s.ctx, args[0], units.DecimalString(args[1]), callOptions())
		}, args[0])
	},
}

var repayBorrower string

var repayCmd = &cobra.Command{
	Use:   "repay [asset] [amount]",
	Short: "Repay a borrow, yours or --behalf of another account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, true)
		if err != nil {
			return err
		}
		rows := amountRows(args[0], args[1])
		if repayBorrower != "" {
			rows = append(rows, [2]string{"Borrower", repayBorrower})
		}
		return s.send("Repay borrow", rows, func() (transport.TxHandle, error) {
			return s.client.RepayBorrow(s.ctx, args[0], units.DecimalString(args[1]), repayBorrower, config.NoApprove, callOptions())
		}, args[0])
	},
}

func init() {
	for _, c := range []*cobra.Command{supplyCmd, redeemCmd, borrowCmd, repayCmd} {
		AddCommonFlagsToTransactionalCmds(c)
		rootCmd.AddCommand(c)
	}
	AddApprovalFlags(supplyCmd)
	AddApprovalFlags(repayCmd)
	repayCmd.Flags().StringVar(&repayBorrower, "behalf", "", "repay the borrow of this address instead of your own")
}
