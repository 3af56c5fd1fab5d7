package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tranvictor/onyxkit/config"
)

// AddCommonFlagsToTransactionalCmds adds the flags every command that sends
// a transaction accepts.
func AddCommonFlagsToTransactionalCmds(c *cobra.Command) {
	c.PersistentFlags().
		BoolVarP(&config.Mantissa, "mantissa", "m", false, "The amount is already scaled to the asset's decimals")
	c.PersistentFlags().
		Uint64VarP(&config.GasLimit, "gas", "g", 0, "Gas limit of the tx. If default value is used, the gas limit is estimated with a 20% buffer")
	c.PersistentFlags().
		BoolVarP(&config.NoWait, "no-wait", "F", false, "Will not wait the tx to be mined.")
	c.PersistentFlags().
		Uint64VarP(&config.Confirmations, "confirmations", "c", config.DefaultConfirmations, "Number of confirmations to wait for")
	c.PersistentFlags().
		BoolVarP(&config.Yes, "yes", "y", false, "Send without asking for confirmation")
}

// AddApprovalFlags adds the flags of commands that may approve a market to
// pull tokens first.
func AddApprovalFlags(c *cobra.Command) {
	c.PersistentFlags().
		BoolVar(&config.NoApprove, "no-approve", false, "Do not check the allowance or approve the market before the call")
}
