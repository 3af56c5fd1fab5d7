package cmd

import (
	"math/big"

	"github.com/spf13/cobra"

	"github.com/tranvictor/onyxkit/onyx"
)

var priceCmd = &cobra.Command{
	Use:   "price [asset] [in asset]",
	Short: "Show the price of an asset in another one, USDC by default",
	Long: `Both sides may be underlyings (ETH) or market tokens (oETH). Market tokens
are priced through their current exchange rate.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := onyx.DefaultQuoteAsset
		if len(args) > 1 {
			in = args[1]
		}
		s, err := newSession(cmd, false)
		if err != nil {
			return err
		}
		price, err := s.client.Price(s.ctx, args[0], in)
		if err != nil {
			return withSuggestion(err, args[0], in)
		}
		if asJSON() {
			return printJSON(map[string]string{"asset": args[0], "in": in, "price": price.String()})
		}
		s.ui.Info("1 %s = %s %s", args[0], formatDecimal(price, 8), in)
		return nil
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance [asset] [address]",
	Short: "Show the balance of an asset",
	Long: `Without an asset the native balance is shown. Without an address the
signing account is used.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, holder, err := holderSession(cmd, args, 1)
		if err != nil {
			return err
		}
		profile, err := s.client.Network(s.ctx)
		if err != nil {
			return err
		}

		symbol := profile.GetNativeTokenSymbol()
		var balance *big.Int
		if len(args) == 0 {
			balance, err = s.client.GetBalance(s.ctx, holder)
		} else {
			symbol = args[0]
			balance, err = s.client.GetAssetBalance(s.ctx, symbol, holder)
		}
		if err != nil {
			return withSuggestion(err, symbol)
		}
		decimals, err := profile.LookupDecimals(symbol)
		if err != nil && len(args) > 0 {
			return err
		}
		if err != nil {
			decimals = 18
		}
		if asJSON() {
			return printJSON(map[string]string{
				"holder":   holder,
				"asset":    symbol,
				"mantissa": balance.String(),
				"balance":  formatDecimalPlain(balance, decimals),
			})
		}
		s.ui.KeyValue([][2]string{
			{"Holder", holder},
			{"Balance", formatAmount(balance, decimals, symbol)},
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(priceCmd, balanceCmd)
}
