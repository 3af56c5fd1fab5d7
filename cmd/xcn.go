package cmd

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/tranvictor/onyxkit/onyx"
	"github.com/tranvictor/onyxkit/transport"
)

var (
	delegateSig    string
	delegateNonce  string
	delegateExpiry string
)

func showXcn(cmd *cobra.Command, args []string, read func(*onyx.Client, *session, string) (*big.Int, error), label string) error {
	s, holder, err := holderSession(cmd, args, 0)
	if err != nil {
		return err
	}
	amount, err := read(s.client, s, holder)
	if err != nil {
		return err
	}
	if asJSON() {
		return printJSON(map[string]string{"holder": holder, label: amount.String()})
	}
	s.ui.KeyValue([][2]string{
		{"Holder", holder},
		{label, formatAmount(amount, 18, "XCN")},
	})
	return nil
}

var xcnBalanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Show the XCN balance of an account",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showXcn(cmd, args, func(c *onyx.Client, s *session, holder string) (*big.Int, error) {
			return c.GetXcnBalance(s.ctx, holder)
		}, "Balance")
	},
}

var xcnAccruedCmd = &cobra.Command{
	Use:   "accrued [address]",
	Short: "Show the XCN an account accrued and has not claimed",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showXcn(cmd, args, func(c *onyx.Client, s *session, holder string) (*big.Int, error) {
			return c.GetXcnAccrued(s.ctx, holder)
		}, "Accrued")
	},
}

var xcnClaimCmd = &cobra.Command{
	Use:   "claim",
	Short: "Claim the XCN accrued across every market",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, true)
		if err != nil {
			return err
		}
		return s.send("Claim XCN", nil, func() (transport.TxHandle, error) {
			return s.client.ClaimXcn(s.ctx, callOptions())
		})
	},
}

var xcnDelegateCmd = &cobra.Command{
	Use:   "delegate [delegatee]",
	Short: "Delegate your XCN votes",
	Long: `Without --sig the signing account delegates its own votes. With --sig,
--nonce and --expiry a signature made by "onyx xcn sign-delegation" is
submitted on behalf of its signer.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, true)
		if err != nil {
			return err
		}
		rows := [][2]string{{"Delegatee", args[0]}}
		if delegateSig == "" {
			return s.send("Delegate", rows, func() (transport.TxHandle, error) {
				return s.client.Delegate(s.ctx, args[0], callOptions())
			})
		}

		sig, err := parseSignature(delegateSig)
		if err != nil {
			return err
		}
		nonce, err := parseBigInt("nonce", delegateNonce)
		if err != nil {
			return err
		}
		expiry, err := parseBigInt("expiry", delegateExpiry)
		if err != nil {
			return err
		}
		rows = append(rows, [2]string{"Signature", sig.String()})
		return s.send("Delegate by signature", rows, func() (transport.TxHandle, error) {
			return s.client.DelegateBySig(s.ctx, args[0], nonce, expiry, sig, callOptions())
		})
	},
}

var xcnSignDelegationCmd = &cobra.Command{
	Use:   "sign-delegation [delegatee]",
	Short: "Sign a delegation anyone can submit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, true)
		if err != nil {
			return err
		}
		var expiry *big.Int
		if delegateExpiry != "" {
			if expiry, err = parseBigInt("expiry", delegateExpiry); err != nil {
				return err
			}
		}
		sig, err := s.client.CreateDelegateSignature(s.ctx, args[0], expiry)
		if err != nil {
			return err
		}
		return showSignature(s, sig)
	},
}

var xcnCmd = &cobra.Command{
	Use:   "xcn",
	Short: "Read and manage the XCN governance token",
	Long:  `XCN lives at the network's "XCN" address, see "onyx networks address XCN".`,
}

func init() {
	xcnDelegateCmd.Flags().StringVar(&delegateSig, "sig", "", "65 byte hex signature from sign-delegation")
	xcnDelegateCmd.Flags().StringVar(&delegateNonce, "nonce", "", "nonce the signature was made with")
	xcnDelegateCmd.Flags().StringVar(&delegateExpiry, "expiry", "", "expiry the signature was made with")
	xcnSignDelegationCmd.Flags().StringVar(&delegateExpiry, "expiry", "", "unix time after which the signature is void (default 10000000000)")
	AddCommonFlagsToTransactionalCmds(xcnClaimCmd)
	AddCommonFlagsToTransactionalCmds(xcnDelegateCmd)
	xcnCmd.AddCommand(xcnBalanceCmd, xcnAccruedCmd, xcnClaimCmd, xcnDelegateCmd, xcnSignDelegationCmd)
	rootCmd.AddCommand(xcnCmd)
}

func showSignature(s *session, sig onyx.Signature) error {
	if asJSON() {
		return printJSON(map[string]interface{}{
			"signature": sig.String(),
			"v":         sig.V,
			"r":         hexutil.Encode(sig.R[:]),
			"s":         hexutil.Encode(sig.S[:]),
		})
	}
	s.ui.KeyValue([][2]string{
		{"Signature", sig.String()},
		{"v", hexutil.EncodeUint64(uint64(sig.V))},
		{"r", hexutil.Encode(sig.R[:])},
		{"s", hexutil.Encode(sig.S[:])},
	})
	return nil
}

func parseSignature(hex string) (onyx.Signature, error) {
	raw, err := hexutil.Decode(hex)
	if err != nil {
		return onyx.Signature{}, err
	}
	return onyx.SignatureFromBytes(raw)
}
