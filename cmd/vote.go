package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tranvictor/onyxkit/onyx"
	"github.com/tranvictor/onyxkit/transport"
)

var (
	voteReason string
	voteSig    string
	voteSign   bool
)

func parseBallot(args []string) (proposal string, support onyx.VoteSupport, err error) {
	support, ok := onyx.ParseVoteSupport(args[1])
	if !ok {
		return "", 0, fmt.Errorf("support %q must be for, against or abstain", args[1])
	}
	return args[0], support, nil
}

var voteCmd = &cobra.Command{
	Use:   "vote [proposal id] [for|against|abstain]",
	Short: "Vote on a governance proposal",
	Long: `Vote casts the signing account's vote, with --reason when given.

--sign only signs the ballot and prints the signature so another account
can submit it with --sig.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawID, support, err := parseBallot(args)
		if err != nil {
			return err
		}
		proposalID, err := parseBigInt("proposal id", rawID)
		if err != nil {
			return err
		}
		s, err := newSession(cmd, true)
		if err != nil {
			return err
		}

		if voteSign {
			sig, err := s.client.CreateVoteSignature(s.ctx, proposalID, support)
			if err != nil {
				return err
			}
			return showSignature(s, sig)
		}

		rows := [][2]string{
			{"Proposal", proposalID.String()},
			{"Support", support.String()},
		}
		switch {
		case voteSig != "":
			sig, err := parseSignature(voteSig)
			if err != nil {
				return err
			}
			rows = append(rows, [2]string{"Signature", sig.String()})
			return s.send("Vote by signature", rows, func() (transport.TxHandle, error) {
				return s.client.CastVoteBySig(s.ctx, proposalID, support, sig, callOptions())
			})
		case voteReason != "":
			rows = append(rows, [2]string{"Reason", voteReason})
			return s.send("Vote", rows, func() (transport.TxHandle, error) {
				return s.client.CastVoteWithReason(s.ctx, proposalID, support, voteReason, callOptions())
			})
		default:
			return s.send("Vote", rows, func() (transport.TxHandle, error) {
				return s.client.CastVote(s.ctx, proposalID, support, callOptions())
			})
		}
	},
}

func init() {
	voteCmd.Flags().StringVar(&voteReason, "reason", "", "reason recorded with the vote")
	voteCmd.Flags().StringVar(&voteSig, "sig", "", "submit a ballot signed by someone else")
	voteCmd.Flags().BoolVar(&voteSign, "sign", false, "only sign the ballot and print the signature")
	AddCommonFlagsToTransactionalCmds(voteCmd)
	rootCmd.AddCommand(voteCmd)
}
