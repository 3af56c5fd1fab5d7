package cmd

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/tranvictor/onyxkit/api"
	"github.com/tranvictor/onyxkit/config"
	"github.com/tranvictor/onyxkit/networks"
)

var (
	apiPageSize    uint64
	apiPageNumber  uint64
	apiBlockNumber uint64
	apiMeta        bool
	apiFrom        uint64
	apiTo          uint64
	apiBuckets     uint64
	apiProposalIDs []uint
	apiState       string
	apiAccount     string
	apiWithDetail  bool
)

func newAPIClient() (*api.Client, error) {
	logger, err := newLogger()
	if err != nil {
		return nil, err
	}
	return api.NewClient(config.APIBaseURL, nil, logger), nil
}

// apiAddress accepts an address or a symbol of the selected network.
func apiAddress(s string) (string, error) {
	if common.IsHexAddress(s) {
		return common.HexToAddress(s).Hex(), nil
	}
	addr, err := networks.Default().Address(config.Network, s)
	if err != nil {
		return "", withSuggestion(err, s)
	}
	return addr.Hex(), nil
}

func apiAddresses(args []string) ([]string, error) {
	res := make([]string, 0, len(args))
	for _, a := range args {
		addr, err := apiAddress(a)
		if err != nil {
			return nil, err
		}
		res = append(res, addr)
	}
	return res, nil
}

func runAPI(query func(*api.Client) (api.Response, error)) error {
	c, err := newAPIClient()
	if err != nil {
		return err
	}
	resp, err := query(c)
	if err != nil {
		return err
	}
	return printJSON(resp)
}

var apiAccountCmd = &cobra.Command{
	Use:   "account [address...]",
	Short: "Account positions as indexed off-chain",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAPI(func(c *api.Client) (api.Response, error) {
			return c.Account(cmd.Context(), api.AccountRequest{
				Addresses:   args,
				BlockNumber: apiBlockNumber,
				PageSize:    apiPageSize,
				PageNumber:  apiPageNumber,
				Network:     config.Network,
			})
		})
	},
}

var apiOTokenCmd = &cobra.Command{
	Use:   "otoken [market...]",
	Short: "Market token state as indexed off-chain",
	Long:  `Markets may be given by address or by symbol (oUSDC).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addresses, err := apiAddresses(args)
		if err != nil {
			return err
		}
		return runAPI(func(c *api.Client) (api.Response, error) {
			return c.OToken(cmd.Context(), api.OTokenRequest{
				Addresses:   addresses,
				BlockNumber: apiBlockNumber,
				Meta:        apiMeta,
				Network:     config.Network,
			})
		})
	},
}

var apiHistoryCmd = &cobra.Command{
	Use:   "history [market]",
	Short: "Historical rates of a market",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		market, err := apiAddress(args[0])
		if err != nil {
			return err
		}
		return runAPI(func(c *api.Client) (api.Response, error) {
			return c.MarketHistory(cmd.Context(), api.MarketHistoryRequest{
				Asset:             market,
				MinBlockTimestamp: apiFrom,
				MaxBlockTimestamp: apiTo,
				NumBuckets:        apiBuckets,
				Network:           config.Network,
			})
		})
	},
}

var apiGovernanceCmd = &cobra.Command{
	Use:   fmt.Sprintf("governance [%s|%s|%s]", api.Proposals, api.VoteReceipts, api.Accounts),
	Short: "Governance proposals, vote receipts and accounts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := args[0]
		switch endpoint {
		case api.Proposals, api.VoteReceipts, api.Accounts:
		default:
			return fmt.Errorf("unknown governance endpoint %q, use one of %s", endpoint,
				strings.Join([]string{api.Proposals, api.VoteReceipts, api.Accounts}, ", "))
		}
		ids := make([]uint64, 0, len(apiProposalIDs))
		for _, id := range apiProposalIDs {
			ids = append(ids, uint64(id))
		}
		return runAPI(func(c *api.Client) (api.Response, error) {
			return c.Governance(cmd.Context(), api.GovernanceRequest{
				ProposalIDs: ids,
				State:       apiState,
				WithDetail:  apiWithDetail,
				Account:     apiAccount,
				PageSize:    apiPageSize,
				PageNumber:  apiPageNumber,
				Network:     config.Network,
			}, endpoint)
		})
	},
}

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Query the Onyx off-chain API",
	Long:  fmt.Sprintf(`Results are printed as JSON. The API lives at %s unless --api-url says otherwise.`, api.DefaultBaseURL),
}

func init() {
	apiCmd.PersistentFlags().StringVar(&config.APIBaseURL, "api-url", api.DefaultBaseURL, "base URL of the Onyx API")
	apiCmd.PersistentFlags().Uint64Var(&apiPageSize, "page-size", 0, "results per page")
	apiCmd.PersistentFlags().Uint64Var(&apiPageNumber, "page", 0, "page number")
	apiCmd.PersistentFlags().Uint64Var(&apiBlockNumber, "block", 0, "block number to query at")
	apiOTokenCmd.Flags().BoolVar(&apiMeta, "meta", false, "include market metadata")
	apiHistoryCmd.Flags().Uint64Var(&apiFrom, "from", 0, "min block timestamp")
	apiHistoryCmd.Flags().Uint64Var(&apiTo, "to", 0, "max block timestamp")
	apiHistoryCmd.Flags().Uint64Var(&apiBuckets, "buckets", 0, "number of buckets")
	apiGovernanceCmd.Flags().UintSliceVar(&apiProposalIDs, "ids", nil, "proposal ids")
	apiGovernanceCmd.Flags().StringVar(&apiState, "state", "", "proposal state")
	apiGovernanceCmd.Flags().StringVar(&apiAccount, "account", "", "voter or account address")
	apiGovernanceCmd.Flags().BoolVar(&apiWithDetail, "detail", false, "include proposal details")
	apiCmd.AddCommand(apiAccountCmd, apiOTokenCmd, apiHistoryCmd, apiGovernanceCmd)
	rootCmd.AddCommand(apiCmd)
}
