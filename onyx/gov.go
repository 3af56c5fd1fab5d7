package onyx

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/networks"
	"github.com/tranvictor/onyxkit/transport"
)

// VoteSupport is the side a governance vote takes.
type VoteSupport uint8

const (
	VoteAgainst VoteSupport = iota
	VoteFor
	VoteAbstain
)

func (s VoteSupport) String() string {
	switch s {
	case VoteAgainst:
		return "against"
	case VoteFor:
		return "for"
	case VoteAbstain:
		return "abstain"
	default:
		return "unknown"
	}
}

// ParseVoteSupport accepts a side name or its number.
func ParseVoteSupport(s string) (VoteSupport, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "against", "no":
		return VoteAgainst, true
	case "1", "for", "yes":
		return VoteFor, true
	case "2", "abstain":
		return VoteAbstain, true
	}
	return 0, false
}

func checkBallot(op string, proposalID *big.Int, support VoteSupport) error {
	if proposalID == nil || proposalID.Sign() < 0 {
		return onyxcommon.NewError(op, onyxcommon.ErrInvalidArgument, "Argument `proposalId` must be a non-negative integer.")
	}
	if support > VoteAbstain {
		return onyxcommon.NewError(op, onyxcommon.ErrInvalidArgument, "Argument `support` must be 0 (against), 1 (for) or 2 (abstain).")
	}
	return nil
}

func (c *Client) governor(ctx context.Context, op string) (*networks.Profile, common.Address, error) {
	profile, err := c.network(ctx, op)
	if err != nil {
		return nil, common.Address{}, err
	}
	addr, err := c.address(op, profile, networks.GovernorContract)
	if err != nil {
		return nil, common.Address{}, err
	}
	return profile, addr, nil
}

// CastVote votes on a proposal with the signer's voting weight.
func (c *Client) CastVote(ctx context.Context, proposalID *big.Int, support VoteSupport, opts CallOptions) (transport.TxHandle, error) {
	const op = "castVote"
	if err := checkBallot(op, proposalID, support); err != nil {
		return nil, err
	}
	_, governor, err := c.governor(ctx, op)
	if err != nil {
		return nil, err
	}
	contract := mainABI(opts, onyxcommon.MustABI(onyxcommon.GovernorABIName))
	return c.write(ctx, op, governor, contract, "castVote", []interface{}{proposalID, uint8(support)}, opts.transportOpts())
}

// CastVoteWithReason is CastVote with a reason recorded in the VoteCast
// event.
func (c *Client) CastVoteWithReason(
	ctx context.Context,
	proposalID *big.Int,
	support VoteSupport,
	reason string,
	opts CallOptions,
) (transport.TxHandle, error) {
	const op = "castVoteWithReason"
	if err := checkBallot(op, proposalID, support); err != nil {
		return nil, err
	}
	_, governor, err := c.governor(ctx, op)
	if err != nil {
		return nil, err
	}
	contract := mainABI(opts, onyxcommon.MustABI(onyxcommon.GovernorABIName))
	params := []interface{}{proposalID, uint8(support), reason}
	return c.write(ctx, op, governor, contract, "castVoteWithReason", params, opts.transportOpts())
}

// CreateVoteSignature signs a ballot anyone can submit with CastVoteBySig.
func (c *Client) CreateVoteSignature(ctx context.Context, proposalID *big.Int, support VoteSupport) (Signature, error) {
	const op = "createVoteSignature"
	if err := checkBallot(op, proposalID, support); err != nil {
		return Signature{}, err
	}
	profile, governor, err := c.governor(ctx, op)
	if err != nil {
		return Signature{}, err
	}
	name, err := c.readString(ctx, op, governor, onyxcommon.MustABI(onyxcommon.GovernorABIName), "name")
	if err != nil {
		return Signature{}, err
	}
	return c.signTypedData(ctx, op, BallotTypedData(name, profile.GetChainID(), governor, proposalID, support))
}

// CastVoteBySig submits a ballot signed by someone else.
func (c *Client) CastVoteBySig(
	ctx context.Context,
	proposalID *big.Int,
	support VoteSupport,
	sig Signature,
	opts CallOptions,
) (transport.TxHandle, error) {
	const op = "castVoteBySig"
	if err := checkBallot(op, proposalID, support); err != nil {
		return nil, err
	}
	if !sig.valid() {
		return nil, onyxcommon.NewError(op, onyxcommon.ErrInvalidArgument,
			"Argument `signature` must be an object that contains the v, r, and s pieces of an EIP-712 signature.")
	}
	_, governor, err := c.governor(ctx, op)
	if err != nil {
		return nil, err
	}
	contract := mainABI(opts, onyxcommon.MustABI(onyxcommon.GovernorABIName))
	params := []interface{}{proposalID, uint8(support), sig.V, sig.R, sig.S}
	return c.write(ctx, op, governor, contract, "castVoteBySig", params, opts.transportOpts())
}
