package onyx

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/networks"
	"github.com/tranvictor/onyxkit/transport"
)

const invalidAddressMsg = "Argument `_address` must be a valid Ethereum address."

func (c *Client) xcn(op string, profile *networks.Profile) (common.Address, error) {
	return c.address(op, profile, networks.XCNContract)
}

// GetXcnBalance returns holder's XCN balance mantissa.
func (c *Client) GetXcnBalance(ctx context.Context, holder string) (*big.Int, error) {
	const op = "getXcnBalance"
	holderAddr, err := checkAddress(op, holder, invalidAddressMsg)
	if err != nil {
		return nil, err
	}
	profile, err := c.network(ctx, op)
	if err != nil {
		return nil, err
	}
	xcn, err := c.xcn(op, profile)
	if err != nil {
		return nil, err
	}
	return c.readBig(ctx, op, xcn, onyxcommon.MustABI(onyxcommon.XCNABIName), "balanceOf", holderAddr)
}

// Delegate gives the signer's voting weight to delegatee.
func (c *Client) Delegate(ctx context.Context, delegatee string, opts CallOptions) (transport.TxHandle, error) {
	const op = "delegate"
	to, err := checkAddress(op, delegatee, invalidAddressMsg)
	if err != nil {
		return nil, err
	}
	profile, err := c.network(ctx, op)
	if err != nil {
		return nil, err
	}
	xcn, err := c.xcn(op, profile)
	if err != nil {
		return nil, err
	}
	contract := mainABI(opts, onyxcommon.MustABI(onyxcommon.XCNABIName))
	return c.write(ctx, op, xcn, contract, "delegate", []interface{}{to}, opts.transportOpts())
}

// CreateDelegateSignature signs a delegation to delegatee with the signer's
// current nonce so anyone can submit it with DelegateBySig. A nil expiry
// means DefaultDelegationExpiry.
func (c *Client) CreateDelegateSignature(ctx context.Context, delegatee string, expiry *big.Int) (Signature, error) {
	const op = "createDelegateSignature"
	to, err := checkAddress(op, delegatee, invalidAddressMsg)
	if err != nil {
		return Signature{}, err
	}
	if expiry == nil {
		expiry = DefaultDelegationExpiry
	}
	if expiry.Sign() < 0 {
		return Signature{}, onyxcommon.NewError(op, onyxcommon.ErrInvalidArgument, "Argument `expiry` must be an integer.")
	}

	profile, err := c.network(ctx, op)
	if err != nil {
		return Signature{}, err
	}
	xcn, err := c.xcn(op, profile)
	if err != nil {
		return Signature{}, err
	}
	signer, err := c.signer(ctx, op)
	if err != nil {
		return Signature{}, err
	}
	xcnABI := onyxcommon.MustABI(onyxcommon.XCNABIName)
	name, err := c.readString(ctx, op, xcn, xcnABI, "name")
	if err != nil {
		return Signature{}, err
	}
	nonce, err := c.readBig(ctx, op, xcn, xcnABI, "nonces", signer)
	if err != nil {
		return Signature{}, err
	}
	td := DelegationTypedData(name, profile.GetChainID(), xcn, to, nonce, expiry)
	return c.signTypedData(ctx, op, td)
}

// DelegateBySig submits a delegation signed by someone else.
func (c *Client) DelegateBySig(
	ctx context.Context,
	delegatee string,
	nonce, expiry *big.Int,
	sig Signature,
	opts CallOptions,
) (transport.TxHandle, error) {
	const op = "delegateBySig"
	to, err := checkAddress(op, delegatee, invalidAddressMsg)
	if err != nil {
		return nil, err
	}
	if nonce == nil || nonce.Sign() < 0 {
		return nil, onyxcommon.NewError(op, onyxcommon.ErrInvalidArgument, "Argument `nonce` must be an integer.")
	}
	if expiry == nil || expiry.Sign() < 0 {
		return nil, onyxcommon.NewError(op, onyxcommon.ErrInvalidArgument, "Argument `expiry` must be an integer.")
	}
	if !sig.valid() {
		return nil, onyxcommon.NewError(op, onyxcommon.ErrInvalidArgument,
			"Argument `signature` must be an object that contains the v, r, and s pieces of an EIP-712 signature.")
	}

	profile, err := c.network(ctx, op)
	if err != nil {
		return nil, err
	}
	xcn, err := c.xcn(op, profile)
	if err != nil {
		return nil, err
	}
	contract := mainABI(opts, onyxcommon.MustABI(onyxcommon.XCNABIName))
	params := []interface{}{to, nonce, expiry, sig.V, sig.R, sig.S}
	return c.write(ctx, op, xcn, contract, "delegateBySig", params, opts.transportOpts())
}

func (c *Client) readString(ctx context.Context, op string, to common.Address, contract *abi.ABI, method string) (string, error) {
	res, err := c.read(ctx, op, to, contract, method, nil)
	if err != nil {
		return "", err
	}
	if len(res) == 0 {
		return "", onyxcommon.NewError(op, onyxcommon.ErrTransactionFailed, "%s returned nothing", method)
	}
	s, ok := res[0].(string)
	if !ok {
		return "", onyxcommon.NewError(op, onyxcommon.ErrTransactionFailed, "%s returned %T instead of a string", method, res[0])
	}
	return s, nil
}

func (c *Client) signTypedData(ctx context.Context, op string, td apitypes.TypedData) (Signature, error) {
	raw, err := c.transport.SignTypedData(ctx, td)
	if err != nil {
		return Signature{}, onyxcommon.WrapError(op, onyxcommon.ErrTransactionFailed, err, "Unable to sign %s", td.PrimaryType)
	}
	sig, err := SignatureFromBytes(raw)
	if err != nil {
		return Signature{}, onyxcommon.WrapError(op, onyxcommon.ErrTransactionFailed, err, "Unable to sign %s", td.PrimaryType)
	}
	return sig, nil
}
