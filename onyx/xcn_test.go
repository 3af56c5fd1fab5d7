package onyx_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/networks"
	"github.com/tranvictor/onyxkit/onyx"
)

func recoverSigner(t *testing.T, td apitypes.TypedData, sig onyx.Signature) common.Address {
	t.Helper()
	digest, err := onyxcommon.TypedDataDigest(td)
	require.NoError(t, err)
	raw := sig.Bytes()
	raw[64] -= 27
	pub, err := crypto.SigToPub(digest, raw)
	require.NoError(t, err)
	return crypto.PubkeyToAddress(*pub)
}

func TestGetXcnBalance(t *testing.T) {
	f := newFakeTransport(t)
	f.returns("balanceOf", big.NewInt(5))
	c := newTestClient(t, f, onyx.Options{})

	bal, err := c.GetXcnBalance(context.Background(), f.address().Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(5), bal.Int64())
	calls := f.recorded()
	require.Len(t, calls, 1)
	assert.Equal(t, addr(t, networks.Hardhat, networks.XCNContract), calls[0].To)

	_, err = c.GetXcnBalance(context.Background(), "bad_ethereum_address")
	assert.EqualError(t, err, "Onyx [getXcnBalance] | Argument `_address` must be a valid Ethereum address.")
}

func TestDelegate(t *testing.T) {
	f := newFakeTransport(t)
	c := newTestClient(t, f, onyx.Options{})
	ctx := context.Background()

	_, err := c.Delegate(ctx, "bad_ethereum_address", onyx.CallOptions{})
	assert.EqualError(t, err, "Onyx [delegate] | Argument `_address` must be a valid Ethereum address.")

	_, err = c.Delegate(ctx, f.address().Hex(), onyx.CallOptions{})
	require.NoError(t, err)
	writes := f.writes()
	require.Len(t, writes, 1)
	assert.Equal(t, "delegate", writes[0].Method)
	assert.Equal(t, []interface{}{f.address()}, writes[0].Params)
}

func TestCreateDelegateSignatureRecoversToSigner(t *testing.T) {
	f := newFakeTransport(t)
	f.returns("name", "Chain")
	f.returns("nonces", big.NewInt(3))
	c := newTestClient(t, f, onyx.Options{})

	delegatee := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	sig, err := c.CreateDelegateSignature(context.Background(), delegatee.Hex(), nil)
	require.NoError(t, err)
	assert.Contains(t, []uint8{27, 28}, sig.V)

	td := onyx.DelegationTypedData(
		"Chain",
		networks.Hardhat.GetChainID(),
		addr(t, networks.Hardhat, networks.XCNContract),
		delegatee,
		big.NewInt(3),
		onyx.DefaultDelegationExpiry,
	)
	assert.Equal(t, f.address(), recoverSigner(t, td, sig))
	assert.Empty(t, f.writes())
}

func TestDelegateBySig(t *testing.T) {
	f := newFakeTransport(t)
	c := newTestClient(t, f, onyx.Options{})
	ctx := context.Background()

	raw := make([]byte, 65)
	raw[0], raw[32], raw[64] = 1, 2, 28
	sig, err := onyx.SignatureFromBytes(raw)
	require.NoError(t, err)

	bad := []struct {
		name      string
		delegatee string
		nonce     *big.Int
		expiry    *big.Int
		sig       onyx.Signature
		msg       string
	}{
		{"address", "0xbadaddress", big.NewInt(1), big.NewInt(10e9), sig,
			"Onyx [delegateBySig] | Argument `_address` must be a valid Ethereum address."},
		{"nonce", f.address().Hex(), nil, big.NewInt(10e9), sig,
			"Onyx [delegateBySig] | Argument `nonce` must be an integer."},
		{"expiry", f.address().Hex(), big.NewInt(1), big.NewInt(-1), sig,
			"Onyx [delegateBySig] | Argument `expiry` must be an integer."},
		{"signature", f.address().Hex(), big.NewInt(1), big.NewInt(10e9), onyx.Signature{},
			"Onyx [delegateBySig] | Argument `signature` must be an object that contains the v, r, and s pieces of an EIP-712 signature."},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.DelegateBySig(ctx, tc.delegatee, tc.nonce, tc.expiry, tc.sig, onyx.CallOptions{})
			assert.EqualError(t, err, tc.msg)
			assert.ErrorIs(t, err, onyxcommon.ErrInvalidArgument)
		})
	}
	assert.Empty(t, f.recorded())

	_, err = c.DelegateBySig(ctx, f.address().Hex(), big.NewInt(1), big.NewInt(10e9), sig, onyx.CallOptions{})
	require.NoError(t, err)
	writes := f.writes()
	require.Len(t, writes, 1)
	assert.Equal(t, "delegateBySig", writes[0].Method)
	assert.Equal(t, uint8(28), writes[0].Params[3])
	assert.Equal(t, sig.R, writes[0].Params[4])
}

func TestSignatureFromBytes(t *testing.T) {
	raw := make([]byte, 65)
	raw[64] = 1
	sig, err := onyx.SignatureFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, uint8(28), sig.V)
	assert.Len(t, sig.String(), 2+130)

	_, err = onyx.SignatureFromBytes(raw[:64])
	assert.Error(t, err)
}
