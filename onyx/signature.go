package onyx

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// DefaultDelegationExpiry is the expiry CreateDelegateSignature uses when
// none is given.
var DefaultDelegationExpiry = big.NewInt(10e9)

// Signature is an EIP-712 signature split the way the contracts take it.
type Signature struct {
	V uint8
	R [32]byte
	S [32]byte
}

// SignatureFromBytes splits a 65 byte [R || S || V] signature. V may be 0/1
// or 27/28.
func SignatureFromBytes(b []byte) (Signature, error) {
	if len(b) != 65 {
		return Signature{}, fmt.Errorf("signature must be 65 bytes, got %d", len(b))
	}
	var sig Signature
	copy(sig.R[:], b[:32])
	copy(sig.S[:], b[32:64])
	sig.V = b[64]
	if sig.V < 27 {
		sig.V += 27
	}
	return sig, nil
}

// Bytes returns the signature as [R || S || V].
func (s Signature) Bytes() []byte {
	res := make([]byte, 0, 65)
	res = append(res, s.R[:]...)
	res = append(res, s.S[:]...)
	return append(res, s.V)
}

func (s Signature) String() string {
	return hexutil.Encode(s.Bytes())
}

func (s Signature) valid() bool {
	return (s.V == 27 || s.V == 28) && s.R != [32]byte{} && s.S != [32]byte{}
}

var domainType = []apitypes.Type{
	{Name: "name", Type: "string"},
	{Name: "chainId", Type: "uint256"},
	{Name: "verifyingContract", Type: "address"},
}

var delegationType = []apitypes.Type{
	{Name: "delegatee", Type: "address"},
	{Name: "nonce", Type: "uint256"},
	{Name: "expiry", Type: "uint256"},
}

var ballotType = []apitypes.Type{
	{Name: "proposalId", Type: "uint256"},
	{Name: "support", Type: "uint8"},
}

func typedData(
	primaryType string,
	fields []apitypes.Type,
	name string,
	chainID uint64,
	verifyingContract common.Address,
	message apitypes.TypedDataMessage,
) apitypes.TypedData {
	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": domainType,
			primaryType:    fields,
		},
		PrimaryType: primaryType,
		Domain: apitypes.TypedDataDomain{
			Name:              name,
			ChainId:           math.NewHexOrDecimal256(int64(chainID)),
			VerifyingContract: verifyingContract.Hex(),
		},
		Message: message,
	}
}

// DelegationTypedData is what CreateDelegateSignature signs.
func DelegationTypedData(name string, chainID uint64, xcn, delegatee common.Address, nonce, expiry *big.Int) apitypes.TypedData {
	return typedData("Delegation", delegationType, name, chainID, xcn, apitypes.TypedDataMessage{
		"delegatee": delegatee.Hex(),
		"nonce":     nonce.String(),
		"expiry":    expiry.String(),
	})
}

// BallotTypedData is what CreateVoteSignature signs.
func BallotTypedData(name string, chainID uint64, governor common.Address, proposalID *big.Int, support VoteSupport) apitypes.TypedData {
	return typedData("Ballot", ballotType, name, chainID, governor, apitypes.TypedDataMessage{
		"proposalId": proposalID.String(),
		"support":    fmt.Sprintf("%d", support),
	})
}
