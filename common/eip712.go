package common

import (
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

// TypedDataDigest returns keccak256(0x19 0x01 || domainSeparator ||
// hashStruct(message)), the digest an EIP-712 signature signs.
func TypedDataDigest(td apitypes.TypedData) ([]byte, error) {
	domainSeparator, err := td.HashStruct("EIP712Domain", td.Domain.Map())
	if err != nil {
		return nil, fmt.Errorf("couldn't hash the EIP-712 domain: %w", err)
	}
	messageHash, err := td.HashStruct(td.PrimaryType, td.Message)
	if err != nil {
		return nil, fmt.Errorf("couldn't hash the %s message: %w", td.PrimaryType, err)
	}
	return crypto.Keccak256([]byte{0x19, 0x01}, domainSeparator, messageHash), nil
}
