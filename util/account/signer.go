package account

import (
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
)

type Signer interface {
	SignTx(tx *types.Transaction, chainId *big.Int) (*types.Transaction, error)
	// SignHash signs a 32 byte digest and returns [R || S || V] with V in
	// {27, 28}.
	SignHash(hash []byte) ([]byte, error)
}
