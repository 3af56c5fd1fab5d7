package common

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// RawTxToHash returns valid hex data of a transaction to
// transaction hash
func RawTxToHash(data string) string {
	return crypto.Keccak256Hash(hexutil.MustDecode(data)).Hex()
}

// GasSettings holds the fee fields of a tx. TipCap is nil for legacy txs,
// in which case GasPrice is the legacy gas price; otherwise GasPrice is the
// fee cap of a dynamic fee tx.
type GasSettings struct {
	GasPrice *big.Int
	TipCap   *big.Int
}

func (g GasSettings) IsDynamic() bool {
	return g.TipCap != nil
}

func BuildExactTx(
	nonce uint64,
	to common.Address,
	value *big.Int,
	gasLimit uint64,
	gas GasSettings,
	data []byte,
	chainID *big.Int,
) *types.Transaction {
	if value == nil {
		value = big.NewInt(0)
	}
	if gas.IsDynamic() {
		return types.NewTx(&types.DynamicFeeTx{
			ChainID:   chainID,
			Nonce:     nonce,
			GasTipCap: gas.TipCap,
			GasFeeCap: gas.GasPrice,
			Gas:       gasLimit,
			To:        &to,
			Value:     value,
			Data:      data,
		})
	}
	return types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gas.GasPrice,
		Gas:      gasLimit,
		To:       &to,
		Value:    value,
		Data:     data,
	})
}
