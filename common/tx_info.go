package common

import (
	"github.com/ethereum/go-ethereum/core/types"
)

const (
	TxStatusDone     = "done"
	TxStatusReverted = "reverted"
	TxStatusPending  = "pending"
	TxStatusNotFound = "notfound"
	TxStatusLost     = "lost"
	TxStatusError    = "error"
)

type TxInfo struct {
	Status  string
	Receipt *types.Receipt
	// Confirmations counts the mined block itself, so a tx in the head block
	// has one confirmation.
	Confirmations uint64
}

func (self TxInfo) IsMined() bool {
	return self.Status == TxStatusDone || self.Status == TxStatusReverted
}
