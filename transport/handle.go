package transport

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/util/monitor"
)

type txHandle struct {
	hash    common.Hash
	monitor *monitor.TxMonitor
}

func (h *txHandle) Hash() common.Hash {
	return h.hash
}

func (h *txHandle) Wait(ctx context.Context, confirmations uint64) (*Receipt, error) {
	info, err := h.monitor.BlockingWait(ctx, h.hash, confirmations)
	if err != nil {
		return nil, fmt.Errorf("waiting for %s: %w", h.hash.Hex(), err)
	}
	if info.Receipt == nil {
		return nil, fmt.Errorf("tx %s is %s", h.hash.Hex(), info.Status)
	}
	receipt := NewReceipt(info.Receipt)
	if info.Status == onyxcommon.TxStatusReverted {
		return receipt, fmt.Errorf("tx %s reverted", h.hash.Hex())
	}
	return receipt, nil
}

// NewReceipt converts a go-ethereum receipt, decoding every log some known
// contract ABI has an event for.
func NewReceipt(r *types.Receipt) *Receipt {
	res := &Receipt{
		TxHash:  r.TxHash,
		Status:  r.Status,
		GasUsed: r.GasUsed,
		Events:  []Event{},
	}
	if r.BlockNumber != nil {
		res.BlockNumber = r.BlockNumber.Uint64()
	}
	for _, l := range r.Logs {
		if ev, ok := DecodeLog(l); ok {
			res.Events = append(res.Events, ev)
		}
	}
	return res
}

// DecodeLog decodes l with the first known ABI declaring its event.
func DecodeLog(l *types.Log) (Event, bool) {
	if l == nil || len(l.Topics) == 0 {
		return Event{}, false
	}
	ev, found := onyxcommon.EventByID(l.Topics[0])
	if !found {
		return Event{}, false
	}
	args := map[string]interface{}{}
	if err := ev.Inputs.UnpackIntoMap(args, l.Data); err != nil {
		return Event{}, false
	}
	indexed := abi.Arguments{}
	for _, input := range ev.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if len(indexed) > 0 {
		if err := abi.ParseTopicsIntoMap(args, indexed, l.Topics[1:]); err != nil {
			return Event{}, false
		}
	}
	return Event{
		Name:    ev.Name,
		Address: l.Address,
		Args:    args,
		Index:   l.Index,
	}, true
}
