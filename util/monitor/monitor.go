package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	onyxcommon "github.com/tranvictor/onyxkit/common"
)

// TxInfoReader is the part of reader.EthReader the monitor polls.
type TxInfoReader interface {
	TxInfoFromHash(ctx context.Context, hash common.Hash) (onyxcommon.TxInfo, error)
}

type TxMonitor struct {
	reader    TxInfoReader
	interval  time.Duration
	lostAfter time.Duration
	logger    *zap.Logger
}

func NewGenericTxMonitor(r TxInfoReader, logger *zap.Logger) *TxMonitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TxMonitor{
		reader:    r,
		interval:  5 * time.Second,
		lostAfter: 3 * time.Minute,
		logger:    logger,
	}
}

// WithInterval returns a copy of the monitor polling every interval and
// giving a never seen tx up after lostAfter.
func (self TxMonitor) WithInterval(interval, lostAfter time.Duration) *TxMonitor {
	self.interval = interval
	self.lostAfter = lostAfter
	return &self
}

type waitResult struct {
	info onyxcommon.TxInfo
	err  error
}

func (self TxMonitor) periodicCheck(ctx context.Context, hash common.Hash, confirmations uint64, result chan<- waitResult) {
	ticker := time.NewTicker(self.interval)
	defer ticker.Stop()
	startTime := time.Now()
	isOnNode := false
	for {
		info, err := self.reader.TxInfoFromHash(ctx, hash)
		if err != nil {
			self.logger.Debug("couldn't get tx info", zap.Stringer("tx", hash), zap.Error(err))
		}
		switch info.Status {
		case onyxcommon.TxStatusNotFound:
			if time.Since(startTime) > self.lostAfter && !isOnNode {
				result <- waitResult{
					info: onyxcommon.TxInfo{Status: onyxcommon.TxStatusLost},
					err:  fmt.Errorf("tx %s is not found on any node after %s", hash.Hex(), self.lostAfter),
				}
				return
			}
		case onyxcommon.TxStatusPending:
			isOnNode = true
		case onyxcommon.TxStatusDone, onyxcommon.TxStatusReverted:
			isOnNode = true
			if info.Confirmations >= confirmations {
				result <- waitResult{info: info}
				return
			}
		}

		select {
		case <-ctx.Done():
			result <- waitResult{info: info, err: ctx.Err()}
			return
		case <-ticker.C:
		}
	}
}

// makeWaitChannel starts polling hash in the background. The channel
// yields once, when the tx is mined with the requested confirmations, is
// lost, or ctx is done.
func (self TxMonitor) makeWaitChannel(ctx context.Context, hash common.Hash, confirmations uint64) <-chan waitResult {
	result := make(chan waitResult, 1)
	go self.periodicCheck(ctx, hash, confirmations, result)
	return result
}

// BlockingWait waits for hash to be mined and confirmed. A reverted tx is
// returned with a nil error; callers check info.Status.
func (self TxMonitor) BlockingWait(ctx context.Context, hash common.Hash, confirmations uint64) (onyxcommon.TxInfo, error) {
	res := <-self.makeWaitChannel(ctx, hash, confirmations)
	return res.info, res.err
}
