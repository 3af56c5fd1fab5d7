package onyx_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	onyxcommon "github.com/tranvictor/onyxkit/common"
	"github.com/tranvictor/onyxkit/onyx"
	"github.com/tranvictor/onyxkit/units"
)

func TestOperationsWaitForNetworkResolution(t *testing.T) {
	f := newFakeTransport(t)
	f.release = make(chan struct{})
	c := newTestClient(t, f, onyx.Options{})

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.Borrow(context.Background(), "DAI", units.Int(1), onyx.CallOptions{})
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, f.recorded(), "nothing may be sent before the network is known")
	close(f.release)
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Len(t, f.writes(), len(errs))
	assert.Equal(t, 1, f.resolveCalls)

	p, err := c.Network(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hardhat", p.GetName())
}

func TestNetworkResolutionFailureIsFatal(t *testing.T) {
	f := newFakeTransport(t)
	f.resolveErr = errors.New("connection refused")
	c := newTestClient(t, f, onyx.Options{})
	ctx := context.Background()

	_, err := c.Supply(ctx, "ETH", units.Int(1), false, onyx.CallOptions{})
	assert.ErrorIs(t, err, onyxcommon.ErrUnsupportedNetwork)
	assert.ErrorIs(t, err, f.resolveErr)
	assert.Contains(t, err.Error(), "Onyx [supply] | ")

	_, err = c.EnterMarkets(ctx, []string{"USDC"}, onyx.CallOptions{})
	assert.ErrorIs(t, err, onyxcommon.ErrUnsupportedNetwork)
	_, err = c.GetPrice(ctx, "ETH", "")
	assert.ErrorIs(t, err, onyxcommon.ErrUnsupportedNetwork)
	_, err = c.Network(ctx)
	assert.ErrorIs(t, err, onyxcommon.ErrUnsupportedNetwork)

	assert.Empty(t, f.recorded())
	assert.Equal(t, 1, f.resolveCalls)
}

func TestUnsupportedChainIsFatal(t *testing.T) {
	f := newFakeTransport(t)
	f.chainID = 5
	c := newTestClient(t, f, onyx.Options{})

	_, err := c.Borrow(context.Background(), "DAI", units.Int(1), onyx.CallOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, onyxcommon.ErrUnsupportedNetwork)
	assert.Contains(t, err.Error(), "network id 5")
}

func TestValidationDoesNotWaitForNetwork(t *testing.T) {
	f := newFakeTransport(t)
	f.release = make(chan struct{})
	defer close(f.release)
	c := newTestClient(t, f, onyx.Options{})

	_, err := c.RepayBorrow(context.Background(), "USDC", units.Int(1), "0xbadaddress", false, onyx.CallOptions{})
	assert.ErrorIs(t, err, onyxcommon.ErrInvalidArgument)
}

func TestWaitingForNetworkRespectsContext(t *testing.T) {
	f := newFakeTransport(t)
	f.release = make(chan struct{})
	defer close(f.release)
	c := newTestClient(t, f, onyx.Options{})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := c.Borrow(ctx, "DAI", units.Int(1), onyx.CallOptions{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, onyxcommon.ErrUnsupportedNetwork)
}

func TestNewRejectsKeyAndMnemonicTogether(t *testing.T) {
	_, err := onyx.New("http://127.0.0.1:8545", onyx.Options{
		PrivateKey: devKey,
		Mnemonic:   "test test test test test test test test test test test junk",
	})
	assert.ErrorIs(t, err, onyxcommon.ErrInvalidArgument)
}
