package onyx

import (
	"context"
	"sync/atomic"

	"github.com/tranvictor/onyxkit/networks"
)

// gate holds every network dependent operation back until the connected
// network is known. It resolves exactly once. A failed resolution is final
// and is handed to every waiter, present and future.
type gate struct {
	done     chan struct{}
	resolved atomic.Pointer[networks.Profile]
	err      error
}

func newGate(resolve func() (*networks.Profile, error)) *gate {
	g := &gate{done: make(chan struct{})}
	go func() {
		defer close(g.done)
		p, err := resolve()
		if err != nil {
			g.err = err
			return
		}
		g.resolved.Store(p)
	}()
	return g
}

// wait returns the resolved profile. Once resolved it never blocks.
func (g *gate) wait(ctx context.Context) (*networks.Profile, error) {
	if p := g.resolved.Load(); p != nil {
		return p, nil
	}
	select {
	case <-g.done:
		if g.err != nil {
			return nil, g.err
		}
		return g.resolved.Load(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
