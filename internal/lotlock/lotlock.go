// Package lotlock serializes mutating operations per lot. All calls sharing a
// lot id run strictly one after another; distinct lots never block each other.
package lotlock

import (
	"context"
	"fmt"
	"sync"

	"auction-engine/internal/auctionerrors"
)

// Guard hands out per-lot mutual exclusion. Lock entries are reference-counted
// and removed once the last waiter leaves, so the map does not grow with the
// number of lots ever touched.
type Guard struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	sem  chan struct{} // capacity 1
	refs int
}

// New creates an empty guard
func New() *Guard {
	return &Guard{locks: make(map[string]*lockEntry)}
}

// WithLotLock runs fn while holding the exclusive lock for lotID. If the
// context expires before the lock is acquired, fn is never invoked and the
// error wraps ErrUnavailable so callers know to retry rather than report a
// business failure.
func (g *Guard) WithLotLock(ctx context.Context, lotID string, fn func() error) error {
	entry := g.retain(lotID)
	defer g.release(lotID)

	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("lot %s: waiting for lock: %w (%v)", lotID, auctionerrors.ErrUnavailable, ctx.Err())
	}
	defer func() { <-entry.sem }()

	return fn()
}

func (g *Guard) retain(lotID string) *lockEntry {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry, ok := g.locks[lotID]
	if !ok {
		entry = &lockEntry{sem: make(chan struct{}, 1)}
		g.locks[lotID] = entry
	}
	entry.refs++
	return entry
}

func (g *Guard) release(lotID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry := g.locks[lotID]
	entry.refs--
	if entry.refs == 0 {
		delete(g.locks, lotID)
	}
}
