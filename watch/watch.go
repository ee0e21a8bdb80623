package watch

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"context"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/segtree"
)

// Event describes one applied point update.
type Event[T any] struct {
	Index int
	Value T
}

// Guard wraps a segment tree behind a reader/writer lock.
//
// At most one Update is in flight at a time; queries proceed concurrently
// with each other. The wrapped tree is owned by the guard and must not be
// used directly any more.
type Guard[T any] struct {
	mu   sync.RWMutex
	tree *segtree.Tree[T]
	cast *caster.Caster // broadcaster for applied updates
}

// Wrap takes ownership of a tree and returns a guard for it.
func Wrap[T any](tree *segtree.Tree[T]) (*Guard[T], error) {
	if tree == nil {
		return nil, segtree.ErrIllegalArguments
	}
	return &Guard[T]{
		tree: tree,
		cast: caster.New(nil), // we will broadcast events when updates are applied
	}, nil
}

// Update overwrites the value at sequence index i under the write lock and,
// on success, broadcasts the change to all subscribers.
func (g *Guard[T]) Update(i int, v T) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.tree.Update(i, v); err != nil {
		return err
	}
	// Publishing under the lock keeps feed order identical to apply order.
	// TryPub never blocks; a closed feed just drops the event.
	if !g.cast.TryPub(Event[T]{Index: i, Value: v}) {
		tracer().Debugf("watch: update feed is closed, event dropped")
	}
	return nil
}

// Query folds the tree's monoid over [lo, hi] under the read lock.
func (g *Guard[T]) Query(lo, hi int) (T, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.Query(lo, hi)
}

// At returns the current value at sequence index i under the read lock.
func (g *Guard[T]) At(i int) (T, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.At(i)
}

// Len returns the logical sequence size n.
func (g *Guard[T]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.Len()
}

// Summary returns the aggregate over the complete sequence under the read
// lock.
func (g *Guard[T]) Summary() T {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tree.Summary()
}

// Subscribe returns a channel of Event[T] values for all updates applied
// after the call. The subscription ends when ctx is done or the guard is
// closed. capacity sets the channel buffer; slow subscribers with a full
// buffer miss events instead of blocking writers.
func (g *Guard[T]) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	return g.cast.Sub(ctx, capacity)
}

// Close shuts down the update feed. The guarded tree stays usable; further
// updates are applied but no longer broadcast.
func (g *Guard[T]) Close() {
	g.cast.Close()
}
