package segtree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
)

// Monoid defines how values are aggregated up the tree.
//
// For values a, b, c, Add must be associative:
//
//	Add(Add(a, b), c) == Add(a, Add(b, c))
//
// and Zero must be the neutral element:
//
//	Add(Zero(), a) == a == Add(a, Zero())
//
// The tree never validates these laws; violating them silently corrupts
// query results. Add need not be commutative: trees fold ranges strictly in
// left-to-right sequence order.
//
// Add must be pure. It may be called concurrently by readers, therefore it is
// illegal to hold unguarded mutable state in a monoid.
type Monoid[T any] interface {
	Zero() T
	Add(left, right T) T
}

// Tree is a segment tree over a fixed-size sequence of values.
//
// The tree owns a flat buffer of 2n slots, conceptually an implicit binary
// tree with 1-based indexing: slot p's children are 2p and 2p+1, the root is
// slot 1, slot 0 is unused. Leaves occupy slots [n, 2n) in the order of the
// input sequence. Every internal slot p holds
//
//	buf[p] == monoid.Add(buf[2p], buf[2p+1])
//
// This invariant holds before and after every exported operation.
//
// A Tree built from an empty sequence is valid; its queries fail with
// ErrEmptyTree.
type Tree[T any] struct {
	monoid Monoid[T]
	buf    []T // implicit binary tree; empty for n == 0
	n      int // logical sequence size
}

// New builds a segment tree from the given sequence of values.
//
// The monoid supplies the aggregation operation and its identity; it is the
// only way the tree ever touches values. Construction runs a single backward
// sweep over the internal slots and costs O(n).
//
// New fails only for a nil monoid. An empty sequence yields a valid,
// queryable-but-empty tree.
func New[T any](monoid Monoid[T], values ...T) (*Tree[T], error) {
	if monoid == nil {
		return nil, ErrNoMonoid
	}
	return build(monoid, values), nil
}

// build populates the leaf region and then finalizes internal slots from
// n-1 down to 1. The backward order guarantees that both children of a slot
// are already final when the slot itself is computed.
func build[T any](monoid Monoid[T], values []T) *Tree[T] {
	n := len(values)
	tree := &Tree[T]{monoid: monoid, n: n}
	if n == 0 {
		tracer().Debugf("segment tree built from empty sequence")
		return tree
	}
	tree.buf = make([]T, 2*n)
	copy(tree.buf[n:], values)
	for p := n - 1; p >= 1; p-- {
		tree.buf[p] = monoid.Add(tree.buf[2*p], tree.buf[2*p+1])
	}
	return tree
}

// Len returns the logical sequence size n.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// Update overwrites the value at sequence index i and repairs all ancestor
// aggregates on the leaf-to-root path, in O(log n).
//
// Slots outside the ancestor chain are left untouched. A rejected update
// leaves the buffer unmodified.
//
// Update is not safe for use concurrently with readers; see package watch.
func (t *Tree[T]) Update(i int, v T) error {
	if t == nil {
		return ErrIllegalArguments
	}
	if i < 0 || i >= t.n {
		return ErrIndexOutOfRange
	}
	p := i + t.n
	t.buf[p] = v
	// Parents are recomputed from their children in buffer order, keeping
	// left-to-right sequence order for non-commutative monoids.
	for p > 1 {
		p >>= 1
		t.buf[p] = t.monoid.Add(t.buf[2*p], t.buf[2*p+1])
	}
	return nil
}

// Query folds the monoid over the values at sequence indices [lo, hi], both
// inclusive, in left-to-right order, in O(log n).
//
// The walk climbs from the leaf level toward the root, picking up at most one
// fragment per level from the left edge and one from the right edge of the
// shrinking range. Left-edge fragments are appended to a left accumulator,
// right-edge fragments are prepended to a right accumulator, and the two are
// combined only once at the end. Folding both edges into a single accumulator
// would silently assume commutativity.
func (t *Tree[T]) Query(lo, hi int) (T, error) {
	var void T
	if t == nil || t.n == 0 {
		return void, ErrEmptyTree
	}
	if lo < 0 || hi >= t.n {
		return void, ErrIndexOutOfRange
	}
	if lo > hi {
		return void, ErrInvalidRange
	}
	leftAcc, rightAcc := t.monoid.Zero(), t.monoid.Zero()
	l, r := lo+t.n, hi+t.n
	for l <= r {
		if l&1 == 1 { // l is a right child: its parent reaches left of the range
			leftAcc = t.monoid.Add(leftAcc, t.buf[l])
			l++
		}
		if r&1 == 0 { // r is a left child, mirrored
			rightAcc = t.monoid.Add(t.buf[r], rightAcc)
			r--
		}
		l >>= 1
		r >>= 1
	}
	return t.monoid.Add(leftAcc, rightAcc), nil
}

// At returns the current value at sequence index i.
func (t *Tree[T]) At(i int) (T, error) {
	var void T
	if t == nil || t.n == 0 {
		return void, ErrEmptyTree
	}
	if i < 0 || i >= t.n {
		return void, ErrIndexOutOfRange
	}
	return t.buf[i+t.n], nil
}

// Summary returns the aggregate over the complete sequence, folded in
// left-to-right order. For an empty tree it returns the monoid's zero value.
//
// Summary runs the same walk as a full-range Query. The root slot is not a
// shortcut: with 2n slot addressing a leaf level that is not a power of two
// wraps around, so the root holds a rotated fold, which differs from the
// in-order one for non-commutative monoids.
func (t *Tree[T]) Summary() T {
	if t == nil {
		var void T
		return void
	}
	if t.n == 0 {
		return t.monoid.Zero()
	}
	agg, _ := t.Query(0, t.n-1)
	return agg
}

// RangeValues iterates over the logical sequence in order, yielding index and
// current value.
func (t *Tree[T]) RangeValues() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if t == nil {
			return
		}
		for i := range t.n {
			if !yield(i, t.buf[i+t.n]) {
				return
			}
		}
	}
}

// RangeLevels iterates over the implicit tree level by level, starting with
// the root level 0. Each level is yielded as a fresh copy; the internal
// buffer is never aliased out.
//
// Level d covers buffer slots [2^d, min(2^(d+1), 2n)). For sizes that are not
// powers of two a level may mix internal slots and leaf slots; slot positions
// at or beyond Len() are leaves.
func (t *Tree[T]) RangeLevels() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		if t == nil || t.n == 0 {
			return
		}
		depth := 0
		for from := 1; from < 2*t.n; from *= 2 {
			to := min(2*from, 2*t.n)
			level := make([]T, to-from)
			copy(level, t.buf[from:to])
			if !yield(depth, level) {
				return
			}
			depth++
		}
	}
}
