package segtree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Check validates the structural invariant of a tree: every internal slot p
// in [1, n) must equal the aggregate of its two children, and the buffer must
// have exactly 2n slots.
//
// This checker is intentionally strict and costs O(n); it is meant for tests
// and debugging, not for production paths.
func Check[T comparable](t *Tree[T]) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if t.n == 0 {
		if len(t.buf) != 0 {
			return fmt.Errorf("%w: empty tree must have empty buffer", ErrInvariantViolated)
		}
		return nil
	}
	if len(t.buf) != 2*t.n {
		return fmt.Errorf("%w: buffer has %d slots, want %d", ErrInvariantViolated, len(t.buf), 2*t.n)
	}
	for p := 1; p < t.n; p++ {
		want := t.monoid.Add(t.buf[2*p], t.buf[2*p+1])
		if t.buf[p] != want {
			return fmt.Errorf("%w: slot %d holds %v, want %v", ErrInvariantViolated, p, t.buf[p], want)
		}
	}
	return nil
}
