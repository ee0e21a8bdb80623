package segtree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Builder incrementally stages a sequence of values and finalizes it into a
// Tree.
//
// Builder collects values in logical order and materializes the tree only
// when Tree() is called. This keeps the one-shot construction contract of
// Tree intact while letting clients assemble the initial sequence from
// several sources.
type Builder[T any] struct {
	monoid Monoid[T]
	// front keeps prepended values in reverse logical order.
	front []T
	// back keeps appended values in logical order.
	back []T

	done  bool
	dirty bool
	tree  *Tree[T]
}

// NewBuilder creates a new and empty tree builder. It fails for a nil monoid.
func NewBuilder[T any](monoid Monoid[T]) (*Builder[T], error) {
	if monoid == nil {
		return nil, ErrNoMonoid
	}
	return &Builder[T]{monoid: monoid}, nil
}

// Append appends values to the staged sequence.
//
// Returns ErrTreeCompleted if Tree() has already been called.
func (b *Builder[T]) Append(values ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTreeCompleted
	}
	b.back = append(b.back, values...)
	if len(values) > 0 {
		b.dirty = true
	}
	return nil
}

// Prepend prepends values to the staged sequence, keeping their relative
// order.
//
// Returns ErrTreeCompleted if Tree() has already been called.
func (b *Builder[T]) Prepend(values ...T) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTreeCompleted
	}
	for i := len(values) - 1; i >= 0; i-- {
		b.front = append(b.front, values[i])
	}
	if len(values) > 0 {
		b.dirty = true
	}
	return nil
}

// Len returns the number of currently staged values.
func (b *Builder[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.front) + len(b.back)
}

// Tree returns the tree built from all staged values.
//
// It is illegal to continue adding values after Tree has been called, but
// Tree may be called multiple times and returns the same built tree until
// Reset.
func (b *Builder[T]) Tree() *Tree[T] {
	if b == nil {
		return nil
	}
	if b.dirty || b.tree == nil {
		values := make([]T, 0, len(b.front)+len(b.back))
		for i := len(b.front) - 1; i >= 0; i-- {
			values = append(values, b.front[i])
		}
		values = append(values, b.back...)
		b.tree = build(b.monoid, values)
		b.dirty = false
	}
	b.done = true
	if b.tree.Len() == 0 {
		tracer().Debugf("tree builder: tree is empty")
	}
	return b.tree
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder[T]) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.tree = nil
}
