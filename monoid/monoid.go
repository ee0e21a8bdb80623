package monoid

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "math"

// Number constrains the value types usable with the arithmetic monoids.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum aggregates by addition; the classic range-sum tree.
type Sum[T Number] struct{}

// Zero returns 0.
func (Sum[T]) Zero() T { return 0 }

// Add returns left + right.
func (Sum[T]) Add(left, right T) T { return left + right }

// Product aggregates by multiplication.
type Product[T Number] struct{}

// Zero returns 1.
func (Product[T]) Zero() T { return 1 }

// Add returns left * right.
func (Product[T]) Add(left, right T) T { return left * right }

// MinFloat aggregates float64 values to their minimum. The identity is +Inf.
type MinFloat struct{}

// Zero returns +Inf.
func (MinFloat) Zero() float64 { return math.Inf(1) }

// Add returns the smaller of left and right.
func (MinFloat) Add(left, right float64) float64 { return math.Min(left, right) }

// MaxFloat aggregates float64 values to their maximum. The identity is -Inf.
type MaxFloat struct{}

// Zero returns -Inf.
func (MaxFloat) Zero() float64 { return math.Inf(-1) }

// Add returns the larger of left and right.
func (MaxFloat) Add(left, right float64) float64 { return math.Max(left, right) }

// Concat aggregates strings by concatenation in sequence order.
//
// Concat is associative but not commutative, which makes it a useful probe
// for fold-order guarantees: a range query must yield the literal
// left-to-right concatenation of the range, never a reordered one.
type Concat struct{}

// Zero returns the empty string.
func (Concat) Zero() string { return "" }

// Add returns left + right, in that order.
func (Concat) Add(left, right string) string { return left + right }

// Func is a monoid assembled from a closure pair. It lets clients plug in an
// aggregation as a capability value without declaring a named type.
type Func[T any] struct {
	zero T
	add  func(left, right T) T
}

// Of creates a monoid from an identity value and an associative function.
//
// The associativity and identity laws are the caller's responsibility, as
// with every monoid.
func Of[T any](zero T, add func(left, right T) T) Func[T] {
	return Func[T]{zero: zero, add: add}
}

// Zero returns the identity value given to Of.
func (m Func[T]) Zero() T { return m.zero }

// Add applies the function given to Of.
func (m Func[T]) Add(left, right T) T { return m.add(left, right) }
