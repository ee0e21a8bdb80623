/*
Package monoid provides some pre-manufactured aggregation monoids for
segment trees.

All monoids in this package obey the laws documented on segtree.Monoid:
Add is associative and Zero is its neutral element. Commutativity is not
required by segment trees and deliberately not guaranteed by every monoid
here; Concat and TextStats depend on fold order.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package monoid
