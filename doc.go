/*
Package segtree implements a mutable range-aggregation index over a fixed
sequence of values, commonly known as a segment tree.

Segment Trees

A segment tree is built once from an ordered sequence of n values and
afterwards supports two operations, both in logarithmic time: overwriting a
single element, and computing the combined aggregate (a sum, a minimum, a
concatenation, …) of any contiguous sub-range of the sequence.

The aggregate is pluggable: clients supply a monoid, i.e., an associative
binary operation together with its identity element. The tree logic has
exactly one shape regardless of the operation; there is no operator-specific
code path anywhere in the package.

Range questions are answered by decomposing an arbitrary interval into
O(log n) canonical node intervals, each of which carries a precomputed
aggregate. Updating one element invalidates exactly the aggregates on the
leaf-to-root path, which is again O(log n) slots.

	Operation     |  Segment tree   |  Plain slice
	--------------+-----------------+-------------
	Point read    |   O(1)          |   O(1)
	Point update  |   O(log n)      |   O(1)
	Range fold    |   O(log n)      |   O(n)

This package deliberately stores the tree as a single flat buffer of 2n slots
with index arithmetic (children of slot p sit at 2p and 2p+1, leaves occupy
[n, 2n)), not as a graph of allocated node objects. The flat layout is
cache-friendly and removes an entire class of pointer-invalidation concerns.

The sequence size is fixed at construction; inserting or removing elements is
not supported. For mutable-length sequences with monoid summaries refer to
the sibling package github.com/npillmayer/cords.

Trees are not internally synchronized. Concurrent readers are safe with each
other, but an in-flight Update briefly leaves ancestor aggregates
inconsistent, so callers mixing readers and a writer must wrap the tree
behind a reader/writer lock. Package segtree/watch provides such a wrapper.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package segtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is the tracer accessor for generic scopes, where a type parameter T
// shadows the exported helper.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the segtree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrIndexOutOfRange is flagged whenever an update or query references a
// position outside [0, n).
const ErrIndexOutOfRange = TreeError("index out of range")

// ErrInvalidRange is flagged for queries with lo > hi.
const ErrInvalidRange = TreeError("invalid range")

// ErrEmptyTree is flagged for queries against a tree built from an empty
// sequence.
const ErrEmptyTree = TreeError("query on empty tree")

// ErrNoMonoid signals a construction attempt without an aggregation monoid.
const ErrNoMonoid = TreeError("monoid is required")

// ErrTreeCompleted signals that a builder has already completed a tree and
// it's illegal to further add values.
const ErrTreeCompleted = TreeError("forbidden to add values; tree has been completed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrInvariantViolated signals a corrupted tree buffer, detected by Check.
const ErrInvariantViolated = TreeError("tree invariant violated")
