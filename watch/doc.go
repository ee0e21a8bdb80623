/*
Package watch wraps segment trees for multi-threaded use.

The segtree core is synchronous and provides no internal locking: concurrent
queries are safe with each other, but not with an in-flight update, which
briefly leaves ancestor aggregates inconsistent. Guard is the documented
remedy: a single-writer/multiple-reader wrapper that serializes every update
behind a write lock and runs queries under a shared read lock.

Guard additionally broadcasts every applied update to subscribers, so
higher-level components (caches, views, recomputation pipelines) can react to
point mutations without polling.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package watch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}
