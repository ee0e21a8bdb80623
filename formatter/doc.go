/*
Package formatter renders segment trees to consoles, level by level.

Output is intended for debugging and teaching: every tree level is printed as
a row of fixed-width cells, with colors distinguishing internal aggregate
slots from leaf slots. Cell widths are computed with UAX #11 East Asian width
rules, so values containing wide runes stay aligned.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'segtree'
func tracer() tracing.Trace {
	return tracing.Select("segtree")
}
