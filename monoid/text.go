package monoid

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"unicode"
	"unicode/utf8"
)

// TextSummary aggregates metrics for a fragment of text.
//
// Word counting is exact across fragment boundaries: a summary remembers
// whether its fragment starts or ends in the middle of a word, and Add merges
// the two counts when the right fragment continues a word begun in the left
// one. Fragments may therefore be cut at arbitrary byte positions.
type TextSummary struct {
	Bytes uint64
	Chars uint64
	Lines uint64
	Words uint64

	// boundary conditions for word merging
	StartsInWord bool
	EndsInWord   bool
}

// WordCount returns the number of recognized words.
func (s TextSummary) WordCount() int {
	return int(s.Words)
}

// SummarizeString scans a text fragment and returns its summary.
//
// Words are maximal runs of non-space runes; lines are counted as newline
// characters, matching the conventions of package cords.
func SummarizeString(fragment string) TextSummary {
	var summary TextSummary
	summary.Bytes = uint64(len(fragment))
	inWord := false
	for pos := 0; pos < len(fragment); {
		r, width := utf8.DecodeRuneInString(fragment[pos:])
		summary.Chars++
		if r == '\n' {
			summary.Lines++
		}
		if unicode.IsSpace(r) {
			inWord = false
		} else {
			if !inWord {
				summary.Words++
				if pos == 0 {
					summary.StartsInWord = true
				}
			}
			inWord = true
		}
		pos += width
	}
	summary.EndsInWord = inWord
	return summary
}

// TextStats aggregates text summaries in sequence order.
//
// TextStats is associative but not commutative: merging depends on which
// fragment precedes which.
type TextStats struct{}

// Zero returns the summary of the empty fragment.
func (TextStats) Zero() TextSummary { return TextSummary{} }

// Add combines two adjacent summaries, left fragment first.
func (TextStats) Add(left, right TextSummary) TextSummary {
	out := TextSummary{
		Bytes: left.Bytes + right.Bytes,
		Chars: left.Chars + right.Chars,
		Lines: left.Lines + right.Lines,
		Words: left.Words + right.Words,
	}
	if left.EndsInWord && right.StartsInWord {
		// the right fragment continues a word, not a new one
		out.Words--
	}
	switch {
	case left.Bytes == 0:
		out.StartsInWord = right.StartsInWord
	default:
		out.StartsInWord = left.StartsInWord
	}
	switch {
	case right.Bytes == 0:
		out.EndsInWord = left.EndsInWord
	default:
		out.EndsInWord = right.EndsInWord
	}
	return out
}
