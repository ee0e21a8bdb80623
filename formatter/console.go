package formatter

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/segtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// SlotClass classifies buffer slots for styling purposes.
type SlotClass int

// Slot classes recognized by the console formatter.
const (
	InternalSlot SlotClass = iota
	LeafSlot
)

// Console is a formatter for consoles with a fixed width font.
//
// colors is a map from slot classes to colors, used for display. It may
// contain just a subset of the classes handled by this formatter.
type Console struct {
	colors map[SlotClass]*color.Color
}

// NewConsole creates a new console formatter. A nil color map selects a
// default palette.
func NewConsole(colors map[SlotClass]*color.Color) *Console {
	fw := &Console{}
	if colors == nil {
		fw.colors = makeDefaultPalette()
	} else {
		fw.colors = colors
	}
	return fw
}

func makeDefaultPalette() map[SlotClass]*color.Color {
	palette := map[SlotClass]*color.Color{
		InternalSlot: color.New(color.FgBlue),
		LeafSlot:     color.New(color.FgRed),
	}
	return palette
}

// styledCell outputs one cell, colored according to its slot class.
func (fw *Console) styledCell(s string, class SlotClass, w io.Writer) {
	if c, ok := fw.colors[class]; ok {
		c.Fprint(w, s)
		return
	}
	w.Write([]byte(s))
}

// Print outputs a tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func Print[T any](tree *segtree.Tree[T], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return Output(tree, os.Stdout, NewConsole(nil), config)
}

// Output renders every level of a tree as a row of fixed-width cells.
//
// Rows are centered with respect to config.LineWidth. Rows wider than the
// configured line width are emitted unwrapped; tree output is diagnostic and
// wrapping would destroy the level structure.
func Output[T any](tree *segtree.Tree[T], w io.Writer, console *Console, config *Config) error {
	if tree == nil || console == nil {
		return segtree.ErrIllegalArguments
	}
	cfg := config.normalized()
	if tree.Len() == 0 {
		_, err := io.WriteString(w, "(empty tree)\n")
		return err
	}

	cellWidth := 1
	for _, level := range tree.RangeLevels() {
		for _, value := range level {
			if width := cellwidth(value, cfg.Context); width > cellWidth {
				cellWidth = width
			}
		}
	}

	n := tree.Len()
	slot := 1 // leading buffer position of the current level
	for _, level := range tree.RangeLevels() {
		rowWidth := len(level)*(cellWidth+1) - 1
		if pad := (cfg.LineWidth - rowWidth) / 2; pad > 0 {
			io.WriteString(w, strings.Repeat(" ", pad))
		}
		for j, value := range level {
			if j > 0 {
				io.WriteString(w, " ")
			}
			class := InternalSlot
			if slot+j >= n {
				class = LeafSlot
			}
			console.styledCell(cell(value, cellWidth, cfg.Context), class, w)
		}
		io.WriteString(w, "\n")
		slot += len(level)
	}
	return nil
}

// cell formats a value and pads it to the uniform cell width.
func cell[T any](value T, width int, context *uax11.Context) string {
	s := fmt.Sprintf("%v", value)
	pad := width - cellwidth(value, context)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// cellwidth measures a value's display width in fixed-width ‘en’s.
func cellwidth[T any](value T, context *uax11.Context) int {
	s := fmt.Sprintf("%v", value)
	gstr := grapheme.StringFromString(s)
	return uax11.StringWidth(gstr, context)
}
