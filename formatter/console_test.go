package formatter

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/segtree"
	"github.com/npillmayer/uax/uax11"
)

type plus struct{}

func (plus) Zero() int               { return 0 }
func (plus) Add(left, right int) int { return left + right }

func TestOutputLevels(t *testing.T) {
	color.NoColor = true // plain output for string assertions
	tree, err := segtree.New[int](plus{}, 1, 2, 3, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	var sb strings.Builder
	cfg := &Config{LineWidth: 40, Context: uax11.LatinContext}
	if err := Output(tree, &sb, NewConsole(nil), cfg); err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 levels for n=4, got %d:\n%s", len(lines), sb.String())
	}
	if !strings.Contains(lines[0], "10") {
		t.Errorf("root level should show the total 10, got %q", lines[0])
	}
	last := strings.Fields(lines[2])
	want := []string{"1", "2", "3", "4"}
	if len(last) != len(want) {
		t.Fatalf("leaf level = %q, want cells %v", lines[2], want)
	}
	for i := range want {
		if last[i] != want[i] {
			t.Errorf("leaf cell %d = %q, want %q", i, last[i], want[i])
		}
	}
}

func TestOutputEmptyTree(t *testing.T) {
	color.NoColor = true
	tree, _ := segtree.New[int](plus{})
	var sb strings.Builder
	if err := Output(tree, &sb, NewConsole(nil), nil); err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if !strings.Contains(sb.String(), "empty") {
		t.Errorf("expected empty-tree marker, got %q", sb.String())
	}
}

func TestOutputRejectsNilTree(t *testing.T) {
	var sb strings.Builder
	err := Output[int](nil, &sb, NewConsole(nil), nil)
	if err == nil {
		t.Fatal("expected error for nil tree")
	}
}

func TestCellPaddingWithWideRunes(t *testing.T) {
	// CJK runes occupy two cells; padding has to account for that.
	w := cellwidth("樹", uax11.LatinContext)
	if w != 2 {
		t.Fatalf("width of wide rune = %d, want 2", w)
	}
	padded := cell("樹", 4, uax11.LatinContext)
	if cw := cellwidth(padded, uax11.LatinContext); cw != 4 {
		t.Errorf("padded cell width = %d, want 4", cw)
	}
}
