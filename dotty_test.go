package segtree

import (
	"strings"
	"testing"
)

func TestTree2Dot(t *testing.T) {
	tree, _ := New[int](plus{}, 1, 2, 3, 4)
	var sb strings.Builder
	Tree2Dot(tree, &sb)
	dot := sb.String()
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Fatalf("missing digraph preamble:\n%s", dot)
	}
	// leaf labels, root aggregate, root-to-children edges, leaf styling
	for _, want := range []string{
		"“1”", "“2”", "“3”", "“4”",
		"@1\\n10",
		"\"1\" -> \"2\"",
		"\"1\" -> \"3\"",
		"shape=box",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output misses %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "\"0\"") {
		t.Errorf("slot 0 must not appear in DOT output:\n%s", dot)
	}
}

func TestTree2DotNilTree(t *testing.T) {
	var sb strings.Builder
	Tree2Dot[int](nil, &sb)
	dot := sb.String()
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("nil tree should still yield an empty graph, got:\n%s", dot)
	}
}
