package segtree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
)

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
//
// Buffer slots double as node IDs. Leaf slots are labelled with their
// sequence index, internal slots with the slot position.
func Tree2Dot[T any](tree *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if tree != nil {
		n := tree.Len()
		nodelist, edgelist := "", ""
		for p := 1; p < 2*n; p++ {
			if p >= n { // leaf slot
				label := fmt.Sprintf("#%d\\n“%v”", p-n, tree.buf[p])
				nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", p, label, leafDotStyles)
				continue
			}
			label := fmt.Sprintf("@%d\\n%v", p, tree.buf[p])
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", p, label, innerDotStyles)
			if 2*p < 2*n {
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", p, 2*p)
			}
			if 2*p+1 < 2*n {
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", p, 2*p+1)
			}
		}
		io.WriteString(w, nodelist)
		io.WriteString(w, edgelist)
	}
	io.WriteString(w, "}\n")
}

const leafDotStyles = "shape=box,style=filled,fillcolor=lightgray"
const innerDotStyles = "shape=ellipse"
