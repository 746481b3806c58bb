package octree

import (
	"fmt"
	"io"

	"github.com/npillmayer/octree/arena"
)

// Octree2Dot outputs the internal structure of an octree in Graphviz DOT
// format (for debugging purposes).
//
// Tree nodes become circles labeled with their handle and half-width, leaf
// values become boxes, and edges carry the octant index. Node and leaf
// handles live in separate arenas, so DOT identifiers are prefixed with "n"
// and "l" respectively.
func Octree2Dot[V comparable](oct *Octree[V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	var walk func(h arena.Handle, halfWidth uint8)
	walk = func(h arena.Handle, halfWidth uint8) {
		n := oct.node(h)
		nodelist += fmt.Sprintf("\"n%d\" [label=\"%d (%d)\"%s];\n", h, h, halfWidth, dotNodeStyles(false))
		if n.kind == fullNode {
			nodelist += fmt.Sprintf("\"l%d\" [label=\"%v\"%s];\n", n.leaf, oct.leafValue(n.leaf), dotNodeStyles(true))
			edgelist += fmt.Sprintf("\"n%d\" -> \"l%d\" [label=\"all\"];\n", h, n.leaf)
			return
		}
		for i, child := range n.children {
			if child == arena.None {
				continue
			}
			if halfWidth == 1 {
				nodelist += fmt.Sprintf("\"l%d\" [label=\"%v\"%s];\n", child, oct.leafValue(child), dotNodeStyles(true))
				edgelist += fmt.Sprintf("\"n%d\" -> \"l%d\" [label=\"%d\"];\n", h, child, i)
				continue
			}
			edgelist += fmt.Sprintf("\"n%d\" -> \"n%d\" [label=\"%d\"];\n", h, child, i)
			walk(child, halfWidth/2)
		}
	}
	walk(rootHandle, oct.halfWidth)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func dotNodeStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	}
	return s
}
