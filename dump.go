package octree

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/octree/arena"
)

const dumpIndent = "   "

// String renders the octree as an indented textual dump.
//
// Nodes are listed depth-first in ascending octant order. Every node opens
// with a header naming its handle and half-width; below it follow one line
// per occupied octant (a leaf value, or a nested node block) and a single
// combined line for the vacant octants. Full nodes list their value on an
// "All:" line. The listing is stable: equal trees render equal dumps.
func (oct *Octree[V]) String() string {
	var sb strings.Builder
	if err := oct.Dump(&sb); err != nil {
		tracer().Errorf("octree dump: %s", err.Error())
	}
	return sb.String()
}

// Dump writes the textual dump of the octree to w.
func (oct *Octree[V]) Dump(w io.Writer) error {
	return oct.dumpNode(w, rootHandle, "", oct.halfWidth, 0)
}

func (oct *Octree[V]) dumpNode(w io.Writer, h arena.Handle, prefix string, halfWidth uint8, indent int) error {
	outer := strings.Repeat(dumpIndent, indent)
	inner := outer + dumpIndent
	if _, err := fmt.Fprintf(w, "%s%sNode %d (%d):\n", outer, prefix, h, halfWidth); err != nil {
		return err
	}
	n := oct.node(h)
	if n.kind == fullNode {
		_, err := fmt.Fprintf(w, "%sAll: %v\n", inner, oct.leafValue(n.leaf))
		return err
	}
	var empties []string
	for i, child := range n.children {
		if child == arena.None {
			empties = append(empties, strconv.Itoa(i))
			continue
		}
		if halfWidth == 1 {
			if _, err := fmt.Fprintf(w, "%s%d: Leaf: %v\n", inner, i, oct.leafValue(child)); err != nil {
				return err
			}
			continue
		}
		if err := oct.dumpNode(w, child, strconv.Itoa(i)+": ", halfWidth/2, indent+1); err != nil {
			return err
		}
	}
	if len(empties) > 0 {
		if _, err := fmt.Fprintf(w, "%s%s: Empty\n", inner, strings.Join(empties, ", ")); err != nil {
			return err
		}
	}
	return nil
}
