package octree

import (
	"fmt"

	"github.com/npillmayer/octree/arena"
	"github.com/npillmayer/octree/voxel"
)

// Insert sets the value of the voxel at pos.
//
// Inserting the value a voxel already carries is a no-op. Inserting the last
// differing voxel of an otherwise uniform region collapses the region into a
// single full node, and inserting a differing value into a full node splits
// the node apart. Positions outside the volume are flagged with
// ErrPositionOutOfBounds; no partial mutation is left behind on any path.
func (oct *Octree[V]) Insert(pos voxel.Pos, v V) error {
	if !oct.covers(pos) {
		return fmt.Errorf("%w: %s exceeds volume of width %d", ErrPositionOutOfBounds, pos, oct.Width())
	}
	h := rootHandle
	halfWidth := oct.halfWidth
	for {
		n := oct.node(h)
		if n.kind == fullNode {
			old := oct.leafValue(n.leaf)
			if old == v {
				return nil
			}
			idx := octant(&pos, halfWidth)
			tracer().Debugf("splitting full node %d (half-width %d)", h, halfWidth)
			children := oct.splitChildren(old, idx, v, pos, halfWidth)
			oct.removeLeaf(n.leaf)
			oct.setNode(h, makeMixed(children))
			return nil
		}
		idx := octant(&pos, halfWidth)
		if oct.wouldBecomeFull(n.children, idx, v, pos, halfWidth) {
			tracer().Debugf("collapsing node %d (half-width %d) into a full node", h, halfWidth)
			oct.freeChildren(n.children, halfWidth)
			oct.setNode(h, makeFull(oct.leaves.Insert(v)))
			return nil
		}
		child := n.children[idx]
		if child == arena.None {
			tracer().Debugf("growing a branch at octant %d of node %d", idx, h)
			if halfWidth == 1 {
				n.children[idx] = oct.leaves.Insert(v)
			} else {
				n.children[idx] = oct.makePath(pos, v, halfWidth/2)
			}
			oct.setNode(h, n)
			return nil
		}
		if halfWidth == 1 {
			tracer().Debugf("editing leaf %d in place", child)
			oct.setLeaf(child, v)
			return nil
		}
		h = child
		halfWidth /= 2
	}
}

// wouldBecomeFull reports whether inserting v would make every octant of a
// mixed node resolve to v. idx and pos must already be decomposed at the
// node's level; the probe is read-only.
//
// An untouched octant counts only when it already is a full node carrying v.
// The octant receiving the insert is probed recursively along the insertion
// path: vacant means no, a full node must carry v, a mixed node must in turn
// become full by this insert.
func (oct *Octree[V]) wouldBecomeFull(children [8]arena.Handle, idx int, v V, pos voxel.Pos, halfWidth uint8) bool {
	if halfWidth == 1 {
		for i, child := range children {
			if i == idx {
				continue
			}
			if child == arena.None || oct.leafValue(child) != v {
				return false
			}
		}
		return true
	}
	target := children[idx]
	if target == arena.None {
		return false
	}
	if n := oct.node(target); n.kind == fullNode {
		if oct.leafValue(n.leaf) != v {
			return false
		}
	} else {
		childIdx := octant(&pos, halfWidth/2)
		if !oct.wouldBecomeFull(n.children, childIdx, v, pos, halfWidth/2) {
			return false
		}
	}
	for i, child := range children {
		if i == idx {
			continue
		}
		if child == arena.None {
			return false
		}
		if sibling := oct.node(child); sibling.kind != fullNode || oct.leafValue(sibling.leaf) != v {
			return false
		}
	}
	return true
}

// splitChildren builds the eight children replacing a full node that
// receives a differing value v at pos. idx and pos must already be
// decomposed at the node's level.
//
// Seven octants keep the node's old value; the octant holding pos is
// subdivided the same way one level further down, until the leaf level
// separates the two values.
func (oct *Octree[V]) splitChildren(old V, idx int, v V, pos voxel.Pos, halfWidth uint8) [8]arena.Handle {
	children := noChildren
	if halfWidth == 1 {
		for i := range children {
			if i == idx {
				children[i] = oct.leaves.Insert(v)
			} else {
				children[i] = oct.leaves.Insert(old)
			}
		}
		return children
	}
	for i := range children {
		if i == idx {
			childIdx := octant(&pos, halfWidth/2)
			sub := oct.splitChildren(old, childIdx, v, pos, halfWidth/2)
			children[i] = oct.nodes.Insert(makeMixed(sub))
		} else {
			children[i] = oct.nodes.Insert(makeFull(oct.leaves.Insert(old)))
		}
	}
	return children
}

// freeChildren returns a mixed node's subtree to the arenas, octant by
// octant. Every live descendant is freed exactly once.
func (oct *Octree[V]) freeChildren(children [8]arena.Handle, halfWidth uint8) {
	for _, child := range children {
		if child == arena.None {
			continue
		}
		if halfWidth == 1 {
			oct.removeLeaf(child)
			continue
		}
		n := oct.removeNode(child)
		if n.kind == fullNode {
			oct.removeLeaf(n.leaf)
		} else {
			oct.freeChildren(n.children, halfWidth/2)
		}
	}
}

// makePath builds the minimal chain of mixed nodes carrying a single voxel
// value and returns the chain's topmost node. pos must be relative to a
// cube of the given half-width.
func (oct *Octree[V]) makePath(pos voxel.Pos, v V, halfWidth uint8) arena.Handle {
	children := noChildren
	idx := octant(&pos, halfWidth)
	if halfWidth == 1 {
		children[idx] = oct.leaves.Insert(v)
	} else {
		children[idx] = oct.makePath(pos, v, halfWidth/2)
	}
	return oct.nodes.Insert(makeMixed(children))
}
