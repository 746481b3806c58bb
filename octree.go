package octree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"math/bits"

	"github.com/npillmayer/octree/arena"
	"github.com/npillmayer/octree/voxel"
)

// Octree is a sparse voxel octree over values of type V.
//
// The tree covers a cubic volume with a side length of twice the configured
// half-width. Every unit voxel may carry one value; uniform regions collapse
// into single nodes, so repeating volumes stay compact. Nodes and values are
// stored in arenas and linked by handles.
//
// An Octree is not safe for concurrent use; callers serialize access.
type Octree[V comparable] struct {
	nodes     arena.Arena[node]
	leaves    arena.Arena[V]
	halfWidth uint8
}

// rootHandle addresses the root node in every octree.
const rootHandle arena.Handle = 0

// New creates an empty octree covering a cube with a side length of
// 2×halfWidth. The half-width must be a power of two.
func New[V comparable](halfWidth uint8) (*Octree[V], error) {
	if halfWidth == 0 || halfWidth&(halfWidth-1) != 0 {
		return nil, fmt.Errorf("%w: half-width must be a power of two, have %d", ErrInvalidConfig, halfWidth)
	}
	oct := &Octree[V]{halfWidth: halfWidth}
	root := oct.nodes.Insert(makeMixed(noChildren))
	assert(root == rootHandle, "fresh arena issued a non-zero root handle")
	return oct, nil
}

// HalfWidth returns the configured half-width.
func (oct *Octree[V]) HalfWidth() uint8 {
	return oct.halfWidth
}

// Width returns the side length of the covered volume.
func (oct *Octree[V]) Width() int {
	return 2 * int(oct.halfWidth)
}

// Depth returns the number of subdivision levels, counting the root.
func (oct *Octree[V]) Depth() int {
	return bits.Len8(oct.halfWidth)
}

// LeafCount returns the number of stored leaf values.
func (oct *Octree[V]) LeafCount() int {
	return oct.leaves.Len()
}

// NodeCount returns the number of live tree nodes, including the root.
func (oct *Octree[V]) NodeCount() int {
	return oct.nodes.Len()
}

// IsEmpty reports whether no voxel carries a value.
func (oct *Octree[V]) IsEmpty() bool {
	return oct.leaves.Len() == 0
}

// Get returns the value of the voxel at pos.
//
// The boolean result is false for vacant voxels. Positions outside the
// volume are flagged with ErrPositionOutOfBounds.
func (oct *Octree[V]) Get(pos voxel.Pos) (V, bool, error) {
	var none V
	if !oct.covers(pos) {
		return none, false, fmt.Errorf("%w: %s exceeds volume of width %d", ErrPositionOutOfBounds, pos, oct.Width())
	}
	h := rootHandle
	halfWidth := oct.halfWidth
	for {
		n := oct.node(h)
		if n.kind == fullNode {
			return oct.leafValue(n.leaf), true, nil
		}
		idx := octant(&pos, halfWidth)
		child := n.children[idx]
		if child == arena.None {
			return none, false, nil
		}
		if halfWidth == 1 {
			return oct.leafValue(child), true, nil
		}
		h = child
		halfWidth /= 2
	}
}

// Remove clears the voxel at pos.
//
// Not implemented yet. Removal is the structural inverse of insertion: a
// full node covering pos has to split into a mixed node with one vacant
// octant, and a mixed node losing its last occupied octant has to vacate
// its own slot in the parent.
func (oct *Octree[V]) Remove(pos voxel.Pos) error {
	if !oct.covers(pos) {
		return fmt.Errorf("%w: %s exceeds volume of width %d", ErrPositionOutOfBounds, pos, oct.Width())
	}
	return fmt.Errorf("%w: Remove", ErrUnimplemented)
}

// Update replaces the value of the voxel at pos by fn applied to the current
// value.
//
// Not implemented yet.
func (oct *Octree[V]) Update(pos voxel.Pos, fn func(V) V) error {
	if !oct.covers(pos) {
		return fmt.Errorf("%w: %s exceeds volume of width %d", ErrPositionOutOfBounds, pos, oct.Width())
	}
	return fmt.Errorf("%w: Update", ErrUnimplemented)
}

// covers reports whether pos lies inside the volume.
func (oct *Octree[V]) covers(pos voxel.Pos) bool {
	w := 2 * int(oct.halfWidth)
	return int(pos.X) < w && int(pos.Y) < w && int(pos.Z) < w
}

// Handle resolution below promotes arena faults to panics: a dangling handle
// inside a tree operation is an octree bug, not an input error.

func (oct *Octree[V]) node(h arena.Handle) node {
	n, err := oct.nodes.At(h)
	assert(err == nil, "dangling node handle in octree")
	return n
}

func (oct *Octree[V]) leafValue(h arena.Handle) V {
	v, err := oct.leaves.At(h)
	assert(err == nil, "dangling leaf handle in octree")
	return v
}

func (oct *Octree[V]) setNode(h arena.Handle, n node) {
	err := oct.nodes.Set(h, n)
	assert(err == nil, "dangling node handle in octree")
}

func (oct *Octree[V]) setLeaf(h arena.Handle, v V) {
	err := oct.leaves.Set(h, v)
	assert(err == nil, "dangling leaf handle in octree")
}

func (oct *Octree[V]) removeNode(h arena.Handle) node {
	n, err := oct.nodes.Remove(h)
	assert(err == nil, "dangling node handle in octree")
	return n
}

func (oct *Octree[V]) removeLeaf(h arena.Handle) {
	_, err := oct.leaves.Remove(h)
	assert(err == nil, "dangling leaf handle in octree")
}
