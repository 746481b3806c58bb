package octree

import (
	"github.com/npillmayer/octree/arena"
	"github.com/npillmayer/octree/voxel"
)

// nodeKind discriminates the two node variants.
type nodeKind uint8

const (
	fullNode  nodeKind = iota // covers its whole cube with one value
	mixedNode                 // links up to eight octants
)

// node is one cube of the subdivision hierarchy.
//
// A full node represents a uniform cube and stores a single leaf handle. A
// mixed node links its octants individually: node handles above the leaf
// level, leaf handles at half-width 1, arena.None for vacant octants.
type node struct {
	kind     nodeKind
	leaf     arena.Handle
	children [8]arena.Handle
}

// noChildren is the all-vacant octant block.
var noChildren = [8]arena.Handle{
	arena.None, arena.None, arena.None, arena.None,
	arena.None, arena.None, arena.None, arena.None,
}

func makeFull(leaf arena.Handle) node {
	return node{kind: fullNode, leaf: leaf, children: noChildren}
}

func makeMixed(children [8]arena.Handle) node {
	return node{kind: mixedNode, leaf: arena.None, children: children}
}

// octant selects the octant of p in a cube of the given half-width and
// reduces p to coordinates relative to that octant.
//
// Octants are numbered with x as the high bit: index = x·4 + y·2 + z, where
// an axis contributes its bit when the coordinate reaches the half-width.
func octant(p *voxel.Pos, halfWidth uint8) int {
	idx := 0
	if p.X >= halfWidth {
		idx |= 4
		p.X -= halfWidth
	}
	if p.Y >= halfWidth {
		idx |= 2
		p.Y -= halfWidth
	}
	if p.Z >= halfWidth {
		idx |= 1
		p.Z -= halfWidth
	}
	return idx
}
