package octree

import "github.com/npillmayer/octree/arena"

// Stats collects occupancy figures of an octree.
type Stats struct {
	Nodes         int // live tree nodes
	Leaves        int // stored leaf values
	FullNodes     int // nodes covering a uniform cube
	MixedNodes    int // nodes linking octants individually
	VacantOctants int // octant links without a child
	MaxDepth      int // deepest occupied node level, counting the root
}

// Stats walks the tree once and returns occupancy figures.
func (oct *Octree[V]) Stats() Stats {
	stats := Stats{
		Nodes:  oct.nodes.Len(),
		Leaves: oct.leaves.Len(),
	}
	oct.statsNode(rootHandle, oct.halfWidth, 1, &stats)
	return stats
}

func (oct *Octree[V]) statsNode(h arena.Handle, halfWidth uint8, depth int, stats *Stats) {
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	n := oct.node(h)
	if n.kind == fullNode {
		stats.FullNodes++
		return
	}
	stats.MixedNodes++
	for _, child := range n.children {
		if child == arena.None {
			stats.VacantOctants++
			continue
		}
		if halfWidth > 1 {
			oct.statsNode(child, halfWidth/2, depth+1, stats)
		}
	}
}
