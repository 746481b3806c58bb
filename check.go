package octree

import (
	"fmt"

	"github.com/npillmayer/octree/arena"
)

// Check validates structural octree invariants.
//
// This checker is intentionally strict and should be used in tests while the
// implementation is evolving. It verifies that every linked handle is live,
// that every live arena slot is linked exactly once, and that no mixed node
// covers a region a single full node could represent.
func (oct *Octree[V]) Check() error {
	if oct == nil {
		return fmt.Errorf("%w: nil octree", ErrInvariant)
	}
	if !oct.nodes.Contains(rootHandle) {
		return fmt.Errorf("%w: root node is missing", ErrInvariant)
	}
	seenNodes := make(map[arena.Handle]bool)
	seenLeaves := make(map[arena.Handle]bool)
	if err := oct.checkNode(rootHandle, oct.halfWidth, seenNodes, seenLeaves); err != nil {
		return err
	}
	if len(seenNodes) != oct.nodes.Len() {
		return fmt.Errorf("%w: %d node(s) unreachable from the root", ErrInvariant, oct.nodes.Len()-len(seenNodes))
	}
	if len(seenLeaves) != oct.leaves.Len() {
		return fmt.Errorf("%w: %d leaf value(s) unreachable from the root", ErrInvariant, oct.leaves.Len()-len(seenLeaves))
	}
	return nil
}

func (oct *Octree[V]) checkNode(h arena.Handle, halfWidth uint8, seenNodes, seenLeaves map[arena.Handle]bool) error {
	if seenNodes[h] {
		return fmt.Errorf("%w: node %d is linked more than once", ErrInvariant, h)
	}
	seenNodes[h] = true
	n, err := oct.nodes.At(h)
	if err != nil {
		return fmt.Errorf("%w: dangling node handle %d", ErrInvariant, h)
	}
	if n.kind == fullNode {
		return oct.checkLeaf(n.leaf, seenLeaves)
	}
	for _, child := range n.children {
		if child == arena.None {
			continue
		}
		if halfWidth == 1 {
			if err := oct.checkLeaf(child, seenLeaves); err != nil {
				return err
			}
			continue
		}
		if err := oct.checkNode(child, halfWidth/2, seenNodes, seenLeaves); err != nil {
			return err
		}
	}
	// The subtree below is validated at this point, so resolving values
	// cannot hit a dangling handle.
	if _, uniform := oct.uniformValue(n.children, halfWidth); uniform {
		return fmt.Errorf("%w: mixed node %d covers a uniform region", ErrInvariant, h)
	}
	return nil
}

func (oct *Octree[V]) checkLeaf(h arena.Handle, seenLeaves map[arena.Handle]bool) error {
	if seenLeaves[h] {
		return fmt.Errorf("%w: leaf %d is linked more than once", ErrInvariant, h)
	}
	seenLeaves[h] = true
	if !oct.leaves.Contains(h) {
		return fmt.Errorf("%w: dangling leaf handle %d", ErrInvariant, h)
	}
	return nil
}

// uniformValue resolves the single value covering all eight octants, if
// there is one. Vacant octants never count as uniform.
func (oct *Octree[V]) uniformValue(children [8]arena.Handle, halfWidth uint8) (V, bool) {
	var ref V
	for i, child := range children {
		if child == arena.None {
			return ref, false
		}
		var v V
		if halfWidth == 1 {
			v = oct.leafValue(child)
		} else if n := oct.node(child); n.kind == fullNode {
			v = oct.leafValue(n.leaf)
		} else {
			sub, uniform := oct.uniformValue(n.children, halfWidth/2)
			if !uniform {
				return ref, false
			}
			v = sub
		}
		if i == 0 {
			ref = v
		} else if v != ref {
			return ref, false
		}
	}
	return ref, true
}
