package octree

import "errors"

var (
	// ErrInvalidConfig signals an invalid octree configuration.
	ErrInvalidConfig = errors.New("octree: invalid configuration")
	// ErrPositionOutOfBounds signals a position outside the covered volume.
	ErrPositionOutOfBounds = errors.New("octree: position out of bounds")
	// ErrUnimplemented marks API stubs that are intentionally not implemented yet.
	ErrUnimplemented = errors.New("octree: operation not implemented")
	// ErrInvariant signals a structural invariant violation found by Check.
	ErrInvariant = errors.New("octree: invariant violation")
)
