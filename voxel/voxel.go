// Package voxel provides the coordinate type for cubic voxel volumes.
//
// Positions are unsigned three-axis coordinates with a fixed range of 0–255
// per axis, which bounds volumes to a side length of 256 voxels. Axis
// arithmetic wraps around like any unsigned arithmetic; callers keep
// positions inside their volume.
package voxel

import "fmt"

// Pos addresses a single voxel inside a cubic volume.
type Pos struct {
	X, Y, Z uint8
}

// Frequently used positions and unit steps.
var (
	Zero  = Pos{}
	UnitX = Pos{X: 1}
	UnitY = Pos{Y: 1}
	UnitZ = Pos{Z: 1}
)

// P is a shorthand constructor for a position.
func P(x, y, z uint8) Pos {
	return Pos{X: x, Y: y, Z: z}
}

// Add returns p shifted by q, axis by axis.
func (p Pos) Add(q Pos) Pos {
	return Pos{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns p shifted back by q, axis by axis.
func (p Pos) Sub(q Pos) Pos {
	return Pos{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// PlusX returns p shifted by d along the x-axis.
func (p Pos) PlusX(d uint8) Pos {
	return Pos{X: p.X + d, Y: p.Y, Z: p.Z}
}

// MinusX returns p shifted back by d along the x-axis.
func (p Pos) MinusX(d uint8) Pos {
	return Pos{X: p.X - d, Y: p.Y, Z: p.Z}
}

// PlusY returns p shifted by d along the y-axis.
func (p Pos) PlusY(d uint8) Pos {
	return Pos{X: p.X, Y: p.Y + d, Z: p.Z}
}

// MinusY returns p shifted back by d along the y-axis.
func (p Pos) MinusY(d uint8) Pos {
	return Pos{X: p.X, Y: p.Y - d, Z: p.Z}
}

// PlusZ returns p shifted by d along the z-axis.
func (p Pos) PlusZ(d uint8) Pos {
	return Pos{X: p.X, Y: p.Y, Z: p.Z + d}
}

// MinusZ returns p shifted back by d along the z-axis.
func (p Pos) MinusZ(d uint8) Pos {
	return Pos{X: p.X, Y: p.Y, Z: p.Z - d}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}
