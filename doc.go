/*
Package octree implements a compact sparse voxel octree.

Octrees

An octree organizes a cubic volume of voxels by splitting it into eight
octants per level, down to single voxels. This package stores one value per
unit voxel and keeps the representation compact: a region whose voxels all
carry the same value collapses into a single node, and a node covering a
uniform region splits apart again as soon as one of its voxels receives a
differing value.

From Wikipedia:
An octree is a tree data structure in which each internal node has exactly
eight children. Octrees are most often used to partition a three-dimensional
space by recursively subdividing it into eight octants. […] Octrees are the
three-dimensional analog of quadtrees.

Sparse voxel volumes profit twice from this organization: vacant space costs
nothing but a null link, and filled space is billed per homogeneous region
instead of per voxel. An 8×8×8 region of 512 equal values is a single node
here.

Nodes and values live in index-addressed arenas rather than behind pointers.
Links between nodes are small integer handles, replacing a node is an
in-place slot update, and freed slots get recycled by later growth. The
volume's coordinates are unsigned three-axis positions with axes of at most
256 voxels, provided by the voxel subpackage.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package octree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'octree'
func tracer() tracing.Trace {
	return tracing.Select("octree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
