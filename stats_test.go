package octree

import (
	"testing"

	"github.com/npillmayer/octree/voxel"
)

func TestStatsTallies(t *testing.T) {
	oct := mustOctree[string](t, 2)
	insert(t, oct, voxel.P(0, 0, 0), "a")
	insert(t, oct, voxel.P(3, 3, 3), "b")
	want := Stats{
		Nodes:         3,
		Leaves:        2,
		FullNodes:     0,
		MixedNodes:    3,
		VacantOctants: 20,
		MaxDepth:      2,
	}
	if got := oct.Stats(); got != want {
		t.Fatalf("Stats()=%+v want=%+v", got, want)
	}
}

func TestStatsUniformVolume(t *testing.T) {
	oct := mustOctree[string](t, 1)
	for i := 0; i < 8; i++ {
		insert(t, oct, voxel.P(uint8(i>>2&1), uint8(i>>1&1), uint8(i&1)), "x")
	}
	want := Stats{
		Nodes:         1,
		Leaves:        1,
		FullNodes:     1,
		MixedNodes:    0,
		VacantOctants: 0,
		MaxDepth:      1,
	}
	if got := oct.Stats(); got != want {
		t.Fatalf("Stats()=%+v want=%+v", got, want)
	}
}
