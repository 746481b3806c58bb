package octree

import (
	"strings"
	"testing"

	"github.com/npillmayer/octree/voxel"
)

func TestDumpEmptyOctree(t *testing.T) {
	oct := mustOctree[string](t, 2)
	want := "Node 0 (2):\n   0, 1, 2, 3, 4, 5, 6, 7: Empty\n"
	if got := oct.String(); got != want {
		t.Fatalf("dump=%q want=%q", got, want)
	}
}

func TestDumpNestedBlocks(t *testing.T) {
	oct := mustOctree[string](t, 2)
	insert(t, oct, voxel.P(0, 0, 0), "a")
	insert(t, oct, voxel.P(3, 3, 3), "b")
	want := strings.Join([]string{
		"Node 0 (2):",
		"   0: Node 1 (1):",
		"      0: Leaf: a",
		"      1, 2, 3, 4, 5, 6, 7: Empty",
		"   7: Node 2 (1):",
		"      7: Leaf: b",
		"      0, 1, 2, 3, 4, 5, 6: Empty",
		"   1, 2, 3, 4, 5, 6: Empty",
	}, "\n") + "\n"
	if got := oct.String(); got != want {
		t.Fatalf("dump=%q want=%q", got, want)
	}
}

func TestDumpFullNode(t *testing.T) {
	oct := mustOctree[string](t, 1)
	for i := 0; i < 8; i++ {
		insert(t, oct, voxel.P(uint8(i>>2&1), uint8(i>>1&1), uint8(i&1)), "x")
	}
	want := "Node 0 (1):\n   All: x\n"
	if got := oct.String(); got != want {
		t.Fatalf("dump=%q want=%q", got, want)
	}
}

func TestDumpIsStable(t *testing.T) {
	oct := mustOctree[int](t, 4)
	insert(t, oct, voxel.P(7, 0, 3), 1)
	insert(t, oct, voxel.P(0, 5, 5), 2)
	first := oct.String()
	for i := 0; i < 5; i++ {
		if got := oct.String(); got != first {
			t.Fatalf("dump changed between renderings:\n%s\nvs\n%s", first, got)
		}
	}
}

func TestOctree2Dot(t *testing.T) {
	oct := mustOctree[string](t, 2)
	insert(t, oct, voxel.P(0, 0, 0), "a")
	var sb strings.Builder
	Octree2Dot(oct, &sb)
	dot := sb.String()
	if !strings.HasPrefix(dot, "strict digraph {\n") {
		t.Fatalf("missing digraph header:\n%s", dot)
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Fatalf("missing closing brace:\n%s", dot)
	}
	for _, want := range []string{
		`"n0" -> "n1" [label="0"];`,
		`"n1" -> "l0" [label="0"];`,
		`"l0" [label="a"`,
		"shape=box",
		"shape=circle",
	} {
		if !strings.Contains(dot, want) {
			t.Fatalf("missing %q in DOT output:\n%s", want, dot)
		}
	}
}

func TestOctree2DotFullNode(t *testing.T) {
	oct := mustOctree[string](t, 1)
	for i := 0; i < 8; i++ {
		insert(t, oct, voxel.P(uint8(i>>2&1), uint8(i>>1&1), uint8(i&1)), "x")
	}
	var sb strings.Builder
	Octree2Dot(oct, &sb)
	if !strings.Contains(sb.String(), `[label="all"];`) {
		t.Fatalf("full node edge missing in DOT output:\n%s", sb.String())
	}
}
