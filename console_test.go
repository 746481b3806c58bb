package octree

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/octree/voxel"
)

func TestConsolePrinterPlain(t *testing.T) {
	nocolor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = nocolor }()
	oct := mustOctree[string](t, 2)
	insert(t, oct, voxel.P(0, 0, 0), "soil")
	insert(t, oct, voxel.P(3, 3, 3), "rock")
	cp := NewConsolePrinter(nil)
	cp.Width = 0
	var sb strings.Builder
	if err := cp.Fprint(&sb, oct.String()); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	if sb.String() != oct.String() {
		t.Fatalf("printed dump=%q want=%q", sb.String(), oct.String())
	}
}

func TestConsolePrinterClipsLongLines(t *testing.T) {
	cp := NewConsolePrinter(map[LineKind]*color.Color{})
	cp.Width = 10
	var sb strings.Builder
	if err := cp.Fprint(&sb, "0123456789abcdef\n"); err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	if got, want := sb.String(), "012345678…\n"; got != want {
		t.Fatalf("clipped line=%q want=%q", got, want)
	}
}

func TestClassifyDumpLines(t *testing.T) {
	cases := []struct {
		line string
		kind LineKind
	}{
		{"Node 0 (2):", NodeLine},
		{"   7: Node 4 (1):", NodeLine},
		{"   All: soil", FullLine},
		{"      3: Leaf: rock", LeafLine},
		{"   0, 1, 2: Empty", EmptyLine},
	}
	for _, c := range cases {
		if got := classify(c.line); got != c.kind {
			t.Fatalf("classify(%q)=%d want=%d", c.line, got, c.kind)
		}
	}
}
