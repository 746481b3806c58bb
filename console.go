package octree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// LineKind classifies the lines of a textual octree dump.
type LineKind int

// Line classes of a dump, used as palette keys.
const (
	NodeLine  LineKind = iota // node headers
	FullLine                  // "All:" lines of full nodes
	LeafLine                  // leaf value lines
	EmptyLine                 // combined vacant-octant lines
)

// ConsolePrinter renders textual octree dumps to a console, colorizing
// lines by their class and clipping them to the terminal width.
type ConsolePrinter struct {
	Width  int // maximum line width in characters; 0 disables clipping
	colors map[LineKind]*color.Color
}

// NewConsolePrinter creates a printer for console output.
//
// colors is a map from line classes to colors, used for display. It may
// contain just a subset of the classes; pass nil for a default palette. The
// line width is initialized from the current terminal's properties (if
// stdout is interactive).
func NewConsolePrinter(colors map[LineKind]*color.Color) *ConsolePrinter {
	cp := &ConsolePrinter{Width: widthFromTerminal()}
	if colors == nil {
		cp.colors = makeDefaultPalette()
	} else {
		cp.colors = colors
	}
	return cp
}

func makeDefaultPalette() map[LineKind]*color.Color {
	palette := map[LineKind]*color.Color{
		NodeLine:  color.New(color.FgCyan),
		FullLine:  color.New(color.FgGreen, color.Bold),
		LeafLine:  color.New(color.FgGreen),
		EmptyLine: color.New(color.FgHiBlack),
	}
	return palette
}

// Print outputs a dump to stdout.
func (cp *ConsolePrinter) Print(dump string) error {
	return cp.Fprint(os.Stdout, dump)
}

// Fprint outputs a dump to w, line by line. Lines without a palette entry
// for their class pass through uncolored.
func (cp *ConsolePrinter) Fprint(w io.Writer, dump string) error {
	for _, line := range strings.Split(strings.TrimRight(dump, "\n"), "\n") {
		line = cp.clip(line)
		if c, ok := cp.colors[classify(line)]; ok {
			if _, err := c.Fprintln(w, line); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// classify derives the line class from the dump line format.
func classify(line string) LineKind {
	s := strings.TrimLeft(line, " ")
	switch {
	case strings.HasSuffix(s, ": Empty"):
		return EmptyLine
	case strings.HasPrefix(s, "All: "):
		return FullLine
	case strings.Contains(s, ": Leaf: "):
		return LeafLine
	}
	return NodeLine
}

func (cp *ConsolePrinter) clip(line string) string {
	if cp.Width <= 0 {
		return line
	}
	runes := []rune(line)
	if len(runes) <= cp.Width {
		return line
	}
	return string(runes[:cp.Width-1]) + "…"
}

// widthFromTerminal checks whether stdout is a terminal, and if so reads the
// terminal's width for line clipping.
func widthFromTerminal() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 0
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w < 10 {
		return 65
	}
	tracer().P("format", "console").Infof("clipping dump lines to %d columns", w)
	return w
}
