package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	platformcore "github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/shapes"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "Inspect shape sets",
	Long: `Work with the shape sets pieces are drawn from.

A shape file is YAML: either one shape (id, name, cells) or a set
with a "shapes" list. Each cell has x, y and an optional color c.

  id: bar3
  cells:
    - {x: 0, y: 0, c: red}
    - {x: 1, y: 0, c: red}
    - {x: 2, y: 0, c: red}`,
}

var shapesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in shape sets",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		for _, id := range shapes.BuiltinIDs() {
			set, err := shapes.Builtin(id)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("  %-8s %s: %s\n", set.ID, set.Name, strings.Join(set.Names(), " "))
		}
	},
}

var shapesInspectCmd = &cobra.Command{
	Use:   "inspect <set|file>",
	Short: "Show how a shape set normalizes",
	Long: `Normalize every shape in a built-in set or YAML file and print its
cells, centering class, spawn offset and wall-kick table.

Examples:
  tetra shapes inspect classic
  tetra shapes inspect ./my-shapes.yaml`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		set, err := shapes.Resolve(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		describeSet(os.Stdout, set)
	},
}

func init() {
	shapesCmd.AddCommand(shapesListCmd)
	shapesCmd.AddCommand(shapesInspectCmd)
}

// describeSet prints the normalized form of every shape in set.
func describeSet(w io.Writer, set *shapes.Set) {
	fmt.Fprintf(w, "Set %s (%s), %d shapes\n", set.ID, set.Name, len(set.Shapes))
	for _, s := range set.Shapes {
		fmt.Fprintln(w)
		describeShape(w, s)
	}
}

func describeShape(w io.Writer, s *core.Shape) {
	centering := "half-integer"
	if s.IntegerCentered() {
		centering = "integer"
	}
	fmt.Fprintf(w, "%s  %dx%d  %s-centered  spawn offset %s\n",
		s.Name(), s.Width(), s.Height(), centering, s.SpawnOffset())

	for _, line := range shapeDiagram(s) {
		fmt.Fprintf(w, "    %s\n", line)
	}

	cells := make([]string, 0, s.Len())
	for _, c := range s.Cells() {
		cells = append(cells, fmt.Sprintf("%s %s", c.Offset, platformcore.Color(c.Color)))
	}
	fmt.Fprintf(w, "  cells: %s\n", strings.Join(cells, ", "))

	kicks := make([]string, 0, len(s.WallKicks()))
	for _, k := range s.WallKicks() {
		kicks = append(kicks, k.String())
	}
	fmt.Fprintf(w, "  kicks: %s\n", strings.Join(kicks, " "))
}

// shapeDiagram draws the shape top row first, with 'o' marking the anchor
// when it is not covered by a cell.
func shapeDiagram(s *core.Shape) []string {
	cells := s.Cells()
	minX, maxX := 0, 0
	minY, maxY := 0, 0
	for _, c := range cells {
		minX, maxX = min(minX, c.Offset.X), max(maxX, c.Offset.X)
		minY, maxY = min(minY, c.Offset.Y), max(maxY, c.Offset.Y)
	}

	filled := make(map[core.Coord]bool, len(cells))
	for _, c := range cells {
		filled[c.Offset] = true
	}

	lines := make([]string, 0, maxY-minY+1)
	for y := maxY; y >= minY; y-- {
		var b strings.Builder
		for x := minX; x <= maxX; x++ {
			switch {
			case filled[core.C(x, y)]:
				b.WriteByte('#')
			case x == 0 && y == 0:
				b.WriteByte('o')
			default:
				b.WriteByte('.')
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}
