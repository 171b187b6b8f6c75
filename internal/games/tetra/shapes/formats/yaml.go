// Package formats provides shape file format parsers.
package formats

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	platformcore "github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/core"
)

// YAMLCell is one block of a shape. Coordinates are free-form; the engine
// normalizes them around the shape's center.
type YAMLCell struct {
	X int    `yaml:"x"`
	Y int    `yaml:"y"`
	C string `yaml:"c,omitempty"` // Color name; falls back to the shape color
}

// YAMLShape is a single authored shape.
type YAMLShape struct {
	ID    string     `yaml:"id"`
	Name  string     `yaml:"name,omitempty"`
	Color string     `yaml:"color,omitempty"`
	Cells []YAMLCell `yaml:"cells"`
}

// yamlDocument accepts both a single shape and a set of shapes.
type yamlDocument struct {
	YAMLShape `yaml:",inline"`
	Shapes    []YAMLShape `yaml:"shapes,omitempty"`
}

// Shape is a parsed shape, ready for normalization.
type Shape struct {
	ID    string
	Name  string
	Cells []core.RawCell
}

// Set is a parsed shape file.
type Set struct {
	ID     string
	Name   string
	Shapes []Shape
}

// ParseYAML parses a shape file. A document with a "shapes" list is a set;
// otherwise the document itself is one shape and becomes a set of one.
func ParseYAML(data []byte) (Set, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Set{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	set := Set{ID: doc.ID, Name: doc.Name}
	if set.Name == "" {
		set.Name = set.ID
	}

	raw := doc.Shapes
	if len(raw) == 0 {
		if len(doc.Cells) == 0 {
			return Set{}, errors.New("no shapes or cells")
		}
		raw = []YAMLShape{doc.YAMLShape}
	} else if len(doc.Cells) > 0 {
		return Set{}, errors.New("document has both shapes and cells")
	}

	seen := make(map[string]bool, len(raw))
	for i, ys := range raw {
		s, err := parseShape(ys)
		if err != nil {
			return Set{}, fmt.Errorf("shape %d (%s): %w", i, ys.ID, err)
		}
		if seen[s.ID] {
			return Set{}, fmt.Errorf("duplicate shape id %q", s.ID)
		}
		seen[s.ID] = true
		set.Shapes = append(set.Shapes, s)
	}
	return set, nil
}

func parseShape(ys YAMLShape) (Shape, error) {
	if ys.ID == "" {
		return Shape{}, errors.New("missing id")
	}
	name := ys.Name
	if name == "" {
		name = ys.ID
	}

	cells := make([]core.RawCell, 0, len(ys.Cells))
	for _, yc := range ys.Cells {
		colorName := yc.C
		if colorName == "" {
			colorName = ys.Color
		}
		color, err := parseCellColor(colorName)
		if err != nil {
			return Shape{}, fmt.Errorf("cell (%d,%d): %w", yc.X, yc.Y, err)
		}
		cells = append(cells, core.RawCell{Pos: core.C(yc.X, yc.Y), Color: color})
	}

	return Shape{ID: ys.ID, Name: name, Cells: cells}, nil
}

// parseCellColor maps a color name to a cell color. The default color is
// reserved for empty cells.
func parseCellColor(name string) (core.ColorID, error) {
	if name == "" {
		return core.ColorID(platformcore.ColorWhite), nil
	}
	c, ok := platformcore.ParseColor(name)
	if !ok {
		return core.ColorNone, fmt.Errorf("unknown color %q", name)
	}
	if c == platformcore.ColorDefault {
		return core.ColorNone, fmt.Errorf("color %q cannot fill a cell", name)
	}
	return core.ColorID(c), nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
