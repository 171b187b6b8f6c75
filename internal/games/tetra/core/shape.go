package core

import "fmt"

// ColorID identifies the color of a cell. Zero is reserved for "empty".
type ColorID uint8

// ColorNone marks an empty cell.
const ColorNone ColorID = 0

// RawCell is one entry of the shape-authoring format: a position and a color.
type RawCell struct {
	Pos   Coord
	Color ColorID
}

// ColoredCell is a normalized cell offset relative to the shape anchor.
type ColoredCell struct {
	Offset Coord
	Color  ColorID
}

// Shape is the immutable description of one piece type.
// Shapes are built once by Normalize and shared by every piece spawned from them.
type Shape struct {
	name            string
	cells           []ColoredCell
	integerCentered bool
	spawnOffset     Coord
	wallKicks       []Coord
	width           int
	height          int
}

// Name returns the shape's display name.
func (s *Shape) Name() string { return s.name }

// Cells returns a copy of the normalized cells.
func (s *Shape) Cells() []ColoredCell {
	out := make([]ColoredCell, len(s.cells))
	copy(out, s.cells)
	return out
}

// Len returns the number of cells in the shape.
func (s *Shape) Len() int { return len(s.cells) }

// IntegerCentered reports whether the center of mass lies on a grid point.
func (s *Shape) IntegerCentered() bool { return s.integerCentered }

// SpawnOffset returns the offset added to the board's spawn point.
func (s *Shape) SpawnOffset() Coord { return s.spawnOffset }

// WallKicks returns a copy of the wall-kick candidates in priority order.
func (s *Shape) WallKicks() []Coord {
	out := make([]Coord, len(s.wallKicks))
	copy(out, s.wallKicks)
	return out
}

// Width returns the bounding width of the normalized cells.
func (s *Shape) Width() int { return s.width }

// Height returns the bounding height of the normalized cells.
func (s *Shape) Height() int { return s.height }

// Color returns the color of the first cell; used for previews.
func (s *Shape) Color() ColorID { return s.cells[0].Color }

// Normalize converts raw authored cells into a canonical Shape.
//
// The cell closest to the center of mass becomes the anchor at (0,0); ties go to
// the earliest cell in input order. The shape is integer-centered when both
// center-of-mass components are whole numbers.
func Normalize(name string, raw []RawCell) (*Shape, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("normalize %q: %w", name, ErrDegenerateShape)
	}

	var sumX, sumY int
	for _, c := range raw {
		sumX += c.Pos.X
		sumY += c.Pos.Y
	}

	// Distances are compared scaled by n so they stay exact integers; the
	// first cell wins ties.
	n := len(raw)
	anchor := raw[0].Pos
	best := -1
	for _, c := range raw {
		dx := n*c.Pos.X - sumX
		dy := n*c.Pos.Y - sumY
		if d := dx*dx + dy*dy; best < 0 || d < best {
			best = d
			anchor = c.Pos
		}
	}

	cells := make([]ColoredCell, len(raw))
	for i, c := range raw {
		cells[i] = ColoredCell{Offset: c.Pos.Sub(anchor), Color: c.Color}
	}

	minX, maxX := cells[0].Offset.X, cells[0].Offset.X
	minY, maxY := cells[0].Offset.Y, cells[0].Offset.Y
	for _, c := range cells[1:] {
		minX = min(minX, c.Offset.X)
		maxX = max(maxX, c.Offset.X)
		minY = min(minY, c.Offset.Y)
		maxY = max(maxY, c.Offset.Y)
	}
	width := max(maxX-minX+1, 1)
	height := max(maxY-minY+1, 1)

	return &Shape{
		name:            name,
		cells:           cells,
		integerCentered: sumX%len(raw) == 0 && sumY%len(raw) == 0,
		spawnOffset:     C(0, -maxY-1),
		wallKicks:       wallKickTable(width, height),
		width:           width,
		height:          height,
	}, nil
}

// wallKickTable builds the 16 kick candidates from half-width and half-height.
// The same list serves both rotation directions; (0,0) always comes first.
func wallKickTable(width, height int) []Coord {
	hw, hh := width/2, height/2
	return []Coord{
		C(0, 0),
		C(0, -hh),
		C(0, hh),
		C(hw, 0),
		C(-hw, 0),
		C(hw, -hh),
		C(-hw, -hh),
		C(hw, hh),
		C(-hw, hh),
		C(0, -hh-1),
		C(0, hh+1),
		C(hw+1, 0),
		C(-hw-1, 0),
		C(hw+1, -hh-1),
		C(-hw-1, hh+1),
		C(hw+1, hh+1),
	}
}
