package core

import "fmt"

// Bounds is the half-open rectangle of valid grid coordinates:
// x in [XMin, XMax), y in [YMin, YMax).
type Bounds struct {
	XMin, XMax int
	YMin, YMax int
}

// Contains returns true if c lies inside the bounds.
func (b Bounds) Contains(c Coord) bool {
	return c.X >= b.XMin && c.X < b.XMax && c.Y >= b.YMin && c.Y < b.YMax
}

// Grid is the board's occupancy store.
// Coordinates are centered on the board; cells live in a flat arena indexed by
// (x-XMin) + (y-YMin)*W. A zero ColorID means the cell is empty.
type Grid struct {
	W      int
	H      int
	bounds Bounds
	cells  []ColorID
	sink   RenderSink
}

// BoundsFor returns the centered coordinate range of a w x h board.
func BoundsFor(w, h int) Bounds {
	xMin := -w / 2
	yMin := -h / 2
	return Bounds{
		XMin: xMin,
		XMax: xMin + w,
		YMin: yMin,
		YMax: yMin + h,
	}
}

// NewGrid creates an empty grid of the given size.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:      w,
		H:      h,
		bounds: BoundsFor(w, h),
		cells:  make([]ColorID, w*h),
		sink:   NopRenderSink{},
	}
}

// SetSink subscribes a render sink. Nil restores the no-op sink.
func (g *Grid) SetSink(s RenderSink) {
	if s == nil {
		s = NopRenderSink{}
	}
	g.sink = s
}

// Bounds returns the valid coordinate range.
func (g *Grid) Bounds() Bounds {
	return g.bounds
}

// index converts a coordinate to an arena index.
func (g *Grid) index(c Coord) int {
	return (c.X - g.bounds.XMin) + (c.Y-g.bounds.YMin)*g.W
}

// InBounds returns true if the coordinate is on the board.
func (g *Grid) InBounds(c Coord) bool {
	return g.bounds.Contains(c)
}

// IsOccupied returns false for empty or out-of-bounds cells.
func (g *Grid) IsOccupied(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.cells[g.index(c)] != ColorNone
}

// At returns the color at c, or ColorNone for empty and out-of-bounds cells.
func (g *Grid) At(c Coord) ColorID {
	if !g.InBounds(c) {
		return ColorNone
	}
	return g.cells[g.index(c)]
}

// SetCell occupies an empty cell.
func (g *Grid) SetCell(c Coord, color ColorID) error {
	if !g.InBounds(c) {
		return fmt.Errorf("set %v: %w", c, ErrOutOfBounds)
	}
	i := g.index(c)
	if g.cells[i] != ColorNone {
		return fmt.Errorf("set %v: %w", c, ErrAlreadyOccupied)
	}
	g.cells[i] = color
	g.sink.OnCellSet(c, color)
	return nil
}

// ClearCell empties a cell. Returns true if something was cleared.
func (g *Grid) ClearCell(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	i := g.index(c)
	if g.cells[i] == ColorNone {
		return false
	}
	g.cells[i] = ColorNone
	g.sink.OnCellCleared(c)
	return true
}

// ReplaceCell overwrites a cell regardless of its prior occupancy.
// Out-of-bounds writes are ignored.
func (g *Grid) ReplaceCell(c Coord, color ColorID) {
	if !g.InBounds(c) {
		return
	}
	if color == ColorNone {
		g.ClearCell(c)
		return
	}
	g.cells[g.index(c)] = color
	g.sink.OnCellSet(c, color)
}

// IsRowFull returns true iff every column of the row is occupied.
func (g *Grid) IsRowFull(row int) bool {
	if row < g.bounds.YMin || row >= g.bounds.YMax {
		return false
	}
	for x := g.bounds.XMin; x < g.bounds.XMax; x++ {
		if !g.IsOccupied(C(x, row)) {
			return false
		}
	}
	return true
}

// FullRows returns the full rows scanned from the top down.
func (g *Grid) FullRows() []int {
	var rows []int
	for y := g.bounds.YMax - 1; y >= g.bounds.YMin; y-- {
		if g.IsRowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearFullRows clears every full row and cascades the rows above it down.
// Cells listed in exclude (the falling piece's footprint) are neither moved
// nor overwritten; blocks above them still fall by one row. Returns the
// number of rows cleared.
func (g *Grid) ClearFullRows(exclude []Coord) int {
	rows := g.FullRows()
	if len(rows) == 0 {
		return 0
	}

	skip := make(map[Coord]struct{}, len(exclude))
	for _, c := range exclude {
		skip[c] = struct{}{}
	}

	for _, row := range rows {
		for x := g.bounds.XMin; x < g.bounds.XMax; x++ {
			c := C(x, row)
			if _, ok := skip[c]; ok {
				continue
			}
			g.ClearCell(c)
		}
	}

	// rows is top-down; walk it bottom-up. Each removal shifts everything above
	// it by one, so later (higher) indices are adjusted by the removals so far.
	for i := len(rows) - 1; i >= 0; i-- {
		removed := len(rows) - 1 - i
		g.collapse(rows[i]-removed, skip)
	}

	return len(rows)
}

// collapse shifts every row above r down by one. The top row is refilled
// from outside the board, i.e. emptied. Cells in skip are neither read nor
// written; a block above one drops into the next free cell beneath it.
func (g *Grid) collapse(r int, skip map[Coord]struct{}) {
	for x := g.bounds.XMin; x < g.bounds.XMax; x++ {
		var dst Coord
		pending := false
		for row := r; row < g.bounds.YMax; row++ {
			src := C(x, row)
			if _, ok := skip[src]; ok {
				continue
			}
			if pending {
				g.ReplaceCell(dst, g.At(src))
			}
			dst = src
			pending = true
		}
		if pending {
			g.ClearCell(dst)
		}
	}
}

// ClearAll empties every cell.
func (g *Grid) ClearAll() {
	for i := range g.cells {
		g.cells[i] = ColorNone
	}
	g.sink.OnBoardCleared()
}

// OccupiedCount returns the number of occupied cells.
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, c := range g.cells {
		if c != ColorNone {
			count++
		}
	}
	return count
}

// IsEmpty returns true if no cell is occupied.
func (g *Grid) IsEmpty() bool {
	return g.OccupiedCount() == 0
}

// Fits reports whether every cell placed at anchor is in bounds and free.
// Cells in ignore are treated as free.
func (g *Grid) Fits(anchor Coord, cells []Coord, ignore []Coord) bool {
	for _, off := range cells {
		c := anchor.Add(off)
		if !g.InBounds(c) {
			return false
		}
		if g.IsOccupied(c) && !containsCoord(ignore, c) {
			return false
		}
	}
	return true
}

// String renders the grid top row first; '.' is empty, '#' occupied.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.W+1)*g.H)
	for y := g.bounds.YMax - 1; y >= g.bounds.YMin; y-- {
		for x := g.bounds.XMin; x < g.bounds.XMax; x++ {
			if g.IsOccupied(C(x, y)) {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		if y > g.bounds.YMin {
			buf = append(buf, '\n')
		}
	}
	return string(buf)
}

func containsCoord(list []Coord, c Coord) bool {
	for _, x := range list {
		if x == c {
			return true
		}
	}
	return false
}
