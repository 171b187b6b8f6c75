package core

import "fmt"

// PieceState is the lifecycle state of the falling piece.
type PieceState int

const (
	Falling PieceState = iota
	Locking
	Locked
)

// String returns a human-readable name for the state.
func (s PieceState) String() string {
	switch s {
	case Falling:
		return "falling"
	case Locking:
		return "locking"
	case Locked:
		return "locked"
	default:
		return "unknown"
	}
}

// Piece is the currently falling piece.
//
// While falling, the piece's footprint is written into the grid so a render
// sink sees it; validity checks treat that footprint as free. Every committed
// move clears the old footprint and sets the new one before returning.
type Piece struct {
	shape    *Shape
	grid     *Grid
	anchor   Coord
	cells    []Coord
	rotation int
	state    PieceState
}

// PlacePiece spawns a piece of shape at anchor and writes it into the grid.
// Returns false, leaving the grid untouched, if the footprint is blocked.
func PlacePiece(shape *Shape, grid *Grid, anchor Coord) (*Piece, bool) {
	p := newPiece(shape, grid, anchor)
	if !p.place() {
		return nil, false
	}
	return p, true
}

// newPiece builds a piece at anchor without touching the grid.
func newPiece(shape *Shape, grid *Grid, anchor Coord) *Piece {
	cells := make([]Coord, shape.Len())
	for i, c := range shape.cells {
		cells[i] = c.Offset
	}
	return &Piece{
		shape:  shape,
		grid:   grid,
		anchor: anchor,
		cells:  cells,
		state:  Falling,
	}
}

// Shape returns the shape the piece was spawned from.
func (p *Piece) Shape() *Shape { return p.shape }

// Anchor returns the piece's logical origin on the grid.
func (p *Piece) Anchor() Coord { return p.anchor }

// Rotation returns the rotation index in [0, 4).
func (p *Piece) Rotation() int { return p.rotation }

// State returns the lifecycle state.
func (p *Piece) State() PieceState { return p.state }

// Cells returns a copy of the current rotated offsets.
func (p *Piece) Cells() []Coord {
	out := make([]Coord, len(p.cells))
	copy(out, p.cells)
	return out
}

// Footprint returns the absolute grid cells the piece covers.
func (p *Piece) Footprint() []Coord {
	return footprint(p.anchor, p.cells)
}

// Color returns the color of cell i.
func (p *Piece) Color(i int) ColorID {
	return p.shape.cells[i].Color
}

func footprint(anchor Coord, cells []Coord) []Coord {
	out := make([]Coord, len(cells))
	for i, c := range cells {
		out[i] = anchor.Add(c)
	}
	return out
}

// fits reports whether cells at anchor are valid, ignoring the piece's own footprint.
func (p *Piece) fits(anchor Coord, cells []Coord) bool {
	return p.grid.Fits(anchor, cells, p.Footprint())
}

// place writes the footprint into the grid for the first time.
// Returns false without writing anything if the spawn position is blocked.
func (p *Piece) place() bool {
	if !p.grid.Fits(p.anchor, p.cells, nil) {
		return false
	}
	for i, c := range p.Footprint() {
		p.mustSet(c, p.Color(i))
	}
	return true
}

// commit moves the footprint to a new anchor and rotation atomically.
func (p *Piece) commit(anchor Coord, cells []Coord) {
	for _, c := range p.Footprint() {
		p.grid.ClearCell(c)
	}
	p.anchor = anchor
	p.cells = cells
	for i, c := range p.Footprint() {
		p.mustSet(c, p.Color(i))
	}
}

// mustSet writes a validated cell. Failure means the validity protocol was
// broken, which is not recoverable.
func (p *Piece) mustSet(c Coord, color ColorID) {
	if err := p.grid.SetCell(c, color); err != nil {
		panic(fmt.Errorf("tetra: writing validated piece %q: %w", p.shape.name, err))
	}
}

// TryMove translates the piece by delta if the destination is valid.
func (p *Piece) TryMove(delta Coord) bool {
	if p.state == Locked {
		return false
	}
	target := p.anchor.Add(delta)
	if !p.fits(target, p.cells) {
		return false
	}
	p.commit(target, p.cells)
	return true
}

// Rotate turns the piece a quarter in direction dir (+1 clockwise, -1
// counter-clockwise), trying the shape's wall kicks in order. Returns the
// index of the accepted kick, or -1 if the rotation was rejected and the
// piece left unchanged.
func (p *Piece) Rotate(dir int) int {
	if p.state == Locked || (dir != Clockwise && dir != CounterClockwise) {
		return -1
	}
	rotated := rotateOffsets(p.cells, dir, p.shape.integerCentered)
	for i, kick := range p.shape.wallKicks {
		target := p.anchor.Add(kick)
		if !p.fits(target, rotated) {
			continue
		}
		p.commit(target, rotated)
		p.rotation = ((p.rotation+dir)%4 + 4) % 4
		return i
	}
	return -1
}

// DropDistance returns how many rows the piece can fall before landing.
func (p *Piece) DropDistance() int {
	dist := 0
	for p.fits(p.anchor.Add(C(0, -(dist+1))), p.cells) {
		dist++
	}
	return dist
}

// CanFall reports whether the piece can move down one row.
func (p *Piece) CanFall() bool {
	return p.fits(p.anchor.Add(Down), p.cells)
}
