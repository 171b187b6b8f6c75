package core

import "fmt"

// Coord represents a 2D integer coordinate.
// Used both for absolute grid cells and for piece-relative offsets.
// X increases to the right, Y increases upward (row yMax-1 is the top row).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Common translations.
var (
	Down  = C(0, -1)
	Left  = C(-1, 0)
	Right = C(1, 0)
)

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Sub returns c minus other.
func (c Coord) Sub(other Coord) Coord {
	return Coord{X: c.X - other.X, Y: c.Y - other.Y}
}
