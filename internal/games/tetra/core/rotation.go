package core

import "math"

// rotationMatrix is the 90° rotation [cos, sin, -sin, cos] with exact entries.
var rotationMatrix = [4]float64{0, 1, -1, 0}

// Rotation directions.
const (
	Clockwise        = 1
	CounterClockwise = -1
)

// rotateOffsets applies one quarter turn in direction dir to every offset.
//
// Integer-centered shapes rotate about the anchor and round to nearest.
// Half-integer-centered shapes pivot around (0.5, 0.5): the offset is shifted
// by (-0.5,-0.5) before the matrix is applied and the result is rounded up.
func rotateOffsets(cells []Coord, dir int, integerCentered bool) []Coord {
	m := rotationMatrix
	d := float64(dir)
	out := make([]Coord, len(cells))
	for i, c := range cells {
		x, y := float64(c.X), float64(c.Y)
		if integerCentered {
			out[i] = C(
				int(math.Round(x*m[0]*d+y*m[1]*d)),
				int(math.Round(x*m[2]*d+y*m[3]*d)),
			)
			continue
		}
		x -= 0.5
		y -= 0.5
		out[i] = C(
			int(math.Ceil(x*m[0]*d+y*m[1]*d)),
			int(math.Ceil(x*m[2]*d+y*m[3]*d)),
		)
	}
	return out
}
