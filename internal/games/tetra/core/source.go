package core

import "math/rand"

// ShapeSource supplies the next shape to spawn.
type ShapeSource interface {
	Next() *Shape
}

// RandomSource picks uniformly from a fixed set of shapes.
type RandomSource struct {
	shapes []*Shape
	rng    *rand.Rand
}

// NewRandomSource creates a seeded source. Panics on an empty set.
func NewRandomSource(shapes []*Shape, seed int64) *RandomSource {
	if len(shapes) == 0 {
		panic("tetra: random source needs at least one shape")
	}
	return &RandomSource{
		shapes: shapes,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Next returns a random shape.
func (s *RandomSource) Next() *Shape {
	return s.shapes[s.rng.Intn(len(s.shapes))]
}

// SequenceSource cycles through shapes in order. Useful for scripted games.
type SequenceSource struct {
	shapes []*Shape
	pos    int
}

// NewSequenceSource creates a cycling source. Panics on an empty set.
func NewSequenceSource(shapes ...*Shape) *SequenceSource {
	if len(shapes) == 0 {
		panic("tetra: sequence source needs at least one shape")
	}
	return &SequenceSource{shapes: shapes}
}

// Next returns the next shape in the cycle.
func (s *SequenceSource) Next() *Shape {
	shape := s.shapes[s.pos%len(s.shapes)]
	s.pos++
	return shape
}
