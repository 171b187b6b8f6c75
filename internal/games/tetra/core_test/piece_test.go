package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetra/internal/games/tetra/core"
)

func place(t *testing.T, s *core.Shape, g *core.Grid, anchor core.Coord) *core.Piece {
	t.Helper()
	p, ok := core.PlacePiece(s, g, anchor)
	require.True(t, ok, "placing %s at %v", s.Name(), anchor)
	return p
}

func TestPlacePieceWritesFootprint(t *testing.T) {
	g := core.NewGrid(10, 20)
	p := place(t, tShape(t), g, core.C(0, 0))

	assert.Equal(t, core.Falling, p.State())
	assert.Equal(t, 4, g.OccupiedCount())
	for _, c := range p.Footprint() {
		assert.True(t, g.IsOccupied(c), "cell %v", c)
	}
}

func TestPlacePieceBlocked(t *testing.T) {
	g := core.NewGrid(10, 20)
	require.NoError(t, g.SetCell(core.C(1, 0), 2))

	p, ok := core.PlacePiece(tShape(t), g, core.C(0, 0))
	assert.False(t, ok)
	assert.Nil(t, p)
	assert.Equal(t, 1, g.OccupiedCount(), "blocked placement writes nothing")

	_, ok = core.PlacePiece(tShape(t), g, core.C(4, 0))
	assert.False(t, ok, "x=5 is out of bounds")
}

func TestTryMove(t *testing.T) {
	g := core.NewGrid(10, 20)
	p := place(t, iShape(t), g, core.C(0, 0))

	require.True(t, p.TryMove(core.Left))
	assert.Equal(t, core.C(-1, 0), p.Anchor())
	assert.ElementsMatch(t,
		[]core.Coord{core.C(-2, 0), core.C(-1, 0), core.C(0, 0), core.C(1, 0)},
		p.Footprint())
	assert.Equal(t, 4, g.OccupiedCount())
	assert.False(t, g.IsOccupied(core.C(2, 0)), "old footprint is cleared")

	// Walk into the left wall.
	for p.TryMove(core.Left) {
	}
	assert.Equal(t, core.C(-4, 0), p.Anchor())
	assert.False(t, p.TryMove(core.Left))
	assert.Equal(t, core.C(-4, 0), p.Anchor())
}

func TestTryMoveBlockedByOccupiedCell(t *testing.T) {
	g := core.NewGrid(10, 20)
	require.NoError(t, g.SetCell(core.C(0, -2), 3))
	p := place(t, monoShape(t), g, core.C(0, 0))

	assert.True(t, p.TryMove(core.Down))
	assert.False(t, p.TryMove(core.Down))
	assert.Equal(t, core.C(0, -1), p.Anchor())
	assert.Equal(t, core.ColorID(3), g.At(core.C(0, -2)))
}

func TestRotateIPieceClockwise(t *testing.T) {
	g := core.NewGrid(10, 20)
	p := place(t, iShape(t), g, core.C(0, 0))

	kick := p.Rotate(core.Clockwise)
	require.Equal(t, 0, kick)
	assert.Equal(t, core.C(0, 0), p.Anchor(), "no translation on an open board")
	assert.Equal(t, 1, p.Rotation())
	assert.Equal(t,
		[]core.Coord{core.C(0, 2), core.C(0, 1), core.C(0, 0), core.C(0, -1)},
		p.Cells())
	assert.Equal(t, 4, g.OccupiedCount())
	assert.False(t, g.IsOccupied(core.C(-1, 0)))
}

func TestRotateRoundTrip(t *testing.T) {
	shapes := []*core.Shape{iShape(t), tShape(t), barShape(t), slabShape(t)}
	for _, s := range shapes {
		t.Run(s.Name(), func(t *testing.T) {
			g := core.NewGrid(10, 20)
			p := place(t, s, g, core.C(0, 0))
			before := p.Cells()

			require.Equal(t, 0, p.Rotate(core.Clockwise))
			require.Equal(t, 0, p.Rotate(core.CounterClockwise))
			assert.Equal(t, before, p.Cells())
			assert.Equal(t, core.C(0, 0), p.Anchor())
			assert.Equal(t, 0, p.Rotation())
		})
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	g := core.NewGrid(10, 20)
	p := place(t, tShape(t), g, core.C(0, 0))
	before := p.Cells()

	for i := 0; i < 4; i++ {
		require.Equal(t, 0, p.Rotate(core.Clockwise))
	}
	assert.ElementsMatch(t, before, p.Cells())
	assert.Equal(t, 0, p.Rotation())
}

func TestRotateCounterClockwiseRotationIndex(t *testing.T) {
	g := core.NewGrid(10, 20)
	p := place(t, iShape(t), g, core.C(0, 0))

	require.Equal(t, 0, p.Rotate(core.CounterClockwise))
	assert.Equal(t, 3, p.Rotation())
}

func TestRotateUsesWallKick(t *testing.T) {
	g := core.NewGrid(10, 20)
	p := place(t, tShape(t), g, core.C(0, 0))
	// Blocks kicks 0, 1 and 2; kick 3 shifts right by one.
	require.NoError(t, g.SetCell(core.C(0, 2), 5))
	require.NoError(t, g.SetCell(core.C(0, -1), 5))

	kick := p.Rotate(core.Clockwise)
	require.Equal(t, 3, kick)
	assert.Equal(t, core.C(1, 0), p.Anchor())
	assert.Equal(t, 1, p.Rotation())
	assert.Equal(t,
		[]core.Coord{core.C(0, 2), core.C(0, 1), core.C(0, 0), core.C(1, 1)},
		p.Cells())
	assert.ElementsMatch(t,
		[]core.Coord{core.C(1, 2), core.C(1, 1), core.C(1, 0), core.C(2, 1)},
		p.Footprint())
	assert.Equal(t, 6, g.OccupiedCount())
}

func TestRotateRejectedLeavesPieceUnchanged(t *testing.T) {
	g := core.NewGrid(10, 20)
	p := place(t, tShape(t), g, core.C(0, 0))
	own := p.Footprint()

	b := g.Bounds()
	for y := b.YMin; y < b.YMax; y++ {
		for x := b.XMin; x < b.XMax; x++ {
			c := core.C(x, y)
			if !g.IsOccupied(c) {
				require.NoError(t, g.SetCell(c, 8))
			}
		}
	}
	cells := p.Cells()

	assert.Equal(t, -1, p.Rotate(core.Clockwise))
	assert.Equal(t, -1, p.Rotate(core.CounterClockwise))
	assert.Equal(t, core.C(0, 0), p.Anchor())
	assert.Equal(t, cells, p.Cells())
	assert.Equal(t, 0, p.Rotation())
	for _, c := range own {
		assert.Equal(t, core.ColorID(1), g.At(c))
	}
}

func TestRotateInvalidDirection(t *testing.T) {
	g := core.NewGrid(10, 20)
	p := place(t, tShape(t), g, core.C(0, 0))
	assert.Equal(t, -1, p.Rotate(2))
	assert.Equal(t, 0, p.Rotation())
}

func TestRotateMonoIsStable(t *testing.T) {
	g := core.NewGrid(10, 20)
	p := place(t, monoShape(t), g, core.C(3, 3))
	require.Equal(t, 0, p.Rotate(core.Clockwise))
	assert.Equal(t, []core.Coord{core.C(3, 3)}, p.Footprint())
}

func TestDropDistance(t *testing.T) {
	g := core.NewGrid(10, 20)
	p := place(t, iShape(t), g, core.C(0, 5))
	assert.Equal(t, 15, p.DropDistance())
	assert.True(t, p.CanFall())

	require.NoError(t, g.SetCell(core.C(2, 0), 4))
	assert.Equal(t, 4, p.DropDistance())

	for i := 0; i < 4; i++ {
		require.True(t, p.TryMove(core.Down))
	}
	assert.Equal(t, 0, p.DropDistance())
	assert.False(t, p.CanFall())
}
