package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetra/internal/games/tetra/core"
)

// shape normalizes raw coordinates with a single color.
func shape(t *testing.T, name string, coords ...core.Coord) *core.Shape {
	t.Helper()
	raw := make([]core.RawCell, len(coords))
	for i, c := range coords {
		raw[i] = core.RawCell{Pos: c, Color: 1}
	}
	s, err := core.Normalize(name, raw)
	require.NoError(t, err)
	return s
}

func iShape(t *testing.T) *core.Shape {
	return shape(t, "I", core.C(0, 0), core.C(1, 0), core.C(2, 0), core.C(3, 0))
}

func tShape(t *testing.T) *core.Shape {
	return shape(t, "T", core.C(0, 0), core.C(1, 0), core.C(2, 0), core.C(1, 1))
}

func barShape(t *testing.T) *core.Shape {
	return shape(t, "bar", core.C(0, 0), core.C(1, 0), core.C(2, 0))
}

func monoShape(t *testing.T) *core.Shape {
	return shape(t, "mono", core.C(0, 0))
}

// slabShape is a 4x2 block.
func slabShape(t *testing.T) *core.Shape {
	return shape(t, "slab",
		core.C(0, 0), core.C(1, 0), core.C(2, 0), core.C(3, 0),
		core.C(0, 1), core.C(1, 1), core.C(2, 1), core.C(3, 1),
	)
}

// fillRow occupies every column of row except the listed ones.
func fillRow(t *testing.T, g *core.Grid, row int, except ...int) {
	t.Helper()
	b := g.Bounds()
	for x := b.XMin; x < b.XMax; x++ {
		skip := false
		for _, e := range except {
			if e == x {
				skip = true
				break
			}
		}
		c := core.C(x, row)
		if skip || g.IsOccupied(c) {
			continue
		}
		require.NoError(t, g.SetCell(c, 9))
	}
}

// recorder mirrors the grid purely from render sink events.
type recorder struct {
	cells   map[core.Coord]core.ColorID
	sets    int
	clears  int
	wipes   int
	scores  []int
	final   int
	endings int
}

func newRecorder() *recorder {
	return &recorder{cells: make(map[core.Coord]core.ColorID)}
}

func (r *recorder) OnCellSet(pos core.Coord, color core.ColorID) {
	r.cells[pos] = color
	r.sets++
}

func (r *recorder) OnCellCleared(pos core.Coord) {
	delete(r.cells, pos)
	r.clears++
}

func (r *recorder) OnBoardCleared() {
	r.cells = make(map[core.Coord]core.ColorID)
	r.wipes++
}

func (r *recorder) OnScoreChanged(total int) {
	r.scores = append(r.scores, total)
}

func (r *recorder) OnGameOver(finalScore int) {
	r.final = finalScore
	r.endings++
}

// assertMirrors checks that the recorder's view equals the grid.
func assertMirrors(t *testing.T, r *recorder, g *core.Grid) {
	t.Helper()
	b := g.Bounds()
	count := 0
	for y := b.YMin; y < b.YMax; y++ {
		for x := b.XMin; x < b.XMax; x++ {
			c := core.C(x, y)
			if g.IsOccupied(c) {
				count++
				require.Equal(t, g.At(c), r.cells[c], "cell %v", c)
			}
		}
	}
	require.Len(t, r.cells, count)
}
