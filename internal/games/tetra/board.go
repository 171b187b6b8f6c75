package tetra

import "github.com/vovakirdan/tui-tetra/internal/games/tetra/core"

// BoardView is the renderer's copy of the playfield, kept current purely
// from render sink events.
type BoardView struct {
	bounds core.Bounds
	width  int
	cells  []core.ColorID
	events int
}

// NewBoardView creates an empty view covering bounds.
func NewBoardView(b core.Bounds) *BoardView {
	w := b.XMax - b.XMin
	h := b.YMax - b.YMin
	return &BoardView{
		bounds: b,
		width:  w,
		cells:  make([]core.ColorID, w*h),
	}
}

func (v *BoardView) index(c core.Coord) (int, bool) {
	if !v.bounds.Contains(c) {
		return 0, false
	}
	return (c.X - v.bounds.XMin) + (c.Y-v.bounds.YMin)*v.width, true
}

// OnCellSet implements core.RenderSink.
func (v *BoardView) OnCellSet(pos core.Coord, color core.ColorID) {
	if i, ok := v.index(pos); ok {
		v.cells[i] = color
	}
	v.events++
}

// OnCellCleared implements core.RenderSink.
func (v *BoardView) OnCellCleared(pos core.Coord) {
	if i, ok := v.index(pos); ok {
		v.cells[i] = core.ColorNone
	}
	v.events++
}

// OnBoardCleared implements core.RenderSink.
func (v *BoardView) OnBoardCleared() {
	clear(v.cells)
	v.events++
}

// At returns the mirrored color at c.
func (v *BoardView) At(c core.Coord) core.ColorID {
	if i, ok := v.index(c); ok {
		return v.cells[i]
	}
	return core.ColorNone
}

// Bounds returns the mirrored coordinate range.
func (v *BoardView) Bounds() core.Bounds { return v.bounds }

// Events returns how many sink events the view has received.
func (v *BoardView) Events() int { return v.events }

var _ core.RenderSink = (*BoardView)(nil)
