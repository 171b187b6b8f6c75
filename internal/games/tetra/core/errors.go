package core

import "errors"

var (
	// ErrDegenerateShape is returned by Normalize for an empty cell list.
	ErrDegenerateShape = errors.New("tetra: degenerate shape")

	// ErrAlreadyOccupied is returned by Grid.SetCell when the cell is taken.
	ErrAlreadyOccupied = errors.New("tetra: cell already occupied")

	// ErrOutOfBounds is returned when a grid write targets a cell outside the board.
	ErrOutOfBounds = errors.New("tetra: cell out of bounds")

	// ErrGameOver is returned by engine operations after the session ended.
	ErrGameOver = errors.New("tetra: game over")

	// ErrNotStarted is returned by engine operations before Start.
	ErrNotStarted = errors.New("tetra: engine not started")
)
