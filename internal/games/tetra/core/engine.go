// Package core implements the deterministic rules of the falling-block game:
// shape normalization, the occupancy grid, the falling piece and the session
// engine that ties them together. It performs no I/O and never blocks.
package core

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Config holds the engine's board and timing parameters.
type Config struct {
	Width  int // Board width in cells
	Height int // Board height in cells

	// LockDelay is the number of Tick calls a grounded piece waits before it
	// locks. Zero locks on the first failed gravity step.
	LockDelay int
}

// DefaultConfig returns a standard 10x20 board with no lock delay.
func DefaultConfig() Config {
	return Config{Width: 10, Height: 20}
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithScoreSink subscribes a score sink.
func WithScoreSink(s ScoreSink) Option {
	return func(e *Engine) {
		if s != nil {
			e.scoreSink = s
		}
	}
}

// WithRenderSink subscribes a render sink to the engine's grid.
func WithRenderSink(s RenderSink) Option {
	return func(e *Engine) {
		e.grid.SetSink(s)
	}
}

// Engine runs one game session: spawn, gravity, lock, line clear, next spawn.
// It is single-threaded and owns its grid and piece exclusively.
type Engine struct {
	cfg       Config
	grid      *Grid
	source    ShapeSource
	piece     *Piece
	next      *Shape
	score     int
	lines     int
	pieces    int
	lockTimer int
	started   bool
	gameOver  bool
	logger    *log.Logger
	scoreSink ScoreSink
}

// NewEngine creates an engine for a fresh session.
func NewEngine(cfg Config, source ShapeSource, opts ...Option) (*Engine, error) {
	if cfg.Width < 4 || cfg.Height < 4 {
		return nil, fmt.Errorf("tetra: board %dx%d too small", cfg.Width, cfg.Height)
	}
	if cfg.LockDelay < 0 {
		return nil, fmt.Errorf("tetra: negative lock delay %d", cfg.LockDelay)
	}
	if source == nil {
		return nil, errors.New("tetra: nil shape source")
	}
	e := &Engine{
		cfg:       cfg,
		grid:      NewGrid(cfg.Width, cfg.Height),
		source:    source,
		logger:    log.New(io.Discard),
		scoreSink: NopScoreSink{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Start draws the first two shapes and spawns the first piece.
func (e *Engine) Start() Outcome {
	out := noKick()
	if e.started {
		return out
	}
	e.started = true
	e.next = e.source.Next()
	e.spawnNext(&out)
	return out
}

// Grid returns the engine's grid. Callers must treat it as read-only.
func (e *Engine) Grid() *Grid { return e.grid }

// Piece returns the falling piece, or nil after game over.
func (e *Engine) Piece() *Piece { return e.piece }

// Next returns the lookahead shape.
func (e *Engine) Next() *Shape { return e.next }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Lines returns the total number of cleared lines.
func (e *Engine) Lines() int { return e.lines }

// Pieces returns how many pieces have been spawned.
func (e *Engine) Pieces() int { return e.pieces }

// GameOver reports whether the session ended.
func (e *Engine) GameOver() bool { return e.gameOver }

// SpawnPoint returns the board point that shape spawn offsets are added to.
func (e *Engine) SpawnPoint() Coord {
	b := e.grid.Bounds()
	return C(-b.XMax/2+1, b.YMax)
}

// Ghost returns the footprint of the falling piece dropped to its landing row.
func (e *Engine) Ghost() []Coord {
	if e.piece == nil {
		return nil
	}
	landing := e.piece.anchor.Add(C(0, -e.piece.DropDistance()))
	return footprint(landing, e.piece.cells)
}

func (e *Engine) check() error {
	if !e.started {
		return ErrNotStarted
	}
	if e.gameOver {
		return ErrGameOver
	}
	return nil
}

// Apply executes one player intent.
func (e *Engine) Apply(in Intent) (Outcome, error) {
	if err := e.check(); err != nil {
		return noKick(), err
	}
	out := noKick()
	p := e.piece

	switch in {
	case MoveLeft:
		out.Moved = p.TryMove(Left)
	case MoveRight:
		out.Moved = p.TryMove(Right)
	case SoftDrop:
		out.Moved = p.TryMove(Down)
	case RotateCW:
		out.Kick = p.Rotate(Clockwise)
		out.Moved = out.Kick >= 0
	case RotateCCW:
		out.Kick = p.Rotate(CounterClockwise)
		out.Moved = out.Kick >= 0
	case HardDrop:
		for p.TryMove(Down) {
			out.Dropped++
		}
		out.Moved = out.Dropped > 0
		e.lock(&out)
		return out, nil
	default:
		return out, nil
	}

	if out.Moved && p.state == Locking && p.CanFall() {
		p.state = Falling
	}
	return out, nil
}

// Step applies one gravity tick: the piece falls a row, or starts locking.
func (e *Engine) Step() (Outcome, error) {
	if err := e.check(); err != nil {
		return noKick(), err
	}
	out := noKick()
	p := e.piece
	if p.TryMove(Down) {
		out.Moved = true
		if p.state == Locking {
			p.state = Falling
		}
		return out, nil
	}

	if e.cfg.LockDelay == 0 {
		e.lock(&out)
		return out, nil
	}
	if p.state == Falling {
		p.state = Locking
		e.lockTimer = e.cfg.LockDelay
	}
	return out, nil
}

// Tick advances the lock-delay countdown by one logical tick.
func (e *Engine) Tick() (Outcome, error) {
	if err := e.check(); err != nil {
		return noKick(), err
	}
	out := noKick()
	p := e.piece
	if p.state != Locking {
		return out, nil
	}
	if p.CanFall() {
		p.state = Falling
		return out, nil
	}
	e.lockTimer--
	if e.lockTimer <= 0 {
		e.lock(&out)
	}
	return out, nil
}

// lock freezes the piece, clears full rows and spawns the next piece.
func (e *Engine) lock(out *Outcome) {
	p := e.piece
	p.state = Locked
	out.Locked = true
	e.piece = nil
	e.logger.Debug("piece locked", "shape", p.shape.name, "anchor", p.anchor, "rotation", p.rotation)

	n := e.grid.ClearFullRows(nil)
	if n > 0 {
		out.LinesCleared = n
		out.ScoreDelta = e.onLinesCleared(n)
		e.logger.Debug("lines cleared", "count", n, "score", e.score)
	}

	e.spawnNext(out)
}

// onLinesCleared applies the score for n simultaneous lines.
func (e *Engine) onLinesCleared(n int) int {
	delta := LineScore(n)
	if delta == 0 {
		return 0
	}
	e.lines += n
	e.score += delta
	e.scoreSink.OnScoreChanged(e.score)
	return delta
}

// spawnNext spawns the lookahead shape and draws a new one.
func (e *Engine) spawnNext(out *Outcome) {
	shape := e.next
	e.next = e.source.Next()
	e.spawn(shape, out)
}

// spawn places a new piece, or ends the session if its footprint is blocked.
func (e *Engine) spawn(shape *Shape, out *Outcome) {
	anchor := shape.SpawnOffset().Add(e.SpawnPoint())
	p, ok := PlacePiece(shape, e.grid, anchor)
	if !ok {
		e.endGame(out)
		return
	}
	e.piece = p
	e.pieces++
	e.lockTimer = 0
	e.logger.Debug("piece spawned", "shape", shape.name, "anchor", anchor)
}

// endGame makes the session terminal and clears the board.
func (e *Engine) endGame(out *Outcome) {
	e.gameOver = true
	e.piece = nil
	out.GameOver = true
	e.grid.ClearAll()
	e.scoreSink.OnGameOver(e.score)
	e.logger.Info("game over", "score", e.score, "lines", e.lines, "pieces", e.pieces)
}
