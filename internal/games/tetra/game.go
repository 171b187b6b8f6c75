// Package tetra provides the falling-block game for the platform. It wraps
// the rules engine with a tick clock, input handling and screen rendering.
package tetra

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetra/internal/config"
	platformcore "github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/core"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/shapes"
	"github.com/vovakirdan/tui-tetra/internal/registry"
)

// Variant selects which shape set a game instance plays with.
type Variant string

const (
	VariantClassic Variant = "classic"
	VariantPento   Variant = "pento"
)

// Game implements the falling-block game.
type Game struct {
	variant Variant
	cfg     config.TetraConfig
	logger  *log.Logger

	set        *shapes.Set
	engine     *core.Engine
	board      *BoardView
	difficulty *config.DifficultyManager
	loadErr    error

	// Clock, in ticks
	tick         uint64
	tickRate     int
	stepTimer    int // Ticks until the next gravity step
	moveCooldown int // Ticks until a repeatable move is accepted again
	moveDelay    int
	flashTicks   int // Remaining ticks of the line-clear banner

	seed      int64
	lastClear int
	highScore int
	newBest   bool

	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// Package-level configuration, set by the CLI before games are created.
var (
	gameConfig = config.DefaultTetraConfig()
	gameLogger = log.New(io.Discard)
)

// SetConfig sets the configuration used by games created afterwards.
func SetConfig(cfg config.TetraConfig) {
	gameConfig = cfg
}

// SetLogger sets the logger handed to the engine. Nil discards logs.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	gameLogger = l
}

// New creates a game using the configured shape set.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewPento creates a game that always plays with pentominoes.
func NewPento() *Game {
	return &Game{variant: VariantPento}
}

func init() {
	registry.Register("tetra", func() registry.Game {
		return New()
	})
	registry.Register("tetra_pento", func() registry.Game {
		return NewPento()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantPento {
		return "tetra_pento"
	}
	return "tetra"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantPento {
		return "Tetra (Pentominoes)"
	}
	return "Tetra"
}

// Description implements registry.Describer.
func (g *Game) Description() string {
	if g.variant == VariantPento {
		return "Twelve five-cell pieces on the same well"
	}
	return "Falling blocks with the configured shape set"
}

// SetHighScore tells the game the best stored score for the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// Resize adapts to a new terminal size without restarting. Play is
// suspended while the window cannot fit the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < g.requiredWidth() || height < g.requiredHeight()
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc platformcore.RuntimeConfig) {
	g.cfg = gameConfig
	g.logger = gameLogger
	g.seed = rc.Seed
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	g.tick = 0
	g.gameOver = false
	g.paused = false
	g.newBest = false
	g.flashTicks = 0
	g.lastClear = 0
	g.moveCooldown = 0
	g.loadErr = nil
	g.engine = nil

	g.Resize(g.screenW, g.screenH)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.moveDelay = msToTicks(g.cfg.Timing.MoveDelayMs, g.tickRate)

	if err := g.loadShapes(); err != nil {
		g.loadErr = err
		g.logger.Error("cannot load shapes", "err", err)
		return
	}

	bounds := core.BoundsFor(g.cfg.Board.Width, g.cfg.Board.Height)
	g.board = NewBoardView(bounds)

	engine, err := core.NewEngine(
		core.Config{
			Width:     g.cfg.Board.Width,
			Height:    g.cfg.Board.Height,
			LockDelay: msToTicks(g.cfg.Timing.LockDelayMs, g.tickRate),
		},
		core.NewRandomSource(g.set.Shapes, g.seed),
		core.WithLogger(g.logger),
		core.WithRenderSink(g.board),
		core.WithScoreSink(g),
	)
	if err != nil {
		g.loadErr = err
		g.logger.Error("cannot create engine", "err", err)
		return
	}
	g.engine = engine

	g.logger.Debug("game reset", "id", g.ID(), "set", g.set.ID, "seed", g.seed,
		"board", g.cfg.Board, "tick_rate", g.tickRate)
	g.observe(g.engine.Start())
	g.stepTimer = g.stepDelay()
}

func (g *Game) loadShapes() error {
	var (
		set *shapes.Set
		err error
	)
	if g.variant == VariantPento {
		set, err = shapes.Builtin("pento")
	} else {
		set, err = shapes.Load(g.cfg.Shapes.Set, g.cfg.Shapes.Path)
	}
	if err != nil {
		return err
	}
	if len(set.Shapes) == 0 {
		return errors.New("shapes: set has no shapes")
	}
	g.set = set
	return nil
}

// stepDelay returns the current gravity interval in ticks.
func (g *Game) stepDelay() int {
	ms := g.difficulty.StepDelay(g.cfg.Timing.StepDelayMs, g.score(), int(g.tick))
	return max(msToTicks(ms, g.tickRate), 1)
}

func (g *Game) score() int {
	if g.engine == nil {
		return 0
	}
	return g.engine.Score()
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	g.tick++

	if input.Has(platformcore.ActionRestart) && (g.gameOver || g.loadErr != nil) {
		g.Reset(platformcore.RuntimeConfig{
			Seed:     g.seed + 1,
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.engine == nil || g.gameOver || g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if g.flashTicks > 0 {
		g.flashTicks--
	}

	g.processInput(input)

	if !g.gameOver {
		g.run(g.engine.Tick)
	}

	if !g.gameOver {
		g.stepTimer--
		if g.stepTimer <= 0 {
			g.run(g.engine.Step)
			g.stepTimer = g.stepDelay()
		}
	}

	return platformcore.StepResult{State: g.State()}
}

// processInput dispatches player intents. Rotations and the hard drop fire
// once per key event; moves and soft drops are rate-limited by the move delay.
func (g *Game) processInput(input platformcore.InputFrame) {
	if g.moveCooldown > 0 {
		g.moveCooldown--
	}

	if input.Has(platformcore.ActionRotateCW) {
		g.apply(core.RotateCW)
	}
	if input.Has(platformcore.ActionRotateCCW) {
		g.apply(core.RotateCCW)
	}

	if g.moveCooldown == 0 {
		moved := false
		switch {
		case input.Has(platformcore.ActionLeft):
			moved = g.apply(core.MoveLeft).Moved
		case input.Has(platformcore.ActionRight):
			moved = g.apply(core.MoveRight).Moved
		}
		if input.Has(platformcore.ActionSoftDrop) {
			if g.apply(core.SoftDrop).Moved {
				moved = true
				g.stepTimer = g.stepDelay()
			}
		}
		if moved {
			g.moveCooldown = g.moveDelay
		}
	}

	if input.Has(platformcore.ActionHardDrop) {
		if out := g.apply(core.HardDrop); out.Locked {
			g.stepTimer = g.stepDelay()
		}
	}
}

// apply sends one intent to the engine and records the outcome.
func (g *Game) apply(in core.Intent) core.Outcome {
	if g.gameOver {
		return core.Outcome{Kick: -1}
	}
	out, err := g.engine.Apply(in)
	if err != nil {
		g.logger.Warn("intent rejected", "intent", in, "err", err)
		return out
	}
	g.observe(out)
	return out
}

func (g *Game) run(op func() (core.Outcome, error)) {
	out, err := op()
	if err != nil {
		g.logger.Warn("engine step rejected", "err", err)
		return
	}
	g.observe(out)
}

// observe updates front-end state from an engine outcome.
func (g *Game) observe(out core.Outcome) {
	if out.LinesCleared > 0 {
		g.lastClear = out.LinesCleared
		g.flashTicks = g.tickRate
	}
	if out.GameOver {
		g.gameOver = true
	}
}

// OnScoreChanged implements core.ScoreSink.
func (g *Game) OnScoreChanged(total int) {
	if total > g.highScore && g.highScore > 0 && !g.newBest {
		g.logger.Info("new high score", "id", g.ID(), "score", total)
		g.newBest = true
	}
}

// OnGameOver implements core.ScoreSink.
func (g *Game) OnGameOver(finalScore int) {
	g.gameOver = true
	if finalScore > g.highScore {
		g.highScore = finalScore
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if g.engine != nil {
		st.Score = g.engine.Score()
		st.Lines = g.engine.Lines()
		st.Level = g.difficulty.Tier(st.Score, int(g.tick), 10)
	}
	return st
}

// Stats returns the line and piece counters for the finished game.
func (g *Game) Stats() (lines, pieces int) {
	if g.engine == nil {
		return 0, 0
	}
	return g.engine.Lines(), g.engine.Pieces()
}

// Engine exposes the rules engine for inspection.
func (g *Game) Engine() *core.Engine {
	return g.engine
}

// Board returns the render mirror of the playfield.
func (g *Game) Board() *BoardView {
	return g.board
}
