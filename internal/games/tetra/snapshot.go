package tetra

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
	StateError       GameStateType = "error"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	Lines     int
	Pieces    int
	Piece     string // Falling shape name, empty after game over
	AnchorX   int
	AnchorY   int
	Rotation  int
	Next      string
	StepTimer int
	Board     string
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.loadErr != nil:
		state = StateError
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:      g.tick,
		StepTimer: g.stepTimer,
		State:     state,
	}
	if g.engine == nil {
		return snap
	}

	snap.Score = g.engine.Score()
	snap.Lines = g.engine.Lines()
	snap.Pieces = g.engine.Pieces()
	snap.Board = g.engine.Grid().String()
	if p := g.engine.Piece(); p != nil {
		snap.Piece = p.Shape().Name()
		snap.AnchorX = p.Anchor().X
		snap.AnchorY = p.Anchor().Y
		snap.Rotation = p.Rotation()
	}
	if n := g.engine.Next(); n != nil {
		snap.Next = n.Name()
	}
	return snap
}
