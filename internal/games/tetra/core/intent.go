package core

// Intent is an abstract player command consumed by the engine.
type Intent int

const (
	IntentNone Intent = iota
	MoveLeft
	MoveRight
	SoftDrop
	HardDrop
	RotateCW
	RotateCCW
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case SoftDrop:
		return "SoftDrop"
	case HardDrop:
		return "HardDrop"
	case RotateCW:
		return "RotateCW"
	case RotateCCW:
		return "RotateCCW"
	default:
		return "Unknown"
	}
}

// Outcome reports what one engine operation did.
type Outcome struct {
	Moved        bool // The piece changed position or orientation
	Kick         int  // Accepted wall-kick index, -1 if no rotation happened
	Dropped      int  // Rows fallen during a hard drop
	Locked       bool // The piece was locked into the grid
	LinesCleared int
	ScoreDelta   int
	GameOver     bool // The next spawn was blocked
}

func noKick() Outcome {
	return Outcome{Kick: -1}
}
