package core

// RenderSink receives one call per grid mutation.
// A renderer subscribes with Grid.SetSink and stays purely reactive.
type RenderSink interface {
	OnCellSet(pos Coord, color ColorID)
	OnCellCleared(pos Coord)
	OnBoardCleared()
}

// ScoreSink receives score changes and the terminal game-over notification.
type ScoreSink interface {
	OnScoreChanged(total int)
	OnGameOver(finalScore int)
}

// NopRenderSink discards all render notifications.
type NopRenderSink struct{}

func (NopRenderSink) OnCellSet(Coord, ColorID) {}
func (NopRenderSink) OnCellCleared(Coord)      {}
func (NopRenderSink) OnBoardCleared()          {}

// NopScoreSink discards all score notifications.
type NopScoreSink struct{}

func (NopScoreSink) OnScoreChanged(int) {}
func (NopScoreSink) OnGameOver(int)     {}
