package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/storage"
)

// stubGame ends after a fixed number of steps and restarts on request.
type stubGame struct {
	resets  int
	steps   int
	endAt   int
	score   int
	best    int
	resized bool
	over    bool
	last    core.InputFrame
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.over = false
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.last = in
	if g.over && in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{})
		return core.StepResult{State: g.State()}
	}
	g.steps++
	if g.steps >= g.endAt {
		g.over = true
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over}
}

func (g *stubGame) SetHighScore(s int)         { g.best = s }
func (g *stubGame) Resize(int, int)            { g.resized = true }
func (g *stubGame) Stats() (lines, pieces int) { return 3, 9 }

var testConfig = core.RuntimeConfig{Seed: 1, ScreenW: 40, ScreenH: 10, TickRate: 60}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(TickMsg{})
	require.NotNil(t, cmd, "tick should schedule the next tick")
	return next.(Model)
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveResult(storage.Result{GameID: "stub", Score: 50})
	require.NoError(t, err)

	g := &stubGame{endAt: 2, score: 120}
	m := NewModel(g, store, nil, testConfig)
	m.Init()
	assert.Equal(t, 50, g.best, "Init should hand the stored best to the game")

	for range 5 {
		m = tick(t, m)
	}
	assert.True(t, m.GameState().GameOver)

	entries, err := store.TopScores("stub", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 120, entries[0].Score)
	assert.Equal(t, 3, entries[0].Lines)
	assert.Equal(t, 9, entries[0].Pieces)
}

func TestModelRestartSavesAgain(t *testing.T) {
	store := openStore(t)
	g := &stubGame{endAt: 1, score: 10}
	m := NewModel(g, store, nil, testConfig)
	m.Init()

	m = tick(t, m)
	require.True(t, m.GameState().GameOver)

	next, _ := m.Update(runeKey('r'))
	m = tick(t, next.(Model))
	assert.False(t, m.GameState().GameOver)
	assert.Equal(t, 10, g.best, "restart should refresh the stored best")

	m = tick(t, m)
	require.True(t, m.GameState().GameOver)

	entries, err := store.TopScores("stub", 10)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestModelSkipsEmptyScore(t *testing.T) {
	store := openStore(t)
	g := &stubGame{endAt: 1}
	m := NewModel(g, store, nil, testConfig)
	m.Init()
	tick(t, m)

	entries, err := store.TopScores("stub", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestModelInputReachesGameOnce(t *testing.T) {
	g := &stubGame{endAt: 100}
	m := NewModel(g, nil, nil, testConfig)
	m.Init()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(t, next.(Model))
	assert.True(t, g.last.Has(core.ActionHardDrop))

	tick(t, m)
	assert.False(t, g.last.Has(core.ActionHardDrop), "input frame should be cleared after a tick")
}

func TestModelQuitAndBack(t *testing.T) {
	m := NewModel(&stubGame{endAt: 100}, nil, nil, testConfig)

	next, cmd := m.Update(runeKey('q'))
	assert.NotNil(t, cmd)
	assert.False(t, next.(Model).Back())
	assert.Empty(t, next.(Model).View())

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd)
	assert.True(t, next.(Model).Back())
}

func TestModelResize(t *testing.T) {
	g := &stubGame{endAt: 100}
	m := NewModel(g, nil, nil, testConfig)
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	assert.True(t, g.resized)
	assert.Equal(t, 1, g.resets, "resizable games keep their state")

	view := next.(Model).View()
	assert.True(t, strings.Contains(view, "stub"))
}
