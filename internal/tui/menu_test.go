package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/t2048/internal/storage"
)

func TestSizeModelSelect(t *testing.T) {
	m := NewSizeModel(4, 80, 24, NewStyles(nil))
	assert.Equal(t, 0, m.Selected(), "nothing selected yet")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(SizeModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SizeModel)

	assert.Equal(t, 5, m.Selected())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSizeModelCursorBounds(t *testing.T) {
	m := NewSizeModel(3, 80, 24, NewStyles(nil))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(SizeModel)
	for range 10 {
		next, _ = m.Update(keyRunes("j"))
		m = next.(SizeModel)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SizeModel)

	assert.Equal(t, 6, m.Selected())
}

func TestSizeModelQuit(t *testing.T) {
	m := NewSizeModel(4, 80, 24, NewStyles(nil))

	next, _ := m.Update(keyRunes("q"))
	m = next.(SizeModel)

	assert.True(t, m.IsQuitting())
	assert.Equal(t, 0, m.Selected())
}

func TestSizeModelView(t *testing.T) {
	m := NewSizeModel(4, 0, 0, NewStyles(nil))
	view := m.View()

	assert.Contains(t, view, "Select board size:")
	assert.Contains(t, view, "> 4 x 4")
	assert.Contains(t, view, "  6 x 6")
}

func TestScoreboardCyclesSizes(t *testing.T) {
	store := &fakeStore{results: []storage.Result{
		{BoardSize: 4, Score: 800, Player: "ann"},
		{BoardSize: 5, Score: 3200, Player: "bob"},
	}}
	m := NewScoreboardModel(store, 4, 100, 30)
	assert.Equal(t, 4, m.Size())
	assert.Contains(t, m.View(), "ann")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, 5, m.Size())
	assert.Contains(t, m.View(), "bob")
	assert.NotContains(t, m.View(), "ann")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, 3, m.Size())
	assert.Contains(t, m.View(), "No scores recorded yet.")
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 9, 80, 24)
	assert.Equal(t, 3, m.Size(), "invalid sizes fall back to the smallest board")
	assert.Contains(t, m.View(), "No scores recorded yet.")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	assert.True(t, m.IsGoingBack())
	require.NotNil(t, cmd, "standalone scoreboard ends the program on back")
}

func TestSessionModelFlow(t *testing.T) {
	store := &fakeStore{}
	m := NewSessionModel(SessionOptions{Store: store, Player: "guest", DefaultSize: 5, Width: 0, Height: 0})
	assert.Contains(t, m.View(), "> 5 x 5")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SessionModel)
	require.NotNil(t, m.game, "selecting a size starts a game")
	assert.Nil(t, cmd)
	assert.Equal(t, 5, m.game.Size())
	assert.Equal(t, "guest", m.game.player)
	assert.Contains(t, m.View(), "SCORE")

	next, cmd = m.Update(keyRunes("q"))
	m = next.(SessionModel)
	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSessionModelQuitFromPicker(t *testing.T) {
	m := NewSessionModel(SessionOptions{DefaultSize: 4})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SessionModel)

	assert.True(t, m.quitting)
	assert.Nil(t, m.game)
	require.NotNil(t, cmd)
}
