// Package tui provides the Bubble Tea front end for the 2048 engine.
// It handles the terminal UI loop, key bindings, the board size picker,
// the scoreboard and the SSH server.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/t2048/internal/config"
	"github.com/vovakirdan/t2048/internal/engine"
	"github.com/vovakirdan/t2048/internal/storage"
)

// ScoreStore is the leaderboard the game records finished games to.
// *storage.Store satisfies it.
type ScoreStore interface {
	SaveResult(r storage.Result) (int64, error)
	HighScore(boardSize int) (int, error)
	TopScores(boardSize, limit int) ([]storage.Result, error)
}

// Options configures a game model.
type Options struct {
	Size     int
	Seed     int64 // 0 seeds from the clock
	Store    ScoreStore
	Logger   *log.Logger
	Renderer *lipgloss.Renderer
	Player   string
	Width    int
	Height   int
}

// Model is the Bubble Tea model for one game of 2048.
type Model struct {
	state      engine.GameState
	rng        engine.Rand
	size       int
	moves      int
	best       int
	gameID     string
	store      ScoreStore
	logger     *log.Logger
	player     string
	keys       KeyMap
	help       help.Model
	styles     Styles
	scoreboard *ScoreboardModel // Non-nil while the scoreboard is open
	width      int
	height     int
	recorded   bool // Whether the current game has been saved
	quitting   bool
}

// NewModel creates a game model and starts the first game.
func NewModel(opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if config.ValidateSize(opts.Size) != nil {
		opts.Size = config.Default().Game.Size
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	m := Model{
		rng:    engine.NewRand(opts.Seed),
		store:  opts.Store,
		logger: opts.Logger,
		player: opts.Player,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: NewStyles(opts.Renderer),
		width:  opts.Width,
		height: opts.Height,
	}
	m.help.Width = opts.Width
	m.newGame(opts.Size)

	return m
}

// newGame replaces the state with a fresh board of the given size.
func (m *Model) newGame(size int) {
	m.size = size
	m.state = engine.NewGame(size, m.rng)
	m.moves = 0
	m.recorded = false
	m.gameID = uuid.New().String()
	m.best = m.loadBest()
}

// loadBest returns the stored high score for the current size.
func (m *Model) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(m.size)
	if err != nil {
		m.logger.Warn("could not load high score", "size", m.size, "error", err)
		return 0
	}
	return best
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.New):
		m.newGame(m.size)
		return m, nil

	case key.Matches(msg, m.keys.Grow):
		m.newGame(config.NextSize(m.size, 1))
		return m, nil

	case key.Matches(msg, m.keys.Shrink):
		m.newGame(config.NextSize(m.size, -1))
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Scores):
		sb := NewScoreboardModel(m.store, m.size, m.width, m.height)
		sb.styles = m.styles
		sb.embedded = true
		m.scoreboard = &sb
		return m, nil
	}

	if dir, ok := m.keys.Direction(msg); ok {
		m.move(dir)
	}
	return m, nil
}

// move applies one move. Finished games ignore moves until restarted.
func (m *Model) move(dir engine.Direction) {
	if m.state.Won() || m.state.Over() {
		return
	}

	next := engine.ApplyMove(m.state, dir, m.rng)
	if next.Equal(m.state) {
		return
	}

	m.state = next
	m.moves++
	if m.state.Score() > m.best {
		m.best = m.state.Score()
	}

	if m.state.Won() || m.state.Over() {
		m.record()
	}
}

// record saves the finished game once. Failures are logged and the game continues.
func (m *Model) record() {
	if m.recorded {
		return
	}
	m.recorded = true

	if m.store == nil {
		return
	}

	_, err := m.store.SaveResult(storage.Result{
		GameUUID:  m.gameID,
		BoardSize: m.size,
		Score:     m.state.Score(),
		MaxTile:   int(m.state.MaxTile()),
		Won:       m.state.Won(),
		Moves:     m.moves,
		Player:    m.player,
	})
	if err != nil {
		m.logger.Warn("could not save score", "game", m.gameID, "error", err)
	}
}

// updateScoreboard forwards messages to the open scoreboard.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		m.help.Width = wsm.Width
	}

	next, cmd := m.scoreboard.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		m.scoreboard = nil
		return m, cmd
	}

	if sb.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if sb.IsGoingBack() {
		m.scoreboard = nil
		return m, nil
	}

	m.scoreboard = &sb
	return m, cmd
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	// Larger boards and the end-of-game box fall back to compact tiles.
	for _, size := range tileSizes {
		view := m.renderGame(size)
		if m.width == 0 || m.height == 0 {
			return view
		}
		if lipgloss.Width(view) <= m.width && lipgloss.Height(view) <= m.height {
			return m.styles.renderer.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
		}
	}
	return m.styles.OverlayText.Render("Window too small\nPlease resize terminal")
}

// renderGame stacks the header, the board and either the end-of-game box or the help bar.
func (m Model) renderGame(size tileSize) string {
	footer := renderOverlay(m.styles, m.state)
	if footer == "" {
		footer = m.styles.Help.Render(m.help.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		renderHeader(m.styles, m.state.Score(), m.best, m.size),
		renderBoard(m.styles, m.state.Board(), size),
		footer,
	)
}

// State returns the current game state.
func (m Model) State() engine.GameState {
	return m.state
}

// Moves returns the number of moves that changed the board in the current game.
func (m Model) Moves() int {
	return m.moves
}

// Size returns the current board size.
func (m Model) Size() int {
	return m.size
}

// Best returns the best score known for the current size.
func (m Model) Best() int {
	return m.best
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with a new game model.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
