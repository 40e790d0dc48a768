package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/t2048/internal/config"
)

// SizeModel lets users choose the board size before a game starts.
type SizeModel struct {
	sizes    []int
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	styles   Styles
	selected int
	choosing bool
	quitting bool
	back     bool
	embedded bool // Selection hands control to a parent model instead of quitting
}

// NewSizeModel creates a board size picker with the cursor on initial.
func NewSizeModel(initial, width, height int, styles Styles) SizeModel {
	sizes := make([]int, 0, config.MaxBoardSize-config.MinBoardSize+1)
	cursor := 0
	for size := config.MinBoardSize; size <= config.MaxBoardSize; size++ {
		if size == initial {
			cursor = len(sizes)
		}
		sizes = append(sizes, size)
	}

	return SizeModel{
		sizes:    sizes,
		cursor:   cursor,
		width:    width,
		height:   height,
		keys:     DefaultMenuKeyMap(),
		help:     help.New(),
		styles:   styles,
		choosing: true,
	}
}

// Init initializes the model.
func (m SizeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SizeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m SizeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.sizes)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.choosing = false
		m.selected = m.sizes[m.cursor]
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.back = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the size selection.
func (m SizeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.styles.MenuTitle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select board size:", m.width))
	b.WriteString("\n\n")

	for i, size := range m.sizes {
		line := fmt.Sprintf("  %d x %d", size, size)
		style := m.styles.MenuItemNormal
		if i == m.cursor {
			line = fmt.Sprintf("> %d x %d", size, size)
			style = m.styles.MenuItemActive
		}
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.styles.Help.Render(m.help.View(m.keys)), m.width))

	return b.String()
}

// Selected returns the chosen size, or 0 if still choosing or cancelled.
func (m SizeModel) Selected() int {
	if m.choosing {
		return 0
	}
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m SizeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SizeModel) WantsBack() bool {
	return m.back
}

// RunSizeSelector runs the board size picker and returns the chosen size.
// Returns 0 if the user quit without choosing.
func RunSizeSelector(initial, width, height int) (int, error) {
	model := NewSizeModel(initial, width, height, NewStyles(nil))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(SizeModel)
	if !ok {
		return 0, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return 0, nil
	}

	return m.Selected(), nil
}
