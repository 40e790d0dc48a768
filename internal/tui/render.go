package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/engine"
)

// renderBoard draws the grid as one colored box of the given size per tile.
func renderBoard(s Styles, board engine.Board, size tileSize) string {
	rows := make([]string, len(board))
	for y, row := range board {
		tiles := make([]string, len(row))
		for x, v := range row {
			label := ""
			if v != engine.Empty {
				label = strconv.Itoa(int(v))
			}
			tiles[x] = s.Tile(v).Width(size.width).Height(size.height).Render(label)
		}
		rows[y] = lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
	}
	return s.Board.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderHeader draws the title and the SCORE / BEST / SIZE boxes.
func renderHeader(s Styles, score, best, size int) string {
	box := func(label, value string) string {
		return s.ScoreBox.Render(s.ScoreLabel.Render(label) + "\n" + s.ScoreValue.Render(value))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		s.Title.Render("2 0 4 8"),
		"  ",
		box("SCORE", strconv.Itoa(score)),
		box("BEST", strconv.Itoa(best)),
		box("SIZE", fmt.Sprintf("%dx%d", size, size)),
	)
}

// renderOverlay draws the end-of-game box, or nothing while the game runs.
func renderOverlay(s Styles, state engine.GameState) string {
	switch {
	case state.Won():
		return s.OverlayBox.Render(lipgloss.JoinVertical(lipgloss.Center,
			s.OverlayWin.Render("You reached 2048!"),
			s.OverlayText.Render(fmt.Sprintf("Final score: %d", state.Score())),
			s.OverlayText.Render("Press N for a new game"),
		))
	case state.Over():
		return s.OverlayBox.Render(lipgloss.JoinVertical(lipgloss.Center,
			s.OverlayTitle.Render("Game Over"),
			s.OverlayText.Render(fmt.Sprintf("Max tile: %d", state.MaxTile())),
			s.OverlayText.Render("Press N to try again"),
		))
	}
	return ""
}

// centerText centers text within width using spaces.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
