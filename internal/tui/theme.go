package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/engine"
)

// tileSize is the cell size of one tile in terminal columns and rows.
type tileSize struct {
	width, height int
}

// tileSizes lists the tile sizes tried by the game view, largest first.
var tileSizes = []tileSize{
	{width: 8, height: 3},
	{width: 6, height: 1},
}

// Styles contains all visual styles for the game screens.
// Styles are bound to a renderer so SSH sessions get their own color profile.
type Styles struct {
	renderer *lipgloss.Renderer

	// Tile styles
	Tiles     map[engine.Cell]lipgloss.Style
	BigTile   lipgloss.Style // Anything above 2048
	EmptyTile lipgloss.Style
	Board     lipgloss.Style

	// Header styles
	Title      lipgloss.Style
	ScoreBox   lipgloss.Style
	ScoreLabel lipgloss.Style
	ScoreValue lipgloss.Style

	// Overlay styles
	OverlayBox   lipgloss.Style
	OverlayTitle lipgloss.Style
	OverlayWin   lipgloss.Style
	OverlayText  lipgloss.Style

	// Menu styles
	MenuTitle      lipgloss.Style
	MenuItemNormal lipgloss.Style
	MenuItemActive lipgloss.Style

	Help lipgloss.Style
}

// tilePalette maps tile values to foreground/background colors.
var tilePalette = []struct {
	value  engine.Cell
	fg, bg string
}{
	{2, "235", "255"},
	{4, "235", "230"},
	{8, "255", "215"},
	{16, "255", "209"},
	{32, "255", "203"},
	{64, "255", "196"},
	{128, "235", "228"},
	{256, "235", "227"},
	{512, "235", "221"},
	{1024, "235", "220"},
	{2048, "235", "214"},
}

// NewStyles builds the default theme for the given renderer.
// A nil renderer uses the default renderer (local terminal).
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	tile := r.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Bold(true)

	tiles := make(map[engine.Cell]lipgloss.Style, len(tilePalette))
	for _, p := range tilePalette {
		tiles[p.value] = tile.
			Foreground(lipgloss.Color(p.fg)).
			Background(lipgloss.Color(p.bg))
	}

	return Styles{
		renderer: r,

		Tiles:     tiles,
		BigTile:   tile.Foreground(lipgloss.Color("255")).Background(lipgloss.Color("53")),
		EmptyTile: tile.Foreground(lipgloss.Color("240")).Background(lipgloss.Color("237")),
		Board: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),

		Title: r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		ScoreBox: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Align(lipgloss.Center),
		ScoreLabel: r.NewStyle().Foreground(lipgloss.Color("245")),
		ScoreValue: r.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),

		OverlayBox: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("255")).
			Padding(0, 3).
			Align(lipgloss.Center),
		OverlayTitle: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		OverlayWin:   r.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		OverlayText:  r.NewStyle().Foreground(lipgloss.Color("252")),

		MenuTitle:      r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		MenuItemNormal: r.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive: r.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),

		Help: r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Tile returns the style for a tile value.
func (s Styles) Tile(v engine.Cell) lipgloss.Style {
	if v == engine.Empty {
		return s.EmptyTile
	}
	if style, ok := s.Tiles[v]; ok {
		return style
	}
	return s.BigTile
}

// Renderer returns the renderer the styles were built for.
func (s Styles) Renderer() *lipgloss.Renderer {
	return s.renderer
}
