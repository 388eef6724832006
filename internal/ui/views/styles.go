package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Header       lipgloss.Style
	Gutter       lipgloss.Style
	HexByte      lipgloss.Style
	GlyphByte    lipgloss.Style
	NonPrint     lipgloss.Style
	CursorHex    lipgloss.Style
	CursorGlyph  lipgloss.Style
	Status       lipgloss.Style
	StatusField  lipgloss.Style
	Prompt       lipgloss.Style
	Help         lipgloss.Style
	PositionBar  lipgloss.Style
	PositionMark lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("19")),
		Gutter:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		HexByte:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		GlyphByte: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		NonPrint:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Faint(true),
		CursorHex: lipgloss.NewStyle().
			Foreground(lipgloss.Color("120")).
			Background(lipgloss.Color("22")),
		CursorGlyph: lipgloss.NewStyle().
			Foreground(lipgloss.Color("120")).
			Background(lipgloss.Color("22")),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusField:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Prompt:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Help:         lipgloss.NewStyle().Faint(true),
		PositionBar:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		PositionMark: lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
	}
}
