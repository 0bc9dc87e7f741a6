package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles used around the game screen.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Description lipgloss.Style

	TableHeader   lipgloss.Style
	TableCell     lipgloss.Style
	TableSelected lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	HelpSep  lipgloss.Style

	// Board is indexed by core.Color.
	Board []lipgloss.Style
}

// DefaultTheme returns the warm palette that matches the tile colors.
func DefaultTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		TableHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("223")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true).
			Padding(0, 1),
		TableCell:     lipgloss.NewStyle().Padding(0, 1),
		TableSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("214")).Bold(true),

		HelpKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("223")),
		HelpDesc: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HelpSep:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Board: boardStyles(false),
	}
}

// MonochromeTheme returns a grayscale theme for limited terminals.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Title = lipgloss.NewStyle().Bold(true)
	theme.TableHeader = theme.TableHeader.Foreground(lipgloss.Color("255"))
	theme.TableSelected = lipgloss.NewStyle().Reverse(true)
	theme.HelpKey = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	theme.Board = boardStyles(true)
	return theme
}

// tableStyles adapts the theme for bubbles/table.
func (t Theme) tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = t.TableHeader
	s.Cell = t.TableCell
	s.Selected = t.TableSelected
	return s
}

// helpModel returns a bubbles/help model styled by the theme.
func (t Theme) helpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = t.HelpKey
	h.Styles.ShortDesc = t.HelpDesc
	h.Styles.ShortSeparator = t.HelpSep
	h.Styles.FullKey = t.HelpKey
	h.Styles.FullDesc = t.HelpDesc
	h.Styles.FullSeparator = t.HelpSep
	return h
}

// Global theme variable (can be changed at startup)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// CurrentTheme returns the current global theme.
func CurrentTheme() Theme {
	return theme
}
