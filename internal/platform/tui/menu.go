package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Column widths of the variant table
const (
	idColumnWidth    = 12
	titleColumnWidth = 12
	summaryMinWidth  = 24
	summaryMaxWidth  = 44
)

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	table    table.Model
	games    []registry.GameInfo
	keys     MenuKeyMap
	help     help.Model
	config   core.RuntimeConfig
	quitting bool
	selected string // Set when user picks a variant
}

// NewMenuModel creates a picker over every registered variant.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	rows := make([]table.Row, 0, len(games))
	for _, g := range games {
		rows = append(rows, table.Row{g.ID, g.Title, g.Summary})
	}

	t := table.New(
		table.WithColumns(menuColumns(cfg.ScreenW)),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+2),
		table.WithStyles(theme.tableStyles()),
	)

	h := theme.helpModel()
	h.Width = cfg.ScreenW

	return MenuModel{
		table:  t,
		games:  games,
		keys:   DefaultMenuKeyMap(),
		help:   h,
		config: cfg,
	}
}

// menuColumns sizes the summary column to the terminal width.
func menuColumns(width int) []table.Column {
	// Each column carries one cell of padding on both sides
	rest := width - idColumnWidth - titleColumnWidth - 6 - 4
	return []table.Column{
		{Title: "ID", Width: idColumnWidth},
		{Title: "Variant", Width: titleColumnWidth},
		{Title: "Description", Width: core.Clamp(rest, summaryMinWidth, summaryMaxWidth)},
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if row := m.table.SelectedRow(); row != nil {
				m.selected = row[0]
				return m, tea.Quit // Exit menu to start game
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.table.SetColumns(menuColumns(msg.Width))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Render("2 0 4 8"))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render("Pick a board"))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n\n")

	if c := m.table.Cursor(); c >= 0 && c < len(m.games) {
		b.WriteString(theme.Description.Render(m.games[c].Summary))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, b.String())
}

// Selected returns the picked variant ID, or empty if none was picked.
func (m MenuModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the picker and returns the selection.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	if m.IsQuitting() || m.Selected() == "" {
		result.Quit = true
		return result, nil
	}
	result.GameID = m.Selected()
	return result, nil
}
