package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridiron/internal/sim"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the board list sidebar
	sidebarWidth       = 20
)

// Board is one page of the scoreboard: the standings or a leader category.
type Board struct {
	Key   string
	Title string
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextBoard key.Binding
	PrevBoard key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextBoard, k.PrevBoard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextBoard, k.PrevBoard},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextBoard: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next board"),
		),
		PrevBoard: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev board"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows standings and stat leaders in a table.
type ScoreboardModel struct {
	boards      []Board
	cursor      int
	standings   []sim.Standing
	leaders     map[string][]sim.Leader
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard over standings and per-category
// leaders keyed by sim.Category key.
func NewScoreboardModel(standings []sim.Standing, leaders map[string][]sim.Leader, width, height int) ScoreboardModel {
	boards := []Board{{Key: "standings", Title: "Standings"}}
	for _, c := range sim.Categories {
		if _, ok := leaders[c.Key]; ok {
			boards = append(boards, Board{Key: c.Key, Title: c.Title})
		}
	}

	m := ScoreboardModel{
		boards:      boards,
		standings:   standings,
		leaders:     leaders,
		keys:        DefaultScoreboardKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	return m
}

// Board returns the board on display.
func (m ScoreboardModel) Board() Board {
	return m.boards[m.cursor]
}

// Rows returns the table rows of the board on display.
func (m ScoreboardModel) Rows() []table.Row {
	return m.table.Rows()
}

// createTable builds the table for the current board.
func (m *ScoreboardModel) createTable() table.Model {
	var columns []table.Column
	var rows []table.Row

	if m.cursor == 0 {
		columns = []table.Column{
			{Title: "#", Width: 3},
			{Title: "Team", Width: 22},
			{Title: "W-L-T", Width: 8},
			{Title: "Pct", Width: 6},
			{Title: "PF", Width: 5},
			{Title: "PA", Width: 5},
			{Title: "Diff", Width: 5},
		}
		for i, s := range m.standings {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i+1),
				s.Name,
				fmt.Sprintf("%d-%d-%d", s.Wins, s.Losses, s.Ties),
				fmt.Sprintf("%.3f", s.Pct()),
				fmt.Sprintf("%d", s.PointsFor),
				fmt.Sprintf("%d", s.PointsAgainst),
				fmt.Sprintf("%+d", s.Diff()),
			})
		}
	} else {
		columns = []table.Column{
			{Title: "#", Width: 3},
			{Title: "Player", Width: 20},
			{Title: "Pos", Width: 4},
			{Title: "Team", Width: 20},
			{Title: "Total", Width: 6},
		}
		for i, l := range m.leaders[m.boards[m.cursor].Key] {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i+1),
				l.Name,
				string(l.Position),
				l.Team,
				fmt.Sprintf("%d", l.Value),
			})
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextBoard):
			m.cursor = (m.cursor + 1) % len(m.boards)
			m.table = m.createTable()
			return m, nil

		case key.Matches(msg, m.keys.PrevBoard):
			m.cursor = (m.cursor + len(m.boards) - 1) % len(m.boards)
			m.table = m.createTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText(strings.ToUpper(m.Board().Title), m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the board list beside the table.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Boards\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, bd := range m.boards {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + bd.Title))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the current board name above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder
	b.WriteString(centerText(fmt.Sprintf("< %s >", m.Board().Title), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.table.Rows()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No games recorded yet.\nRun `gridiron sim` to play a season.")
	}
	return m.table.View()
}

// centerText pads text to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunScoreboard runs the scoreboard screen in the local terminal.
func RunScoreboard(standings []sim.Standing, leaders map[string][]sim.Leader, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(standings, leaders, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
