package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-jump/internal/ranking"
	"github.com/vovakirdan/space-jump/internal/registry"
	"github.com/vovakirdan/space-jump/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 24
	maxScores          = ranking.DefaultLimit
	unsavedMark        = "unsaved"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreSource feeds the scoreboard. Entries with a zero ID have not reached
// the store yet.
type ScoreSource interface {
	Top(gameID string, n int) []storage.ScoreEntry
	Summary(gameID string) ranking.Summary
	Player() string
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Back, k.Quit},
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
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the top scores of one mode at a time, with the
// mode's stats beside them. Rows of the local player are starred.
type ScoreboardModel struct {
	modes   []registry.GameInfo
	cursor  int
	source  ScoreSource // may be nil
	player  string
	scores  []storage.ScoreEntry
	summary ranking.Summary

	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard over every registered mode.
func NewScoreboardModel(source ScoreSource, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		source: source,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	if source != nil {
		m.player = source.Player()
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) wide() bool { return m.width >= minWidthForSidebar }

func (m ScoreboardModel) newTable() table.Model {
	playerW := 14
	avail := m.width - 8
	if m.wide() {
		avail -= sidebarWidth + 4
	}
	if avail > 54 {
		playerW = min(24, avail-40)
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Player", Width: playerW},
			{Title: "Score", Width: 7},
			{Title: "When", Width: 12},
			{Title: "", Width: len(unsavedMark)},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, min(maxScores+1, m.height-9))),
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

// load fetches the board of the selected mode.
func (m *ScoreboardModel) load() {
	m.scores, m.summary = nil, ranking.Summary{}
	if m.source != nil && len(m.modes) > 0 {
		id := m.modes[m.cursor].ID
		m.scores = m.source.Top(id, maxScores)
		m.summary = m.source.Summary(id)
	}
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

func (m ScoreboardModel) rows() []table.Row {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		name := s.Player
		if name == m.player {
			name = "* " + name
		}
		mark := ""
		if s.ID == 0 {
			mark = unsavedMark
		}
		rows[i] = table.Row{
			fmt.Sprint(i + 1),
			name,
			fmt.Sprint(s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
			mark,
		}
	}
	return rows
}

func (m *ScoreboardModel) step(delta int) {
	if len(m.modes) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.modes)) % len(m.modes)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.table.SetRows(m.rows())
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.modes) > 0 {
		title += " - " + m.modes[m.cursor].Title
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	board := panelStyle.Render(m.boardContent())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", board))
	} else {
		b.WriteString(centerText(m.modeLine(), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(strings.Join(m.statLines(), "  ")), m.width))
		b.WriteString("\n")
		b.WriteString(board)
	}

	b.WriteString("\n")
	if m.player != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("* %s   %s: not stored yet", m.player, unsavedMark)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// sidebar lists the modes above the stats of the selected one.
func (m ScoreboardModel) sidebar() string {
	var s strings.Builder
	for i, g := range m.modes {
		line := "  " + g.Title
		if i == m.cursor {
			line = selectedStyle.Render("> " + g.Title)
		}
		s.WriteString(line)
		s.WriteString("\n")
	}
	s.WriteString("\n")
	s.WriteString(strings.Join(m.statLines(), "\n"))

	return panelStyle.Width(sidebarWidth).Render(s.String())
}

// modeLine shows the selected mode between arrows on narrow screens.
func (m ScoreboardModel) modeLine() string {
	if len(m.modes) == 0 {
		return ""
	}
	return selectedStyle.Render(fmt.Sprintf("< %s >", m.modes[m.cursor].Title))
}

func (m ScoreboardModel) statLines() []string {
	s := m.summary
	lines := []string{
		fmt.Sprintf("Best      %d", s.HighScore),
		fmt.Sprintf("Yours     %d", s.PlayerBest),
		fmt.Sprintf("Sessions  %d", s.GamesCount),
		fmt.Sprintf("Players   %d", s.Players),
		fmt.Sprintf("Average   %.0f", s.AvgScore),
	}
	if s.Unsaved > 0 {
		lines = append(lines, fmt.Sprintf("Unsaved   %d", s.Unsaved))
	}
	return lines
}

func (m ScoreboardModel) boardContent() string {
	if len(m.scores) == 0 {
		return dimStyle.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nJump higher to set one!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
