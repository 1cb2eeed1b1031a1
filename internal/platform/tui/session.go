package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-jump/internal/core"
	"github.com/vovakirdan/space-jump/internal/ranking"
	"github.com/vovakirdan/space-jump/internal/registry"
)

// Launcher builds games with the collaborators of one terminal session.
type Launcher struct {
	Boards     *ranking.Boards // nil keeps scores in memory per game
	Audio      core.Audio
	Logger     *log.Logger
	ConfigPath string
	Difficulty string
}

// NewGame creates the game registered as id.
func (l Launcher) NewGame(id string) (registry.Game, error) {
	env := registry.Env{
		Audio:      l.Audio,
		Logger:     l.Logger,
		ConfigPath: l.ConfigPath,
		Difficulty: l.Difficulty,
	}
	if l.Boards != nil {
		env.Ranking = l.Boards.For(id)
	}
	return registry.Create(id, env)
}

// Best returns the best known score of a mode.
func (l Launcher) Best(id string) int {
	if l.Boards == nil {
		return 0
	}
	return l.Boards.Best(id)
}

// PlayerBest returns the local player's best score of a mode.
func (l Launcher) PlayerBest(id string) int {
	if l.Boards == nil {
		return 0
	}
	return l.Boards.PlayerBest(id)
}

// Scores returns the score source for the scoreboard, or nil.
func (l Launcher) Scores() ScoreSource {
	if l.Boards == nil {
		return nil
	}
	return l.Boards
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu, game, scoreboard.
// It is the top-level model of SSH sessions and of the menu command.
type SessionModel struct {
	launcher   Launcher
	config     core.RuntimeConfig
	modelOpts  []ModelOption
	screen     sessionScreen
	menu       MenuModel
	gameModel  Model
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(l Launcher, cfg core.RuntimeConfig, opts ...ModelOption) SessionModel {
	return SessionModel{
		launcher:  l,
		config:    cfg,
		modelOpts: append([]ModelOption{WithBackToMenu(), WithLogger(l.Logger)}, opts...),
		menu:      NewMenuModel(cfg, l),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode. The menu ends its own
// program on selection, so its commands are dropped when switching screens.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.screen = screenScores
		m.scoreboard = NewScoreboardModel(m.launcher.Scores(), m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		game, err := m.launcher.NewGame(m.menu.Selected().GameID)
		if err != nil {
			if m.launcher.Logger != nil {
				m.launcher.Logger.Error("cannot create game", "err", err)
			}
			m.menu = NewMenuModel(m.config, m.launcher)
			return m, nil
		}
		m.gameModel = NewModel(game, m.config, m.modelOpts...)
		m.screen = screenGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.gameModel.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.config, m.launcher)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu, games and scoreboard in one program.
func RunSession(l Launcher, cfg core.RuntimeConfig, opts ...ModelOption) error {
	p := tea.NewProgram(NewSessionModel(l, cfg, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
