package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-jump/internal/config"
	"github.com/vovakirdan/space-jump/internal/core"
	"github.com/vovakirdan/space-jump/internal/registry"
)

// KeyHoldWindow is how long a terminal key press counts as held. Terminals
// only report presses; auto-repeat refreshes the hold while a key is down.
const KeyHoldWindow = 200 * time.Millisecond

// noticeDuration is how long a status notice replaces the help bar.
const noticeDuration = 3 * time.Second

// ConfigChangedMsg reports an edited configuration file.
type ConfigChangedMsg struct {
	Path string
}

// WatchErrorMsg reports a failure of the configuration watcher.
type WatchErrorMsg struct {
	Err error
}

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
)

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	hold      *core.KeyHold
	keyMapper *KeyMapper
	help      help.Model
	gameState core.GameState
	watcher   *config.Watcher
	logger    *log.Logger
	now       func() time.Time

	notice      string
	noticeUntil time.Time

	allowBack  bool // B returns to a menu instead of being ignored
	quitting   bool
	backToMenu bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithWatcher shows a notice whenever the watcher reports a changed config.
func WithWatcher(w *config.Watcher) ModelOption {
	return func(m *Model) { m.watcher = w }
}

// WithLogger sets the logger for host-side failures.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithBackToMenu lets B leave a paused or finished game.
func WithBackToMenu() ModelOption {
	return func(m *Model) { m.allowBack = true }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	km := NewKeyMapper()
	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config:    cfg,
		hold:      core.NewKeyHold(KeyHoldWindow),
		keyMapper: km,
		help:      help.New(),
		logger:    log.New(io.Discard),
		now:       time.Now,
	}
	m.help.Width = cfg.ScreenW
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// playHeight leaves the last row for the help bar.
func playHeight(h int) int {
	return max(1, h-1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.FPS), waitForConfig(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case ConfigChangedMsg:
		m.logger.Info("config changed", "path", msg.Path)
		m.setNotice(fmt.Sprintf("%s changed, applies on restart", filepath.Base(msg.Path)))
		return m, waitForConfig(m.watcher)

	case WatchErrorMsg:
		m.logger.Error("config watcher", "err", msg.Err)
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keyMapper.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		if !m.gameState.GameOver {
			m.game.TogglePause(m.now())
			m.gameState = m.game.State()
		}
		return m, nil

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.game.Reset(m.config)
			m.gameState = m.game.State()
			m.hold.Reset()
		}
		return m, nil

	case core.ActionBack:
		if m.allowBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
		}
		return m, nil
	}

	if k, ok := m.keyMapper.MapMovement(msg); ok {
		m.hold.Press(k, m.now())
	}
	return m, nil
}

// handleTick advances the game to now.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.game.Frame(now, m.hold.Snapshot(now))
	m.gameState = m.game.State()
	return m, tickCmd(m.config.FPS)
}

func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeUntil = m.now().Add(noticeDuration)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".spacejump", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	m.setNotice("screenshot saved to " + path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	if m.notice != "" && m.now().Before(m.noticeUntil) {
		return noticeStyle.Render(m.notice)
	}
	return helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// State returns the last observed game state.
func (m Model) State() core.GameState { return m.gameState }

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if the user requested to go back to the menu.
func (m Model) BackToMenu() bool { return m.backToMenu }

// waitForConfig blocks on the watcher until it reports something.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return ConfigChangedMsg{Path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return WatchErrorMsg{Err: err}
		}
	}
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
