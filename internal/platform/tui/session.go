package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ametelin/tui-runner/internal/config"
	"github.com/ametelin/tui-runner/internal/core"
	"github.com/ametelin/tui-runner/internal/runner"
	"github.com/ametelin/tui-runner/internal/storage"
)

// sessionPhase is the screen currently shown in an SSH session.
type sessionPhase int

const (
	phaseMenu sessionPhase = iota
	phaseGame
	phaseScores
	phaseSettings
	phaseStats
)

// SessionModel manages the full session flow over SSH: the menu and the
// screens reachable from it, in a single Bubble Tea program. Child models
// signal quit/back through flags; their tea.Quit commands are swallowed
// here so a "back" never kills the SSH session.
type SessionModel struct {
	store    *storage.Store
	gameCfg  *config.GameConfig
	config   core.RuntimeConfig
	phase    sessionPhase
	menu     MenuModel
	game     *Model
	scores   *ScoreboardModel
	settings *SettingsModel
	stats    *StatsModel
	quitting bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(store *storage.Store, gameCfg *config.GameConfig, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		store:   store,
		gameCfg: gameCfg,
		config:  cfg,
		menu:    NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track window size globally so phase switches use current geometry
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.phase {
	case phaseGame:
		return m.updateGame(msg)
	case phaseScores:
		return m.updateScores(msg)
	case phaseSettings:
		return m.updateSettings(msg)
	case phaseStats:
		return m.updateStats(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates while the menu is shown.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case MenuChoicePlay:
		m.config = m.menu.Config()
		prefs := LoadPrefs(m.store)

		game := runner.New(*m.gameCfg)
		game.SetSkin(prefs.PlayerSkin())

		gm := NewModel(game, m.store, prefs, m.config)
		m.game = &gm
		m.phase = phaseGame
		return m, m.game.Init()

	case MenuChoiceLeaderboard:
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scores = &sb
		m.phase = phaseScores
		return m, m.scores.Init()

	case MenuChoiceSettings:
		st := NewSettingsModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.settings = &st
		m.phase = phaseSettings
		return m, m.settings.Init()

	case MenuChoiceStats:
		st := NewStatsModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.stats = &st
		m.phase = phaseStats
		return m, m.stats.Init()
	}

	return m, cmd
}

// backToMenu rebuilds the menu so it shows fresh store state.
func (m *SessionModel) backToMenu() tea.Cmd {
	m.phase = phaseMenu
	m.game = nil
	m.scores = nil
	m.settings = nil
	m.stats = nil
	m.menu = NewMenuModel(m.store, m.config)
	return m.menu.Init()
}

// updateGame handles updates while a run is in progress.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		return m, m.backToMenu()
	}
	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = &sb
	}

	if m.scores.IsGoingBack() {
		return m, m.backToMenu()
	}
	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m SessionModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.settings.Update(msg)
	if st, ok := newModel.(SettingsModel); ok {
		m.settings = &st
	}

	if m.settings.IsGoingBack() {
		return m, m.backToMenu()
	}
	if m.settings.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m SessionModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.stats.Update(msg)
	if st, ok := newModel.(StatsModel); ok {
		m.stats = &st
	}

	if m.stats.IsGoingBack() {
		return m, m.backToMenu()
	}
	if m.stats.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current phase.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseGame:
		return m.game.View()
	case phaseScores:
		return m.scores.View()
	case phaseSettings:
		return m.settings.View()
	case phaseStats:
		return m.stats.View()
	default:
		return m.menu.View()
	}
}
