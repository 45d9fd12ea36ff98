package tui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ametelin/tui-runner/internal/core"
	"github.com/ametelin/tui-runner/internal/storage"
)

// adBreakSeconds is how long the between-runs ad overlay stays up.
const adBreakSeconds = 3

// Game is the capability set the platform needs from a game. The runner
// implements it; the platform never depends on game internals.
type Game interface {
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	prefs      Prefs
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	rng        *rand.Rand
	ad         *adBreak
	scoreSaved bool
	newRecord  bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game Game, store *storage.Store, prefs Prefs, cfg core.RuntimeConfig) Model {
	// Use a time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		prefs:      prefs,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and advances the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// The ad break swallows all game input; it dismisses on its own timer.
	if m.ad != nil {
		return m, nil
	}

	switch action {
	case core.ActionJump, core.ActionPause, core.ActionRevive:
		m.inputFrame.Set(action)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Mid-run resizes restart the run with the new geometry
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.ad != nil {
		if m.ad.tick() {
			m.ad = nil
		}
		return m, tickCmd(m.config.TickRate)
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.newRecord = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.persistRun()
		m.scoreSaved = true

		if m.prefs.AdsEnabled {
			m.ad = newAdBreak(m.rng, m.config.TickRate, adBreakSeconds)
			if m.store != nil {
				//nolint:errcheck // Best-effort counter
				m.store.IncrementCounter(storage.PrefAdsViewed)
			}
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// persistRun checkpoints the finished run: leaderboard entry when the score
// qualifies, high score, and the games-played counter. Best-effort; the
// game over screen shows regardless.
func (m *Model) persistRun() {
	if m.store == nil {
		return
	}

	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save
		m.store.SaveRun(m.prefs.Username, m.gameState.Score, m.gameState.Level)
	}
	if record, err := m.store.UpdateHighScore(m.gameState.Score); err == nil {
		m.newRecord = record
	}
	//nolint:errcheck // Best-effort counter
	m.store.IncrementCounter(storage.PrefGamesPlayed)
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	if m.ad != nil {
		return m.ad.view(m.config.ScreenW, m.config.ScreenH)
	}

	m.game.Render(m.screen)

	if m.gameState.GameOver && m.newRecord {
		m.screen.DrawTextCentered(2, "★ NEW HIGH SCORE ★")
	}
	if !m.prefs.Compact() {
		m.screen.DrawText(2, m.screen.Height()-1,
			"Space: Jump  |  P: Pause  |  R: Restart  |  Q: Quit")
	}

	return RenderScreen(m.screen)
}

// IsQuitting reports whether the user asked to leave the game.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the given game.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, LoadPrefs(store), cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
