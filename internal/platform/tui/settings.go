package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ametelin/tui-runner/internal/runner"
	"github.com/ametelin/tui-runner/internal/storage"
)

// maxUsernameLen bounds the username stored in the leaderboard.
const maxUsernameLen = 16

// settings rows, top to bottom.
const (
	settingRowUsername = iota
	settingRowAds
	settingRowSkin
	settingRowLayout
	settingRowSave
	settingRowCount
)

// SettingsModel is the Bubble Tea model for the settings screen.
type SettingsModel struct {
	store     *storage.Store
	input     textinput.Model
	cursor    int
	editing   bool
	prefs     Prefs
	saved     Prefs // last persisted state, for rename detection
	width     int
	height    int
	status    string
	quitting  bool
	goingBack bool
}

// NewSettingsModel creates a settings model seeded from the store.
func NewSettingsModel(store *storage.Store, width, height int) SettingsModel {
	prefs := LoadPrefs(store)

	ti := textinput.New()
	ti.Placeholder = "player"
	ti.CharLimit = maxUsernameLen
	ti.Width = maxUsernameLen + 2
	ti.SetValue(prefs.Username)

	return SettingsModel{
		store:  store,
		input:  ti,
		prefs:  prefs,
		saved:  prefs,
		width:  width,
		height: height,
	}
}

// Init initializes the settings model.
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings screen.
func (m SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m SettingsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While editing the username, most keys go to the text input.
	if m.editing {
		switch msg.String() {
		case "enter":
			m.editing = false
			m.input.Blur()
			m.prefs.Username = m.sanitizedUsername()
			m.input.SetValue(m.prefs.Username)
			return m, nil
		case "esc":
			m.editing = false
			m.input.Blur()
			m.input.SetValue(m.prefs.Username)
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "esc", "b":
		m.goingBack = true
		return m, tea.Quit

	case "up", "k", "w":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j", "s":
		if m.cursor < settingRowCount-1 {
			m.cursor++
		}

	case "enter", " ", "left", "right", "h", "l":
		return m.activate()
	}

	return m, nil
}

// activate toggles or edits the row under the cursor.
func (m SettingsModel) activate() (tea.Model, tea.Cmd) {
	m.status = ""

	switch m.cursor {
	case settingRowUsername:
		m.editing = true
		return m, m.input.Focus()

	case settingRowAds:
		m.prefs.AdsEnabled = !m.prefs.AdsEnabled

	case settingRowSkin:
		if m.prefs.Skin == string(runner.SkinGopher) {
			m.prefs.Skin = string(runner.SkinRobot)
		} else {
			m.prefs.Skin = string(runner.SkinGopher)
		}

	case settingRowLayout:
		if m.prefs.Layout == "wide" {
			m.prefs.Layout = "compact"
		} else {
			m.prefs.Layout = "wide"
		}

	case settingRowSave:
		m.save()
	}

	return m, nil
}

// sanitizedUsername trims and bounds the typed username, falling back to
// the previous value when the field is emptied.
func (m SettingsModel) sanitizedUsername() string {
	name := strings.TrimSpace(m.input.Value())
	if name == "" {
		return m.prefs.Username
	}
	if len(name) > maxUsernameLen {
		name = name[:maxUsernameLen]
	}
	return name
}

// save persists the preferences. Renaming also rewrites the player's
// existing leaderboard entries.
func (m *SettingsModel) save() {
	if m.store == nil {
		m.status = "No store available"
		return
	}

	if err := m.store.SetPref(storage.PrefUsername, m.prefs.Username); err != nil {
		m.status = fmt.Sprintf("Save failed: %v", err)
		return
	}
	if m.prefs.Username != m.saved.Username {
		//nolint:errcheck // Rename is best-effort; prefs already saved
		m.store.RenameUser(m.saved.Username, m.prefs.Username)
	}

	//nolint:errcheck
	m.store.SetBoolPref(storage.PrefAdsEnabled, m.prefs.AdsEnabled)
	//nolint:errcheck
	m.store.SetPref(storage.PrefSkin, m.prefs.Skin)
	//nolint:errcheck
	m.store.SetPref(storage.PrefLayout, m.prefs.Layout)

	m.saved = m.prefs
	m.status = "Saved"
}

// View renders the settings screen.
func (m SettingsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("SETTINGS", m.width)))
	b.WriteString("\n\n")

	rows := []string{
		m.usernameRow(),
		m.toggleRow("Ads", onOff(m.prefs.AdsEnabled)),
		m.toggleRow("Skin", m.prefs.Skin),
		m.toggleRow("Layout", m.prefs.Layout),
		"Save",
	}

	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+row, m.width))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.status, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Toggle/Edit  |  Esc: Back  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// usernameRow renders the username row, live when editing.
func (m SettingsModel) usernameRow() string {
	if m.editing {
		return fmt.Sprintf("Username: %s", m.input.View())
	}
	return fmt.Sprintf("Username: %s", m.prefs.Username)
}

func (m SettingsModel) toggleRow(label, value string) string {
	return fmt.Sprintf("%s: < %s >", label, value)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// IsGoingBack returns true if user wants to go back to menu.
func (m SettingsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m SettingsModel) IsQuitting() bool {
	return m.quitting
}

// RunSettings runs the settings screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunSettings(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewSettingsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(SettingsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
