package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ametelin/tui-runner/internal/storage"
)

// StatsModel is the Bubble Tea model for the statistics screen.
type StatsModel struct {
	stats     storage.Stats
	loadErr   error
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewStatsModel creates a stats model with a snapshot from the store.
func NewStatsModel(store *storage.Store, width, height int) StatsModel {
	m := StatsModel{width: width, height: height}
	if store == nil {
		return m
	}
	if stats, err := store.GetStats(); err != nil {
		m.loadErr = err
	} else {
		m.stats = *stats
	}
	return m
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "esc", "b", "enter":
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText("STATISTICS", m.width)))
	b.WriteString("\n\n")

	if m.loadErr != nil {
		b.WriteString(centerText("Could not load statistics", m.width))
		b.WriteString("\n")
	} else {
		lastPlayed := "never"
		if !m.stats.LastPlayed.IsZero() {
			lastPlayed = m.stats.LastPlayed.Format("Jan 02 2006 15:04")
		}

		rows := []string{
			fmt.Sprintf("Games played:  %d", m.stats.GamesPlayed),
			fmt.Sprintf("High score:    %d", m.stats.HighScore),
			fmt.Sprintf("Average score: %.1f", m.stats.AvgScore),
			fmt.Sprintf("Ads viewed:    %d", m.stats.AdsViewed),
			fmt.Sprintf("Last played:   %s", lastPlayed),
		}
		for _, row := range rows {
			b.WriteString(centerText(row, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText("Esc: Back  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m StatsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}

// RunStats runs the statistics screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunStats(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewStatsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(StatsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
