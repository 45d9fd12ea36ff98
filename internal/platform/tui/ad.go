package tui

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/lipgloss"
)

// adSpots are the fake advertisements shown between runs when ads are
// enabled. Purely a simulation; nothing is fetched from anywhere.
var adSpots = [][2]string{
	{"GOPHER COLA", "The only soda that compiles in under a second."},
	{"TURBO BOOTS 2000", "Jump twice as high. Refunds not included."},
	{"CRATE & BARREL-ROLL", "Premium obstacles, delivered daily."},
	{"NIGHT SHIFT ENERGY", "For runners who never stop running."},
}

// adBreak is a timed overlay shown after a run ends. It auto-dismisses when
// the countdown reaches zero.
type adBreak struct {
	headline  string
	body      string
	ticksLeft int
	tickRate  int
}

// newAdBreak picks a random spot and starts the countdown.
func newAdBreak(rng *rand.Rand, tickRate, seconds int) *adBreak {
	spot := adSpots[rng.Intn(len(adSpots))]
	return &adBreak{
		headline:  spot[0],
		body:      spot[1],
		ticksLeft: tickRate * seconds,
		tickRate:  tickRate,
	}
}

// tick advances the countdown and reports whether the break is over.
func (a *adBreak) tick() bool {
	if a.ticksLeft > 0 {
		a.ticksLeft--
	}
	return a.ticksLeft <= 0
}

var adBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(lipgloss.Color("11")).
	Padding(1, 3).
	Align(lipgloss.Center)

var adHeadlineStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("11"))

// view renders the ad centered on the screen.
func (a *adBreak) view(width, height int) string {
	secs := (a.ticksLeft + a.tickRate - 1) / a.tickRate
	footer := fmt.Sprintf("Ad ends in %ds...", secs)

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		adHeadlineStyle.Render(a.headline),
		"",
		a.body,
		"",
		footer,
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		adBoxStyle.Render(content))
}
