package runner

import (
	"fmt"

	"github.com/ametelin/tui-runner/internal/core"
)

// Skin selects the player's cosmetic sprite.
type Skin string

const (
	SkinGopher Skin = "gopher"
	SkinRobot  Skin = "robot"
)

// Visual characters for rendering.
const (
	GroundChar = '═'
	CrateChar  = '▓'
	TallChar   = '█'
	CoinChar   = '●'
	ReviveChar = '♥'
	GopherBody = '█'
	GopherHead = '◉'
	RobotBody  = '▒'
	RobotHead  = '◇'
	LegLeft    = '╱'
	LegRight   = '╲'
)

// spinnerFrames is the rotation animation cycle for spinner obstacles.
var spinnerFrames = []rune{'─', '╲', '│', '╱'}

// Render draws the current run state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawHLine(0, g.groundY, dst.Width(), GroundChar, core.ColorGray)

	for _, o := range g.course.Obstacles() {
		g.drawObstacle(dst, o)
	}
	for _, c := range g.course.Coins() {
		if c.Revive {
			dst.SetCell(int(c.X), c.Y, ReviveChar, core.ColorMagenta)
		} else {
			dst.SetCell(int(c.X), c.Y, CoinChar, core.ColorBrightYellow)
		}
	}

	g.drawPlayer(dst)
	g.drawHUD(dst)

	switch {
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.awaitingRevive:
		g.drawCenteredMessage(dst, "CRASHED", "Press Enter to use your revive")
	case g.gameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawObstacle renders a single obstacle at its ground-anchored position.
func (g *Game) drawObstacle(dst *core.Screen, o Obstacle) {
	r := o.Rect(g.groundY)

	switch o.Variant {
	case VariantSpinner:
		frame := spinnerFrames[int(o.Rotation)%len(spinnerFrames)]
		dst.DrawRect(r, frame, core.ColorBrightCyan)
	case VariantTall:
		dst.DrawRect(r, TallChar, core.ColorRed)
	default:
		dst.DrawRect(r, CrateChar, core.ColorYellow)
	}
}

// drawPlayer renders the 3x3 player sprite with a simple run cycle.
func (g *Game) drawPlayer(dst *core.Screen) {
	baseY := g.groundY - g.cfg.Player.Height - int(-g.player.y)
	x := g.cfg.Player.X

	body, head := GopherBody, GopherHead
	color := core.ColorGreen
	if g.skin == SkinRobot {
		body, head = RobotBody, RobotHead
		color = core.ColorCyan
	}

	dst.SetCell(x+1, baseY, head, color)
	dst.SetCell(x+2, baseY, body, color)

	dst.SetCell(x, baseY+1, body, color)
	dst.SetCell(x+1, baseY+1, body, color)
	dst.SetCell(x+2, baseY+1, body, color)

	if g.player.grounded {
		if g.legFrame < 5 {
			dst.SetCell(x, baseY+2, LegLeft, color)
			dst.SetCell(x+2, baseY+2, LegRight, color)
		} else {
			dst.SetCell(x+1, baseY+2, LegLeft, color)
			dst.SetCell(x+2, baseY+2, LegRight, color)
		}
	} else {
		// Airborne - legs tucked
		dst.SetCell(x, baseY+2, LegLeft, color)
		dst.SetCell(x+1, baseY+2, LegRight, color)
	}
}

// drawHUD renders score, level, speed, and the revive token indicator.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	dst.DrawText(20, 0, fmt.Sprintf(" Level: %d ", g.prog.Level()))

	speedText := fmt.Sprintf(" Spd: %.2f ", g.prog.Speed())
	dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText)

	if g.reviveHeld {
		dst.DrawTextColored(2, 1, "♥ revive", core.ColorMagenta)
	}
}

// drawCenteredMessage draws a boxed two-line message in the screen center.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
