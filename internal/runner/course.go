package runner

import (
	"math/rand"

	"github.com/ametelin/tui-runner/internal/config"
	"github.com/ametelin/tui-runner/internal/core"
)

// Variant selects the obstacle shape.
type Variant int

const (
	VariantCrate Variant = iota
	VariantTall
	VariantSpinner
)

// Obstacle is a hazard scrolling toward the player.
type Obstacle struct {
	X            float64 // Left edge; fractional, moves at the current speed
	Variant      Variant
	Width        int
	Height       int
	Rotation     float64 // Spinner phase
	RotationRate float64 // Spinner phase advance per tick; 0 for static variants
}

// Rect returns the obstacle's collision box in screen coordinates.
// Obstacles sit on the ground.
func (o Obstacle) Rect(groundY int) core.Rect {
	return core.NewRect(int(o.X), groundY-o.Height, o.Width, o.Height)
}

// Coin is a collectible. Revive coins bank a revive token instead of points.
type Coin struct {
	X      float64
	Y      int // Screen row; coins do not fall
	Revive bool
}

// Rect returns the coin's collision box.
func (c Coin) Rect() core.Rect {
	return core.NewRect(int(c.X), c.Y, 1, 1)
}

// Course owns the obstacles and coins of a run: spawning, scrolling,
// off-screen culling, and overlap queries.
type Course struct {
	rng       *rand.Rand
	cfg       *config.GameConfig
	screenW   int
	groundY   int
	obstacles []Obstacle
	coins     []Coin
}

// NewCourse creates an empty course for the given screen.
func NewCourse(seed int64, screenW, groundY int, cfg *config.GameConfig) *Course {
	return &Course{
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg,
		screenW:   screenW,
		groundY:   groundY,
		obstacles: make([]Obstacle, 0, 8),
		coins:     make([]Coin, 0, 8),
	}
}

// Reset clears all entities and reseeds the RNG.
func (c *Course) Reset(seed int64) {
	c.obstacles = c.obstacles[:0]
	c.coins = c.coins[:0]
	c.rng = rand.New(rand.NewSource(seed))
}

// SetScreen updates the screen geometry after a resize.
func (c *Course) SetScreen(screenW, groundY int) {
	c.screenW = screenW
	c.groundY = groundY
}

// SpawnWave spawns exactly one obstacle at the right edge and, depending on
// chance, a coin positioned relative to it. When reviveEligible is true the
// coin may instead be a revive coin; the return value reports whether one
// was spawned so the caller can close the per-level window.
func (c *Course) SpawnWave(reviveEligible bool) (spawnedRevive bool) {
	o := c.spawnObstacle()

	if reviveEligible && c.rng.Float64() < c.cfg.Coins.ReviveChance {
		c.coins = append(c.coins, c.coinAbove(o, true))
		return true
	}
	if c.rng.Float64() < c.cfg.Coins.SpawnChance {
		c.coins = append(c.coins, c.coinAbove(o, false))
	}
	return false
}

// spawnObstacle picks a weighted variant and places it just off the right edge.
func (c *Course) spawnObstacle() Obstacle {
	oc := c.cfg.Obstacles
	total := oc.CrateWeight + oc.TallWeight + oc.SpinnerWeight
	if total <= 0 {
		total = 1
	}

	o := Obstacle{X: float64(c.screenW)}
	switch roll := c.rng.Intn(total); {
	case roll < oc.CrateWeight:
		o.Variant = VariantCrate
		o.Width, o.Height = oc.CrateSize.Width, oc.CrateSize.Height
	case roll < oc.CrateWeight+oc.TallWeight:
		o.Variant = VariantTall
		o.Width, o.Height = oc.TallSize.Width, oc.TallSize.Height
	default:
		o.Variant = VariantSpinner
		o.Width, o.Height = oc.SpinnerSize.Width, oc.SpinnerSize.Height
		o.RotationRate = oc.SpinnerRate
	}

	c.obstacles = append(c.obstacles, o)
	return o
}

// coinAbove places a coin near the top of the obstacle's bounding box with a
// small randomized vertical jitter. Tall variants get a larger offset so the
// coin stays reachable on a single jump arc.
func (c *Course) coinAbove(o Obstacle, revive bool) Coin {
	offset := c.cfg.Coins.Offset
	if o.Variant == VariantTall {
		offset = c.cfg.Coins.TallOffset
	}
	if c.cfg.Coins.Jitter > 0 {
		offset += c.rng.Intn(c.cfg.Coins.Jitter + 1)
	}

	return Coin{
		X:      o.X + float64(o.Width/2),
		Y:      c.groundY - o.Height - 1 - offset,
		Revive: revive,
	}
}

// Advance scrolls all entities left at the given speed and discards any that
// left the screen. Spinners advance their rotation phase.
func (c *Course) Advance(speed float64) {
	kept := c.obstacles[:0]
	for _, o := range c.obstacles {
		o.X -= speed
		o.Rotation += o.RotationRate
		if o.X+float64(o.Width) > 0 {
			kept = append(kept, o)
		}
	}
	c.obstacles = kept

	keptCoins := c.coins[:0]
	for _, coin := range c.coins {
		coin.X -= speed
		if coin.X+1 > 0 {
			keptCoins = append(keptCoins, coin)
		}
	}
	c.coins = keptCoins
}

// HitObstacle reports whether the player rect overlaps any obstacle.
func (c *Course) HitObstacle(player core.Rect) bool {
	for _, o := range c.obstacles {
		if player.Intersects(o.Rect(c.groundY)) {
			return true
		}
	}
	return false
}

// CollectCoins removes and returns all coins overlapping the player rect.
func (c *Course) CollectCoins(player core.Rect) []Coin {
	var collected []Coin
	kept := c.coins[:0]
	for _, coin := range c.coins {
		if player.Intersects(coin.Rect()) {
			collected = append(collected, coin)
		} else {
			kept = append(kept, coin)
		}
	}
	c.coins = kept
	return collected
}

// ClearAhead removes obstacles whose left edge is within the safety window
// ahead of x. Used when resuming from a revive so the player is not hit on
// the next tick.
func (c *Course) ClearAhead(x, window int) {
	kept := c.obstacles[:0]
	for _, o := range c.obstacles {
		if int(o.X) < x+window {
			continue
		}
		kept = append(kept, o)
	}
	c.obstacles = kept
}

// Obstacles returns the live obstacles, for rendering and tests.
func (c *Course) Obstacles() []Obstacle { return c.obstacles }

// Coins returns the live coins, for rendering and tests.
func (c *Course) Coins() []Coin { return c.coins }
