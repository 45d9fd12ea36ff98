package runner

import "github.com/ametelin/tui-runner/internal/config"

// avatar holds the player's vertical motion state. The horizontal position
// is fixed; the world scrolls instead. Y is relative to the ground,
// negative is up.
type avatar struct {
	y            float64
	vel          float64
	grounded     bool
	doubleJumped bool
}

// reset puts the player back on the ground with no velocity.
func (a *avatar) reset() {
	a.y = 0
	a.vel = 0
	a.grounded = true
	a.doubleJumped = false
}

// jump applies the jump impulse when grounded, or the double-jump impulse
// once per airtime. Returns false if no jump was available.
func (a *avatar) jump(phys config.Physics) bool {
	if a.grounded {
		a.vel = phys.JumpImpulse
		a.grounded = false
		return true
	}
	if !a.doubleJumped {
		a.vel = phys.DoubleJumpImpulse
		a.doubleJumped = true
		return true
	}
	return false
}

// integrate advances gravity and ground collision by one tick.
// Double-jump eligibility resets on ground contact.
func (a *avatar) integrate(phys config.Physics) {
	if a.grounded {
		return
	}

	a.vel += phys.Gravity
	if a.vel > phys.MaxFallSpeed {
		a.vel = phys.MaxFallSpeed
	}
	a.y += a.vel

	if a.y >= 0 {
		a.y = 0
		a.vel = 0
		a.grounded = true
		a.doubleJumped = false
	}
}
