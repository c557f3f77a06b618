package geodash

import (
	"github.com/vovakirdan/geodash/internal/config"
	"github.com/vovakirdan/geodash/internal/core"
)

// Player is the square the user controls. X and the size never change during a run.
type Player struct {
	X, Y          float64 // Top-left corner in world units
	VelocityY     float64 // Positive = falling
	Width, Height float64
	Jumping       bool
}

// newPlayer places a fresh player StartOffset units above the viewport bottom.
func newPlayer(cfg config.Player, viewportH float64) Player {
	return Player{
		X:      cfg.X,
		Y:      viewportH - cfg.StartOffset,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}

// Box returns the collision box of the player.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Center returns the midpoint of the player box.
func (p Player) Center() (x, y float64) {
	return p.X + p.Width/2, p.Y + p.Height/2
}

// jump applies the impulse unless a jump is already in progress.
func (p *Player) jump(impulse float64) bool {
	if p.Jumping {
		return false
	}
	p.VelocityY = impulse
	p.Jumping = true
	return true
}

// integrate applies one tick of gravity and the ground clamp.
func (p *Player) integrate(gravity, groundY float64) {
	p.VelocityY += gravity
	p.Y += p.VelocityY

	if p.Y+p.Height > groundY {
		p.Y = groundY - p.Height
		p.VelocityY = 0
		p.Jumping = false
	}
}
