package geodash

import (
	"math/rand"

	"github.com/vovakirdan/geodash/internal/core"
)

// Burst sizes per event.
const (
	startBurst    = 10
	clearBurst    = 4
	recordBurst   = 6
	gameOverBurst = 16
)

// Particle is a short-lived cosmetic dot in world units.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Life   float64 // 1 at birth, removed at 0
	Decay  float64 // Subtracted from Life every update
	Color  core.Color
}

// Particles is a renderer-side effect system fed by engine events.
// The engine never reads it.
type Particles struct {
	items []Particle
	rng   *rand.Rand
}

// NewParticles creates an empty particle system.
func NewParticles(seed int64) *Particles {
	return &Particles{
		items: make([]Particle, 0, 32),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Apply spawns bursts for the given events. player is the current player,
// used as the origin for events without a position.
func (p *Particles) Apply(events []core.Event, player Player) {
	cx, cy := player.Center()
	for _, e := range events {
		switch ev := e.(type) {
		case core.RunStartedEvent:
			p.Burst(ev.X, ev.Y, startBurst, core.ColorPlayer)
		case core.ObstacleClearedEvent:
			p.Burst(player.X+player.Width, cy, clearBurst, core.ColorAccent)
		case core.HighScoreEvent:
			p.Burst(cx, player.Y, recordBurst, core.ColorParticle)
		case core.RunEndedEvent:
			p.Burst(ev.X, ev.Y, gameOverBurst, core.ColorObstacle)
		}
	}
}

// Burst emits count particles at (x, y) with random velocity and decay.
func (p *Particles) Burst(x, y float64, count int, c core.Color) {
	for i := 0; i < count; i++ {
		p.items = append(p.items, Particle{
			X:     x,
			Y:     y,
			VX:    (p.rng.Float64() - 0.5) * 6,
			VY:    (p.rng.Float64() - 0.5) * 6,
			Size:  p.rng.Float64()*3 + 1,
			Life:  1,
			Decay: p.rng.Float64()*0.02 + 0.01,
			Color: c,
		})
	}
}

// Update moves every particle one frame and drops the expired ones.
func (p *Particles) Update() {
	alive := p.items[:0]
	for _, it := range p.items {
		it.X += it.VX
		it.Y += it.VY
		it.Life -= it.Decay
		if it.Life > 0 {
			alive = append(alive, it)
		}
	}
	p.items = alive
}

// Items returns the live particles.
func (p *Particles) Items() []Particle {
	return p.items
}

// Len returns the number of live particles.
func (p *Particles) Len() int {
	return len(p.items)
}

// Clear removes every particle.
func (p *Particles) Clear() {
	p.items = p.items[:0]
}
