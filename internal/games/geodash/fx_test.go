package geodash

import (
	"testing"

	"github.com/vovakirdan/geodash/internal/core"
)

func TestParticlesBurstOnEvents(t *testing.T) {
	p := NewParticles(7)
	player := Player{X: 100, Y: 400, Width: 45, Height: 45}

	p.Apply([]core.Event{core.RunStartedEvent{X: 100, Y: 400}}, player)
	if p.Len() != startBurst {
		t.Fatalf("particles after start = %d, want %d", p.Len(), startBurst)
	}

	p.Apply([]core.Event{
		core.ObstacleClearedEvent{Score: 10},
		core.HighScoreEvent{HighScore: 10},
		core.JumpEvent{X: 1, Y: 2},
	}, player)
	if want := startBurst + clearBurst + recordBurst; p.Len() != want {
		t.Errorf("particles = %d, want %d", p.Len(), want)
	}

	for _, it := range p.Items() {
		if it.Life != 1 {
			t.Errorf("new particle life = %v, want 1", it.Life)
		}
		if it.Decay < 0.01 || it.Decay >= 0.03 {
			t.Errorf("decay %v out of range", it.Decay)
		}
	}
}

func TestParticlesExpire(t *testing.T) {
	p := NewParticles(1)
	p.Burst(0, 0, 20, core.ColorParticle)

	// Slowest decay is 0.01 per frame
	for i := 0; i < 101; i++ {
		p.Update()
	}
	if p.Len() != 0 {
		t.Errorf("%d particles still alive", p.Len())
	}
}

func TestParticlesClear(t *testing.T) {
	p := NewParticles(1)
	p.Burst(0, 0, 5, core.ColorParticle)
	p.Clear()
	if p.Len() != 0 {
		t.Errorf("Len() = %d after Clear", p.Len())
	}
}
