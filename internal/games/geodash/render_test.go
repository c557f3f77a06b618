package geodash

import (
	"strings"
	"testing"

	"github.com/vovakirdan/geodash/internal/core"
	"github.com/vovakirdan/geodash/internal/registry"
)

func TestRenderMenu(t *testing.T) {
	g := newTestGame(t, registry.Deps{})
	screen := core.NewScreen(100, 37)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "GEOMETRY DASH") {
		t.Errorf("menu render missing title:\n%s", out)
	}
	if !strings.Contains(out, "Best: 0") {
		t.Error("menu render missing best score")
	}
}

func TestRenderPlaying(t *testing.T) {
	g := newTestGame(t, registry.Deps{})
	g.Start()
	g.Tick()

	screen := core.NewScreen(100, 37)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}

	// Ground line at 480/600 of the height
	groundRow := 480 * 37 / 600
	if c := screen.GetCell(0, groundRow); c.Rune != GroundTopChar || c.Color != core.ColorGround {
		t.Errorf("ground cell = %+v", c)
	}

	// Player at x=100/800 of the width
	px := 100 * 100 / 800
	found := false
	for y := 0; y < screen.Height(); y++ {
		if c := screen.GetCell(px, y); c.Rune == PlayerChar && c.Color == core.ColorPlayer {
			found = true
		}
	}
	if !found {
		t.Error("player not drawn")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, registry.Deps{})
	g.Start()
	g.obstacles.add(leaver(g))
	g.Tick()
	g.obstacles.add(blocker(g))
	g.Tick()

	screen := core.NewScreen(100, 37)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Errorf("game over render missing title:\n%s", out)
	}
	if !strings.Contains(out, "Score: 10") {
		t.Error("game over render missing final score")
	}
}

func TestDrawSceneParticles(t *testing.T) {
	g := newTestGame(t, registry.Deps{})
	g.Start()

	screen := core.NewScreen(100, 37)
	parts := []Particle{{X: 400, Y: 80, Life: 1, Color: core.ColorParticle}}
	DrawScene(screen, g.Snapshot(), parts)

	if c := screen.GetCell(50, 4); c.Rune != ParticleChar {
		t.Errorf("particle cell = %+v, want %q", c, ParticleChar)
	}
}

func TestDrawSceneEmptyScreen(t *testing.T) {
	g := newTestGame(t, registry.Deps{})
	DrawScene(core.NewScreen(0, 0), g.Snapshot(), nil)
}

func TestShareMessage(t *testing.T) {
	if got := ShareMessage(120); got != "I scored 120 points in Geometry Dash!" {
		t.Errorf("ShareMessage() = %q", got)
	}
}
