//go:build ebiten

package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/geodash/internal/core"
	"github.com/vovakirdan/geodash/internal/games/geodash"
)

// ErrNotBuilt is returned by the stub build only.
var ErrNotBuilt = errors.New("window: frontend requires building with -tags ebiten")

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Game == nil {
		return errors.New("window: no game")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 800, 600
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}

	app := newApp(opts)

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(opts.TickRate)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// app adapts the engine to the ebiten.Game interface.
type app struct {
	opts      Options
	game      *geodash.Game
	particles *geodash.Particles
	width     int
	height    int
	touches   []ebiten.TouchID
}

func newApp(opts Options) *app {
	a := &app{
		opts:      opts,
		game:      opts.Game,
		particles: geodash.NewParticles(opts.Seed),
		width:     opts.Width,
		height:    opts.Height,
	}
	a.game.Reset(a.runtime())
	return a
}

func (a *app) runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:   a.width,
		ScreenH:   a.height,
		ViewportW: float64(a.width),
		ViewportH: float64(a.height),
		TickRate:  a.opts.TickRate,
		Seed:      a.opts.Seed,
	}
}

// poll collects clicks, taps and keys pressed since the previous frame.
func (a *app) poll() Buttons {
	a.touches = inpututil.AppendJustPressedTouchIDs(a.touches[:0])
	return Buttons{
		Primary: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
			len(a.touches) > 0,
		Start:   inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// Update handles per-frame logic and advances the simulation.
func (a *app) Update() error {
	in := Frame(a.poll(), a.game.State().Phase)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	res := a.game.Step(in)
	a.particles.Apply(res.Events, a.game.Snapshot().Player)
	a.particles.Update()
	a.opts.Sound.HandleEvents(res.Events)

	for _, e := range res.Events {
		if ev, ok := e.(core.RunEndedEvent); ok && a.opts.OnRunEnded != nil {
			a.opts.OnRunEnded(ev.Score)
		}
	}
	return nil
}

// Draw renders the current snapshot.
func (a *app) Draw(screen *ebiten.Image) {
	snap := a.game.Snapshot()
	screen.Fill(rgba(core.ColorSky, 255))

	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	sx := w / float32(snap.ViewportW)
	sy := h / float32(snap.ViewportH)

	fill := func(x, y, bw, bh float64, c color.Color) {
		vector.DrawFilledRect(screen, float32(x)*sx, float32(y)*sy, float32(bw)*sx, float32(bh)*sy, c, false)
	}

	fill(0, snap.GroundY, snap.ViewportW, snap.ViewportH-snap.GroundY, rgba(core.ColorGround, 255))
	for _, o := range snap.Obstacles {
		fill(o.X, o.Y, o.Width, o.Height, rgba(core.ColorObstacle, 255))
	}
	p := snap.Player
	fill(p.X, p.Y, p.Width, p.Height, rgba(core.ColorPlayer, 255))

	for _, pt := range a.particles.Items() {
		fill(pt.X, pt.Y, pt.Size, pt.Size, rgba(pt.Color, uint8(pt.Life*255)))
	}

	face := basicfont.Face7x13
	white := rgba(core.ColorHUD, 255)
	text.Draw(screen, fmt.Sprintf("Score: %d", snap.Score), face, 12, 20, white)
	text.Draw(screen, fmt.Sprintf("Best: %d", snap.HighScore), face, int(w)-100, 20, rgba(core.ColorAccent, 255))

	switch snap.Phase {
	case core.PhaseMenu:
		a.drawCentered(screen, "GEOMETRY DASH", "Click, tap or press SPACE to start")
	case core.PhaseGameOver:
		a.drawCentered(screen, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.HighScore),
			geodash.ShareMessage(snap.Score),
			"Click or SPACE to restart, Q to quit")
	}
}

func (a *app) drawCentered(screen *ebiten.Image, lines ...string) {
	face := basicfont.Face7x13
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	lineH := 20
	top := h/2 - len(lines)*lineH/2

	vector.DrawFilledRect(screen, float32(w/2-180), float32(top-24), 360, float32(len(lines)*lineH+24), color.RGBA{A: 180}, false)
	for i, l := range lines {
		x := w/2 - len(l)*7/2
		text.Draw(screen, l, face, x, top+i*lineH, rgba(core.ColorHUD, 255))
	}
}

// Layout tracks the window size; the viewport follows it from the next run.
func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.game.Resize(a.runtime())
	}
	return outsideWidth, outsideHeight
}

func rgba(c core.Color, alpha uint8) color.NRGBA {
	r, g, b := c.RGB()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}
