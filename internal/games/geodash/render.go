package geodash

import (
	"fmt"
	"math"

	"github.com/vovakirdan/geodash/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '█'
	ObstacleChar  = '▓'
	GroundChar    = '░'
	GroundTopChar = '═'
	ParticleChar  = '•'
	FadedChar     = '·'
)

// Render draws the current game state without particles.
func (g *Game) Render(dst *core.Screen) {
	DrawScene(dst, g.Snapshot(), nil)
}

// ShareMessage is the text offered to the player after a run.
func ShareMessage(score int) string {
	return fmt.Sprintf("I scored %d points in Geometry Dash!", score)
}

// DrawScene renders a snapshot and particles into dst, scaling world units to cells.
func DrawScene(dst *core.Screen, snap Snapshot, particles []Particle) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || snap.ViewportW <= 0 || snap.ViewportH <= 0 {
		return
	}
	v := newView(dst, snap)

	// Ground
	groundRow := v.row(snap.GroundY)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundTopChar, core.ColorGround)
	dst.FillRect(core.NewRect(0, groundRow+1, dst.Width(), dst.Height()-groundRow-1), GroundChar, core.ColorGround)

	for _, o := range snap.Obstacles {
		dst.FillRect(v.rect(o.X, o.Y, o.Width, o.Height), ObstacleChar, core.ColorObstacle)
	}

	p := snap.Player
	dst.FillRect(v.rect(p.X, p.Y, p.Width, p.Height), PlayerChar, core.ColorPlayer)

	for _, pt := range particles {
		ch := ParticleChar
		if pt.Life < 0.4 {
			ch = FadedChar
		}
		dst.SetColored(v.col(pt.X), v.row(pt.Y), ch, pt.Color)
	}

	drawHUD(dst, snap)

	switch snap.Phase {
	case core.PhaseMenu:
		drawMessage(dst, core.ColorAccent, "GEOMETRY DASH",
			"SPACE / click to start",
			fmt.Sprintf("Best: %d", snap.HighScore))
	case core.PhaseGameOver:
		drawMessage(dst, core.ColorPlayer, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Best: %d", snap.Score, snap.HighScore),
			"SPACE / R to restart  |  Q to quit")
	}
}

// drawHUD writes score and best on the top row.
func drawHUD(dst *core.Screen, snap Snapshot) {
	scoreText := fmt.Sprintf(" Score: %d ", snap.Score)
	dst.DrawTextColored(1, 0, scoreText, core.ColorHUD)

	bestText := fmt.Sprintf(" Best: %d ", snap.HighScore)
	dst.DrawTextColored(dst.Width()-len(bestText)-1, 0, bestText, core.ColorAccent)

	// Show speed if progression is enabled
	if snap.RampEnabled && snap.Phase == core.PhasePlaying {
		dst.DrawTextCentered(0, fmt.Sprintf(" Spd: %.1f ", snap.Speed), core.ColorDim)
	}
}

// drawMessage draws a bordered message box in the center of the screen.
func drawMessage(dst *core.Screen, titleColor core.Color, title string, lines ...string) {
	w := len([]rune(title))
	for _, l := range lines {
		w = core.Max(w, len([]rune(l)))
	}
	boxW := w + 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorHUD)

	dst.DrawTextCentered(boxY+1, title, titleColor)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l, core.ColorHUD)
	}
}

// view maps world coordinates onto screen cells.
type view struct {
	sx, sy float64
}

func newView(dst *core.Screen, snap Snapshot) view {
	return view{
		sx: float64(dst.Width()) / snap.ViewportW,
		sy: float64(dst.Height()) / snap.ViewportH,
	}
}

func (v view) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v view) row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// rect converts a world box to cells, never shrinking a visible box to nothing.
func (v view) rect(x, y, w, h float64) core.Rect {
	x0, y0 := v.col(x), v.row(y)
	x1 := int(math.Ceil((x + w) * v.sx))
	y1 := int(math.Ceil((y + h) * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
