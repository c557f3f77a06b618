// Package window is the desktop frontend. The ebiten implementation is only
// compiled with the 'ebiten' build tag; the default build carries a stub.
package window

import (
	"github.com/vovakirdan/geodash/internal/core"
	"github.com/vovakirdan/geodash/internal/games/geodash"
	"github.com/vovakirdan/geodash/internal/platform/sound"
)

// Options configures the window frontend.
type Options struct {
	Game       *geodash.Game
	Sound      *sound.System
	Title      string
	Width      int   // Initial window width in pixels
	Height     int   // Initial window height in pixels
	TickRate   int   // Simulation ticks per second
	Seed       int64 // RNG seed for particles and obstacles
	OnRunEnded func(score int)
}

// Buttons is the state of the physical inputs polled in one frame.
// Mouse click, touch, space and arrow-up all count as Primary.
type Buttons struct {
	Primary bool
	Start   bool // Enter
	Restart bool // R
	Quit    bool // Q or Escape
}

// Frame normalizes polled buttons into an input frame for the current phase.
func Frame(b Buttons, phase core.Phase) core.InputFrame {
	in := core.NewInputFrame()
	if b.Primary {
		in.SetPrimary(phase)
	}
	if b.Start && phase != core.PhasePlaying {
		in.Set(core.ActionStart)
	}
	if b.Restart {
		in.Set(core.ActionRestart)
	}
	if b.Quit {
		in.Set(core.ActionQuit)
	}
	return in
}
