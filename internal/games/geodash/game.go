// Package geodash implements a Geometry Dash-style runner.
// A square jumps over blocks scrolling in from the right; every block that
// leaves the screen is worth points and the run ends on the first touch.
package geodash

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geodash/internal/config"
	"github.com/vovakirdan/geodash/internal/core"
	"github.com/vovakirdan/geodash/internal/registry"
)

// Registered variant IDs.
const (
	GameID        = "geodash"
	ClassicGameID = "geodash_classic"
)

// TickResult reports what a single Tick did.
type TickResult int

const (
	TickSkipped  TickResult = iota // Not playing; nothing changed
	TickAdvanced                   // Simulation advanced one step
	TickCollided                   // The player hit an obstacle and the run ended
)

// String returns a human-readable name for the result.
func (r TickResult) String() string {
	switch r {
	case TickSkipped:
		return "skipped"
	case TickAdvanced:
		return "advanced"
	case TickCollided:
		return "collided"
	default:
		return "unknown"
	}
}

// Game is the simulation engine. It owns every mutable entity of a run and
// is not safe for concurrent use; the platform drives it from one goroutine.
type Game struct {
	id    string
	title string
	cfg   config.GeoDashConfig

	runtime core.RuntimeConfig
	pending *core.RuntimeConfig // Viewport change waiting for the next run start

	phase      core.Phase
	player     Player
	obstacles  *ObstacleManager
	difficulty *config.DifficultyManager
	score      int
	highScore  int
	groundY    float64
	tick       uint64 // Ticks since the current run started
	events     []core.Event

	scores   core.ScoreStore
	notifier core.Notifier
	logger   *log.Logger
	userID   string
}

// New creates an engine in the Menu phase. The high score is read from
// deps.Scores once; an invalid deps.Config falls back to the defaults.
func New(id, title string, deps registry.Deps) *Game {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := deps.Config
	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid game config, using defaults", "game", id, "error", err)
		cfg = config.DefaultGeoDashConfig()
	}

	g := &Game{
		id:       id,
		title:    title,
		cfg:      cfg,
		scores:   deps.Scores,
		notifier: deps.Notifier,
		logger:   logger,
		userID:   deps.UserID,
	}
	g.difficulty = config.NewDifficultyManager(cfg)
	g.obstacles = NewObstacleManager(0, cfg.Obstacles, g.difficulty)
	g.highScore = g.loadHighScore()
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Config returns the configuration the engine runs with.
func (g *Game) Config() config.GeoDashConfig {
	return g.cfg
}

// Reset returns to the menu with fresh run entities. The high score survives.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = g.viewport(runtime)
	g.pending = nil
	g.obstacles.Reset(g.runtime.Seed, g.runtime.ViewportW, g.runtime.ViewportH-g.cfg.Ground.Height)
	g.resetRun()
	g.phase = core.PhaseMenu
}

// Resize records a new viewport. It takes effect when the next run starts
// so that a run in progress keeps its geometry.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	r := g.viewport(runtime)
	r.Seed = g.runtime.Seed
	g.pending = &r
}

// viewport fills in world dimensions derived from the screen size when unset.
func (g *Game) viewport(r core.RuntimeConfig) core.RuntimeConfig {
	if r.ViewportW <= 0 {
		r.ViewportW = float64(r.ScreenW) * g.cfg.Render.CellWidth
	}
	if r.ViewportH <= 0 {
		r.ViewportH = float64(r.ScreenH) * g.cfg.Render.CellHeight
	}
	return r
}

// resetRun reinitializes player, obstacles, score and difficulty.
func (g *Game) resetRun() {
	if g.pending != nil {
		g.runtime = *g.pending
		g.pending = nil
	}
	g.groundY = g.runtime.ViewportH - g.cfg.Ground.Height
	g.player = newPlayer(g.cfg.Player, g.runtime.ViewportH)
	g.obstacles.Clear(g.runtime.ViewportW, g.groundY)
	g.difficulty.Reset()
	g.score = 0
	g.tick = 0
}

// Start begins a run. It is a no-op returning false while a run is in progress.
func (g *Game) Start() bool {
	if g.phase == core.PhasePlaying {
		return false
	}

	g.resetRun()
	g.phase = core.PhasePlaying

	x, y := g.player.X, g.player.Y
	g.emit(core.RunStartedEvent{X: x, Y: y})
	return true
}

// Restart resets the engine and immediately starts a new run.
func (g *Game) Restart() bool {
	runtime := g.runtime
	if g.pending != nil {
		runtime = *g.pending
	}
	g.Reset(runtime)
	return g.Start()
}

// Jump starts a jump. It only acts while playing and not already jumping.
func (g *Game) Jump() bool {
	if g.phase != core.PhasePlaying {
		return false
	}
	if !g.player.jump(g.cfg.Physics.JumpImpulse) {
		return false
	}
	x, y := g.player.Center()
	g.emit(core.JumpEvent{X: x, Y: y})
	return true
}

// Tick advances the running simulation by one step. Step is the
// driver hosts should use; callers of Tick directly must DrainEvents
// themselves or the oldest pending events are dropped.
func (g *Game) Tick() TickResult {
	if g.phase != core.PhasePlaying {
		return TickSkipped
	}
	g.tick++

	g.player.integrate(g.cfg.Physics.Gravity, g.groundY)

	g.obstacles.Countdown(g.tick)

	collided, cleared := g.obstacles.Advance(g.difficulty.Speed(), g.player.Box())
	for i := 0; i < cleared; i++ {
		g.award()
	}
	if collided {
		g.endRun()
		return TickCollided
	}

	g.difficulty.Advance()
	return TickAdvanced
}

// Step applies the intents in the frame and then advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionRestart):
		g.Restart()
	case in.Has(core.ActionStart):
		g.Start()
	}
	if in.Has(core.ActionJump) {
		g.Jump()
	}

	g.Tick()

	return core.StepResult{
		State:  g.State(),
		Events: g.DrainEvents(),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.phase,
		Score:     g.score,
		HighScore: g.highScore,
	}
}

// DrainEvents returns the events emitted since the previous call.
func (g *Game) DrainEvents() []core.Event {
	events := g.events
	g.events = nil
	return events
}

// maxPendingEvents bounds the undrained event buffer.
const maxPendingEvents = 256

func (g *Game) emit(e core.Event) {
	if len(g.events) >= maxPendingEvents {
		n := copy(g.events, g.events[1:])
		g.events = g.events[:n]
	}
	g.events = append(g.events, e)
}

// award adds the obstacle reward and raises the high score when exceeded.
func (g *Game) award() {
	g.score += g.cfg.Scoring.ObstacleReward
	g.emit(core.ObstacleClearedEvent{Score: g.score})

	if g.score <= g.highScore {
		return
	}
	g.highScore = g.score
	g.emit(core.HighScoreEvent{HighScore: g.highScore})
	g.saveHighScore()
}

// endRun transitions to GameOver and reports the final score.
func (g *Game) endRun() {
	g.phase = core.PhaseGameOver

	x, y := g.player.Center()
	g.emit(core.RunEndedEvent{X: x, Y: y, Score: g.score, HighScore: g.highScore})

	g.logger.Debug("run ended", "game", g.id, "score", g.score, "highScore", g.highScore, "ticks", g.tick)

	if g.notifier == nil {
		return
	}
	report := core.ScoreReport{
		Action:    core.ReportActionGameScore,
		GameID:    g.id,
		Score:     g.score,
		HighScore: g.highScore,
		UserID:    g.userID,
	}
	if err := g.notifier.Notify(context.Background(), report); err != nil {
		g.logger.Warn("could not report score", "game", g.id, "error", err)
	}
}

func (g *Game) loadHighScore() int {
	if g.scores == nil {
		return 0
	}
	best, err := g.scores.HighScore(g.id)
	if err != nil {
		g.logger.Warn("could not read high score", "game", g.id, "error", err)
		return 0
	}
	if best < 0 {
		return 0
	}
	return best
}

func (g *Game) saveHighScore() {
	if g.scores == nil {
		return
	}
	if err := g.scores.SetHighScore(g.id, g.highScore); err != nil {
		g.logger.Warn("could not save high score", "game", g.id, "error", err)
	}
}

// Register both variants with the registry
func init() {
	registry.Register(GameID, func(deps registry.Deps) registry.Game {
		return New(GameID, "Geometry Dash", deps)
	})
	registry.Register(ClassicGameID, func(deps registry.Deps) registry.Game {
		if deps.Config.Validate() != nil {
			deps.Config = config.DefaultGeoDashConfig()
		}
		config.ApplyPreset(&deps.Config, config.DifficultyFixed)
		return New(ClassicGameID, "Geometry Dash Classic", deps)
	})
}
