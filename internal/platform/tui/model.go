package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geodash/internal/core"
	"github.com/vovakirdan/geodash/internal/games/geodash"
	"github.com/vovakirdan/geodash/internal/platform/sound"
	"github.com/vovakirdan/geodash/internal/registry"
	"github.com/vovakirdan/geodash/internal/storage"
)

// Options carries the collaborators a Model uses besides the game itself.
// Every field is optional.
type Options struct {
	Scores        storage.Backend // Receives one history entry per finished run
	Sound         *sound.System
	Logger        *log.Logger
	ScreenshotDir string // Defaults to ~/.geodash/screenshots
}

// sceneSource is implemented by games that expose a world snapshot,
// which lets the model overlay particles on the scene.
type sceneSource interface {
	Snapshot() geodash.Snapshot
}

// Model is the Bubble Tea model for running a game in a terminal.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	particles  *geodash.Particles
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The world viewport is derived by the game from the cell grid.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ViewportW, cfg.ViewportH = 0, 0

	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		particles:  geodash.NewParticles(cfg.Seed),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, m.phase(), &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// State returns the game state observed after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

func (m Model) phase() core.Phase {
	return m.game.State().Phase
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "error", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, m.phase(), &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// A run in progress keeps its geometry; the new size applies on the next run.
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config)
	} else if m.phase() != core.PhasePlaying {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	m.handleEvents(result.Events)

	return m, tickCmd(m.config.TickRate)
}

// handleEvents feeds effects and records finished runs in the history.
func (m Model) handleEvents(events []core.Event) {
	if src, ok := m.game.(sceneSource); ok {
		m.particles.Apply(events, src.Snapshot().Player)
	}
	m.particles.Update()
	m.opts.Sound.HandleEvents(events)

	for _, e := range events {
		if ev, ok := e.(core.RunEndedEvent); ok {
			m.recordRun(ev)
		}
	}
}

// recordRun appends a finished run to the score history.
func (m Model) recordRun(ev core.RunEndedEvent) {
	if m.opts.Scores == nil || ev.Score <= 0 {
		return
	}
	if _, err := m.opts.Scores.SaveScore(m.game.ID(), ev.Score); err != nil {
		m.opts.Logger.Warn("saving score failed", "game", m.game.ID(), "score", ev.Score, "error", err)
	}
}

// draw renders the current frame into the screen buffer.
func (m Model) draw() {
	if src, ok := m.game.(sceneSource); ok {
		geodash.DrawScene(m.screen, src.Snapshot(), m.particles.Items())
		return
	}
	m.game.Render(m.screen)
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.draw()

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home: %w", err)
		}
		dir = filepath.Join(home, ".geodash", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a single local player.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewSessionModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
