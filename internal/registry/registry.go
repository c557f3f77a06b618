// Package registry provides a global registry for game factories.
// Game variants register themselves in init() functions, allowing the
// frontends to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/geodash/internal/config"
	"github.com/vovakirdan/geodash/internal/core"
)

// Game is the interface every runner variant implements.
// Games contain pure logic with no frontend dependencies (no Bubble Tea, no ebiten).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this variant (e.g., "geodash").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset returns the game to the menu with fresh run entities.
	// The high score survives.
	Reset(cfg core.RuntimeConfig)

	// Step applies the intents in the frame and advances the simulation by one tick.
	// The result carries the state and the events emitted during the step.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current phase, score and high score.
	State() core.GameState
}

// Resizer is implemented by games that accept viewport changes mid-session.
type Resizer interface {
	Resize(cfg core.RuntimeConfig)
}

// Deps carries the collaborators a game is constructed with.
// Zero values are valid: nil Scores and Notifier disable persistence and
// reporting, a nil Logger discards log output.
type Deps struct {
	Config   config.GeoDashConfig
	Scores   core.ScoreStore
	Notifier core.Notifier
	Logger   *log.Logger
	UserID   string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game from its collaborators.
type Factory func(deps Deps) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f(Deps{Config: config.DefaultGeoDashConfig()})
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, deps Deps) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(deps), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
