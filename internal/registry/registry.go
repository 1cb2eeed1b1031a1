// Package registry provides a global registry for game mode factories.
// Modes register themselves in init() functions, allowing the hosts
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-jump/internal/core"
)

// Game is what every host drives. Games own their simulation and loop; the
// host only forwards wall-clock frames and held keys, then renders.
type Game interface {
	// ID returns a unique identifier for this mode (e.g., "spacejump").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh session.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Frame advances the session to now. It returns false once the session
	// is over and the host should stop scheduling frames.
	Frame(now time.Time, keys core.Keys) bool

	// TogglePause pauses a running session or resumes a paused one.
	TogglePause(now time.Time)

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current score and loop flags.
	State() core.GameState
}

// Env carries the collaborators a game is built with. Zero fields mean
// "none": games fall back to silent audio, an in-memory ranking and a
// discarding logger.
type Env struct {
	Audio      core.Audio
	Ranking    core.Ranker
	Logger     *log.Logger
	ConfigPath string
	Difficulty string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func(env Env) Game

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
	titles[id] = f(Env{}).Title()
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
func Create(id string, env Env) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(env), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
