// Package registry keeps the table of playable games.
// Game packages register a factory from init(); the CLI and the TUI look
// games up by ID so neither has to import a game package directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/desetka/internal/core"
)

// Game is what the terminal front end drives.
// Implementations hold pure game logic and never touch Bubble Tea; the
// platform maps keys and mouse events into core.InputFrame and paints
// core.Screen.
type Game interface {
	// ID is the stable identifier used by the CLI and the score table.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh run. Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one platform tick.
	Step(in core.InputFrame) core.StepResult

	// Resize tells the game the terminal changed size without restarting it.
	Resize(w, h int)

	// Render draws the current state. dst is cleared before the call.
	Render(dst *core.Screen)

	// State reports score and lifecycle flags.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory. It panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create builds a new instance of the game with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
