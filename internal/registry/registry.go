// Package registry keeps the factories for every playable board variant.
// Variants register themselves from init(), so the CLI and the menus can
// list and build them without importing each one by name.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Game is the contract between a variant and the platform. Implementations
// hold pure game logic; the platform owns timing, input mapping and output.
type Game interface {
	// ID is the stable identifier used on the command line ("2048", "2048_mini").
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new game. Called once at start and for every restart.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the game into dst. The platform clears dst beforehand.
	Render(dst *core.Screen)

	// State reports the current status without advancing anything.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID      string
	Title   string
	Summary string
}

// Describer is implemented by games that carry a one-line summary.
type Describer interface {
	Summary() string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
)

// Register adds a factory under id. It panics on an empty or duplicate id,
// both of which are programming errors caught at init time.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if strings.TrimSpace(id) == "" {
		panic("registry: empty game id")
	}
	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Summary = d.Summary()
	}

	factories[id] = f
	infos[id] = info
}

// List returns every registered variant, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create builds a new instance of the variant registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Resizer is implemented by games that can follow a terminal resize without
// restarting. Games without it are reset on resize.
type Resizer interface {
	Resize(w, h int)
}
