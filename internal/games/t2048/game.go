package t2048

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

// Game drives one grid: input in, a move and a spawn per direction, frames out.
type Game struct {
	variant Variant
	spawn   config.SpawnConfig
	rng     *rand.Rand
	board   *grid.Grid
	tick    uint64
	moves   int

	size     int
	winValue int

	// Screen dimensions
	screenW int
	screenH int

	paused   bool
	tooSmall bool

	// Highlight state for the renderer
	lastSpawn grid.TileID
	spawned   bool
	merged    map[grid.TileID]bool
}

// New creates a game for the given variant. Call Reset before use.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Summary returns a one-line description for listings.
func (g *Game) Summary() string {
	return g.variant.Summary
}

// Reset builds a fresh board from the current config and spawns the
// initial tiles.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	settings := CurrentConfig()
	g.size, g.winValue = g.variant.Resolve(settings)
	g.spawn = settings.Spawn

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.board = grid.New(g.size, grid.WithWinValue(g.winValue), grid.WithRand(g.rng))

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.newGame()
	g.checkScreenSize()
}

// newGame clears the board and starts over with the same random stream.
func (g *Game) newGame() {
	g.board.Reset()
	g.tick = 0
	g.moves = 0
	g.spawned = false
	g.merged = make(map[grid.TileID]bool)

	for i := 0; i < g.spawn.InitialTiles; i++ {
		g.spawnTile()
	}
}

// spawnTile asks the engine for a tile. A spawn that lands on an occupied
// cell is dropped, exactly as the engine reports it.
func (g *Game) spawnTile() {
	if tile, ok := g.board.SpawnRandomTile(); ok {
		g.lastSpawn = tile.ID
		g.spawned = true
	}
}

// Resize follows a terminal size change without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen can hold the HUD and the board.
func (g *Game) checkScreenSize() {
	l := newLayout(g.size, g.winValue)
	minW := max(l.boardW, minHUDWidth)
	minH := hudHeight + 1 + l.boardH + 1
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.newGame()
		return core.StepResult{State: g.State()}
	}

	// The board is frozen once the target is reached
	if g.board.IsComplete() {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	changed := g.applyMove(dir)
	return core.StepResult{State: g.State(), Moved: changed}
}

// directionFor picks the direction requested this frame. At most one
// direction is applied per frame.
func directionFor(in core.InputFrame) (grid.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return grid.DirUp, true
	case in.Has(core.ActionDown):
		return grid.DirDown, true
	case in.Has(core.ActionLeft):
		return grid.DirLeft, true
	case in.Has(core.ActionRight):
		return grid.DirRight, true
	}
	return 0, false
}

// applyMove moves the board and spawns the follow-up tile.
func (g *Game) applyMove(dir grid.Direction) bool {
	res := g.board.Move(dir)
	g.moves++

	clear(g.merged)
	for _, tr := range res.Transitions {
		if tr.Merged {
			g.merged[tr.ID] = true
		}
	}

	g.spawned = false
	if res.Changed || !g.spawn.RequireChange {
		g.spawnTile()
	}
	return res.Changed
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Complete: g.board.IsComplete(),
		Paused:   g.paused || g.tooSmall,
		MaxTile:  g.board.MaxValue(),
	}
}
