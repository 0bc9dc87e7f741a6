// Package grid implements the 2048 rule engine: an N×N matrix of tiles with
// move, spawn, reset and query operations. It has no I/O and no global
// state; a Grid belongs to exactly one owner at a time.
package grid

import (
	"math/rand"
	"time"
)

const (
	// DefaultSize is the classic board dimension.
	DefaultSize = 4
	// DefaultWinValue is the tile value that completes a game.
	DefaultWinValue = 2048
	// SpawnValue is the value of every spawned tile.
	SpawnValue = 2
)

// IntnSource supplies uniform integers in [0, n). *math/rand.Rand satisfies it.
type IntnSource interface {
	Intn(n int) int
}

// Grid is a dense square matrix of tiles. Every position holds exactly one
// tile, possibly empty.
type Grid struct {
	size     int
	winValue int
	cells    [][]Tile
	rng      IntnSource
	newID    func() TileID
}

// Option customizes a Grid at construction.
type Option func(*Grid)

// WithWinValue sets the value IsComplete looks for.
func WithWinValue(v int) Option {
	return func(g *Grid) {
		if v > 0 {
			g.winValue = v
		}
	}
}

// WithRand sets the random source used by SpawnRandomTile.
func WithRand(src IntnSource) Option {
	return func(g *Grid) {
		if src != nil {
			g.rng = src
		}
	}
}

// WithIDSource replaces the identity generator. Ids must be unique.
func WithIDSource(next func() TileID) Option {
	return func(g *Grid) {
		if next != nil {
			g.newID = next
		}
	}
}

// New creates an empty size×size grid. Sizes below zero are treated as
// zero, which yields a grid on which every operation is a no-op.
func New(size int, opts ...Option) *Grid {
	if size < 0 {
		size = 0
	}
	g := &Grid{
		size:     size,
		winValue: DefaultWinValue,
		newID:    NewTileID,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.Reset()
	return g
}

// Reset empties every cell and gives each one a fresh identity.
func (g *Grid) Reset() {
	g.cells = make([][]Tile, g.size)
	for row := 0; row < g.size; row++ {
		g.cells[row] = make([]Tile, g.size)
		for col := 0; col < g.size; col++ {
			g.cells[row][col] = g.emptyTile(Position{Row: row, Col: col})
		}
	}
}

func (g *Grid) emptyTile(pos Position) Tile {
	return Tile{ID: g.newID(), Position: pos, Empty: true}
}

// Size returns N.
func (g *Grid) Size() int {
	return g.size
}

// WinValue returns the configured completion threshold.
func (g *Grid) WinValue() int {
	return g.winValue
}

// AllTiles returns a row-major copy of every cell.
func (g *Grid) AllTiles() []Tile {
	tiles := make([]Tile, 0, g.size*g.size)
	for _, row := range g.cells {
		tiles = append(tiles, row...)
	}
	return tiles
}

// Tile returns the tile at pos, or false if pos is out of bounds.
func (g *Grid) Tile(pos Position) (Tile, bool) {
	if !pos.In(g.size) {
		return Tile{}, false
	}
	return g.cells[pos.Row][pos.Col], true
}

// Values returns the cell values as an N×N matrix; empty cells are 0.
func (g *Grid) Values() [][]int {
	values := make([][]int, g.size)
	for row := 0; row < g.size; row++ {
		values[row] = make([]int, g.size)
		for col := 0; col < g.size; col++ {
			values[row][col] = g.cells[row][col].Value
		}
	}
	return values
}

// IsComplete reports whether any cell holds exactly the win value.
func (g *Grid) IsComplete() bool {
	for _, row := range g.cells {
		for _, t := range row {
			if t.Value == g.winValue {
				return true
			}
		}
	}
	return false
}

// MaxValue returns the highest tile value on the grid.
func (g *Grid) MaxValue() int {
	maxVal := 0
	for _, row := range g.cells {
		for _, t := range row {
			maxVal = max(maxVal, t.Value)
		}
	}
	return maxVal
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for _, row := range g.cells {
		for _, t := range row {
			if t.Empty {
				n++
			}
		}
	}
	return n
}

// SetCell overwrites the cell at tile.Position with tile. A position outside
// the grid is ignored and reported as false rather than as an error.
func (g *Grid) SetCell(tile Tile) bool {
	if !tile.Position.In(g.size) {
		return false
	}
	g.cells[tile.Position.Row][tile.Position.Col] = tile
	return true
}

// SpawnRandomTile picks a row and a column uniformly at random. If that cell
// is empty it becomes a fresh tile of SpawnValue; if it is occupied nothing
// happens and no other cell is tried.
func (g *Grid) SpawnRandomTile() (Tile, bool) {
	if g.size == 0 {
		return Tile{}, false
	}
	pos := Position{Row: g.rng.Intn(g.size), Col: g.rng.Intn(g.size)}
	if !g.cells[pos.Row][pos.Col].Empty {
		return Tile{}, false
	}
	t := Tile{ID: g.newID(), Value: SpawnValue, Position: pos}
	g.SetCell(t)
	return t, true
}

// Clone returns a deep copy of the cells. The copy shares the random and
// identity sources with g.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = make([][]Tile, g.size)
	for row := range g.cells {
		c.cells[row] = append([]Tile(nil), g.cells[row]...)
	}
	return &c
}
