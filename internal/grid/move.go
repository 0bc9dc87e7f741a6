package grid

// lineWalk maps step i of line l (i = 0 is the edge tiles travel toward) to
// a grid position, for a grid of size n.
type lineWalk func(l, i, n int) Position

// walks holds one lineWalk per direction. Every direction shares the same
// compress/merge/rebuild code; only the walk differs.
var walks = [...]lineWalk{
	DirUp:    func(l, i, _ int) Position { return Position{Row: i, Col: l} },
	DirDown:  func(l, i, n int) Position { return Position{Row: n - 1 - i, Col: l} },
	DirLeft:  func(l, i, _ int) Position { return Position{Row: l, Col: i} },
	DirRight: func(l, i, n int) Position { return Position{Row: l, Col: n - 1 - i} },
}

// Transition records where a tile went during a move.
type Transition struct {
	ID    TileID
	From  Position
	To    Position
	Value int // value after the move; for a consumed tile, its own value

	Merged   bool // survived a merge and now holds the doubled value
	Consumed bool // absorbed into the survivor at To; no longer on the grid
}

// MoveResult describes the effect of Move.
type MoveResult struct {
	Direction   Direction
	Changed     bool
	Merges      int
	Transitions []Transition
}

// lineCell is a tile after the merge pass along with the partner it absorbed.
type lineCell struct {
	tile     Tile
	absorbed *Tile
}

// compressTiles drops empty tiles and keeps the order of the rest.
func compressTiles(tiles []Tile) []Tile {
	out := make([]Tile, 0, len(tiles))
	for _, t := range tiles {
		if !t.Empty {
			out = append(out, t)
		}
	}
	return out
}

// mergeTiles walks a compressed line once. Equal neighbours i and i+1 become
// one tile that keeps i's identity and doubles its value; i+1 is consumed and
// skipped, so a tile merges at most once per move.
func mergeTiles(tiles []Tile) []lineCell {
	out := make([]lineCell, 0, len(tiles))
	for i := 0; i < len(tiles); i++ {
		if i+1 < len(tiles) && tiles[i].Value == tiles[i+1].Value {
			merged := tiles[i]
			merged.Value *= 2
			partner := tiles[i+1]
			out = append(out, lineCell{tile: merged, absorbed: &partner})
			i++
			continue
		}
		out = append(out, lineCell{tile: tiles[i]})
	}
	return out
}

// rebuildLine lays cells onto positions in travel order and pads the rest
// with fresh empty tiles.
func (g *Grid) rebuildLine(cells []lineCell, positions []Position) []Tile {
	line := make([]Tile, len(positions))
	for i, pos := range positions {
		if i < len(cells) {
			t := cells[i].tile
			t.Position = pos
			t.Empty = false
			line[i] = t
			continue
		}
		line[i] = g.emptyTile(pos)
	}
	return line
}

// Move slides every line toward dir. It never spawns and never consults the
// random source.
func (g *Grid) Move(dir Direction) MoveResult {
	res := MoveResult{Direction: dir}
	if dir < 0 || int(dir) >= len(walks) {
		return res
	}
	walk := walks[dir]

	for l := 0; l < g.size; l++ {
		positions := make([]Position, g.size)
		line := make([]Tile, g.size)
		for i := 0; i < g.size; i++ {
			pos := walk(l, i, g.size)
			positions[i] = pos
			line[i] = g.cells[pos.Row][pos.Col]
		}

		cells := mergeTiles(compressTiles(line))
		rebuilt := g.rebuildLine(cells, positions)
		for _, t := range rebuilt {
			g.cells[t.Position.Row][t.Position.Col] = t
		}

		for i, c := range cells {
			to := positions[i]
			tr := Transition{
				ID:     c.tile.ID,
				From:   c.tile.Position,
				To:     to,
				Value:  c.tile.Value,
				Merged: c.absorbed != nil,
			}
			res.Transitions = append(res.Transitions, tr)
			if tr.From != to {
				res.Changed = true
			}
			if c.absorbed == nil {
				continue
			}
			res.Merges++
			res.Changed = true
			res.Transitions = append(res.Transitions, Transition{
				ID:       c.absorbed.ID,
				From:     c.absorbed.Position,
				To:       to,
				Value:    c.absorbed.Value,
				Consumed: true,
			})
		}
	}
	return res
}
