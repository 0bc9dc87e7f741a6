package grid

import (
	"math/rand"
	"reflect"
	"testing"
)

// valuesOf strips a tile slice down to its values.
func valuesOf(tiles []Tile) []int {
	out := make([]int, len(tiles))
	for i, t := range tiles {
		out[i] = t.Value
	}
	return out
}

// lineTiles builds one line of tiles in travel order from values.
func lineTiles(values []int) []Tile {
	tiles := make([]Tile, len(values))
	for i, v := range values {
		tiles[i] = Tile{ID: NewTileID(), Value: v, Position: Position{Col: i}, Empty: v == 0}
	}
	return tiles
}

// moveRow places row at the top of an otherwise empty square grid, moves it
// left and returns the resulting top row.
func moveRow(t *testing.T, row []int) []int {
	t.Helper()
	values := make([][]int, len(row))
	values[0] = row
	for i := 1; i < len(row); i++ {
		values[i] = make([]int, len(row))
	}
	g := fromValues(t, values)
	g.Move(DirLeft)
	return g.Values()[0]
}

func TestMoveRowLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
	}{
		{
			name:     "simple merge",
			input:    []int{2, 2, 0, 0},
			expected: []int{4, 0, 0, 0},
		},
		{
			name:     "merge with trailing tile",
			input:    []int{2, 2, 2, 0},
			expected: []int{4, 2, 0, 0},
		},
		{
			name:     "pairs merge without re-merging",
			input:    []int{2, 2, 2, 2},
			expected: []int{4, 4, 0, 0},
		},
		{
			name:     "merged result is not merged again",
			input:    []int{4, 2, 2, 0},
			expected: []int{4, 4, 0, 0},
		},
		{
			name:     "no merge possible",
			input:    []int{2, 4, 8, 16},
			expected: []int{2, 4, 8, 16},
		},
		{
			name:     "slide with gap",
			input:    []int{0, 0, 2, 2},
			expected: []int{4, 0, 0, 0},
		},
		{
			name:     "merge across gaps",
			input:    []int{2, 0, 0, 2},
			expected: []int{4, 0, 0, 0},
		},
		{
			name:     "empty row",
			input:    []int{0, 0, 0, 0},
			expected: []int{0, 0, 0, 0},
		},
		{
			name:     "single tile",
			input:    []int{0, 4, 0, 0},
			expected: []int{4, 0, 0, 0},
		},
		{
			name:     "larger grid",
			input:    []int{8, 8, 0, 16, 16, 16},
			expected: []int{16, 32, 16, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := moveRow(t, tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("move left %v = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMoveLeftTwice(t *testing.T) {
	g := fromValues(t, [][]int{
		{2, 2, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Move(DirLeft)
	if got := g.Values()[0]; !reflect.DeepEqual(got, []int{4, 4, 0, 0}) {
		t.Fatalf("first move = %v, want [4 4 0 0]", got)
	}

	g.Move(DirLeft)
	if got := g.Values()[0]; !reflect.DeepEqual(got, []int{8, 0, 0, 0}) {
		t.Errorf("second move = %v, want [8 0 0 0]", got)
	}
}

func TestMoveDirections(t *testing.T) {
	start := [][]int{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	tests := []struct {
		dir      Direction
		expected [][]int
	}{
		{
			dir: DirLeft,
			expected: [][]int{
				{2, 4, 4, 0},
				{4, 0, 0, 0},
				{4, 2, 0, 0},
				{4, 0, 0, 0},
			},
		},
		{
			dir: DirRight,
			expected: [][]int{
				{0, 2, 4, 4},
				{0, 0, 0, 4},
				{0, 0, 4, 2},
				{0, 0, 0, 4},
			},
		},
		{
			dir: DirUp,
			expected: [][]int{
				{4, 8, 4, 4},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			dir: DirDown,
			expected: [][]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			g := fromValues(t, start)
			res := g.Move(tt.dir)
			if got := g.Values(); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Move(%s):\ngot  %v\nwant %v", tt.dir, got, tt.expected)
			}
			if !res.Changed {
				t.Errorf("Move(%s) should report a change", tt.dir)
			}
			if res.Direction != tt.dir {
				t.Errorf("result direction = %s, want %s", res.Direction, tt.dir)
			}
		})
	}
}

func TestMoveWithoutChange(t *testing.T) {
	g := fromValues(t, [][]int{
		{4, 2, 0, 0},
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := g.Move(DirLeft)

	if res.Changed {
		t.Error("left-packed tiles without pairs should not change")
	}
	if res.Merges != 0 {
		t.Errorf("Merges = %d, want 0", res.Merges)
	}
}

func TestMoveInvalidDirection(t *testing.T) {
	g := fromValues(t, [][]int{{2, 0}, {0, 2}})
	before := g.AllTiles()

	res := g.Move(Direction(9))

	if res.Changed || !reflect.DeepEqual(g.AllTiles(), before) {
		t.Error("unknown direction should leave the grid untouched")
	}
}

func TestMergeKeepsLeadingIdentity(t *testing.T) {
	tests := []struct {
		name   string
		dir    Direction
		values [][]int
		lead   Position // tile whose id must survive
		dest   Position
	}{
		{"left", DirLeft, [][]int{{2, 2}, {0, 0}}, Position{Row: 0, Col: 0}, Position{Row: 0, Col: 0}},
		{"right", DirRight, [][]int{{2, 2}, {0, 0}}, Position{Row: 0, Col: 1}, Position{Row: 0, Col: 1}},
		{"up", DirUp, [][]int{{0, 4}, {0, 4}}, Position{Row: 0, Col: 1}, Position{Row: 0, Col: 1}},
		{"down", DirDown, [][]int{{0, 4}, {0, 4}}, Position{Row: 1, Col: 1}, Position{Row: 1, Col: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := fromValues(t, tt.values)
			lead, _ := g.Tile(tt.lead)

			res := g.Move(tt.dir)

			got, _ := g.Tile(tt.dest)
			if got.ID != lead.ID {
				t.Errorf("merged tile id = %s, want leading id %s", got.ID, lead.ID)
			}
			if got.Value != lead.Value*2 {
				t.Errorf("merged value = %d, want %d", got.Value, lead.Value*2)
			}
			if res.Merges != 1 {
				t.Errorf("Merges = %d, want 1", res.Merges)
			}
		})
	}
}

func TestMovePadsWithFreshEmptyTiles(t *testing.T) {
	g := fromValues(t, [][]int{
		{0, 2, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	before := make(map[TileID]bool)
	for _, tile := range g.AllTiles() {
		before[tile.ID] = true
	}

	g.Move(DirLeft)

	for col := 1; col < 4; col++ {
		tile, _ := g.Tile(Position{Row: 0, Col: col})
		if !tile.Empty || tile.Value != 0 {
			t.Errorf("cell (0,%d) = %+v, want empty", col, tile)
		}
		if before[tile.ID] {
			t.Errorf("padding at (0,%d) reused id %s", col, tile.ID)
		}
	}
}

func TestMoveTransitions(t *testing.T) {
	g := fromValues(t, [][]int{
		{0, 2, 2, 4},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	a, _ := g.Tile(Position{Row: 0, Col: 1})
	b, _ := g.Tile(Position{Row: 0, Col: 2})
	c, _ := g.Tile(Position{Row: 0, Col: 3})

	res := g.Move(DirLeft)

	want := []Transition{
		{ID: a.ID, From: a.Position, To: Position{Row: 0, Col: 0}, Value: 4, Merged: true},
		{ID: b.ID, From: b.Position, To: Position{Row: 0, Col: 0}, Value: 2, Consumed: true},
		{ID: c.ID, From: c.Position, To: Position{Row: 0, Col: 1}, Value: 4},
	}
	if !reflect.DeepEqual(res.Transitions, want) {
		t.Errorf("Transitions:\ngot  %+v\nwant %+v", res.Transitions, want)
	}
	if res.Merges != 1 || !res.Changed {
		t.Errorf("Merges = %d, Changed = %v; want 1, true", res.Merges, res.Changed)
	}
}

func TestCompressTiles(t *testing.T) {
	in := lineTiles([]int{0, 2, 0, 4, 0, 2})
	got := compressTiles(in)

	if !reflect.DeepEqual(valuesOf(got), []int{2, 4, 2}) {
		t.Errorf("compressTiles values = %v, want [2 4 2]", valuesOf(got))
	}
	if got[0].ID != in[1].ID || got[1].ID != in[3].ID || got[2].ID != in[5].ID {
		t.Error("compressTiles did not preserve order")
	}

	again := compressTiles(got)
	if !reflect.DeepEqual(again, got) {
		t.Error("compressing a compressed line should be a no-op")
	}
}

func TestMergeTilesAtMostOncePerTile(t *testing.T) {
	tests := []struct {
		in   []int
		want []int
	}{
		{[]int{2, 2, 2}, []int{4, 2}},
		{[]int{4, 4, 4, 4}, []int{8, 8}},
		{[]int{2, 2, 4}, []int{4, 4}},
		{[]int{2, 4, 4, 2}, []int{2, 8, 2}},
		{[]int{}, []int{}},
	}

	for _, tt := range tests {
		cells := mergeTiles(compressTiles(lineTiles(tt.in)))
		got := make([]int, len(cells))
		for i, c := range cells {
			got[i] = c.tile.Value
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("mergeTiles(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// randomValues fills a size×size matrix with powers of two and gaps.
func randomValues(rng *rand.Rand, size int) [][]int {
	values := make([][]int, size)
	for r := 0; r < size; r++ {
		values[r] = make([]int, size)
		for c := 0; c < size; c++ {
			if rng.Intn(3) == 0 {
				continue
			}
			values[r][c] = 2 << rng.Intn(4)
		}
	}
	return values
}

// lineValues reads line l of values in the travel order of dir.
func lineValues(values [][]int, dir Direction, l int) []int {
	n := len(values)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		p := walks[dir](l, i, n)
		out[i] = values[p.Row][p.Col]
	}
	return out
}

func TestMoveProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2048))

	for round := 0; round < 200; round++ {
		size := 2 + round%5
		start := randomValues(rng, size)

		for _, dir := range Directions {
			g := fromValues(t, start)
			before := make(map[TileID]int)
			for _, tile := range g.AllTiles() {
				before[tile.ID] = tile.Value
			}

			res := g.Move(dir)
			after := g.Values()

			for l := 0; l < size; l++ {
				pre := lineValues(start, dir, l)
				post := lineValues(after, dir, l)

				if sum(pre) != sum(post) {
					t.Fatalf("%v %s line %d: sum %d -> %d", start, dir, l, sum(pre), sum(post))
				}

				seenEmpty := false
				for _, v := range post {
					if v == 0 {
						seenEmpty = true
					} else if seenEmpty {
						t.Fatalf("%v %s line %d: %v is not packed", start, dir, l, post)
					}
				}

				if !hasAdjacentPair(compressValues(pre)) && !sameMultiset(pre, post) {
					t.Fatalf("%v %s line %d: %v -> %v changed values without merges", start, dir, l, pre, post)
				}
			}

			for _, tr := range res.Transitions {
				if tr.Consumed {
					continue
				}
				want := before[tr.ID]
				if tr.Merged {
					want *= 2
				}
				if tr.Value != want {
					t.Fatalf("%v %s: tile %s went %d -> %d", start, dir, tr.ID, before[tr.ID], tr.Value)
				}
				if got, _ := g.Tile(tr.To); got.ID != tr.ID || got.Value != tr.Value {
					t.Fatalf("%v %s: transition %+v does not match grid", start, dir, tr)
				}
			}
		}
	}
}

func TestMoveLeftThenRightFlipsPacking(t *testing.T) {
	g := fromValues(t, [][]int{
		{0, 0, 0, 0},
		{2, 0, 4, 8},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	g.Move(DirLeft)
	if got := g.Values()[1]; !reflect.DeepEqual(got, []int{2, 4, 8, 0}) {
		t.Fatalf("after left = %v, want [2 4 8 0]", got)
	}

	g.Move(DirRight)
	if got := g.Values()[1]; !reflect.DeepEqual(got, []int{0, 2, 4, 8}) {
		t.Errorf("after right = %v, want [0 2 4 8]", got)
	}
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func compressValues(values []int) []int {
	var out []int
	for _, v := range values {
		if v != 0 {
			out = append(out, v)
		}
	}
	return out
}

func hasAdjacentPair(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i] == values[i-1] {
			return true
		}
	}
	return false
}

func sameMultiset(a, b []int) bool {
	counts := make(map[int]int)
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}
