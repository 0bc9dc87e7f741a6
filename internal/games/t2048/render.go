package t2048

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellHeight  = 2 // Height of each cell including its top border
	hudHeight   = 3
	minHUDWidth = 28
)

// Markers drawn right after a tile value
const (
	spawnMarker = '+'
	mergeMarker = '*'
)

// tileColors is indexed by log2 of the tile value.
var tileColors = []core.Color{
	1:  core.ColorSand,
	2:  core.ColorWheat,
	3:  core.ColorApricot,
	4:  core.ColorOrange,
	5:  core.ColorCoral,
	6:  core.ColorTomato,
	7:  core.ColorYellow,
	8:  core.ColorGold,
	9:  core.ColorAmber,
	10: core.ColorBrightYellow,
	11: core.ColorBrightRed,
}

// TileColor returns the color for a tile value. Powers of two from 2 to
// 2048 have their own color; anything else is gray.
func TileColor(value int) core.Color {
	if value < 2 || value&(value-1) != 0 {
		return core.ColorGray
	}
	exp := bits.Len(uint(value)) - 1
	if exp >= len(tileColors) {
		return core.ColorGray
	}
	return tileColors[exp]
}

// layout holds the board geometry for one size and target.
type layout struct {
	digits int // widest value that can appear
	cellW  int // cell width including its left border
	boardW int
	boardH int
}

func newLayout(size, winValue int) layout {
	digits := len(strconv.Itoa(winValue))
	cellW := digits + 3 // border, padding, digits, marker
	return layout{
		digits: digits,
		cellW:  cellW,
		boardW: size*cellW + 1,
		boardH: size*cellHeight + 1,
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := newLayout(g.size, g.winValue)
	boardX := (g.screenW - l.boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst)
	g.renderBoard(dst, l, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, l.boardW, l.boardH))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, target, max tile and move count.
func (g *Game) renderHUD(dst *core.Screen) {
	hudW := max(newLayout(g.size, g.winValue).boardW, minHUDWidth)
	hudX := (g.screenW - hudW) / 2

	dst.DrawTextCentered(0, g.variant.Title)

	target := fmt.Sprintf("Target: %d", g.winValue)
	dst.DrawText(hudX, 1, target)

	maxStr := fmt.Sprintf("Max: %d", g.board.MaxValue())
	dst.DrawTextColored(hudX+hudW-len(maxStr), 1, maxStr, TileColor(g.board.MaxValue()))

	dst.DrawTextCentered(2, fmt.Sprintf("%dx%d  Moves: %d", g.size, g.size, g.moves))
}

// renderBoard draws the grid lines and the tiles.
func (g *Game) renderBoard(dst *core.Screen, l layout, boardX, boardY int) {
	n := g.size
	for y := 0; y < n+1; y++ {
		for x := 0; x < n+1; x++ {
			px := boardX + x*l.cellW
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < n {
				for i := 1; i < l.cellW; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for _, tile := range g.board.AllTiles() {
		if tile.Empty {
			continue
		}

		cellX := boardX + tile.Position.Col*l.cellW + 1
		cellY := boardY + tile.Position.Row*cellHeight + 1

		// Values are right-aligned so digits line up down a column
		valStr := strconv.Itoa(tile.Value)
		dst.DrawTextColored(cellX+1+l.digits-len(valStr), cellY, valStr, TileColor(tile.Value))

		markerX := cellX + 1 + l.digits
		switch {
		case g.spawned && tile.ID == g.lastSpawn:
			dst.SetColored(markerX, cellY, spawnMarker, core.ColorBrightGreen)
		case g.merged[tile.ID]:
			dst.SetColored(markerX, cellY, mergeMarker, core.ColorBrightYellow)
		}
	}
}

// renderOverlays draws pause and completion boxes over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.paused:
		drawOverlay(dst, board, "PAUSED", "Press P to resume")
	case g.board.IsComplete():
		drawOverlay(dst, board,
			"TARGET REACHED!",
			fmt.Sprintf("%d in %d moves", g.winValue, g.moves),
			"Press R for a new game")
	}
}

// drawOverlay draws a boxed block of centered lines over area.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := area.CenterIn(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	centerX, _ := box.Center()
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
