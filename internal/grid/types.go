package grid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TileID is the identity token of a tile. It survives slides and merges so
// presentation layers can tell a moving tile from a freshly spawned one.
type TileID uuid.UUID

// NewTileID returns a fresh random identity.
func NewTileID() TileID {
	return TileID(uuid.New())
}

// String returns the canonical UUID form of the id.
func (id TileID) String() string {
	return uuid.UUID(id).String()
}

// Position addresses a cell. Both coordinates are zero-based.
type Position struct {
	Row int
	Col int
}

// In reports whether the position lies inside a size×size grid.
func (p Position) In(size int) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < size && p.Col < size
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Tile is the occupant of a cell. An empty tile always has Value 0.
type Tile struct {
	ID       TileID
	Value    int
	Position Position
	Empty    bool
}

// Direction is a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all four directions in declaration order.
var Directions = []Direction{DirUp, DirDown, DirLeft, DirRight}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name such as "left" or "U" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("grid: unknown direction %q", s)
}
