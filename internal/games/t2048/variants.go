// Package t2048 turns the grid engine into playable board variants.
package t2048

import (
	"sync"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// ClassicID is the variant whose board comes from the loaded config.
const ClassicID = "2048"

// Variant defines a board shape and its target tile.
type Variant struct {
	ID       string
	Title    string
	Summary  string
	Size     int // 0 takes grid.size from the config
	WinValue int // 0 takes grid.win_value from the config
}

// Variants lists every playable variant in menu order.
var Variants = []Variant{
	{ID: ClassicID, Title: "2048", Summary: "Classic board, shaped by your config"},
	{ID: "2048_mini", Title: "2048 Mini", Summary: "3x3 board, reach 256", Size: 3, WinValue: 256},
	{ID: "2048_large", Title: "2048 Large", Summary: "5x5 board, reach 4096", Size: 5, WinValue: 4096},
	{ID: "2048_huge", Title: "2048 Huge", Summary: "6x6 board, reach 8192", Size: 6, WinValue: 8192},
}

// Package-level config shared by every game created afterwards
var (
	settingsMu sync.RWMutex
	settings   = config.Default()
)

// SetConfig replaces the configuration used by games reset after the call.
func SetConfig(cfg config.Config) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

// CurrentConfig returns the configuration new games will use.
func CurrentConfig() config.Config {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// GetVariant looks up a variant by ID.
func GetVariant(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// Resolve fills in the fields the variant leaves to the config.
func (v Variant) Resolve(cfg config.Config) (size, winValue int) {
	size, winValue = v.Size, v.WinValue
	if size == 0 {
		size = cfg.Grid.Size
	}
	if winValue == 0 {
		winValue = cfg.Grid.WinValue
	}
	return size, winValue
}

func init() {
	for _, v := range Variants {
		v := v
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}
