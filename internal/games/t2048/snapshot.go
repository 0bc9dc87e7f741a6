package t2048

// Status is the coarse state shown in snapshots.
type Status string

const (
	StatusPlaying     Status = "playing"
	StatusComplete    Status = "complete"
	StatusPaused      Status = "paused"
	StatusPausedSmall Status = "paused_small_window"
)

// Snapshot captures the game for determinism tests and the CLI.
type Snapshot struct {
	Tick    uint64
	Variant string
	Size    int
	Target  int
	Moves   int
	Values  [][]int
	MaxTile int
	Status  Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	status := StatusPlaying
	switch {
	case g.tooSmall:
		status = StatusPausedSmall
	case g.paused:
		status = StatusPaused
	case g.board.IsComplete():
		status = StatusComplete
	}

	return Snapshot{
		Tick:    g.tick,
		Variant: g.variant.ID,
		Size:    g.size,
		Target:  g.winValue,
		Moves:   g.moves,
		Values:  g.board.Values(),
		MaxTile: g.board.MaxValue(),
		Status:  status,
	}
}
