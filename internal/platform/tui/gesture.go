package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Minimum drag distance, in cells. Terminal cells are roughly twice as tall
// as they are wide, so a vertical cell counts double.
const (
	minDragX = 2
	minDragY = 1
)

// GestureTracker turns a left-button press, drag and release into a
// direction action.
type GestureTracker struct {
	startX, startY int
	pressed        bool
}

// Handle feeds one mouse event. It returns an action when a drag ends far
// enough from where it began.
func (g *GestureTracker) Handle(msg tea.MouseMsg) (core.Action, bool) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return core.ActionNone, false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		g.startX, g.startY = msg.X, msg.Y
		g.pressed = true
	case tea.MouseActionRelease:
		if !g.pressed {
			return core.ActionNone, false
		}
		g.pressed = false
		return SwipeAction(msg.X-g.startX, msg.Y-g.startY)
	}
	return core.ActionNone, false
}

// SwipeAction maps a drag vector to a direction. Short drags are ignored.
func SwipeAction(dx, dy int) (core.Action, bool) {
	// Compare in "square" units: one row is about two columns
	h, v := core.Abs(dx), core.Abs(dy)*2
	if core.Abs(dx) < minDragX && core.Abs(dy) < minDragY {
		return core.ActionNone, false
	}

	switch {
	case h > v && dx > 0:
		return core.ActionRight, true
	case h > v:
		return core.ActionLeft, true
	case v > h && dy > 0:
		return core.ActionDown, true
	case v > h:
		return core.ActionUp, true
	}
	// Perfect diagonal
	return core.ActionNone, false
}
