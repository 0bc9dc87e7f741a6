// Package tui runs games in a terminal through Bubble Tea, locally or over
// SSH. It maps keys and mouse drags to actions and draws the game screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// TickMsg advances the game by one frame.
type TickMsg time.Time

// tickInterval is the frame period for rate. Non-positive rates use the
// default rate.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
