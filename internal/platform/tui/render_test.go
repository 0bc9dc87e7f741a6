package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "16", core.ColorCoral)
	s.DrawTextColored(0, 1, "2048", core.ColorAmber)

	// Tests run without a terminal, so lipgloss emits no escape codes.
	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestBoardStyles(t *testing.T) {
	color := boardStyles(false)
	mono := boardStyles(true)

	if len(color) != int(core.ColorAmber)+1 {
		t.Fatalf("len(boardStyles) = %d, want one per color", len(color))
	}
	if _, ok := color[core.ColorCoral].GetForeground().(lipgloss.NoColor); ok {
		t.Error("colored palette has no foreground for ColorCoral")
	}
	if _, ok := mono[core.ColorCoral].GetForeground().(lipgloss.NoColor); !ok {
		t.Error("monochrome palette sets a foreground")
	}
	if !mono[core.ColorAmber].GetBold() || mono[core.ColorSand].GetBold() {
		t.Error("bold should start at ColorTomato")
	}
}

func TestThemeCellStyleOutOfRange(t *testing.T) {
	th := DefaultTheme()
	if th.cellStyle(core.Color(200)).GetBold() {
		t.Error("unknown color should get a plain style")
	}
}

func TestTickInterval(t *testing.T) {
	if got := tickInterval(20); got != 50*time.Millisecond {
		t.Errorf("tickInterval(20) = %v, want 50ms", got)
	}
	def := time.Second / time.Duration(core.DefaultConfig().TickRate)
	if got := tickInterval(0); got != def {
		t.Errorf("tickInterval(0) = %v, want %v", got, def)
	}
}
