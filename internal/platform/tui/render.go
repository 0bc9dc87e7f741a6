package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// ansi is the 256-color code for each core.Color. ColorDefault has none.
var ansi = [...]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorSand:          "230",
	core.ColorWheat:         "223",
	core.ColorApricot:       "216",
	core.ColorCoral:         "209",
	core.ColorTomato:        "203",
	core.ColorGold:          "220",
	core.ColorAmber:         "214",
}

// boardStyles builds one style per core.Color. Large tiles from ColorTomato
// up are bold. A monochrome palette keeps the weight and drops the color.
func boardStyles(mono bool) []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansi))
	for c := range styles {
		s := lipgloss.NewStyle()
		if ansi[c] != "" && !mono {
			s = s.Foreground(lipgloss.Color(ansi[c]))
		}
		if core.Color(c) >= core.ColorTomato {
			s = s.Bold(true)
		}
		styles[c] = s
	}
	return styles
}

func (t Theme) cellStyle(c core.Color) lipgloss.Style {
	if int(c) >= len(t.Board) {
		return lipgloss.NewStyle()
	}
	return t.Board[c]
}

// RenderScreen turns a Screen into styled terminal text. Runs of cells with
// the same color share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	var run strings.Builder
	x := 0
	for x < s.Width() {
		color := s.GetCell(x, y).Color
		run.Reset()
		for ; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				break
			}
			run.WriteRune(cell.Rune)
		}
		if color == core.ColorDefault {
			sb.WriteString(run.String())
			continue
		}
		sb.WriteString(theme.cellStyle(color).Render(run.String()))
	}
}
