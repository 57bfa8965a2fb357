package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/breakout-tui/breakout/internal/core"
)

// ansiCodes maps core.Color to ANSI-256 color codes for lipgloss.
var ansiCodes = map[core.Color]string{
	core.ColorBlack:         "0",
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
	core.ColorGray:          "245",
}

type stylePair struct {
	fg, bg core.Color
}

// pairStyles maps every fg/bg color combination to its lipgloss style.
// Built once at package init and only read afterwards, so renders from
// concurrent SSH sessions need no locking.
var pairStyles = buildPairStyles()

func buildPairStyles() map[stylePair]lipgloss.Style {
	styles := make(map[stylePair]lipgloss.Style)
	for fg := core.ColorDefault; fg <= core.ColorGray; fg++ {
		for bg := core.ColorDefault; bg <= core.ColorGray; bg++ {
			style := lipgloss.NewStyle()
			if code, ok := ansiCodes[fg]; ok {
				style = style.Foreground(lipgloss.Color(code))
			}
			if code, ok := ansiCodes[bg]; ok {
				style = style.Background(lipgloss.Color(code))
			}
			styles[stylePair{fg, bg}] = style
		}
	}
	return styles
}

// styleFor returns the lipgloss style for a fg/bg color combination.
func styleFor(fg, bg core.Color) lipgloss.Style {
	if s, ok := pairStyles[stylePair{fg, bg}]; ok {
		return s
	}
	return pairStyles[stylePair{}]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Fg == core.ColorDefault && start.Bg == core.ColorDefault {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styleFor(start.Fg, start.Bg).Render(run.String()))
			}
		}
	}
	return sb.String()
}
