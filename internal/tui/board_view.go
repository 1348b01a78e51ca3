package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/detunized/pentomino-cal-solver/internal/domain"
)

// pieceStyles colors each piece letter, in solve order A-H.
var pieceStyles = map[domain.Label]lipgloss.Style{
	'A': lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	'B': lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	'C': lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	'D': lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	'E': lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	'F': lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	'G': lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	'H': lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
}

var dimStyle = lipgloss.NewStyle().Faint(true)

// renderBoard draws the solved grid in a fixed-width layout, two columns per
// cell so pieces read as blocks.
func renderBoard(sol *domain.Solution) string {
	if sol == nil {
		return "no solution on screen yet"
	}
	var b strings.Builder
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c < domain.Cols; c++ {
			label := sol.Board.Labels[r][c]
			cell := string(byte(label)) + " "
			switch label {
			case domain.Blocked:
				b.WriteString(dimStyle.Render("# "))
			case domain.Exposed:
				b.WriteString("[]")
			default:
				if style, ok := pieceStyles[label]; ok {
					b.WriteString(style.Render(cell))
				} else {
					b.WriteString(cell)
				}
			}
		}
		if r != domain.Rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
