package render

import (
	"fmt"
	"strings"

	"github.com/vyevs/ansi"

	"github.com/detunized/pentomino-cal-solver/internal/domain"
)

// Compact renders one label rune per cell, one row per line.
func Compact(b *domain.Board) string {
	var sb strings.Builder
	sb.Grow((domain.Cols + 1) * domain.Rows)
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c < domain.Cols; c++ {
			sb.WriteByte(byte(b.Labels[r][c]))
		}
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}

// pieceColors maps each piece letter to a terminal color, in solve order.
var pieceColors = map[domain.Label]string{
	'A': "red",
	'B': "green",
	'C': "yellow",
	'D': "cyan",
	'E': "orange",
	'F': "pink",
	'G': "purple",
	'H': "chartreuse",
}

// Colored renders the compact grid with a fixed color per piece.
func Colored(b *domain.Board) string {
	var sb strings.Builder
	sb.Grow(16 * domain.Cols * domain.Rows)
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c < domain.Cols; c++ {
			label := b.Labels[r][c]
			if color, ok := pieceColors[label]; ok {
				sb.WriteString(ansi.FGColorName(color))
			} else {
				sb.WriteString(ansi.Clear)
			}
			sb.WriteByte(byte(label))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(ansi.Clear)
	return strings.TrimRight(sb.String(), "\n")
}

// Decorated renders the fixed-width calendar table with month and day names
// showing through at the exposed cells.
func Decorated(s *domain.Solution) string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Solution for %s %d:", domain.MonthNames[s.Month-1], s.Day))
	lines = append(lines, "")

	for row := 0; row < 2; row++ {
		var sb strings.Builder
		for col := 0; col < 6; col++ {
			label := s.Board.Labels[row][col]
			if label == domain.Exposed {
				sb.WriteString(fmt.Sprintf("[%4s]", domain.MonthNames[row*6+col]))
			} else {
				sb.WriteString(fmt.Sprintf("  %c   ", label))
			}
		}
		lines = append(lines, sb.String())
	}

	for row := 2; row < domain.Rows; row++ {
		var sb strings.Builder
		for col := 0; col < domain.Cols; col++ {
			d := domain.DayAt(domain.Cell{Row: row, Col: col})
			if d == 0 {
				sb.WriteString("      ")
				continue
			}
			label := s.Board.Labels[row][col]
			if label == domain.Exposed {
				sb.WriteString(fmt.Sprintf("[%3d ]", d))
			} else {
				sb.WriteString(fmt.Sprintf("  %c   ", label))
			}
		}
		lines = append(lines, sb.String())
	}

	return strings.Join(lines, "\n")
}
