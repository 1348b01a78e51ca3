package validator

import (
	"context"
	"fmt"

	"github.com/detunized/pentomino-cal-solver/internal/domain"
	"github.com/detunized/pentomino-cal-solver/internal/solver"
)

// TilingValidator checks a finished solution for exact cover: every
// non-blocked cell carries exactly one label, the two date cells are exposed,
// and each piece appears once with a cell set matching one of its
// orientations.
type TilingValidator struct{}

func New() *TilingValidator { return &TilingValidator{} }

func (v *TilingValidator) Validate(ctx context.Context, s *domain.Solution) (bool, []string, error) {
	if s == nil {
		return false, []string{"nil solution"}, nil
	}
	var problems []string

	mc, okM := domain.MonthCell(s.Month)
	dc, okD := domain.DayCell(s.Day)
	if !okM || !okD {
		return false, []string{fmt.Sprintf("invalid date %d/%d", s.Month, s.Day)}, nil
	}

	blocked := make(map[domain.Cell]bool, len(domain.BlockedCells))
	for _, c := range domain.BlockedCells {
		blocked[c] = true
	}

	covered := make(map[domain.Label][]domain.Cell)
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c < domain.Cols; c++ {
			cell := domain.Cell{Row: r, Col: c}
			label := s.Board.Labels[r][c]
			switch label {
			case domain.Blocked:
				if !blocked[cell] {
					problems = append(problems, fmt.Sprintf("cell (%d,%d) blocked but not a blocked position", r, c))
				}
			case domain.Exposed:
				if cell != mc && cell != dc {
					problems = append(problems, fmt.Sprintf("cell (%d,%d) exposed but not a date cell", r, c))
				}
			case domain.Empty:
				problems = append(problems, fmt.Sprintf("cell (%d,%d) left uncovered", r, c))
			default:
				if _, ok := domain.PieceByName(label); !ok {
					problems = append(problems, fmt.Sprintf("cell (%d,%d) has unknown label %q", r, c, label))
					continue
				}
				covered[label] = append(covered[label], cell)
			}
			if blocked[cell] && label != domain.Blocked {
				problems = append(problems, fmt.Sprintf("blocked cell (%d,%d) was overwritten", r, c))
			}
		}
	}
	if s.Board.Labels[mc.Row][mc.Col] != domain.Exposed {
		problems = append(problems, fmt.Sprintf("month cell (%d,%d) is not exposed", mc.Row, mc.Col))
	}
	if s.Board.Labels[dc.Row][dc.Col] != domain.Exposed {
		problems = append(problems, fmt.Sprintf("day cell (%d,%d) is not exposed", dc.Row, dc.Col))
	}

	for _, p := range domain.Pieces {
		cells := covered[p.Name]
		if len(cells) != p.Size() {
			problems = append(problems, fmt.Sprintf("piece %c covers %d cells, want %d", p.Name, len(cells), p.Size()))
			continue
		}
		got := solver.Normalize(cells)
		match := false
		for _, o := range solver.Orientations(p.Cells) {
			if solver.SameOrientation(got, o) {
				match = true
				break
			}
		}
		if !match {
			problems = append(problems, fmt.Sprintf("piece %c cells do not form a valid orientation", p.Name))
		}
	}

	return len(problems) == 0, problems, nil
}
