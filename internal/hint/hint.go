package hint

import (
	"context"
	"errors"
	"fmt"

	"github.com/detunized/pentomino-cal-solver/internal/domain"
	"github.com/detunized/pentomino-cal-solver/internal/ports"
)

// FirstPiece is a Hinter that solves the date and reveals only where the
// first piece goes, as a nudge for someone working the physical puzzle.
type FirstPiece struct {
	Solver ports.Solver
}

func New(s ports.Solver) *FirstPiece { return &FirstPiece{Solver: s} }

func (h *FirstPiece) Hint(ctx context.Context, month, day int) (domain.Hint, bool, error) {
	sol, _, err := h.Solver.Solve(ctx, month, day)
	if errors.Is(err, ports.ErrNoSolution) {
		return domain.Hint{}, false, nil
	}
	if err != nil {
		return domain.Hint{}, false, err
	}
	p := domain.Pieces[0]
	var cells []domain.Cell
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c < domain.Cols; c++ {
			if sol.Board.Labels[r][c] == p.Name {
				cells = append(cells, domain.Cell{Row: r, Col: c})
			}
		}
	}
	if len(cells) == 0 {
		return domain.Hint{}, false, fmt.Errorf("piece %c missing from solution", p.Name)
	}
	msg := fmt.Sprintf("Piece %c goes in the top-left-most spot at row %d, col %d",
		p.Name, cells[0].Row, cells[0].Col)
	return domain.Hint{Piece: string(p.Name), Cells: cells, Message: msg}, true, nil
}
