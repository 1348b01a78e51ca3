package solver

import (
	"context"
	"time"

	"github.com/detunized/pentomino-cal-solver/internal/domain"
	"github.com/detunized/pentomino-cal-solver/internal/ports"
)

// BacktrackingSolver places pieces with first-empty-cell backtracking.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// pieceOrientations pairs a piece with its precomputed orientation table.
type pieceOrientations struct {
	shape domain.PieceShape
	poses []domain.Orientation
}

// pieceTable is built once; orientation generation is a pure function of the
// piece shapes.
var pieceTable = buildPieceTable()

func buildPieceTable() []pieceOrientations {
	out := make([]pieceOrientations, 0, len(domain.Pieces))
	for _, p := range domain.Pieces {
		out = append(out, pieceOrientations{shape: p, poses: Orientations(p.Cells)})
	}
	return out
}

func (s *BacktrackingSolver) Solve(ctx context.Context, month, day int) (*domain.Solution, ports.Stats, error) {
	start := time.Now()
	board, err := domain.NewBoard(month, day)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	st := &search{board: board, pieces: pieceTable, used: make([]bool, len(pieceTable))}
	if !st.run(ctx) {
		stats := ports.Stats{Nodes: st.nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		return nil, stats, ports.ErrNoSolution
	}
	sol := &domain.Solution{
		Month:     month,
		Day:       day,
		Board:     *board,
		Solver:    "backtrack",
		CreatedAt: time.Now().UnixNano(),
	}
	return sol, ports.Stats{Nodes: st.nodes, Duration: time.Since(start)}, nil
}

// search owns all mutable state for one solve: the occupancy grid and the
// remaining-piece flags. Every placement committed on the way into a
// recursive call is undone on the way out unless that branch is the answer.
type search struct {
	board  *domain.Board
	pieces []pieceOrientations
	used   []bool
	nodes  int
}

func (s *search) firstEmpty() (domain.Cell, bool) {
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c < domain.Cols; c++ {
			if s.board.Labels[r][c] == domain.Empty {
				return domain.Cell{Row: r, Col: c}, true
			}
		}
	}
	return domain.Cell{}, false
}

// place commits a pose anchored so that its cell anchor lands on target. It
// returns the absolute cells written, or false when any cell is out of
// bounds or already taken; a failed place leaves the board untouched.
func (s *search) place(pose domain.Orientation, target, anchor domain.Cell, name domain.Label) ([]domain.Cell, bool) {
	originR := target.Row - anchor.Row
	originC := target.Col - anchor.Col
	abs := make([]domain.Cell, len(pose))
	for i, off := range pose {
		c := domain.Cell{Row: originR + off.Row, Col: originC + off.Col}
		if !s.board.Free(c) {
			return nil, false
		}
		abs[i] = c
	}
	for _, c := range abs {
		s.board.Labels[c.Row][c.Col] = name
	}
	return abs, true
}

func (s *search) unplace(cells []domain.Cell) {
	for _, c := range cells {
		s.board.Labels[c.Row][c.Col] = domain.Empty
	}
}

// run recurses on the first empty cell in row-major order. Only placements
// that cover that cell are tried, which is what keeps the branching factor
// small: any placement leaving it uncovered could never lead to a full
// tiling anyway.
func (s *search) run(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	target, ok := s.firstEmpty()
	if !ok {
		return true
	}
	for i := range s.pieces {
		if s.used[i] {
			continue
		}
		p := s.pieces[i]
		for _, pose := range p.poses {
			for _, anchor := range pose {
				s.nodes++
				cells, ok := s.place(pose, target, anchor, p.shape.Name)
				if !ok {
					continue
				}
				s.used[i] = true
				if s.run(ctx) {
					return true
				}
				s.used[i] = false
				s.unplace(cells)
			}
		}
	}
	return false
}
