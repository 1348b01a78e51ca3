package solver

import (
	"context"
	"time"

	"github.com/detunized/pentomino-cal-solver/internal/domain"
	"github.com/detunized/pentomino-cal-solver/internal/ports"
)

// DLXSolver implements Algorithm X / Dancing Links for the calendar tiling.
// Exact-cover mapping: one column per open board cell (41 for a valid date)
// plus one column per piece (8), one row per valid absolute placement of a
// piece orientation. A solution covers every cell column exactly once and
// uses every piece exactly once.
type DLXSolver struct{}

func NewDLXSolver() *DLXSolver { return &DLXSolver{} }

// node/column structures (classic dancing links)
type node struct {
	left, right, up, down *node
	col                   *column
	rowIdx                int // index into dlx.rows
}
type column struct {
	node
	size   int
	active bool // whether this constraint column is currently uncovered
}

// dlxRow records what a matrix row means: a piece and the absolute cells its
// placement covers.
type dlxRow struct {
	piece int // index into pieceTable
	cells []domain.Cell
}

type dlx struct {
	cols      []*column
	rows      []dlxRow
	sol       []int
	nodes     int
	activeCnt int // number of active (uncovered) columns
}

// newDLX builds the matrix for one starting board. Column order: open cells
// in row-major order, then pieces in solve order. Row order follows piece,
// orientation, then origin in row-major order, so the search is
// deterministic for a fixed date.
func newDLX(board *domain.Board) *dlx {
	var cellCol [domain.Rows][domain.Cols]int
	open := 0
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c < domain.Cols; c++ {
			if board.Labels[r][c] == domain.Empty {
				cellCol[r][c] = open
				open++
			} else {
				cellCol[r][c] = -1
			}
		}
	}

	d := &dlx{sol: make([]int, len(pieceTable))}
	nCols := open + len(pieceTable)
	d.cols = make([]*column, nCols)
	for i := 0; i < nCols; i++ {
		col := &column{active: true}
		col.up = &col.node
		col.down = &col.node
		d.cols[i] = col
	}
	d.activeCnt = nCols

	colIDs := make([]int, 0, 8)
	for pi, p := range pieceTable {
		for _, pose := range p.poses {
			for originR := 0; originR < domain.Rows; originR++ {
				for originC := 0; originC < domain.Cols; originC++ {
					colIDs = colIDs[:0]
					ok := true
					for _, off := range pose {
						c := domain.Cell{Row: originR + off.Row, Col: originC + off.Col}
						if !board.Free(c) {
							ok = false
							break
						}
						colIDs = append(colIDs, cellCol[c.Row][c.Col])
					}
					if !ok {
						continue
					}
					cells := make([]domain.Cell, len(pose))
					for i, off := range pose {
						cells[i] = domain.Cell{Row: originR + off.Row, Col: originC + off.Col}
					}
					d.addRow(dlxRow{piece: pi, cells: cells}, append(colIDs, open+pi))
				}
			}
		}
	}
	return d
}

// addRow links one matrix row into the column lists, appending nodes at the
// bottom of each column.
func (d *dlx) addRow(row dlxRow, colIDs []int) {
	idx := len(d.rows)
	d.rows = append(d.rows, row)
	var first, prev *node
	for _, colID := range colIDs {
		col := d.cols[colID]
		n := &node{col: col, rowIdx: idx}
		// vertical insert (at bottom)
		n.down = &col.node
		n.up = col.node.up
		col.node.up.down = n
		col.node.up = n
		col.size++
		// horizontal ring for the nodes of the row
		if first == nil {
			first = n
			n.left = n
			n.right = n
		} else {
			n.left = prev
			n.right = prev.right
			prev.right.left = n
			prev.right = n
		}
		prev = n
	}
}

// core operations
func (d *dlx) cover(col *column) {
	if col.active {
		col.active = false
		d.activeCnt--
	}
	for i := col.down; i != &col.node; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (d *dlx) uncover(col *column) {
	for i := col.up; i != &col.node; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		d.activeCnt++
	}
}

// chooseColumn picks the active column with the smallest size, ties broken
// by construction order.
func (d *dlx) chooseColumn() *column {
	var best *column
	for _, c := range d.cols {
		if c.active {
			if best == nil || c.size < best.size {
				best = c
				if best.size == 0 {
					break
				}
			}
		}
	}
	return best
}

func (d *dlx) search(ctx context.Context, k int) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}
	// all constraints covered
	if d.activeCnt == 0 {
		d.sol = d.sol[:k]
		return true
	}

	c := d.chooseColumn()
	if c == nil || c.size == 0 {
		return false
	}
	d.cover(c)
	for r := c.down; r != &c.node; r = r.down {
		d.nodes++
		d.sol[k] = r.rowIdx
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				d.cover(j.col)
			}
		}
		if d.search(ctx, k+1) {
			// back out coverings done for this row before exiting
			for j := r.left; j != r; j = j.left {
				d.uncover(j.col)
			}
			d.uncover(c)
			return true
		}
		// backtrack: uncover in reverse order
		for j := r.left; j != r; j = j.left {
			d.uncover(j.col)
		}
	}
	d.uncover(c)
	return false
}

func (s *DLXSolver) Solve(ctx context.Context, month, day int) (*domain.Solution, ports.Stats, error) {
	start := time.Now()
	board, err := domain.NewBoard(month, day)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	d := newDLX(board)
	if !d.search(ctx, 0) {
		stats := ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		return nil, stats, ports.ErrNoSolution
	}
	// write the chosen placements back onto the starting board
	for _, idx := range d.sol {
		row := d.rows[idx]
		name := pieceTable[row.piece].shape.Name
		for _, c := range row.cells {
			board.Labels[c.Row][c.Col] = name
		}
	}
	sol := &domain.Solution{
		Month:     month,
		Day:       day,
		Board:     *board,
		Solver:    "dlx",
		CreatedAt: time.Now().UnixNano(),
	}
	return sol, ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}, nil
}
