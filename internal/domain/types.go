package domain

// Grid dimensions of the calendar board.
const (
	Rows = 7
	Cols = 7
)

// Label marks what occupies one board cell. Piece cells carry the piece's
// letter; everything else is one of the sentinel labels below.
type Label byte

const (
	Empty   Label = '.'
	Blocked Label = '#'
	Exposed Label = ' '
)

// Cell identifies a board position.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board holds the per-cell labels for one solve.
type Board struct {
	Labels [Rows][Cols]Label `json:"labels"`
}

// In reports whether c is inside the grid.
func (b *Board) In(c Cell) bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Cols
}

// Free reports whether c is inside the grid and not yet taken.
func (b *Board) Free(c Cell) bool {
	return b.In(c) && b.Labels[c.Row][c.Col] == Empty
}

// Orientation is one normalized rotation/reflection of a piece shape: cells
// sorted row-major with the minimum row and column shifted to zero.
type Orientation []Cell

// PieceShape is one physical puzzle piece: a letter plus its base cell
// offsets in a canonical pose.
type PieceShape struct {
	Name  Label  `json:"name"`
	Cells []Cell `json:"cells"`
}

// Size is the number of cells the piece covers.
func (p PieceShape) Size() int { return len(p.Cells) }

// Solution is a fully labeled board for one calendar date.
type Solution struct {
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	Board     Board  `json:"board"`
	Solver    string `json:"solver,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

// SolutionMeta is a lightweight listing entry for the solution cache.
type SolutionMeta struct {
	Month     int   `json:"month"`
	Day       int   `json:"day"`
	CreatedAt int64 `json:"createdAt"`
}

// Hint reveals where a single piece goes for a date.
type Hint struct {
	Piece   string `json:"piece"`
	Cells   []Cell `json:"cells"`
	Message string `json:"message,omitempty"`
}

// DateResult captures the solve outcome for one calendar date.
type DateResult struct {
	Month      int   `json:"month"`
	Day        int   `json:"day"`
	Solved     bool  `json:"solved"`
	Nodes      int   `json:"nodes"`
	DurationMs int64 `json:"durationMs"`
}

// AlmanacReport aggregates DateResults over every (month, day) pair.
type AlmanacReport struct {
	Results    []DateResult `json:"results"`
	Unsolved   int          `json:"unsolved"`
	Nodes      int          `json:"nodes"`
	DurationMs int64        `json:"durationMs"`
}
