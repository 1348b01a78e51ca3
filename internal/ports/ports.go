package ports

import (
	"context"
	"errors"
	"time"

	"github.com/detunized/pentomino-cal-solver/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// ErrNoSolution reports that the search space was exhausted. It is a defined
// negative result, not an internal failure.
var ErrNoSolution = errors.New("no solution")

// Solver finds a complete tiling that leaves the date cells exposed.
type Solver interface {
	Solve(ctx context.Context, month, day int) (*domain.Solution, Stats, error)
}

// Validator checks that a solution is a complete, non-overlapping tiling.
type Validator interface {
	Validate(ctx context.Context, s *domain.Solution) (ok bool, problems []string, err error)
}

// Hinter reveals the placement of a single piece for a date.
type Hinter interface {
	Hint(ctx context.Context, month, day int) (domain.Hint, bool, error)
}

// Almanac solves every date on the calendar.
type Almanac interface {
	SolveAll(ctx context.Context) (*domain.AlmanacReport, error)
}

// Storage persists and retrieves solved boards as JSON.
type Storage interface {
	Save(ctx context.Context, s *domain.Solution) error
	Load(ctx context.Context, month, day int) (*domain.Solution, error)
	List(ctx context.Context) ([]domain.SolutionMeta, error)
}
