package usecase

import (
	"context"
	"errors"

	"github.com/detunized/pentomino-cal-solver/internal/domain"
	"github.com/detunized/pentomino-cal-solver/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Hinter    ports.Hinter
	Almanac   ports.Almanac
	Storage   ports.Storage
}

func NewService(s ports.Solver, v ports.Validator, h ports.Hinter, a ports.Almanac, st ports.Storage) *Service {
	return &Service{Solver: s, Validator: v, Hinter: h, Almanac: a, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, month, day int) (*domain.Solution, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, month, day)
}

// SolveCached loads a previously stored solution when one exists, solving and
// storing otherwise. It degrades to a plain solve when no storage is wired.
func (u *Service) SolveCached(ctx context.Context, month, day int) (*domain.Solution, ports.Stats, error) {
	if u.Storage != nil {
		sol, err := u.Storage.Load(ctx, month, day)
		switch {
		case err == nil:
			return sol, ports.Stats{}, nil
		case errors.Is(err, domain.ErrMonthRange), errors.Is(err, domain.ErrDayRange):
			return nil, ports.Stats{}, err
		}
		// cache miss or unreadable file: fall through and solve
	}
	sol, st, err := u.Solve(ctx, month, day)
	if err != nil {
		return nil, st, err
	}
	if u.Storage != nil {
		_ = u.Storage.Save(ctx, sol)
	}
	return sol, st, nil
}

func (u *Service) Validate(ctx context.Context, s *domain.Solution) (bool, []string, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, s)
}

func (u *Service) Hint(ctx context.Context, month, day int) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, month, day)
}

func (u *Service) SolveAll(ctx context.Context) (*domain.AlmanacReport, error) {
	if u.Almanac == nil {
		return nil, errNotConfigured
	}
	return u.Almanac.SolveAll(ctx)
}

// Persistence
func (u *Service) Save(ctx context.Context, s *domain.Solution) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, s)
}

func (u *Service) Load(ctx context.Context, month, day int) (*domain.Solution, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, month, day)
}

func (u *Service) List(ctx context.Context) ([]domain.SolutionMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
