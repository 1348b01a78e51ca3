package solver_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/detunized/pentomino-cal-solver/internal/domain"
	"github.com/detunized/pentomino-cal-solver/internal/ports"
	"github.com/detunized/pentomino-cal-solver/internal/solver"
	"github.com/detunized/pentomino-cal-solver/internal/validator"
)

func TestDLXSolveJune28(t *testing.T) {
	s := solver.NewDLXSolver()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sol, st, err := s.Solve(ctx, 6, 28)
	require.NoError(t, err, "nodes=%d dur=%v", st.Nodes, st.Duration)
	require.NotNil(t, sol)
	assert.Equal(t, "dlx", sol.Solver)

	ok, problems, err := validator.New().Validate(ctx, sol)
	require.NoError(t, err)
	assert.True(t, ok, "problems: %v", problems)
}

func TestDLXAgreesWithBacktrackingOnSolvability(t *testing.T) {
	bt := solver.NewBacktrackingSolver()
	dlx := solver.NewDLXSolver()
	ctx := context.Background()
	v := validator.New()

	// a scattering of dates across the calendar
	dates := [][2]int{{1, 1}, {2, 29}, {6, 28}, {9, 5}, {12, 31}}
	for _, d := range dates {
		a, _, errA := bt.Solve(ctx, d[0], d[1])
		b, _, errB := dlx.Solve(ctx, d[0], d[1])
		require.Equal(t, errA == nil, errB == nil, "date %d/%d", d[0], d[1])
		if errA != nil {
			continue
		}
		ok, problems, err := v.Validate(ctx, a)
		require.NoError(t, err)
		assert.True(t, ok, "backtrack %d/%d: %v", d[0], d[1], problems)
		ok, problems, err = v.Validate(ctx, b)
		require.NoError(t, err)
		assert.True(t, ok, "dlx %d/%d: %v", d[0], d[1], problems)
	}
}

func TestDLXDeterministic(t *testing.T) {
	s := solver.NewDLXSolver()
	ctx := context.Background()

	a, _, err := s.Solve(ctx, 10, 17)
	require.NoError(t, err)
	b, _, err := s.Solve(ctx, 10, 17)
	require.NoError(t, err)
	assert.Equal(t, a.Board, b.Board)
}

func TestDLXDateValidation(t *testing.T) {
	s := solver.NewDLXSolver()
	_, _, err := s.Solve(context.Background(), 0, 10)
	assert.ErrorIs(t, err, domain.ErrMonthRange)
	assert.False(t, errors.Is(err, ports.ErrNoSolution))
}
