package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/detunized/pentomino-cal-solver/internal/domain"
	"github.com/detunized/pentomino-cal-solver/internal/solver"
	"github.com/detunized/pentomino-cal-solver/internal/validator"
)

func solved(t *testing.T, month, day int) *domain.Solution {
	t.Helper()
	sol, _, err := solver.NewBacktrackingSolver().Solve(context.Background(), month, day)
	require.NoError(t, err)
	return sol
}

func TestValidateAcceptsSolverOutput(t *testing.T) {
	v := validator.New()
	ok, problems, err := v.Validate(context.Background(), solved(t, 6, 28))
	require.NoError(t, err)
	assert.True(t, ok, "problems: %v", problems)
}

func TestValidateRejectsUncoveredCell(t *testing.T) {
	sol := solved(t, 6, 28)
	// knock a hole in the first piece
	p := domain.Pieces[0].Name
outer:
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c < domain.Cols; c++ {
			if sol.Board.Labels[r][c] == p {
				sol.Board.Labels[r][c] = domain.Empty
				break outer
			}
		}
	}
	ok, problems, err := validator.New().Validate(context.Background(), sol)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, problems)
}

func TestValidateRejectsOverwrittenDateCell(t *testing.T) {
	sol := solved(t, 6, 28)
	mc, _ := domain.MonthCell(6)
	sol.Board.Labels[mc.Row][mc.Col] = domain.Pieces[0].Name
	ok, _, err := validator.New().Validate(context.Background(), sol)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateRejectsDoubledPiece(t *testing.T) {
	sol := solved(t, 6, 28)
	// hand all of piece B's cells to piece A: A is oversized, B is missing
	a, b := domain.Pieces[0].Name, domain.Pieces[1].Name
	for r := 0; r < domain.Rows; r++ {
		for c := 0; c < domain.Cols; c++ {
			if sol.Board.Labels[r][c] == b {
				sol.Board.Labels[r][c] = a
			}
		}
	}
	ok, problems, err := validator.New().Validate(context.Background(), sol)
	require.NoError(t, err)
	assert.False(t, ok, "problems: %v", problems)
}

func TestValidateRejectsBadDate(t *testing.T) {
	ok, problems, err := validator.New().Validate(context.Background(), &domain.Solution{Month: 13, Day: 1})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NotEmpty(t, problems)
}
