package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/detunized/pentomino-cal-solver/internal/domain"
	"github.com/detunized/pentomino-cal-solver/internal/render"
	"github.com/detunized/pentomino-cal-solver/internal/solver"
)

func solveJune28(t *testing.T) *domain.Solution {
	t.Helper()
	sol, _, err := solver.NewBacktrackingSolver().Solve(context.Background(), 6, 28)
	require.NoError(t, err)
	return sol
}

func TestCompactShape(t *testing.T) {
	sol := solveJune28(t)
	out := render.Compact(&sol.Board)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, domain.Rows)
	for i, line := range lines {
		assert.Len(t, line, domain.Cols, "row %d", i)
	}
	// blocked corner and no unfilled cells
	assert.Equal(t, byte('#'), lines[0][6])
	assert.NotContains(t, out, ".")
}

func TestDecoratedShowsDate(t *testing.T) {
	sol := solveJune28(t)
	out := render.Decorated(sol)
	assert.True(t, strings.HasPrefix(out, "Solution for Jun 28:"))
	assert.Contains(t, out, "[ Jun]")
	assert.Contains(t, out, "[ 28 ]")
	// no other month or day windows are open
	assert.Equal(t, 2, strings.Count(out, "["))
}

func TestColoredCarriesSameLabels(t *testing.T) {
	sol := solveJune28(t)
	plain := render.Compact(&sol.Board)
	colored := render.Colored(&sol.Board)
	// strip escape sequences and compare the text content
	var sb strings.Builder
	skip := false
	for _, r := range colored {
		switch {
		case r == '\x1b':
			skip = true
		case skip:
			if r == 'm' {
				skip = false
			}
		default:
			sb.WriteRune(r)
		}
	}
	assert.Equal(t, plain, strings.TrimRight(sb.String(), "\n"))
}
