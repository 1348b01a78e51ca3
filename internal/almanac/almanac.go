package almanac

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/detunized/pentomino-cal-solver/internal/domain"
	"github.com/detunized/pentomino-cal-solver/internal/ports"
)

// Runner solves all 12x31 calendar dates, fanning the independent dates out
// over a small worker pool. Each solve builds its own board, so workers share
// nothing but the solver value.
type Runner struct {
	Solver  ports.Solver
	Workers int
}

func New(s ports.Solver, workers int) *Runner {
	if workers < 1 {
		workers = 4
	}
	return &Runner{Solver: s, Workers: workers}
}

type date struct{ month, day int }

func (a *Runner) SolveAll(ctx context.Context) (*domain.AlmanacReport, error) {
	if a.Solver == nil {
		return nil, errors.New("almanac solver not configured")
	}
	start := time.Now()

	dates := make(chan date, 12*31)
	for m := 1; m <= 12; m++ {
		for d := 1; d <= 31; d++ {
			dates <- date{m, d}
		}
	}
	close(dates)

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make([]domain.DateResult, 0, 12*31)
	)
	wg.Add(a.Workers)
	for w := 0; w < a.Workers; w++ {
		go func() {
			defer wg.Done()
			for dt := range dates {
				if ctx.Err() != nil {
					return
				}
				_, st, err := a.Solver.Solve(ctx, dt.month, dt.day)
				res := domain.DateResult{
					Month:      dt.month,
					Day:        dt.day,
					Solved:     err == nil,
					Nodes:      st.Nodes,
					DurationMs: st.Duration.Milliseconds(),
				}
				mu.Lock()
				results = append(results, res)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Month != results[j].Month {
			return results[i].Month < results[j].Month
		}
		return results[i].Day < results[j].Day
	})
	report := &domain.AlmanacReport{Results: results}
	for _, r := range results {
		report.Nodes += r.Nodes
		if !r.Solved {
			report.Unsolved++
		}
	}
	report.DurationMs = time.Since(start).Milliseconds()
	return report, nil
}
