package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/detunized/pentomino-cal-solver/internal/almanac"
	"github.com/detunized/pentomino-cal-solver/internal/domain"
	"github.com/detunized/pentomino-cal-solver/internal/hint"
	"github.com/detunized/pentomino-cal-solver/internal/ports"
	"github.com/detunized/pentomino-cal-solver/internal/render"
	"github.com/detunized/pentomino-cal-solver/internal/solver"
)

func usage() {
	prog := os.Args[0]
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] [month day]\n", prog)
	fmt.Fprintln(os.Stderr, "  month: 1-12")
	fmt.Fprintln(os.Stderr, "  day: 1-31")
	fmt.Fprintln(os.Stderr, "With no arguments, solves for today's date.")
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func pickSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "dlx":
		return solver.NewDLXSolver()
	default:
		return solver.NewBacktrackingSolver()
	}
}

func main() {
	solverKind := flag.String("solver", "backtrack", "solver to use: backtrack|dlx")
	color := flag.Bool("color", false, "colorize the board by piece")
	wantHint := flag.Bool("hint", false, "only reveal where the first piece goes")
	runAlmanac := flag.Bool("almanac", false, "solve every date on the calendar and report")
	workers := flag.Int("workers", 4, "worker count for -almanac")
	flag.Usage = usage
	flag.Parse()

	s := pickSolver(*solverKind)
	ctx := context.Background()

	if *runAlmanac {
		os.Exit(reportAlmanac(ctx, s, *workers))
	}

	month, day, ok := parseDate(flag.Args())
	if !ok {
		usage()
		os.Exit(1)
	}
	if month < 1 || month > 12 {
		fmt.Fprintf(os.Stderr, "Invalid month: %d\n", month)
		os.Exit(1)
	}
	if day < 1 || day > 31 {
		fmt.Fprintf(os.Stderr, "Invalid day: %d\n", day)
		os.Exit(1)
	}

	if *wantHint {
		os.Exit(printHint(ctx, s, month, day))
	}

	fmt.Printf("Solving for %s %d...\n", domain.MonthNames[month-1], day)
	sol, st, err := s.Solve(ctx, month, day)
	if errors.Is(err, ports.ErrNoSolution) {
		fmt.Println("No solution found!")
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println()
	if *color {
		fmt.Println(render.Colored(&sol.Board))
	} else {
		fmt.Println(render.Compact(&sol.Board))
	}
	fmt.Println()
	fmt.Println(render.Decorated(sol))
	fmt.Printf("\n(%d nodes, %v)\n", st.Nodes, st.Duration.Round(time.Microsecond))
}

// parseDate resolves the positional arguments: none means today, exactly two
// mean an explicit month and day. Anything else is a usage error.
func parseDate(args []string) (month, day int, ok bool) {
	switch len(args) {
	case 0:
		now := time.Now()
		return int(now.Month()), now.Day(), true
	case 2:
		m, err1 := strconv.Atoi(args[0])
		d, err2 := strconv.Atoi(args[1])
		if err1 != nil || err2 != nil {
			return 0, 0, false
		}
		return m, d, true
	default:
		return 0, 0, false
	}
}

func printHint(ctx context.Context, s ports.Solver, month, day int) int {
	h, found, err := hint.New(s).Hint(ctx, month, day)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if !found {
		fmt.Println("No solution found!")
		return 0
	}
	fmt.Println(h.Message)
	return 0
}

func reportAlmanac(ctx context.Context, s ports.Solver, workers int) int {
	report, err := almanac.New(s, workers).SolveAll(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	solved := len(report.Results) - report.Unsolved
	fmt.Printf("Solved %d/%d dates in %dms (%d nodes)\n",
		solved, len(report.Results), report.DurationMs, report.Nodes)
	for _, r := range report.Results {
		if !r.Solved {
			fmt.Printf("  no solution for %s %d\n", domain.MonthNames[r.Month-1], r.Day)
		}
	}
	if report.Unsolved > 0 {
		return 1
	}
	return 0
}
