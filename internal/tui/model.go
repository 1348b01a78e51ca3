package tui

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/detunized/pentomino-cal-solver/internal/domain"
	"github.com/detunized/pentomino-cal-solver/internal/ports"
	"github.com/detunized/pentomino-cal-solver/internal/solver"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

type Model struct {
	solver ports.Solver

	m        mode
	input    textinput.Model
	logLines []string
	solution *domain.Solution

	width  int
	height int
}

var reDate = regexp.MustCompile(`^(\d{1,2})\s+(\d{1,2})$`)

func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "month day (e.g. 6 28)"
	ti.Prompt = "> "
	ti.CharLimit = 20
	ti.Width = 30

	return Model{
		solver: solver.NewBacktrackingSolver(),
		m:      modeNormal,
		input:  ti,
		logLines: []string{
			"ready (press i to enter a date, t for today, q to quit)",
		},
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.m {
		case modeNormal:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "i":
				m.m = modeInput
				m.input.SetValue("")
				m.input.Focus()
				return m, nil
			case "t":
				now := time.Now()
				m.solveDate(int(now.Month()), now.Day())
				return m, nil
			default:
				return m, nil
			}

		case modeInput:
			switch msg.String() {
			case "esc":
				m.m = modeNormal
				m.input.Blur()
				return m, nil
			case "enter":
				line := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				m.m = modeNormal
				m.input.Blur()
				if line != "" {
					m.execDate(line)
				}
				return m, nil
			}

			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) execDate(line string) {
	groups := reDate.FindStringSubmatch(line)
	if groups == nil {
		m.appendLog("expected: month day (e.g. 6 28)")
		return
	}
	month, _ := strconv.Atoi(groups[1])
	day, _ := strconv.Atoi(groups[2])
	m.solveDate(month, day)
}

func (m *Model) solveDate(month, day int) {
	sol, st, err := m.solver.Solve(context.Background(), month, day)
	switch {
	case errors.Is(err, ports.ErrNoSolution):
		m.solution = nil
		m.appendLog(fmt.Sprintf("no solution for %d/%d", month, day))
	case err != nil:
		m.solution = nil
		m.appendLog(err.Error())
	default:
		m.solution = sol
		m.appendLog(fmt.Sprintf("solved %s %d (%d nodes, %v)",
			domain.MonthNames[month-1], day, st.Nodes, st.Duration.Round(time.Millisecond)))
	}
}

func (m *Model) appendLog(line string) {
	m.logLines = append(m.logLines, line)
	if len(m.logLines) > 50 {
		m.logLines = m.logLines[len(m.logLines)-50:]
	}
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	modeStr := "NORMAL"
	if m.m == modeInput {
		modeStr = "INPUT"
	}
	header := titleStyle.Render(fmt.Sprintf("calendar-tui  mode:%s", modeStr))

	board := boxStyle.Render(renderBoard(m.solution))

	logHeight := 5
	logStart := max(0, len(m.logLines)-logHeight)
	logBody := strings.Join(m.logLines[logStart:], "\n")
	logBox := boxStyle.Width(max(30, m.width-2)).Render(logBody)

	var inputLine string
	if m.m == modeInput {
		inputLine = m.input.View()
	} else {
		inputLine = "press i to enter a date"
	}
	inputBox := boxStyle.Width(max(30, m.width-2)).Render(inputLine)

	return header + "\n" + board + "\n" + logBox + "\n" + inputBox + "\n"
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
