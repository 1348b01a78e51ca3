package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/detunized/pentomino-cal-solver/internal/domain"
)

// FS caches solved boards as JSON files, one directory per month:
// <dir>/06/28.json.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(month, day int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%02d", month), fmt.Sprintf("%02d.json", day))
}

func (s *FS) Save(ctx context.Context, sol *domain.Solution) error {
	if sol == nil {
		return errors.New("invalid solution: nil")
	}
	if _, ok := domain.MonthCell(sol.Month); !ok {
		return domain.ErrMonthRange
	}
	if _, ok := domain.DayCell(sol.Day); !ok {
		return domain.ErrDayRange
	}
	target := s.pathFor(sol.Month, sol.Day)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(sol)
}

func (s *FS) Load(ctx context.Context, month, day int) (*domain.Solution, error) {
	if _, ok := domain.MonthCell(month); !ok {
		return nil, domain.ErrMonthRange
	}
	if _, ok := domain.DayCell(day); !ok {
		return nil, domain.ErrDayRange
	}
	data, err := os.ReadFile(s.pathFor(month, day))
	if err != nil {
		return nil, err
	}
	var out domain.Solution
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.SolutionMeta, error) {
	var out []domain.SolutionMeta
	months, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, err
	}
	for _, me := range months {
		if !me.IsDir() {
			continue
		}
		month, err := strconv.Atoi(me.Name())
		if err != nil || month < 1 || month > 12 {
			continue
		}
		days, err := os.ReadDir(filepath.Join(s.dir, me.Name()))
		if err != nil {
			continue
		}
		for _, de := range days {
			name := de.Name()
			if de.IsDir() || !strings.HasSuffix(name, ".json") {
				continue
			}
			day, err := strconv.Atoi(strings.TrimSuffix(name, ".json"))
			if err != nil || day < 1 || day > 31 {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, me.Name(), name))
			if err != nil {
				continue
			}
			var sol domain.Solution
			if err := json.Unmarshal(data, &sol); err != nil {
				continue
			}
			out = append(out, domain.SolutionMeta{Month: month, Day: day, CreatedAt: sol.CreatedAt})
		}
	}
	return out, nil
}
