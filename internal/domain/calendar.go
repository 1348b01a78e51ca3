package domain

import "errors"

// Calendar layout of the 7x7 board:
//
//	Row 0: Jan  Feb  Mar  Apr  May  Jun  [blocked]
//	Row 1: Jul  Aug  Sep  Oct  Nov  Dec  [blocked]
//	Row 2:  1    2    3    4    5    6    7
//	Row 3:  8    9   10   11   12   13   14
//	Row 4: 15   16   17   18   19   20   21
//	Row 5: 22   23   24   25   26   27   28
//	Row 6: 29   30   31  [blocked x4]

// BlockedCells are the six permanently unusable positions.
var BlockedCells = []Cell{
	{Row: 0, Col: 6},
	{Row: 1, Col: 6},
	{Row: 6, Col: 3},
	{Row: 6, Col: 4},
	{Row: 6, Col: 5},
	{Row: 6, Col: 6},
}

// MonthNames indexes month abbreviations by month-1.
var MonthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var (
	ErrMonthRange = errors.New("month out of range (1-12)")
	ErrDayRange   = errors.New("day out of range (1-31)")
)

// MonthCell returns the header cell showing the given month.
func MonthCell(month int) (Cell, bool) {
	if month < 1 || month > 12 {
		return Cell{}, false
	}
	return Cell{Row: (month - 1) / 6, Col: (month - 1) % 6}, true
}

// DayCell returns the grid cell showing the given day of month.
func DayCell(day int) (Cell, bool) {
	if day < 1 || day > 31 {
		return Cell{}, false
	}
	return Cell{Row: (day-1)/7 + 2, Col: (day - 1) % 7}, true
}

// DayAt is the inverse of DayCell. It reports 0 for cells outside the day
// area.
func DayAt(c Cell) int {
	if c.Row < 2 || c.Row >= Rows || c.Col < 0 || c.Col >= Cols {
		return 0
	}
	d := (c.Row-2)*7 + c.Col + 1
	if d > 31 {
		return 0
	}
	return d
}

// NewBoard builds the starting grid for a date: blocked cells marked, the two
// date cells exposed, everything else empty.
func NewBoard(month, day int) (*Board, error) {
	mc, ok := MonthCell(month)
	if !ok {
		return nil, ErrMonthRange
	}
	dc, ok := DayCell(day)
	if !ok {
		return nil, ErrDayRange
	}
	b := &Board{}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			b.Labels[r][c] = Empty
		}
	}
	for _, bc := range BlockedCells {
		b.Labels[bc.Row][bc.Col] = Blocked
	}
	b.Labels[mc.Row][mc.Col] = Exposed
	b.Labels[dc.Row][dc.Col] = Exposed
	return b, nil
}
