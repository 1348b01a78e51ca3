package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthCell(t *testing.T) {
	c, ok := MonthCell(1)
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 0, Col: 0}, c)

	c, ok = MonthCell(6)
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 0, Col: 5}, c)

	c, ok = MonthCell(7)
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 1, Col: 0}, c)

	c, ok = MonthCell(12)
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 1, Col: 5}, c)

	for _, m := range []int{0, 13, -1} {
		_, ok := MonthCell(m)
		assert.False(t, ok, "month %d", m)
	}
}

func TestDayCell(t *testing.T) {
	c, ok := DayCell(1)
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 2, Col: 0}, c)

	c, ok = DayCell(7)
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 2, Col: 6}, c)

	c, ok = DayCell(28)
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 5, Col: 6}, c)

	c, ok = DayCell(31)
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 6, Col: 2}, c)

	for _, d := range []int{0, 32} {
		_, ok := DayCell(d)
		assert.False(t, ok, "day %d", d)
	}
}

func TestDayAtRoundTrip(t *testing.T) {
	for d := 1; d <= 31; d++ {
		c, ok := DayCell(d)
		require.True(t, ok)
		assert.Equal(t, d, DayAt(c))
	}
	assert.Equal(t, 0, DayAt(Cell{Row: 0, Col: 0}))
	assert.Equal(t, 0, DayAt(Cell{Row: 6, Col: 3}))
}

func TestNewBoardCensus(t *testing.T) {
	b, err := NewBoard(6, 28)
	require.NoError(t, err)

	var empty, exposed, blocked int
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			switch b.Labels[r][c] {
			case Empty:
				empty++
			case Exposed:
				exposed++
			case Blocked:
				blocked++
			}
		}
	}
	assert.Equal(t, 41, empty)
	assert.Equal(t, 2, exposed)
	assert.Equal(t, 6, blocked)
}

func TestNewBoardSameMonthDayCell(t *testing.T) {
	// every valid date exposes exactly two distinct cells; the tables never
	// collide because months live in rows 0-1 and days in rows 2-6
	for m := 1; m <= 12; m++ {
		mc, _ := MonthCell(m)
		for d := 1; d <= 31; d++ {
			dc, _ := DayCell(d)
			assert.NotEqual(t, mc, dc)
		}
	}
}

func TestNewBoardRejectsBadDates(t *testing.T) {
	_, err := NewBoard(13, 1)
	assert.ErrorIs(t, err, ErrMonthRange)
	_, err = NewBoard(1, 32)
	assert.ErrorIs(t, err, ErrDayRange)
}

func TestPieceSizes(t *testing.T) {
	total := 0
	for _, p := range Pieces {
		total += p.Size()
	}
	// 41 coverable cells: 7x7 minus 6 blocked minus 2 exposed
	assert.Equal(t, 41, total)

	hex, ok := PieceByName('H')
	require.True(t, ok)
	assert.Equal(t, 6, hex.Size())
}
