package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	m, d, ok := parseDate([]string{"6", "28"})
	assert.True(t, ok)
	assert.Equal(t, 6, m)
	assert.Equal(t, 28, d)

	// bare invocation falls back to today, which is always in range
	m, d, ok = parseDate(nil)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, m, 1)
	assert.LessOrEqual(t, m, 12)
	assert.GreaterOrEqual(t, d, 1)
	assert.LessOrEqual(t, d, 31)

	_, _, ok = parseDate([]string{"6"})
	assert.False(t, ok)
	_, _, ok = parseDate([]string{"6", "28", "2024"})
	assert.False(t, ok)
	_, _, ok = parseDate([]string{"six", "28"})
	assert.False(t, ok)
}
