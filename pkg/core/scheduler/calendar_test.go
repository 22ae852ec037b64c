package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2025, 1, 31},
		{2025, 2, 28},
		{2024, 2, 29}, // leap year
		{2025, 4, 30},
		{2025, 12, 31},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, daysIn(tt.year, tt.month), "daysIn(%d, %d)", tt.year, tt.month)
	}
}

func TestWeekdayOf(t *testing.T) {
	// 2025-03-01 was a Saturday
	assert.Equal(t, time.Saturday, weekdayOf(2025, 3, 1))
	assert.Equal(t, time.Sunday, weekdayOf(2025, 3, 2))
	assert.Equal(t, time.Monday, weekdayOf(2025, 3, 3))
}

func TestIsFriSatSun(t *testing.T) {
	// 2025-04-04 Friday, 04-05 Saturday, 04-06 Sunday, 04-07 Monday
	assert.True(t, isFriSatSun(2025, 4, 4))
	assert.True(t, isFriSatSun(2025, 4, 5))
	assert.True(t, isFriSatSun(2025, 4, 6))
	assert.False(t, isFriSatSun(2025, 4, 7))
	assert.False(t, isFriSatSun(2025, 4, 3))
}

func TestWeekBounds(t *testing.T) {
	// April 2025: the 7th is a Monday, so the week of the 9th is 7..13
	first, last := weekBounds(2025, 4, 9, 30)
	assert.Equal(t, 7, first)
	assert.Equal(t, 13, last)

	// Week containing the 1st (Tuesday) clips at the month start
	first, last = weekBounds(2025, 4, 1, 30)
	assert.Equal(t, 1, first)
	assert.Equal(t, 6, last)

	// Week containing the 30th (Wednesday) clips at the month end
	first, last = weekBounds(2025, 4, 30, 30)
	assert.Equal(t, 28, first)
	assert.Equal(t, 30, last)
}
