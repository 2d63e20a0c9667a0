package utils_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook/utils"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		minutes int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"13:05", 785},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, err := utils.ParseClock(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.minutes, got, c.in)
	}

	for _, bad := range []string{"", "24:00", "12:60", "12.30", "noon"} {
		_, err := utils.ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatClock_RoundTrips(t *testing.T) {
	for minutes := 0; minutes < 24*60; minutes += 30 {
		s := utils.FormatClock(minutes)
		back, err := utils.ParseClock(s)
		require.NoError(t, err, s)
		assert.Equal(t, minutes, back)
	}
}

// HH:MM strings are fixed width and zero padded, so lexicographic order and
// chronological order agree. Both the slot calculator and the overlap check
// rely on this.
func TestClockStringOrderMatchesChronology(t *testing.T) {
	prev := utils.FormatClock(0)
	for minutes := 30; minutes < 24*60; minutes += 30 {
		cur := utils.FormatClock(minutes)
		assert.Less(t, prev, cur)
		prev = cur
	}
}

func TestDateWeekday(t *testing.T) {
	// 2025-06-01 was a Sunday.
	for day := 0; day < 7; day++ {
		got, err := utils.DateWeekday(fmt.Sprintf("2025-06-%02d", day+1))
		require.NoError(t, err)
		assert.Equal(t, day, got)
	}

	_, err := utils.DateWeekday("2025-13-01")
	assert.Error(t, err)
	_, err = utils.DateWeekday("02/06/2025")
	assert.Error(t, err)
}
