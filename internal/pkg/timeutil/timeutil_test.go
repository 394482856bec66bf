package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClock(t *testing.T, s string) time.Time {
	t.Helper()
	clock, err := ParseClock(s)
	require.NoError(t, err)
	return clock
}

func TestHoursBetween(t *testing.T) {
	t.Parallel()

	in := time.Date(2024, 3, 4, 8, 15, 0, 0, time.UTC)
	out := time.Date(2024, 3, 4, 16, 50, 0, 0, time.UTC)

	assert.Equal(t, 8.58, HoursBetween(&in, &out))
}

func TestHoursBetween_MissingEndpoints(t *testing.T) {
	t.Parallel()

	now := time.Now()
	assert.Equal(t, 0.0, HoursBetween(&now, nil))
	assert.Equal(t, 0.0, HoursBetween(nil, &now))
	assert.Equal(t, 0.0, HoursBetween(nil, nil))
}

func TestWraparoundHours(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		start, end string
		want       float64
	}{
		{"day shift", "08:00", "17:00", 9.00},
		{"overnight shift", "22:00", "06:00", 8.00},
		{"short overnight", "23:30", "00:15", 0.75},
		{"zero length", "09:00", "09:00", 0.00},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WraparoundHours(mustClock(t, tc.start), mustClock(t, tc.end))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRate_GuardsZeroDenominator(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, Rate(5, 0))
	assert.Equal(t, 50.0, Rate(1, 2))
	assert.Equal(t, 33.33, Rate(1, 3))
}

func TestMonthKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2024-03", MonthKey(time.Date(2024, 3, 4, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-11", MonthKey(time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)))
}

func TestOnDate(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 3, 4, 18, 42, 7, 0, time.UTC)
	clock := mustClock(t, "08:30")

	assert.Equal(t, time.Date(2024, 3, 4, 8, 30, 0, 0, time.UTC), OnDate(day, clock))
}
