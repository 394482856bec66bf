package overview

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/schedule"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/shift"
)

func mustClock(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("15:04", s)
	require.NoError(t, err)
	return parsed
}

func testShift(t *testing.T, id, start, end string) shift.ShiftTemplate {
	t.Helper()
	return shift.ShiftTemplate{
		ID:                     id,
		CompanyID:              "company-1",
		Name:                   "shift " + id,
		StartTime:              mustClock(t, start),
		EndTime:                mustClock(t, end),
		DifferentialMultiplier: decimal.NewFromInt(1),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestScheduleIndexLookup(t *testing.T) {
	t.Parallel()

	shifts := map[string]shift.ShiftTemplate{
		"day": testShift(t, "day", "08:00", "17:00"),
	}
	schedules := []schedule.RecurringSchedule{
		{
			ID:                "sch-1",
			EmployeeID:        "emp-1",
			ShiftID:           "day",
			RecurrencePattern: "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR",
			StartDate:         date(2024, time.March, 4),
		},
	}

	idx := BuildScheduleIndex(schedules, shifts, date(2024, time.March, 31), time.UTC)

	// Monday is scheduled.
	w, ok := idx.Lookup("emp-1", date(2024, time.March, 4))
	require.True(t, ok)
	assert.Equal(t, "day", w.ShiftID)
	assert.Equal(t, 9.0, w.Hours())

	// Saturday is not.
	_, ok = idx.Lookup("emp-1", date(2024, time.March, 9))
	assert.False(t, ok)

	// Before the start date is not.
	_, ok = idx.Lookup("emp-1", date(2024, time.March, 1))
	assert.False(t, ok)

	// Unknown employee is a plain miss.
	_, ok = idx.Lookup("emp-9", date(2024, time.March, 4))
	assert.False(t, ok)
}

func TestScheduleIndexLookupCompanyTimezone(t *testing.T) {
	t.Parallel()

	manila := time.FixedZone("UTC+8", 8*3600)
	shifts := map[string]shift.ShiftTemplate{
		"day": testShift(t, "day", "08:00", "17:00"),
	}
	// Schedule dates arrive from their DATE columns as UTC midnights even
	// when the company runs ahead of UTC.
	schedules := []schedule.RecurringSchedule{
		{
			EmployeeID:        "emp-1",
			ShiftID:           "day",
			RecurrencePattern: "FREQ=WEEKLY;BYDAY=MO",
			StartDate:         date(2024, time.March, 4),
		},
	}

	idx := BuildScheduleIndex(schedules, shifts, date(2024, time.March, 31), manila)

	// The first scheduled Monday, expressed as a local day, is in range.
	_, ok := idx.Lookup("emp-1", time.Date(2024, time.March, 4, 0, 0, 0, 0, manila))
	require.True(t, ok)

	// A UTC-midnight query day rebases to the same local date.
	_, ok = idx.Lookup("emp-1", date(2024, time.March, 4))
	assert.True(t, ok)

	_, ok = idx.Lookup("emp-1", time.Date(2024, time.March, 5, 0, 0, 0, 0, manila))
	assert.False(t, ok)
}

func TestScheduleIndexHorizonBoundsOpenEndedSchedules(t *testing.T) {
	t.Parallel()

	shifts := map[string]shift.ShiftTemplate{
		"day": testShift(t, "day", "08:00", "17:00"),
	}
	schedules := []schedule.RecurringSchedule{
		{
			EmployeeID:        "emp-1",
			ShiftID:           "day",
			RecurrencePattern: "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR",
			StartDate:         date(2024, time.March, 4),
		},
	}

	idx := BuildScheduleIndex(schedules, shifts, date(2024, time.March, 4), time.UTC)

	_, ok := idx.Lookup("emp-1", date(2024, time.March, 4))
	assert.True(t, ok)

	// Past the horizon the open-ended schedule no longer applies.
	_, ok = idx.Lookup("emp-1", date(2024, time.March, 5))
	assert.False(t, ok)
}

func TestScheduleIndexLastWriteWins(t *testing.T) {
	t.Parallel()

	shifts := map[string]shift.ShiftTemplate{
		"day":   testShift(t, "day", "08:00", "17:00"),
		"night": testShift(t, "night", "22:00", "06:00"),
	}
	// Both schedules cover emp-1 on Mondays; the later row wins.
	schedules := []schedule.RecurringSchedule{
		{
			EmployeeID:        "emp-1",
			ShiftID:           "day",
			RecurrencePattern: "FREQ=WEEKLY;BYDAY=MO",
			StartDate:         date(2024, time.March, 4),
		},
		{
			EmployeeID:        "emp-1",
			ShiftID:           "night",
			RecurrencePattern: "FREQ=WEEKLY;BYDAY=MO",
			StartDate:         date(2024, time.March, 4),
		},
	}

	idx := BuildScheduleIndex(schedules, shifts, date(2024, time.March, 31), time.UTC)

	w, ok := idx.Lookup("emp-1", date(2024, time.March, 11))
	require.True(t, ok)
	assert.Equal(t, "night", w.ShiftID)
	assert.True(t, w.WrapsMidnight())
	assert.Equal(t, 8.0, w.Hours())
}

func TestScheduleIndexSkipsBrokenSchedules(t *testing.T) {
	t.Parallel()

	shifts := map[string]shift.ShiftTemplate{
		"day": testShift(t, "day", "08:00", "17:00"),
	}
	schedules := []schedule.RecurringSchedule{
		{
			EmployeeID:        "emp-1",
			ShiftID:           "missing-shift",
			RecurrencePattern: "FREQ=WEEKLY;BYDAY=MO",
			StartDate:         date(2024, time.March, 4),
		},
		{
			EmployeeID:        "emp-2",
			ShiftID:           "day",
			RecurrencePattern: "not a recurrence rule",
			StartDate:         date(2024, time.March, 4),
		},
	}

	idx := BuildScheduleIndex(schedules, shifts, date(2024, time.March, 31), time.UTC)

	_, ok := idx.Lookup("emp-1", date(2024, time.March, 4))
	assert.False(t, ok)
	_, ok = idx.Lookup("emp-2", date(2024, time.March, 4))
	assert.False(t, ok)
}

func TestShiftWindowBounds(t *testing.T) {
	t.Parallel()

	day := ShiftWindow{ShiftID: "day", Start: mustClock(t, "08:00"), End: mustClock(t, "17:00")}
	start, end := day.Bounds(date(2024, time.March, 4))
	assert.Equal(t, date(2024, time.March, 4).Add(8*time.Hour), start)
	assert.Equal(t, date(2024, time.March, 4).Add(17*time.Hour), end)

	night := ShiftWindow{ShiftID: "night", Start: mustClock(t, "22:00"), End: mustClock(t, "06:00")}
	start, end = night.Bounds(date(2024, time.March, 4))
	assert.Equal(t, date(2024, time.March, 4).Add(22*time.Hour), start)
	assert.Equal(t, date(2024, time.March, 5).Add(6*time.Hour), end)
}
