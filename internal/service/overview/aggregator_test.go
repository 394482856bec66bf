package overview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/leave"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/schedule"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/shift"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/timelog"
)

func punch(employeeID string, in, out time.Time) timelog.TimeLog {
	return timelog.TimeLog{
		ID:         "log-" + employeeID + in.Format("20060102"),
		EmployeeID: employeeID,
		TimeIn:     in,
		TimeOut:    &out,
		Status:     timelog.TimeLogStatusClosed,
	}
}

func TestMonthlyHoursSingleDay(t *testing.T) {
	t.Parallel()

	// A weekday employee on 08:00-17:00, observed through Monday 2024-03-04
	// only. They clock 08:15-16:50 that day.
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

	in := date(2024, time.March, 4).Add(8*time.Hour + 15*time.Minute)
	out := date(2024, time.March, 4).Add(16*time.Hour + 50*time.Minute)
	logs := []timelog.TimeLog{punch("emp-1", in, out)}

	summaries := MonthlyHours(idx, logs, nil, 2024, time.March, time.UTC)

	s, ok := summaries["emp-1"]
	require.True(t, ok)
	assert.Equal(t, 9.0, s.Scheduled)
	assert.Equal(t, 8.58, s.Actual)
	assert.Equal(t, 0.0, s.Overtime)

	// The same punch reads as a late arrival and an early departure.
	status := ClassifyPunch(idx, logs[0])
	assert.True(t, status.IsLate)
	assert.True(t, status.IsEarlyOut)
}

func TestMonthlyHoursFullMonth(t *testing.T) {
	t.Parallel()

	shifts := map[string]shift.ShiftTemplate{
		"day": testShift(t, "day", "08:00", "17:00"),
	}
	schedules := []schedule.RecurringSchedule{
		{
			EmployeeID:        "emp-1",
			ShiftID:           "day",
			RecurrencePattern: "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR",
			StartDate:         date(2024, time.March, 1),
		},
	}
	idx := BuildScheduleIndex(schedules, shifts, date(2024, time.March, 31), time.UTC)

	summaries := MonthlyHours(idx, nil, nil, 2024, time.March, time.UTC)

	// March 2024 has 21 weekdays at 9 hours each.
	s := summaries["emp-1"]
	assert.Equal(t, 189.0, s.Scheduled)
	assert.Equal(t, 0.0, s.Actual)
	assert.Equal(t, 0.0, s.Overtime)
}

func TestMonthlyHoursOvertime(t *testing.T) {
	t.Parallel()

	shifts := map[string]shift.ShiftTemplate{
		"half": testShift(t, "half", "08:00", "12:00"),
	}
	schedules := []schedule.RecurringSchedule{
		{
			EmployeeID:        "emp-1",
			ShiftID:           "half",
			RecurrencePattern: "FREQ=WEEKLY;BYDAY=MO",
			StartDate:         date(2024, time.March, 4),
		},
	}
	idx := BuildScheduleIndex(schedules, shifts, date(2024, time.March, 4), time.UTC)

	in := date(2024, time.March, 4).Add(8 * time.Hour)
	out := date(2024, time.March, 4).Add(14*time.Hour + 30*time.Minute)
	logs := []timelog.TimeLog{punch("emp-1", in, out)}

	summaries := MonthlyHours(idx, logs, nil, 2024, time.March, time.UTC)

	s := summaries["emp-1"]
	assert.Equal(t, 4.0, s.Scheduled)
	assert.Equal(t, 6.5, s.Actual)
	assert.Equal(t, 2.5, s.Overtime)
}

func TestMonthlyHoursOpenPunchContributesZero(t *testing.T) {
	t.Parallel()

	idx := BuildScheduleIndex(nil, nil, date(2024, time.March, 31), time.UTC)

	logs := []timelog.TimeLog{
		{
			EmployeeID: "emp-1",
			TimeIn:     date(2024, time.March, 4).Add(8 * time.Hour),
			Status:     timelog.TimeLogStatusOpen,
		},
	}

	summaries := MonthlyHours(idx, logs, nil, 2024, time.March, time.UTC)

	s := summaries["emp-1"]
	assert.Equal(t, 0.0, s.Actual)
	assert.Equal(t, 0.0, s.Scheduled)
	assert.Equal(t, 0.0, s.Overtime)
}

func TestMonthlyHoursApprovedLeaveExcusesScheduledDays(t *testing.T) {
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
	// One scheduled week, with Wednesday through Friday approved off.
	idx := BuildScheduleIndex(schedules, shifts, date(2024, time.March, 8), time.UTC)

	leaves := []leave.LeaveRequest{
		{
			EmployeeID: "emp-1",
			Status:     leave.LeaveStatusApproved,
			StartDate:  date(2024, time.March, 6),
			EndDate:    date(2024, time.March, 8),
		},
	}

	summaries := MonthlyHours(idx, nil, leaves, 2024, time.March, time.UTC)

	// Monday and Tuesday remain: 2 * 9 hours.
	assert.Equal(t, 18.0, summaries["emp-1"].Scheduled)

	// Pending leave does not excuse anything.
	leaves[0].Status = leave.LeaveStatusPending
	summaries = MonthlyHours(idx, nil, leaves, 2024, time.March, time.UTC)
	assert.Equal(t, 45.0, summaries["emp-1"].Scheduled)
}

func TestMonthlyHoursCompanyTimezone(t *testing.T) {
	t.Parallel()

	manila := time.FixedZone("UTC+8", 8*3600)
	shifts := map[string]shift.ShiftTemplate{
		"day": testShift(t, "day", "08:00", "17:00"),
	}
	// The start date is a UTC midnight straight off its DATE column.
	schedules := []schedule.RecurringSchedule{
		{
			EmployeeID:        "emp-1",
			ShiftID:           "day",
			RecurrencePattern: "FREQ=WEEKLY;BYDAY=MO",
			StartDate:         date(2024, time.March, 4),
		},
	}
	idx := BuildScheduleIndex(schedules, shifts, time.Date(2024, time.March, 31, 0, 0, 0, 0, manila), manila)

	// A clock-in captured in UTC lands on the local 08:00 shift start.
	in := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	out := in.Add(9 * time.Hour)
	logs := []timelog.TimeLog{punch("emp-1", in, out)}

	summaries := MonthlyHours(idx, logs, nil, 2024, time.March, manila)

	// March 2024 has four Mondays on or after the 4th.
	s := summaries["emp-1"]
	assert.Equal(t, 36.0, s.Scheduled)
	assert.Equal(t, 9.0, s.Actual)

	status := ClassifyPunch(idx, logs[0])
	assert.False(t, status.IsLate)
	assert.False(t, status.IsEarlyOut)
}

func TestClassifyPunchUnscheduledDay(t *testing.T) {
	t.Parallel()

	idx := BuildScheduleIndex(nil, nil, date(2024, time.March, 31), time.UTC)

	in := date(2024, time.March, 4).Add(11 * time.Hour)
	out := date(2024, time.March, 4).Add(12 * time.Hour)
	status := ClassifyPunch(idx, punch("emp-1", in, out))

	assert.False(t, status.IsLate)
	assert.False(t, status.IsEarlyOut)
}

func TestClassifyPunchOnTime(t *testing.T) {
	t.Parallel()

	shifts := map[string]shift.ShiftTemplate{
		"day": testShift(t, "day", "08:00", "17:00"),
	}
	schedules := []schedule.RecurringSchedule{
		{
			EmployeeID:        "emp-1",
			ShiftID:           "day",
			RecurrencePattern: "FREQ=WEEKLY;BYDAY=MO",
			StartDate:         date(2024, time.March, 4),
		},
	}
	idx := BuildScheduleIndex(schedules, shifts, date(2024, time.March, 31), time.UTC)

	in := date(2024, time.March, 4).Add(8 * time.Hour)
	out := date(2024, time.March, 4).Add(17 * time.Hour)
	status := ClassifyPunch(idx, punch("emp-1", in, out))

	// Exactly at the boundaries counts as neither late nor early.
	assert.False(t, status.IsLate)
	assert.False(t, status.IsEarlyOut)

	// Still clocked in: no early-out flag without a clock-out.
	open := timelog.TimeLog{EmployeeID: "emp-1", TimeIn: in.Add(time.Minute)}
	status = ClassifyPunch(idx, open)
	assert.True(t, status.IsLate)
	assert.False(t, status.IsEarlyOut)
}

func TestClassifyPunchOvernightShift(t *testing.T) {
	t.Parallel()

	shifts := map[string]shift.ShiftTemplate{
		"night": testShift(t, "night", "22:00", "06:00"),
	}
	schedules := []schedule.RecurringSchedule{
		{
			EmployeeID:        "emp-1",
			ShiftID:           "night",
			RecurrencePattern: "FREQ=WEEKLY;BYDAY=MO",
			StartDate:         date(2024, time.March, 4),
		},
	}
	idx := BuildScheduleIndex(schedules, shifts, date(2024, time.March, 31), time.UTC)

	// Clocking out at 05:00 the next morning is an early departure, not a
	// full night.
	in := date(2024, time.March, 4).Add(22 * time.Hour)
	out := date(2024, time.March, 5).Add(5 * time.Hour)
	status := ClassifyPunch(idx, punch("emp-1", in, out))

	assert.False(t, status.IsLate)
	assert.True(t, status.IsEarlyOut)
}

func TestOvertimeHoursFloor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, OvertimeHours(9, 8.58))
	assert.Equal(t, 0.0, OvertimeHours(9, 9))
	assert.Equal(t, 1.25, OvertimeHours(8, 9.25))
	assert.Equal(t, 0.0, OvertimeHours(0, 0))
}
