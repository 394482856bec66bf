package overview

import (
	"time"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/leave"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/timelog"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/timeutil"
)

// HoursSummary is one employee's attendance arithmetic for a month.
// Scheduled comes from the schedule index, Actual from punch spans, and
// Overtime is the non-negative excess of Actual over Scheduled.
type HoursSummary struct {
	Scheduled float64
	Actual    float64
	Overtime  float64
}

// PunchStatus classifies a punch against its scheduled window. Both flags
// stay false when no schedule covers the punch day: an unscheduled punch is
// neither late nor an early departure.
type PunchStatus struct {
	IsLate     bool
	IsEarlyOut bool
}

// MonthlyHours computes each employee's hours summary for the given month.
// Scheduled hours sum the winning shift window across the employee's
// scheduled days, skipping days excused by approved leave. Actual hours sum
// the spans of punches clocked in during the month; a punch with no time out
// contributes zero. Employees appear in the result when they have either a
// schedule or a punch in the month.
func MonthlyHours(idx *ScheduleIndex, logs []timelog.TimeLog, leaves []leave.LeaveRequest, year int, month time.Month, loc *time.Location) map[string]HoursSummary {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	nextMonth := monthStart.AddDate(0, 1, 0)
	monthEnd := nextMonth.AddDate(0, 0, -1)

	summaries := make(map[string]HoursSummary)

	for _, employeeID := range idx.EmployeeIDs() {
		var scheduled float64
		idx.forEachScheduledDay(employeeID, monthStart, monthEnd, func(day time.Time, w ShiftWindow) {
			if onApprovedLeave(leaves, employeeID, day) {
				return
			}
			scheduled += w.Hours()
		})
		if scheduled > 0 {
			s := summaries[employeeID]
			s.Scheduled = timeutil.Round2(scheduled)
			summaries[employeeID] = s
		}
	}

	for _, l := range logs {
		in := l.TimeIn.In(loc)
		if in.Before(monthStart) || !in.Before(nextMonth) {
			continue
		}
		s := summaries[l.EmployeeID]
		s.Actual = timeutil.Round2(s.Actual + timeutil.HoursBetween(&l.TimeIn, l.TimeOut))
		summaries[l.EmployeeID] = s
	}

	for id, s := range summaries {
		s.Overtime = OvertimeHours(s.Scheduled, s.Actual)
		summaries[id] = s
	}

	return summaries
}

// ClassifyPunch checks a punch against the schedule index. Late means the
// clock-in is after the scheduled start on the punch day; early departure
// means the clock-out exists and precedes the scheduled end. For overnight
// windows the scheduled end is taken on the following day.
func ClassifyPunch(idx *ScheduleIndex, log timelog.TimeLog) PunchStatus {
	in := log.TimeIn.In(idx.loc)
	w, ok := idx.Lookup(log.EmployeeID, in)
	if !ok {
		return PunchStatus{}
	}

	start, end := w.Bounds(in)
	return PunchStatus{
		IsLate:     log.TimeIn.After(start),
		IsEarlyOut: log.TimeOut != nil && log.TimeOut.Before(end),
	}
}

// OvertimeHours is the amount by which actual hours exceed scheduled hours,
// floored at zero. Working under schedule is never negative overtime.
func OvertimeHours(scheduled, actual float64) float64 {
	if actual <= scheduled {
		return 0
	}
	return timeutil.Round2(actual - scheduled)
}

// Leave dates are DATE columns scanned as UTC midnights, so they are
// rebased into day's location before the range check.
func onApprovedLeave(leaves []leave.LeaveRequest, employeeID string, day time.Time) bool {
	for _, l := range leaves {
		if l.EmployeeID != employeeID || l.Status != leave.LeaveStatusApproved {
			continue
		}
		start := timeutil.DateIn(l.StartDate, day.Location())
		end := timeutil.DateIn(l.EndDate, day.Location())
		if !day.Before(start) && !day.After(end) {
			return true
		}
	}
	return false
}
