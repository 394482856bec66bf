package overview

import (
	"time"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/schedule"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/shift"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/recurrence"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/timeutil"
)

// ShiftWindow is the clock-time window an employee is expected to work on a
// scheduled day.
type ShiftWindow struct {
	ShiftID string
	Start   time.Time
	End     time.Time
}

// WrapsMidnight reports whether the window's end falls on the next calendar
// day, as in a 22:00-06:00 night shift.
func (w ShiftWindow) WrapsMidnight() bool {
	return w.End.Before(w.Start)
}

// Hours is the window's working span, wraparound-corrected.
func (w ShiftWindow) Hours() float64 {
	return timeutil.WraparoundHours(w.Start, w.End)
}

// Bounds projects the window onto the given calendar day, returning concrete
// start and end instants. For a wrapping window the end lands on the next day.
func (w ShiftWindow) Bounds(day time.Time) (time.Time, time.Time) {
	start := timeutil.OnDate(day, w.Start)
	end := timeutil.OnDate(day, w.End)
	if w.WrapsMidnight() {
		end = end.AddDate(0, 0, 1)
	}
	return start, end
}

type scheduleEntry struct {
	days   recurrence.DaySet
	start  time.Time
	end    time.Time
	window ShiftWindow
}

// ScheduleIndex answers "which shift window covers this employee on this
// day". Entries keep the creation order of their schedules; when multiple
// assignments cover the same (employee, day), the most recently created one
// wins. A lookup miss is an ordinary condition, it means the employee simply
// is not scheduled that day.
type ScheduleIndex struct {
	loc     *time.Location
	entries map[string][]scheduleEntry
}

// BuildScheduleIndex expands recurring schedules against their shift
// templates. The horizon date bounds open-ended schedules: an assignment
// with no end date is treated as running through horizon. Schedules whose
// shift template is missing, or whose recurrence pattern yields no weekdays,
// are skipped rather than failing the build.
//
// loc is the company's timezone. Schedule dates arrive as UTC midnights from
// their DATE columns, so every date bound is re-anchored into loc before any
// comparison; lookups rebase the query day the same way.
func BuildScheduleIndex(schedules []schedule.RecurringSchedule, shifts map[string]shift.ShiftTemplate, horizon time.Time, loc *time.Location) *ScheduleIndex {
	idx := &ScheduleIndex{loc: loc, entries: make(map[string][]scheduleEntry)}
	horizon = timeutil.DateIn(horizon, loc)

	for _, sch := range schedules {
		tpl, ok := shifts[sch.ShiftID]
		if !ok {
			continue
		}

		days := recurrence.Decode(sch.RecurrencePattern)
		if len(days) == 0 {
			continue
		}

		end := horizon
		if sch.EndDate != nil {
			if e := timeutil.DateIn(*sch.EndDate, loc); e.Before(horizon) {
				end = e
			}
		}

		idx.entries[sch.EmployeeID] = append(idx.entries[sch.EmployeeID], scheduleEntry{
			days:  days,
			start: timeutil.DateIn(sch.StartDate, loc),
			end:   end,
			window: ShiftWindow{
				ShiftID: tpl.ID,
				Start:   tpl.StartTime,
				End:     tpl.EndTime,
			},
		})
	}

	return idx
}

// Lookup returns the shift window covering employeeID on day, if any.
// Entries are scanned newest first so overlapping assignments resolve
// last-write-wins. The calendar date is read from day in its own location,
// so instants must be converted into the company timezone first.
func (idx *ScheduleIndex) Lookup(employeeID string, day time.Time) (ShiftWindow, bool) {
	day = timeutil.DateIn(day, idx.loc)
	entries := idx.entries[employeeID]

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if day.Before(e.start) || day.After(e.end) {
			continue
		}
		if e.days.Contains(recurrence.FromTime(day.Weekday())) {
			return e.window, true
		}
	}
	return ShiftWindow{}, false
}

// EmployeeIDs returns every employee with at least one indexed schedule.
func (idx *ScheduleIndex) EmployeeIDs() []string {
	ids := make([]string, 0, len(idx.entries))
	for id := range idx.entries {
		ids = append(ids, id)
	}
	return ids
}

// forEachScheduledDay walks the days in [from, to] on which employeeID is
// scheduled, calling fn once per day with the winning window. Because each
// day resolves through Lookup, overlapping assignments contribute a single
// window per day.
func (idx *ScheduleIndex) forEachScheduledDay(employeeID string, from, to time.Time, fn func(day time.Time, w ShiftWindow)) {
	from = timeutil.DateIn(from, idx.loc)
	to = timeutil.DateIn(to, idx.loc)

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if w, ok := idx.Lookup(employeeID, day); ok {
			fn(day, w)
		}
	}
}
