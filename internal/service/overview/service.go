package overview

import (
	"context"
	"errors"
	"time"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/company"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/leave"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/overview"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/schedule"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/shift"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/timelog"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/timeutil"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/service/authctx"
)

type overviewServiceImpl struct {
	companyRepo  company.CompanyRepository
	scheduleRepo schedule.RecurringScheduleRepository
	shiftRepo    shift.ShiftTemplateRepository
	timeLogRepo  timelog.TimeLogRepository
	leaveRepo    leave.LeaveRequestRepository
}

func NewOverviewService(
	companyRepo company.CompanyRepository,
	scheduleRepo schedule.RecurringScheduleRepository,
	shiftRepo shift.ShiftTemplateRepository,
	timeLogRepo timelog.TimeLogRepository,
	leaveRepo leave.LeaveRequestRepository,
) overview.OverviewService {
	return &overviewServiceImpl{
		companyRepo:  companyRepo,
		scheduleRepo: scheduleRepo,
		shiftRepo:    shiftRepo,
		timeLogRepo:  timeLogRepo,
		leaveRepo:    leaveRepo,
	}
}

// MonthlyHours implements overview.OverviewService.
func (s *overviewServiceImpl) MonthlyHours(ctx context.Context, req overview.MonthlyHoursRequest) (overview.MonthlyHoursResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return overview.MonthlyHoursResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return overview.MonthlyHoursResponse{}, err
	}

	loc, err := s.companyLocation(ctx, companyID)
	if err != nil {
		return overview.MonthlyHoursResponse{}, err
	}

	monthStart := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0).AddDate(0, 0, -1)

	idx, logs, leaves, names, err := s.loadMonth(ctx, companyID, monthStart, monthEnd, loc)
	if err != nil {
		return overview.MonthlyHoursResponse{}, err
	}

	summaries := MonthlyHours(idx, logs, leaves, req.Year, req.Month, loc)

	resp := overview.MonthlyHoursResponse{
		Month: timeutil.MonthKey(monthStart),
		Rows:  []overview.MonthlyHoursRow{},
	}
	for employeeID, summary := range summaries {
		if req.EmployeeID != nil && employeeID != *req.EmployeeID {
			continue
		}
		resp.Rows = append(resp.Rows, overview.MonthlyHoursRow{
			EmployeeID:     employeeID,
			EmployeeName:   names[employeeID],
			Month:          timeutil.MonthKey(monthStart),
			ScheduledHours: summary.Scheduled,
			ActualHours:    summary.Actual,
			OvertimeHours:  summary.Overtime,
		})
	}
	return resp, nil
}

// DailyAttendance implements overview.OverviewService.
func (s *overviewServiceImpl) DailyAttendance(ctx context.Context, day time.Time) (overview.DailyAttendanceResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return overview.DailyAttendanceResponse{}, err
	}

	loc, err := s.companyLocation(ctx, companyID)
	if err != nil {
		return overview.DailyAttendanceResponse{}, err
	}

	day = timeutil.TruncateToDay(day.In(loc))
	dayEnd := day.AddDate(0, 0, 1).Add(-time.Second)

	idx, logs, _, _, err := s.loadMonth(ctx, companyID, day, dayEnd, loc)
	if err != nil {
		return overview.DailyAttendanceResponse{}, err
	}

	resp := overview.DailyAttendanceResponse{
		Date:    timeutil.DayKey(day),
		Punches: []overview.PunchClassification{},
	}
	for _, l := range logs {
		status := ClassifyPunch(idx, l)
		pc := overview.PunchClassification{
			TimeLogID:    l.ID,
			EmployeeID:   l.EmployeeID,
			EmployeeName: l.EmployeeName,
			TimeIn:       l.TimeIn.Format(time.RFC3339),
			IsLate:       status.IsLate,
			IsEarlyOut:   status.IsEarlyOut,
			WorkedHours:  timeutil.HoursBetween(&l.TimeIn, l.TimeOut),
		}
		if l.TimeOut != nil {
			timeOut := l.TimeOut.Format(time.RFC3339)
			pc.TimeOut = &timeOut
		}
		resp.Punches = append(resp.Punches, pc)
	}
	return resp, nil
}

// Today implements overview.OverviewService.
func (s *overviewServiceImpl) Today(ctx context.Context) (overview.TodaySummary, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return overview.TodaySummary{}, err
	}

	loc, err := s.companyLocation(ctx, companyID)
	if err != nil {
		return overview.TodaySummary{}, err
	}

	day := timeutil.TruncateToDay(time.Now().In(loc))
	dayEnd := day.AddDate(0, 0, 1).Add(-time.Second)

	idx, logs, leaves, _, err := s.loadMonth(ctx, companyID, day, dayEnd, loc)
	if err != nil {
		return overview.TodaySummary{}, err
	}

	summary := overview.TodaySummary{Date: timeutil.DayKey(day)}

	punched := make(map[string]bool)
	for _, l := range logs {
		if punched[l.EmployeeID] {
			continue
		}
		punched[l.EmployeeID] = true
		summary.Present++
		if ClassifyPunch(idx, l).IsLate {
			summary.Late++
		}
	}

	for _, employeeID := range idx.EmployeeIDs() {
		if _, ok := idx.Lookup(employeeID, day); !ok {
			continue
		}
		summary.Scheduled++
		switch {
		case punched[employeeID]:
		case onApprovedLeave(leaves, employeeID, day):
			summary.OnLeave++
		default:
			summary.Absent++
		}
	}

	summary.AttendanceRate = timeutil.Rate(summary.Present, summary.Scheduled)
	return summary, nil
}

func (s *overviewServiceImpl) companyLocation(ctx context.Context, companyID string) (*time.Location, error) {
	found, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return time.UTC, nil
		}
		return nil, err
	}

	loc, err := time.LoadLocation(found.Timezone)
	if err != nil {
		return time.UTC, nil
	}
	return loc, nil
}

// loadMonth gathers everything the pure aggregation needs for [from, to]:
// the schedule index bounded at to, the punches, the approved leave, and an
// employee-name lookup for response shaping.
func (s *overviewServiceImpl) loadMonth(ctx context.Context, companyID string, from, to time.Time, loc *time.Location) (*ScheduleIndex, []timelog.TimeLog, []leave.LeaveRequest, map[string]*string, error) {
	schedules, err := s.scheduleRepo.ListActiveInRange(ctx, companyID, from, to)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	shifts, err := s.shiftRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	shiftsByID := make(map[string]shift.ShiftTemplate, len(shifts))
	for _, tpl := range shifts {
		shiftsByID[tpl.ID] = tpl
	}

	logs, err := s.timeLogRepo.ListRange(ctx, companyID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, nil, nil, nil, err
	}

	leaves, err := s.leaveRepo.ListApprovedInRange(ctx, companyID, from, to)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	names := make(map[string]*string)
	for _, sch := range schedules {
		if sch.EmployeeName != nil {
			names[sch.EmployeeID] = sch.EmployeeName
		}
	}
	for _, l := range logs {
		if l.EmployeeName != nil {
			names[l.EmployeeID] = l.EmployeeName
		}
	}

	return BuildScheduleIndex(schedules, shiftsByID, to, loc), logs, leaves, names, nil
}
