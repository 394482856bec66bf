package timelog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/timelog"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/timeutil"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/service/authctx"
)

type timeLogServiceImpl struct {
	timeLogRepo timelog.TimeLogRepository
}

func NewTimeLogService(timeLogRepo timelog.TimeLogRepository) timelog.TimeLogService {
	return &timeLogServiceImpl{timeLogRepo: timeLogRepo}
}

// ClockIn implements timelog.TimeLogService.
func (s *timeLogServiceImpl) ClockIn(ctx context.Context, req timelog.ClockInRequest) (timelog.TimeLogResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	employeeID, err := authctx.EmployeeID(ctx)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	if _, err := s.timeLogRepo.GetOpenByEmployee(ctx, employeeID, companyID); err == nil {
		return timelog.TimeLogResponse{}, timelog.ErrAlreadyClockedIn
	} else if !errors.Is(err, timelog.ErrNotClockedIn) {
		return timelog.TimeLogResponse{}, err
	}

	created, err := s.timeLogRepo.Create(ctx, timelog.TimeLog{
		ID:         uuid.NewString(),
		CompanyID:  companyID,
		EmployeeID: employeeID,
		TimeIn:     time.Now(),
		Status:     timelog.TimeLogStatusOpen,
		DeviceInfo: req.DeviceInfo,
	})
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	return mapTimeLogToResponse(created), nil
}

// ClockOut implements timelog.TimeLogService.
func (s *timeLogServiceImpl) ClockOut(ctx context.Context) (timelog.TimeLogResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	employeeID, err := authctx.EmployeeID(ctx)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	open, err := s.timeLogRepo.GetOpenByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	now := time.Now()

	// Close a dangling break along with the punch.
	if brk, err := s.timeLogRepo.GetOpenBreak(ctx, open.ID); err == nil {
		if _, err := s.timeLogRepo.CloseBreak(ctx, brk.ID, now); err != nil {
			return timelog.TimeLogResponse{}, err
		}
	} else if !errors.Is(err, timelog.ErrNoOpenBreak) {
		return timelog.TimeLogResponse{}, err
	}

	open.TimeOut = &now
	open.Status = timelog.TimeLogStatusClosed

	updated, err := s.timeLogRepo.Update(ctx, open)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	return mapTimeLogToResponse(updated), nil
}

// StartBreak implements timelog.TimeLogService.
func (s *timeLogServiceImpl) StartBreak(ctx context.Context) (timelog.TimeLogResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	employeeID, err := authctx.EmployeeID(ctx)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	open, err := s.timeLogRepo.GetOpenByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	if _, err := s.timeLogRepo.GetOpenBreak(ctx, open.ID); err == nil {
		return timelog.TimeLogResponse{}, timelog.ErrBreakAlreadyOpen
	} else if !errors.Is(err, timelog.ErrNoOpenBreak) {
		return timelog.TimeLogResponse{}, err
	}

	if _, err := s.timeLogRepo.CreateBreak(ctx, timelog.BreakLog{
		ID:         uuid.NewString(),
		TimeLogID:  open.ID,
		BreakStart: time.Now(),
	}); err != nil {
		return timelog.TimeLogResponse{}, err
	}

	refreshed, err := s.timeLogRepo.GetByID(ctx, open.ID, companyID)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	return mapTimeLogToResponse(refreshed), nil
}

// EndBreak implements timelog.TimeLogService.
func (s *timeLogServiceImpl) EndBreak(ctx context.Context) (timelog.TimeLogResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	employeeID, err := authctx.EmployeeID(ctx)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	open, err := s.timeLogRepo.GetOpenByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	brk, err := s.timeLogRepo.GetOpenBreak(ctx, open.ID)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	if _, err := s.timeLogRepo.CloseBreak(ctx, brk.ID, time.Now()); err != nil {
		return timelog.TimeLogResponse{}, err
	}

	refreshed, err := s.timeLogRepo.GetByID(ctx, open.ID, companyID)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	return mapTimeLogToResponse(refreshed), nil
}

// Get implements timelog.TimeLogService.
func (s *timeLogServiceImpl) Get(ctx context.Context, id string) (timelog.TimeLogResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	found, err := s.timeLogRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	return mapTimeLogToResponse(found), nil
}

// List implements timelog.TimeLogService.
func (s *timeLogServiceImpl) List(ctx context.Context, filter timelog.TimeLogFilter) (timelog.ListTimeLogResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return timelog.ListTimeLogResponse{}, err
	}

	if err := filter.Validate(); err != nil {
		return timelog.ListTimeLogResponse{}, err
	}

	role, err := authctx.Role(ctx)
	if err != nil {
		return timelog.ListTimeLogResponse{}, err
	}
	if !role.CanManage() {
		// Regular employees only see their own punches.
		employeeID, err := authctx.EmployeeID(ctx)
		if err != nil {
			return timelog.ListTimeLogResponse{}, err
		}
		filter.EmployeeID = &employeeID
	}

	logs, total, err := s.timeLogRepo.List(ctx, companyID, filter)
	if err != nil {
		return timelog.ListTimeLogResponse{}, err
	}

	resp := timelog.ListTimeLogResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
		TimeLogs:   []timelog.TimeLogResponse{},
	}
	for _, l := range logs {
		resp.TimeLogs = append(resp.TimeLogs, mapTimeLogToResponse(l))
	}
	return resp, nil
}

// Correct implements timelog.TimeLogService.
func (s *timeLogServiceImpl) Correct(ctx context.Context, req timelog.CorrectTimeLogRequest) (timelog.TimeLogResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return timelog.TimeLogResponse{}, err
	}

	current, err := s.timeLogRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	if req.TimeIn != nil {
		parsed, _ := time.Parse(time.RFC3339, *req.TimeIn)
		current.TimeIn = parsed
	}
	if req.TimeOut != nil {
		parsed, _ := time.Parse(time.RFC3339, *req.TimeOut)
		current.TimeOut = &parsed
	}
	if current.TimeOut != nil && current.TimeOut.Before(current.TimeIn) {
		return timelog.TimeLogResponse{}, timelog.ErrInvalidTimeRange
	}
	current.Status = timelog.TimeLogStatusCorrected

	updated, err := s.timeLogRepo.Update(ctx, current)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	return mapTimeLogToResponse(updated), nil
}

// AutoCloseStale implements timelog.TimeLogService.
func (s *timeLogServiceImpl) AutoCloseStale(ctx context.Context, maxOpen time.Duration) (int, error) {
	stale, err := s.timeLogRepo.ListStaleOpen(ctx, time.Now().Add(-maxOpen))
	if err != nil {
		return 0, err
	}

	closed := 0
	for _, l := range stale {
		// Zero-credit close: the punch span is collapsed so it cannot
		// inflate worked hours.
		timeOut := l.TimeIn
		l.TimeOut = &timeOut
		l.Status = timelog.TimeLogStatusAutoClosed
		if _, err := s.timeLogRepo.Update(ctx, l); err != nil {
			return closed, err
		}
		closed++
	}
	return closed, nil
}

func mapTimeLogToResponse(l timelog.TimeLog) timelog.TimeLogResponse {
	resp := timelog.TimeLogResponse{
		ID:           l.ID,
		CompanyID:    l.CompanyID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		TimeIn:       l.TimeIn.Format(time.RFC3339),
		Status:       l.Status,
		DeviceInfo:   l.DeviceInfo,
		WorkedHours:  timeutil.HoursBetween(&l.TimeIn, l.TimeOut),
		Breaks:       []timelog.BreakLogResponse{},
	}
	if l.TimeOut != nil {
		timeOut := l.TimeOut.Format(time.RFC3339)
		resp.TimeOut = &timeOut
	}
	for _, b := range l.Breaks {
		br := timelog.BreakLogResponse{
			ID:         b.ID,
			BreakStart: b.BreakStart.Format(time.RFC3339),
		}
		if b.BreakEnd != nil {
			end := b.BreakEnd.Format(time.RFC3339)
			br.BreakEnd = &end
		}
		resp.Breaks = append(resp.Breaks, br)
	}
	resp.CreatedAt = l.CreatedAt.Format(time.RFC3339)
	resp.UpdatedAt = l.UpdatedAt.Format(time.RFC3339)
	return resp
}
