package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/employee"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/schedule"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/shift"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/recurrence"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/service/authctx"
)

type recurringScheduleServiceImpl struct {
	scheduleRepo schedule.RecurringScheduleRepository
	shiftRepo    shift.ShiftTemplateRepository
	employeeRepo employee.EmployeeRepository
}

func NewRecurringScheduleService(
	scheduleRepo schedule.RecurringScheduleRepository,
	shiftRepo shift.ShiftTemplateRepository,
	employeeRepo employee.EmployeeRepository,
) schedule.RecurringScheduleService {
	return &recurringScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements schedule.RecurringScheduleService.
func (s *recurringScheduleServiceImpl) Create(ctx context.Context, req schedule.CreateRecurringScheduleRequest) (schedule.RecurringScheduleResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return schedule.RecurringScheduleResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return schedule.RecurringScheduleResponse{}, err
	}

	if _, err := s.shiftRepo.GetByID(ctx, req.ShiftID, companyID); err != nil {
		if errors.Is(err, shift.ErrShiftTemplateNotFound) {
			return schedule.RecurringScheduleResponse{}, schedule.ErrShiftNotFound
		}
		return schedule.RecurringScheduleResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return schedule.RecurringScheduleResponse{}, schedule.ErrEmployeeNotFound
		}
		return schedule.RecurringScheduleResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	var endDate *time.Time
	if req.EndDate != nil {
		parsed, _ := time.Parse("2006-01-02", *req.EndDate)
		endDate = &parsed
	}

	pattern, err := recurrence.Encode(req.DaySet(), startDate)
	if err != nil {
		return schedule.RecurringScheduleResponse{}, schedule.ErrEmptyWeekdaySet
	}

	created, err := s.scheduleRepo.Create(ctx, schedule.RecurringSchedule{
		ID:                uuid.NewString(),
		CompanyID:         companyID,
		ShiftID:           req.ShiftID,
		EmployeeID:        req.EmployeeID,
		RecurrencePattern: pattern,
		StartDate:         startDate,
		EndDate:           endDate,
	})
	if err != nil {
		return schedule.RecurringScheduleResponse{}, err
	}

	return mapScheduleToResponse(created), nil
}

// Get implements schedule.RecurringScheduleService.
func (s *recurringScheduleServiceImpl) Get(ctx context.Context, id string) (schedule.RecurringScheduleResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return schedule.RecurringScheduleResponse{}, err
	}

	found, err := s.scheduleRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return schedule.RecurringScheduleResponse{}, err
	}

	return mapScheduleToResponse(found), nil
}

// List implements schedule.RecurringScheduleService.
func (s *recurringScheduleServiceImpl) List(ctx context.Context, filter schedule.RecurringScheduleFilter) (schedule.ListRecurringScheduleResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return schedule.ListRecurringScheduleResponse{}, err
	}

	if err := filter.Validate(); err != nil {
		return schedule.ListRecurringScheduleResponse{}, err
	}

	schedules, total, err := s.scheduleRepo.List(ctx, companyID, filter)
	if err != nil {
		return schedule.ListRecurringScheduleResponse{}, err
	}

	resp := schedule.ListRecurringScheduleResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
		Schedules:  []schedule.RecurringScheduleResponse{},
	}
	for _, sch := range schedules {
		resp.Schedules = append(resp.Schedules, mapScheduleToResponse(sch))
	}
	return resp, nil
}

// Update implements schedule.RecurringScheduleService.
func (s *recurringScheduleServiceImpl) Update(ctx context.Context, req schedule.UpdateRecurringScheduleRequest) (schedule.RecurringScheduleResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return schedule.RecurringScheduleResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return schedule.RecurringScheduleResponse{}, err
	}
	req.CompanyID = companyID

	if req.ShiftID != nil {
		if _, err := s.shiftRepo.GetByID(ctx, *req.ShiftID, companyID); err != nil {
			if errors.Is(err, shift.ErrShiftTemplateNotFound) {
				return schedule.RecurringScheduleResponse{}, schedule.ErrShiftNotFound
			}
			return schedule.RecurringScheduleResponse{}, err
		}
	}

	if len(req.Weekdays) > 0 {
		current, err := s.scheduleRepo.GetByID(ctx, req.ID, companyID)
		if err != nil {
			return schedule.RecurringScheduleResponse{}, err
		}

		set := recurrence.DaySet{}
		for _, token := range req.Weekdays {
			for d := range recurrence.Decode("BYDAY=" + token) {
				set[d] = true
			}
		}

		anchor := current.StartDate
		if req.StartDate != nil {
			anchor, _ = time.Parse("2006-01-02", *req.StartDate)
		}
		pattern, err := recurrence.Encode(set, anchor)
		if err != nil {
			return schedule.RecurringScheduleResponse{}, schedule.ErrEmptyWeekdaySet
		}
		req.Pattern = &pattern
	}

	updated, err := s.scheduleRepo.Update(ctx, req)
	if err != nil {
		return schedule.RecurringScheduleResponse{}, err
	}

	return mapScheduleToResponse(updated), nil
}

// Delete implements schedule.RecurringScheduleService.
func (s *recurringScheduleServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return err
	}

	return s.scheduleRepo.Delete(ctx, id, companyID)
}

func mapScheduleToResponse(sch schedule.RecurringSchedule) schedule.RecurringScheduleResponse {
	weekdays := []string{}
	for _, d := range recurrence.Decode(sch.RecurrencePattern).Weekdays() {
		weekdays = append(weekdays, string(d))
	}

	resp := schedule.RecurringScheduleResponse{
		ID:                sch.ID,
		ShiftID:           sch.ShiftID,
		ShiftName:         sch.ShiftName,
		EmployeeID:        sch.EmployeeID,
		EmployeeName:      sch.EmployeeName,
		RecurrencePattern: sch.RecurrencePattern,
		Weekdays:          weekdays,
		StartDate:         sch.StartDate.Format("2006-01-02"),
		CreatedAt:         sch.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         sch.UpdatedAt.Format(time.RFC3339),
	}
	if sch.EndDate != nil {
		endDate := sch.EndDate.Format("2006-01-02")
		resp.EndDate = &endDate
	}
	return resp
}
