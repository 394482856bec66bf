package shift

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/schedule"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/shift"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/timeutil"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/service/authctx"
)

type shiftServiceImpl struct {
	shiftRepo    shift.ShiftTemplateRepository
	scheduleRepo schedule.RecurringScheduleRepository
}

func NewShiftTemplateService(
	shiftRepo shift.ShiftTemplateRepository,
	scheduleRepo schedule.RecurringScheduleRepository,
) shift.ShiftTemplateService {
	return &shiftServiceImpl{
		shiftRepo:    shiftRepo,
		scheduleRepo: scheduleRepo,
	}
}

// Create implements shift.ShiftTemplateService.
func (s *shiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftTemplateRequest) (shift.ShiftTemplateResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return shift.ShiftTemplateResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return shift.ShiftTemplateResponse{}, err
	}

	startTime, _ := timeutil.ParseClock(req.StartTime)
	endTime, _ := timeutil.ParseClock(req.EndTime)

	multiplier := decimal.NewFromInt(1)
	if req.DifferentialMultiplier != nil {
		multiplier, _ = decimal.NewFromString(*req.DifferentialMultiplier)
	}

	created, err := s.shiftRepo.Create(ctx, shift.ShiftTemplate{
		ID:                     uuid.NewString(),
		CompanyID:              companyID,
		Name:                   req.Name,
		StartTime:              startTime,
		EndTime:                endTime,
		DifferentialMultiplier: multiplier,
	})
	if err != nil {
		return shift.ShiftTemplateResponse{}, err
	}

	return mapShiftToResponse(created), nil
}

// Get implements shift.ShiftTemplateService.
func (s *shiftServiceImpl) Get(ctx context.Context, id string) (shift.ShiftTemplateResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return shift.ShiftTemplateResponse{}, err
	}

	found, err := s.shiftRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return shift.ShiftTemplateResponse{}, err
	}

	return mapShiftToResponse(found), nil
}

// List implements shift.ShiftTemplateService.
func (s *shiftServiceImpl) List(ctx context.Context) (shift.ListShiftTemplateResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return shift.ListShiftTemplateResponse{}, err
	}

	shifts, err := s.shiftRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return shift.ListShiftTemplateResponse{}, err
	}

	resp := shift.ListShiftTemplateResponse{
		TotalCount: int64(len(shifts)),
		Shifts:     []shift.ShiftTemplateResponse{},
	}
	for _, tpl := range shifts {
		resp.Shifts = append(resp.Shifts, mapShiftToResponse(tpl))
	}
	return resp, nil
}

// Update implements shift.ShiftTemplateService.
func (s *shiftServiceImpl) Update(ctx context.Context, req shift.UpdateShiftTemplateRequest) (shift.ShiftTemplateResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return shift.ShiftTemplateResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return shift.ShiftTemplateResponse{}, err
	}

	req.CompanyID = companyID
	updated, err := s.shiftRepo.Update(ctx, req)
	if err != nil {
		return shift.ShiftTemplateResponse{}, err
	}

	return mapShiftToResponse(updated), nil
}

// Delete implements shift.ShiftTemplateService.
func (s *shiftServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return err
	}

	inUse, err := s.scheduleRepo.CountByShift(ctx, id, companyID)
	if err != nil {
		return err
	}
	if inUse > 0 {
		return shift.ErrShiftTemplateInUse
	}

	return s.shiftRepo.SoftDelete(ctx, id, companyID)
}

func mapShiftToResponse(tpl shift.ShiftTemplate) shift.ShiftTemplateResponse {
	return shift.ShiftTemplateResponse{
		ID:                     tpl.ID,
		CompanyID:              tpl.CompanyID,
		Name:                   tpl.Name,
		StartTime:              tpl.StartTime.Format("15:04"),
		EndTime:                tpl.EndTime.Format("15:04"),
		DifferentialMultiplier: tpl.DifferentialMultiplier.String(),
		Hours:                  timeutil.WraparoundHours(tpl.StartTime, tpl.EndTime),
		CreatedAt:              tpl.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              tpl.UpdatedAt.Format(time.RFC3339),
	}
}
