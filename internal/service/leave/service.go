package leave

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/leave"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/user"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/service/authctx"
)

type leaveServiceImpl struct {
	leaveRepo leave.LeaveRequestRepository
}

func NewLeaveService(leaveRepo leave.LeaveRequestRepository) leave.LeaveService {
	return &leaveServiceImpl{leaveRepo: leaveRepo}
}

// Create implements leave.LeaveService.
func (s *leaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveRequestResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	employeeID, err := authctx.EmployeeID(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	overlapping, err := s.leaveRepo.CountOverlapping(ctx, employeeID, companyID, startDate, endDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if overlapping > 0 {
		return leave.LeaveRequestResponse{}, leave.ErrOverlappingLeave
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		ID:         uuid.NewString(),
		CompanyID:  companyID,
		EmployeeID: employeeID,
		Type:       leave.LeaveType(req.Type),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.LeaveStatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return mapLeaveToResponse(created), nil
}

// Get implements leave.LeaveService.
func (s *leaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	found, err := s.leaveRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return mapLeaveToResponse(found), nil
}

// List implements leave.LeaveService.
func (s *leaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveRequestResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	if err := filter.Validate(); err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	role, err := authctx.Role(ctx)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}
	if !role.CanManage() {
		employeeID, err := authctx.EmployeeID(ctx)
		if err != nil {
			return leave.ListLeaveRequestResponse{}, err
		}
		filter.EmployeeID = &employeeID
	}

	requests, total, err := s.leaveRepo.List(ctx, companyID, filter)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	resp := leave.ListLeaveRequestResponse{
		TotalCount:    total,
		Page:          filter.Page,
		Limit:         filter.Limit,
		TotalPages:    int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
		LeaveRequests: []leave.LeaveRequestResponse{},
	}
	for _, l := range requests {
		resp.LeaveRequests = append(resp.LeaveRequests, mapLeaveToResponse(l))
	}
	return resp, nil
}

// Review implements leave.LeaveService.
func (s *leaveServiceImpl) Review(ctx context.Context, req leave.ReviewLeaveRequest) (leave.LeaveRequestResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	reviewerID, err := authctx.EmployeeID(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	role, err := authctx.Role(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if !role.CanManage() {
		return leave.LeaveRequestResponse{}, user.ErrForbidden
	}

	current, err := s.leaveRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if current.Status != leave.LeaveStatusPending {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	now := time.Now()
	current.Status = leave.LeaveStatusRejected
	if req.Approve {
		current.Status = leave.LeaveStatusApproved
	}
	current.ReviewedBy = &reviewerID
	current.ReviewedAt = &now
	current.ReviewerNote = req.ReviewerNote

	updated, err := s.leaveRepo.Update(ctx, current)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return mapLeaveToResponse(updated), nil
}

// Cancel implements leave.LeaveService.
func (s *leaveServiceImpl) Cancel(ctx context.Context, id string) error {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return err
	}
	employeeID, err := authctx.EmployeeID(ctx)
	if err != nil {
		return err
	}

	current, err := s.leaveRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	if current.EmployeeID != employeeID {
		return user.ErrForbidden
	}
	if current.Status != leave.LeaveStatusPending {
		return leave.ErrLeaveAlreadyProcessed
	}

	return s.leaveRepo.Delete(ctx, id, companyID)
}

// Usage implements leave.LeaveService.
func (s *leaveServiceImpl) Usage(ctx context.Context, year int) ([]leave.LeaveUsageSummary, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return nil, err
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	requests, err := s.leaveRepo.ListOutstandingInRange(ctx, companyID, from, to)
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[string]*leave.LeaveUsageSummary)
	var order []string
	for _, req := range requests {
		summary, ok := byEmployee[req.EmployeeID]
		if !ok {
			summary = &leave.LeaveUsageSummary{
				EmployeeID:   req.EmployeeID,
				EmployeeName: req.EmployeeName,
			}
			byEmployee[req.EmployeeID] = summary
			order = append(order, req.EmployeeID)
		}
		switch req.Status {
		case leave.LeaveStatusApproved:
			summary.ApprovedDays += req.Days()
		case leave.LeaveStatusPending:
			summary.PendingDays += req.Days()
		}
	}

	summaries := make([]leave.LeaveUsageSummary, 0, len(order))
	for _, employeeID := range order {
		summaries = append(summaries, *byEmployee[employeeID])
	}
	return summaries, nil
}

func mapLeaveToResponse(l leave.LeaveRequest) leave.LeaveRequestResponse {
	resp := leave.LeaveRequestResponse{
		ID:           l.ID,
		CompanyID:    l.CompanyID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		Type:         l.Type,
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		Days:         l.Days(),
		Reason:       l.Reason,
		Status:       l.Status,
		ReviewedBy:   l.ReviewedBy,
		ReviewerNote: l.ReviewerNote,
		CreatedAt:    l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    l.UpdatedAt.Format(time.RFC3339),
	}
	if l.ReviewedAt != nil {
		reviewedAt := l.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &reviewedAt
	}
	return resp
}
