package employee

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/employee"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/subscription"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/service/authctx"
)

type employeeServiceImpl struct {
	employeeRepo    employee.EmployeeRepository
	subscriptionSvc subscription.SubscriptionService
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	subscriptionSvc subscription.SubscriptionService,
) employee.EmployeeService {
	return &employeeServiceImpl{
		employeeRepo:    employeeRepo,
		subscriptionSvc: subscriptionSvc,
	}
}

// Create implements employee.EmployeeService.
func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.subscriptionSvc.CheckSeatAvailable(ctx, companyID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		FullName:  req.FullName,
		Email:     req.Email,
		Position:  req.Position,
		HireDate:  hireDate,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *employeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	found, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(found), nil
}

// List implements employee.EmployeeService.
func (s *employeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	employees, total, err := s.employeeRepo.List(ctx, companyID, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	resp := employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int((total + int64(filter.Limit) - 1) / int64(filter.Limit)),
		Employees:  []employee.EmployeeResponse{},
	}
	for _, emp := range employees {
		resp.Employees = append(resp.Employees, mapEmployeeToResponse(emp))
	}
	return resp, nil
}

// Update implements employee.EmployeeService.
func (s *employeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, req, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *employeeServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return err
	}

	return s.employeeRepo.SoftDelete(ctx, id, companyID)
}

func mapEmployeeToResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:        e.ID,
		CompanyID: e.CompanyID,
		FullName:  e.FullName,
		Email:     e.Email,
		Position:  e.Position,
		HireDate:  e.HireDate.Format("2006-01-02"),
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}
}
