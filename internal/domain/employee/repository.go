package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)
	GetByID(ctx context.Context, id, companyID string) (Employee, error)
	List(ctx context.Context, companyID string, filter EmployeeFilter) ([]Employee, int64, error)
	CountActive(ctx context.Context, companyID string) (int, error)
	Update(ctx context.Context, req UpdateEmployeeRequest, companyID string) (Employee, error)
	SoftDelete(ctx context.Context, id, companyID string) error
}
