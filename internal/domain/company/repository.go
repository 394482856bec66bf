package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, company Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	Update(ctx context.Context, req UpdateCompanyRequest) (Company, error)
	SoftDelete(ctx context.Context, id string) error
}
