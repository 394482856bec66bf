package company

import "context"

type CompanyService interface {
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	GetMyCompany(ctx context.Context) (CompanyResponse, error)
	Update(ctx context.Context, req UpdateCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context) error
}
