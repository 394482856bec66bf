package company

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/company"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/service/authctx"
)

type companyServiceImpl struct {
	companyRepo company.CompanyRepository
}

func NewCompanyService(companyRepo company.CompanyRepository) company.CompanyService {
	return &companyServiceImpl{companyRepo: companyRepo}
}

// Create implements company.CompanyService.
func (s *companyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	created, err := s.companyRepo.Create(ctx, company.Company{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Username: req.Username,
		Address:  req.Address,
		Timezone: timezone,
	})
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return mapCompanyToResponse(created), nil
}

// GetMyCompany implements company.CompanyService.
func (s *companyServiceImpl) GetMyCompany(ctx context.Context) (company.CompanyResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	found, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	return mapCompanyToResponse(found), nil
}

// Update implements company.CompanyService.
func (s *companyServiceImpl) Update(ctx context.Context, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return company.CompanyResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}
	if req.Name == nil && req.Address == nil && req.Timezone == nil {
		found, err := s.companyRepo.GetByID(ctx, companyID)
		if err != nil {
			return company.CompanyResponse{}, err
		}
		return mapCompanyToResponse(found), nil
	}

	req.ID = companyID
	updated, err := s.companyRepo.Update(ctx, req)
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to update company: %w", err)
	}

	return mapCompanyToResponse(updated), nil
}

// Delete implements company.CompanyService.
func (s *companyServiceImpl) Delete(ctx context.Context) error {
	companyID, err := authctx.CompanyID(ctx)
	if err != nil {
		return err
	}

	return s.companyRepo.SoftDelete(ctx, companyID)
}

func mapCompanyToResponse(c company.Company) company.CompanyResponse {
	return company.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Username:  c.Username,
		Address:   c.Address,
		Timezone:  c.Timezone,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}
