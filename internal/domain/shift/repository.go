package shift

import "context"

type ShiftTemplateRepository interface {
	Create(ctx context.Context, shift ShiftTemplate) (ShiftTemplate, error)
	GetByID(ctx context.Context, id, companyID string) (ShiftTemplate, error)
	ListByCompany(ctx context.Context, companyID string) ([]ShiftTemplate, error)
	Update(ctx context.Context, req UpdateShiftTemplateRequest) (ShiftTemplate, error)
	SoftDelete(ctx context.Context, id, companyID string) error
}
