package shift

import "context"

type ShiftTemplateService interface {
	Create(ctx context.Context, req CreateShiftTemplateRequest) (ShiftTemplateResponse, error)
	Get(ctx context.Context, id string) (ShiftTemplateResponse, error)
	List(ctx context.Context) (ListShiftTemplateResponse, error)
	Update(ctx context.Context, req UpdateShiftTemplateRequest) (ShiftTemplateResponse, error)
	Delete(ctx context.Context, id string) error
}
