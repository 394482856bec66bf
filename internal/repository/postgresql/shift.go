package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/shift"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftTemplateRepository(db *database.DB) shift.ShiftTemplateRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = "id, company_id, name, start_time, end_time, differential_multiplier, created_at, updated_at"

func scanShift(row pgx.Row) (shift.ShiftTemplate, error) {
	var s shift.ShiftTemplate
	err := row.Scan(&s.ID, &s.CompanyID, &s.Name, &s.StartTime, &s.EndTime,
		&s.DifferentialMultiplier, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// Create implements shift.ShiftTemplateRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, newShift shift.ShiftTemplate) (shift.ShiftTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_templates (id, company_id, name, start_time, end_time, differential_multiplier)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + shiftColumns

	created, err := scanShift(q.QueryRow(ctx, query,
		newShift.ID, newShift.CompanyID, newShift.Name, newShift.StartTime, newShift.EndTime,
		newShift.DifferentialMultiplier))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.ShiftTemplate{}, shift.ErrShiftTemplateNameExists
		}
		return shift.ShiftTemplate{}, fmt.Errorf("failed to create shift template: %w", err)
	}
	return created, nil
}

// GetByID implements shift.ShiftTemplateRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id, companyID string) (shift.ShiftTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + shiftColumns + ` FROM shift_templates
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`

	found, err := scanShift(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftTemplate{}, shift.ErrShiftTemplateNotFound
		}
		return shift.ShiftTemplate{}, fmt.Errorf("failed to get shift template %s: %w", id, err)
	}
	return found, nil
}

// ListByCompany implements shift.ShiftTemplateRepository.
func (r *shiftRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]shift.ShiftTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + shiftColumns + ` FROM shift_templates
		WHERE company_id = $1 AND deleted_at IS NULL
		ORDER BY name`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift templates: %w", err)
	}
	defer rows.Close()

	var shifts []shift.ShiftTemplate
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift template: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

// Update implements shift.ShiftTemplateRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, req shift.UpdateShiftTemplateRequest) (shift.ShiftTemplate, error) {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	i := 1
	addSet := func(col string, val interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.StartTime != nil {
		addSet("start_time", *req.StartTime)
	}
	if req.EndTime != nil {
		addSet("end_time", *req.EndTime)
	}
	if req.DifferentialMultiplier != nil {
		addSet("differential_multiplier", *req.DifferentialMultiplier)
	}
	addSet("updated_at", time.Now())

	query := "UPDATE shift_templates SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND company_id = $%d AND deleted_at IS NULL", i, i+1) +
		" RETURNING " + shiftColumns
	args = append(args, req.ID, req.CompanyID)

	updated, err := scanShift(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftTemplate{}, shift.ErrShiftTemplateNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return shift.ShiftTemplate{}, shift.ErrShiftTemplateNameExists
		}
		return shift.ShiftTemplate{}, fmt.Errorf("failed to update shift template %s: %w", req.ID, err)
	}
	return updated, nil
}

// SoftDelete implements shift.ShiftTemplateRepository.
func (r *shiftRepositoryImpl) SoftDelete(ctx context.Context, id, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE shift_templates SET deleted_at = now() WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL`,
		id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete shift template %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftTemplateNotFound
	}
	return nil
}
