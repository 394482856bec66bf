package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/company"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

// Create implements company.CompanyRepository.
func (c *companyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO companies (id, name, username, address, timezone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, username, address, timezone, created_at, updated_at
	`

	var created company.Company
	err := q.QueryRow(ctx, query,
		newCompany.ID, newCompany.Name, newCompany.Username, newCompany.Address, newCompany.Timezone).
		Scan(&created.ID, &created.Name, &created.Username, &created.Address, &created.Timezone,
			&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return company.Company{}, company.ErrCompanyUsernameExists
		}
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}
	return created, nil
}

// GetByID implements company.CompanyRepository.
func (c *companyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, username, address, timezone, created_at, updated_at
		FROM companies
		WHERE id = $1 AND deleted_at IS NULL
	`

	var found company.Company
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.Name, &found.Username, &found.Address, &found.Timezone,
			&found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company %s: %w", id, err)
	}
	return found, nil
}

// Update implements company.CompanyRepository.
func (c *companyRepositoryImpl) Update(ctx context.Context, req company.UpdateCompanyRequest) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

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
	if req.Address != nil {
		addSet("address", *req.Address)
	}
	if req.Timezone != nil {
		addSet("timezone", *req.Timezone)
	}
	addSet("updated_at", time.Now())

	query := "UPDATE companies SET " + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND deleted_at IS NULL", i) +
		" RETURNING id, name, username, address, timezone, created_at, updated_at"
	args = append(args, req.ID)

	var updated company.Company
	err := q.QueryRow(ctx, query, args...).
		Scan(&updated.ID, &updated.Name, &updated.Username, &updated.Address, &updated.Timezone,
			&updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to update company %s: %w", req.ID, err)
	}
	return updated, nil
}

// SoftDelete implements company.CompanyRepository.
func (c *companyRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx,
		`UPDATE companies SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to delete company %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrCompanyNotFound
	}
	return nil
}
