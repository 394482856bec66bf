package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/leave"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveColumns = `
	lr.id, lr.company_id, lr.employee_id, lr.type, lr.start_date, lr.end_date,
	lr.reason, lr.status, lr.reviewed_by, lr.reviewed_at, lr.reviewer_note,
	lr.created_at, lr.updated_at, e.full_name
`

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(&l.ID, &l.CompanyID, &l.EmployeeID, &l.Type, &l.StartDate, &l.EndDate,
		&l.Reason, &l.Status, &l.ReviewedBy, &l.ReviewedAt, &l.ReviewerNote,
		&l.CreatedAt, &l.UpdatedAt, &l.EmployeeName)
	return l, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO leave_requests (id, company_id, employee_id, type, start_date, end_date, reason, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING *
		)
		SELECT inserted.id, inserted.company_id, inserted.employee_id, inserted.type,
			inserted.start_date, inserted.end_date, inserted.reason, inserted.status,
			inserted.reviewed_by, inserted.reviewed_at, inserted.reviewer_note,
			inserted.created_at, inserted.updated_at, e.full_name
		FROM inserted
		JOIN employees e ON e.id = inserted.employee_id
	`

	created, err := scanLeave(q.QueryRow(ctx, query,
		req.ID, req.CompanyID, req.EmployeeID, req.Type, req.StartDate, req.EndDate,
		req.Reason, req.Status))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id, companyID string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + leaveColumns + `
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.id = $1 AND lr.company_id = $2
	`

	found, err := scanLeave(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request %s: %w", id, err)
	}
	return found, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, companyID string, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE lr.company_id = $1"
	args := []interface{}{companyID}
	i := 2

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND lr.employee_id = $%d", i)
		args = append(args, *filter.EmployeeID)
		i++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND lr.status = $%d", i)
		args = append(args, *filter.Status)
		i++
	}
	if filter.From != nil {
		where += fmt.Sprintf(" AND lr.end_date >= $%d", i)
		args = append(args, *filter.From)
		i++
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND lr.start_date <= $%d", i)
		args = append(args, *filter.To)
		i++
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM leave_requests lr "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := "SELECT " + leaveColumns + `
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id ` + where +
		fmt.Sprintf(" ORDER BY lr.created_at DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// ListApprovedInRange implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListApprovedInRange(ctx context.Context, companyID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + leaveColumns + `
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.company_id = $1 AND lr.status = 'approved'
		  AND lr.start_date <= $3 AND lr.end_date >= $2
		ORDER BY lr.start_date
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// ListOutstandingInRange implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListOutstandingInRange(ctx context.Context, companyID string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + leaveColumns + `
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.company_id = $1 AND lr.status IN ('pending', 'approved')
		  AND lr.start_date <= $3 AND lr.end_date >= $2
		ORDER BY lr.start_date
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list outstanding leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// CountOverlapping implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) CountOverlapping(ctx context.Context, employeeID, companyID string, start, end time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM leave_requests
		WHERE employee_id = $1 AND company_id = $2
		  AND status IN ('pending', 'approved')
		  AND start_date <= $4 AND end_date >= $3
	`, employeeID, companyID, start, end).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping leave requests: %w", err)
	}
	return count, nil
}

// Update implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE leave_requests
			SET status = $3, reviewed_by = $4, reviewed_at = $5, reviewer_note = $6, updated_at = now()
			WHERE id = $1 AND company_id = $2
			RETURNING *
		)
		SELECT updated.id, updated.company_id, updated.employee_id, updated.type,
			updated.start_date, updated.end_date, updated.reason, updated.status,
			updated.reviewed_by, updated.reviewed_at, updated.reviewer_note,
			updated.created_at, updated.updated_at, e.full_name
		FROM updated
		JOIN employees e ON e.id = updated.employee_id
	`

	updated, err := scanLeave(q.QueryRow(ctx, query,
		req.ID, req.CompanyID, req.Status, req.ReviewedBy, req.ReviewedAt, req.ReviewerNote))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request %s: %w", req.ID, err)
	}
	return updated, nil
}

// Delete implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM leave_requests WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete leave request %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}
