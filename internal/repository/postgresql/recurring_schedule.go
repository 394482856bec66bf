package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/schedule"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/database"
)

type recurringScheduleRepositoryImpl struct {
	db *database.DB
}

func NewRecurringScheduleRepository(db *database.DB) schedule.RecurringScheduleRepository {
	return &recurringScheduleRepositoryImpl{db: db}
}

const scheduleColumns = `
	rs.id, rs.company_id, rs.shift_id, rs.employee_id, rs.recurrence_pattern,
	rs.start_date, rs.end_date, rs.created_at, rs.updated_at,
	e.full_name, st.name
`

const scheduleJoins = `
	FROM recurring_schedules rs
	JOIN employees e ON e.id = rs.employee_id
	JOIN shift_templates st ON st.id = rs.shift_id
`

func scanSchedule(row pgx.Row) (schedule.RecurringSchedule, error) {
	var s schedule.RecurringSchedule
	err := row.Scan(&s.ID, &s.CompanyID, &s.ShiftID, &s.EmployeeID, &s.RecurrencePattern,
		&s.StartDate, &s.EndDate, &s.CreatedAt, &s.UpdatedAt,
		&s.EmployeeName, &s.ShiftName)
	return s, err
}

// Create implements schedule.RecurringScheduleRepository.
func (r *recurringScheduleRepositoryImpl) Create(ctx context.Context, newSchedule schedule.RecurringSchedule) (schedule.RecurringSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO recurring_schedules (id, company_id, shift_id, employee_id, recurrence_pattern, start_date, end_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING *
		)
		SELECT ` + strings.ReplaceAll(scheduleColumns, "rs.", "inserted.") + `
		FROM inserted
		JOIN employees e ON e.id = inserted.employee_id
		JOIN shift_templates st ON st.id = inserted.shift_id
	`

	created, err := scanSchedule(q.QueryRow(ctx, query,
		newSchedule.ID, newSchedule.CompanyID, newSchedule.ShiftID, newSchedule.EmployeeID,
		newSchedule.RecurrencePattern, newSchedule.StartDate, newSchedule.EndDate))
	if err != nil {
		return schedule.RecurringSchedule{}, fmt.Errorf("failed to create recurring schedule: %w", err)
	}
	return created, nil
}

// GetByID implements schedule.RecurringScheduleRepository.
func (r *recurringScheduleRepositoryImpl) GetByID(ctx context.Context, id, companyID string) (schedule.RecurringSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + scheduleColumns + scheduleJoins +
		"WHERE rs.id = $1 AND rs.company_id = $2"

	found, err := scanSchedule(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.RecurringSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.RecurringSchedule{}, fmt.Errorf("failed to get recurring schedule %s: %w", id, err)
	}
	return found, nil
}

// List implements schedule.RecurringScheduleRepository.
func (r *recurringScheduleRepositoryImpl) List(ctx context.Context, companyID string, filter schedule.RecurringScheduleFilter) ([]schedule.RecurringSchedule, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE rs.company_id = $1"
	args := []interface{}{companyID}
	i := 2

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND rs.employee_id = $%d", i)
		args = append(args, *filter.EmployeeID)
		i++
	}
	if filter.ShiftID != nil {
		where += fmt.Sprintf(" AND rs.shift_id = $%d", i)
		args = append(args, *filter.ShiftID)
		i++
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) "+scheduleJoins+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count recurring schedules: %w", err)
	}

	query := "SELECT " + scheduleColumns + scheduleJoins + where +
		fmt.Sprintf(" ORDER BY rs.created_at LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list recurring schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.RecurringSchedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan recurring schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return schedules, total, nil
}

// ListActiveInRange implements schedule.RecurringScheduleRepository.
func (r *recurringScheduleRepositoryImpl) ListActiveInRange(ctx context.Context, companyID string, from, to time.Time) ([]schedule.RecurringSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + scheduleColumns + scheduleJoins + `
		WHERE rs.company_id = $1
		  AND rs.start_date <= $3
		  AND (rs.end_date IS NULL OR rs.end_date >= $2)
		ORDER BY rs.created_at
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list active recurring schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.RecurringSchedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring schedule: %w", err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

// Update implements schedule.RecurringScheduleRepository.
func (r *recurringScheduleRepositoryImpl) Update(ctx context.Context, req schedule.UpdateRecurringScheduleRequest) (schedule.RecurringSchedule, error) {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	i := 1
	addSet := func(col string, val interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	if req.ShiftID != nil {
		addSet("shift_id", *req.ShiftID)
	}
	if req.Pattern != nil {
		addSet("recurrence_pattern", *req.Pattern)
	}
	if req.StartDate != nil {
		addSet("start_date", *req.StartDate)
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			setClauses = append(setClauses, "end_date = NULL")
		} else {
			addSet("end_date", *req.EndDate)
		}
	}
	addSet("updated_at", time.Now())

	query := `
		WITH updated AS (
			UPDATE recurring_schedules SET ` + strings.Join(setClauses, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND company_id = $%d RETURNING *", i, i+1) + `
		)
		SELECT ` + strings.ReplaceAll(scheduleColumns, "rs.", "updated.") + `
		FROM updated
		JOIN employees e ON e.id = updated.employee_id
		JOIN shift_templates st ON st.id = updated.shift_id
	`
	args = append(args, req.ID, req.CompanyID)

	updated, err := scanSchedule(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.RecurringSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.RecurringSchedule{}, fmt.Errorf("failed to update recurring schedule %s: %w", req.ID, err)
	}
	return updated, nil
}

// Delete implements schedule.RecurringScheduleRepository.
func (r *recurringScheduleRepositoryImpl) Delete(ctx context.Context, id, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`DELETE FROM recurring_schedules WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete recurring schedule %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}
	return nil
}

// CountByShift implements schedule.RecurringScheduleRepository.
func (r *recurringScheduleRepositoryImpl) CountByShift(ctx context.Context, shiftID, companyID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM recurring_schedules WHERE shift_id = $1 AND company_id = $2`,
		shiftID, companyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count schedules for shift %s: %w", shiftID, err)
	}
	return count, nil
}
