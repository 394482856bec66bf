package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/timelog"
	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/pkg/database"
)

type timeLogRepositoryImpl struct {
	db *database.DB
}

func NewTimeLogRepository(db *database.DB) timelog.TimeLogRepository {
	return &timeLogRepositoryImpl{db: db}
}

const timeLogColumns = `
	tl.id, tl.company_id, tl.employee_id, tl.time_in, tl.time_out, tl.status,
	tl.device_info, tl.created_at, tl.updated_at, e.full_name
`

func scanTimeLog(row pgx.Row) (timelog.TimeLog, error) {
	var l timelog.TimeLog
	err := row.Scan(&l.ID, &l.CompanyID, &l.EmployeeID, &l.TimeIn, &l.TimeOut, &l.Status,
		&l.DeviceInfo, &l.CreatedAt, &l.UpdatedAt, &l.EmployeeName)
	return l, err
}

// Create implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) Create(ctx context.Context, log timelog.TimeLog) (timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO time_logs (id, company_id, employee_id, time_in, time_out, status, device_info)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING *
		)
		SELECT inserted.id, inserted.company_id, inserted.employee_id, inserted.time_in,
			inserted.time_out, inserted.status, inserted.device_info,
			inserted.created_at, inserted.updated_at, e.full_name
		FROM inserted
		JOIN employees e ON e.id = inserted.employee_id
	`

	created, err := scanTimeLog(q.QueryRow(ctx, query,
		log.ID, log.CompanyID, log.EmployeeID, log.TimeIn, log.TimeOut, log.Status, log.DeviceInfo))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return timelog.TimeLog{}, timelog.ErrAlreadyClockedIn
		}
		return timelog.TimeLog{}, fmt.Errorf("failed to create time log: %w", err)
	}
	return created, nil
}

// GetByID implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) GetByID(ctx context.Context, id, companyID string) (timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + timeLogColumns + `
		FROM time_logs tl
		JOIN employees e ON e.id = tl.employee_id
		WHERE tl.id = $1 AND tl.company_id = $2
	`

	found, err := scanTimeLog(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timelog.TimeLog{}, timelog.ErrTimeLogNotFound
		}
		return timelog.TimeLog{}, fmt.Errorf("failed to get time log %s: %w", id, err)
	}

	breaks, err := r.listBreaks(ctx, found.ID)
	if err != nil {
		return timelog.TimeLog{}, err
	}
	found.Breaks = breaks
	return found, nil
}

// GetOpenByEmployee implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) GetOpenByEmployee(ctx context.Context, employeeID, companyID string) (timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + timeLogColumns + `
		FROM time_logs tl
		JOIN employees e ON e.id = tl.employee_id
		WHERE tl.employee_id = $1 AND tl.company_id = $2 AND tl.status = 'open'
	`

	found, err := scanTimeLog(q.QueryRow(ctx, query, employeeID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timelog.TimeLog{}, timelog.ErrNotClockedIn
		}
		return timelog.TimeLog{}, fmt.Errorf("failed to get open time log: %w", err)
	}

	breaks, err := r.listBreaks(ctx, found.ID)
	if err != nil {
		return timelog.TimeLog{}, err
	}
	found.Breaks = breaks
	return found, nil
}

// List implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) List(ctx context.Context, companyID string, filter timelog.TimeLogFilter) ([]timelog.TimeLog, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE tl.company_id = $1"
	args := []interface{}{companyID}
	i := 2

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND tl.employee_id = $%d", i)
		args = append(args, *filter.EmployeeID)
		i++
	}
	if filter.From != nil {
		where += fmt.Sprintf(" AND tl.time_in >= $%d", i)
		args = append(args, *filter.From)
		i++
	}
	if filter.To != nil {
		where += fmt.Sprintf(" AND tl.time_in <= $%d", i)
		args = append(args, *filter.To)
		i++
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM time_logs tl "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count time logs: %w", err)
	}

	query := "SELECT " + timeLogColumns + `
		FROM time_logs tl
		JOIN employees e ON e.id = tl.employee_id ` + where +
		fmt.Sprintf(" ORDER BY tl.time_in DESC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time logs: %w", err)
	}
	defer rows.Close()

	var logs []timelog.TimeLog
	for rows.Next() {
		l, err := scanTimeLog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan time log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// ListRange implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) ListRange(ctx context.Context, companyID string, from, to time.Time) ([]timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + timeLogColumns + `
		FROM time_logs tl
		JOIN employees e ON e.id = tl.employee_id
		WHERE tl.company_id = $1 AND tl.time_in >= $2 AND tl.time_in <= $3
		ORDER BY tl.time_in
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs in range: %w", err)
	}
	defer rows.Close()

	var logs []timelog.TimeLog
	for rows.Next() {
		l, err := scanTimeLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

// ListStaleOpen implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) ListStaleOpen(ctx context.Context, cutoff time.Time) ([]timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + timeLogColumns + `
		FROM time_logs tl
		JOIN employees e ON e.id = tl.employee_id
		WHERE tl.status = 'open' AND tl.time_in < $1
		ORDER BY tl.time_in
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale open time logs: %w", err)
	}
	defer rows.Close()

	var logs []timelog.TimeLog
	for rows.Next() {
		l, err := scanTimeLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

// Update implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) Update(ctx context.Context, log timelog.TimeLog) (timelog.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH updated AS (
			UPDATE time_logs
			SET time_in = $3, time_out = $4, status = $5, updated_at = now()
			WHERE id = $1 AND company_id = $2
			RETURNING *
		)
		SELECT updated.id, updated.company_id, updated.employee_id, updated.time_in,
			updated.time_out, updated.status, updated.device_info,
			updated.created_at, updated.updated_at, e.full_name
		FROM updated
		JOIN employees e ON e.id = updated.employee_id
	`

	updated, err := scanTimeLog(q.QueryRow(ctx, query,
		log.ID, log.CompanyID, log.TimeIn, log.TimeOut, log.Status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timelog.TimeLog{}, timelog.ErrTimeLogNotFound
		}
		return timelog.TimeLog{}, fmt.Errorf("failed to update time log %s: %w", log.ID, err)
	}

	breaks, err := r.listBreaks(ctx, updated.ID)
	if err != nil {
		return timelog.TimeLog{}, err
	}
	updated.Breaks = breaks
	return updated, nil
}

// CreateBreak implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) CreateBreak(ctx context.Context, brk timelog.BreakLog) (timelog.BreakLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO break_logs (id, time_log_id, break_start)
		VALUES ($1, $2, $3)
		RETURNING id, time_log_id, break_start, break_end, created_at
	`

	var created timelog.BreakLog
	err := q.QueryRow(ctx, query, brk.ID, brk.TimeLogID, brk.BreakStart).
		Scan(&created.ID, &created.TimeLogID, &created.BreakStart, &created.BreakEnd, &created.CreatedAt)
	if err != nil {
		return timelog.BreakLog{}, fmt.Errorf("failed to create break log: %w", err)
	}
	return created, nil
}

// GetOpenBreak implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) GetOpenBreak(ctx context.Context, timeLogID string) (timelog.BreakLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, time_log_id, break_start, break_end, created_at
		FROM break_logs
		WHERE time_log_id = $1 AND break_end IS NULL
	`

	var found timelog.BreakLog
	err := q.QueryRow(ctx, query, timeLogID).
		Scan(&found.ID, &found.TimeLogID, &found.BreakStart, &found.BreakEnd, &found.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timelog.BreakLog{}, timelog.ErrNoOpenBreak
		}
		return timelog.BreakLog{}, fmt.Errorf("failed to get open break: %w", err)
	}
	return found, nil
}

// CloseBreak implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) CloseBreak(ctx context.Context, breakID string, end time.Time) (timelog.BreakLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE break_logs SET break_end = $2
		WHERE id = $1
		RETURNING id, time_log_id, break_start, break_end, created_at
	`

	var closed timelog.BreakLog
	err := q.QueryRow(ctx, query, breakID, end).
		Scan(&closed.ID, &closed.TimeLogID, &closed.BreakStart, &closed.BreakEnd, &closed.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timelog.BreakLog{}, timelog.ErrNoOpenBreak
		}
		return timelog.BreakLog{}, fmt.Errorf("failed to close break %s: %w", breakID, err)
	}
	return closed, nil
}

func (r *timeLogRepositoryImpl) listBreaks(ctx context.Context, timeLogID string) ([]timelog.BreakLog, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, time_log_id, break_start, break_end, created_at
		FROM break_logs
		WHERE time_log_id = $1
		ORDER BY break_start
	`, timeLogID)
	if err != nil {
		return nil, fmt.Errorf("failed to list break logs: %w", err)
	}
	defer rows.Close()

	var breaks []timelog.BreakLog
	for rows.Next() {
		var b timelog.BreakLog
		if err := rows.Scan(&b.ID, &b.TimeLogID, &b.BreakStart, &b.BreakEnd, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan break log: %w", err)
		}
		breaks = append(breaks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return breaks, nil
}
