package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const holidayColumns = "id, staff_id, start_date, end_date, status, decided_by, decided_at, created_at"

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.RequestRepository {
	return &holidayRepositoryImpl{db: db}
}

func scanRequest(row pgx.Row) (holiday.Request, error) {
	var req holiday.Request
	err := row.Scan(
		&req.ID,
		&req.StaffID,
		&req.StartDate,
		&req.EndDate,
		&req.Status,
		&req.DecidedBy,
		&req.DecidedAt,
		&req.CreatedAt,
	)
	return req, err
}

func (r *holidayRepositoryImpl) Create(ctx context.Context, request holiday.Request) (holiday.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holiday_requests (staff_id, start_date, end_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + holidayColumns

	created, err := scanRequest(q.QueryRow(ctx, query,
		request.StaffID,
		request.StartDate,
		request.EndDate,
		string(request.Status),
		request.CreatedAt,
	))
	if err != nil {
		return holiday.Request{}, fmt.Errorf("failed to create holiday request: %w", err)
	}
	return created, nil
}

func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id int64) (holiday.Request, error) {
	q := GetQuerier(ctx, r.db)

	req, err := scanRequest(q.QueryRow(ctx, `SELECT `+holidayColumns+` FROM holiday_requests WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return holiday.Request{}, holiday.ErrRequestNotFound
		}
		return holiday.Request{}, fmt.Errorf("failed to get holiday request: %w", err)
	}
	return req, nil
}

func (r *holidayRepositoryImpl) list(ctx context.Context, where string, arg interface{}) ([]holiday.Request, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+holidayColumns+` FROM holiday_requests WHERE `+where+` ORDER BY id`, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list holiday requests: %w", err)
	}
	defer rows.Close()

	requests := make([]holiday.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *holidayRepositoryImpl) GetByStaffID(ctx context.Context, staffID string) ([]holiday.Request, error) {
	return r.list(ctx, "staff_id = $1", staffID)
}

func (r *holidayRepositoryImpl) GetByStatus(ctx context.Context, status holiday.Status) ([]holiday.Request, error) {
	return r.list(ctx, "status = $1", string(status))
}

func (r *holidayRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status holiday.Status, decidedBy string, decidedAt time.Time) (holiday.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE holiday_requests
		SET status = $1, decided_by = $2, decided_at = $3
		WHERE id = $4 AND status = $5
		RETURNING ` + holidayColumns

	updated, err := scanRequest(q.QueryRow(ctx, query, string(status), decidedBy, decidedAt, id, string(holiday.StatusPending)))
	if err == nil {
		return updated, nil
	}
	if err != pgx.ErrNoRows {
		return holiday.Request{}, fmt.Errorf("failed to update holiday request: %w", err)
	}

	// Nothing matched: either the id is unknown or the request was decided.
	if _, err := r.GetByID(ctx, id); err != nil {
		return holiday.Request{}, err
	}
	return holiday.Request{}, holiday.ErrInvalidState
}

func (r *holidayRepositoryImpl) DeleteByStaffID(ctx context.Context, staffID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM holiday_requests WHERE staff_id = $1`, staffID); err != nil {
		return fmt.Errorf("failed to delete holiday requests: %w", err)
	}
	return nil
}

func (r *holidayRepositoryImpl) Reset(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `TRUNCATE holiday_requests RESTART IDENTITY`); err != nil {
		return fmt.Errorf("failed to clear holiday requests: %w", err)
	}
	return nil
}
