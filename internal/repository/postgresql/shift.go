package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/rota"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) rota.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

func (r *shiftRepositoryImpl) query(ctx context.Context, sql string, args ...interface{}) ([]rota.Shift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get shifts: %w", err)
	}
	defer rows.Close()

	shifts := make([]rota.Shift, 0)
	for rows.Next() {
		var s rota.Shift
		if err := rows.Scan(&s.DayKey, &s.StaffID, &s.TimeRange); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func (r *shiftRepositoryImpl) GetByDay(ctx context.Context, dayKey string) ([]rota.Shift, error) {
	shifts, err := r.query(ctx, `SELECT day_key, staff_id, time_range FROM shifts WHERE day_key = $1`, dayKey)
	if err != nil {
		return nil, err
	}
	rota.SortShifts(shifts)
	return shifts, nil
}

func (r *shiftRepositoryImpl) GetByRange(ctx context.Context, startKey, endKey string) ([]rota.Shift, error) {
	return r.query(ctx,
		`SELECT day_key, staff_id, time_range FROM shifts WHERE day_key BETWEEN $1 AND $2 ORDER BY day_key`,
		startKey, endKey,
	)
}

func (r *shiftRepositoryImpl) Upsert(ctx context.Context, shift rota.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (day_key, staff_id, time_range)
		VALUES ($1, $2, $3)
		ON CONFLICT (day_key, staff_id) DO UPDATE SET time_range = EXCLUDED.time_range
	`
	if _, err := q.Exec(ctx, query, shift.DayKey, shift.StaffID, shift.TimeRange); err != nil {
		return fmt.Errorf("failed to save shift: %w", err)
	}
	return nil
}

func (r *shiftRepositoryImpl) Delete(ctx context.Context, dayKey, staffID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE day_key = $1 AND staff_id = $2`, dayKey, staffID)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return rota.ErrShiftNotFound
	}
	return nil
}

func (r *shiftRepositoryImpl) DeleteByStaffID(ctx context.Context, staffID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM shifts WHERE staff_id = $1`, staffID); err != nil {
		return fmt.Errorf("failed to delete shifts: %w", err)
	}
	return nil
}

func (r *shiftRepositoryImpl) Reset(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM shifts`); err != nil {
		return fmt.Errorf("failed to clear shifts: %w", err)
	}
	return nil
}
