package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/availability"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/database"
)

type availabilityRepositoryImpl struct {
	db *database.DB
}

func NewAvailabilityRepository(db *database.DB) availability.AvailabilityRepository {
	return &availabilityRepositoryImpl{db: db}
}

func (r *availabilityRepositoryImpl) Put(ctx context.Context, entry availability.Entry) error {
	q := GetQuerier(ctx, r.db)

	if len(entry.Tags) == 0 {
		_, err := q.Exec(ctx, `DELETE FROM availability WHERE staff_id = $1 AND day_key = $2`, entry.StaffID, entry.DayKey)
		if err != nil {
			return fmt.Errorf("failed to clear availability: %w", err)
		}
		return nil
	}

	tags := make([]string, 0, len(entry.Tags))
	for _, t := range entry.Tags.Sorted() {
		tags = append(tags, string(t))
	}

	query := `
		INSERT INTO availability (staff_id, day_key, tags)
		VALUES ($1, $2, $3)
		ON CONFLICT (staff_id, day_key) DO UPDATE SET tags = EXCLUDED.tags
	`
	if _, err := q.Exec(ctx, query, entry.StaffID, entry.DayKey, tags); err != nil {
		return fmt.Errorf("failed to save availability: %w", err)
	}
	return nil
}

func (r *availabilityRepositoryImpl) query(ctx context.Context, sql string, args ...interface{}) ([]availability.Entry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get availability: %w", err)
	}
	defer rows.Close()

	var entries []availability.Entry
	for rows.Next() {
		var (
			e    availability.Entry
			tags []string
		)
		if err := rows.Scan(&e.StaffID, &e.DayKey, &tags); err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		e.Tags = make(availability.TagSet, len(tags))
		for _, t := range tags {
			e.Tags[availability.Tag(t)] = struct{}{}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *availabilityRepositoryImpl) GetByStaffAndRange(ctx context.Context, staffID, startKey, endKey string) ([]availability.Entry, error) {
	return r.query(ctx,
		`SELECT staff_id, day_key, tags FROM availability
		 WHERE staff_id = $1 AND day_key BETWEEN $2 AND $3 ORDER BY day_key`,
		staffID, startKey, endKey,
	)
}

func (r *availabilityRepositoryImpl) GetByDay(ctx context.Context, dayKey string) ([]availability.Entry, error) {
	return r.query(ctx,
		`SELECT staff_id, day_key, tags FROM availability WHERE day_key = $1 ORDER BY staff_id`,
		dayKey,
	)
}

func (r *availabilityRepositoryImpl) DeleteByStaffID(ctx context.Context, staffID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM availability WHERE staff_id = $1`, staffID); err != nil {
		return fmt.Errorf("failed to delete availability: %w", err)
	}
	return nil
}

func (r *availabilityRepositoryImpl) Reset(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM availability`); err != nil {
		return fmt.Errorf("failed to clear availability: %w", err)
	}
	return nil
}
