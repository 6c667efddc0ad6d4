package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/database"
)

// schema is applied on every start; each statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS staff (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		gender     TEXT NOT NULL,
		icon       TEXT NOT NULL,
		role       TEXT NOT NULL,
		wage       NUMERIC(10, 2) NOT NULL DEFAULT 0,
		pin_hash   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + staffNameIndex + ` ON staff (LOWER(name))`,
	`CREATE TABLE IF NOT EXISTS staff_sequence (
		singleton  BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (singleton),
		next_value BIGINT NOT NULL
	)`,
	`INSERT INTO staff_sequence (singleton, next_value) VALUES (TRUE, 1) ON CONFLICT DO NOTHING`,
	`CREATE TABLE IF NOT EXISTS shifts (
		day_key    TEXT NOT NULL,
		staff_id   TEXT NOT NULL,
		time_range TEXT NOT NULL,
		PRIMARY KEY (day_key, staff_id)
	)`,
	`CREATE INDEX IF NOT EXISTS shifts_staff_id_idx ON shifts (staff_id)`,
	`CREATE TABLE IF NOT EXISTS availability (
		staff_id TEXT NOT NULL,
		day_key  TEXT NOT NULL,
		tags     TEXT[] NOT NULL,
		PRIMARY KEY (staff_id, day_key)
	)`,
	`CREATE INDEX IF NOT EXISTS availability_day_key_idx ON availability (day_key)`,
	`CREATE TABLE IF NOT EXISTS holiday_requests (
		id         BIGSERIAL PRIMARY KEY,
		staff_id   TEXT NOT NULL,
		start_date DATE NOT NULL,
		end_date   DATE NOT NULL,
		status     TEXT NOT NULL,
		decided_by TEXT,
		decided_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS holiday_requests_status_idx ON holiday_requests (status)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id           TEXT PRIMARY KEY,
		recipient_id TEXT NOT NULL,
		type         TEXT NOT NULL,
		title        TEXT NOT NULL,
		message      TEXT NOT NULL,
		data         JSONB,
		is_read      BOOLEAN NOT NULL DEFAULT FALSE,
		read_at      TIMESTAMPTZ,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS notifications_recipient_idx ON notifications (recipient_id, created_at DESC)`,
}

// EnsureSchema creates the rota tables when they are missing.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
