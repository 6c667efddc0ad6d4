package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/rota-backend-go/internal/domain/staff"
	"github.com/cmlabs-hris/rota-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	staffNameIndex      = "staff_name_lower_idx"
	uniqueViolationCode = "23505"
	staffColumns        = "id, name, gender, icon, role, wage, pin_hash, created_at, updated_at"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

func scanProfile(row pgx.Row) (staff.Profile, error) {
	var p staff.Profile
	err := row.Scan(&p.ID, &p.Name, &p.Gender, &p.Icon, &p.Role, &p.Wage, &p.PINHash, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func isDuplicateName(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == staffNameIndex
}

func (r *staffRepositoryImpl) List(ctx context.Context) ([]staff.Profile, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+staffColumns+` FROM staff ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	profiles := make([]staff.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Profile, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanProfile(q.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Profile{}, staff.ErrStaffNotFound
		}
		return staff.Profile{}, fmt.Errorf("failed to get staff: %w", err)
	}
	return p, nil
}

func (r *staffRepositoryImpl) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM staff WHERE LOWER(name) = LOWER($1) AND id <> $2)`,
		name, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check staff name: %w", err)
	}
	return exists, nil
}

func (r *staffRepositoryImpl) NextSequence(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var seq int64
	err := q.QueryRow(ctx,
		`UPDATE staff_sequence SET next_value = next_value + 1 RETURNING next_value - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to advance staff sequence: %w", err)
	}
	return seq, nil
}

func (r *staffRepositoryImpl) Create(ctx context.Context, profile staff.Profile) (staff.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO staff (id, name, gender, icon, role, wage, pin_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + staffColumns

	created, err := scanProfile(q.QueryRow(ctx, query,
		profile.ID,
		profile.Name,
		string(profile.Gender),
		profile.Icon,
		string(profile.Role),
		profile.Wage,
		profile.PINHash,
		profile.CreatedAt,
		profile.UpdatedAt,
	))
	if err != nil {
		if isDuplicateName(err) {
			return staff.Profile{}, staff.ErrDuplicateName
		}
		return staff.Profile{}, fmt.Errorf("failed to create staff: %w", err)
	}
	return created, nil
}

func (r *staffRepositoryImpl) Update(ctx context.Context, profile staff.Profile) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff
		SET name = $1, gender = $2, icon = $3, role = $4, wage = $5, updated_at = $6
		WHERE id = $7
	`
	tag, err := q.Exec(ctx, query,
		profile.Name,
		string(profile.Gender),
		profile.Icon,
		string(profile.Role),
		profile.Wage,
		profile.UpdatedAt,
		profile.ID,
	)
	if err != nil {
		if isDuplicateName(err) {
			return staff.ErrDuplicateName
		}
		return fmt.Errorf("failed to update staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}
	return nil
}

func (r *staffRepositoryImpl) UpdatePINHash(ctx context.Context, id, pinHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE staff SET pin_hash = $1, updated_at = NOW() WHERE id = $2`, pinHash, id)
	if err != nil {
		return fmt.Errorf("failed to update PIN: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}
	return nil
}

func (r *staffRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}
	return nil
}

func (r *staffRepositoryImpl) Reset(ctx context.Context, next int64) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM staff`); err != nil {
		return fmt.Errorf("failed to clear staff: %w", err)
	}
	if _, err := q.Exec(ctx, `UPDATE staff_sequence SET next_value = $1`, next); err != nil {
		return fmt.Errorf("failed to reset staff sequence: %w", err)
	}
	return nil
}
