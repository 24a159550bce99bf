package professionals

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const professionalColumns = `id, name, specialty, crm, phone, address, created_at`

// List returns all professionals ordered by name.
func (r *PGRepo) List(ctx context.Context) ([]Professional, error) {
	const query = `
SELECT ` + professionalColumns + `
FROM healthcare_professionals
ORDER BY name, id`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Professional
	for rows.Next() {
		var p Professional
		if err := rows.Scan(&p.ID, &p.Name, &p.Specialty, &p.CRM, &p.Phone, &p.Address, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID fetches a professional by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Professional, error) {
	const query = `
SELECT ` + professionalColumns + `
FROM healthcare_professionals
WHERE id = $1`

	var p Professional
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Specialty, &p.CRM, &p.Phone, &p.Address, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Professional{}, ErrNotFound
		}
		return Professional{}, err
	}
	return p, nil
}

// Create inserts a new professional and returns its id.
func (r *PGRepo) Create(ctx context.Context, p Professional) (int64, error) {
	const query = `
INSERT INTO healthcare_professionals (name, specialty, crm, phone, address)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

	var id int64
	err := r.DB.QueryRowContext(ctx, query, p.Name, p.Specialty, p.CRM, p.Phone, p.Address).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update applies the full field set to an existing professional.
func (r *PGRepo) Update(ctx context.Context, p Professional) error {
	const query = `
UPDATE healthcare_professionals
SET name = $1, specialty = $2, crm = $3, phone = $4, address = $5
WHERE id = $6`

	res, err := r.DB.ExecContext(ctx, query, p.Name, p.Specialty, p.CRM, p.Phone, p.Address, p.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a professional. The schema restricts deletion while
// consultations still reference the row; that violation maps to
// ErrHasConsultations.
func (r *PGRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM healthcare_professionals WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrHasConsultations
		}
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of professionals.
func (r *PGRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT count(*) FROM healthcare_professionals`).Scan(&n)
	return n, err
}

var _ Repo = (*PGRepo)(nil)
