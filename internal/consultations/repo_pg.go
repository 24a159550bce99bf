package consultations

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

const consultationColumns = `id, date, professional_id, specialty, notes, created_at`

// List returns all consultations, most recent date first.
func (r *PGRepo) List(ctx context.Context) ([]Consultation, error) {
	const query = `
SELECT ` + consultationColumns + `
FROM consultations
ORDER BY date DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Consultation
	for rows.Next() {
		var c Consultation
		if err := rows.Scan(&c.ID, &c.Date, &c.ProfessionalID, &c.Specialty, &c.Notes, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetByID fetches a consultation by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Consultation, error) {
	const query = `
SELECT ` + consultationColumns + `
FROM consultations
WHERE id = $1`

	var c Consultation
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Date, &c.ProfessionalID, &c.Specialty, &c.Notes, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Consultation{}, ErrNotFound
		}
		return Consultation{}, err
	}
	return c, nil
}

// Create inserts a new consultation and returns its id.
func (r *PGRepo) Create(ctx context.Context, c Consultation) (int64, error) {
	const query = `
INSERT INTO consultations (date, professional_id, specialty, notes)
VALUES ($1, $2, $3, $4)
RETURNING id`

	var id int64
	err := r.DB.QueryRowContext(ctx, query, c.Date, c.ProfessionalID, c.Specialty, c.Notes).Scan(&id)
	if err != nil {
		return 0, mapFKError(err)
	}
	return id, nil
}

// Update applies the full field set to an existing consultation.
func (r *PGRepo) Update(ctx context.Context, c Consultation) error {
	const query = `
UPDATE consultations
SET date = $1, professional_id = $2, specialty = $3, notes = $4
WHERE id = $5`

	res, err := r.DB.ExecContext(ctx, query, c.Date, c.ProfessionalID, c.Specialty, c.Notes, c.ID)
	if err != nil {
		return mapFKError(err)
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

// Delete removes a consultation. Owned file records go with it via the
// schema's cascade.
func (r *PGRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM consultations WHERE id = $1`, id)
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

// CountByProfessional returns the number of consultations referencing a
// professional.
func (r *PGRepo) CountByProfessional(ctx context.Context, professionalID int64) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT count(*) FROM consultations WHERE professional_id = $1`, professionalID).Scan(&n)
	return n, err
}

// Count returns the total number of consultations.
func (r *PGRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT count(*) FROM consultations`).Scan(&n)
	return n, err
}

// mapFKError maps a professional_id foreign-key violation to
// ErrProfessionalNotFound. The service checks existence up front; this is
// the backstop for races.
func mapFKError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return ErrProfessionalNotFound
	}
	return err
}

var _ Repo = (*PGRepo)(nil)
