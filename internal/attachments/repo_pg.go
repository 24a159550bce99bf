package attachments

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const fileColumns = `id, consultation_id, filename, original_filename, file_type, description, uploaded_at`

// Create inserts a new file record and returns its id.
func (r *PGRepo) Create(ctx context.Context, f File) (int64, error) {
	const query = `
INSERT INTO consultation_files (consultation_id, filename, original_filename, file_type, description)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

	var id int64
	err := r.DB.QueryRowContext(ctx, query, f.ConsultationID, f.Filename, f.OriginalFilename, f.FileType, f.Description).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID fetches a file record by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (File, error) {
	const query = `
SELECT ` + fileColumns + `
FROM consultation_files
WHERE id = $1`

	var f File
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&f.ID, &f.ConsultationID, &f.Filename, &f.OriginalFilename, &f.FileType, &f.Description, &f.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return File{}, ErrNotFound
		}
		return File{}, err
	}
	return f, nil
}

// ListByConsultation returns a consultation's files in insertion order.
func (r *PGRepo) ListByConsultation(ctx context.Context, consultationID int64) ([]File, error) {
	const query = `
SELECT ` + fileColumns + `
FROM consultation_files
WHERE consultation_id = $1
ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query, consultationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []File
	for rows.Next() {
		var f File
		if err := rows.Scan(&f.ID, &f.ConsultationID, &f.Filename, &f.OriginalFilename, &f.FileType, &f.Description, &f.UploadedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// UpdateDescription replaces a file's description.
func (r *PGRepo) UpdateDescription(ctx context.Context, id int64, description string) error {
	const query = `UPDATE consultation_files SET description = $1 WHERE id = $2`

	res, err := r.DB.ExecContext(ctx, query, description, id)
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

// Delete removes a file record by id.
func (r *PGRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM consultation_files WHERE id = $1`, id)
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

// DeleteByConsultation removes all file records owned by a consultation.
func (r *PGRepo) DeleteByConsultation(ctx context.Context, consultationID int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM consultation_files WHERE consultation_id = $1`, consultationID)
	return err
}

// CountByConsultation returns the number of files owned by a consultation.
func (r *PGRepo) CountByConsultation(ctx context.Context, consultationID int64) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT count(*) FROM consultation_files WHERE consultation_id = $1`, consultationID).Scan(&n)
	return n, err
}

// Count returns the total number of file records.
func (r *PGRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT count(*) FROM consultation_files`).Scan(&n)
	return n, err
}

var _ Repo = (*PGRepo)(nil)
