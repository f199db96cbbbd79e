package documents

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// UpsertResume inserts or replaces the user's current resume data.
func (r *PGRepo) UpsertResume(ctx context.Context, resume Resume) (Resume, error) {
	const query = `
INSERT INTO user_resume_data (id, user_id, resume_data, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
ON CONFLICT (user_id) DO UPDATE
SET resume_data = EXCLUDED.resume_data, updated_at = EXCLUDED.updated_at
RETURNING id, user_id, resume_data, created_at, updated_at`

	var out Resume
	err := r.DB.QueryRowContext(ctx, query, resume.ID, resume.UserID, []byte(resume.Content), resume.UpdatedAt).Scan(
		&out.ID,
		&out.UserID,
		&out.Content,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		return Resume{}, err
	}
	return out, nil
}

// GetResume returns the user's current resume.
func (r *PGRepo) GetResume(ctx context.Context, userID string) (Resume, error) {
	const query = `
SELECT id, user_id, resume_data, created_at, updated_at
FROM user_resume_data
WHERE user_id = $1
LIMIT 1`
	return r.scanResume(r.DB.QueryRowContext(ctx, query, userID))
}

// GetResumeByID fetches a resume by id, scoped to its owner.
func (r *PGRepo) GetResumeByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	const query = `
SELECT id, user_id, resume_data, created_at, updated_at
FROM user_resume_data
WHERE user_id = $1 AND id = $2
LIMIT 1`
	return r.scanResume(r.DB.QueryRowContext(ctx, query, userID, resumeID))
}

func (r *PGRepo) scanResume(row *sql.Row) (Resume, error) {
	var resume Resume
	err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.Content,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// CreateCoverLetter inserts a new cover letter.
func (r *PGRepo) CreateCoverLetter(ctx context.Context, letter CoverLetter) error {
	const query = `
INSERT INTO user_cover_letter_data (
    id, user_id, cover_letter_data, template, cover_letter_name, cover_letter_slug_name, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`
	_, err := r.DB.ExecContext(ctx, query,
		letter.ID,
		letter.UserID,
		[]byte(letter.Content),
		letter.TemplateID,
		letter.Name,
		letter.Slug,
		letter.CreatedAt,
	)
	return err
}

// GetCoverLetterByID fetches a live cover letter by id, scoped to its owner.
func (r *PGRepo) GetCoverLetterByID(ctx context.Context, userID, letterID string) (CoverLetter, error) {
	const query = `
SELECT id, user_id, cover_letter_data, template, cover_letter_name, cover_letter_slug_name, deleted_at, created_at, updated_at
FROM user_cover_letter_data
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL
LIMIT 1`
	var letter CoverLetter
	var deletedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, userID, letterID).Scan(
		&letter.ID,
		&letter.UserID,
		&letter.Content,
		&letter.TemplateID,
		&letter.Name,
		&letter.Slug,
		&deletedAt,
		&letter.CreatedAt,
		&letter.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CoverLetter{}, ErrNotFound
		}
		return CoverLetter{}, err
	}
	if deletedAt.Valid {
		letter.DeletedAt = &deletedAt.Time
	}
	return letter, nil
}

// ListCoverLetters lists live cover letters ordered newest-first.
func (r *PGRepo) ListCoverLetters(ctx context.Context, userID string, limit, offset int) ([]CoverLetter, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, user_id, cover_letter_data, template, cover_letter_name, cover_letter_slug_name, deleted_at, created_at, updated_at
FROM user_cover_letter_data
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CoverLetter
	for rows.Next() {
		var letter CoverLetter
		var deletedAt sql.NullTime
		if err := rows.Scan(
			&letter.ID,
			&letter.UserID,
			&letter.Content,
			&letter.TemplateID,
			&letter.Name,
			&letter.Slug,
			&deletedAt,
			&letter.CreatedAt,
			&letter.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if deletedAt.Valid {
			letter.DeletedAt = &deletedAt.Time
		}
		out = append(out, letter)
	}
	return out, rows.Err()
}

// UpdateCoverLetter replaces content and metadata of a live cover letter.
func (r *PGRepo) UpdateCoverLetter(ctx context.Context, letter CoverLetter) (CoverLetter, error) {
	const query = `
UPDATE user_cover_letter_data
SET cover_letter_data = $1, template = $2, cover_letter_name = $3, cover_letter_slug_name = $4, updated_at = $5
WHERE user_id = $6 AND id = $7 AND deleted_at IS NULL
RETURNING id, user_id, cover_letter_data, template, cover_letter_name, cover_letter_slug_name, deleted_at, created_at, updated_at`

	var out CoverLetter
	var deletedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query,
		[]byte(letter.Content),
		letter.TemplateID,
		letter.Name,
		letter.Slug,
		letter.UpdatedAt,
		letter.UserID,
		letter.ID,
	).Scan(
		&out.ID,
		&out.UserID,
		&out.Content,
		&out.TemplateID,
		&out.Name,
		&out.Slug,
		&deletedAt,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CoverLetter{}, ErrNotFound
		}
		return CoverLetter{}, err
	}
	if deletedAt.Valid {
		out.DeletedAt = &deletedAt.Time
	}
	return out, nil
}

// SoftDeleteCoverLetter marks a cover letter deleted without dropping the row.
func (r *PGRepo) SoftDeleteCoverLetter(ctx context.Context, userID, letterID string, at time.Time) error {
	const query = `
UPDATE user_cover_letter_data
SET deleted_at = $1, updated_at = $1
WHERE user_id = $2 AND id = $3 AND deleted_at IS NULL`
	res, err := r.DB.ExecContext(ctx, query, at, userID, letterID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
