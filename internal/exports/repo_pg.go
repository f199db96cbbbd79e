package exports

import (
	"context"
	"database/sql"
	"fmt"

	"cvbuilder-backend/docgen/model"
)

// PGRepo implements the export ledger on Postgres. Resume and cover letter
// exports live in separate tables sharing one shape.
type PGRepo struct {
	DB *sql.DB
}

// Append inserts one ledger row into the table matching the document kind.
func (r *PGRepo) Append(ctx context.Context, record ExportRecord) error {
	var query string
	switch record.DocumentKind {
	case model.KindResume:
		query = `
INSERT INTO resume_exports (id, user_id, resume_id, export_format, template, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	case model.KindCoverLetter:
		query = `
INSERT INTO cover_letter_exports (id, user_id, cover_letter_id, export_format, template, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	default:
		return fmt.Errorf("append export record: %w", model.ErrUnknownKind)
	}

	_, err := r.DB.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.DocumentID,
		record.ExportFormat,
		record.TemplateID,
		record.CreatedAt,
	)
	return err
}

// ListByUser returns the user's export history newest-first, optionally
// filtered to one document kind.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, kind model.Kind, limit, offset int) ([]ExportRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	var query string
	switch kind {
	case model.KindResume:
		query = `
SELECT id, user_id, resume_id, 'resume', export_format, template, created_at
FROM resume_exports
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	case model.KindCoverLetter:
		query = `
SELECT id, user_id, cover_letter_id, 'cover_letter', export_format, template, created_at
FROM cover_letter_exports
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	case "":
		query = `
SELECT id, user_id, resume_id AS document_id, 'resume' AS document_kind, export_format, template, created_at
FROM resume_exports
WHERE user_id = $1
UNION ALL
SELECT id, user_id, cover_letter_id, 'cover_letter', export_format, template, created_at
FROM cover_letter_exports
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	default:
		return nil, fmt.Errorf("list exports: %w", model.ErrUnknownKind)
	}

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ExportRecord
	for rows.Next() {
		var rec ExportRecord
		var recKind string
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.DocumentID,
			&recKind,
			&rec.ExportFormat,
			&rec.TemplateID,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		rec.DocumentKind = model.Kind(recKind)
		out = append(out, rec)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
