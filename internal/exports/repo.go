package exports

import (
	"context"

	"cvbuilder-backend/docgen/model"
)

// Repo is the export ledger. Append-only: records are never updated or
// removed once written.
type Repo interface {
	Append(ctx context.Context, record ExportRecord) error

	// ListByUser returns records newest-first. An empty kind returns records
	// for every document kind.
	ListByUser(ctx context.Context, userID string, kind model.Kind, limit, offset int) ([]ExportRecord, error)
}
