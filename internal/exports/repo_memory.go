package exports

import (
	"context"
	"sort"
	"sync"

	"cvbuilder-backend/docgen/model"
)

// MemoryRepo is an in-memory export ledger for dev and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	records []ExportRecord
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Append stores one ledger record.
func (r *MemoryRepo) Append(ctx context.Context, record ExportRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

// ListByUser returns records newest-first, optionally filtered by kind.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, kind model.Kind, limit, offset int) ([]ExportRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	r.mu.RLock()
	var matched []ExportRecord
	for _, rec := range r.records {
		if rec.UserID != userID {
			continue
		}
		if kind != "" && rec.DocumentKind != kind {
			continue
		}
		matched = append(matched, rec)
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if offset >= len(matched) {
		return []ExportRecord{}, nil
	}
	end := len(matched)
	if offset+limit < end {
		end = offset + limit
	}
	return matched[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
