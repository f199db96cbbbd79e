package documents

import (
	"context"
	"time"
)

// Repo defines persistence operations for resume and cover letter documents.
// Every read is owner-scoped: a document owned by someone else surfaces as
// ErrNotFound, never as a distinguishable "forbidden" answer.
type Repo interface {
	UpsertResume(ctx context.Context, resume Resume) (Resume, error)
	GetResume(ctx context.Context, userID string) (Resume, error)
	GetResumeByID(ctx context.Context, userID, resumeID string) (Resume, error)

	CreateCoverLetter(ctx context.Context, letter CoverLetter) error
	GetCoverLetterByID(ctx context.Context, userID, letterID string) (CoverLetter, error)
	ListCoverLetters(ctx context.Context, userID string, limit, offset int) ([]CoverLetter, error)
	UpdateCoverLetter(ctx context.Context, letter CoverLetter) (CoverLetter, error)
	SoftDeleteCoverLetter(ctx context.Context, userID, letterID string, at time.Time) error
}
