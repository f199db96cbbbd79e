package documents

import (
	"encoding/json"
	"time"
)

// Resume is the single current resume document a user maintains.
// Content is stored as raw JSON; it is validated at export time.
type Resume struct {
	ID        string
	UserID    string
	Content   json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CoverLetter is one of possibly many cover letters a user maintains.
// A non-nil DeletedAt hides the letter from listing and export while the
// row is retained for restore.
type CoverLetter struct {
	ID         string
	UserID     string
	Content    json.RawMessage
	TemplateID string
	Name       string
	Slug       string
	DeletedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
