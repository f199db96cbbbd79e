package exports

import (
	"time"

	"cvbuilder-backend/docgen/model"
)

// ExportRecord is one append-only ledger row. Document ids are advisory:
// the record keeps its denormalized kind/template/format even after the
// source document is deleted.
type ExportRecord struct {
	ID           string
	UserID       string
	DocumentID   string
	DocumentKind model.Kind
	TemplateID   string
	ExportFormat string
	CreatedAt    time.Time
}

// Artifact is the outcome of a successful export: the encoded bytes plus
// everything the transport layer needs to hand them to the client.
type Artifact struct {
	FileName    string
	ContentType string
	Data        []byte
	Record      ExportRecord

	// Warning is set when the artifact was produced but its ledger append
	// failed. The export still succeeds in that case.
	Warning string
}

// Request identifies what to export and how.
type Request struct {
	UserID       string
	DocumentKind model.Kind
	DocumentID   string
	TemplateID   string
	Format       string
}
