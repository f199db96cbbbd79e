package exports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"cvbuilder-backend/docgen/catalog"
	"cvbuilder-backend/docgen/encode"
	"cvbuilder-backend/docgen/model"
	"cvbuilder-backend/docgen/render"
	"cvbuilder-backend/internal/documents"
	"cvbuilder-backend/internal/shared/metrics"
	"cvbuilder-backend/internal/shared/telemetry"
	"cvbuilder-backend/internal/shared/util"
)

// storageAttempts bounds retries on storage-crossing operations: the
// document load before the export fails, the ledger append before the
// export degrades to a warning.
const storageAttempts = 2

// Service runs the export pipeline: load, resolve, normalize, render,
// encode, record. It holds no per-export state, so concurrent exports are
// safe without coordination.
type Service struct {
	Documents documents.Repo
	Ledger    Repo
}

// Export produces an encoded artifact for the given document. The ledger
// append happens only after encoding succeeds; if the append itself fails
// the artifact is still returned, with Warning set.
func (s *Service) Export(ctx context.Context, req Request) (*Artifact, error) {
	metrics.IncExportStarted()
	start := time.Now()

	artifact, err := s.export(ctx, req)
	if err != nil {
		metrics.IncExportFailed()
		return nil, err
	}

	metrics.IncExportCompleted()
	metrics.ObserveExportDurationMs(metrics.SinceMillis(start))
	telemetry.Info("export.completed", map[string]any{
		"user_id":     req.UserID,
		"document_id": req.DocumentID,
		"kind":        string(req.DocumentKind),
		"template_id": req.TemplateID,
		"format":      req.Format,
		"bytes":       len(artifact.Data),
		"degraded":    artifact.Warning != "",
	})
	return artifact, nil
}

func (s *Service) export(ctx context.Context, req Request) (*Artifact, error) {
	if req.UserID == "" || req.DocumentID == "" || req.TemplateID == "" {
		return nil, ErrInvalidRequest
	}
	if req.DocumentKind != model.KindResume && req.DocumentKind != model.KindCoverLetter {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, model.ErrUnknownKind)
	}
	if !encode.KnownFormat(req.Format) {
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidRequest, req.Format)
	}

	raw, baseName, err := s.loadDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	tpl, err := catalog.Lookup(req.TemplateID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	if !tpl.Supports(req.DocumentKind) {
		return nil, fmt.Errorf("%w: template=%s kind=%s", ErrKindNotSupported, tpl.ID, req.DocumentKind)
	}
	if !tpl.SupportsFormat(req.Format) {
		return nil, fmt.Errorf("%w: template=%s format=%s", ErrFormatNotSupported, tpl.ID, req.Format)
	}

	content, err := model.Normalize(raw, req.DocumentKind)
	if err != nil {
		return nil, err
	}

	doc, err := render.Render(content, tpl)
	if err != nil {
		return nil, err
	}

	encoder, err := encode.ForFormat(req.Format)
	if err != nil {
		return nil, err
	}
	data, err := encoder.Encode(doc)
	if err != nil {
		return nil, err
	}

	record := ExportRecord{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		DocumentID:   req.DocumentID,
		DocumentKind: req.DocumentKind,
		TemplateID:   tpl.ID,
		ExportFormat: req.Format,
		CreatedAt:    time.Now().UTC(),
	}

	artifact := &Artifact{
		FileName:    exportFileName(baseName, tpl.ID, encoder.Extension(), record.CreatedAt),
		ContentType: encoder.ContentType(),
		Data:        data,
		Record:      record,
	}

	if err := s.appendWithRetry(ctx, record); err != nil {
		metrics.IncLedgerWriteFailure()
		telemetry.Warn("export.ledger_append_failed", map[string]any{
			"user_id":     req.UserID,
			"document_id": req.DocumentID,
			"kind":        string(req.DocumentKind),
			"error":       err.Error(),
		})
		artifact.Warning = "history-not-recorded"
	}
	return artifact, nil
}

// History returns the user's export records newest-first. Records for
// deleted documents remain listed.
func (s *Service) History(ctx context.Context, userID string, kind model.Kind, limit, offset int) ([]ExportRecord, error) {
	if userID == "" {
		return nil, ErrInvalidRequest
	}
	if kind != "" && kind != model.KindResume && kind != model.KindCoverLetter {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, model.ErrUnknownKind)
	}
	return s.Ledger.ListByUser(ctx, userID, kind, limit, offset)
}

// loadDocument fetches the source document owner-scoped and returns its raw
// content plus the base used for the download file name.
func (s *Service) loadDocument(ctx context.Context, req Request) (json.RawMessage, string, error) {
	switch req.DocumentKind {
	case model.KindResume:
		var resume documents.Resume
		err := withStorageRetry(ctx, func() error {
			var err error
			resume, err = s.Documents.GetResumeByID(ctx, req.UserID, req.DocumentID)
			return err
		})
		if err != nil {
			return nil, "", err
		}
		return resume.Content, "resume", nil
	case model.KindCoverLetter:
		var letter documents.CoverLetter
		err := withStorageRetry(ctx, func() error {
			var err error
			letter, err = s.Documents.GetCoverLetterByID(ctx, req.UserID, req.DocumentID)
			return err
		})
		if err != nil {
			return nil, "", err
		}
		base := letter.Slug
		if base == "" {
			base = "cover-letter"
		}
		return letter.Content, base, nil
	}
	return nil, "", model.ErrUnknownKind
}

func (s *Service) appendWithRetry(ctx context.Context, record ExportRecord) error {
	return withStorageRetry(ctx, func() error {
		return s.Ledger.Append(ctx, record)
	})
}

// withStorageRetry runs fn up to storageAttempts times. Sentinel outcomes
// never repeat on retry, so a not-found result and a done context return
// immediately; only transient storage errors get another attempt.
func withStorageRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < storageAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if errors.Is(err, documents.ErrNotFound) || ctx.Err() != nil {
			return err
		}
	}
	return err
}

func exportFileName(base, templateID, ext string, at time.Time) string {
	name := strings.Join([]string{base, templateID, at.Format("2006-01-02")}, "-") + "." + ext
	safe, err := util.SanitizeFileName(name)
	if err != nil {
		return "export." + ext
	}
	return safe
}
