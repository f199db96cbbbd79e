package exports

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cvbuilder-backend/docgen/model"
	"cvbuilder-backend/internal/documents"
)

const (
	testUserID   = "user-123"
	otherUserID  = "user-456"
	testResumeID = "11111111-1111-1111-1111-111111111111"
	testLetterID = "22222222-2222-2222-2222-222222222222"
)

func validResumeJSON() json.RawMessage {
	return json.RawMessage(`{
		"header": {"name": "Alice Doe", "email": "alice@example.com"},
		"summary": "Engineer.",
		"skills": ["Go"],
		"experience": [{"company": "Acme", "role": "Engineer", "start": "2020", "end": "2024"}]
	}`)
}

func validCoverLetterJSON() json.RawMessage {
	return json.RawMessage(`{
		"sender": {"name": "Alice Doe", "email": "alice@example.com", "phone": "+1-555-0100"},
		"recipient": {"name": "Bob Hiring"},
		"content": {"introduction": "Hello.", "body": "I would like the job.", "closing": "Thanks."}
	}`)
}

func seedDocuments(t *testing.T) *documents.MemoryRepo {
	t.Helper()
	repo := documents.NewMemoryRepo()
	_, err := repo.UpsertResume(context.Background(), documents.Resume{
		ID:        testResumeID,
		UserID:    testUserID,
		Content:   validResumeJSON(),
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed resume: %v", err)
	}
	err = repo.CreateCoverLetter(context.Background(), documents.CoverLetter{
		ID:         testLetterID,
		UserID:     testUserID,
		Content:    validCoverLetterJSON(),
		TemplateID: "classic",
		Name:       "Northwind Application",
		Slug:       "northwind-application",
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed cover letter: %v", err)
	}
	return repo
}

func TestExportResumePDFAppendsLedgerRecord(t *testing.T) {
	ledger := NewMemoryRepo()
	svc := &Service{Documents: seedDocuments(t), Ledger: ledger}

	artifact, err := svc.Export(context.Background(), Request{
		UserID:       testUserID,
		DocumentKind: model.KindResume,
		DocumentID:   testResumeID,
		TemplateID:   "aether",
		Format:       "pdf",
	})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	if !bytes.HasPrefix(artifact.Data, []byte("%PDF-")) {
		t.Fatalf("expected PDF payload, got %d bytes without %%PDF- prefix", len(artifact.Data))
	}
	if artifact.ContentType != "application/pdf" {
		t.Fatalf("unexpected content type %q", artifact.ContentType)
	}
	if artifact.Warning != "" {
		t.Fatalf("unexpected warning %q", artifact.Warning)
	}

	records, err := ledger.ListByUser(context.Background(), testUserID, "", 10, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 ledger record, got %d", len(records))
	}
	rec := records[0]
	if rec.DocumentID != testResumeID || rec.DocumentKind != model.KindResume ||
		rec.TemplateID != "aether" || rec.ExportFormat != "pdf" {
		t.Fatalf("unexpected ledger record: %+v", rec)
	}
}

func TestExportFileNameCarriesSlugTemplateAndDate(t *testing.T) {
	svc := &Service{Documents: seedDocuments(t), Ledger: NewMemoryRepo()}

	artifact, err := svc.Export(context.Background(), Request{
		UserID:       testUserID,
		DocumentKind: model.KindCoverLetter,
		DocumentID:   testLetterID,
		TemplateID:   "classic",
		Format:       "docx",
	})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	want := "northwind-application-classic-" + artifact.Record.CreatedAt.Format("2006-01-02") + ".docx"
	if artifact.FileName != want {
		t.Fatalf("file name = %q, want %q", artifact.FileName, want)
	}
}

func TestExportValidationFailureListsEveryFieldAndSkipsLedger(t *testing.T) {
	docRepo := documents.NewMemoryRepo()
	err := docRepo.CreateCoverLetter(context.Background(), documents.CoverLetter{
		ID:      testLetterID,
		UserID:  testUserID,
		Content: json.RawMessage(`{"sender": {"name": "Alice Doe", "email": "alice@example.com"}, "recipient": {}, "content": {}}`),
		Name:    "Broken",
		Slug:    "broken",
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	ledger := NewMemoryRepo()
	svc := &Service{Documents: docRepo, Ledger: ledger}

	_, err = svc.Export(context.Background(), Request{
		UserID:       testUserID,
		DocumentKind: model.KindCoverLetter,
		DocumentID:   testLetterID,
		TemplateID:   "classic",
		Format:       "pdf",
	})

	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"sender.phone", "recipient.name", "content.body"} {
		if !verr.Has(field) {
			t.Fatalf("expected violation for %s, got %v", field, verr.Fields())
		}
	}

	records, _ := ledger.ListByUser(context.Background(), testUserID, "", 10, 0)
	if len(records) != 0 {
		t.Fatalf("validation failure must not reach the ledger, got %d records", len(records))
	}
}

func TestExportUnknownTemplate(t *testing.T) {
	ledger := NewMemoryRepo()
	svc := &Service{Documents: seedDocuments(t), Ledger: ledger}

	_, err := svc.Export(context.Background(), Request{
		UserID:       testUserID,
		DocumentKind: model.KindResume,
		DocumentID:   testResumeID,
		TemplateID:   "nonexistent",
		Format:       "pdf",
	})
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}

	records, _ := ledger.ListByUser(context.Background(), testUserID, "", 10, 0)
	if len(records) != 0 {
		t.Fatalf("failed export must not reach the ledger")
	}
}

func TestExportTemplateKindMismatch(t *testing.T) {
	svc := &Service{Documents: seedDocuments(t), Ledger: NewMemoryRepo()}

	// compact is resume-only.
	_, err := svc.Export(context.Background(), Request{
		UserID:       testUserID,
		DocumentKind: model.KindCoverLetter,
		DocumentID:   testLetterID,
		TemplateID:   "compact",
		Format:       "pdf",
	})
	if !errors.Is(err, ErrKindNotSupported) {
		t.Fatalf("expected ErrKindNotSupported, got %v", err)
	}
}

func TestExportForeignDocumentLooksMissing(t *testing.T) {
	svc := &Service{Documents: seedDocuments(t), Ledger: NewMemoryRepo()}

	_, err := svc.Export(context.Background(), Request{
		UserID:       otherUserID,
		DocumentKind: model.KindResume,
		DocumentID:   testResumeID,
		TemplateID:   "aether",
		Format:       "pdf",
	})
	if !errors.Is(err, documents.ErrNotFound) {
		t.Fatalf("foreign document must surface as not found, got %v", err)
	}
}

type failingLedger struct {
	attempts int
}

func (f *failingLedger) Append(ctx context.Context, record ExportRecord) error {
	f.attempts++
	return errors.New("ledger unavailable")
}

func (f *failingLedger) ListByUser(ctx context.Context, userID string, kind model.Kind, limit, offset int) ([]ExportRecord, error) {
	return nil, nil
}

func TestExportLedgerFailureDegradesToWarning(t *testing.T) {
	ledger := &failingLedger{}
	svc := &Service{Documents: seedDocuments(t), Ledger: ledger}

	artifact, err := svc.Export(context.Background(), Request{
		UserID:       testUserID,
		DocumentKind: model.KindResume,
		DocumentID:   testResumeID,
		TemplateID:   "classic",
		Format:       "pdf",
	})
	if err != nil {
		t.Fatalf("artifact must still be produced, got %v", err)
	}
	if artifact.Warning != "history-not-recorded" {
		t.Fatalf("warning = %q", artifact.Warning)
	}
	if len(artifact.Data) == 0 {
		t.Fatalf("expected artifact bytes")
	}
	if ledger.attempts != storageAttempts {
		t.Fatalf("append attempts = %d, want %d", ledger.attempts, storageAttempts)
	}
}

// flakyDocuments fails each resume load a fixed number of times before
// delegating to the wrapped repo, mimicking a dropped connection.
type flakyDocuments struct {
	*documents.MemoryRepo
	failuresLeft int
	resumeCalls  int
}

func (f *flakyDocuments) GetResumeByID(ctx context.Context, userID, id string) (documents.Resume, error) {
	f.resumeCalls++
	if f.failuresLeft > 0 {
		f.failuresLeft--
		return documents.Resume{}, errors.New("read tcp: connection reset by peer")
	}
	return f.MemoryRepo.GetResumeByID(ctx, userID, id)
}

func TestExportRetriesTransientDocumentLoadFailure(t *testing.T) {
	docRepo := &flakyDocuments{MemoryRepo: seedDocuments(t), failuresLeft: 1}
	ledger := NewMemoryRepo()
	svc := &Service{Documents: docRepo, Ledger: ledger}

	artifact, err := svc.Export(context.Background(), Request{
		UserID:       testUserID,
		DocumentKind: model.KindResume,
		DocumentID:   testResumeID,
		TemplateID:   "aether",
		Format:       "pdf",
	})
	if err != nil {
		t.Fatalf("a single transient load failure must not fail the export, got %v", err)
	}
	if docRepo.resumeCalls != 2 {
		t.Fatalf("resume load calls = %d, want 2", docRepo.resumeCalls)
	}
	if len(artifact.Data) == 0 || artifact.Warning != "" {
		t.Fatalf("expected clean artifact, got %d bytes warning %q", len(artifact.Data), artifact.Warning)
	}

	records, _ := ledger.ListByUser(context.Background(), testUserID, "", 10, 0)
	if len(records) != 1 {
		t.Fatalf("expected 1 ledger record, got %d", len(records))
	}
}

func TestExportDoesNotRetryMissingDocument(t *testing.T) {
	docRepo := &flakyDocuments{MemoryRepo: documents.NewMemoryRepo()}
	svc := &Service{Documents: docRepo, Ledger: NewMemoryRepo()}

	_, err := svc.Export(context.Background(), Request{
		UserID:       testUserID,
		DocumentKind: model.KindResume,
		DocumentID:   testResumeID,
		TemplateID:   "aether",
		Format:       "pdf",
	})
	if !errors.Is(err, documents.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if docRepo.resumeCalls != 1 {
		t.Fatalf("not-found must not be retried, got %d load calls", docRepo.resumeCalls)
	}
}

func TestHistoryNewestFirstWithKindFilter(t *testing.T) {
	ledger := NewMemoryRepo()
	svc := &Service{Documents: seedDocuments(t), Ledger: ledger}

	base := time.Now().UTC()
	seed := []ExportRecord{
		{ID: "a", UserID: testUserID, DocumentID: testResumeID, DocumentKind: model.KindResume, TemplateID: "aether", ExportFormat: "pdf", CreatedAt: base.Add(-2 * time.Minute)},
		{ID: "b", UserID: testUserID, DocumentID: testLetterID, DocumentKind: model.KindCoverLetter, TemplateID: "classic", ExportFormat: "docx", CreatedAt: base.Add(-time.Minute)},
		{ID: "c", UserID: testUserID, DocumentID: testResumeID, DocumentKind: model.KindResume, TemplateID: "compact", ExportFormat: "pdf", CreatedAt: base},
	}
	for _, rec := range seed {
		if err := ledger.Append(context.Background(), rec); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	all, err := svc.History(context.Background(), testUserID, "", 10, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(all) != 3 || all[0].ID != "c" || all[1].ID != "b" || all[2].ID != "a" {
		t.Fatalf("unexpected order: %+v", all)
	}

	resumesOnly, err := svc.History(context.Background(), testUserID, model.KindResume, 10, 0)
	if err != nil {
		t.Fatalf("History resume: %v", err)
	}
	if len(resumesOnly) != 2 || resumesOnly[0].ID != "c" || resumesOnly[1].ID != "a" {
		t.Fatalf("unexpected resume history: %+v", resumesOnly)
	}
}

func TestExportRejectsUnknownFormatAndKind(t *testing.T) {
	svc := &Service{Documents: seedDocuments(t), Ledger: NewMemoryRepo()}

	_, err := svc.Export(context.Background(), Request{
		UserID:       testUserID,
		DocumentKind: model.KindResume,
		DocumentID:   testResumeID,
		TemplateID:   "aether",
		Format:       "odt",
	})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("unknown format: expected ErrInvalidRequest, got %v", err)
	}

	_, err = svc.Export(context.Background(), Request{
		UserID:       testUserID,
		DocumentKind: "portfolio",
		DocumentID:   testResumeID,
		TemplateID:   "aether",
		Format:       "pdf",
	})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("unknown kind: expected ErrInvalidRequest, got %v", err)
	}
}
