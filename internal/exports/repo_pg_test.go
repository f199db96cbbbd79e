package exports

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"cvbuilder-backend/docgen/model"
)

func TestPGRepoAppendSelectsTableByKind(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	mock.ExpectExec("INSERT INTO resume_exports").
		WithArgs("rec-1", testUserID, testResumeID, "pdf", "aether", now).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO cover_letter_exports").
		WithArgs("rec-2", testUserID, testLetterID, "docx", "classic", now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Append(context.Background(), ExportRecord{
		ID: "rec-1", UserID: testUserID, DocumentID: testResumeID,
		DocumentKind: model.KindResume, TemplateID: "aether", ExportFormat: "pdf", CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("Append resume: %v", err)
	}

	err = repo.Append(context.Background(), ExportRecord{
		ID: "rec-2", UserID: testUserID, DocumentID: testLetterID,
		DocumentKind: model.KindCoverLetter, TemplateID: "classic", ExportFormat: "docx", CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("Append cover letter: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoAppendRejectsUnknownKind(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	err = repo.Append(context.Background(), ExportRecord{ID: "rec-1", DocumentKind: "portfolio"})
	if err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestPGRepoListByUserMergesBothTables(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "user_id", "document_id", "document_kind", "export_format", "template", "created_at"}).
		AddRow("rec-2", testUserID, testLetterID, "cover_letter", "docx", "classic", now).
		AddRow("rec-1", testUserID, testResumeID, "resume", "pdf", "aether", now.Add(-time.Minute))

	mock.ExpectQuery("UNION ALL").
		WithArgs(testUserID, 20, 0).
		WillReturnRows(rows)

	records, err := repo.ListByUser(context.Background(), testUserID, "", 0, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "rec-2" || records[0].DocumentKind != model.KindCoverLetter {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
	if records[1].ID != "rec-1" || records[1].DocumentKind != model.KindResume {
		t.Fatalf("unexpected second record: %+v", records[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByUserKindFilterQueriesOneTable(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "user_id", "document_id", "document_kind", "export_format", "template", "created_at"}).
		AddRow("rec-1", testUserID, testResumeID, "resume", "pdf", "aether", now)

	mock.ExpectQuery("FROM resume_exports").
		WithArgs(testUserID, 10, 0).
		WillReturnRows(rows)

	records, err := repo.ListByUser(context.Background(), testUserID, model.KindResume, 10, 0)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(records) != 1 || records[0].TemplateID != "aether" {
		t.Fatalf("unexpected records: %+v", records)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
