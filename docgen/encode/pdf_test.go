package encode

import (
	"bytes"
	"io"
	"strings"
	"testing"

	ledpdf "github.com/ledongthuc/pdf"

	"cvbuilder-backend/docgen/catalog"
	"cvbuilder-backend/docgen/model"
	"cvbuilder-backend/docgen/render"
)

func renderedDoc(t *testing.T, templateID string, content model.NormalizedContent) *render.RenderedDocument {
	t.Helper()
	tpl, err := catalog.Lookup(templateID)
	if err != nil {
		t.Fatalf("Lookup(%s): %v", templateID, err)
	}
	doc, err := render.Render(content, tpl)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return doc
}

func resumeContent() model.NormalizedContent {
	return model.NormalizedContent{
		Kind: model.KindResume,
		Resume: &model.ResumeContent{
			Header:  model.ResumeHeader{Name: "Alice Example", Title: "Engineer", Email: "a@x.com", Phone: "555-0100"},
			Summary: "Backend engineer.",
			Skills:  []string{"Go", "Postgres"},
			Experience: []model.ResumeExperience{
				{Company: "Acme", Role: "Engineer", Start: "2019", Highlights: []string{"Shipped the export pipeline"}},
			},
			Education: []model.ResumeEducation{
				{Institution: "State University", Degree: "BSc", Field: "CS"},
			},
		},
	}
}

func coverLetterContent() model.NormalizedContent {
	return model.NormalizedContent{
		Kind: model.KindCoverLetter,
		CoverLetter: &model.CoverLetterContent{
			Sender:    model.CoverLetterSender{Name: "Alice", Email: "a@x.com", Phone: "555-0100", JobTitle: "Engineer"},
			Recipient: model.CoverLetterRecipient{Name: "Bob", Title: "Hiring Manager", Company: "Acme"},
			Content:   model.CoverLetterBody{Introduction: "I am writing to apply.", Body: "I built the export pipeline.", Closing: "Sincerely,"},
		},
	}
}

func TestPDFEncodeProducesReadablePDF(t *testing.T) {
	doc := renderedDoc(t, "aether", resumeContent())

	payload, err := PDFEncoder{}.Encode(doc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(payload) == 0 {
		t.Fatal("expected non-empty artifact")
	}
	if !bytes.HasPrefix(payload, []byte("%PDF-")) {
		t.Fatal("artifact is not a PDF")
	}

	reader, err := ledpdf.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		t.Fatalf("parse encoded PDF: %v", err)
	}
	if reader.NumPage() < 1 {
		t.Fatalf("expected at least one page, got %d", reader.NumPage())
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		t.Fatalf("extract text: %v", err)
	}
	var text bytes.Buffer
	if _, err := io.Copy(&text, plain); err != nil {
		t.Fatalf("read text: %v", err)
	}
	if !strings.Contains(text.String(), "Alice") {
		t.Fatalf("extracted text missing sender name: %q", text.String())
	}
}

func TestPDFEncodeCoverLetterSingleColumn(t *testing.T) {
	doc := renderedDoc(t, "classic", coverLetterContent())

	payload, err := PDFEncoder{}.Encode(doc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	reader, err := ledpdf.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		t.Fatalf("parse encoded PDF: %v", err)
	}
	if reader.NumPage() != 1 {
		t.Fatalf("short letter should fit one page, got %d", reader.NumPage())
	}
}

func TestPDFEncoderIsStateless(t *testing.T) {
	doc := renderedDoc(t, "aether", resumeContent())

	first, err := PDFEncoder{}.Encode(doc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	second, err := PDFEncoder{}.Encode(doc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	firstReader, err := ledpdf.NewReader(bytes.NewReader(first), int64(len(first)))
	if err != nil {
		t.Fatalf("parse first: %v", err)
	}
	secondReader, err := ledpdf.NewReader(bytes.NewReader(second), int64(len(second)))
	if err != nil {
		t.Fatalf("parse second: %v", err)
	}
	if firstReader.NumPage() != secondReader.NumPage() {
		t.Fatal("repeated encodes diverged structurally")
	}
}

func TestForFormat(t *testing.T) {
	for _, format := range []string{catalog.FormatPDF, catalog.FormatDOCX} {
		enc, err := ForFormat(format)
		if err != nil {
			t.Fatalf("ForFormat(%s): %v", format, err)
		}
		if enc.Format() != format {
			t.Fatalf("encoder format mismatch: %s", enc.Format())
		}
		if enc.ContentType() == "" || enc.Extension() == "" {
			t.Fatalf("encoder %s missing metadata", format)
		}
	}
	if _, err := ForFormat("odt"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
