package render

import (
	"errors"
	"reflect"
	"testing"

	"cvbuilder-backend/docgen/catalog"
	"cvbuilder-backend/docgen/model"
)

func sampleResume() model.NormalizedContent {
	return model.NormalizedContent{
		Kind: model.KindResume,
		Resume: &model.ResumeContent{
			Header: model.ResumeHeader{
				Name:     "Alice Example",
				Title:    "Engineer",
				Email:    "a@x.com",
				Phone:    "555-0100",
				Location: "Springfield",
				Links:    []string{"https://example.com/alice"},
			},
			Summary: "Backend engineer with ten years of experience.",
			Skills:  []string{"Go", "Postgres"},
			Experience: []model.ResumeExperience{
				{Company: "Acme", Role: "Engineer", Start: "2019", End: "", Highlights: []string{"Shipped things"}},
			},
			Education: []model.ResumeEducation{
				{Institution: "State University", Degree: "BSc", Field: "CS", Start: "2011", End: "2015"},
			},
			Projects:       []model.ResumeProject{},
			Certifications: []model.ResumeCertification{},
		},
	}
}

func sampleCoverLetter() model.NormalizedContent {
	return model.NormalizedContent{
		Kind: model.KindCoverLetter,
		CoverLetter: &model.CoverLetterContent{
			Sender:    model.CoverLetterSender{Name: "Alice", Email: "a@x.com", Phone: "555-0100", JobTitle: "Engineer"},
			Recipient: model.CoverLetterRecipient{Name: "Bob", Title: "Hiring Manager", Company: "Acme"},
			Content:   model.CoverLetterBody{Introduction: "Intro.", Body: "Body paragraph one.\n\nBody paragraph two.", Closing: ""},
		},
	}
}

func mustTemplate(t *testing.T, id string) catalog.Template {
	t.Helper()
	tpl, err := catalog.Lookup(id)
	if err != nil {
		t.Fatalf("Lookup(%s): %v", id, err)
	}
	return tpl
}

func TestRenderOneGroupPerNonEmptySection(t *testing.T) {
	tpl := mustTemplate(t, "aether")
	doc, err := Render(sampleResume(), tpl)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	// Projects and certifications are empty and must be omitted outright.
	want := []string{"header", "summary", "skills", "experience", "education"}
	if len(doc.Groups) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(doc.Groups))
	}
	for i, group := range doc.Groups {
		if group.Section != want[i] {
			t.Errorf("group %d: expected section %s, got %s", i, want[i], group.Section)
		}
		if len(group.Blocks) == 0 {
			t.Errorf("group %s has no blocks", group.Section)
		}
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	tpl := mustTemplate(t, "classic")
	first, err := Render(sampleResume(), tpl)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := Render(sampleResume(), tpl)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs must produce structurally identical output")
	}
}

func TestRenderCarriesTemplateMetadata(t *testing.T) {
	tpl := mustTemplate(t, "aether")
	doc, err := Render(sampleResume(), tpl)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if doc.TemplateID != "aether" || doc.TemplateVersion != tpl.Version {
		t.Fatalf("template identity lost: %s v%d", doc.TemplateID, doc.TemplateVersion)
	}
	if doc.Accent != tpl.Accent || doc.Layout != tpl.Layout {
		t.Fatal("decoration attributes must come from the template")
	}
}

func TestRenderCoverLetterOmitsEmptyClosing(t *testing.T) {
	tpl := mustTemplate(t, "classic")
	doc, err := Render(sampleCoverLetter(), tpl)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, group := range doc.Groups {
		if group.Section == "closing" {
			t.Fatal("empty closing must not produce a group")
		}
		if group.Section == "date" {
			t.Fatal("empty date must not produce a group")
		}
	}

	var bodyBlocks int
	for _, group := range doc.Groups {
		if group.Section == "body" {
			bodyBlocks = len(group.Blocks)
		}
	}
	if bodyBlocks != 2 {
		t.Fatalf("expected body split into 2 paragraphs, got %d blocks", bodyBlocks)
	}
}

func TestRenderSectionListRespectsTemplate(t *testing.T) {
	content := sampleResume()
	content.Resume.Projects = []model.ResumeProject{{Name: "Side Project"}}

	compact := mustTemplate(t, "compact")
	doc, err := Render(content, compact)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, group := range doc.Groups {
		if group.Section == "projects" {
			t.Fatal("compact template must not emit a projects group")
		}
	}
}

func TestRenderUnsupportedKind(t *testing.T) {
	compact := mustTemplate(t, "compact")
	_, err := Render(sampleCoverLetter(), compact)
	if !errors.Is(err, ErrUnsupportedKind) {
		t.Fatalf("expected ErrUnsupportedKind, got %v", err)
	}
}
