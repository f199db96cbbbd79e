package catalog

import (
	"errors"

	"cvbuilder-backend/docgen/model"
)

// ErrNotFound indicates an unknown template id.
var ErrNotFound = errors.New("template not found")

const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

var resumeSectionOrder = []string{
	"header", "summary", "skills", "experience", "projects", "education", "certifications",
}

var coverLetterSectionOrder = []string{
	"sender", "date", "recipient", "introduction", "body", "closing",
}

// templates holds every published template in display priority order.
// Adding a template is an administrative change made here, never at runtime.
var templates = []Template{
	{
		ID:          "aether",
		DisplayName: "Aether",
		Category:    "modern",
		Version:     2,
		Layout:      LayoutTwoColumn,
		Accent:      "#2563EB",
		Kinds:       []model.Kind{model.KindResume, model.KindCoverLetter},
		Formats:     []string{FormatPDF, FormatDOCX},
		Sections: map[model.Kind][]string{
			model.KindResume:      resumeSectionOrder,
			model.KindCoverLetter: coverLetterSectionOrder,
		},
	},
	{
		ID:          "classic",
		DisplayName: "Classic",
		Category:    "traditional",
		Version:     1,
		Layout:      LayoutSingleColumn,
		Accent:      "#111827",
		Kinds:       []model.Kind{model.KindResume, model.KindCoverLetter},
		Formats:     []string{FormatPDF, FormatDOCX},
		Sections: map[model.Kind][]string{
			model.KindResume:      resumeSectionOrder,
			model.KindCoverLetter: coverLetterSectionOrder,
		},
	},
	{
		ID:          "compact",
		DisplayName: "Compact",
		Category:    "minimal",
		Version:     1,
		Layout:      LayoutSingleColumn,
		Accent:      "#0F766E",
		Kinds:       []model.Kind{model.KindResume},
		Formats:     []string{FormatPDF, FormatDOCX},
		Sections: map[model.Kind][]string{
			// Compact drops the projects section to keep one page.
			model.KindResume: {"header", "summary", "skills", "experience", "education"},
		},
	},
}

// Lookup returns the template with the given id.
func Lookup(templateID string) (Template, error) {
	for _, t := range templates {
		if t.ID == templateID {
			return t, nil
		}
	}
	return Template{}, ErrNotFound
}

// ListFor returns templates supporting the given document kind, in curated
// display priority order.
func ListFor(kind model.Kind) []Template {
	out := make([]Template, 0, len(templates))
	for _, t := range templates {
		if t.Supports(kind) {
			out = append(out, t)
		}
	}
	return out
}

// List returns every published template in display priority order.
func List() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}
