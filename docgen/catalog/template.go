package catalog

import "cvbuilder-backend/docgen/model"

// Layout selects the column strategy a template renders with.
type Layout string

const (
	LayoutSingleColumn Layout = "single_column"
	LayoutTwoColumn    Layout = "two_column"
)

// Template is an immutable, versioned layout definition. Instances are
// published by the catalog maintainer and never mutated afterwards; a given
// (ID, Version) pair always renders identically.
type Template struct {
	ID          string
	DisplayName string
	Category    string
	Version     int
	Layout      Layout
	Accent      string // hex color applied to headings and rules
	Kinds       []model.Kind
	Formats     []string
	// Sections lists the content section keys this template displays, in
	// display order. The rendering engine walks this list and emits one
	// block group per non-empty section.
	Sections map[model.Kind][]string
}

// Supports reports whether the template can render the given document kind.
func (t Template) Supports(kind model.Kind) bool {
	for _, k := range t.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// SupportsFormat reports whether the template can be exported as format.
func (t Template) SupportsFormat(format string) bool {
	for _, f := range t.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// SectionsFor returns the ordered section keys for a document kind.
func (t Template) SectionsFor(kind model.Kind) []string {
	return t.Sections[kind]
}
