package render

import (
	"errors"
	"fmt"
	"strings"

	"cvbuilder-backend/docgen/catalog"
	"cvbuilder-backend/docgen/model"
)

// ErrUnsupportedKind indicates the template's capability set does not include
// the document kind being rendered.
var ErrUnsupportedKind = errors.New("template does not support document kind")

// Render maps normalized content through a template into a RenderedDocument.
// Output is deterministic for a given (content, template version) pair: the
// engine walks the template's declared section order and emits one block
// group per non-empty section, omitting empty sections entirely.
func Render(content model.NormalizedContent, tpl catalog.Template) (*RenderedDocument, error) {
	if !tpl.Supports(content.Kind) {
		return nil, fmt.Errorf("%w: template=%s kind=%s", ErrUnsupportedKind, tpl.ID, content.Kind)
	}

	doc := &RenderedDocument{
		Kind:            content.Kind,
		TemplateID:      tpl.ID,
		TemplateVersion: tpl.Version,
		Layout:          tpl.Layout,
		Accent:          tpl.Accent,
	}

	for _, section := range tpl.SectionsFor(content.Kind) {
		var blocks []Block
		switch content.Kind {
		case model.KindResume:
			blocks = resumeSection(section, content.Resume)
		case model.KindCoverLetter:
			blocks = coverLetterSection(section, content.CoverLetter)
		}
		if len(blocks) == 0 {
			continue
		}
		doc.Groups = append(doc.Groups, BlockGroup{Section: section, Blocks: blocks})
	}

	return doc, nil
}

func resumeSection(section string, r *model.ResumeContent) []Block {
	switch section {
	case "header":
		blocks := []Block{title(r.Header.Name)}
		if r.Header.Title != "" {
			blocks = append(blocks, text(r.Header.Title))
		}
		if line := joinNonEmpty(" | ", r.Header.Email, r.Header.Phone, r.Header.Location); line != "" {
			blocks = append(blocks, small(line))
		}
		if len(r.Header.Links) > 0 {
			blocks = append(blocks, small(strings.Join(r.Header.Links, " | ")))
		}
		blocks = append(blocks, rule())
		return blocks
	case "summary":
		if r.Summary == "" {
			return nil
		}
		return []Block{heading("Summary"), text(r.Summary)}
	case "skills":
		if len(r.Skills) == 0 {
			return nil
		}
		return []Block{heading("Skills"), text(strings.Join(r.Skills, " · "))}
	case "experience":
		if len(r.Experience) == 0 {
			return nil
		}
		blocks := []Block{heading("Experience")}
		for _, exp := range r.Experience {
			blocks = append(blocks, bold(joinNonEmpty(" — ", exp.Role, exp.Company)))
			if line := joinNonEmpty(" | ", dateRange(exp.Start, exp.End), exp.Location); line != "" {
				blocks = append(blocks, small(line))
			}
			if len(exp.Highlights) > 0 {
				blocks = append(blocks, list(exp.Highlights))
			}
		}
		return blocks
	case "projects":
		if len(r.Projects) == 0 {
			return nil
		}
		blocks := []Block{heading("Projects")}
		for _, p := range r.Projects {
			blocks = append(blocks, bold(p.Name))
			if p.Description != "" {
				blocks = append(blocks, text(p.Description))
			}
			if len(p.Highlights) > 0 {
				blocks = append(blocks, list(p.Highlights))
			}
		}
		return blocks
	case "education":
		if len(r.Education) == 0 {
			return nil
		}
		blocks := []Block{heading("Education")}
		for _, edu := range r.Education {
			blocks = append(blocks, bold(joinNonEmpty(", ", edu.Degree, edu.Field)))
			if line := joinNonEmpty(" | ", edu.Institution, dateRange(edu.Start, edu.End)); line != "" {
				blocks = append(blocks, small(line))
			}
		}
		return blocks
	case "certifications":
		if len(r.Certifications) == 0 {
			return nil
		}
		items := make([]string, 0, len(r.Certifications))
		for _, c := range r.Certifications {
			item := joinNonEmpty(" — ", c.Name, c.Issuer)
			if c.Date != "" {
				item += " (" + c.Date + ")"
			}
			items = append(items, item)
		}
		return []Block{heading("Certifications"), list(items)}
	default:
		return nil
	}
}

func coverLetterSection(section string, cl *model.CoverLetterContent) []Block {
	switch section {
	case "sender":
		blocks := []Block{title(cl.Sender.Name)}
		if cl.Sender.JobTitle != "" {
			blocks = append(blocks, text(cl.Sender.JobTitle))
		}
		if line := joinNonEmpty(" | ", cl.Sender.Email, cl.Sender.Phone); line != "" {
			blocks = append(blocks, small(line))
		}
		if line := joinNonEmpty(", ", cl.Sender.Address, cl.Sender.Location); line != "" {
			blocks = append(blocks, small(line))
		}
		blocks = append(blocks, rule())
		return blocks
	case "date":
		if cl.Date == "" {
			return nil
		}
		return []Block{text(cl.Date)}
	case "recipient":
		blocks := []Block{bold(cl.Recipient.Name)}
		if line := joinNonEmpty(", ", cl.Recipient.Title, cl.Recipient.Company); line != "" {
			blocks = append(blocks, text(line))
		}
		if cl.Recipient.Address != "" {
			blocks = append(blocks, text(cl.Recipient.Address))
		}
		return blocks
	case "introduction":
		if cl.Content.Introduction == "" {
			return nil
		}
		return paragraphs(cl.Content.Introduction)
	case "body":
		return paragraphs(cl.Content.Body)
	case "closing":
		if cl.Content.Closing == "" {
			return nil
		}
		return []Block{text(cl.Content.Closing), text(cl.Sender.Name)}
	default:
		return nil
	}
}

// paragraphs splits free text on blank lines into one text block per paragraph.
func paragraphs(s string) []Block {
	var blocks []Block
	for _, para := range strings.Split(s, "\n\n") {
		if trimmed := strings.TrimSpace(para); trimmed != "" {
			blocks = append(blocks, text(trimmed))
		}
	}
	return blocks
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}

func dateRange(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start + " – Present"
	case start == "":
		return end
	default:
		return start + " – " + end
	}
}
