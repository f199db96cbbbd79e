package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Normalize validates raw stored content and coerces it into the canonical
// shape the rendering engine expects. It collects every violation rather than
// failing on the first, and defaults absent optional fields to explicit empty
// values so downstream stages never branch on missing keys.
func Normalize(raw json.RawMessage, kind Kind) (NormalizedContent, error) {
	switch kind {
	case KindResume:
		return normalizeResume(raw)
	case KindCoverLetter:
		return normalizeCoverLetter(raw)
	default:
		return NormalizedContent{}, ErrUnknownKind
	}
}

func normalizeResume(raw json.RawMessage) (NormalizedContent, error) {
	var content ResumeContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return NormalizedContent{}, &ValidationError{Violations: []FieldViolation{
			{Field: "content", Reason: "malformed JSON: " + err.Error()},
		}}
	}

	v := &violations{}

	content.Header.Name = strings.TrimSpace(content.Header.Name)
	content.Header.Title = strings.TrimSpace(content.Header.Title)
	content.Header.Email = strings.TrimSpace(content.Header.Email)
	content.Header.Phone = strings.TrimSpace(content.Header.Phone)
	content.Header.Location = strings.TrimSpace(content.Header.Location)
	content.Header.Links = trimAll(content.Header.Links)
	content.Summary = strings.TrimSpace(content.Summary)
	content.Skills = trimAll(content.Skills)

	v.require("header.name", content.Header.Name)
	if content.Header.Email == "" && content.Header.Phone == "" {
		v.add("header.email", "email or phone is required")
	}
	if content.Header.Email != "" && !looksLikeEmail(content.Header.Email) {
		v.add("header.email", "must be a valid email address")
	}

	for i := range content.Experience {
		exp := &content.Experience[i]
		exp.Company = strings.TrimSpace(exp.Company)
		exp.Role = strings.TrimSpace(exp.Role)
		exp.Location = strings.TrimSpace(exp.Location)
		exp.Start = strings.TrimSpace(exp.Start)
		exp.End = strings.TrimSpace(exp.End)
		exp.Highlights = trimAll(exp.Highlights)
		v.require(indexed("experience", i, "company"), exp.Company)
		v.require(indexed("experience", i, "role"), exp.Role)
	}
	for i := range content.Education {
		edu := &content.Education[i]
		edu.Institution = strings.TrimSpace(edu.Institution)
		edu.Degree = strings.TrimSpace(edu.Degree)
		edu.Field = strings.TrimSpace(edu.Field)
		edu.Start = strings.TrimSpace(edu.Start)
		edu.End = strings.TrimSpace(edu.End)
		v.require(indexed("education", i, "institution"), edu.Institution)
	}
	for i := range content.Projects {
		p := &content.Projects[i]
		p.Name = strings.TrimSpace(p.Name)
		p.Description = strings.TrimSpace(p.Description)
		p.Highlights = trimAll(p.Highlights)
		v.require(indexed("projects", i, "name"), p.Name)
	}
	for i := range content.Certifications {
		c := &content.Certifications[i]
		c.Name = strings.TrimSpace(c.Name)
		c.Issuer = strings.TrimSpace(c.Issuer)
		c.Date = strings.TrimSpace(c.Date)
		v.require(indexed("certifications", i, "name"), c.Name)
	}

	if err := v.err(); err != nil {
		return NormalizedContent{}, err
	}

	if content.Header.Links == nil {
		content.Header.Links = []string{}
	}
	if content.Skills == nil {
		content.Skills = []string{}
	}
	if content.Experience == nil {
		content.Experience = []ResumeExperience{}
	}
	if content.Education == nil {
		content.Education = []ResumeEducation{}
	}
	if content.Projects == nil {
		content.Projects = []ResumeProject{}
	}
	if content.Certifications == nil {
		content.Certifications = []ResumeCertification{}
	}
	for i := range content.Experience {
		if content.Experience[i].Highlights == nil {
			content.Experience[i].Highlights = []string{}
		}
	}
	for i := range content.Projects {
		if content.Projects[i].Highlights == nil {
			content.Projects[i].Highlights = []string{}
		}
	}

	return NormalizedContent{Kind: KindResume, Resume: &content}, nil
}

func normalizeCoverLetter(raw json.RawMessage) (NormalizedContent, error) {
	var content CoverLetterContent
	if err := json.Unmarshal(raw, &content); err != nil {
		return NormalizedContent{}, &ValidationError{Violations: []FieldViolation{
			{Field: "content", Reason: "malformed JSON: " + err.Error()},
		}}
	}

	content.Sender.Name = strings.TrimSpace(content.Sender.Name)
	content.Sender.Email = strings.TrimSpace(content.Sender.Email)
	content.Sender.Phone = strings.TrimSpace(content.Sender.Phone)
	content.Sender.Address = strings.TrimSpace(content.Sender.Address)
	content.Sender.Location = strings.TrimSpace(content.Sender.Location)
	content.Sender.JobTitle = strings.TrimSpace(content.Sender.JobTitle)
	content.Recipient.Name = strings.TrimSpace(content.Recipient.Name)
	content.Recipient.Title = strings.TrimSpace(content.Recipient.Title)
	content.Recipient.Company = strings.TrimSpace(content.Recipient.Company)
	content.Recipient.Address = strings.TrimSpace(content.Recipient.Address)
	content.Content.Introduction = strings.TrimSpace(content.Content.Introduction)
	content.Content.Body = strings.TrimSpace(content.Content.Body)
	content.Content.Closing = strings.TrimSpace(content.Content.Closing)
	content.Date = strings.TrimSpace(content.Date)

	v := &violations{}
	v.require("sender.name", content.Sender.Name)
	v.require("sender.email", content.Sender.Email)
	if content.Sender.Email != "" && !looksLikeEmail(content.Sender.Email) {
		v.add("sender.email", "must be a valid email address")
	}
	v.require("sender.phone", content.Sender.Phone)
	v.require("recipient.name", content.Recipient.Name)
	v.require("content.body", content.Content.Body)

	if err := v.err(); err != nil {
		return NormalizedContent{}, err
	}

	return NormalizedContent{Kind: KindCoverLetter, CoverLetter: &content}, nil
}

type violations struct {
	list []FieldViolation
}

func (v *violations) add(field, reason string) {
	v.list = append(v.list, FieldViolation{Field: field, Reason: reason})
}

func (v *violations) require(field, value string) {
	if value == "" {
		v.add(field, "is required")
	}
}

func (v *violations) err() error {
	if len(v.list) == 0 {
		return nil
	}
	return &ValidationError{Violations: v.list}
}

func trimAll(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t")
}

func indexed(section string, i int, field string) string {
	return fmt.Sprintf("%s[%d].%s", section, i, field)
}
