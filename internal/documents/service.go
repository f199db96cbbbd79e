package documents

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"cvbuilder-backend/docgen/catalog"
	"cvbuilder-backend/internal/shared/util"
)

const defaultCoverLetterTemplate = "classic"

// Service contains business logic for stored documents. Content is kept as
// raw JSON here; structural validation happens in the export pipeline.
type Service struct {
	Repo Repo
}

// SaveResume stores or replaces the user's current resume data.
func (s *Service) SaveResume(ctx context.Context, userID string, content json.RawMessage) (Resume, error) {
	if userID == "" || len(content) == 0 || !json.Valid(content) {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.UpsertResume(ctx, Resume{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   content,
		UpdatedAt: time.Now().UTC(),
	})
}

// Resume returns the user's current resume.
func (s *Service) Resume(ctx context.Context, userID string) (Resume, error) {
	if userID == "" {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.GetResume(ctx, userID)
}

// CreateCoverLetter stores a new cover letter with a derived slug.
func (s *Service) CreateCoverLetter(ctx context.Context, userID, name, templateID string, content json.RawMessage) (CoverLetter, error) {
	if userID == "" || len(content) == 0 || !json.Valid(content) {
		return CoverLetter{}, ErrInvalidInput
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Untitled cover letter"
	}
	templateID, err := resolveTemplate(templateID)
	if err != nil {
		return CoverLetter{}, err
	}

	letter := CoverLetter{
		ID:         uuid.NewString(),
		UserID:     userID,
		Content:    content,
		TemplateID: templateID,
		Name:       name,
		Slug:       util.Slugify(name),
		CreatedAt:  time.Now().UTC(),
	}
	letter.UpdatedAt = letter.CreatedAt

	if err := s.Repo.CreateCoverLetter(ctx, letter); err != nil {
		return CoverLetter{}, err
	}
	return letter, nil
}

// CoverLetter returns a live cover letter by id.
func (s *Service) CoverLetter(ctx context.Context, userID, letterID string) (CoverLetter, error) {
	if userID == "" || letterID == "" {
		return CoverLetter{}, ErrInvalidInput
	}
	return s.Repo.GetCoverLetterByID(ctx, userID, letterID)
}

// ListCoverLetters returns live cover letters newest-first.
func (s *Service) ListCoverLetters(ctx context.Context, userID string, limit, offset int) ([]CoverLetter, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListCoverLetters(ctx, userID, limit, offset)
}

// UpdateCoverLetter replaces a cover letter's content and metadata.
func (s *Service) UpdateCoverLetter(ctx context.Context, userID, letterID, name, templateID string, content json.RawMessage) (CoverLetter, error) {
	if userID == "" || letterID == "" || len(content) == 0 || !json.Valid(content) {
		return CoverLetter{}, ErrInvalidInput
	}

	existing, err := s.Repo.GetCoverLetterByID(ctx, userID, letterID)
	if err != nil {
		return CoverLetter{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = existing.Name
	}
	if strings.TrimSpace(templateID) == "" {
		templateID = existing.TemplateID
	}
	templateID, err = resolveTemplate(templateID)
	if err != nil {
		return CoverLetter{}, err
	}

	existing.Content = content
	existing.Name = name
	existing.Slug = util.Slugify(name)
	existing.TemplateID = templateID
	existing.UpdatedAt = time.Now().UTC()

	return s.Repo.UpdateCoverLetter(ctx, existing)
}

// DeleteCoverLetter soft-deletes a cover letter. The row is retained so
// export history keeps its advisory reference.
func (s *Service) DeleteCoverLetter(ctx context.Context, userID, letterID string) error {
	if userID == "" || letterID == "" {
		return ErrInvalidInput
	}
	return s.Repo.SoftDeleteCoverLetter(ctx, userID, letterID, time.Now().UTC())
}

func resolveTemplate(templateID string) (string, error) {
	templateID = strings.TrimSpace(templateID)
	if templateID == "" {
		return defaultCoverLetterTemplate, nil
	}
	if _, err := catalog.Lookup(templateID); err != nil {
		return "", ErrInvalidInput
	}
	return templateID, nil
}
