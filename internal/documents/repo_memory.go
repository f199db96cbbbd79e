package documents

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	resumes map[string]Resume        // userID -> resume
	letters map[string][]CoverLetter // userID -> letters
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		resumes: make(map[string]Resume),
		letters: make(map[string][]CoverLetter),
	}
}

// UpsertResume stores or replaces the user's resume data.
func (r *MemoryRepo) UpsertResume(ctx context.Context, resume Resume) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.resumes[resume.UserID]; ok {
		existing.Content = resume.Content
		existing.UpdatedAt = resume.UpdatedAt
		r.resumes[resume.UserID] = existing
		return existing, nil
	}
	resume.CreatedAt = resume.UpdatedAt
	r.resumes[resume.UserID] = resume
	return resume, nil
}

// GetResume returns the user's current resume.
func (r *MemoryRepo) GetResume(ctx context.Context, userID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.resumes[userID]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}

// GetResumeByID returns a resume by id, scoped to its owner.
func (r *MemoryRepo) GetResumeByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.resumes[userID]
	if !ok || resume.ID != resumeID {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}

// CreateCoverLetter stores a new cover letter.
func (r *MemoryRepo) CreateCoverLetter(ctx context.Context, letter CoverLetter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.letters[letter.UserID] = append(r.letters[letter.UserID], letter)
	return nil
}

// GetCoverLetterByID returns a live cover letter by id, scoped to its owner.
func (r *MemoryRepo) GetCoverLetterByID(ctx context.Context, userID, letterID string) (CoverLetter, error) {
	if err := ctx.Err(); err != nil {
		return CoverLetter{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, letter := range r.letters[userID] {
		if letter.ID == letterID && letter.DeletedAt == nil {
			return letter, nil
		}
	}
	return CoverLetter{}, ErrNotFound
}

// ListCoverLetters returns live cover letters newest-first, honoring limit/offset.
func (r *MemoryRepo) ListCoverLetters(ctx context.Context, userID string, limit, offset int) ([]CoverLetter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 20
	}

	r.mu.RLock()
	var live []CoverLetter
	for _, letter := range r.letters[userID] {
		if letter.DeletedAt == nil {
			live = append(live, letter)
		}
	}
	r.mu.RUnlock()

	sort.Slice(live, func(i, j int) bool {
		return live[i].CreatedAt.After(live[j].CreatedAt)
	})

	if offset >= len(live) {
		return []CoverLetter{}, nil
	}
	end := len(live)
	if offset+limit < end {
		end = offset + limit
	}
	return live[offset:end], nil
}

// UpdateCoverLetter replaces content and metadata of a live cover letter.
func (r *MemoryRepo) UpdateCoverLetter(ctx context.Context, letter CoverLetter) (CoverLetter, error) {
	if err := ctx.Err(); err != nil {
		return CoverLetter{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	letters := r.letters[letter.UserID]
	for i := range letters {
		if letters[i].ID == letter.ID && letters[i].DeletedAt == nil {
			letters[i].Content = letter.Content
			letters[i].TemplateID = letter.TemplateID
			letters[i].Name = letter.Name
			letters[i].Slug = letter.Slug
			letters[i].UpdatedAt = letter.UpdatedAt
			r.letters[letter.UserID] = letters
			return letters[i], nil
		}
	}
	return CoverLetter{}, ErrNotFound
}

// SoftDeleteCoverLetter marks a cover letter deleted.
func (r *MemoryRepo) SoftDeleteCoverLetter(ctx context.Context, userID, letterID string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	letters := r.letters[userID]
	for i := range letters {
		if letters[i].ID == letterID && letters[i].DeletedAt == nil {
			deletedAt := at
			letters[i].DeletedAt = &deletedAt
			letters[i].UpdatedAt = at
			r.letters[userID] = letters
			return nil
		}
	}
	return ErrNotFound
}

var _ Repo = (*MemoryRepo)(nil)
