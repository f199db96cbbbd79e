package documents

import "encoding/json"

type saveResumeRequest struct {
	Content json.RawMessage `json:"content" binding:"required"`
}

type resumeResponse struct {
	ID        string          `json:"id"`
	Content   json.RawMessage `json:"content"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`
}

type coverLetterRequest struct {
	Name       string          `json:"name"`
	TemplateID string          `json:"templateId"`
	Content    json.RawMessage `json:"content" binding:"required"`
}

type coverLetterResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Slug       string          `json:"slug"`
	TemplateID string          `json:"templateId"`
	Content    json.RawMessage `json:"content"`
	CreatedAt  string          `json:"createdAt"`
	UpdatedAt  string          `json:"updatedAt"`
}

type coverLetterListResponse struct {
	CoverLetters []coverLetterResponse `json:"coverLetters"`
}

func toResumeResponse(r Resume) resumeResponse {
	return resumeResponse{
		ID:        r.ID,
		Content:   r.Content,
		CreatedAt: r.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt: r.UpdatedAt.UTC().Format(timeLayout),
	}
}

func toCoverLetterResponse(l CoverLetter) coverLetterResponse {
	return coverLetterResponse{
		ID:         l.ID,
		Name:       l.Name,
		Slug:       l.Slug,
		TemplateID: l.TemplateID,
		Content:    l.Content,
		CreatedAt:  l.CreatedAt.UTC().Format(timeLayout),
		UpdatedAt:  l.UpdatedAt.UTC().Format(timeLayout),
	}
}

const timeLayout = "2006-01-02T15:04:05Z07:00"
