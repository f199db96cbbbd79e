package exports

import "time"

type exportRequest struct {
	DocumentKind string `json:"documentKind" binding:"required"`
	DocumentID   string `json:"documentId" binding:"required"`
	TemplateID   string `json:"templateId" binding:"required"`
	Format       string `json:"format" binding:"required"`
}

type exportRecordResponse struct {
	ID           string `json:"id"`
	DocumentID   string `json:"documentId"`
	DocumentKind string `json:"documentKind"`
	TemplateID   string `json:"templateId"`
	Format       string `json:"format"`
	CreatedAt    string `json:"createdAt"`
}

type historyResponse struct {
	Exports []exportRecordResponse `json:"exports"`
}

func toExportRecordResponse(rec ExportRecord) exportRecordResponse {
	return exportRecordResponse{
		ID:           rec.ID,
		DocumentID:   rec.DocumentID,
		DocumentKind: string(rec.DocumentKind),
		TemplateID:   rec.TemplateID,
		Format:       rec.ExportFormat,
		CreatedAt:    rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}
