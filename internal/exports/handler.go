package exports

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cvbuilder-backend/docgen/model"
	"cvbuilder-backend/internal/documents"
	"cvbuilder-backend/internal/shared/server/middleware"
	"cvbuilder-backend/internal/shared/server/respond"
)

// warningHeader flags an export whose history append failed.
const warningHeader = "X-Export-Warning"

// Handler exposes the export endpoint and export history.
type Handler struct {
	Service *Service
}

// RegisterRoutes mounts export routes on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/exports", h.export)
	rg.GET("/exports", h.history)
}

func (h *Handler) export(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "documentKind, documentId, templateId and format are required", nil)
		return
	}

	c.Set("documentId", req.DocumentID)
	c.Set("templateId", req.TemplateID)
	c.Set("exportFormat", req.Format)

	artifact, err := h.Service.Export(c.Request.Context(), Request{
		UserID:       userID,
		DocumentKind: model.Kind(req.DocumentKind),
		DocumentID:   req.DocumentID,
		TemplateID:   req.TemplateID,
		Format:       req.Format,
	})
	if err != nil {
		writeExportError(c, err)
		return
	}

	if artifact.Warning != "" {
		c.Header(warningHeader, artifact.Warning)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.FileName))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

func (h *Handler) history(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	records, err := h.Service.History(c.Request.Context(), userID, model.Kind(c.Query("kind")), limit, offset)
	if err != nil {
		writeExportError(c, err)
		return
	}

	out := historyResponse{Exports: make([]exportRecordResponse, 0, len(records))}
	for _, rec := range records {
		out.Exports = append(out.Exports, toExportRecordResponse(rec))
	}
	respond.OK(c, out)
}

func writeExportError(c *gin.Context, err error) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		respond.Error(c, http.StatusBadRequest, "validation_failed", "document content is incomplete", verr.Violations)
	case errors.Is(err, documents.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
	case errors.Is(err, ErrTemplateNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "template not found", nil)
	case errors.Is(err, ErrKindNotSupported), errors.Is(err, ErrFormatNotSupported):
		respond.Error(c, http.StatusBadRequest, "unsupported_combination", err.Error(), nil)
	case errors.Is(err, ErrInvalidRequest):
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid export request", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "export failed", nil)
	}
}
