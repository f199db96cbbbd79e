package documents

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cvbuilder-backend/internal/shared/server/middleware"
	"cvbuilder-backend/internal/shared/server/respond"
)

// Handler exposes resume and cover letter endpoints.
type Handler struct {
	Service *Service
}

// RegisterRoutes mounts document routes on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/resume", h.saveResume)
	rg.GET("/resume", h.getResume)

	rg.POST("/cover-letters", h.createCoverLetter)
	rg.GET("/cover-letters", h.listCoverLetters)
	rg.GET("/cover-letters/:id", h.getCoverLetter)
	rg.PUT("/cover-letters/:id", h.updateCoverLetter)
	rg.DELETE("/cover-letters/:id", h.deleteCoverLetter)
}

func (h *Handler) saveResume(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req saveResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "content is required", nil)
		return
	}

	resume, err := h.Service.SaveResume(c.Request.Context(), userID, req.Content)
	if err != nil {
		writeDocumentError(c, err)
		return
	}
	respond.OK(c, toResumeResponse(resume))
}

func (h *Handler) getResume(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	resume, err := h.Service.Resume(c.Request.Context(), userID)
	if err != nil {
		writeDocumentError(c, err)
		return
	}
	respond.OK(c, toResumeResponse(resume))
}

func (h *Handler) createCoverLetter(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req coverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "content is required", nil)
		return
	}

	letter, err := h.Service.CreateCoverLetter(c.Request.Context(), userID, req.Name, req.TemplateID, req.Content)
	if err != nil {
		writeDocumentError(c, err)
		return
	}
	respond.Created(c, toCoverLetterResponse(letter))
}

func (h *Handler) listCoverLetters(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	letters, err := h.Service.ListCoverLetters(c.Request.Context(), userID, limit, offset)
	if err != nil {
		writeDocumentError(c, err)
		return
	}

	out := coverLetterListResponse{CoverLetters: make([]coverLetterResponse, 0, len(letters))}
	for _, letter := range letters {
		out.CoverLetters = append(out.CoverLetters, toCoverLetterResponse(letter))
	}
	respond.OK(c, out)
}

func (h *Handler) getCoverLetter(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	letter, err := h.Service.CoverLetter(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeDocumentError(c, err)
		return
	}
	respond.OK(c, toCoverLetterResponse(letter))
}

func (h *Handler) updateCoverLetter(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req coverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "content is required", nil)
		return
	}

	letter, err := h.Service.UpdateCoverLetter(c.Request.Context(), userID, c.Param("id"), req.Name, req.TemplateID, req.Content)
	if err != nil {
		writeDocumentError(c, err)
		return
	}
	respond.OK(c, toCoverLetterResponse(letter))
}

func (h *Handler) deleteCoverLetter(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Service.DeleteCoverLetter(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeDocumentError(c, err)
		return
	}
	respond.NoContent(c)
}

func writeDocumentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid document payload", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "something went wrong", nil)
	}
}
