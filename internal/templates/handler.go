package templates

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cvbuilder-backend/docgen/catalog"
	"cvbuilder-backend/docgen/model"
	"cvbuilder-backend/internal/shared/server/respond"
)

// Handler exposes the read-only template catalog.
type Handler struct{}

// RegisterRoutes mounts template routes on the given group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", h.list)
}

func (h *Handler) list(c *gin.Context) {
	kind := model.Kind(c.Query("kind"))

	var tpls []catalog.Template
	switch kind {
	case "":
		tpls = catalog.List()
	case model.KindResume, model.KindCoverLetter:
		tpls = catalog.ListFor(kind)
	default:
		respond.Error(c, http.StatusBadRequest, "invalid_request", "unknown document kind", nil)
		return
	}

	out := listResponse{Templates: make([]templateResponse, 0, len(tpls))}
	for _, tpl := range tpls {
		out.Templates = append(out.Templates, toTemplateResponse(tpl))
	}
	respond.OK(c, out)
}
