package handler

import (
	"net/http"

	"github.com/reagent/reagent/internal/models"
	"github.com/reagent/reagent/internal/tools"
)

// ToolsHandler handles GET /api/v1/tools
type ToolsHandler struct {
	registry *tools.Registry
}

func NewToolsHandler(registry *tools.Registry) *ToolsHandler {
	return &ToolsHandler{registry: registry}
}

func (h *ToolsHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	list := h.registry.List()
	infos := make([]models.ToolInfo, 0, len(list))
	for _, t := range list {
		infos = append(infos, models.ToolInfo{Name: t.Name, Description: t.Description})
	}
	models.WriteJSON(w, http.StatusOK, models.ToolsResponse{
		Status: "ok",
		Tools:  infos,
	})
}
