package handler

import (
	"net/http"

	"github.com/reagent/reagent/internal/models"
)

const version = "1.0.0"

// HealthHandler handles GET /health
type HealthHandler struct {
	model string
}

func NewHealthHandler(model string) *HealthHandler {
	return &HealthHandler{model: model}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	models.WriteJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Version: version,
		Checks: map[string]string{
			"server": "ok",
			"model":  h.model,
		},
	})
}
