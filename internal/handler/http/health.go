package http

import (
	"net/http"

	"github.com/gae-jp/portfolio-api/internal/utils"
	"github.com/gae-jp/portfolio-api/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
