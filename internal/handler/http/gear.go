package http

import (
	"encoding/json"
	"net/http"

	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/internal/utils"
	"github.com/gae-jp/portfolio-api/models"
)

func (h *Handler) listGear(w http.ResponseWriter, r *http.Request) {
	gear, err := h.services.ContentService.ListGear(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, gear, http.StatusOK)
}

func (h *Handler) createGearItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.GearCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON(err))
		return
	}

	if err := h.services.ContentService.CreateGearItem(ctx, req); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) deleteGearItem(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.ContentService.DeleteGearItem(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
