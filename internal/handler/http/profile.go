package http

import (
	"encoding/json"
	"net/http"

	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/internal/utils"
	"github.com/gae-jp/portfolio-api/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := h.services.ContentService.GetProfile(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON(err))
		return
	}

	if err := h.services.ContentService.UpdateProfile(ctx, req); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
