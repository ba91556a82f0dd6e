package http

import (
	"encoding/json"
	"net/http"

	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/internal/utils"
	"github.com/gae-jp/portfolio-api/models"
)

func (h *Handler) listTimeline(w http.ResponseWriter, r *http.Request) {
	timeline, err := h.services.ContentService.ListTimeline(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, timeline, http.StatusOK)
}

func (h *Handler) createTimelineEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.TimelineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON(err))
		return
	}

	if err := h.services.ContentService.CreateTimelineEntry(ctx, req); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) updateTimelineEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := idFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.TimelineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON(err))
		return
	}

	if err := h.services.ContentService.UpdateTimelineEntry(ctx, id, req); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) deleteTimelineEntry(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.ContentService.DeleteTimelineEntry(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
