package http

import (
	"encoding/json"
	"net/http"

	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/internal/utils"
	"github.com/gae-jp/portfolio-api/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, errInvalidJSON(err))
		return
	}

	user, err := h.services.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user successfully logged in")

	_, cookie, err := h.services.AuthService.CreateSession(ctx, user.ID)
	if err != nil {
		log.Err(err).Msg("session creation failed")
		h.writeError(w, r, err)
		return
	}

	http.SetCookie(w, cookie.HTTPCookie())
	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	session, ok := utils.GetSessionFromContext(ctx)
	if ok {
		if err := h.services.AuthService.InvalidateSession(ctx, session.ID); err != nil {
			log.Err(err).Msg("session invalidation failed")
			h.writeError(w, r, err)
			return
		}
	}

	http.SetCookie(w, h.services.AuthService.BlankSessionCookie().HTTPCookie())
	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
