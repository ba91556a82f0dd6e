package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/internal/service"
	"github.com/gae-jp/portfolio-api/internal/utils"
	"github.com/gae-jp/portfolio-api/models"
)

// auth is an HTTP middleware that enforces cookie-based session
// authentication.
//
// It reads the session cookie, validates the token via
// [service.AuthService.ValidateSession], and on success stores the
// authenticated user and session in the request context under
// [utils.UserCtxKey] and [utils.SessionCtxKey] before delegating to the next
// handler. When validation reports the session as fresh (its expiry was
// pushed out), the cookie is re-emitted with the new expiry so the browser
// keeps pace with the store.
//
// Requests without a cookie, with an unknown token, or with an expired
// session are rejected with HTTP 401 Unauthorized and the uniform JSON error
// body. Validation never reveals which of the failure modes occurred.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(models.SessionCookieName)
		if err != nil {
			log.Debug().Err(ErrNoSessionCookie).Send()
			h.writeError(w, r, service.ErrUnauthorized)
			return
		}

		ctx := r.Context()
		user, session, fresh, err := h.services.AuthService.ValidateSession(ctx, cookie.Value)
		if err != nil {
			if !errors.Is(err, service.ErrUnauthorized) {
				log.Err(err).Msg("session validation failed")
			}
			h.writeError(w, r, service.ErrUnauthorized)
			return
		}

		if fresh {
			http.SetCookie(w, h.services.AuthService.SessionCookie(session).HTTPCookie())
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
		ctx = context.WithValue(ctx, utils.SessionCtxKey, session)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
