package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gae-jp/portfolio-api/internal/config"
	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/internal/service"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	services *service.Services

	// production suppresses internal error details in responses.
	production bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, appCfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		production: appCfg.IsProduction(),
		logger:     logger,
	}
}

// idFromRequest extracts the {id} path parameter as a positive integer.
func idFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}

	return id, nil
}
