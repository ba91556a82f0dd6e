package handler

import (
	"github.com/gae-jp/portfolio-api/internal/config"
	"github.com/gae-jp/portfolio-api/internal/handler/http"
	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.App, logger),
	}
}
