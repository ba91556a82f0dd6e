package service

import (
	"github.com/gae-jp/portfolio-api/internal/config"
	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/internal/store"
)

type Services struct {
	AuthService    AuthService
	ContentService ContentService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages, cfg.App, cfg.Auth, logger),
		ContentService: NewContentService(storages, logger),
	}
}
