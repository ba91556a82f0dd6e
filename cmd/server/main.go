package main

import (
	"context"
	"fmt"

	"github.com/gae-jp/portfolio-api/internal/config"
	"github.com/gae-jp/portfolio-api/internal/handler"
	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/internal/server"
	"github.com/gae-jp/portfolio-api/internal/service"
	"github.com/gae-jp/portfolio-api/internal/store"
	"github.com/gae-jp/portfolio-api/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("portfolio-api")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Err(err).Msg("error closing database connection")
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, *cfg, log)
	handlers := handler.NewHandlers(services, *cfg, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(storages, log).Run()

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
