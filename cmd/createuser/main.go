// Command createuser seeds an admin account into the configured database.
//
// There is no public registration endpoint: accounts exist only for the
// owner, and this command is the way they are created.
//
//	createuser -username admin -password 's3cret' -driver sqlite3 -d data.db
package main

import (
	"context"
	"flag"

	"github.com/gae-jp/portfolio-api/internal/config"
	"github.com/gae-jp/portfolio-api/internal/logger"
	"github.com/gae-jp/portfolio-api/internal/service"
	"github.com/gae-jp/portfolio-api/internal/store"
)

func main() {
	var username, password string
	flag.StringVar(&username, "username", "", "Username of the account to create")
	flag.StringVar(&password, "password", "", "Password of the account to create")

	log := logger.NewLogger("portfolio-createuser")

	// GetStructuredConfig parses the flags registered above together with
	// its own.
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if username == "" || password == "" {
		log.Fatal().Msg("both -username and -password are required")
	}

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
	auth := service.NewAuthService(storages, cfg.App, cfg.Auth, log)

	user, err := auth.CreateUser(ctx, username, password)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating user")
	}

	log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user created")
}
