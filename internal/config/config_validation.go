package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case "sqlite3", "pgx":
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.SessionTTL <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.App.IsProduction() && cfg.Auth.CookieDomain == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}
