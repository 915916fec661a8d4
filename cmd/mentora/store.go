package main

import (
	"fmt"

	"github.com/mentoraq/backend/internal/config"
	"github.com/mentoraq/backend/internal/database"
	"github.com/mentoraq/backend/internal/store"
	"github.com/mentoraq/backend/internal/store/memory"
	"github.com/mentoraq/backend/internal/store/postgres"
)

// openStore connects the configured driver. Postgres tables are migrated on
// open so a fresh database is usable immediately.
func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.App.StoreDriver {
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverPostgres:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(db); err != nil {
			_ = database.Close(db)
			return nil, err
		}
		return postgres.New(db), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.App.StoreDriver)
	}
}
