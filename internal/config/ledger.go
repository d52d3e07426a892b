package config

import (
	"fmt"

	"productivity-tracker/internal/repository/sqlite"
)

// CreateLedger opens the reminder ledger described by the configuration
func CreateLedger(config *Config) (sqlite.Repository, error) {
	repo, err := sqlite.New(config.Ledger.DSN, sqlite.Options{
		QueryTimeout: config.Ledger.QueryTimeout,
		WriteTimeout: config.Ledger.WriteTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open reminder ledger: %w", err)
	}

	return repo, nil
}
