package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
)

//go:embed *.sql
var migrationsFS embed.FS

// Migration is one numbered schema step of the reminder ledger
type Migration struct {
	Version int
	Up      string
	Down    string
}

const versionTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

// RunMigrations brings the ledger schema up to the newest embedded version.
// Versions already recorded in schema_migrations are skipped
func RunMigrations(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, versionTable); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	pending, err := loadMigrations()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to read applied versions: %w", err)
	}

	for _, m := range pending {
		if applied[m.Version] {
			continue
		}
		if err := apply(ctx, db, m); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", m.Version, err)
		}
	}
	return nil
}

func loadMigrations() ([]Migration, error) {
	ups, err := fs.Glob(migrationsFS, "*.up.sql")
	if err != nil {
		return nil, err
	}

	out := make([]Migration, 0, len(ups))
	for _, name := range ups {
		version, ok := parseVersion(name)
		if !ok {
			continue
		}

		up, err := migrationsFS.ReadFile(name)
		if err != nil {
			return nil, err
		}
		down, err := migrationsFS.ReadFile(strings.TrimSuffix(name, ".up.sql") + ".down.sql")
		if err != nil {
			return nil, err
		}

		out = append(out, Migration{Version: version, Up: string(up), Down: string(down)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		seen[v] = true
	}
	return seen, rows.Err()
}

func apply(ctx context.Context, db *sql.DB, m Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, m.Up); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", m.Version); err != nil {
		return err
	}
	return tx.Commit()
}

// parseVersion reads the numeric prefix of names like 000001_create_reminders.up.sql
func parseVersion(filename string) (int, bool) {
	prefix, _, found := strings.Cut(filename, "_")
	if !found {
		return 0, false
	}
	v, err := strconv.Atoi(prefix)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
