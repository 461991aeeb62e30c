package storage

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/carson-networks/ledger-server/internal/config"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// MigrationStatus reports the schema version before and after a run.
type MigrationStatus struct {
	PreMigrationVersion  uint
	PostMigrationVersion uint
}

// RunMigrations applies the embedded migrations for client against dsn.
// It uses its own connection so the caller's pool is never closed by migrate.
func RunMigrations(client, dsn string) (*MigrationStatus, error) {
	if client == config.DatabaseClientSQLite {
		if err := ensureSQLiteDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(driverName(client), dsn)
	if err != nil {
		return nil, fmt.Errorf("open migration database: %w", err)
	}
	defer db.Close()

	var driver database.Driver
	switch client {
	case config.DatabaseClientPostgres:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	case config.DatabaseClientSQLite:
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	default:
		return nil, fmt.Errorf("unsupported database client %q", client)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s driver: %w", client, err)
	}

	source, err := iofs.New(migrationsFS, "migrations/"+client)
	if err != nil {
		return nil, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, client, driver)
	if err != nil {
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	status := &MigrationStatus{}
	status.PreMigrationVersion, err = currentVersion(m)
	if err != nil {
		return nil, fmt.Errorf("read pre-migration version: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	status.PostMigrationVersion, err = currentVersion(m)
	if err != nil {
		return nil, fmt.Errorf("read post-migration version: %w", err)
	}

	return status, nil
}

func currentVersion(m *migrate.Migrate) (uint, error) {
	version, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	return version, err
}
