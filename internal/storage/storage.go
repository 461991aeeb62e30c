package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

type Storage struct {
	DB           *sql.DB
	Transactions sqlconfig.ITransactionTable
}

// NewStorage opens the database selected by env, applies migrations when
// AutoMigrate is set, and wires the matching transactions table.
func NewStorage(env *config.Config) (*Storage, error) {
	dsn := env.DSN()

	if env.DatabaseClient == config.DatabaseClientSQLite {
		if err := ensureSQLiteDir(env.DatabaseURL); err != nil {
			return nil, err
		}
	}

	if env.AutoMigrate {
		if _, err := RunMigrations(env.DatabaseClient, dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(driverName(env.DatabaseClient), connectionString(env.DatabaseClient, dsn))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	var table sqlconfig.ITransactionTable
	switch env.DatabaseClient {
	case config.DatabaseClientPostgres:
		table = sqlconfig.NewPostgresTransactionsTable(db)
	case config.DatabaseClientSQLite:
		// sqlite allows a single writer; one connection avoids SQLITE_BUSY under load.
		db.SetMaxOpenConns(1)
		table = sqlconfig.NewSQLiteTransactionsTable(db)
	default:
		_ = db.Close()
		return nil, fmt.Errorf("unsupported database client %q", env.DatabaseClient)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Storage{
		DB:           db,
		Transactions: table,
	}, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("storage: database not configured")
	}
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

func ensureSQLiteDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create sqlite directory: %w", err)
	}
	return nil
}

func driverName(client string) string {
	if client == config.DatabaseClientPostgres {
		return "postgres"
	}
	return "sqlite"
}

func connectionString(client, dsn string) string {
	if client == config.DatabaseClientSQLite {
		return dsn + "?_pragma=busy_timeout(5000)"
	}
	return dsn
}
