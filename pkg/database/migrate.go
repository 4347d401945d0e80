package database

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	"project-tracker/pkg/log"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFiles embed.FS

// Migrator applies the embedded schema migrations of one driver.
type Migrator struct {
	db     *sqlx.DB
	driver string
	l      log.Logger
}

// NewMigrator creates a Migrator for db opened with driver.
func NewMigrator(db *sqlx.DB, driver string, l log.Logger) (*Migrator, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	if driver != DriverPostgres && driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
	return &Migrator{db: db, driver: driver, l: l}, nil
}

// Up runs all available migrations.
func (m *Migrator) Up(ctx context.Context) error {
	inst, close, err := m.instance()
	defer close()
	if err != nil {
		return err
	}

	if err := inst.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	m.l.Debugf(ctx, "migrations applied (driver=%s)", m.driver)
	return nil
}

// Down reverts all migrations.
func (m *Migrator) Down(ctx context.Context) error {
	inst, close, err := m.instance()
	defer close()
	if err != nil {
		return err
	}

	if err := inst.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not revert migrations: %w", err)
	}

	m.l.Debugf(ctx, "migrations reverted (driver=%s)", m.driver)
	return nil
}

// instance builds a migrate instance. The returned instance is not closed
// because closing it would close the shared connection pool.
func (m *Migrator) instance() (*migrate.Migrate, func(), error) {
	close := func() {}

	var (
		driver migratedb.Driver
		err    error
	)
	switch m.driver {
	case DriverPostgres:
		driver, err = postgres.WithInstance(m.db.DB, &postgres.Config{})
	case DriverSQLite:
		driver, err = sqlite.WithInstance(m.db.DB, &sqlite.Config{})
	}
	if err != nil {
		return nil, close, fmt.Errorf("could not create driver: %w", err)
	}

	src, err := iofs.New(migrationFiles, "migrations/"+m.driver)
	if err != nil {
		return nil, close, fmt.Errorf("could not create fs: %w", err)
	}
	close = func() {
		if err := src.Close(); err != nil {
			m.l.Errorf(context.Background(), "could not close fs: %v", err)
		}
	}

	inst, err := migrate.NewWithInstance("iofs", src, m.driver, driver)
	if err != nil {
		return nil, close, fmt.Errorf("could not create migration instance: %w", err)
	}
	return inst, close, nil
}
