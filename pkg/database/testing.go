package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"project-tracker/pkg/log"
)

// NewTestDB opens a migrated SQLite database in a temporary directory.
// It is closed when the test ends.
func NewTestDB(t testing.TB) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, Config{Driver: DriverSQLite, DSN: filepath.Join(t.TempDir(), "test.db")}, log.NewNop())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	m, err := NewMigrator(db, DriverSQLite, log.NewNop())
	if err != nil {
		t.Fatalf("create migrator: %v", err)
	}
	if err := m.Up(ctx); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
