package sqldb

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"project-tracker/internal/project/repository"
	"project-tracker/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a SQL-backed Repository for projects.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("project/repository/sqldb: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("project/repository/sqldb.%s", method)
}
