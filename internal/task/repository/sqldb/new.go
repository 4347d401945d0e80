package sqldb

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"project-tracker/internal/task/repository"
	"project-tracker/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a SQL-backed Repository for tasks.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqldb: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqldb.%s", method)
}
