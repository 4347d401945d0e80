package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"project-tracker/internal/model"
	repo "project-tracker/internal/user/repository"
	"project-tracker/pkg/database"
)

const userColumns = `id, email, first_name, last_name, role, is_staff, is_active, password_hash, date_joined, last_login`

type userRow struct {
	ID           int64          `db:"id"`
	Email        string         `db:"email"`
	FirstName    string         `db:"first_name"`
	LastName     string         `db:"last_name"`
	Role         string         `db:"role"`
	IsStaff      bool           `db:"is_staff"`
	IsActive     bool           `db:"is_active"`
	PasswordHash sql.NullString `db:"password_hash"`
	DateJoined   int64          `db:"date_joined"`
	LastLogin    sql.NullInt64  `db:"last_login"`
}

func (row userRow) toModel() model.User {
	u := model.User{
		ID:         row.ID,
		Email:      row.Email,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		Role:       row.Role,
		IsStaff:    row.IsStaff,
		IsActive:   row.IsActive,
		DateJoined: time.Unix(row.DateJoined, 0).UTC(),
	}
	if row.PasswordHash.Valid {
		h := row.PasswordHash.String
		u.PasswordHash = &h
	}
	if row.LastLogin.Valid {
		t := time.Unix(row.LastLogin.Int64, 0).UTC()
		u.LastLogin = &t
	}
	return u
}

// Create inserts a user and returns it.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.User, error) {
	query := r.db.Rebind(`
		INSERT INTO users (email, first_name, last_name, role, is_staff, is_active, password_hash, date_joined)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		opt.Email, opt.FirstName, opt.LastName, opt.Role, opt.IsStaff, opt.IsActive, opt.PasswordHash, opt.DateJoined.Unix(),
	).Scan(&id)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.User{}, repo.ErrFailedToInsert
	}

	return r.GetOne(ctx, repo.GetOneOptions{ID: id})
}

// GetOne retrieves a single user. Returns a zero-value User when not found.
func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.User, error) {
	var (
		conditions []string
		args       []any
	)
	if opt.ID != 0 {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Email != "" {
		conditions = append(conditions, "LOWER(email) = LOWER(?)")
		args = append(args, opt.Email)
	}
	if len(conditions) == 0 {
		return model.User{}, nil
	}

	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE ` + strings.Join(conditions, " AND ") + ` LIMIT 1`)

	var row userRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// List returns users ordered by id.
func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	var args []any
	if len(opt.IDs) > 0 {
		q, a, err := sqlx.In(query+` WHERE id IN (?)`, opt.IDs)
		if err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
			return nil, repo.ErrFailedToList
		}
		query, args = q, a
	}
	query = r.db.Rebind(query + ` ORDER BY id`)

	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}

	users := make([]model.User, len(rows))
	for i, row := range rows {
		users[i] = row.toModel()
	}
	return users, nil
}

// Update replaces the editable profile fields. Returns a zero-value User when not found.
func (r *implRepository) Update(ctx context.Context, opt repo.UpdateOptions) (model.User, error) {
	query := r.db.Rebind(`UPDATE users SET email = ?, first_name = ?, last_name = ?, role = ? WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, opt.Email, opt.FirstName, opt.LastName, opt.Role, opt.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return model.User{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.User{}, nil
	}
	return r.GetOne(ctx, repo.GetOneOptions{ID: opt.ID})
}

// SetLastLogin stamps the last successful sign-in.
func (r *implRepository) SetLastLogin(ctx context.Context, id int64, at time.Time) error {
	query := r.db.Rebind(`UPDATE users SET last_login = ? WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, query, at.Unix(), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetLastLogin"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// Count returns the number of registered users.
func (r *implRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM users`); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Count"), err)
		return 0, repo.ErrFailedToGet
	}
	return n, nil
}
