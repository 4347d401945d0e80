package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"project-tracker/internal/model"
	repo "project-tracker/internal/project/repository"
)

type projectRow struct {
	ID             int64           `db:"id"`
	Name           string          `db:"name"`
	Description    string          `db:"description"`
	OwnerID        int64           `db:"owner_id"`
	Status         string          `db:"status"`
	Progress       int             `db:"progress"`
	StartDate      model.Date      `db:"start_date"`
	EndDate        model.Date      `db:"end_date"`
	LocationName   string          `db:"location_name"`
	Latitude       sql.NullFloat64 `db:"latitude"`
	Longitude      sql.NullFloat64 `db:"longitude"`
	GeofenceRadius sql.NullInt64   `db:"geofence_radius"`
	CreatedAt      int64           `db:"created_at"`
	OwnerFirstName string          `db:"owner_first_name"`
	OwnerLastName  string          `db:"owner_last_name"`
	OwnerEmail     string          `db:"owner_email"`
}

func (row projectRow) toModel() model.Project {
	p := model.Project{
		ID:           row.ID,
		Name:         row.Name,
		Description:  row.Description,
		OwnerID:      row.OwnerID,
		OwnerName:    model.User{FirstName: row.OwnerFirstName, LastName: row.OwnerLastName, Email: row.OwnerEmail}.FullName(),
		Status:       row.Status,
		Progress:     row.Progress,
		StartDate:    row.StartDate,
		EndDate:      row.EndDate,
		LocationName: row.LocationName,
		CreatedAt:    time.Unix(row.CreatedAt, 0).UTC(),
	}
	if row.Latitude.Valid {
		v := row.Latitude.Float64
		p.Latitude = &v
	}
	if row.Longitude.Valid {
		v := row.Longitude.Float64
		p.Longitude = &v
	}
	if row.GeofenceRadius.Valid {
		v := int(row.GeofenceRadius.Int64)
		p.GeofenceRadius = &v
	}
	return p
}

// Create inserts a project and returns it with the owner name resolved.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.Project, error) {
	query := r.db.Rebind(`
		INSERT INTO projects (name, description, owner_id, status, progress, start_date, end_date,
		                      location_name, latitude, longitude, geofence_radius, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		opt.Name, opt.Description, opt.OwnerID, opt.Status, opt.Progress, opt.StartDate, opt.EndDate,
		opt.LocationName, opt.Latitude, opt.Longitude, opt.GeofenceRadius, opt.CreatedAt.Unix(),
	).Scan(&id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.Project{}, repo.ErrFailedToInsert
	}

	return r.GetOne(ctx, repo.GetOneOptions{ID: id})
}

// GetOne retrieves a single project. Returns a zero-value Project when not found.
func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Project, error) {
	query, args := r.buildGetOneQuery(opt)

	var row projectRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Project{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.Project{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// List returns projects newest first.
func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]model.Project, error) {
	query, args := r.buildListQuery(opt)

	var rows []projectRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}

	projects := make([]model.Project, len(rows))
	for i, row := range rows {
		projects[i] = row.toModel()
	}
	return projects, nil
}

// Update replaces the editable columns. Returns a zero-value Project when the id does not exist.
func (r *implRepository) Update(ctx context.Context, opt repo.UpdateOptions) (model.Project, error) {
	query := r.db.Rebind(`
		UPDATE projects
		SET name = ?, description = ?, status = ?, progress = ?, start_date = ?, end_date = ?,
		    location_name = ?, latitude = ?, longitude = ?, geofence_radius = ?
		WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query,
		opt.Name, opt.Description, opt.Status, opt.Progress, opt.StartDate, opt.EndDate,
		opt.LocationName, opt.Latitude, opt.Longitude, opt.GeofenceRadius, opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return model.Project{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Project{}, nil
	}

	return r.GetOne(ctx, repo.GetOneOptions{ID: opt.ID})
}

// Delete removes a project; its tasks are removed by the foreign key cascade.
func (r *implRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM projects WHERE id = ?`), id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type taskProgressRow struct {
	ProjectID int64      `db:"project_id"`
	Progress  int        `db:"progress"`
	StartDate model.Date `db:"start_date"`
	EndDate   model.Date `db:"end_date"`
	DueDate   model.Date `db:"due_date"`
}

// ListTaskProgress loads the dates and manual progress of every task in projectIDs.
func (r *implRepository) ListTaskProgress(ctx context.Context, projectIDs []int64) (map[int64][]repo.TaskProgress, error) {
	out := make(map[int64][]repo.TaskProgress, len(projectIDs))
	if len(projectIDs) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`
		SELECT project_id, progress, start_date, end_date, due_date
		FROM tasks
		WHERE project_id IN (?)
		ORDER BY id`, projectIDs)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTaskProgress"), err)
		return nil, repo.ErrFailedToList
	}

	var rows []taskProgressRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTaskProgress"), err)
		return nil, repo.ErrFailedToList
	}

	for _, row := range rows {
		out[row.ProjectID] = append(out[row.ProjectID], repo.TaskProgress(row))
	}
	return out, nil
}
