package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"project-tracker/internal/model"
	repo "project-tracker/internal/task/repository"
)

type taskRow struct {
	ID                int64          `db:"id"`
	ProjectID         int64          `db:"project_id"`
	Title             string         `db:"title"`
	Description       string         `db:"description"`
	AssigneeID        sql.NullInt64  `db:"assignee_id"`
	StartDate         model.Date     `db:"start_date"`
	EndDate           model.Date     `db:"end_date"`
	DueDate           model.Date     `db:"due_date"`
	Status            string         `db:"status"`
	Progress          int            `db:"progress"`
	CalendarEventID   sql.NullString `db:"calendar_event_id"`
	CreatedAt         int64          `db:"created_at"`
	ProjectName       string         `db:"project_name"`
	ProjectOwnerID    int64          `db:"project_owner_id"`
	AssigneeFirstName sql.NullString `db:"assignee_first_name"`
	AssigneeLastName  sql.NullString `db:"assignee_last_name"`
	AssigneeEmail     sql.NullString `db:"assignee_email"`
}

func (row taskRow) toModel() model.Task {
	t := model.Task{
		ID:              row.ID,
		ProjectID:       row.ProjectID,
		ProjectName:     row.ProjectName,
		ProjectOwnerID:  row.ProjectOwnerID,
		Title:           row.Title,
		Description:     row.Description,
		StartDate:       row.StartDate,
		EndDate:         row.EndDate,
		DueDate:         row.DueDate,
		Status:          row.Status,
		Progress:        row.Progress,
		CalendarEventID: row.CalendarEventID.String,
		CreatedAt:       time.Unix(row.CreatedAt, 0).UTC(),
	}
	if row.AssigneeID.Valid {
		id := row.AssigneeID.Int64
		t.AssigneeID = &id
		t.AssigneeEmail = row.AssigneeEmail.String
		t.AssigneeName = model.User{
			FirstName: row.AssigneeFirstName.String,
			LastName:  row.AssigneeLastName.String,
			Email:     row.AssigneeEmail.String,
		}.FullName()
	}
	return t
}

// Create inserts a task with its dependencies in one transaction.
func (r *implRepository) Create(ctx context.Context, opt repo.CreateOptions) (model.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: begin: %v", r.dsn("Create"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	query := tx.Rebind(`
		INSERT INTO tasks (project_id, title, description, assignee_id, start_date, end_date,
		                   due_date, status, progress, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	var id int64
	err = tx.QueryRowxContext(ctx, query,
		opt.ProjectID, opt.Title, opt.Description, opt.AssigneeID, opt.StartDate, opt.EndDate,
		opt.DueDate, opt.Status, opt.Progress, opt.CreatedAt.Unix(),
	).Scan(&id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	if err := replaceDependencies(ctx, tx, id, opt.Dependencies); err != nil {
		r.l.Errorf(ctx, "%s: dependencies: %v", r.dsn("Create"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s: commit: %v", r.dsn("Create"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	return r.GetOne(ctx, repo.GetOneOptions{ID: id})
}

// GetOne retrieves a single task. Returns a zero-value Task when not found.
func (r *implRepository) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Task, error) {
	query, args := r.buildGetOneQuery(opt)

	var row taskRow
	err := r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOne"), err)
		return model.Task{}, repo.ErrFailedToGet
	}

	tasks := []model.Task{row.toModel()}
	if err := r.loadDependencies(ctx, tasks); err != nil {
		r.l.Errorf(ctx, "%s: dependencies: %v", r.dsn("GetOne"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return tasks[0], nil
}

func (r *implRepository) List(ctx context.Context, opt repo.ListOptions) ([]model.Task, error) {
	query, args, err := r.buildListQuery(opt)
	if err != nil {
		r.l.Errorf(ctx, "%s: build: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}

	tasks := make([]model.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toModel()
	}
	if err := r.loadDependencies(ctx, tasks); err != nil {
		r.l.Errorf(ctx, "%s: dependencies: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// Update replaces the editable columns and the dependency set.
// Returns a zero-value Task when the id does not exist.
func (r *implRepository) Update(ctx context.Context, opt repo.UpdateOptions) (model.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: begin: %v", r.dsn("Update"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	query := tx.Rebind(`
		UPDATE tasks
		SET project_id = ?, title = ?, description = ?, assignee_id = ?, start_date = ?,
		    end_date = ?, due_date = ?, status = ?, progress = ?
		WHERE id = ?`)

	res, err := tx.ExecContext(ctx, query,
		opt.ProjectID, opt.Title, opt.Description, opt.AssigneeID, opt.StartDate,
		opt.EndDate, opt.DueDate, opt.Status, opt.Progress, opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Update"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, nil
	}

	if err := replaceDependencies(ctx, tx, opt.ID, opt.Dependencies); err != nil {
		r.l.Errorf(ctx, "%s: dependencies: %v", r.dsn("Update"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s: commit: %v", r.dsn("Update"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	return r.GetOne(ctx, repo.GetOneOptions{ID: opt.ID})
}

// SetCalendarEventID stores the id of the calendar event mirroring the task.
func (r *implRepository) SetCalendarEventID(ctx context.Context, id int64, eventID string) error {
	query := r.db.Rebind(`UPDATE tasks SET calendar_event_id = ? WHERE id = ?`)
	if _, err := r.db.ExecContext(ctx, query, eventID, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetCalendarEventID"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

func replaceDependencies(ctx context.Context, tx *sqlx.Tx, taskID int64, deps []int64) error {
	if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM task_dependencies WHERE task_id = ?`), taskID); err != nil {
		return err
	}

	insert := tx.Rebind(`INSERT INTO task_dependencies (task_id, depends_on_id) VALUES (?, ?)`)
	seen := make(map[int64]bool, len(deps))
	for _, dep := range deps {
		if seen[dep] {
			continue
		}
		seen[dep] = true
		if _, err := tx.ExecContext(ctx, insert, taskID, dep); err != nil {
			return err
		}
	}
	return nil
}

type dependencyRow struct {
	TaskID      int64 `db:"task_id"`
	DependsOnID int64 `db:"depends_on_id"`
}

// loadDependencies fills the Dependencies of every task in place.
func (r *implRepository) loadDependencies(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	ids := make([]int64, len(tasks))
	index := make(map[int64]int, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
		index[t.ID] = i
		tasks[i].Dependencies = []int64{}
	}

	query, args, err := sqlx.In(`
		SELECT task_id, depends_on_id
		FROM task_dependencies
		WHERE task_id IN (?)
		ORDER BY task_id, depends_on_id`, ids)
	if err != nil {
		return err
	}

	var rows []dependencyRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return err
	}
	for _, row := range rows {
		i := index[row.TaskID]
		tasks[i].Dependencies = append(tasks[i].Dependencies, row.DependsOnID)
	}
	return nil
}
