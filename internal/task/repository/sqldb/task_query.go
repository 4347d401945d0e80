package sqldb

import (
	"strings"

	"github.com/jmoiron/sqlx"

	repo "project-tracker/internal/task/repository"
)

const selectTasks = `
	SELECT t.id, t.project_id, t.title, t.description, t.assignee_id,
	       t.start_date, t.end_date, t.due_date, t.status, t.progress,
	       t.calendar_event_id, t.created_at,
	       p.name AS project_name, p.owner_id AS project_owner_id,
	       u.first_name AS assignee_first_name, u.last_name AS assignee_last_name,
	       u.email AS assignee_email
	FROM tasks t
	JOIN projects p ON p.id = t.project_id
	LEFT JOIN users u ON u.id = t.assignee_id`

// visibleCondition matches tasks of projects the user owns or holds a task in.
const visibleCondition = `(p.owner_id = ? OR p.id IN (SELECT a.project_id FROM tasks a WHERE a.assignee_id = ?))`

func (r *implRepository) buildGetOneQuery(opt repo.GetOneOptions) (string, []any) {
	conditions := []string{"t.id = ?"}
	args := []any{opt.ID}

	if opt.VisibleTo != 0 {
		conditions = append(conditions, visibleCondition)
		args = append(args, opt.VisibleTo, opt.VisibleTo)
	}

	return r.db.Rebind(selectTasks + " WHERE " + strings.Join(conditions, " AND ")), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT clause for List.
func (r *implRepository) buildListQuery(opt repo.ListOptions) (string, []any, error) {
	var (
		conditions []string
		args       []any
	)
	add := func(cond string, values ...any) {
		conditions = append(conditions, cond)
		args = append(args, values...)
	}

	if len(opt.IDs) > 0 {
		add("t.id IN (?)", opt.IDs)
	}
	if opt.VisibleTo != 0 {
		add(visibleCondition, opt.VisibleTo, opt.VisibleTo)
	}
	if opt.ProjectID != 0 {
		add("t.project_id = ?", opt.ProjectID)
	}
	if opt.AssigneeID != 0 {
		add("t.assignee_id = ?", opt.AssigneeID)
	}
	if opt.Status != "" {
		add("t.status = ?", opt.Status)
	}
	if opt.ExcludeStatus != "" {
		add("t.status <> ?", opt.ExcludeStatus)
	}
	if opt.StartFrom.Valid {
		add("t.start_date >= ?", opt.StartFrom)
	}
	if opt.EndUntil.Valid {
		add("t.end_date <= ?", opt.EndUntil)
	}
	if opt.ActiveFrom.Valid {
		add("COALESCE(t.end_date, t.due_date, t.start_date) >= ?", opt.ActiveFrom)
	}
	if opt.ActiveUntil.Valid {
		add("COALESCE(t.start_date, t.end_date, t.due_date) <= ?", opt.ActiveUntil)
	}
	if opt.DueFrom.Valid {
		add("t.due_date >= ?", opt.DueFrom)
	}
	if opt.DueUntil.Valid {
		add("t.due_date <= ?", opt.DueUntil)
	}

	var b strings.Builder
	b.WriteString(selectTasks)
	if len(conditions) > 0 {
		b.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	if opt.OrderByDue {
		b.WriteString(" ORDER BY t.due_date, t.id")
	} else {
		b.WriteString(" ORDER BY t.id")
	}
	if opt.Limit > 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, opt.Limit)
	}

	query := b.String()
	if len(opt.IDs) > 0 {
		var err error
		query, args, err = sqlx.In(query, args...)
		if err != nil {
			return "", nil, err
		}
	}
	return r.db.Rebind(query), args, nil
}
