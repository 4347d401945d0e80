package sqldb

import (
	"strings"

	repo "project-tracker/internal/project/repository"
)

const selectProjects = `
	SELECT p.id, p.name, p.description, p.owner_id, p.status, p.progress,
	       p.start_date, p.end_date, p.location_name, p.latitude, p.longitude,
	       p.geofence_radius, p.created_at,
	       u.first_name AS owner_first_name, u.last_name AS owner_last_name, u.email AS owner_email
	FROM projects p
	JOIN users u ON u.id = p.owner_id`

// visibleCondition matches projects the user owns or has an assigned task in.
const visibleCondition = `(p.owner_id = ? OR p.id IN (SELECT t.project_id FROM tasks t WHERE t.assignee_id = ?))`

// buildGetOneQuery builds the full query + args for GetOne.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneOptions) (string, []any) {
	conditions := []string{"p.id = ?"}
	args := []any{opt.ID}

	if opt.VisibleTo != 0 {
		conditions = append(conditions, visibleCondition)
		args = append(args, opt.VisibleTo, opt.VisibleTo)
	}

	return r.db.Rebind(selectProjects + " WHERE " + strings.Join(conditions, " AND ")), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT clause for List.
func (r *implRepository) buildListQuery(opt repo.ListOptions) (string, []any) {
	var (
		b    strings.Builder
		args []any
	)
	b.WriteString(selectProjects)

	if opt.VisibleTo != 0 {
		b.WriteString(" WHERE " + visibleCondition)
		args = append(args, opt.VisibleTo, opt.VisibleTo)
	}

	b.WriteString(" ORDER BY p.created_at DESC, p.id DESC")

	if opt.Limit > 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, opt.Limit)
	}

	return r.db.Rebind(b.String()), args
}
