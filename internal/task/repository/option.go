package repository

import (
	"time"

	"project-tracker/internal/model"
)

// CreateOptions holds parameters for inserting a task.
type CreateOptions struct {
	ProjectID    int64
	Title        string
	Description  string
	AssigneeID   *int64
	StartDate    model.Date
	EndDate      model.Date
	DueDate      model.Date
	Status       string
	Progress     int
	Dependencies []int64
	CreatedAt    time.Time
}

// GetOneOptions selects a task by id. A non-zero VisibleTo restricts the lookup
// to tasks of projects that user owns or holds a task in.
type GetOneOptions struct {
	ID        int64
	VisibleTo int64
}

// ListOptions filters tasks. Zero values are ignored and conditions are ANDed.
type ListOptions struct {
	IDs           []int64
	VisibleTo     int64
	ProjectID     int64
	AssigneeID    int64
	Status        string
	ExcludeStatus string

	// StartFrom and EndUntil bound start_date and end_date respectively.
	StartFrom model.Date
	EndUntil  model.Date

	// ActiveFrom and ActiveUntil keep tasks whose date span overlaps the range.
	ActiveFrom  model.Date
	ActiveUntil model.Date

	// DueFrom and DueUntil bound due_date.
	DueFrom  model.Date
	DueUntil model.Date

	// OrderByDue sorts by due date instead of id.
	OrderByDue bool
	Limit      int
}

// UpdateOptions replaces every editable column of a task and its dependencies.
type UpdateOptions struct {
	ID           int64
	ProjectID    int64
	Title        string
	Description  string
	AssigneeID   *int64
	StartDate    model.Date
	EndDate      model.Date
	DueDate      model.Date
	Status       string
	Progress     int
	Dependencies []int64
}
