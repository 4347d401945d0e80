package repository

import (
	"time"

	"project-tracker/internal/model"
)

// CreateOptions holds parameters for inserting a project.
type CreateOptions struct {
	Name           string
	Description    string
	OwnerID        int64
	Status         string
	Progress       int
	StartDate      model.Date
	EndDate        model.Date
	LocationName   string
	Latitude       *float64
	Longitude      *float64
	GeofenceRadius *int
	CreatedAt      time.Time
}

// GetOneOptions selects a project by id. A non-zero VisibleTo restricts the
// lookup to projects that user owns or holds a task in.
type GetOneOptions struct {
	ID        int64
	VisibleTo int64
}

// ListOptions filters projects, newest first. VisibleTo works as in GetOneOptions;
// Limit <= 0 means no limit.
type ListOptions struct {
	VisibleTo int64
	Limit     int
}

// UpdateOptions replaces every editable column of a project.
type UpdateOptions struct {
	ID             int64
	Name           string
	Description    string
	Status         string
	Progress       int
	StartDate      model.Date
	EndDate        model.Date
	LocationName   string
	Latitude       *float64
	Longitude      *float64
	GeofenceRadius *int
}

// TaskProgress is the slice of a task needed to roll progress up to its project.
type TaskProgress struct {
	ProjectID int64
	Progress  int
	StartDate model.Date
	EndDate   model.Date
	DueDate   model.Date
}
