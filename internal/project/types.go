package project

import (
	"project-tracker/internal/model"
	"project-tracker/pkg/progress"
)

// --- UseCase Inputs ---

type CreateInput struct {
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

// UpdateInput is a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	ID             int64
	Name           *string
	Description    *string
	Status         *string
	Progress       *int
	StartDate      *model.Date
	EndDate        *model.Date
	LocationName   *string
	Latitude       *float64
	Longitude      *float64
	GeofenceRadius *int
}

// ListInput narrows List. Limit <= 0 returns every visible project.
type ListInput struct {
	Limit int
}

// --- UseCase Outputs ---

// ProjectOutput is a project with its progress figures rolled up from its tasks.
type ProjectOutput struct {
	Project   model.Project
	Progress  progress.Result
	TaskCount int
}
