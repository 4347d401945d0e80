package repository

import (
	"context"

	"project-tracker/internal/model"
)

// Repository defines all data access methods for projects.
// Lookups return a zero-value Project (ID == 0) when nothing matches.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.Project, error)
	GetOne(ctx context.Context, opt GetOneOptions) (model.Project, error)
	List(ctx context.Context, opt ListOptions) ([]model.Project, error)
	Update(ctx context.Context, opt UpdateOptions) (model.Project, error)
	Delete(ctx context.Context, id int64) error
	// ListTaskProgress returns the tasks of the given projects keyed by project id.
	ListTaskProgress(ctx context.Context, projectIDs []int64) (map[int64][]TaskProgress, error)
}
