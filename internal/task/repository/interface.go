package repository

import (
	"context"

	"project-tracker/internal/model"
)

// Repository defines all data access methods for tasks.
// Lookups return a zero-value Task (ID == 0) when nothing matches.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.Task, error)
	GetOne(ctx context.Context, opt GetOneOptions) (model.Task, error)
	List(ctx context.Context, opt ListOptions) ([]model.Task, error)
	Update(ctx context.Context, opt UpdateOptions) (model.Task, error)
	SetCalendarEventID(ctx context.Context, id int64, eventID string) error
}
