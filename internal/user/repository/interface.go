package repository

import (
	"context"
	"time"

	"project-tracker/internal/model"
)

// Repository defines all data access methods for users.
// Lookups return a zero-value User (ID == 0) when nothing matches.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.User, error)
	GetOne(ctx context.Context, opt GetOneOptions) (model.User, error)
	List(ctx context.Context, opt ListOptions) ([]model.User, error)
	Update(ctx context.Context, opt UpdateOptions) (model.User, error)
	SetLastLogin(ctx context.Context, id int64, at time.Time) error
	Count(ctx context.Context) (int, error)
}
