package task

import (
	"context"

	"project-tracker/internal/model"
)

// UseCase defines the business logic interface for the task domain.
// Every read is limited to the tasks the caller can see.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (TaskOutput, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (TaskOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (TaskOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) ([]TaskOutput, error)

	// Gantt lists the tasks of a project, or of every visible project when projectID is 0.
	Gantt(ctx context.Context, sc model.Scope, projectID int64) ([]TaskOutput, error)
	// Calendar lists tasks whose dates overlap the given range.
	Calendar(ctx context.Context, sc model.Scope, input RangeInput) ([]TaskOutput, error)

	Completed(ctx context.Context, sc model.Scope) ([]TaskOutput, error)
	Active(ctx context.Context, sc model.Scope) ([]TaskOutput, error)
	ByUser(ctx context.Context, sc model.Scope, userID int64) ([]TaskOutput, error)
	// ByDate lists tasks starting on or after Start and ending on or before End.
	ByDate(ctx context.Context, sc model.Scope, input RangeInput) ([]TaskOutput, error)
	Summary(ctx context.Context, sc model.Scope) (SummaryOutput, error)

	// SyncCalendar mirrors the task as an all-day calendar event.
	SyncCalendar(ctx context.Context, sc model.Scope, id int64) (SyncOutput, error)
}
