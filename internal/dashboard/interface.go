package dashboard

import (
	"context"

	"project-tracker/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Summary aggregates the projects and tasks visible to the caller.
	Summary(ctx context.Context, sc model.Scope) (SummaryOutput, error)
}
