package project

import (
	"context"

	"project-tracker/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateInput) (ProjectOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) ([]ProjectOutput, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (ProjectOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (ProjectOutput, error)
	Delete(ctx context.Context, sc model.Scope, id int64) error
}
