package user

import (
	"context"

	"project-tracker/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Authentication
	Register(ctx context.Context, input RegisterInput) (model.User, error)
	Login(ctx context.Context, input LoginInput) (TokenOutput, error)
	Refresh(ctx context.Context, refreshToken string) (RefreshOutput, error)
	GoogleLogin(ctx context.Context, credential string) (TokenOutput, error)
	GoogleConfig(ctx context.Context) GoogleConfigOutput

	// Accounts
	Me(ctx context.Context, sc model.Scope) (model.User, error)
	List(ctx context.Context, sc model.Scope) ([]model.User, error)
	Detail(ctx context.Context, sc model.Scope, id int64) (model.User, error)
	FindByEmail(ctx context.Context, sc model.Scope, email string) (model.User, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.User, error)
}
