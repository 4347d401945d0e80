package usecase

import (
	"context"
	"errors"

	"project-tracker/internal/model"
	"project-tracker/internal/user"
	repo "project-tracker/internal/user/repository"
	"project-tracker/pkg/scope"
)

// Register creates a password account. The role defaults to model.DefaultRole.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (model.User, error) {
	email := normalizeEmail(input.Email)

	existing, err := uc.repo.GetOne(ctx, repo.GetOneOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOne: %v", err)
		return model.User{}, err
	}
	if existing.ID != 0 {
		return model.User{}, user.ErrEmailExists
	}

	hash, err := uc.enc.HashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register HashPassword: %v", err)
		return model.User{}, err
	}

	role := input.Role
	if role == "" {
		role = model.DefaultRole
	}

	u, err := uc.repo.Create(ctx, repo.CreateOptions{
		Email:        email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         role,
		PasswordHash: &hash,
		IsActive:     true,
		DateJoined:   uc.now(),
	})
	if errors.Is(err, repo.ErrDuplicateEmail) {
		return model.User{}, user.ErrEmailExists
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register Create: %v", err)
		return model.User{}, err
	}
	return u, nil
}

// Login checks the password and returns a token pair.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.TokenOutput, error) {
	u, err := uc.getUser(ctx, repo.GetOneOptions{Email: normalizeEmail(input.Email)})
	if errors.Is(err, user.ErrNotFound) {
		return user.TokenOutput{}, user.ErrInvalidCredentials
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOne: %v", err)
		return user.TokenOutput{}, err
	}

	if u.PasswordHash == nil || uc.enc.ComparePassword(*u.PasswordHash, input.Password) != nil {
		return user.TokenOutput{}, user.ErrInvalidCredentials
	}
	if !u.IsActive {
		return user.TokenOutput{}, user.ErrInactive
	}

	return uc.issueTokens(ctx, u)
}

// Refresh exchanges a refresh token for a new access token.
func (uc *implUseCase) Refresh(ctx context.Context, refreshToken string) (user.RefreshOutput, error) {
	payload, err := uc.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return user.RefreshOutput{}, user.ErrInvalidRefreshToken
	}

	u, err := uc.getUser(ctx, repo.GetOneOptions{ID: payload.UserID})
	if errors.Is(err, user.ErrNotFound) {
		return user.RefreshOutput{}, user.ErrInvalidRefreshToken
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Refresh GetOne: %v", err)
		return user.RefreshOutput{}, err
	}
	if !u.IsActive {
		return user.RefreshOutput{}, user.ErrInactive
	}

	access, err := uc.tokens.CreateAccessToken(scope.Payload{UserID: u.ID, Email: u.Email, Role: u.Role, IsStaff: u.IsStaff})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Refresh CreateAccessToken: %v", err)
		return user.RefreshOutput{}, err
	}
	return user.RefreshOutput{Access: access}, nil
}
