package usecase

import (
	"context"
	"strings"

	"project-tracker/internal/model"
	"project-tracker/internal/user"
	repo "project-tracker/internal/user/repository"
	"project-tracker/pkg/scope"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// coalesce returns *newVal when set, otherwise the existing value.
func coalesce(newVal *string, existing string) string {
	if newVal != nil {
		return *newVal
	}
	return existing
}

func (uc *implUseCase) getUser(ctx context.Context, opt repo.GetOneOptions) (model.User, error) {
	u, err := uc.repo.GetOne(ctx, opt)
	if err != nil {
		return model.User{}, err
	}
	if u.ID == 0 {
		return model.User{}, user.ErrNotFound
	}
	return u, nil
}

// issueTokens stamps the sign-in and returns a fresh token pair for u.
func (uc *implUseCase) issueTokens(ctx context.Context, u model.User) (user.TokenOutput, error) {
	now := uc.now()
	if err := uc.repo.SetLastLogin(ctx, u.ID, now); err != nil {
		uc.l.Errorf(ctx, "uc.issueTokens SetLastLogin: %v", err)
		return user.TokenOutput{}, err
	}
	u.LastLogin = &now

	payload := scope.Payload{UserID: u.ID, Email: u.Email, Role: u.Role, IsStaff: u.IsStaff}
	access, err := uc.tokens.CreateAccessToken(payload)
	if err != nil {
		uc.l.Errorf(ctx, "uc.issueTokens CreateAccessToken: %v", err)
		return user.TokenOutput{}, err
	}
	refresh, err := uc.tokens.CreateRefreshToken(payload)
	if err != nil {
		uc.l.Errorf(ctx, "uc.issueTokens CreateRefreshToken: %v", err)
		return user.TokenOutput{}, err
	}
	return user.TokenOutput{Access: access, Refresh: refresh, User: u}, nil
}
