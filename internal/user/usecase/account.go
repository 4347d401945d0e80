package usecase

import (
	"context"
	"errors"

	"project-tracker/internal/model"
	"project-tracker/internal/user"
	repo "project-tracker/internal/user/repository"
)

// Me returns the caller's own account.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	return uc.Detail(ctx, sc, sc.UserID)
}

// List returns every user; any authenticated caller may browse the directory.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.User, error) {
	users, err := uc.repo.List(ctx, repo.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List List: %v", err)
		return nil, err
	}
	return users, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (model.User, error) {
	u, err := uc.getUser(ctx, repo.GetOneOptions{ID: id})
	if err != nil && !errors.Is(err, user.ErrNotFound) {
		uc.l.Errorf(ctx, "uc.Detail GetOne: %v", err)
	}
	return u, err
}

func (uc *implUseCase) FindByEmail(ctx context.Context, sc model.Scope, email string) (model.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return model.User{}, user.ErrNotFound
	}
	u, err := uc.getUser(ctx, repo.GetOneOptions{Email: email})
	if err != nil && !errors.Is(err, user.ErrNotFound) {
		uc.l.Errorf(ctx, "uc.FindByEmail GetOne: %v", err)
	}
	return u, err
}

// Update changes a profile. Only staff or the user themself may update it;
// a role change from a non-staff caller is ignored.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input user.UpdateInput) (model.User, error) {
	existing, err := uc.getUser(ctx, repo.GetOneOptions{ID: input.ID})
	if err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			uc.l.Errorf(ctx, "uc.Update GetOne: %v", err)
		}
		return model.User{}, err
	}
	if !sc.CanModify(existing.ID) {
		return model.User{}, user.ErrForbidden
	}

	role := existing.Role
	if sc.IsStaff {
		role = coalesce(input.Role, existing.Role)
	}
	email := existing.Email
	if input.Email != nil {
		email = normalizeEmail(*input.Email)
	}

	u, err := uc.repo.Update(ctx, repo.UpdateOptions{
		ID:        existing.ID,
		Email:     email,
		FirstName: coalesce(input.FirstName, existing.FirstName),
		LastName:  coalesce(input.LastName, existing.LastName),
		Role:      role,
	})
	if errors.Is(err, repo.ErrDuplicateEmail) {
		return model.User{}, user.ErrEmailExists
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update Update: %v", err)
		return model.User{}, err
	}
	return u, nil
}
