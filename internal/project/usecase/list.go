package usecase

import (
	"context"

	"project-tracker/internal/model"
	"project-tracker/internal/project"
	repo "project-tracker/internal/project/repository"
)

// List returns the projects visible to the caller, newest first.
// Staff see every project; others see projects they own or hold a task in.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input project.ListInput) ([]project.ProjectOutput, error) {
	projects, err := uc.repo.List(ctx, repo.ListOptions{VisibleTo: visibleTo(sc), Limit: input.Limit})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List List: %v", err)
		return nil, err
	}

	out, err := uc.withProgress(ctx, projects)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List withProgress: %v", err)
		return nil, err
	}
	return out, nil
}
