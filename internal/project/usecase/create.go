package usecase

import (
	"context"
	"strings"

	"project-tracker/internal/model"
	"project-tracker/internal/project"
	repo "project-tracker/internal/project/repository"
)

// Create adds a project owned by the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input project.CreateInput) (project.ProjectOutput, error) {
	if err := validate(input.Progress, input.StartDate, input.EndDate); err != nil {
		return project.ProjectOutput{}, err
	}

	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = model.ProjectStatusActive
	}

	p, err := uc.repo.Create(ctx, repo.CreateOptions{
		Name:           strings.TrimSpace(input.Name),
		Description:    input.Description,
		OwnerID:        sc.UserID,
		Status:         status,
		Progress:       input.Progress,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		LocationName:   input.LocationName,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		GeofenceRadius: input.GeofenceRadius,
		CreatedAt:      uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create Create: %v", err)
		return project.ProjectOutput{}, err
	}

	// A new project has no tasks yet.
	return project.ProjectOutput{
		Project:  p,
		Progress: uc.estimator.Rollup(progressInput(p.Progress, p.StartDate, p.EndDate, model.Date{}), nil),
	}, nil
}
