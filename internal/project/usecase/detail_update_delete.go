package usecase

import (
	"context"
	"errors"

	"project-tracker/internal/model"
	"project-tracker/internal/project"
	repo "project-tracker/internal/project/repository"
)

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (project.ProjectOutput, error) {
	p, err := uc.getVisible(ctx, sc, id)
	if err != nil {
		if !errors.Is(err, project.ErrNotFound) {
			uc.l.Errorf(ctx, "uc.Detail GetOne: %v", err)
		}
		return project.ProjectOutput{}, err
	}

	out, err := uc.output(ctx, p)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail output: %v", err)
		return project.ProjectOutput{}, err
	}
	return out, nil
}

// Update applies a partial update. Only the owner or staff may modify a project.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input project.UpdateInput) (project.ProjectOutput, error) {
	p, err := uc.getVisible(ctx, sc, input.ID)
	if err != nil {
		if !errors.Is(err, project.ErrNotFound) {
			uc.l.Errorf(ctx, "uc.Update GetOne: %v", err)
		}
		return project.ProjectOutput{}, err
	}
	if !sc.CanModify(p.OwnerID) {
		return project.ProjectOutput{}, project.ErrForbidden
	}

	opt := mergeUpdate(p, input)
	if err := validate(opt.Progress, opt.StartDate, opt.EndDate); err != nil {
		return project.ProjectOutput{}, err
	}

	updated, err := uc.repo.Update(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update Update: %v", err)
		return project.ProjectOutput{}, err
	}
	if updated.ID == 0 {
		return project.ProjectOutput{}, project.ErrNotFound
	}

	out, err := uc.output(ctx, updated)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update output: %v", err)
		return project.ProjectOutput{}, err
	}
	return out, nil
}

// Delete removes a project and its tasks. Only the owner or staff may delete it.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	p, err := uc.getVisible(ctx, sc, id)
	if err != nil {
		if !errors.Is(err, project.ErrNotFound) {
			uc.l.Errorf(ctx, "uc.Delete GetOne: %v", err)
		}
		return err
	}
	if !sc.CanModify(p.OwnerID) {
		return project.ErrForbidden
	}

	if err := uc.repo.Delete(ctx, p.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete Delete: %v", err)
		return err
	}
	return nil
}

func mergeUpdate(p model.Project, in project.UpdateInput) repo.UpdateOptions {
	opt := repo.UpdateOptions{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Status:         p.Status,
		Progress:       p.Progress,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		LocationName:   p.LocationName,
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		GeofenceRadius: p.GeofenceRadius,
	}
	if in.Name != nil {
		opt.Name = *in.Name
	}
	if in.Description != nil {
		opt.Description = *in.Description
	}
	if in.Status != nil {
		opt.Status = *in.Status
	}
	if in.Progress != nil {
		opt.Progress = *in.Progress
	}
	if in.StartDate != nil {
		opt.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		opt.EndDate = *in.EndDate
	}
	if in.LocationName != nil {
		opt.LocationName = *in.LocationName
	}
	if in.Latitude != nil {
		opt.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		opt.Longitude = in.Longitude
	}
	if in.GeofenceRadius != nil {
		opt.GeofenceRadius = in.GeofenceRadius
	}
	return opt
}
