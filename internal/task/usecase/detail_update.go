package usecase

import (
	"context"
	"errors"

	"project-tracker/internal/model"
	"project-tracker/internal/task"
	repo "project-tracker/internal/task/repository"
)

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id int64) (task.TaskOutput, error) {
	t, err := uc.getVisible(ctx, sc, id)
	if err != nil {
		if !errors.Is(err, task.ErrNotFound) {
			uc.l.Errorf(ctx, "uc.Detail GetOne: %v", err)
		}
		return task.TaskOutput{}, err
	}
	return output(t, uc.now()), nil
}

// Update applies a partial update. Staff, the project owner and the assignee may modify a task.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.TaskOutput, error) {
	t, err := uc.getVisible(ctx, sc, input.ID)
	if err != nil {
		if !errors.Is(err, task.ErrNotFound) {
			uc.l.Errorf(ctx, "uc.Update GetOne: %v", err)
		}
		return task.TaskOutput{}, err
	}
	if !canModify(sc, t) {
		return task.TaskOutput{}, task.ErrForbidden
	}

	opt := mergeUpdate(t, input)
	if err := validate(opt.Status, opt.Progress, opt.StartDate, opt.EndDate); err != nil {
		return task.TaskOutput{}, err
	}

	// Only references that change are checked again.
	var (
		projectID int64
		assignee  *int64
		deps      []int64
	)
	if opt.ProjectID != t.ProjectID {
		projectID = opt.ProjectID
	}
	if input.AssigneeID != nil {
		assignee = opt.AssigneeID
	}
	if input.Dependencies != nil {
		deps = opt.Dependencies
	}
	if err := uc.checkReferences(ctx, sc, t.ID, projectID, assignee, deps); err != nil {
		return task.TaskOutput{}, err
	}

	updated, err := uc.repo.Update(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update Update: %v", err)
		return task.TaskOutput{}, err
	}
	if updated.ID == 0 {
		return task.TaskOutput{}, task.ErrNotFound
	}

	return output(updated, uc.now()), nil
}

func mergeUpdate(t model.Task, in task.UpdateInput) repo.UpdateOptions {
	opt := repo.UpdateOptions{
		ID:           t.ID,
		ProjectID:    t.ProjectID,
		Title:        t.Title,
		Description:  t.Description,
		AssigneeID:   t.AssigneeID,
		StartDate:    t.StartDate,
		EndDate:      t.EndDate,
		DueDate:      t.DueDate,
		Status:       t.Status,
		Progress:     t.Progress,
		Dependencies: t.Dependencies,
	}
	if in.ProjectID != nil {
		opt.ProjectID = *in.ProjectID
	}
	if in.Title != nil {
		opt.Title = *in.Title
	}
	if in.Description != nil {
		opt.Description = *in.Description
	}
	if in.AssigneeID != nil {
		if *in.AssigneeID == 0 {
			opt.AssigneeID = nil
		} else {
			opt.AssigneeID = in.AssigneeID
		}
	}
	if in.StartDate != nil {
		opt.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		opt.EndDate = *in.EndDate
	}
	if in.DueDate != nil {
		opt.DueDate = *in.DueDate
	}
	if in.Status != nil {
		opt.Status = *in.Status
	}
	if in.Progress != nil {
		opt.Progress = *in.Progress
	}
	if in.Dependencies != nil {
		opt.Dependencies = *in.Dependencies
	}
	return opt
}
