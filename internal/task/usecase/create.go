package usecase

import (
	"context"
	"errors"
	"strings"

	"project-tracker/internal/model"
	"project-tracker/internal/task"
	repo "project-tracker/internal/task/repository"
)

// Create adds a task to a project visible to the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.TaskOutput, error) {
	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = model.TaskStatusInProgress
	}
	if err := validate(status, input.Progress, input.StartDate, input.EndDate); err != nil {
		return task.TaskOutput{}, err
	}

	if input.ProjectID <= 0 {
		return task.TaskOutput{}, task.ErrProjectNotFound
	}
	if err := uc.checkReferences(ctx, sc, 0, input.ProjectID, input.AssigneeID, input.Dependencies); err != nil {
		return task.TaskOutput{}, err
	}

	t, err := uc.repo.Create(ctx, repo.CreateOptions{
		ProjectID:    input.ProjectID,
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		AssigneeID:   input.AssigneeID,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		DueDate:      input.DueDate,
		Status:       status,
		Progress:     input.Progress,
		Dependencies: input.Dependencies,
		CreatedAt:    uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create Create: %v", err)
		return task.TaskOutput{}, err
	}

	return output(t, uc.now()), nil
}

// checkReferences validates the project, assignee and dependencies of a task.
// Zero values are skipped.
func (uc *implUseCase) checkReferences(ctx context.Context, sc model.Scope, taskID, projectID int64, assigneeID *int64, deps []int64) error {
	if projectID != 0 {
		if err := uc.checkProject(ctx, sc, projectID); err != nil {
			uc.logUnexpected(ctx, "checkProject", err)
			return err
		}
	}
	if err := uc.checkAssignee(ctx, assigneeID); err != nil {
		uc.logUnexpected(ctx, "checkAssignee", err)
		return err
	}
	if err := uc.checkDependencies(ctx, sc, taskID, deps); err != nil {
		uc.logUnexpected(ctx, "checkDependencies", err)
		return err
	}
	return nil
}

// logUnexpected logs errors other than failed reference checks.
func (uc *implUseCase) logUnexpected(ctx context.Context, op string, err error) {
	switch {
	case errors.Is(err, task.ErrProjectNotFound), errors.Is(err, task.ErrAssigneeNotFound),
		errors.Is(err, task.ErrInvalidDependency):
	default:
		uc.l.Errorf(ctx, "uc.%s: %v", op, err)
	}
}
