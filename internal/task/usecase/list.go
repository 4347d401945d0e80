package usecase

import (
	"context"

	"project-tracker/internal/model"
	"project-tracker/internal/task"
	repo "project-tracker/internal/task/repository"
)

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) ([]task.TaskOutput, error) {
	return uc.list(ctx, "List", repo.ListOptions{
		VisibleTo:  visibleTo(sc),
		ProjectID:  input.ProjectID,
		AssigneeID: input.AssigneeID,
		Status:     input.Status,
	})
}

func (uc *implUseCase) Gantt(ctx context.Context, sc model.Scope, projectID int64) ([]task.TaskOutput, error) {
	return uc.list(ctx, "Gantt", repo.ListOptions{
		VisibleTo: visibleTo(sc),
		ProjectID: projectID,
	})
}

func (uc *implUseCase) Calendar(ctx context.Context, sc model.Scope, input task.RangeInput) ([]task.TaskOutput, error) {
	start, end, err := uc.parseRange(input)
	if err != nil {
		return nil, err
	}
	return uc.list(ctx, "Calendar", repo.ListOptions{
		VisibleTo:   visibleTo(sc),
		ActiveFrom:  start,
		ActiveUntil: end,
	})
}

func (uc *implUseCase) list(ctx context.Context, op string, opt repo.ListOptions) ([]task.TaskOutput, error) {
	tasks, err := uc.repo.List(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s List: %v", op, err)
		return nil, err
	}
	return uc.outputs(tasks), nil
}
