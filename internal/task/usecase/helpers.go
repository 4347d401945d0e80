package usecase

import (
	"context"
	"fmt"
	"time"

	"project-tracker/internal/model"
	projectRepo "project-tracker/internal/project/repository"
	"project-tracker/internal/task"
	repo "project-tracker/internal/task/repository"
	userRepo "project-tracker/internal/user/repository"
	"project-tracker/pkg/progress"
)

// visibleTo returns the user id tasks must be visible to, 0 for staff.
func visibleTo(sc model.Scope) int64 {
	if sc.IsStaff {
		return 0
	}
	return sc.UserID
}

// canModify allows staff, the owner of the task's project and the assignee.
func canModify(sc model.Scope, t model.Task) bool {
	return sc.CanModify(t.ProjectOwnerID) || t.IsAssignedTo(sc.UserID)
}

func validate(status string, progressValue int, start, end model.Date) error {
	if !model.IsTaskStatus(status) {
		return task.ErrInvalidStatus
	}
	if progressValue < 0 || progressValue > 100 {
		return task.ErrInvalidProgress
	}
	if start.After(end) {
		return task.ErrInvalidDateRange
	}
	return nil
}

// output attaches progress figures; the end date falls back to the due date.
func output(t model.Task, now time.Time) task.TaskOutput {
	return task.TaskOutput{
		Task: t,
		Progress: progress.Compute(progress.Input{
			Manual: float64(t.Progress),
			Start:  t.StartDate.Ptr(),
			End:    t.EndDate.Ptr(),
			Due:    t.DueDate.Ptr(),
		}, now),
	}
}

// outputs evaluates every task at the same instant.
func (uc *implUseCase) outputs(tasks []model.Task) []task.TaskOutput {
	now := uc.now()
	out := make([]task.TaskOutput, len(tasks))
	for i, t := range tasks {
		out[i] = output(t, now)
	}
	return out
}

// getVisible loads a task the caller can see, or task.ErrNotFound.
func (uc *implUseCase) getVisible(ctx context.Context, sc model.Scope, id int64) (model.Task, error) {
	t, err := uc.repo.GetOne(ctx, repo.GetOneOptions{ID: id, VisibleTo: visibleTo(sc)})
	if err != nil {
		return model.Task{}, err
	}
	if t.ID == 0 {
		return model.Task{}, task.ErrNotFound
	}
	return t, nil
}

// checkProject ensures the caller can see the target project.
func (uc *implUseCase) checkProject(ctx context.Context, sc model.Scope, projectID int64) error {
	p, err := uc.projectRepo.GetOne(ctx, projectRepo.GetOneOptions{ID: projectID, VisibleTo: visibleTo(sc)})
	if err != nil {
		return err
	}
	if p.ID == 0 {
		return task.ErrProjectNotFound
	}
	return nil
}

func (uc *implUseCase) checkAssignee(ctx context.Context, assigneeID *int64) error {
	if assigneeID == nil {
		return nil
	}
	u, err := uc.userRepo.GetOne(ctx, userRepo.GetOneOptions{ID: *assigneeID})
	if err != nil {
		return err
	}
	if u.ID == 0 {
		return task.ErrAssigneeNotFound
	}
	return nil
}

// checkDependencies ensures every dependency is another task visible to the caller.
func (uc *implUseCase) checkDependencies(ctx context.Context, sc model.Scope, taskID int64, deps []int64) error {
	if len(deps) == 0 {
		return nil
	}

	unique := make(map[int64]bool, len(deps))
	for _, id := range deps {
		if id == taskID || id <= 0 {
			return task.ErrInvalidDependency
		}
		unique[id] = true
	}

	ids := make([]int64, 0, len(unique))
	for id := range unique {
		ids = append(ids, id)
	}
	found, err := uc.repo.List(ctx, repo.ListOptions{IDs: ids, VisibleTo: visibleTo(sc)})
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return task.ErrInvalidDependency
	}
	return nil
}

// parseRange resolves optional date bounds relative to now.
func (uc *implUseCase) parseRange(in task.RangeInput) (model.Date, model.Date, error) {
	now := uc.now()
	start, err := uc.parseBound(in.Start, now)
	if err != nil {
		return model.Date{}, model.Date{}, err
	}
	end, err := uc.parseBound(in.End, now)
	if err != nil {
		return model.Date{}, model.Date{}, err
	}
	if start.After(end) {
		return model.Date{}, model.Date{}, task.ErrInvalidDateRange
	}
	return start, end, nil
}

func (uc *implUseCase) parseBound(expr string, now time.Time) (model.Date, error) {
	if expr == "" {
		return model.Date{}, nil
	}
	t, err := uc.dateMath.ParseDate(expr, now)
	if err != nil {
		return model.Date{}, fmt.Errorf("%w: %q", task.ErrInvalidDateExpr, expr)
	}
	return model.NewDate(t), nil
}
