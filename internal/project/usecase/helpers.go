package usecase

import (
	"context"

	"project-tracker/internal/model"
	"project-tracker/internal/project"
	repo "project-tracker/internal/project/repository"
	"project-tracker/pkg/progress"
)

// visibleTo returns the user id projects must be visible to, 0 for staff.
func visibleTo(sc model.Scope) int64 {
	if sc.IsStaff {
		return 0
	}
	return sc.UserID
}

func validate(progressValue int, start, end model.Date) error {
	if progressValue < 0 || progressValue > 100 {
		return project.ErrInvalidProgress
	}
	if start.After(end) {
		return project.ErrInvalidDateRange
	}
	return nil
}

func progressInput(manual int, start, end, due model.Date) progress.Input {
	return progress.Input{
		Manual: float64(manual),
		Start:  start.Ptr(),
		End:    end.Ptr(),
		Due:    due.Ptr(),
	}
}

// getVisible loads a project the caller can see, or project.ErrNotFound.
func (uc *implUseCase) getVisible(ctx context.Context, sc model.Scope, id int64) (model.Project, error) {
	p, err := uc.repo.GetOne(ctx, repo.GetOneOptions{ID: id, VisibleTo: visibleTo(sc)})
	if err != nil {
		return model.Project{}, err
	}
	if p.ID == 0 {
		return model.Project{}, project.ErrNotFound
	}
	return p, nil
}

// withProgress rolls the progress of every project up from its tasks.
// All projects are evaluated at the same instant.
func (uc *implUseCase) withProgress(ctx context.Context, projects []model.Project) ([]project.ProjectOutput, error) {
	ids := make([]int64, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}

	tasks, err := uc.repo.ListTaskProgress(ctx, ids)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	out := make([]project.ProjectOutput, len(projects))
	for i, p := range projects {
		results := make([]progress.Result, len(tasks[p.ID]))
		for j, t := range tasks[p.ID] {
			results[j] = progress.Compute(progressInput(t.Progress, t.StartDate, t.EndDate, t.DueDate), now)
		}
		out[i] = project.ProjectOutput{
			Project:   p,
			Progress:  progress.Rollup(progressInput(p.Progress, p.StartDate, p.EndDate, model.Date{}), results, now),
			TaskCount: len(results),
		}
	}
	return out, nil
}

func (uc *implUseCase) output(ctx context.Context, p model.Project) (project.ProjectOutput, error) {
	out, err := uc.withProgress(ctx, []model.Project{p})
	if err != nil {
		return project.ProjectOutput{}, err
	}
	return out[0], nil
}
