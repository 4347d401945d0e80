package usecase

import (
	"context"
	"sort"

	"project-tracker/internal/dashboard"
	"project-tracker/internal/model"
	"project-tracker/internal/project"
	"project-tracker/internal/task"
)

func (uc *implUseCase) Summary(ctx context.Context, sc model.Scope) (dashboard.SummaryOutput, error) {
	projects, err := uc.projectUC.List(ctx, sc, project.ListInput{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summary projectUC.List: %v", err)
		return dashboard.SummaryOutput{}, err
	}
	tasks, err := uc.taskUC.List(ctx, sc, task.ListInput{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summary taskUC.List: %v", err)
		return dashboard.SummaryOutput{}, err
	}

	out := dashboard.SummaryOutput{
		TotalProjects:  len(projects),
		RecentProjects: projects[:min(len(projects), dashboard.RecentProjectLimit)],
		UpcomingTasks:  uc.upcoming(tasks),
	}

	members := make(map[int64]bool)
	for _, p := range projects {
		members[p.Project.OwnerID] = true
	}
	for _, t := range tasks {
		if t.Task.IsDone() {
			out.Completed++
		} else {
			out.ActiveTasks++
		}
		if t.Task.AssigneeID != nil {
			members[*t.Task.AssigneeID] = true
		}
	}
	out.Members = len(members)

	return out, nil
}

// upcoming keeps unfinished tasks due within the upcoming window, soonest first.
func (uc *implUseCase) upcoming(tasks []task.TaskOutput) []task.TaskOutput {
	today := model.NewDate(uc.now().In(uc.location))
	until := today.Time.AddDate(0, 0, dashboard.UpcomingWindowDays)

	var due []task.TaskOutput
	for _, t := range tasks {
		d := t.Task.DueDate
		if t.Task.IsDone() || !d.Valid || d.Time.Before(today.Time) || d.Time.After(until) {
			continue
		}
		due = append(due, t)
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].Task.DueDate.Time.Before(due[j].Task.DueDate.Time)
	})
	return due[:min(len(due), dashboard.UpcomingTaskLimit)]
}
