package usecase

import (
	"context"
	"math"
	"sort"

	"project-tracker/internal/model"
	"project-tracker/internal/task"
	repo "project-tracker/internal/task/repository"
	userRepo "project-tracker/internal/user/repository"
)

// summaryStatuses are the statuses always present in the summary counts.
var summaryStatuses = []string{model.TaskStatusDone, model.TaskStatusInProgress, model.TaskStatusOnHold}

func (uc *implUseCase) Completed(ctx context.Context, sc model.Scope) ([]task.TaskOutput, error) {
	return uc.list(ctx, "Completed", repo.ListOptions{
		VisibleTo: visibleTo(sc),
		Status:    model.TaskStatusDone,
	})
}

func (uc *implUseCase) Active(ctx context.Context, sc model.Scope) ([]task.TaskOutput, error) {
	return uc.list(ctx, "Active", repo.ListOptions{
		VisibleTo:     visibleTo(sc),
		ExcludeStatus: model.TaskStatusDone,
	})
}

func (uc *implUseCase) ByUser(ctx context.Context, sc model.Scope, userID int64) ([]task.TaskOutput, error) {
	return uc.list(ctx, "ByUser", repo.ListOptions{
		VisibleTo:  visibleTo(sc),
		AssigneeID: userID,
	})
}

func (uc *implUseCase) ByDate(ctx context.Context, sc model.Scope, input task.RangeInput) ([]task.TaskOutput, error) {
	start, end, err := uc.parseRange(input)
	if err != nil {
		return nil, err
	}
	return uc.list(ctx, "ByDate", repo.ListOptions{
		VisibleTo: visibleTo(sc),
		StartFrom: start,
		EndUntil:  end,
	})
}

// Summary counts visible tasks per status and per assignee. Every user is listed,
// busiest first.
func (uc *implUseCase) Summary(ctx context.Context, sc model.Scope) (task.SummaryOutput, error) {
	tasks, err := uc.repo.List(ctx, repo.ListOptions{VisibleTo: visibleTo(sc)})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summary List: %v", err)
		return task.SummaryOutput{}, err
	}
	users, err := uc.userRepo.List(ctx, userRepo.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Summary userRepo.List: %v", err)
		return task.SummaryOutput{}, err
	}

	counts := make(map[string]int, len(summaryStatuses))
	for _, s := range summaryStatuses {
		counts[s] = 0
	}
	total := make(map[int64]int)
	done := make(map[int64]int)
	for _, t := range tasks {
		if _, ok := counts[t.Status]; ok {
			counts[t.Status]++
		}
		if t.AssigneeID == nil {
			continue
		}
		total[*t.AssigneeID]++
		if t.IsDone() {
			done[*t.AssigneeID]++
		}
	}

	stats := make([]task.UserStat, len(users))
	for i, u := range users {
		stats[i] = task.UserStat{
			ID:    u.ID,
			Name:  u.FullName(),
			Total: total[u.ID],
			Done:  done[u.ID],
			Rate:  completionRate(done[u.ID], total[u.ID]),
		}
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Total != stats[j].Total {
			return stats[i].Total > stats[j].Total
		}
		return stats[i].Rate > stats[j].Rate
	})

	return task.SummaryOutput{StatusCounts: counts, Users: stats}, nil
}

// completionRate is the rounded percentage of done tasks; halves round to even.
func completionRate(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.RoundToEven(100 * float64(done) / float64(total)))
}
