package usecase

import (
	"context"
	"time"

	projectRepo "project-tracker/internal/project/repository"
	"project-tracker/internal/task"
	"project-tracker/internal/task/repository"
	userRepo "project-tracker/internal/user/repository"
	"project-tracker/pkg/datemath"
	"project-tracker/pkg/gcalendar"
	pkgLog "project-tracker/pkg/log"
	"project-tracker/pkg/progress"
)

// Calendar mirrors tasks as calendar events. *gcalendar.Client implements it.
type Calendar interface {
	UpsertEvent(ctx context.Context, req gcalendar.EventRequest) (gcalendar.Event, error)
}

type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	projectRepo projectRepo.Repository
	userRepo    userRepo.Repository
	calendar    Calendar
	calendarID  string
	dateMath    *datemath.Parser
	estimator   *progress.Estimator
	now         func() time.Time
}

// New creates a new task UseCase instance. A nil calendar disables SyncCalendar.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	projectRepo projectRepo.Repository,
	userRepo userRepo.Repository,
	calendar Calendar,
	calendarID string,
	dateMath *datemath.Parser,
	estimator *progress.Estimator,
) task.UseCase {
	return &implUseCase{
		l:           l,
		repo:        repo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		calendar:    calendar,
		calendarID:  calendarID,
		dateMath:    dateMath,
		estimator:   estimator,
		now:         estimator.Now,
	}
}
