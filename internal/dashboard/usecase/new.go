package usecase

import (
	"time"

	"project-tracker/internal/dashboard"
	"project-tracker/internal/project"
	"project-tracker/internal/task"
	pkgLog "project-tracker/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	projectUC project.UseCase
	taskUC    task.UseCase
	now       func() time.Time
	location  *time.Location
}

// New creates a dashboard UseCase. Due dates are compared with today in location.
func New(l pkgLog.Logger, projectUC project.UseCase, taskUC task.UseCase, now func() time.Time, location *time.Location) dashboard.UseCase {
	if location == nil {
		location = time.UTC
	}
	return &implUseCase{
		l:         l,
		projectUC: projectUC,
		taskUC:    taskUC,
		now:       now,
		location:  location,
	}
}
