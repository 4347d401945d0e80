package usecase

import (
	"time"

	"project-tracker/internal/project"
	"project-tracker/internal/project/repository"
	"project-tracker/pkg/log"
	"project-tracker/pkg/progress"
)

// implUseCase is the private implementation of project.UseCase.
type implUseCase struct {
	repo      repository.Repository
	l         log.Logger
	estimator *progress.Estimator
	now       func() time.Time
}

// New creates a new project UseCase implementation. Progress figures are
// computed against the estimator's clock.
func New(repo repository.Repository, l log.Logger, estimator *progress.Estimator) project.UseCase {
	return &implUseCase{
		repo:      repo,
		l:         l,
		estimator: estimator,
		now:       estimator.Now,
	}
}
