package usecase

import (
	"time"

	"project-tracker/internal/user"
	"project-tracker/internal/user/repository"
	"project-tracker/pkg/encrypter"
	"project-tracker/pkg/googleauth"
	"project-tracker/pkg/log"
	"project-tracker/pkg/scope"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo   repository.Repository
	l      log.Logger
	enc    encrypter.Encrypter
	tokens scope.Manager
	google googleauth.Verifier
	now    func() time.Time
}

// New creates a new user UseCase implementation.
func New(repo repository.Repository, l log.Logger, enc encrypter.Encrypter, tokens scope.Manager, google googleauth.Verifier) user.UseCase {
	return &implUseCase{
		repo:   repo,
		l:      l,
		enc:    enc,
		tokens: tokens,
		google: google,
		now:    time.Now,
	}
}
