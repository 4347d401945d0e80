package http

import (
	"project-tracker/internal/project"
	"project-tracker/pkg/log"
)

type handler struct {
	l  log.Logger
	uc project.UseCase
}

// New creates a new HTTP handler for the project domain.
func New(l log.Logger, uc project.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
