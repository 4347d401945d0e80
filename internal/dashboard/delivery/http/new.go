package http

import (
	"project-tracker/internal/dashboard"
	"project-tracker/pkg/log"
)

type handler struct {
	l  log.Logger
	uc dashboard.UseCase
}

// New creates a new HTTP handler for the dashboard.
func New(l log.Logger, uc dashboard.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
