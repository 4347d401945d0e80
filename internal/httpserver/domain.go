package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	dashboardHTTP "project-tracker/internal/dashboard/delivery/http"
	dashboardUC "project-tracker/internal/dashboard/usecase"
	"project-tracker/internal/middleware"
	projectHTTP "project-tracker/internal/project/delivery/http"
	projectRepo "project-tracker/internal/project/repository/sqldb"
	projectUC "project-tracker/internal/project/usecase"
	taskHTTP "project-tracker/internal/task/delivery/http"
	taskRepo "project-tracker/internal/task/repository/sqldb"
	taskUC "project-tracker/internal/task/usecase"
	userHTTP "project-tracker/internal/user/delivery/http"
	userRepo "project-tracker/internal/user/repository/sqldb"
	userUC "project-tracker/internal/user/usecase"
)

// registerDomainRoutes builds every domain and mounts it under api.
//
// Each domain follows the same steps:
//  1. Repository over the shared sqlx pool
//  2. UseCase
//  3. HTTP handler and routes
func (srv *HTTPServer) registerDomainRoutes(api *gin.RouterGroup, mw middleware.Middleware) {
	ctx := context.Background()

	// Repositories
	users := userRepo.New(srv.db, srv.l)
	projects := projectRepo.New(srv.db, srv.l)
	tasks := taskRepo.New(srv.db, srv.l)

	// Users
	userUseCase := userUC.New(users, srv.l, srv.encrypter, srv.tokens, srv.google)
	userHTTP.RegisterRoutes(api, userHTTP.New(srv.l, userUseCase), mw)

	// Projects
	projectUseCase := projectUC.New(projects, srv.l, srv.estimator)
	projectHTTP.RegisterRoutes(api, projectHTTP.New(srv.l, projectUseCase), mw)

	// Tasks
	taskUseCase := taskUC.New(srv.l, tasks, projects, users, srv.calendar, srv.calendarID, srv.dateMath, srv.estimator)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, taskUseCase), mw)
	if srv.calendar == nil {
		srv.l.Infof(ctx, "Google Calendar not configured, task calendar sync disabled")
	}

	// Dashboard
	dashboardUseCase := dashboardUC.New(srv.l, projectUseCase, taskUseCase, srv.estimator.Now, srv.dateMath.Location())
	dashboardHTTP.RegisterRoutes(api, dashboardHTTP.New(srv.l, dashboardUseCase), mw)

	srv.l.Infof(ctx, "Domains registered: users, projects, tasks, dashboard")
}
