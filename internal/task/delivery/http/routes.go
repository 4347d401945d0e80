package http

import (
	"github.com/gin-gonic/gin"

	"project-tracker/internal/middleware"
)

// RegisterRoutes maps the /tasks endpoints. All routes require authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.GET("/gantt", h.Gantt)
		tasks.GET("/calendar", h.Calendar)

		reports := tasks.Group("/reports")
		reports.GET("/completed", h.Completed)
		reports.GET("/active", h.Active)
		reports.GET("/by-user/:user_id", h.ByUser)
		reports.GET("/by-date", h.ByDate)
		reports.GET("/summary", h.Summary)

		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.PATCH("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/calendar-sync", h.SyncCalendar)
	}
}
