package http

import (
	"github.com/gin-gonic/gin"

	"project-tracker/internal/middleware"
)

// RegisterRoutes maps the /projects endpoints. All routes require authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	projects := rg.Group("/projects", mw.Auth())
	{
		projects.POST("", h.Create)
		projects.GET("", h.List)
		projects.GET("/:id", h.Detail)
		projects.PUT("/:id", h.Update)
		projects.PATCH("/:id", h.Update)
		projects.DELETE("/:id", h.Delete)
	}
}
