package http

import (
	"github.com/gin-gonic/gin"

	"project-tracker/internal/middleware"
)

// RegisterRoutes maps the /dashboard endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Group("/dashboard", mw.Auth()).GET("/summary", h.Summary)
}
