package http

import (
	"github.com/gin-gonic/gin"

	"project-tracker/internal/middleware"
)

// RegisterRoutes maps the /users endpoints. Sign-in routes are public; register and login are rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	users := rg.Group("/users")
	{
		users.POST("/register", mw.RateLimit(), h.Register)
		users.POST("/login", mw.RateLimit(), h.Login)
		users.POST("/refresh", h.Refresh)
		users.POST("/google-login", h.GoogleLogin)
		users.GET("/google-config", h.GoogleConfig)

		users.GET("/me", mw.Auth(), h.Me)
		users.GET("/find-by-email", mw.Auth(), h.FindByEmail)
		users.GET("", mw.Auth(), h.List)
		users.GET("/:id", mw.Auth(), h.Detail)
		users.PUT("/:id", mw.Auth(), h.Update)
		users.PATCH("/:id", mw.Auth(), h.Update)
		users.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
