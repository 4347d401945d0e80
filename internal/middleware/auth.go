package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"project-tracker/internal/model"
	"project-tracker/pkg/response"
)

const scopeKey = "scope"

// Auth requires a valid "Authorization: Bearer <access token>" header and stores the caller's scope.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			response.Unauthorized(c)
			return
		}

		payload, err := m.jwtManager.VerifyAccessToken(strings.TrimSpace(token))
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID:  payload.UserID,
			Email:   payload.Email,
			Role:    payload.Role,
			IsStaff: payload.IsStaff,
		})
		c.Next()
	}
}

// GetScope returns the scope stored by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
