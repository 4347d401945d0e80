package middleware

import (
	"project-tracker/pkg/log"
	"project-tracker/pkg/scope"
)

type Middleware struct {
	l              log.Logger
	jwtManager     scope.Manager
	limiter        *rateLimiter
	allowedOrigins map[string]bool
}

// New builds the middleware set. rateLimitPerMin applies to the RateLimit handler only.
func New(l log.Logger, jwtManager scope.Manager, rateLimitPerMin int, allowedOrigins []string) Middleware {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	return Middleware{
		l:              l,
		jwtManager:     jwtManager,
		limiter:        newRateLimiter(rateLimitPerMin),
		allowedOrigins: origins,
	}
}
