package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"project-tracker/internal/model"
	"project-tracker/pkg/log"
	"project-tracker/pkg/scope"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestMiddleware(perMin int, origins ...string) (Middleware, scope.Manager) {
	tokens := scope.New("test-secret", "test", time.Hour, time.Hour)
	return New(log.NewNop(), tokens, perMin, origins), tokens
}

func TestAuth(t *testing.T) {
	mw, tokens := newTestMiddleware(30)
	access, _ := tokens.CreateAccessToken(scope.Payload{UserID: 7, Email: "a@example.com", IsStaff: true})
	refresh, _ := tokens.CreateRefreshToken(scope.Payload{UserID: 7})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"Missing header", "", http.StatusUnauthorized},
		{"Wrong scheme", "Basic " + access, http.StatusUnauthorized},
		{"Garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"Refresh token rejected", "Bearer " + refresh, http.StatusUnauthorized},
		{"Valid access token", "Bearer " + access, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got model.Scope
			r := gin.New()
			r.GET("/p", mw.Auth(), func(c *gin.Context) {
				got, _ = GetScope(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/p", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && (got.UserID != 7 || !got.IsStaff) {
				t.Errorf("unexpected scope: %+v", got)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	// 10/min gives a burst of one request.
	mw, _ := newTestMiddleware(10)
	r := gin.New()
	r.POST("/login", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := do("10.0.0.1"); code != http.StatusOK {
		t.Fatalf("first request status = %d", code)
	}
	if code := do("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", code)
	}
	if code := do("10.0.0.2"); code != http.StatusOK {
		t.Errorf("other client status = %d, want 200", code)
	}
}

func TestRateLimiterBurstFloor(t *testing.T) {
	rl := newRateLimiter(3)
	if rl.burst != 1 {
		t.Errorf("burst = %d, want 1", rl.burst)
	}
	if !rl.Allow("k") {
		t.Errorf("first call should be allowed")
	}
}

func TestRequestID(t *testing.T) {
	mw, _ := newTestMiddleware(30)
	r := gin.New()
	r.Use(mw.RequestID())
	var seen string
	r.GET("/x", func(c *gin.Context) {
		seen = log.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		if seen == "" || w.Header().Get(RequestIDHeader) != seen {
			t.Errorf("request id not propagated: ctx=%q header=%q", seen, w.Header().Get(RequestIDHeader))
		}
	})

	t.Run("Forwarded", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if seen != "abc-123" {
			t.Errorf("request id = %q, want abc-123", seen)
		}
	})
}

func TestCORS(t *testing.T) {
	mw, _ := newTestMiddleware(30, "http://localhost:3000")
	r := gin.New()
	r.Use(mw.CORS())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("Allowed origin preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/x", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", w.Code)
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
			t.Errorf("missing allow origin header")
		}
	})

	t.Run("Unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Origin", "http://evil.test")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "" {
			t.Errorf("unexpected allow origin header")
		}
	})
}
