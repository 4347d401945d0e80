package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	taskUC "project-tracker/internal/task/usecase"
	"project-tracker/pkg/datemath"
	"project-tracker/pkg/encrypter"
	"project-tracker/pkg/googleauth"
	"project-tracker/pkg/log"
	"project-tracker/pkg/progress"
	"project-tracker/pkg/scope"
	"project-tracker/pkg/validation"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	server          *http.Server
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Storage
	db *sqlx.DB

	// Auth
	tokens          scope.Manager
	encrypter       encrypter.Encrypter
	google          googleauth.Verifier
	rateLimitPerMin int
	allowedOrigins  []string

	// Task domain
	calendar   taskUC.Calendar
	calendarID string
	dateMath   *datemath.Parser
	estimator  *progress.Estimator
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	DB *sqlx.DB

	Tokens          scope.Manager
	Encrypter       encrypter.Encrypter
	Google          googleauth.Verifier
	RateLimitPerMin int
	AllowedOrigins  []string

	// Calendar is optional; nil disables task calendar sync.
	Calendar   taskUC.Calendar
	CalendarID string
	DateMath   *datemath.Parser
	Estimator  *progress.Estimator
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if err := validation.Register(); err != nil {
		return nil, fmt.Errorf("failed to register validations: %w", err)
	}

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		db:              cfg.DB,
		tokens:          cfg.Tokens,
		encrypter:       cfg.Encrypter,
		google:          cfg.Google,
		rateLimitPerMin: cfg.RateLimitPerMin,
		allowedOrigins:  cfg.AllowedOrigins,
		calendar:        cfg.Calendar,
		calendarID:      cfg.CalendarID,
		dateMath:        cfg.DateMath,
		estimator:       cfg.Estimator,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	srv.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	if srv.tokens == nil {
		return errors.New("token manager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}
	if srv.google == nil {
		return errors.New("google verifier is required")
	}
	if srv.dateMath == nil {
		return errors.New("date math parser is required")
	}
	if srv.estimator == nil {
		return errors.New("progress estimator is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
