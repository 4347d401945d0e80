package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/oklog/run"

	"project-tracker/config"
	_ "project-tracker/docs" // Swagger docs
	"project-tracker/internal/httpserver"
	taskUC "project-tracker/internal/task/usecase"
	"project-tracker/pkg/database"
	"project-tracker/pkg/datemath"
	"project-tracker/pkg/encrypter"
	"project-tracker/pkg/gcalendar"
	"project-tracker/pkg/googleauth"
	"project-tracker/pkg/log"
	"project-tracker/pkg/progress"
	"project-tracker/pkg/scope"
)

const tokenIssuer = "project-tracker"

// @title       Project Tracker API
// @description Projects, tasks, Gantt and calendar feeds with manual, dynamic and effective progress.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Project Tracker API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := database.Open(ctx, database.Config{
		Driver:       cfg.Database.Driver,
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	}, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
	}
	defer db.Close()

	if cfg.Database.Migrate {
		migrator, err := database.NewMigrator(db, cfg.Database.Driver, logger)
		if err != nil {
			logger.Fatalf(ctx, "Failed to create migrator: %v", err)
		}
		if err := migrator.Up(ctx); err != nil {
			logger.Fatalf(ctx, "Failed to run migrations: %v", err)
		}
		logger.Info(ctx, "Database migrations applied")
	}

	// 4. Auth
	tokens := scope.New(cfg.JWT.Secret, tokenIssuer, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	google, err := googleauth.New(ctx, cfg.Google.ClientID)
	if err != nil {
		logger.Warnf(ctx, "Google sign-in not available: %v", err)
		google, _ = googleauth.New(ctx, "")
	}

	// 5. Date math and progress
	dateMathParser, err := datemath.NewParser(cfg.Google.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Google.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}
	estimator := progress.New(progress.SystemClock)

	// 6. Google Calendar (optional)
	var calendar taskUC.Calendar
	if cfg.Google.CredentialsPath != "" {
		calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.Google.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run ./scripts/gcal-auth` to generate token.json")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		DB:              db,
		Tokens:          tokens,
		Encrypter:       encrypter.New(0),
		Google:          google,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		Calendar:        calendar,
		CalendarID:      cfg.Google.CalendarID,
		DateMath:        dateMathParser,
		Estimator:       estimator,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	// 8. Run
	var g run.Group

	// HTTP server.
	{
		g.Add(
			func() error {
				return httpServer.Run()
			},
			func(_ error) {
				if err := httpServer.Shutdown(); err != nil {
					logger.Errorf(ctx, "HTTP server shutdown: %v", err)
				}
			},
		)
	}

	// Signals.
	{
		g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))
	}

	if err := g.Run(); err != nil {
		var sigErr run.SignalError
		if !errors.As(err, &sigErr) {
			logger.Errorf(ctx, "Server stopped with error: %v", err)
			return
		}
		logger.Infof(ctx, "Received signal %s", sigErr.Signal)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
