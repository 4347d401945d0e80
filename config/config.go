package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig

	// Auth
	JWT       JWTConfig
	Google    GoogleConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DatabaseConfig selects the SQL driver. Driver is "postgres" or "sqlite".
type DatabaseConfig struct {
	Driver       string
	DSN          string
	Migrate      bool
	MaxOpenConns int
}

type JWTConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// GoogleConfig covers both Google sign-in and the optional calendar mirror.
// An empty ClientID disables Google sign-in; an empty CredentialsPath disables calendar sync.
type GoogleConfig struct {
	ClientID        string
	CredentialsPath string
	CalendarID      string
	Timezone        string
}

type RateLimitConfig struct {
	PerMin int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the process environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Database
	cfg.Database.Driver = viper.GetString("database.driver")
	cfg.Database.DSN = viper.GetString("database.dsn")
	cfg.Database.Migrate = viper.GetBool("database.migrate")
	cfg.Database.MaxOpenConns = viper.GetInt("database.max_open_conns")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Database.DSN = dsn
	}

	// Auth
	cfg.JWT.Secret = viper.GetString("jwt.secret")
	cfg.JWT.AccessTTL = viper.GetDuration("jwt.access_ttl")
	cfg.JWT.RefreshTTL = viper.GetDuration("jwt.refresh_ttl")
	if secret := viper.GetString("secret_key"); secret != "" {
		cfg.JWT.Secret = secret
	}

	cfg.Google.ClientID = viper.GetString("google.client_id")
	cfg.Google.CredentialsPath = viper.GetString("google.credentials_path")
	cfg.Google.CalendarID = viper.GetString("google.calendar_id")
	cfg.Google.Timezone = viper.GetString("google.timezone")
	if clientID := viper.GetString("google_client_id"); clientID != "" {
		cfg.Google.ClientID = clientID
	}

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if cfg.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	return nil
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.driver", DriverSQLite)
	viper.SetDefault("database.dsn", "project-tracker.db")
	viper.SetDefault("database.migrate", true)
	viper.SetDefault("database.max_open_conns", 10)

	viper.SetDefault("jwt.access_ttl", "60m")
	viper.SetDefault("jwt.refresh_ttl", "168h")

	viper.SetDefault("google.calendar_id", "primary")
	viper.SetDefault("google.timezone", "Europe/Istanbul")

	viper.SetDefault("rate_limit.per_min", 30)
	viper.SetDefault("cors.allowed_origins", "http://localhost:3000")
}

// splitList splits comma separated values since viper does not parse arrays from env.
func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
