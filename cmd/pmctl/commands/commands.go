package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"

	"project-tracker/pkg/log"
	"project-tracker/pkg/pmclient"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand holds the global flags and instances shared by every command.
type RootCommand struct {
	// Global flags.
	Debug      bool
	ConfigPath string
	BaseURL    string
	Token      string

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
	Config Config
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{Logger: log.NewNop()}

	app.Flag("debug", "Enable debug logging.").BoolVar(&c.Debug)
	app.Flag("config", "Path to the pmctl TOML config file.").Envar("PMCTL_CONFIG").Default(DefaultConfigPath()).StringVar(&c.ConfigPath)
	app.Flag("url", "API base URL, overrides the config file.").Envar("PMCTL_URL").StringVar(&c.BaseURL)
	app.Flag("token", "Access token, overrides the config file.").Envar("PMCTL_TOKEN").StringVar(&c.Token)

	return c
}

// LoadConfig reads the config file and applies flag overrides.
func (r *RootCommand) LoadConfig() error {
	cfg, err := LoadConfig(r.ConfigPath)
	if err != nil {
		return err
	}
	if r.BaseURL != "" {
		cfg.BaseURL = r.BaseURL
	}
	if r.Token != "" {
		cfg.Token = r.Token
	}
	r.Config = cfg
	return nil
}

// Client returns an API client for the resolved base URL and token.
func (r *RootCommand) Client() *pmclient.Client {
	return pmclient.New(r.Config.BaseURL, r.Config.Token)
}

// wrapAPIError turns an expired session into an actionable message.
func wrapAPIError(action string, err error) error {
	if pmclient.IsUnauthorized(err) || errors.Is(err, pmclient.ErrNoToken) {
		return fmt.Errorf("could not %s: not logged in or token expired, run `pmctl login`: %w", action, err)
	}
	return fmt.Errorf("could not %s: %w", action, err)
}
