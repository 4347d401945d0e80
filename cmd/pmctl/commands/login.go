package commands

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/kingpin/v2"
)

type LoginCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	email    string
	password string
}

// NewLoginCommand returns the login command.
func NewLoginCommand(rootCmd *RootCommand, app *kingpin.Application) *LoginCommand {
	c := &LoginCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("login", "Log in and store the tokens in the config file.")
	c.Cmd.Flag("email", "Account email.").Short('e').Required().StringVar(&c.email)
	c.Cmd.Flag("password", "Account password, read from stdin when omitted.").Envar("PMCTL_PASSWORD").StringVar(&c.password)

	return c
}

func (c LoginCommand) Name() string { return c.Cmd.FullCommand() }

func (c LoginCommand) Run(ctx context.Context) error {
	root := c.rootCmd

	password := c.password
	if password == "" {
		fmt.Fprint(root.Stderr, "Password: ")
		line, err := bufio.NewReader(root.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("could not read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	tokens, err := root.Client().Login(ctx, c.email, password)
	if err != nil {
		return fmt.Errorf("could not log in: %w", err)
	}
	root.Logger.Debugf(ctx, "logged in as user %d", tokens.User.ID)

	cfg := root.Config
	cfg.Token = tokens.Access
	cfg.Refresh = tokens.Refresh
	cfg.Email = tokens.User.Email
	if err := SaveConfig(root.ConfigPath, cfg); err != nil {
		return err
	}
	root.Config = cfg

	name := tokens.User.FullName
	if strings.TrimSpace(name) == "" {
		name = tokens.User.Email
	}
	fmt.Fprintf(root.Stdout, "Logged in as %s\n", name)
	return nil
}
