package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/oklog/run"

	"project-tracker/cmd/pmctl/commands"
	"project-tracker/pkg/log"
)

// Run runs the pmctl application.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	app := kingpin.New("pmctl", "Terminal client for project-tracker.")
	rootCmd := commands.NewRootCommand(app)

	loginCmd := commands.NewLoginCommand(rootCmd, app)
	projectsCmd := commands.NewProjectsCommand(rootCmd, app)
	tasksCmd := commands.NewTasksCommand(rootCmd, app)
	ganttCmd := commands.NewGanttCommand(rootCmd, app)
	dashboardCmd := commands.NewDashboardCommand(rootCmd, app)
	watchCmd := commands.NewWatchCommand(rootCmd, app)

	cmds := map[string]commands.Command{
		loginCmd.Name():     loginCmd,
		projectsCmd.Name():  projectsCmd,
		tasksCmd.Name():     tasksCmd,
		ganttCmd.Name():     ganttCmd,
		dashboardCmd.Name(): dashboardCmd,
		watchCmd.Name():     watchCmd,
	}

	cmdName, err := app.Parse(args[1:])
	if err != nil {
		return fmt.Errorf("invalid command configuration: %w", err)
	}

	rootCmd.Stdin = stdin
	rootCmd.Stdout = stdout
	rootCmd.Stderr = stderr
	if rootCmd.Debug {
		rootCmd.Logger = log.Init(log.ZapConfig{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole})
	}
	if err := rootCmd.LoadConfig(); err != nil {
		return err
	}

	var g run.Group

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				rootCmd.Logger.Debug(ctx, "Termination signal received")
				return nil
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// Execute command.
	{
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g.Add(
			func() error {
				if err := cmds[cmdName].Run(ctx); err != nil {
					return fmt.Errorf("%q command failed: %w", cmdName, err)
				}
				return nil
			},
			func(_ error) {
				cancel()
			},
		)
	}

	return g.Run()
}

func main() {
	if err := Run(context.Background(), os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
