package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"project-tracker/internal/viewer"
	"project-tracker/pkg/progress"
)

type WatchCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	projectID int64
	interval  time.Duration
	dayWidth  int
}

// NewWatchCommand returns the watch command.
func NewWatchCommand(rootCmd *RootCommand, app *kingpin.Application) *WatchCommand {
	c := &WatchCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("watch", "Open the interactive Gantt viewer. Progress is recomputed on a timer without refetching.")
	c.Cmd.Flag("project", "Project id, all visible tasks when omitted.").Int64Var(&c.projectID)
	c.Cmd.Flag("interval", "Progress recomputation interval, the config value when omitted.").DurationVar(&c.interval)
	c.Cmd.Flag("day-width", "Columns per day, the config value when omitted.").IntVar(&c.dayWidth)

	return c
}

func (c WatchCommand) Name() string { return c.Cmd.FullCommand() }

func (c WatchCommand) Run(ctx context.Context) error {
	m, err := c.model(ctx)
	if err != nil {
		return err
	}
	return viewer.Run(ctx, m)
}

// model fetches the snapshot the viewer works on.
func (c WatchCommand) model(ctx context.Context) (viewer.Model, error) {
	client := c.rootCmd.Client()

	tasks, err := client.Gantt(ctx, c.projectID)
	if err != nil {
		return viewer.Model{}, wrapAPIError("load gantt", err)
	}
	projects, err := client.ListProjects(ctx)
	if err != nil {
		return viewer.Model{}, wrapAPIError("list projects", err)
	}

	title := "All projects"
	if c.projectID > 0 {
		title = fmt.Sprintf("Project %d", c.projectID)
		for _, p := range projects {
			if p.ID == c.projectID {
				title = p.Name
			}
		}
	}

	interval := c.interval
	if interval <= 0 {
		interval = c.rootCmd.Config.Interval()
	}
	c.rootCmd.Logger.Debugf(ctx, "watch: %d tasks, %d projects, refresh every %s", len(tasks), len(projects), interval)

	return viewer.New(viewer.Config{
		Title:     title,
		Tasks:     viewer.TaskItems(tasks),
		Projects:  viewer.ProjectItems(projects),
		Estimator: progress.New(progress.SystemClock),
		Interval:  interval,
		DayWidth:  dayWidth(c.dayWidth, c.rootCmd.Config),
	}), nil
}
