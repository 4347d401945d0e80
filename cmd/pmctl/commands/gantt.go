package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kingpin/v2"

	"project-tracker/internal/viewer"
	"project-tracker/pkg/progress"
)

type GanttCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	projectID int64
	dayWidth  int
	now       func() time.Time
}

// NewGanttCommand returns the gantt command.
func NewGanttCommand(rootCmd *RootCommand, app *kingpin.Application) *GanttCommand {
	c := &GanttCommand{rootCmd: rootCmd, now: time.Now}

	c.Cmd = app.Command("gantt", "Print a text Gantt chart.")
	c.Cmd.Flag("project", "Project id, all visible tasks when omitted.").Int64Var(&c.projectID)
	c.Cmd.Flag("day-width", "Columns per day, the config value when omitted.").IntVar(&c.dayWidth)

	return c
}

func (c GanttCommand) Name() string { return c.Cmd.FullCommand() }

func (c GanttCommand) Run(ctx context.Context) error {
	tasks, err := c.rootCmd.Client().Gantt(ctx, c.projectID)
	if err != nil {
		return wrapAPIError("load gantt", err)
	}

	est := progress.New(progress.ClockFunc(c.now))
	items := viewer.Recompute(est, viewer.TaskItems(tasks))

	_, err = fmt.Fprint(c.rootCmd.Stdout, viewer.RenderGantt(items, est.Now(), dayWidth(c.dayWidth, c.rootCmd.Config)))
	return err
}

func dayWidth(flag int, cfg Config) int {
	if flag > 0 {
		return flag
	}
	return cfg.DayWidth
}
