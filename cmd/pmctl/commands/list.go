package commands

import (
	"context"

	"github.com/alecthomas/kingpin/v2"

	"project-tracker/pkg/pmclient"
)

type ProjectsCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
}

// NewProjectsCommand returns the projects command.
func NewProjectsCommand(rootCmd *RootCommand, app *kingpin.Application) *ProjectsCommand {
	c := &ProjectsCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("projects", "List visible projects with their progress.")
	c.Cmd.Flag("format", "Output format (table, json).").Default(FormatTable).EnumVar(&c.format, FormatTable, FormatJSON)

	return c
}

func (c ProjectsCommand) Name() string { return c.Cmd.FullCommand() }

func (c ProjectsCommand) Run(ctx context.Context) error {
	projects, err := c.rootCmd.Client().ListProjects(ctx)
	if err != nil {
		return wrapAPIError("list projects", err)
	}

	if c.format == FormatJSON {
		return printJSON(c.rootCmd.Stdout, projects)
	}
	return printProjects(c.rootCmd.Stdout, projects)
}

type TasksCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	filter pmclient.TaskFilter
	format string
}

// NewTasksCommand returns the tasks command.
func NewTasksCommand(rootCmd *RootCommand, app *kingpin.Application) *TasksCommand {
	c := &TasksCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("tasks", "List visible tasks with their progress.")
	c.Cmd.Flag("project", "Only tasks of this project.").Int64Var(&c.filter.ProjectID)
	c.Cmd.Flag("assignee", "Only tasks assigned to this user id.").Int64Var(&c.filter.AssigneeID)
	c.Cmd.Flag("status", "Only tasks with this status.").StringVar(&c.filter.Status)
	c.Cmd.Flag("format", "Output format (table, json).").Default(FormatTable).EnumVar(&c.format, FormatTable, FormatJSON)

	return c
}

func (c TasksCommand) Name() string { return c.Cmd.FullCommand() }

func (c TasksCommand) Run(ctx context.Context) error {
	tasks, err := c.rootCmd.Client().ListTasks(ctx, c.filter)
	if err != nil {
		return wrapAPIError("list tasks", err)
	}

	if c.format == FormatJSON {
		return printJSON(c.rootCmd.Stdout, tasks)
	}
	return printTasks(c.rootCmd.Stdout, tasks)
}

type DashboardCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	format string
}

// NewDashboardCommand returns the dashboard command.
func NewDashboardCommand(rootCmd *RootCommand, app *kingpin.Application) *DashboardCommand {
	c := &DashboardCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("dashboard", "Show the dashboard summary.")
	c.Cmd.Flag("format", "Output format (table, json).").Default(FormatTable).EnumVar(&c.format, FormatTable, FormatJSON)

	return c
}

func (c DashboardCommand) Name() string { return c.Cmd.FullCommand() }

func (c DashboardCommand) Run(ctx context.Context) error {
	d, err := c.rootCmd.Client().Dashboard(ctx)
	if err != nil {
		return wrapAPIError("load dashboard", err)
	}

	if c.format == FormatJSON {
		return printJSON(c.rootCmd.Stdout, d)
	}
	return printDashboard(c.rootCmd.Stdout, d)
}
