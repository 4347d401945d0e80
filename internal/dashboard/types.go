package dashboard

import (
	"project-tracker/internal/project"
	"project-tracker/internal/task"
)

const (
	// RecentProjectLimit caps SummaryOutput.RecentProjects.
	RecentProjectLimit = 5
	// UpcomingTaskLimit caps SummaryOutput.UpcomingTasks.
	UpcomingTaskLimit = 10
	// UpcomingWindowDays is how far ahead a due date counts as upcoming.
	UpcomingWindowDays = 14
)

// SummaryOutput is the dashboard payload.
type SummaryOutput struct {
	TotalProjects  int
	ActiveTasks    int
	Completed      int
	Members        int
	RecentProjects []project.ProjectOutput
	UpcomingTasks  []task.TaskOutput
}
