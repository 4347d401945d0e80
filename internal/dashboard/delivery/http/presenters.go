package http

import (
	"project-tracker/internal/dashboard"
	"project-tracker/internal/model"
	"project-tracker/internal/project"
	"project-tracker/internal/task"
)

type recentProjectResp struct {
	ID                int64      `json:"id"`
	Name              string     `json:"name"`
	Status            string     `json:"status"`
	OwnerName         string     `json:"owner_name"`
	Progress          int        `json:"progress"`
	DynamicProgress   *int       `json:"dynamic_progress"`
	EffectiveProgress int        `json:"effective_progress"`
	StartDate         model.Date `json:"start_date"`
	EndDate           model.Date `json:"end_date"`
	TaskCount         int        `json:"task_count"`
}

type upcomingTaskResp struct {
	ID                int64      `json:"id"`
	Title             string     `json:"title"`
	Status            string     `json:"status"`
	Project           int64      `json:"project"`
	ProjectName       string     `json:"project_name"`
	AssigneeName      *string    `json:"assignee_name"`
	StartDate         model.Date `json:"start_date"`
	EndDate           model.Date `json:"end_date"`
	DueDate           model.Date `json:"due_date"`
	Progress          int        `json:"progress"`
	DynamicProgress   *int       `json:"dynamic_progress"`
	EffectiveProgress int        `json:"effective_progress"`
}

type summaryResp struct {
	TotalProjects  int                 `json:"total_projects"`
	ActiveTasks    int                 `json:"active_tasks"`
	Completed      int                 `json:"completed"`
	Members        int                 `json:"members"`
	RecentProjects []recentProjectResp `json:"recent_projects"`
	UpcomingTasks  []upcomingTaskResp  `json:"upcoming_tasks"`
}

func newRecentProjectResp(out project.ProjectOutput) recentProjectResp {
	p := out.Project
	return recentProjectResp{
		ID:                p.ID,
		Name:              p.Name,
		Status:            p.Status,
		OwnerName:         p.OwnerName,
		Progress:          out.Progress.Manual,
		DynamicProgress:   out.Progress.Dynamic,
		EffectiveProgress: out.Progress.Effective,
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		TaskCount:         out.TaskCount,
	}
}

func newUpcomingTaskResp(out task.TaskOutput) upcomingTaskResp {
	t := out.Task
	var assignee *string
	if t.AssigneeName != "" {
		assignee = &t.AssigneeName
	}
	return upcomingTaskResp{
		ID:                t.ID,
		Title:             t.Title,
		Status:            t.Status,
		Project:           t.ProjectID,
		ProjectName:       t.ProjectName,
		AssigneeName:      assignee,
		StartDate:         t.StartDate,
		EndDate:           t.EndDate,
		DueDate:           t.DueDate,
		Progress:          out.Progress.Manual,
		DynamicProgress:   out.Progress.Dynamic,
		EffectiveProgress: out.Progress.Effective,
	}
}

func newSummaryResp(out dashboard.SummaryOutput) summaryResp {
	resp := summaryResp{
		TotalProjects:  out.TotalProjects,
		ActiveTasks:    out.ActiveTasks,
		Completed:      out.Completed,
		Members:        out.Members,
		RecentProjects: make([]recentProjectResp, len(out.RecentProjects)),
		UpcomingTasks:  make([]upcomingTaskResp, len(out.UpcomingTasks)),
	}
	for i, p := range out.RecentProjects {
		resp.RecentProjects[i] = newRecentProjectResp(p)
	}
	for i, t := range out.UpcomingTasks {
		resp.UpcomingTasks[i] = newUpcomingTaskResp(t)
	}
	return resp
}
