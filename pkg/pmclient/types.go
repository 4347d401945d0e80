package pmclient

// Dates are "YYYY-MM-DD" strings; an absent date decodes as "".

type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	User    User   `json:"user"`
}

type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	IsStaff   bool   `json:"is_staff"`
	IsActive  bool   `json:"is_active"`
}

type Project struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Owner             int64  `json:"owner"`
	OwnerName         string `json:"owner_name"`
	Status            string `json:"status"`
	Progress          int    `json:"progress"`
	DynamicProgress   *int   `json:"dynamic_progress"`
	EffectiveProgress int    `json:"effective_progress"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
	TaskCount         int    `json:"task_count"`
}

type Task struct {
	ID                int64   `json:"id"`
	Project           int64   `json:"project"`
	ProjectName       string  `json:"project_name"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Assignee          *int64  `json:"assignee"`
	AssigneeName      *string `json:"assignee_name"`
	StartDate         string  `json:"start_date"`
	EndDate           string  `json:"end_date"`
	DueDate           string  `json:"due_date"`
	Status            string  `json:"status"`
	Progress          int     `json:"progress"`
	DynamicProgress   *int    `json:"dynamic_progress"`
	EffectiveProgress int     `json:"effective_progress"`
	Dependencies      []int64 `json:"dependencies"`
}

// GanttTask is one bar of a project's Gantt feed. Progress is the effective progress.
type GanttTask struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Start           string  `json:"start"`
	End             string  `json:"end"`
	DueDate         string  `json:"due_date"`
	Progress        int     `json:"progress"`
	ManualProgress  int     `json:"manual_progress"`
	DynamicProgress *int    `json:"dynamic_progress"`
	Status          string  `json:"status"`
	Assignee        *string `json:"assignee"`
	AssigneeName    *string `json:"assignee_name"`
	ProjectName     string  `json:"project_name"`
	Dependencies    []int64 `json:"dependencies"`
}

type Dashboard struct {
	TotalProjects  int       `json:"total_projects"`
	ActiveTasks    int       `json:"active_tasks"`
	Completed      int       `json:"completed"`
	Members        int       `json:"members"`
	RecentProjects []Project `json:"recent_projects"`
	UpcomingTasks  []Task    `json:"upcoming_tasks"`
}

// TaskFilter narrows ListTasks. Zero fields are not sent.
type TaskFilter struct {
	ProjectID  int64
	AssigneeID int64
	Status     string
}
