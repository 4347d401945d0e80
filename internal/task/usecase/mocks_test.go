package usecase_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"project-tracker/internal/model"
	projectRepo "project-tracker/internal/project/repository"
	repo "project-tracker/internal/task/repository"
	userRepo "project-tracker/internal/user/repository"
	"project-tracker/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// memProjects is a project repository where only lookups are meaningful.
type memProjects struct {
	projects map[int64]model.Project
	tasks    *memTasks
}

func (r *memProjects) visible(p model.Project, userID int64) bool {
	if userID == 0 || p.OwnerID == userID {
		return true
	}
	for _, t := range r.tasks.tasks {
		if t.ProjectID == p.ID && t.IsAssignedTo(userID) {
			return true
		}
	}
	return false
}

func (r *memProjects) Create(ctx context.Context, opt projectRepo.CreateOptions) (model.Project, error) {
	return model.Project{}, errors.New("not implemented")
}
func (r *memProjects) GetOne(ctx context.Context, opt projectRepo.GetOneOptions) (model.Project, error) {
	p, ok := r.projects[opt.ID]
	if !ok || !r.visible(p, opt.VisibleTo) {
		return model.Project{}, nil
	}
	return p, nil
}
func (r *memProjects) List(ctx context.Context, opt projectRepo.ListOptions) ([]model.Project, error) {
	return nil, errors.New("not implemented")
}
func (r *memProjects) Update(ctx context.Context, opt projectRepo.UpdateOptions) (model.Project, error) {
	return model.Project{}, errors.New("not implemented")
}
func (r *memProjects) Delete(ctx context.Context, id int64) error {
	return errors.New("not implemented")
}
func (r *memProjects) ListTaskProgress(ctx context.Context, ids []int64) (map[int64][]projectRepo.TaskProgress, error) {
	return nil, errors.New("not implemented")
}

// memUsers serves users from a slice ordered by id.
type memUsers struct {
	users []model.User
}

func (r *memUsers) Create(ctx context.Context, opt userRepo.CreateOptions) (model.User, error) {
	return model.User{}, errors.New("not implemented")
}
func (r *memUsers) GetOne(ctx context.Context, opt userRepo.GetOneOptions) (model.User, error) {
	for _, u := range r.users {
		if u.ID == opt.ID {
			return u, nil
		}
	}
	return model.User{}, nil
}
func (r *memUsers) List(ctx context.Context, opt userRepo.ListOptions) ([]model.User, error) {
	return r.users, nil
}
func (r *memUsers) Update(ctx context.Context, opt userRepo.UpdateOptions) (model.User, error) {
	return model.User{}, errors.New("not implemented")
}
func (r *memUsers) SetLastLogin(ctx context.Context, id int64, at time.Time) error { return nil }
func (r *memUsers) Count(ctx context.Context) (int, error)                         { return len(r.users), nil }

// memTasks is an in-memory task repository applying the same filters as the SQL one.
type memTasks struct {
	tasks    map[int64]model.Task
	projects map[int64]model.Project
	nextID   int64
	events   map[int64]string
	listErr  error
}

func (r *memTasks) visible(t model.Task, userID int64) bool {
	if userID == 0 || t.ProjectOwnerID == userID {
		return true
	}
	for _, other := range r.tasks {
		if other.ProjectID == t.ProjectID && other.IsAssignedTo(userID) {
			return true
		}
	}
	return false
}

func (r *memTasks) fill(t model.Task) model.Task {
	p := r.projects[t.ProjectID]
	t.ProjectName = p.Name
	t.ProjectOwnerID = p.OwnerID
	if t.Dependencies == nil {
		t.Dependencies = []int64{}
	}
	return t
}

func (r *memTasks) Create(ctx context.Context, opt repo.CreateOptions) (model.Task, error) {
	r.nextID++
	t := r.fill(model.Task{
		ID:           r.nextID,
		ProjectID:    opt.ProjectID,
		Title:        opt.Title,
		Description:  opt.Description,
		AssigneeID:   opt.AssigneeID,
		StartDate:    opt.StartDate,
		EndDate:      opt.EndDate,
		DueDate:      opt.DueDate,
		Status:       opt.Status,
		Progress:     opt.Progress,
		Dependencies: opt.Dependencies,
		CreatedAt:    opt.CreatedAt,
	})
	r.tasks[t.ID] = t
	return t, nil
}

func (r *memTasks) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Task, error) {
	t, ok := r.tasks[opt.ID]
	if !ok || !r.visible(t, opt.VisibleTo) {
		return model.Task{}, nil
	}
	return t, nil
}

func (r *memTasks) List(ctx context.Context, opt repo.ListOptions) ([]model.Task, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []model.Task
	for _, t := range r.tasks {
		if r.matches(t, opt) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memTasks) matches(t model.Task, opt repo.ListOptions) bool {
	if len(opt.IDs) > 0 {
		found := false
		for _, id := range opt.IDs {
			found = found || id == t.ID
		}
		if !found {
			return false
		}
	}
	if !r.visible(t, opt.VisibleTo) {
		return false
	}
	if opt.ProjectID != 0 && t.ProjectID != opt.ProjectID {
		return false
	}
	if opt.AssigneeID != 0 && !t.IsAssignedTo(opt.AssigneeID) {
		return false
	}
	if opt.Status != "" && t.Status != opt.Status {
		return false
	}
	if opt.ExcludeStatus != "" && t.Status == opt.ExcludeStatus {
		return false
	}
	if opt.StartFrom.Valid && (!t.StartDate.Valid || t.StartDate.Time.Before(opt.StartFrom.Time)) {
		return false
	}
	if opt.EndUntil.Valid && (!t.EndDate.Valid || t.EndDate.Time.After(opt.EndUntil.Time)) {
		return false
	}
	last := firstValid(t.EndDate, t.DueDate, t.StartDate)
	first := firstValid(t.StartDate, t.EndDate, t.DueDate)
	if opt.ActiveFrom.Valid && (!last.Valid || last.Time.Before(opt.ActiveFrom.Time)) {
		return false
	}
	if opt.ActiveUntil.Valid && (!first.Valid || first.Time.After(opt.ActiveUntil.Time)) {
		return false
	}
	return true
}

func firstValid(dates ...model.Date) model.Date {
	for _, d := range dates {
		if d.Valid {
			return d
		}
	}
	return model.Date{}
}

func (r *memTasks) Update(ctx context.Context, opt repo.UpdateOptions) (model.Task, error) {
	old, ok := r.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	t := r.fill(model.Task{
		ID:              opt.ID,
		ProjectID:       opt.ProjectID,
		Title:           opt.Title,
		Description:     opt.Description,
		AssigneeID:      opt.AssigneeID,
		StartDate:       opt.StartDate,
		EndDate:         opt.EndDate,
		DueDate:         opt.DueDate,
		Status:          opt.Status,
		Progress:        opt.Progress,
		Dependencies:    opt.Dependencies,
		CalendarEventID: old.CalendarEventID,
		CreatedAt:       old.CreatedAt,
	})
	r.tasks[t.ID] = t
	return t, nil
}

func (r *memTasks) SetCalendarEventID(ctx context.Context, id int64, eventID string) error {
	t := r.tasks[id]
	t.CalendarEventID = eventID
	r.tasks[id] = t
	r.events[id] = eventID
	return nil
}

// fakeCalendar records upserts and answers with a fixed event id.
type fakeCalendar struct {
	requests []gcalendar.EventRequest
	err      error
}

func (c *fakeCalendar) UpsertEvent(ctx context.Context, req gcalendar.EventRequest) (gcalendar.Event, error) {
	if c.err != nil {
		return gcalendar.Event{}, c.err
	}
	c.requests = append(c.requests, req)
	id := req.EventID
	if id == "" {
		id = "evt-new"
	}
	return gcalendar.Event{ID: id, HtmlLink: "https://calendar.example/" + id, Start: req.Start, End: req.End, AllDay: true}, nil
}
