package usecase_test

import (
	"context"
	"sort"

	"project-tracker/internal/model"
	repo "project-tracker/internal/project/repository"
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

// memRepo is an in-memory project repository. assignees maps project id to
// the users holding a task in it.
type memRepo struct {
	projects  map[int64]model.Project
	tasks     map[int64][]repo.TaskProgress
	assignees map[int64][]int64
	nextID    int64
	deleted   []int64
}

func newMemRepo(projects ...model.Project) *memRepo {
	r := &memRepo{
		projects:  map[int64]model.Project{},
		tasks:     map[int64][]repo.TaskProgress{},
		assignees: map[int64][]int64{},
	}
	for _, p := range projects {
		r.projects[p.ID] = p
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
	}
	return r
}

func (r *memRepo) visible(p model.Project, userID int64) bool {
	if userID == 0 || p.OwnerID == userID {
		return true
	}
	for _, a := range r.assignees[p.ID] {
		if a == userID {
			return true
		}
	}
	return false
}

func (r *memRepo) Create(ctx context.Context, opt repo.CreateOptions) (model.Project, error) {
	r.nextID++
	p := model.Project{
		ID:             r.nextID,
		Name:           opt.Name,
		Description:    opt.Description,
		OwnerID:        opt.OwnerID,
		Status:         opt.Status,
		Progress:       opt.Progress,
		StartDate:      opt.StartDate,
		EndDate:        opt.EndDate,
		LocationName:   opt.LocationName,
		Latitude:       opt.Latitude,
		Longitude:      opt.Longitude,
		GeofenceRadius: opt.GeofenceRadius,
		CreatedAt:      opt.CreatedAt,
	}
	r.projects[p.ID] = p
	return p, nil
}

func (r *memRepo) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.Project, error) {
	p, ok := r.projects[opt.ID]
	if !ok || !r.visible(p, opt.VisibleTo) {
		return model.Project{}, nil
	}
	return p, nil
}

func (r *memRepo) List(ctx context.Context, opt repo.ListOptions) ([]model.Project, error) {
	var out []model.Project
	for _, p := range r.projects {
		if r.visible(p, opt.VisibleTo) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

func (r *memRepo) Update(ctx context.Context, opt repo.UpdateOptions) (model.Project, error) {
	p, ok := r.projects[opt.ID]
	if !ok {
		return model.Project{}, nil
	}
	p.Name, p.Description, p.Status, p.Progress = opt.Name, opt.Description, opt.Status, opt.Progress
	p.StartDate, p.EndDate, p.LocationName = opt.StartDate, opt.EndDate, opt.LocationName
	p.Latitude, p.Longitude, p.GeofenceRadius = opt.Latitude, opt.Longitude, opt.GeofenceRadius
	r.projects[p.ID] = p
	return p, nil
}

func (r *memRepo) Delete(ctx context.Context, id int64) error {
	delete(r.projects, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *memRepo) ListTaskProgress(ctx context.Context, projectIDs []int64) (map[int64][]repo.TaskProgress, error) {
	out := map[int64][]repo.TaskProgress{}
	for _, id := range projectIDs {
		if ts, ok := r.tasks[id]; ok {
			out[id] = ts
		}
	}
	return out, nil
}
