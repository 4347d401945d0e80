package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"project-tracker/internal/dashboard/usecase"
	"project-tracker/internal/model"
	"project-tracker/internal/project"
	"project-tracker/internal/task"
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

// fakeProjects only implements List.
type fakeProjects struct {
	project.UseCase
	outs []project.ProjectOutput
	err  error
}

func (f *fakeProjects) List(ctx context.Context, sc model.Scope, in project.ListInput) ([]project.ProjectOutput, error) {
	return f.outs, f.err
}

// fakeTasks only implements List.
type fakeTasks struct {
	task.UseCase
	outs []task.TaskOutput
}

func (f *fakeTasks) List(ctx context.Context, sc model.Scope, in task.ListInput) ([]task.TaskOutput, error) {
	return f.outs, nil
}

func date(s string) model.Date {
	d, _ := model.ParseDate(s)
	return d
}

func int64Ptr(v int64) *int64 { return &v }

func TestSummary(t *testing.T) {
	// 23:30 UTC on 5 January is already 6 January in Istanbul.
	now := time.Date(2024, 1, 5, 23, 30, 0, 0, time.UTC)
	istanbul := time.FixedZone("TRT", 3*60*60)

	var projects []project.ProjectOutput
	for i := int64(1); i <= 7; i++ {
		owner := int64(1)
		if i == 7 {
			owner = 9
		}
		projects = append(projects, project.ProjectOutput{Project: model.Project{ID: 8 - i, OwnerID: owner}})
	}

	tasks := []task.TaskOutput{
		{Task: model.Task{ID: 1, Status: model.TaskStatusDone, DueDate: date("2024-01-07"), AssigneeID: int64Ptr(2)}},
		{Task: model.Task{ID: 2, Status: model.TaskStatusInProgress, DueDate: date("2024-01-20")}},
		{Task: model.Task{ID: 3, Status: model.TaskStatusOnHold, DueDate: date("2024-01-06"), AssigneeID: int64Ptr(3)}},
		{Task: model.Task{ID: 4, Status: model.TaskStatusInProgress, DueDate: date("2024-01-05")}},
		{Task: model.Task{ID: 5, Status: model.TaskStatusInProgress, DueDate: date("2024-01-21")}},
		{Task: model.Task{ID: 6, Status: model.TaskStatusActive}},
	}

	uc := usecase.New(&mockLogger{}, &fakeProjects{outs: projects}, &fakeTasks{outs: tasks},
		func() time.Time { return now }, istanbul)

	out, err := uc.Summary(context.Background(), model.Scope{UserID: 1})
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	if out.TotalProjects != 7 || out.ActiveTasks != 5 || out.Completed != 1 {
		t.Errorf("counts = %d/%d/%d, want 7/5/1", out.TotalProjects, out.ActiveTasks, out.Completed)
	}
	// Owners 1 and 9 plus assignees 2 and 3.
	if out.Members != 4 {
		t.Errorf("members = %d, want 4", out.Members)
	}
	if len(out.RecentProjects) != 5 || out.RecentProjects[0].Project.ID != 7 {
		t.Errorf("recent projects = %+v", out.RecentProjects)
	}

	var upcoming []int64
	for _, u := range out.UpcomingTasks {
		upcoming = append(upcoming, u.Task.ID)
	}
	// 6..20 January inclusive, done tasks excluded.
	want := []int64{3, 2}
	if len(upcoming) != len(want) || upcoming[0] != want[0] || upcoming[1] != want[1] {
		t.Errorf("upcoming = %v, want %v", upcoming, want)
	}
}

func TestSummaryUpcomingLimit(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var tasks []task.TaskOutput
	for i := int64(1); i <= 12; i++ {
		tasks = append(tasks, task.TaskOutput{Task: model.Task{ID: i, Status: model.TaskStatusInProgress, DueDate: date("2024-01-02")}})
	}

	uc := usecase.New(&mockLogger{}, &fakeProjects{}, &fakeTasks{outs: tasks}, func() time.Time { return now }, nil)
	out, err := uc.Summary(context.Background(), model.Scope{IsStaff: true})
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if len(out.UpcomingTasks) != 10 || out.UpcomingTasks[0].Task.ID != 1 {
		t.Errorf("upcoming = %d tasks starting at %d", len(out.UpcomingTasks), out.UpcomingTasks[0].Task.ID)
	}
	if out.TotalProjects != 0 || len(out.RecentProjects) != 0 {
		t.Errorf("unexpected projects: %+v", out)
	}
}

func TestSummaryError(t *testing.T) {
	boom := errors.New("boom")
	uc := usecase.New(&mockLogger{}, &fakeProjects{err: boom}, &fakeTasks{}, time.Now, nil)
	if _, err := uc.Summary(context.Background(), model.Scope{UserID: 1}); !errors.Is(err, boom) {
		t.Errorf("Summary() error = %v, want boom", err)
	}
}
