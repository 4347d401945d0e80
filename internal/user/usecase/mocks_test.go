package usecase_test

import (
	"context"
	"sort"
	"time"

	"project-tracker/internal/model"
	repo "project-tracker/internal/user/repository"
	"project-tracker/pkg/googleauth"
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

// memRepo is an in-memory user repository.
type memRepo struct {
	users  map[int64]model.User
	nextID int64
	getErr error
}

func newMemRepo(users ...model.User) *memRepo {
	r := &memRepo{users: map[int64]model.User{}}
	for _, u := range users {
		r.users[u.ID] = u
		if u.ID > r.nextID {
			r.nextID = u.ID
		}
	}
	return r
}

func (r *memRepo) Create(ctx context.Context, opt repo.CreateOptions) (model.User, error) {
	for _, u := range r.users {
		if u.Email == opt.Email {
			return model.User{}, repo.ErrDuplicateEmail
		}
	}
	r.nextID++
	u := model.User{
		ID:           r.nextID,
		Email:        opt.Email,
		FirstName:    opt.FirstName,
		LastName:     opt.LastName,
		Role:         opt.Role,
		IsStaff:      opt.IsStaff,
		IsActive:     opt.IsActive,
		PasswordHash: opt.PasswordHash,
		DateJoined:   opt.DateJoined,
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *memRepo) GetOne(ctx context.Context, opt repo.GetOneOptions) (model.User, error) {
	if r.getErr != nil {
		return model.User{}, r.getErr
	}
	for _, u := range r.users {
		if (opt.ID == 0 || u.ID == opt.ID) && (opt.Email == "" || u.Email == opt.Email) {
			return u, nil
		}
	}
	return model.User{}, nil
}

func (r *memRepo) List(ctx context.Context, opt repo.ListOptions) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memRepo) Update(ctx context.Context, opt repo.UpdateOptions) (model.User, error) {
	u, ok := r.users[opt.ID]
	if !ok {
		return model.User{}, nil
	}
	for _, other := range r.users {
		if other.ID != opt.ID && other.Email == opt.Email {
			return model.User{}, repo.ErrDuplicateEmail
		}
	}
	u.Email, u.FirstName, u.LastName, u.Role = opt.Email, opt.FirstName, opt.LastName, opt.Role
	r.users[u.ID] = u
	return u, nil
}

func (r *memRepo) SetLastLogin(ctx context.Context, id int64, at time.Time) error {
	u := r.users[id]
	u.LastLogin = &at
	r.users[id] = u
	return nil
}

func (r *memRepo) Count(ctx context.Context) (int, error) { return len(r.users), nil }

type mockVerifier struct {
	enabled  bool
	identity googleauth.Identity
	err      error
}

func (m *mockVerifier) ClientID() string {
	if !m.enabled {
		return ""
	}
	return "client-1"
}
func (m *mockVerifier) Enabled() bool { return m.enabled }
func (m *mockVerifier) Verify(ctx context.Context, credential string) (googleauth.Identity, error) {
	return m.identity, m.err
}
