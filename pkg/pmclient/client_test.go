package pmclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"project-tracker/pkg/pmclient"
)

type recorded struct {
	method string
	path   string
	query  string
	auth   string
	body   map[string]string
}

func newServer(t *testing.T, status int, payload string, rec *recorded) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.auth = r.Header.Get("Authorization")
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&rec.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLogin(t *testing.T) {
	var rec recorded
	srv := newServer(t, http.StatusOK,
		`{"error_code":0,"message":"Success","data":{"access":"a1","refresh":"r1","user":{"id":3,"email":"ali@example.com"}}}`, &rec)

	c := pmclient.New(srv.URL+"/", "")
	tokens, err := c.Login(context.Background(), "ali@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if tokens.Access != "a1" || tokens.User.ID != 3 {
		t.Errorf("tokens = %+v", tokens)
	}
	if rec.method != http.MethodPost || rec.path != "/api/users/login" || rec.auth != "" {
		t.Errorf("request = %+v", rec)
	}
	if rec.body["email"] != "ali@example.com" || rec.body["password"] != "secret123" {
		t.Errorf("body = %v", rec.body)
	}
	if c.WithToken(tokens.Access).Token() != "a1" || c.Token() != "" {
		t.Error("WithToken should return a copy")
	}
}

func TestAuthenticatedCalls(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		call      func(c *pmclient.Client) error
		wantPath  string
		wantQuery string
	}{
		{
			name:    "Projects",
			payload: `[{"id":1,"name":"Köprü","progress":10,"dynamic_progress":40,"effective_progress":40,"start_date":"2024-01-01","end_date":null}]`,
			call: func(c *pmclient.Client) error {
				ps, err := c.ListProjects(context.Background())
				if err == nil && (len(ps) != 1 || *ps[0].DynamicProgress != 40 || ps[0].StartDate != "2024-01-01" || ps[0].EndDate != "") {
					return errors.New("unexpected projects")
				}
				return err
			},
			wantPath: "/api/projects",
		},
		{
			name:    "Tasks with filter",
			payload: `[{"id":7,"title":"Temel","status":"Beklemede","dependencies":[1,2]}]`,
			call: func(c *pmclient.Client) error {
				ts, err := c.ListTasks(context.Background(), pmclient.TaskFilter{ProjectID: 2, Status: "Beklemede"})
				if err == nil && (len(ts) != 1 || len(ts[0].Dependencies) != 2) {
					return errors.New("unexpected tasks")
				}
				return err
			},
			wantPath:  "/api/tasks",
			wantQuery: "project=2&status=Beklemede",
		},
		{
			name:    "Gantt",
			payload: `[{"id":7,"title":"Temel","start":"2024-01-01","end":null,"due_date":"2024-01-11","progress":50,"manual_progress":0,"dynamic_progress":50}]`,
			call: func(c *pmclient.Client) error {
				gs, err := c.Gantt(context.Background(), 2)
				if err == nil && (len(gs) != 1 || gs[0].Progress != 50 || gs[0].End != "" || gs[0].DueDate != "2024-01-11") {
					return errors.New("unexpected gantt")
				}
				return err
			},
			wantPath:  "/api/tasks/gantt",
			wantQuery: "project_id=2",
		},
		{
			name:    "Dashboard",
			payload: `{"total_projects":2,"active_tasks":5,"completed":1,"members":3,"recent_projects":[],"upcoming_tasks":[]}`,
			call: func(c *pmclient.Client) error {
				d, err := c.Dashboard(context.Background())
				if err == nil && (d.TotalProjects != 2 || d.Members != 3) {
					return errors.New("unexpected dashboard")
				}
				return err
			},
			wantPath: "/api/dashboard/summary",
		},
		{
			name:    "Me",
			payload: `{"id":3,"email":"ali@example.com","is_staff":true}`,
			call: func(c *pmclient.Client) error {
				u, err := c.Me(context.Background())
				if err == nil && (!u.IsStaff || u.ID != 3) {
					return errors.New("unexpected user")
				}
				return err
			},
			wantPath: "/api/users/me",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec recorded
			srv := newServer(t, http.StatusOK, `{"error_code":0,"message":"Success","data":`+tt.payload+`}`, &rec)

			if err := tt.call(pmclient.New(srv.URL, "tok")); err != nil {
				t.Fatalf("call error = %v", err)
			}
			if rec.method != http.MethodGet || rec.path != tt.wantPath || rec.query != tt.wantQuery {
				t.Errorf("request = %s %s?%s", rec.method, rec.path, rec.query)
			}
			if rec.auth != "Bearer tok" {
				t.Errorf("Authorization = %q", rec.auth)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	t.Run("Missing token", func(t *testing.T) {
		_, err := pmclient.New("http://127.0.0.1:1", "").ListProjects(context.Background())
		if !errors.Is(err, pmclient.ErrNoToken) {
			t.Errorf("error = %v, want ErrNoToken", err)
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		var rec recorded
		srv := newServer(t, http.StatusUnauthorized, `{"error_code":401,"message":"Unauthorized"}`, &rec)
		_, err := pmclient.New(srv.URL, "expired").Dashboard(context.Background())
		if !pmclient.IsUnauthorized(err) {
			t.Errorf("error = %v, want unauthorized", err)
		}
	})

	t.Run("Validation fields", func(t *testing.T) {
		var rec recorded
		srv := newServer(t, http.StatusBadRequest, `{"error_code":400,"message":"Validation failed","errors":{"email":"required"}}`, &rec)
		_, err := pmclient.New(srv.URL, "").Login(context.Background(), "", "")
		var apiErr *pmclient.APIError
		if !errors.As(err, &apiErr) || apiErr.Fields["email"] != "required" || apiErr.Code != 400 {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("Non JSON failure", func(t *testing.T) {
		var rec recorded
		srv := newServer(t, http.StatusBadGateway, `bad gateway`, &rec)
		_, err := pmclient.New(srv.URL, "tok").Gantt(context.Background(), 0)
		var apiErr *pmclient.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadGateway || apiErr.Message != "bad gateway" {
			t.Errorf("error = %v", err)
		}
		if rec.query != "" {
			t.Errorf("query = %q, want none", rec.query)
		}
	})
}
