package pmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client is a typed client for the project-tracker REST API.
// It carries its own base URL and token; nothing is read from the environment.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a Client. token may be empty for Login.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// WithToken returns a copy of c using token.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// Token returns the bearer token the client sends.
func (c *Client) Token() string { return c.token }

type envelope struct {
	ErrorCode int               `json:"error_code"`
	Message   string            `json:"message"`
	Data      json.RawMessage   `json:"data"`
	Errors    map[string]string `json:"errors"`
}

// Login exchanges credentials for tokens. The client itself is not modified;
// use WithToken with the returned access token.
func (c *Client) Login(ctx context.Context, email, password string) (Tokens, error) {
	var out Tokens
	body := map[string]string{"email": email, "password": password}
	err := c.do(ctx, http.MethodPost, "/api/users/login", nil, body, &out, false)
	return out, err
}

// Me returns the authenticated user.
func (c *Client) Me(ctx context.Context) (User, error) {
	var out User
	err := c.do(ctx, http.MethodGet, "/api/users/me", nil, nil, &out, true)
	return out, err
}

// ListProjects returns every project visible to the caller, newest first.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var out []Project
	err := c.do(ctx, http.MethodGet, "/api/projects", nil, nil, &out, true)
	return out, err
}

// ListTasks returns the visible tasks matching f.
func (c *Client) ListTasks(ctx context.Context, f TaskFilter) ([]Task, error) {
	q := url.Values{}
	if f.ProjectID > 0 {
		q.Set("project", strconv.FormatInt(f.ProjectID, 10))
	}
	if f.AssigneeID > 0 {
		q.Set("assignee", strconv.FormatInt(f.AssigneeID, 10))
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}

	var out []Task
	err := c.do(ctx, http.MethodGet, "/api/tasks", q, nil, &out, true)
	return out, err
}

// Gantt returns the Gantt feed of a project, or of every visible task when projectID is 0.
func (c *Client) Gantt(ctx context.Context, projectID int64) ([]GanttTask, error) {
	q := url.Values{}
	if projectID > 0 {
		q.Set("project_id", strconv.FormatInt(projectID, 10))
	}

	var out []GanttTask
	err := c.do(ctx, http.MethodGet, "/api/tasks/gantt", q, nil, &out, true)
	return out, err
}

// Dashboard returns the caller's dashboard summary.
func (c *Client) Dashboard(ctx context.Context) (Dashboard, error) {
	var out Dashboard
	err := c.do(ctx, http.MethodGet, "/api/dashboard/summary", nil, nil, &out, true)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any, auth bool) error {
	if auth && c.token == "" {
		return ErrNoToken
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s %s response: %w", method, path, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
		}
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       env.ErrorCode,
			Message:    env.Message,
			Fields:     env.Errors,
		}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode %s %s data: %w", method, path, err)
	}
	return nil
}
