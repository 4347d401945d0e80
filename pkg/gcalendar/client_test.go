package gcalendar_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"project-tracker/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func date(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestCredentials(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Broken config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), "")
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Installed app config with token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Installed app config without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), filepath.Join(t.TempDir(), "missing.json"))
		if err == nil {
			t.Fatalf("expected missing token error")
		}
	})

	t.Run("Installed app config bad token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath)
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Credentials file reads token next to it", func(t *testing.T) {
		dir := t.TempDir()
		credsPath := filepath.Join(dir, "creds.json")
		os.WriteFile(credsPath, []byte(mockCreds), 0o600)
		os.WriteFile(filepath.Join(dir, "token.json"), []byte(`{"access_token": "dummy", "token_type": "Bearer"}`), 0o600)

		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), credsPath); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(dir, "nope.json")); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestSaveToken(t *testing.T) {
	dir := t.TempDir()
	credsPath := filepath.Join(dir, "creds.json")
	tokenPath := gcalendar.TokenPath(credsPath)
	if tokenPath != filepath.Join(dir, "token.json") {
		t.Fatalf("TokenPath() = %q", tokenPath)
	}

	if err := gcalendar.SaveToken(tokenPath, &oauth2.Token{AccessToken: "dummy", TokenType: "Bearer"}); err != nil {
		t.Fatalf("SaveToken() error = %v", err)
	}
	info, err := os.Stat(tokenPath)
	if err != nil {
		t.Fatalf("token file missing: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("token mode = %v, want 0600", info.Mode().Perm())
	}

	creds, err := os.ReadFile(filepath.Join("testdata", "installed.json"))
	if err != nil {
		t.Fatalf("read creds: %v", err)
	}
	if _, err := gcalendar.OAuthConfig(creds); err != nil {
		t.Fatalf("OAuthConfig() error = %v", err)
	}
	os.WriteFile(credsPath, creds, 0o600)
	if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), credsPath); err != nil {
		t.Errorf("saved token should be readable by the client: %v", err)
	}
}

func TestUpsertEvent(t *testing.T) {
	t.Run("Creates all-day event with exclusive end", func(t *testing.T) {
		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				raw, _ := io.ReadAll(r.Body)
				json.Unmarshal(raw, &body)
				w.Write([]byte(`{"id": "event-123", "htmlLink": "https://calendar.google.com/e",
					"start": {"date": "2024-05-01"}, "end": {"date": "2024-05-04"}}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		event, err := client.UpsertEvent(context.Background(), gcalendar.EventRequest{
			Summary: "Temel atma",
			Start:   date("2024-05-01"),
			End:     date("2024-05-03"),
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.ID != "event-123" || !event.AllDay {
			t.Errorf("unexpected event: %+v", event)
		}
		if !event.End.Equal(date("2024-05-03")) {
			t.Errorf("end = %v, want inclusive 2024-05-03", event.End)
		}
		end, _ := body["end"].(map[string]any)
		if end["date"] != "2024-05-04" {
			t.Errorf("sent end = %v, want 2024-05-04", end["date"])
		}
	})

	t.Run("Updates existing event", func(t *testing.T) {
		var method string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/team/events/ev-1" {
				method = r.Method
				w.Write([]byte(`{"id": "ev-1", "start": {"date": "2024-05-01"}, "end": {"date": "2024-05-02"}}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		event, err := client.UpsertEvent(context.Background(), gcalendar.EventRequest{
			CalendarID: "team",
			EventID:    "ev-1",
			Start:      date("2024-05-01"),
			End:        date("2024-05-01"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if method != http.MethodPut || event.ID != "ev-1" {
			t.Errorf("method = %s, event = %+v", method, event)
		}
	})

	t.Run("Recreates deleted event", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost && r.URL.Path == "/calendar/v3/calendars/primary/events" {
				w.Write([]byte(`{"id": "ev-new"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": {"code": 404, "message": "Not Found"}}`))
		})

		event, err := client.UpsertEvent(context.Background(), gcalendar.EventRequest{
			EventID: "gone",
			Start:   date("2024-05-01"),
			End:     date("2024-05-01"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.ID != "ev-new" {
			t.Errorf("event id = %s, want ev-new", event.ID)
		}
	})

	t.Run("Rejects inverted range", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected request %s", r.URL.Path)
		})
		_, err := client.UpsertEvent(context.Background(), gcalendar.EventRequest{
			Start: date("2024-05-03"),
			End:   date("2024-05-01"),
		})
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("API error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		_, err := client.UpsertEvent(context.Background(), gcalendar.EventRequest{
			Start: date("2024-05-01"),
			End:   date("2024-05-01"),
		})
		if err == nil {
			t.Fatalf("expected create event error")
		}
	})
}
