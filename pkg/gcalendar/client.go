package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	dateLayout        = "2006-01-02"
	defaultCalendarID = "primary"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account JSON file path.
// OAuth desktop credentials are also accepted; their token.json is read from the same directory.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, TokenPath(credentialsPath))
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials JSON.
// tokenPath is only used for OAuth desktop credentials (see scripts/gcal-auth).
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	// Fallback: OAuth2 installed app credentials plus a stored token
	oauthConfig, cfgErr := OAuthConfig(credentialsJSON)
	if cfgErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tok, tokenErr := loadToken(tokenPath)
	if tokenErr != nil {
		return nil, tokenErr
	}

	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// UpsertEvent writes req as an all-day event. When req.EventID is set the event is
// updated in place; if it no longer exists a new event is created.
func (c *Client) UpsertEvent(ctx context.Context, req EventRequest) (Event, error) {
	if req.End.Before(req.Start) {
		return Event{}, fmt.Errorf("event end %s is before start %s", req.End.Format(dateLayout), req.Start.Format(dateLayout))
	}

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       &calendar.EventDateTime{Date: req.Start.Format(dateLayout)},
		// Google treats the end date of all-day events as exclusive.
		End: &calendar.EventDateTime{Date: req.End.AddDate(0, 0, 1).Format(dateLayout)},
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = defaultCalendarID
	}

	if req.EventID != "" {
		updated, err := c.service.Events.Update(calendarID, req.EventID, event).Context(ctx).Do()
		if err == nil {
			return toEvent(updated), nil
		}
		if !isNotFound(err) {
			return Event{}, fmt.Errorf("failed to update calendar event: %w", err)
		}
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return Event{}, fmt.Errorf("failed to create calendar event: %w", err)
	}
	return toEvent(created), nil
}

func toEvent(e *calendar.Event) Event {
	out := Event{
		ID:          e.Id,
		Summary:     e.Summary,
		Description: e.Description,
		HtmlLink:    e.HtmlLink,
	}
	if e.Start != nil {
		out.Start, out.AllDay = parseEventTime(e.Start)
	}
	if e.End != nil {
		end, allDay := parseEventTime(e.End)
		if allDay && !end.IsZero() {
			end = end.AddDate(0, 0, -1)
			if end.Before(out.Start) {
				end = out.Start
			}
		}
		out.End = end
	}
	return out
}

func parseEventTime(t *calendar.EventDateTime) (time.Time, bool) {
	if t.Date != "" {
		d, _ := time.Parse(dateLayout, t.Date)
		return d, true
	}
	dt, _ := time.Parse(time.RFC3339, t.DateTime)
	return dt, false
}

func isNotFound(err error) bool {
	var gerr *googleapi.Error
	return errors.As(err, &gerr) && (gerr.Code == http.StatusNotFound || gerr.Code == http.StatusGone)
}
