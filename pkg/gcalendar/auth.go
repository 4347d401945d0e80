package gcalendar

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

const tokenFile = "token.json"

// TokenPath is where the OAuth token for desktop credentials at credentialsPath is stored.
func TokenPath(credentialsPath string) string {
	return filepath.Join(filepath.Dir(credentialsPath), tokenFile)
}

// OAuthConfig parses OAuth desktop credentials for the calendar scope.
func OAuthConfig(credentialsJSON []byte) (*oauth2.Config, error) {
	return google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
}

// SaveToken writes tok to path, readable by the owner only.
func SaveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func loadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token found at %s: run scripts/gcal-auth", path)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &tok, nil
}
