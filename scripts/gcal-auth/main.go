// Command gcal-auth stores the OAuth token the API server needs to mirror tasks
// into Google Calendar with desktop (installed app) credentials.
//
// Usage:
//
//	go run ./scripts/gcal-auth [--credentials google-credentials.json]
//
// Without --credentials the path is read from google.credentials_path in the
// service config. The token is written next to the credentials file, where
// the calendar client looks for it.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"golang.org/x/oauth2"

	"project-tracker/config"
	"project-tracker/pkg/gcalendar"
	"project-tracker/pkg/log"
)

func main() {
	app := kingpin.New("gcal-auth", "Authorize task calendar sync for OAuth desktop credentials.")
	credentials := app.Flag("credentials", "OAuth desktop credentials file. Defaults to google.credentials_path.").String()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	ctx := context.Background()
	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         log.ModeDevelopment,
		Encoding:     log.EncodingConsole,
		ColorEnabled: true,
	})

	credsPath, err := credentialsPath(*credentials)
	if err != nil {
		logger.Fatalf(ctx, "Failed to resolve credentials path: %v", err)
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read credentials file %q: %v", credsPath, err)
	}
	oauthCfg, err := gcalendar.OAuthConfig(data)
	if err != nil {
		logger.Fatalf(ctx, "%q is not an OAuth desktop credentials file: %v", credsPath, err)
	}

	code, err := promptCode(os.Stdin, os.Stdout, oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
	if err != nil {
		logger.Fatalf(ctx, "Failed to read authorization code: %v", err)
	}

	tok, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		logger.Fatalf(ctx, "Failed to exchange authorization code: %v", err)
	}

	tokenPath := gcalendar.TokenPath(credsPath)
	if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
		logger.Fatalf(ctx, "Failed to save token: %v", err)
	}
	logger.Infof(ctx, "Token saved to %s; restart the API to enable calendar sync", tokenPath)
}

func credentialsPath(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	if cfg.Google.CredentialsPath == "" {
		return "", errors.New("google.credentials_path is not set, pass --credentials")
	}
	return cfg.Google.CredentialsPath, nil
}

// promptCode shows the consent URL and reads the pasted authorization code.
func promptCode(in io.Reader, out io.Writer, authURL string) (string, error) {
	fmt.Fprintln(out, "Open this URL and sign in with the calendar owner account:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, authURL)
	fmt.Fprintln(out)
	fmt.Fprint(out, "Authorization code: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	code := strings.TrimSpace(line)
	if code == "" {
		return "", errors.New("empty authorization code")
	}
	return code, nil
}
