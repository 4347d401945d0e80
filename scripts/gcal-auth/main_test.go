package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestCredentialsPathFlag(t *testing.T) {
	got, err := credentialsPath("/etc/app/creds.json")
	if err != nil || got != "/etc/app/creds.json" {
		t.Errorf("credentialsPath() = %q, %v", got, err)
	}
}

func TestPromptCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "Code with newline", input: "4/abc-123\n", want: "4/abc-123"},
		{name: "Code without newline", input: "  4/xyz  ", want: "4/xyz"},
		{name: "Empty input", input: "\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := promptCode(strings.NewReader(tt.input), &out, "https://accounts.example/auth")
			if (err != nil) != tt.wantErr {
				t.Fatalf("promptCode() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("promptCode() = %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), "https://accounts.example/auth") {
				t.Errorf("prompt should show the consent URL, got %q", out.String())
			}
		})
	}
}
