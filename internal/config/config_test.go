package config_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/torosent/burstload/internal/config"
)

func TestParseFlagsDefaults(t *testing.T) {
	loader := config.NewLoader(io.Discard)

	cfg, err := loader.Load([]string{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Requests != 100 {
		t.Errorf("Requests = %d, want 100", cfg.Requests)
	}
	if cfg.TargetURL != "http://localhost:9999" {
		t.Errorf("TargetURL = %q, want http://localhost:9999", cfg.TargetURL)
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantRequests int
		wantURL      string
	}{
		{
			name:         "requests only",
			args:         []string{"--requests", "25"},
			wantRequests: 25,
			wantURL:      config.DefaultTargetURL,
		},
		{
			name:         "url only",
			args:         []string{"--url", "http://example.com/health"},
			wantRequests: config.DefaultRequests,
			wantURL:      "http://example.com/health",
		},
		{
			name:         "both with equals syntax",
			args:         []string{"--requests=0", "--url=http://127.0.0.1:8080"},
			wantRequests: 0,
			wantURL:      "http://127.0.0.1:8080",
		},
		{
			name:         "url left unvalidated",
			args:         []string{"--url", "not a url"},
			wantRequests: config.DefaultRequests,
			wantURL:      "not a url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.NewLoader(io.Discard).Load(tt.args)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.Requests != tt.wantRequests {
				t.Errorf("Requests = %d, want %d", cfg.Requests, tt.wantRequests)
			}
			if cfg.TargetURL != tt.wantURL {
				t.Errorf("TargetURL = %q, want %q", cfg.TargetURL, tt.wantURL)
			}
		})
	}
}

func TestLoadRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"non numeric requests", []string{"--requests", "lots"}},
		{"unknown flag", []string{"--concurrency", "4"}},
		{"positional argument", []string{"http://example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := config.NewLoader(io.Discard).Load(tt.args); err == nil {
				t.Fatalf("Load(%v) expected error", tt.args)
			}
		})
	}
}

func TestLoadHelp(t *testing.T) {
	var buf bytes.Buffer
	_, err := config.NewLoader(&buf).Load([]string{"--help"})
	if !errors.Is(err, config.ErrHelpRequested) {
		t.Fatalf("Load(--help) error = %v, want ErrHelpRequested", err)
	}
	if !strings.Contains(buf.String(), "--requests") {
		t.Fatalf("help not written to the loader's writer, got %q", buf.String())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{"defaults", config.Config{Requests: 100, TargetURL: config.DefaultTargetURL}, false},
		{"zero requests", config.Config{Requests: 0, TargetURL: config.DefaultTargetURL}, false},
		{"empty url", config.Config{Requests: 1}, false},
		{"negative requests", config.Config{Requests: -1, TargetURL: config.DefaultTargetURL}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrorListsIssues(t *testing.T) {
	err := config.Config{Requests: -5}.Validate()

	var verr config.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	issues := verr.Issues()
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if !strings.Contains(err.Error(), "requests must be >= 0") {
		t.Errorf("Error() = %q, want mention of requests", err.Error())
	}
}
