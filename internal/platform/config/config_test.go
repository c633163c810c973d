package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"folio/internal/platform/config"
)

func TestNewRequiresSiteRoot(t *testing.T) {
	t.Parallel()
	if _, err := config.New(""); err == nil {
		t.Fatalf("empty site root should fail")
	}
	cfg, err := config.New("/srv/site")
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.DBPath != filepath.Join("/srv/site", ".folio", "folio.db") {
		t.Fatalf("unexpected db path: %s", cfg.DBPath)
	}
	if _, ok := cfg.Page("events"); !ok {
		t.Fatalf("default events page missing")
	}
	projects, ok := cfg.Page("projects")
	if !ok || !projects.Featured || len(projects.Sources) != 4 || projects.Base != "/projects/" {
		t.Fatalf("unexpected projects page: %+v", projects)
	}
}

func TestLoadYAMLOverridesPages(t *testing.T) {
	site := t.TempDir()
	yml := `
http_timeout: 3s
logging:
  level: debug
pages:
  - name: talks
    kind: event
    layout: timeline
    category_group: type
    sources: [talks.json]
    categories:
      - {value: talk, label: Talk}
`
	if err := os.WriteFile(filepath.Join(site, config.DefaultFileName), []byte(yml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(site, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Logging.Level)
	}
	if len(cfg.Pages) != 1 || cfg.Pages[0].Name != "talks" {
		t.Fatalf("expected yaml pages to replace defaults, got %+v", cfg.Pages)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	site := t.TempDir()
	t.Setenv("FOLIO_LOG_LEVEL", "none")
	t.Setenv("FOLIO_DB", filepath.Join(site, "index.db"))
	cfg, err := config.Load(site, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Logging.Level != "none" {
		t.Fatalf("env should override level, got %q", cfg.Logging.Level)
	}
	if cfg.DBPath != filepath.Join(site, "index.db") {
		t.Fatalf("env should override db path, got %q", cfg.DBPath)
	}
	if len(cfg.Pages) != 2 {
		t.Fatalf("defaults expected without a config file")
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	t.Parallel()
	if _, err := config.Load(t.TempDir(), "nope.yaml"); err == nil {
		t.Fatalf("missing explicit config should fail")
	}
}

func TestInteractiveLoggingMovesLogsOffTerminal(t *testing.T) {
	t.Parallel()
	cfg, err := config.New("/srv/site")
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	tui := cfg.InteractiveLogging()
	if want := filepath.Join("/srv/site", ".folio", config.TUILogFileName); tui.Logging.Destination != want {
		t.Fatalf("destination = %q, want %q", tui.Logging.Destination, want)
	}
	if cfg.Logging.Destination != "" {
		t.Fatalf("the receiver must not change")
	}
	cfg.Logging.Destination = "/var/log/folio.log"
	if got := cfg.InteractiveLogging().Logging.Destination; got != "/var/log/folio.log" {
		t.Fatalf("an explicit destination is kept, got %q", got)
	}
}
