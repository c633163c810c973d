package bootstrap_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"folio/internal/bootstrap"
	"folio/internal/platform/config"
)

func TestDefaultPagesConvert(t *testing.T) {
	t.Parallel()
	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	pages, err := bootstrap.Pages(cfg)
	if err != nil {
		t.Fatalf("pages: %v", err)
	}
	if len(pages) != 2 || pages[0].Name != "events" || pages[1].Name != "projects" {
		t.Fatalf("unexpected pages %+v", pages)
	}
	if pages[0].CategoryLabel("hackathon") != "Competition" || pages[1].CategoryClass("wip") != "status--wip" {
		t.Fatalf("label and class tables not carried over")
	}
	if !pages[1].FeaturedView || len(pages[1].Sources) != 4 {
		t.Fatalf("projects page should probe four sources and show featured work")
	}
}

func TestInvalidPageRejected(t *testing.T) {
	t.Parallel()
	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.Pages[0].CategoryGroup = "sort"
	if _, err := bootstrap.Pages(cfg); err == nil {
		t.Fatalf("a category group bound to the sort axis must be rejected")
	}
}

func TestAppRendersFromSiteRoot(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "data"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	payload := `{"events":[{"type":"award","title":"Best demo","description":"x","date":"2024-05-01","dateDisplay":"May 2024","tags":["demo"]}]}`
	if err := os.WriteFile(filepath.Join(root, "data", "events.json"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := config.New(root)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	cfg.Logging.Level = "none"
	app, err := bootstrap.New(cfg)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })

	view, err := app.ShowcaseCLI.Render(context.Background(), "events", "html", "award", "", "", false)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if view.Shown != 1 || !strings.Contains(view.Markup, "May 2024") {
		t.Fatalf("unexpected view %+v", view)
	}
}
