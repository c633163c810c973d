package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const projectsJSON = `{"projects":[
  {"status":"wip","title":"Folio","intent":"render","date":"2024-02","tags":["go"],"featured":true},
  {"status":"shipped","title":"Old tool","intent":"done","date":"2022-03","tags":["cli"]}
]}`

func siteWithProjects(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "data"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "data", "projects.json"), []byte(projectsJSON), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return root
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRenderCommandFiltersByFlags(t *testing.T) {
	t.Parallel()
	site := siteWithProjects(t)
	out, err := run(t, "--site", site, "--log-level", "none", "render", "projects", "--category", "shipped", "--format", "text")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Old tool") || strings.Contains(out, "Folio") {
		t.Fatalf("expected only the shipped project:\n%s", out)
	}
}

func TestRenderCommandPrintsWholeDocument(t *testing.T) {
	t.Parallel()
	site := siteWithProjects(t)
	out, err := run(t, "--site", site, "--log-level", "none", "render", "projects", "--format", "text", "--document")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Projects", "status", "In Progress", "Featured", "Showing 2 of 2 projects", "Old tool"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderCommandPrintsLoadFailure(t *testing.T) {
	t.Parallel()
	out, err := run(t, "--site", t.TempDir(), "--log-level", "none", "render", "events")
	if err == nil {
		t.Fatalf("expected an error without data")
	}
	if !strings.Contains(out, "Failed to load events.") {
		t.Fatalf("load-error placeholder should still be printed:\n%s", out)
	}
}

func TestControlsCommandMarksActive(t *testing.T) {
	t.Parallel()
	site := siteWithProjects(t)
	out, err := run(t, "--site", site, "--log-level", "none", "controls", "projects")
	if err != nil {
		t.Fatalf("controls: %v", err)
	}
	if !strings.Contains(out, "* status-all") || !strings.Contains(out, "* sort-newest") || !strings.Contains(out, "status-wip") {
		t.Fatalf("unexpected controls listing:\n%s", out)
	}
}

func TestReindexThenStats(t *testing.T) {
	t.Parallel()
	site := siteWithProjects(t)
	if _, err := run(t, "--site", site, "--log-level", "none", "reindex", "projects"); err != nil {
		t.Fatalf("reindex: %v", err)
	}
	out, err := run(t, "--site", site, "--log-level", "none", "stats", "projects")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out, "projects: 2 records") || !strings.Contains(out, "shipped") {
		t.Fatalf("unexpected stats:\n%s", out)
	}
}
