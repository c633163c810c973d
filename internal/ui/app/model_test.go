package app_test

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/modules/showcase/dto"
	"folio/internal/ui/app"
	"folio/internal/ui/components"
	browseview "folio/internal/ui/views/browse"
)

type fakePort struct{ activated []string }

func (f *fakePort) Pages(context.Context) []dto.PageOutput {
	return []dto.PageOutput{{Name: "events", Title: "Events"}, {Name: "projects", Title: "Projects"}}
}

func (f *fakePort) Load(context.Context, string) (dto.LoadOutput, error) {
	return dto.LoadOutput{}, nil
}

func (f *fakePort) View(_ context.Context, page string) (dto.ViewOutput, error) {
	return dto.ViewOutput{Page: page, Markup: page + " list", Summary: "Showing 1 of 1 " + page}, nil
}

func (f *fakePort) Controls(_ context.Context, page string) ([]dto.ControlGroupOutput, error) {
	return []dto.ControlGroupOutput{{Group: "tag", Controls: []dto.ControlOutput{{ID: "tag-all", Label: "All", Active: true}}}}, nil
}

func (f *fakePort) Activate(_ context.Context, page, id string) (dto.ViewOutput, error) {
	f.activated = append(f.activated, page+":"+id)
	return dto.ViewOutput{Page: page, Summary: "activated"}, nil
}

func TestTabsFollowPagesAndRouteLoads(t *testing.T) {
	t.Parallel()
	port := &fakePort{}
	var model tea.Model = app.NewModel(port)
	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	model, _ = model.Update(browseview.LoadedMsg{Page: "projects", View: dto.ViewOutput{Markup: "projects list", Summary: "Showing 1 of 1 projects"}})
	model, _ = model.Update(browseview.LoadedMsg{Page: "events", View: dto.ViewOutput{Markup: "events list", Summary: "Showing 1 of 1 events"}})

	out := model.View()
	if !strings.Contains(out, "Events") || !strings.Contains(out, "Projects") || !strings.Contains(out, "events list") {
		t.Fatalf("expected tabs and the events page:\n%s", out)
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(model.View(), "projects list") {
		t.Fatalf("tab should switch to the projects page:\n%s", model.View())
	}
}

func TestPaletteSubmitActivatesOnActivePage(t *testing.T) {
	t.Parallel()
	port := &fakePort{}
	var model tea.Model = app.NewModel(port)
	model, cmd := model.Update(components.PaletteSubmitMsg{Input: "tag-all"})
	if cmd == nil {
		t.Fatalf("palette submit should issue an activation")
	}
	cmd()
	if len(port.activated) != 1 || port.activated[0] != "events:tag-all" {
		t.Fatalf("unexpected activations %v", port.activated)
	}
	_ = model
}
