package components_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/modules/showcase/dto"
	"folio/internal/ui/components"
)

func groups() []dto.ControlGroupOutput {
	return []dto.ControlGroupOutput{
		{Group: "type", Controls: []dto.ControlOutput{{ID: "type-all", Active: true}, {ID: "type-launch"}, {ID: "type-talk"}}},
		{Group: "sort", Controls: []dto.ControlOutput{{ID: "sort-newest", Active: true}, {ID: "sort-oldest"}}},
	}
}

func TestControlBarCursor(t *testing.T) {
	t.Parallel()
	var b components.ControlBar
	if _, ok := b.Focused(); ok {
		t.Fatalf("empty bar has no focus")
	}
	b.SetGroups(groups())
	b.Right()
	b.Right()
	b.Right()
	if id, _ := b.Focused(); id != "type-talk" {
		t.Fatalf("cursor should stop at the last control, got %s", id)
	}
	b.Down()
	if id, _ := b.Focused(); id != "sort-oldest" {
		t.Fatalf("moving down clamps the column, got %s", id)
	}
	b.Down()
	b.Left()
	b.Left()
	b.Up()
	if id, _ := b.Focused(); id != "type-all" {
		t.Fatalf("unexpected focus %s", id)
	}
	if len(b.IDs()) != 5 {
		t.Fatalf("expected 5 ids, got %v", b.IDs())
	}
}

func TestPaletteCompletesUniquePrefix(t *testing.T) {
	t.Parallel()
	p := components.NewPalette()
	p.Open([]string{"type-launch", "type-talk", "sort-oldest"})
	for _, r := range "sort" {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Visible() || cmd == nil {
		t.Fatalf("enter should close the palette and emit a command")
	}
	msg, ok := cmd().(components.PaletteSubmitMsg)
	if !ok || msg.Input != "sort-oldest" {
		t.Fatalf("expected completion to sort-oldest, got %#v", msg)
	}
}
