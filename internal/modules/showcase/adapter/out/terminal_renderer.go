package out

import (
	"strings"

	"folio/internal/modules/showcase/domain"
	showcaseout "folio/internal/modules/showcase/port/out"
	"folio/internal/ui/theme"
)

// TerminalRenderer renders the same fragments as HTMLRenderer for a
// terminal. Records are separated by blank lines.
type TerminalRenderer struct{}

func NewTerminalRenderer() TerminalRenderer { return TerminalRenderer{} }

func (TerminalRenderer) RenderList(page domain.Page, records []domain.Record) (string, error) {
	if len(records) == 0 {
		return theme.Empty.Render(emptyText(page)), nil
	}
	blocks := make([]string, 0, len(records))
	for _, rec := range records {
		blocks = append(blocks, terminalItem(page, rec, false))
	}
	return strings.Join(blocks, "\n\n"), nil
}

func (TerminalRenderer) RenderFeatured(page domain.Page, records []domain.Record) (string, error) {
	blocks := make([]string, 0, len(records))
	for _, rec := range records {
		blocks = append(blocks, terminalItem(page, rec, true))
	}
	return strings.Join(blocks, "\n\n"), nil
}

func (TerminalRenderer) RenderLoadFailure(page domain.Page, cause error) (string, error) {
	msg := "File not found"
	if cause != nil {
		msg = cause.Error()
	}
	return theme.Hot.Render(errorText(page)) + "\n" + theme.Muted.Render("Error: "+msg), nil
}

// RenderDocument lays out a full selection state: control rows, summary,
// featured strip and list.
func (TerminalRenderer) RenderDocument(doc showcaseout.PageDocument) (string, error) {
	var sb strings.Builder
	title := doc.Page.Title
	if title == "" {
		title = doc.Page.Name
	}
	sb.WriteString(theme.Title.Render(title) + "\n\n")
	for _, g := range doc.Groups {
		sb.WriteString(theme.ButtonRow(g.Name, buttonsOf(g)) + "\n")
	}
	if doc.Summary != "" {
		sb.WriteString("\n" + theme.Muted.Render(doc.Summary) + "\n")
	}
	if doc.FeaturedVisible && doc.Featured != "" {
		sb.WriteString("\n" + theme.Hot.Render("Featured") + "\n" + doc.Featured + "\n")
	}
	sb.WriteString("\n" + doc.List + "\n")
	return sb.String(), nil
}

func buttonsOf(g showcaseout.ControlLinkGroup) []theme.RowButton {
	out := make([]theme.RowButton, 0, len(g.Controls))
	for _, c := range g.Controls {
		out = append(out, theme.RowButton{Label: c.Control.Label, Active: c.Control.Active})
	}
	return out
}

func terminalItem(page domain.Page, rec domain.Record, featured bool) string {
	badge := theme.Badge
	if page.CategoryClass(rec.Category) != "" {
		badge = theme.BadgeAccent
	}
	head := theme.RecordTitle.Render(rec.Title)
	if featured {
		head = theme.Hot.Render("★ ") + head
	}
	lines := []string{
		head + "  " + theme.Muted.Render(rec.DateLabel()),
		badge.Render(page.CategoryLabel(rec.Category)),
	}
	if rec.Description != "" {
		lines = append(lines, rec.Description)
	}
	if len(rec.Tags) > 0 {
		tags := make([]string, len(rec.Tags))
		for i, t := range rec.Tags {
			tags[i] = "#" + t
		}
		lines = append(lines, theme.Tag.Render(strings.Join(tags, " ")))
	}
	if href := rec.PrimaryLink(); href != "" {
		lines = append(lines, theme.Link.Render(href))
	}
	return strings.Join(lines, "\n")
}
