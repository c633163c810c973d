package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"folio/internal/modules/showcase/domain"
	showcaseout "folio/internal/modules/showcase/port/out"
	apperrors "folio/internal/platform/errors"
)

type fakeFetcher struct {
	payloads map[string]string
	calls    []string
}

func (f *fakeFetcher) Fetch(_ context.Context, location string) ([]byte, error) {
	f.calls = append(f.calls, location)
	p, ok := f.payloads[location]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrNotFound, location)
	}
	return []byte(p), nil
}

// fakeDecoder reads "title|category|date|tag,tag|featured" lines.
type fakeDecoder struct{}

func (fakeDecoder) Decode(_ domain.Page, payload []byte) ([]domain.Record, error) {
	text := strings.TrimSpace(string(payload))
	if text == "garbage" {
		return nil, errors.New("unparseable")
	}
	var out []domain.Record
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		f := strings.Split(line, "|")
		d, err := domain.ParseDate(f[2])
		if err != nil {
			return nil, err
		}
		tags := []string{}
		if f[3] != "" {
			tags = strings.Split(f[3], ",")
		}
		out = append(out, domain.Record{
			Title:    f[0],
			Category: domain.Category(f[1]),
			Date:     d,
			Tags:     tags,
			Featured: len(f) > 4 && f[4] == "featured",
		})
	}
	return out, nil
}

type fakeRenderer struct{ renders int }

func (r *fakeRenderer) RenderList(_ domain.Page, records []domain.Record) (string, error) {
	r.renders++
	if len(records) == 0 {
		return "<empty/>", nil
	}
	parts := make([]string, len(records))
	for i, rec := range records {
		parts[i] = "[" + rec.Title + "]"
	}
	return strings.Join(parts, ""), nil
}

func (r *fakeRenderer) RenderFeatured(page domain.Page, records []domain.Record) (string, error) {
	return r.RenderList(page, records)
}

func (r *fakeRenderer) RenderLoadFailure(_ domain.Page, cause error) (string, error) {
	return "<error>" + cause.Error() + "</error>", nil
}

type memWriter struct{ files map[string]string }

func (w *memWriter) WriteFile(rel string, content []byte) (string, error) {
	if w.files == nil {
		w.files = map[string]string{}
	}
	w.files[rel] = string(content)
	return rel, nil
}

type fakeDocuments struct{}

func (fakeDocuments) RenderDocument(doc showcaseout.PageDocument) (string, error) {
	var sb strings.Builder
	for _, g := range doc.Groups {
		for _, c := range g.Controls {
			mark := ""
			if c.Control.Active {
				mark = "*"
			}
			sb.WriteString(c.Control.ID + mark + "->" + c.Href + "\n")
		}
	}
	sb.WriteString(doc.List)
	return sb.String(), nil
}

const eventsPayload = `
launch|launch|2024-01-01|x
talk|talk|2024-06-01|y
`

func eventsPage() domain.Page {
	return domain.Page{
		Name:          "events",
		Kind:          domain.KindEvent,
		Layout:        domain.LayoutTimeline,
		CategoryGroup: "type",
		Sources:       []string{"/data/events.json"},
		Categories: []domain.CategoryDef{
			{Value: "launch", Label: "Launch"},
			{Value: "project", Label: "Project"},
			{Value: "hackathon", Label: "Competition"},
			{Value: "talk", Label: "Talk"},
			{Value: "award", Label: "Award"},
		},
	}
}

func projectsPage() domain.Page {
	return domain.Page{
		Name:          "projects",
		Kind:          domain.KindProject,
		Layout:        domain.LayoutCards,
		CategoryGroup: "status",
		Sources:       []string{"../data/projects.json", "data/projects.json", "/data/projects.json"},
		FeaturedView:  true,
		Categories: []domain.CategoryDef{
			{Value: "research", Label: "Research"},
			{Value: "wip", Label: "In Progress"},
			{Value: "shipped", Label: "Shipped"},
		},
	}
}

func mustNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
