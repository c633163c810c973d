package out

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"folio/internal/modules/showcase/domain"
	showcaseout "folio/internal/modules/showcase/port/out"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type itemData struct {
	Category    string
	Tags        []string
	Date        string
	DateLabel   string
	Title       string
	Description string
	Label       string
	Class       string
	Image       string
	Link        string
	Repo        string
	Demo        string
	Href        string
	Featured    bool
}

type listData struct {
	Layout string
	Items  []itemData
}

type failureData struct {
	Text  string
	Cause string
}

type controlData struct {
	Group  string
	Value  string
	Label  string
	Href   string
	Active bool
}

type groupData struct {
	Name     string
	Controls []controlData
}

type documentData struct {
	Name            string
	Title           string
	Groups          []groupData
	Summary         string
	ContainerID     string
	ContainerClass  string
	List            template.HTML
	Featured        template.HTML
	FeaturedVisible bool
}

// HTMLRenderer renders records as the markup the site's stylesheets expect.
type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("showcase").Funcs(sprig.FuncMap()).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

func (r *HTMLRenderer) RenderList(page domain.Page, records []domain.Record) (string, error) {
	if len(records) == 0 {
		return r.execute("empty-state", emptyText(page))
	}
	return r.execute("list", listData{Layout: string(page.Layout), Items: items(page, records, false)})
}

func (r *HTMLRenderer) RenderFeatured(page domain.Page, records []domain.Record) (string, error) {
	if len(records) == 0 {
		return "", nil
	}
	return r.execute("list", listData{Layout: string(domain.LayoutCards), Items: items(page, records, true)})
}

func (r *HTMLRenderer) RenderLoadFailure(page domain.Page, cause error) (string, error) {
	data := failureData{Text: errorText(page)}
	if cause != nil {
		data.Cause = cause.Error()
	}
	return r.execute("load-error", data)
}

func (r *HTMLRenderer) RenderDocument(doc showcaseout.PageDocument) (string, error) {
	data := documentData{
		Name:            doc.Page.Name,
		Title:           doc.Page.Title,
		Summary:         doc.Summary,
		ContainerID:     "timeline",
		ContainerClass:  "timeline",
		List:            template.HTML(doc.List),
		Featured:        template.HTML(doc.Featured),
		FeaturedVisible: doc.FeaturedVisible && doc.Featured != "",
	}
	if data.Title == "" {
		data.Title = doc.Page.Name
	}
	if doc.Page.Layout == domain.LayoutCards {
		data.ContainerID = "project-grid"
		data.ContainerClass = "grid"
	}
	for _, g := range doc.Groups {
		gd := groupData{Name: g.Name}
		for _, c := range g.Controls {
			gd.Controls = append(gd.Controls, controlData{
				Group:  c.Control.Group,
				Value:  c.Control.Value,
				Label:  c.Control.Label,
				Href:   c.Href,
				Active: c.Control.Active,
			})
		}
		data.Groups = append(data.Groups, gd)
	}
	return r.execute("document", data)
}

func (r *HTMLRenderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func items(page domain.Page, records []domain.Record, featured bool) []itemData {
	out := make([]itemData, 0, len(records))
	for _, rec := range records {
		out = append(out, itemData{
			Category:    string(rec.Category),
			Tags:        rec.Tags,
			Date:        rec.Date.String(),
			DateLabel:   rec.DateLabel(),
			Title:       rec.Title,
			Description: rec.Description,
			Label:       page.CategoryLabel(rec.Category),
			Class:       page.CategoryClass(rec.Category),
			Image:       rec.Image,
			Link:        rec.Link,
			Repo:        rec.Repo,
			Demo:        rec.Demo,
			Href:        rec.PrimaryLink(),
			Featured:    featured,
		})
	}
	return out
}

func emptyText(page domain.Page) string {
	if page.EmptyText != "" {
		return page.EmptyText
	}
	return fmt.Sprintf("No %s match the current filters.", page.Noun())
}

func errorText(page domain.Page) string {
	if page.ErrorText != "" {
		return page.ErrorText
	}
	return fmt.Sprintf("Unable to load %s.", page.Noun())
}
