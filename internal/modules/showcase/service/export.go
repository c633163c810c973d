package service

import (
	"context"
	"path"

	"go.uber.org/zap"

	"folio/internal/modules/showcase/domain"
	showcaseout "folio/internal/modules/showcase/port/out"
)

const indexFile = "index.html"

// ExportService writes every selection state reachable from the default one
// as a static document. Controls become links to the state they produce.
type ExportService struct {
	pipeline  *PipelineService
	documents showcaseout.DocumentRenderer
	log       *zap.Logger
}

func NewExportService(pipeline *PipelineService, documents showcaseout.DocumentRenderer, log *zap.Logger) *ExportService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExportService{pipeline: pipeline, documents: documents, log: log}
}

func (s *ExportService) ExportPage(ctx context.Context, page domain.Page, writer showcaseout.SiteWriter) ([]string, error) {
	root, err := NewBinder(page, s.pipeline, s.log)
	if err != nil {
		return nil, err
	}

	var written []string
	queue := []*Binder{root}
	seen := map[domain.Selection]bool{root.Selection(): true}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		b := queue[0]
		queue = queue[1:]

		doc, next, err := Document(b)
		if err != nil {
			return written, err
		}
		for _, n := range next {
			if !seen[n.Selection()] {
				seen[n.Selection()] = true
				queue = append(queue, n)
			}
		}
		html, err := s.documents.RenderDocument(doc)
		if err != nil {
			return written, err
		}
		p, err := writer.WriteFile(path.Join(page.Name, StateFile(b)), []byte(html))
		if err != nil {
			return written, err
		}
		written = append(written, p)
	}
	s.log.Info("Page exported", zap.String("page", page.Name), zap.Int("files", len(written)))
	return written, nil
}

// StateFile names the static file holding b's current state.
func StateFile(b *Binder) string {
	if b.Selection() == domain.DefaultSelection() {
		return indexFile
	}
	return b.StateKey() + ".html"
}

// Document describes b's current state with every control linked to the
// state its activation produces. It also returns those successor states, in
// control order. b itself is left untouched.
func Document(b *Binder) (showcaseout.PageDocument, []*Binder, error) {
	groups := b.Groups()
	links := make([]showcaseout.ControlLinkGroup, 0, len(groups))
	var next []*Binder
	for _, g := range groups {
		lg := showcaseout.ControlLinkGroup{Name: g.Name, Axis: g.Axis}
		for _, c := range g.Controls {
			n := b.Clone()
			if _, err := n.Activate(c.ID); err != nil {
				return showcaseout.PageDocument{}, nil, err
			}
			lg.Controls = append(lg.Controls, showcaseout.ControlLink{Control: c, Href: StateFile(n)})
			next = append(next, n)
		}
		links = append(links, lg)
	}
	view := b.View()
	return showcaseout.PageDocument{
		Page:            b.Page(),
		Selection:       b.Selection(),
		Groups:          links,
		List:            view.List,
		Featured:        view.Featured,
		FeaturedVisible: view.FeaturedVisible,
		Summary:         view.Summary,
	}, next, nil
}
