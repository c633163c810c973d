package service

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"folio/internal/modules/showcase/domain"
	showcaseout "folio/internal/modules/showcase/port/out"
)

// View is the result of one filter → sort → render pass.
type View struct {
	Selection       domain.Selection
	Records         []domain.Record
	Total           int
	List            string
	Featured        string
	FeaturedVisible bool
	Summary         string
}

func (v View) Empty() bool { return len(v.Records) == 0 }

type PipelineService struct {
	store    *Store
	renderer showcaseout.ViewRenderer
	printer  *message.Printer
}

func NewPipelineService(store *Store, renderer showcaseout.ViewRenderer) *PipelineService {
	return &PipelineService{store: store, renderer: renderer, printer: message.NewPrinter(language.English)}
}

// View renders the page's current collection under sel. It fails with
// ErrNotLoaded until the page has been loaded once.
func (p *PipelineService) View(page domain.Page, sel domain.Selection) (View, error) {
	if err := sel.Validate(); err != nil {
		return View{}, err
	}
	col, err := p.store.Get(page.Name)
	if err != nil {
		return View{}, err
	}
	records := col.Records()
	ordered := domain.Apply(records, sel)

	list, err := p.renderer.RenderList(page, ordered)
	if err != nil {
		return View{}, fmt.Errorf("render %s list: %w", page.Name, err)
	}
	view := View{
		Selection: sel,
		Records:   ordered,
		Total:     len(records),
		List:      list,
		Summary:   p.printer.Sprintf("Showing %d of %d %s", len(ordered), len(records), page.Noun()),
	}

	if page.FeaturedView {
		featured := domain.Featured(records)
		if len(featured) > 0 {
			markup, err := p.renderer.RenderFeatured(page, featured)
			if err != nil {
				return View{}, fmt.Errorf("render %s featured: %w", page.Name, err)
			}
			view.Featured = markup
			view.FeaturedVisible = true
		}
	}
	return view, nil
}

func (p *PipelineService) LoadFailure(page domain.Page, cause error) (string, error) {
	return p.renderer.RenderLoadFailure(page, cause)
}

func (p *PipelineService) Store() *Store { return p.store }
