package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"folio/internal/modules/showcase/domain"
	"folio/internal/modules/showcase/dto"
	showcasein "folio/internal/modules/showcase/port/in"
	showcaseout "folio/internal/modules/showcase/port/out"
	"folio/internal/modules/showcase/service"
	apperrors "folio/internal/platform/errors"
)

// Deps wires the interactor. Pipelines must share the store the loader
// writes to.
type Deps struct {
	Pages     []domain.Page
	Loader    *service.LoadService
	Pipelines map[dto.Format]*service.PipelineService
	Documents map[dto.Format]showcaseout.DocumentRenderer
	Exporter  *service.ExportService
	Index     *service.IndexService
	WriterFor func(outDir string) showcaseout.SiteWriter
	Log       *zap.Logger
}

type binderKey struct {
	page   string
	format dto.Format
}

type Interactor struct {
	deps    Deps
	pages   map[string]domain.Page
	order   []string
	mu      sync.Mutex
	binders map[binderKey]*service.Binder
}

func NewInteractor(deps Deps) (showcasein.Usecase, error) {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if _, ok := deps.Pipelines[dto.FormatHTML]; !ok {
		return nil, fmt.Errorf("%w: html pipeline is required", apperrors.ErrInvalidInput)
	}
	i := &Interactor{
		deps:    deps,
		pages:   map[string]domain.Page{},
		binders: map[binderKey]*service.Binder{},
	}
	for _, p := range deps.Pages {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err)
		}
		if _, dup := i.pages[p.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate page %q", apperrors.ErrInvalidInput, p.Name)
		}
		i.pages[p.Name] = p
		i.order = append(i.order, p.Name)
	}
	return i, nil
}

func (i *Interactor) Pages(context.Context) []dto.PageOutput {
	out := make([]dto.PageOutput, 0, len(i.order))
	for _, name := range i.order {
		p := i.pages[name]
		out = append(out, dto.PageOutput{Name: p.Name, Title: p.Title, Kind: string(p.Kind), Featured: p.FeaturedView})
	}
	return out
}

// Load fetches the page from its sources and discards any selection state
// built on the previous collection. When every source fails the output still
// carries the rendered load-error placeholder.
func (i *Interactor) Load(ctx context.Context, input dto.LoadInput) (dto.LoadOutput, error) {
	page, err := i.page(input.Page)
	if err != nil {
		return dto.LoadOutput{}, err
	}
	pipeline, err := i.pipeline(input.Format)
	if err != nil {
		return dto.LoadOutput{}, err
	}
	out := dto.LoadOutput{Page: page.Name}
	result, err := i.load(ctx, page)
	if err != nil {
		failure, rerr := pipeline.LoadFailure(page, err)
		if rerr != nil {
			i.deps.Log.Warn("Load failure placeholder not rendered", zap.String("page", page.Name), zap.Error(rerr))
		}
		out.Failure = failure
		return out, err
	}
	out.Source = result.Source
	out.Count = result.Collection.Len()
	return out, nil
}

// View applies the requested values through the page's binder, so a view
// request is equivalent to activating the matching controls in order. The
// values are applied to a copy; the binder only changes when all of them are
// accepted.
func (i *Interactor) View(ctx context.Context, input dto.ViewInput) (dto.ViewOutput, error) {
	if input.Format == "" {
		input.Format = dto.FormatHTML
	}
	b, err := i.binder(ctx, input.Page, input.Format)
	if err != nil {
		return dto.ViewOutput{}, err
	}
	var documents showcaseout.DocumentRenderer
	if input.Document {
		if documents = i.deps.Documents[input.Format]; documents == nil {
			return dto.ViewOutput{}, fmt.Errorf("%w: no document renderer for format %q", apperrors.ErrInvalidInput, input.Format)
		}
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	next := b.Clone()
	view := next.View()
	for _, req := range []struct{ group, value string }{
		{next.Page().CategoryGroup, input.Category},
		{"tag", input.Tag},
		{"sort", input.Sort},
	} {
		if strings.TrimSpace(req.value) == "" {
			continue
		}
		view, err = next.ActivateValue(req.group, req.value)
		if err != nil {
			return dto.ViewOutput{}, err
		}
	}
	key := binderKey{page: next.Page().Name, format: input.Format}
	if i.binders[key] == b {
		i.binders[key] = next
	}
	out := mapView(next.Page().Name, view)
	if documents != nil {
		doc, _, err := service.Document(next)
		if err != nil {
			return dto.ViewOutput{}, err
		}
		if out.Markup, err = documents.RenderDocument(doc); err != nil {
			return dto.ViewOutput{}, err
		}
	}
	return out, nil
}

func (i *Interactor) Controls(ctx context.Context, page string, format dto.Format) ([]dto.ControlGroupOutput, error) {
	b, err := i.binder(ctx, page, format)
	if err != nil {
		return nil, err
	}
	i.mu.Lock()
	groups := b.Groups()
	i.mu.Unlock()
	out := make([]dto.ControlGroupOutput, 0, len(groups))
	for _, g := range groups {
		og := dto.ControlGroupOutput{Group: g.Name, Axis: string(g.Axis)}
		for _, c := range g.Controls {
			og.Controls = append(og.Controls, dto.ControlOutput{ID: c.ID, Value: c.Value, Label: c.Label, Active: c.Active})
		}
		out = append(out, og)
	}
	return out, nil
}

func (i *Interactor) Activate(ctx context.Context, input dto.ActivateInput) (dto.ViewOutput, error) {
	b, err := i.binder(ctx, input.Page, input.Format)
	if err != nil {
		return dto.ViewOutput{}, err
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	view, err := b.Activate(input.ControlID)
	if err != nil {
		return dto.ViewOutput{}, err
	}
	return mapView(b.Page().Name, view), nil
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	if strings.TrimSpace(input.OutDir) == "" {
		return dto.ExportOutput{}, fmt.Errorf("%w: output directory is required", apperrors.ErrInvalidInput)
	}
	if i.deps.Exporter == nil || i.deps.WriterFor == nil {
		return dto.ExportOutput{}, fmt.Errorf("%w: export is not configured", apperrors.ErrInvalidInput)
	}
	names := input.Pages
	if len(names) == 0 {
		names = i.order
	}
	writer := i.deps.WriterFor(input.OutDir)
	var out dto.ExportOutput
	for _, name := range names {
		page, err := i.page(name)
		if err != nil {
			return out, err
		}
		if err := i.ensureLoaded(ctx, page); err != nil {
			return out, err
		}
		written, err := i.deps.Exporter.ExportPage(ctx, page, writer)
		out.Written = append(out.Written, written...)
		if err != nil {
			return out, fmt.Errorf("export %s: %w", page.Name, err)
		}
	}
	return out, nil
}

// Reindex always reloads from the sources before projecting.
func (i *Interactor) Reindex(ctx context.Context, name string) (dto.ReindexOutput, error) {
	page, err := i.page(name)
	if err != nil {
		return dto.ReindexOutput{}, err
	}
	if i.deps.Index == nil {
		return dto.ReindexOutput{}, fmt.Errorf("%w: record index is not configured", apperrors.ErrInvalidInput)
	}
	result, err := i.load(ctx, page)
	if err != nil {
		return dto.ReindexOutput{}, err
	}
	n, err := i.deps.Index.Reindex(ctx, page)
	if err != nil {
		return dto.ReindexOutput{}, fmt.Errorf("reindex %s: %w", page.Name, err)
	}
	return dto.ReindexOutput{Page: page.Name, Source: result.Source, Records: n}, nil
}

func (i *Interactor) Stats(ctx context.Context, name string) (dto.StatsOutput, error) {
	page, err := i.page(name)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	if i.deps.Index == nil {
		return dto.StatsOutput{}, fmt.Errorf("%w: record index is not configured", apperrors.ErrInvalidInput)
	}
	stats, err := i.deps.Index.Stats(ctx, page)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	return dto.StatsOutput{
		Page:       stats.Page,
		Total:      stats.Total,
		Categories: mapCounts(stats.Categories),
		Tags:       mapCounts(stats.Tags),
	}, nil
}

func (i *Interactor) page(name string) (domain.Page, error) {
	p, ok := i.pages[strings.TrimSpace(name)]
	if !ok {
		return domain.Page{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownPage, name)
	}
	return p, nil
}

func (i *Interactor) pipeline(format dto.Format) (*service.PipelineService, error) {
	if format == "" {
		format = dto.FormatHTML
	}
	p, ok := i.deps.Pipelines[format]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported format %q", apperrors.ErrInvalidInput, format)
	}
	return p, nil
}

func (i *Interactor) load(ctx context.Context, page domain.Page) (service.LoadResult, error) {
	result, err := i.deps.Loader.Load(ctx, page)
	if err != nil && ctx.Err() != nil {
		return result, err
	}
	// Success or exhaustion: binders built on the previous collection are stale.
	i.mu.Lock()
	for key := range i.binders {
		if key.page == page.Name {
			delete(i.binders, key)
		}
	}
	i.mu.Unlock()
	return result, err
}

func (i *Interactor) ensureLoaded(ctx context.Context, page domain.Page) error {
	if i.deps.Pipelines[dto.FormatHTML].Store().Loaded(page.Name) {
		return nil
	}
	_, err := i.load(ctx, page)
	return err
}

// binder returns the page's binder for format, loading the page first when
// nothing has been loaded yet.
func (i *Interactor) binder(ctx context.Context, name string, format dto.Format) (*service.Binder, error) {
	page, err := i.page(name)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = dto.FormatHTML
	}
	pipeline, err := i.pipeline(format)
	if err != nil {
		return nil, err
	}
	if err := i.ensureLoaded(ctx, page); err != nil {
		return nil, err
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	key := binderKey{page: page.Name, format: format}
	if b, ok := i.binders[key]; ok {
		return b, nil
	}
	b, err := service.NewBinder(page, pipeline, i.deps.Log)
	if err != nil {
		return nil, err
	}
	i.binders[key] = b
	return b, nil
}

func mapView(page string, v service.View) dto.ViewOutput {
	return dto.ViewOutput{
		Page: page,
		Selection: dto.SelectionOutput{
			Category: v.Selection.Category,
			Tag:      v.Selection.Tag,
			Sort:     string(v.Selection.Sort),
		},
		Markup:          v.List,
		Featured:        v.Featured,
		FeaturedVisible: v.FeaturedVisible,
		Shown:           len(v.Records),
		Total:           v.Total,
		Empty:           v.Empty(),
		Summary:         v.Summary,
	}
}

func mapCounts(counts []domain.Count) []dto.CountOutput {
	out := make([]dto.CountOutput, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.CountOutput{Value: c.Value, Count: c.N})
	}
	return out
}
