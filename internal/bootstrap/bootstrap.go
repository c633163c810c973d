package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	showcaseinadapter "folio/internal/modules/showcase/adapter/in"
	showcaseoutadapter "folio/internal/modules/showcase/adapter/out"
	"folio/internal/modules/showcase/domain"
	"folio/internal/modules/showcase/dto"
	showcaseout "folio/internal/modules/showcase/port/out"
	showcaseservice "folio/internal/modules/showcase/service"
	showcaseusecase "folio/internal/modules/showcase/usecase"
	"folio/internal/platform/config"
	"folio/internal/platform/logging"
	uiapp "folio/internal/ui/app"
)

type App struct {
	ShowcaseCLI showcaseinadapter.CLIHandler
	ShowcaseTUI showcaseinadapter.TUIHandler
	Log         *zap.Logger

	closers []func() error
}

// New wires the showcase module from cfg. Callers must Close the app.
func New(cfg config.Config) (*App, error) {
	log, closeLog, err := logging.New(cfg.Logging.Level, cfg.Logging.Destination)
	if err != nil {
		return nil, err
	}
	app := &App{Log: log, closers: []func() error{closeLog}}

	pages, err := Pages(cfg)
	if err != nil {
		return nil, multierr.Append(err, app.Close())
	}

	html, err := showcaseoutadapter.NewHTMLRenderer()
	if err != nil {
		return nil, multierr.Append(err, app.Close())
	}
	projector, err := showcaseoutadapter.NewSQLiteRecordProjector(cfg.DBPath)
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("new record projector: %w", err), app.Close())
	}
	app.closers = append(app.closers, projector.Close)

	store := showcaseservice.NewStore()
	htmlPipeline := showcaseservice.NewPipelineService(store, html)
	text := showcaseoutadapter.NewTerminalRenderer()
	uc, err := showcaseusecase.NewInteractor(showcaseusecase.Deps{
		Pages: pages,
		Loader: showcaseservice.NewLoadService(
			showcaseoutadapter.NewSourceFetcher(cfg.SiteRoot, cfg.HTTPTimeout),
			showcaseoutadapter.NewJSONCodec(),
			store,
			log.Named("loader"),
		),
		Pipelines: map[dto.Format]*showcaseservice.PipelineService{
			dto.FormatHTML: htmlPipeline,
			dto.FormatText: showcaseservice.NewPipelineService(store, text),
		},
		Documents: map[dto.Format]showcaseout.DocumentRenderer{
			dto.FormatHTML: html,
			dto.FormatText: text,
		},
		Exporter: showcaseservice.NewExportService(htmlPipeline, html, log.Named("export")),
		Index:    showcaseservice.NewIndexService(store, projector),
		WriterFor: func(outDir string) showcaseout.SiteWriter {
			return showcaseoutadapter.NewDirWriter(outDir)
		},
		Log: log,
	})
	if err != nil {
		return nil, multierr.Append(err, app.Close())
	}

	app.ShowcaseCLI = showcaseinadapter.NewCLIHandler(uc)
	app.ShowcaseTUI = showcaseinadapter.NewTUIHandler(uc)
	return app, nil
}

// Close releases the record index and flushes the logger.
func (a *App) Close() error {
	var err error
	for i := len(a.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, a.closers[i]())
	}
	a.closers = nil
	return err
}

// Pages converts the configured pages into domain pages.
func Pages(cfg config.Config) ([]domain.Page, error) {
	out := make([]domain.Page, 0, len(cfg.Pages))
	for _, pc := range cfg.Pages {
		p := domain.Page{
			Name:          pc.Name,
			Kind:          domain.Kind(pc.Kind),
			Title:         pc.Title,
			Layout:        domain.Layout(pc.Layout),
			CategoryGroup: pc.CategoryGroup,
			Sources:       append([]string(nil), pc.Sources...),
			Base:          pc.Base,
			AssetPrefix:   pc.AssetPrefix,
			FeaturedView:  pc.Featured,
			EmptyText:     pc.EmptyText,
			ErrorText:     pc.ErrorText,
		}
		for _, c := range pc.Categories {
			p.Categories = append(p.Categories, domain.CategoryDef{Value: domain.Category(c.Value), Label: c.Label, Class: c.Class})
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.ShowcaseTUI)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	return err
}
