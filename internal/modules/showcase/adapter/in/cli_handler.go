package in

import (
	"context"

	"folio/internal/modules/showcase/dto"
	showcasein "folio/internal/modules/showcase/port/in"
)

type CLIHandler struct {
	usecase showcasein.Usecase
}

func NewCLIHandler(usecase showcasein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Pages(ctx context.Context) []dto.PageOutput {
	return h.usecase.Pages(ctx)
}

// Render loads page from its sources and renders the requested selection,
// either the list alone or the whole page when document is set. A load
// failure still returns the rendered placeholder in Markup.
func (h CLIHandler) Render(ctx context.Context, page, format, category, tag, sort string, document bool) (dto.ViewOutput, error) {
	f := dto.Format(format)
	loaded, err := h.usecase.Load(ctx, dto.LoadInput{Page: page, Format: f})
	if err != nil {
		return dto.ViewOutput{Page: page, Markup: loaded.Failure}, err
	}
	return h.usecase.View(ctx, dto.ViewInput{Page: page, Format: f, Category: category, Tag: tag, Sort: sort, Document: document})
}

func (h CLIHandler) Controls(ctx context.Context, page string) ([]dto.ControlGroupOutput, error) {
	return h.usecase.Controls(ctx, page, dto.FormatHTML)
}

func (h CLIHandler) Export(ctx context.Context, outDir string, pages []string) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx, dto.ExportInput{OutDir: outDir, Pages: pages})
}

func (h CLIHandler) Reindex(ctx context.Context, page string) (dto.ReindexOutput, error) {
	return h.usecase.Reindex(ctx, page)
}

func (h CLIHandler) Stats(ctx context.Context, page string) (dto.StatsOutput, error) {
	return h.usecase.Stats(ctx, page)
}
