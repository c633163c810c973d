package in

import (
	"context"

	"folio/internal/modules/showcase/dto"
)

type Usecase interface {
	Pages(ctx context.Context) []dto.PageOutput
	Load(ctx context.Context, input dto.LoadInput) (dto.LoadOutput, error)
	View(ctx context.Context, input dto.ViewInput) (dto.ViewOutput, error)
	Controls(ctx context.Context, page string, format dto.Format) ([]dto.ControlGroupOutput, error)
	Activate(ctx context.Context, input dto.ActivateInput) (dto.ViewOutput, error)
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
	Reindex(ctx context.Context, page string) (dto.ReindexOutput, error)
	Stats(ctx context.Context, page string) (dto.StatsOutput, error)
}
