package in

import (
	"context"

	"folio/internal/modules/showcase/dto"
	showcasein "folio/internal/modules/showcase/port/in"
)

// TUIHandler drives the terminal browser. Everything renders as text.
type TUIHandler struct {
	usecase showcasein.Usecase
}

func NewTUIHandler(usecase showcasein.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Pages(ctx context.Context) []dto.PageOutput {
	return h.usecase.Pages(ctx)
}

func (h TUIHandler) Load(ctx context.Context, page string) (dto.LoadOutput, error) {
	return h.usecase.Load(ctx, dto.LoadInput{Page: page, Format: dto.FormatText})
}

func (h TUIHandler) View(ctx context.Context, page string) (dto.ViewOutput, error) {
	return h.usecase.View(ctx, dto.ViewInput{Page: page, Format: dto.FormatText})
}

func (h TUIHandler) Controls(ctx context.Context, page string) ([]dto.ControlGroupOutput, error) {
	return h.usecase.Controls(ctx, page, dto.FormatText)
}

func (h TUIHandler) Activate(ctx context.Context, page, controlID string) (dto.ViewOutput, error) {
	return h.usecase.Activate(ctx, dto.ActivateInput{Page: page, Format: dto.FormatText, ControlID: controlID})
}
