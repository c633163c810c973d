package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"folio/internal/modules/showcase/domain"
	apperrors "folio/internal/platform/errors"
)

// Binder owns the selection state of one page. Activating a control is the
// only way to change it, and every change re-renders synchronously.
type Binder struct {
	page      domain.Page
	pipeline  *PipelineService
	registry  *domain.ControlRegistry
	selection domain.Selection
	view      View
	log       *zap.Logger
}

// NewBinder resolves the control registry for a loaded page and renders the
// default selection.
func NewBinder(page domain.Page, pipeline *PipelineService, log *zap.Logger) (*Binder, error) {
	if log == nil {
		log = zap.NewNop()
	}
	col, err := pipeline.Store().Get(page.Name)
	if err != nil {
		return nil, err
	}
	sel := domain.DefaultSelection()
	registry, err := domain.NewControlRegistry(domain.BuildControls(page, col), sel)
	if err != nil {
		return nil, fmt.Errorf("controls for %s: %w", page.Name, err)
	}
	view, err := pipeline.View(page, sel)
	if err != nil {
		return nil, err
	}
	return &Binder{page: page, pipeline: pipeline, registry: registry, selection: sel, view: view, log: log}, nil
}

// Activate applies the control's value to its axis. On failure the previous
// state is kept.
func (b *Binder) Activate(controlID string) (View, error) {
	c, ok := b.registry.Lookup(controlID)
	if !ok {
		return b.view, fmt.Errorf("%w: %q on page %s", apperrors.ErrUnknownControl, controlID, b.page.Name)
	}
	next, err := b.selection.With(c.Axis, c.Value)
	if err != nil {
		return b.view, err
	}
	view, err := b.pipeline.View(b.page, next)
	if err != nil {
		return b.view, err
	}
	if _, err := b.registry.Activate(controlID); err != nil {
		return b.view, err
	}
	b.selection = next
	b.view = view
	b.log.Debug("Control activated", zap.String("page", b.page.Name), zap.String("control", controlID), zap.Stringer("selection", next))
	return view, nil
}

// ActivateValue finds the control by group and value, then activates it.
func (b *Binder) ActivateValue(group, value string) (View, error) {
	c, ok := b.registry.FindInGroup(group, value)
	if !ok {
		return b.view, fmt.Errorf("%w: %s=%q on page %s", apperrors.ErrUnknownControl, group, value, b.page.Name)
	}
	return b.Activate(c.ID)
}

func (b *Binder) Page() domain.Page { return b.page }

func (b *Binder) Selection() domain.Selection { return b.selection }

func (b *Binder) View() View { return b.view }

func (b *Binder) Groups() []domain.ControlGroup { return b.registry.Groups() }

// StateKey names the current state by its active control ids. Control ids are
// unique, so distinct selections never share a key.
func (b *Binder) StateKey() string {
	parts := make([]string, 0, len(domain.Axes))
	for _, axis := range domain.Axes {
		parts = append(parts, b.registry.Active(axis).ID)
	}
	return strings.Join(parts, "--")
}

func (b *Binder) Clone() *Binder {
	clone := *b
	clone.registry = b.registry.Clone()
	return &clone
}
