package service

import (
	"context"

	"folio/internal/modules/showcase/domain"
	showcaseout "folio/internal/modules/showcase/port/out"
)

// IndexService mirrors loaded collections into the record index.
type IndexService struct {
	store     *Store
	projector showcaseout.RecordIndexProjector
}

func NewIndexService(store *Store, projector showcaseout.RecordIndexProjector) *IndexService {
	return &IndexService{store: store, projector: projector}
}

func (s *IndexService) Reindex(ctx context.Context, page domain.Page) (int, error) {
	col, err := s.store.Get(page.Name)
	if err != nil {
		return 0, err
	}
	if err := s.projector.Reset(ctx, page.Name); err != nil {
		return 0, err
	}
	if err := s.projector.UpsertRecords(ctx, page.Name, col.Records()); err != nil {
		return 0, err
	}
	return col.Len(), nil
}

func (s *IndexService) Stats(ctx context.Context, page domain.Page) (domain.Stats, error) {
	return s.projector.Stats(ctx, page.Name)
}
