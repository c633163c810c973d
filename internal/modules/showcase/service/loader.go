package service

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"folio/internal/modules/showcase/domain"
	showcaseout "folio/internal/modules/showcase/port/out"
	apperrors "folio/internal/platform/errors"
)

type LoadResult struct {
	Collection domain.Collection
	Source     string
}

// LoadService probes a page's sources in priority order. The first source
// that fetches, decodes and validates wins; later ones are never contacted.
// When every source fails the page's previous collection is dropped.
type LoadService struct {
	fetcher showcaseout.SourceFetcher
	decoder showcaseout.CollectionDecoder
	store   *Store
	log     *zap.Logger
}

func NewLoadService(fetcher showcaseout.SourceFetcher, decoder showcaseout.CollectionDecoder, store *Store, log *zap.Logger) *LoadService {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoadService{fetcher: fetcher, decoder: decoder, store: store, log: log}
}

func (s *LoadService) Load(ctx context.Context, page domain.Page) (LoadResult, error) {
	var errs error
	for _, source := range page.Sources {
		if err := ctx.Err(); err != nil {
			return LoadResult{}, err
		}
		col, err := s.try(ctx, page, source)
		if err != nil {
			s.log.Warn("Source failed", zap.String("page", page.Name), zap.String("source", source), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", source, err))
			continue
		}
		s.store.Put(page.Name, col)
		s.log.Info("Collection loaded", zap.String("page", page.Name), zap.String("source", source), zap.Int("records", col.Len()))
		return LoadResult{Collection: col, Source: source}, nil
	}
	s.store.Drop(page.Name)
	if errs == nil {
		return LoadResult{}, fmt.Errorf("%w: page %s has no sources", apperrors.ErrLoadFailed, page.Name)
	}
	s.log.Error("All sources failed", zap.String("page", page.Name), zap.Int("attempts", len(page.Sources)))
	return LoadResult{}, fmt.Errorf("%w: page %s: %w", apperrors.ErrLoadFailed, page.Name, errs)
}

func (s *LoadService) try(ctx context.Context, page domain.Page, source string) (domain.Collection, error) {
	raw, err := s.fetcher.Fetch(ctx, page.Locate(source))
	if err != nil {
		return domain.Collection{}, err
	}
	records, err := s.decoder.Decode(page, raw)
	if err != nil {
		return domain.Collection{}, err
	}
	return domain.NewCollection(page.Kind, records)
}
