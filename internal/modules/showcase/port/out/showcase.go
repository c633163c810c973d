package out

import (
	"context"

	"folio/internal/modules/showcase/domain"
)

// SourceFetcher retrieves the raw document at one candidate location.
type SourceFetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

type CollectionDecoder interface {
	Decode(page domain.Page, payload []byte) ([]domain.Record, error)
}

// ViewRenderer turns records into markup. Every call replaces the container
// content wholesale.
type ViewRenderer interface {
	RenderList(page domain.Page, records []domain.Record) (string, error)
	RenderFeatured(page domain.Page, records []domain.Record) (string, error)
	RenderLoadFailure(page domain.Page, cause error) (string, error)
}

type ControlLink struct {
	Control domain.Control
	Href    string
}

type ControlLinkGroup struct {
	Name     string
	Axis     domain.Axis
	Controls []ControlLink
}

// PageDocument is one fully rendered selection state of a page.
type PageDocument struct {
	Page            domain.Page
	Selection       domain.Selection
	Groups          []ControlLinkGroup
	List            string
	Featured        string
	FeaturedVisible bool
	Summary         string
}

type DocumentRenderer interface {
	RenderDocument(doc PageDocument) (string, error)
}

type SiteWriter interface {
	WriteFile(relPath string, content []byte) (string, error)
}

type RecordIndexProjector interface {
	Reset(ctx context.Context, page string) error
	UpsertRecords(ctx context.Context, page string, records []domain.Record) error
	Stats(ctx context.Context, page string) (domain.Stats, error)
}
