package out

import (
	"encoding/json"
	"fmt"
	"strings"

	"folio/internal/modules/showcase/domain"
	apperrors "folio/internal/platform/errors"
)

type eventJSON struct {
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	DateDisplay string   `json:"dateDisplay"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
	Link        string   `json:"link"`
}

type projectJSON struct {
	Status   string   `json:"status"`
	Title    string   `json:"title"`
	Intent   string   `json:"intent"`
	Date     string   `json:"date"`
	Tags     []string `json:"tags"`
	Image    string   `json:"image"`
	Repo     string   `json:"repo"`
	Demo     string   `json:"demo"`
	Featured bool     `json:"featured"`
}

// JSONCodec decodes {"events": [...]} and {"projects": [...]} documents.
type JSONCodec struct{}

func NewJSONCodec() JSONCodec { return JSONCodec{} }

func (JSONCodec) Decode(page domain.Page, payload []byte) ([]domain.Record, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s document: %w", apperrors.ErrInvalidInput, page.Name, err)
	}
	key := page.Kind.CollectionKey()
	raw, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s document has no %q member", apperrors.ErrInvalidInput, page.Name, key)
	}

	switch page.Kind {
	case domain.KindEvent:
		var items []eventJSON
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("%w: decode events: %w", apperrors.ErrInvalidInput, err)
		}
		out := make([]domain.Record, 0, len(items))
		for i, it := range items {
			d, err := domain.ParseDate(it.Date)
			if err != nil {
				return nil, fmt.Errorf("%w: event %d: %w", apperrors.ErrInvalidInput, i, err)
			}
			out = append(out, domain.Record{
				Category:    domain.Category(it.Type),
				Tags:        tagsOrEmpty(it.Tags),
				Date:        d,
				DateDisplay: it.DateDisplay,
				Title:       it.Title,
				Description: it.Description,
				Image:       assetPath(page.AssetPrefix, it.Image),
				Link:        it.Link,
			})
		}
		return out, nil
	case domain.KindProject:
		var items []projectJSON
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("%w: decode projects: %w", apperrors.ErrInvalidInput, err)
		}
		out := make([]domain.Record, 0, len(items))
		for i, it := range items {
			d, err := domain.ParseDate(it.Date)
			if err != nil {
				return nil, fmt.Errorf("%w: project %d: %w", apperrors.ErrInvalidInput, i, err)
			}
			out = append(out, domain.Record{
				Category:    domain.Category(it.Status),
				Tags:        tagsOrEmpty(it.Tags),
				Date:        d,
				Title:       it.Title,
				Description: it.Intent,
				Image:       assetPath(page.AssetPrefix, it.Image),
				Repo:        it.Repo,
				Demo:        it.Demo,
				Featured:    it.Featured,
			})
		}
		return out, nil
	default:
		return nil, page.Kind.Validate()
	}
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// assetPath prefixes relative image paths so they resolve from a page that
// lives one directory below the site root.
func assetPath(prefix, image string) string {
	if image == "" || prefix == "" {
		return image
	}
	for _, p := range []string{"/", "http", ".."} {
		if strings.HasPrefix(image, p) {
			return image
		}
	}
	return prefix + image
}
