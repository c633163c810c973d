package domain

import (
	"fmt"
	"path"
	"strings"
)

type Layout string

const (
	LayoutTimeline Layout = "timeline"
	LayoutCards    Layout = "cards"
)

type CategoryDef struct {
	Value Category
	Label string
	Class string
}

// Page describes one rendered collection: where it loads from and how its
// categories are labelled.
type Page struct {
	Name          string
	Kind          Kind
	Title         string
	Layout        Layout
	CategoryGroup string
	Sources       []string
	Base          string
	AssetPrefix   string
	FeaturedView  bool
	EmptyText     string
	ErrorText     string
	Categories    []CategoryDef
}

func (p Page) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("page name is required")
	}
	if err := p.Kind.Validate(); err != nil {
		return fmt.Errorf("page %s: %w", p.Name, err)
	}
	switch p.Layout {
	case LayoutTimeline, LayoutCards:
	default:
		return fmt.Errorf("page %s: unsupported layout %q", p.Name, p.Layout)
	}
	if len(p.Sources) == 0 {
		return fmt.Errorf("page %s: at least one source is required", p.Name)
	}
	axis, err := ParseGroup(p.CategoryGroup)
	if err != nil {
		return fmt.Errorf("page %s: %w", p.Name, err)
	}
	if axis != AxisCategory {
		return fmt.Errorf("page %s: category group %q drives the %s axis", p.Name, p.CategoryGroup, axis)
	}
	return nil
}

// Locate resolves a relative source against the page's site path, the way a
// browser resolves it against the page URL. URLs, rooted paths and sources of
// pages without a base pass through unchanged.
func (p Page) Locate(source string) string {
	base := strings.TrimSpace(p.Base)
	if base == "" || strings.HasPrefix(source, "/") || strings.Contains(source, "://") {
		return source
	}
	if !strings.HasSuffix(base, "/") {
		base = path.Dir(base)
	}
	return path.Join("/", base, source)
}

// CategoryLabel falls back to the raw value for categories without a label.
func (p Page) CategoryLabel(c Category) string {
	for _, def := range p.Categories {
		if def.Value == c && def.Label != "" {
			return def.Label
		}
	}
	return string(c)
}

func (p Page) CategoryClass(c Category) string {
	for _, def := range p.Categories {
		if def.Value == c {
			return def.Class
		}
	}
	return ""
}

func (p Page) Noun() string {
	return strings.ToLower(p.Kind.CollectionKey())
}
