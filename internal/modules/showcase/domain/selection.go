package domain

import (
	"fmt"
	"strings"

	apperrors "folio/internal/platform/errors"
)

type Axis string

const (
	AxisCategory Axis = "category"
	AxisTag      Axis = "tag"
	AxisSort     Axis = "sort"
)

// Axes lists the selection axes in control-bar order.
var Axes = []Axis{AxisCategory, AxisTag, AxisSort}

type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortNewest:
		return SortNewest, nil
	case SortOldest:
		return SortOldest, nil
	default:
		return "", fmt.Errorf("%w: unknown sort order %q", apperrors.ErrInvalidInput, s)
	}
}

// Selection is the value driving one render. Changing it produces a new
// value; the zero value is not valid, use DefaultSelection.
type Selection struct {
	Category string
	Tag      string
	Sort     SortOrder
}

func DefaultSelection() Selection {
	return Selection{Category: AllValue, Tag: AllValue, Sort: SortNewest}
}

// With returns a copy with exactly one axis replaced.
func (s Selection) With(axis Axis, value string) (Selection, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return s, fmt.Errorf("%w: empty value for %s", apperrors.ErrInvalidInput, axis)
	}
	next := s
	switch axis {
	case AxisCategory:
		next.Category = value
	case AxisTag:
		next.Tag = value
	case AxisSort:
		order, err := ParseSortOrder(value)
		if err != nil {
			return s, err
		}
		next.Sort = order
	default:
		return s, fmt.Errorf("%w: unknown axis %q", apperrors.ErrInvalidInput, axis)
	}
	return next, nil
}

func (s Selection) Value(axis Axis) string {
	switch axis {
	case AxisCategory:
		return s.Category
	case AxisTag:
		return s.Tag
	case AxisSort:
		return string(s.Sort)
	}
	return ""
}

func (s Selection) Validate() error {
	if strings.TrimSpace(s.Category) == "" || strings.TrimSpace(s.Tag) == "" {
		return fmt.Errorf("%w: selection has an empty filter", apperrors.ErrInvalidInput)
	}
	_, err := ParseSortOrder(string(s.Sort))
	return err
}

func (s Selection) String() string {
	return fmt.Sprintf("category=%s tag=%s sort=%s", s.Category, s.Tag, s.Sort)
}
