package domain

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
)

// Collection is the immutable record set of one page load. A reload builds a
// new Collection; nothing mutates one in place.
type Collection struct {
	kind    Kind
	records []Record
}

func NewCollection(kind Kind, records []Record) (Collection, error) {
	if err := kind.Validate(); err != nil {
		return Collection{}, err
	}
	out := make([]Record, len(records))
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return Collection{}, fmt.Errorf("record %d (%q): %w", i, r.Title, err)
		}
		r.Position = i
		r.Tags = append([]string{}, r.Tags...)
		out[i] = r
	}
	return Collection{kind: kind, records: out}, nil
}

func (c Collection) Kind() Kind { return c.kind }

func (c Collection) Len() int { return len(c.records) }

// Records returns a copy in load order.
func (c Collection) Records() []Record {
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Tags lists every distinct tag in natural order.
func (c Collection) Tags() []string {
	seen := map[string]struct{}{}
	tags := make([]string, 0)
	for _, r := range c.records {
		for _, tag := range r.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Sort(natural.StringSlice(tags))
	return tags
}
