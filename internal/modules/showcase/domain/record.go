package domain

import (
	"fmt"
	"slices"
	"strings"
)

type Kind string

const (
	KindEvent   Kind = "event"
	KindProject Kind = "project"
)

// AllValue is the wildcard accepted by every filter axis.
const AllValue = "all"

func (k Kind) Validate() error {
	switch k {
	case KindEvent, KindProject:
		return nil
	default:
		return fmt.Errorf("unsupported record kind %q", string(k))
	}
}

// CollectionKey is the top-level JSON member holding records of this kind.
func (k Kind) CollectionKey() string {
	return string(k) + "s"
}

// Category is an event type or a project status.
type Category string

type Record struct {
	Position    int
	Category    Category
	Tags        []string
	Date        Date
	DateDisplay string
	Title       string
	Description string
	Image       string
	Link        string
	Repo        string
	Demo        string
	Featured    bool
}

func (r Record) HasTag(tag string) bool {
	return slices.Contains(r.Tags, tag)
}

// PrimaryLink is where a click on the whole record should lead.
func (r Record) PrimaryLink() string {
	switch {
	case r.Demo != "":
		return r.Demo
	case r.Repo != "":
		return r.Repo
	default:
		return r.Link
	}
}

func (r Record) DateLabel() string {
	if strings.TrimSpace(r.DateDisplay) != "" {
		return r.DateDisplay
	}
	return r.Date.Label()
}

func (r Record) Validate() error {
	if strings.TrimSpace(string(r.Category)) == "" {
		return fmt.Errorf("category is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if r.Tags == nil {
		return fmt.Errorf("tags are required")
	}
	if r.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	return nil
}
