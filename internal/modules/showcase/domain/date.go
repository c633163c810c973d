package domain

import (
	"fmt"
	"strings"
	"time"
)

type Precision int

const (
	PrecisionYear Precision = iota + 1
	PrecisionMonth
	PrecisionDay
)

// Date is a possibly partial calendar date. Missing month or day resolve to
// the first, so "2024-06" compares equal to "2024-06-01".
type Date struct {
	raw       string
	t         time.Time
	precision Precision
}

var dateLayouts = []struct {
	layout    string
	precision Precision
}{
	{"2006-01-02", PrecisionDay},
	{"2006-01", PrecisionMonth},
	{"2006", PrecisionYear},
	{time.RFC3339, PrecisionDay},
}

func ParseDate(s string) (Date, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Date{}, fmt.Errorf("empty date")
	}
	for _, l := range dateLayouts {
		t, err := time.Parse(l.layout, raw)
		if err != nil {
			continue
		}
		return Date{raw: raw, t: t.UTC(), precision: l.precision}, nil
	}
	return Date{}, fmt.Errorf("unrecognised date %q", raw)
}

func (d Date) IsZero() bool { return d.precision == 0 }

func (d Date) Time() time.Time { return d.t }

func (d Date) Precision() Precision { return d.precision }

func (d Date) Compare(other Date) int { return d.t.Compare(other.t) }

// String returns the date as it appeared in the source.
func (d Date) String() string { return d.raw }

func (d Date) Label() string {
	switch d.precision {
	case PrecisionDay:
		return d.t.Format("Jan 2, 2006")
	case PrecisionMonth:
		return d.t.Format("Jan 2006")
	case PrecisionYear:
		return d.t.Format("2006")
	default:
		return ""
	}
}
