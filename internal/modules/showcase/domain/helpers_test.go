package domain_test

import (
	"testing"

	"folio/internal/modules/showcase/domain"
)

func rec(t *testing.T, title, category, date string, tags ...string) domain.Record {
	t.Helper()
	d, err := domain.ParseDate(date)
	if err != nil {
		t.Fatalf("parse date %q: %v", date, err)
	}
	if tags == nil {
		tags = []string{}
	}
	return domain.Record{Title: title, Category: domain.Category(category), Date: d, Tags: tags}
}

func titles(records []domain.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
