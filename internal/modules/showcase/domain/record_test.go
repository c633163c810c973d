package domain_test

import (
	"testing"

	"folio/internal/modules/showcase/domain"
)

func TestRecordValidate(t *testing.T) {
	t.Parallel()
	base := rec(t, "Ship it", "launch", "2024-01-01", "go")
	if err := base.Validate(); err != nil {
		t.Fatalf("record should be valid: %v", err)
	}
	noTags := base
	noTags.Tags = nil
	if err := noTags.Validate(); err == nil {
		t.Fatalf("missing tags should fail")
	}
	noDate := base
	noDate.Date = domain.Date{}
	if err := noDate.Validate(); err == nil {
		t.Fatalf("missing date should fail")
	}
	noTitle := base
	noTitle.Title = " "
	if err := noTitle.Validate(); err == nil {
		t.Fatalf("missing title should fail")
	}
	noCategory := base
	noCategory.Category = ""
	if err := noCategory.Validate(); err == nil {
		t.Fatalf("missing category should fail")
	}
}

func TestPrimaryLinkPrefersDemo(t *testing.T) {
	t.Parallel()
	r := domain.Record{Repo: "https://git.example/r", Demo: "https://demo.example"}
	if r.PrimaryLink() != "https://demo.example" {
		t.Fatalf("demo should win, got %q", r.PrimaryLink())
	}
	r.Demo = ""
	if r.PrimaryLink() != "https://git.example/r" {
		t.Fatalf("repo should be the fallback, got %q", r.PrimaryLink())
	}
	r.Repo = ""
	r.Link = "https://blog.example"
	if r.PrimaryLink() != "https://blog.example" {
		t.Fatalf("link should be the last fallback, got %q", r.PrimaryLink())
	}
}

func TestDateLabelPrefersDisplay(t *testing.T) {
	t.Parallel()
	r := rec(t, "Talk", "talk", "2024-03")
	if r.DateLabel() != "Mar 2024" {
		t.Fatalf("unexpected label %q", r.DateLabel())
	}
	r.DateDisplay = "Spring 2024"
	if r.DateLabel() != "Spring 2024" {
		t.Fatalf("display label should win, got %q", r.DateLabel())
	}
}

func TestNewCollectionAssignsPositionsAndCopies(t *testing.T) {
	t.Parallel()
	input := []domain.Record{
		rec(t, "a", "launch", "2024-01-01", "x"),
		rec(t, "b", "talk", "2024-02-01", "y", "x"),
	}
	col, err := domain.NewCollection(domain.KindEvent, input)
	if err != nil {
		t.Fatalf("new collection: %v", err)
	}
	input[0].Tags[0] = "mutated"
	got := col.Records()
	if got[0].Tags[0] != "x" {
		t.Fatalf("collection must not share tag storage with its input")
	}
	if got[0].Position != 0 || got[1].Position != 1 {
		t.Fatalf("positions not assigned: %+v", got)
	}
	got[0].Title = "changed"
	if col.Records()[0].Title != "a" {
		t.Fatalf("Records must return a copy")
	}
	if !equalStrings(col.Tags(), []string{"x", "y"}) {
		t.Fatalf("unexpected tags %v", col.Tags())
	}
}

func TestNewCollectionRejectsMalformedRecords(t *testing.T) {
	t.Parallel()
	bad := rec(t, "a", "launch", "2024-01-01")
	bad.Tags = nil
	if _, err := domain.NewCollection(domain.KindEvent, []domain.Record{bad}); err == nil {
		t.Fatalf("malformed record should be rejected at the collection boundary")
	}
	if _, err := domain.NewCollection("podcast", nil); err == nil {
		t.Fatalf("unknown kind should fail")
	}
}

func TestCollectionTagsNaturalOrder(t *testing.T) {
	t.Parallel()
	col, err := domain.NewCollection(domain.KindProject, []domain.Record{
		rec(t, "a", "wip", "2024-01", "web10", "web2"),
		rec(t, "b", "wip", "2024-02", "ai", "web2"),
	})
	if err != nil {
		t.Fatalf("new collection: %v", err)
	}
	if !equalStrings(col.Tags(), []string{"ai", "web2", "web10"}) {
		t.Fatalf("unexpected tag order %v", col.Tags())
	}
}
