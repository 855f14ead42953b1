package render

import (
	"strings"
	"testing"

	"jobmatch/internal/recommender"
)

func TestCatalogRendersFixedColumns(t *testing.T) {
	got := Catalog([]recommender.JobRecord{
		{JobID: "1", Title: "Go Developer", Company: "Acme", Location: "Remote", ExperienceLevel: "Senior", SalaryRange: "$120k-$150k", Skills: "go, sql"},
	})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines: %q", len(lines), got)
	}

	for _, col := range []string{"job_id", "title", "company", "location", "experience_level", "salary_range", "skills"} {
		if !strings.Contains(lines[0], col) {
			t.Fatalf("expected header column %q, got %q", col, lines[0])
		}
	}
	if !strings.Contains(lines[1], "Go Developer") || !strings.Contains(lines[1], "$120k-$150k") {
		t.Fatalf("unexpected row: %q", lines[1])
	}
}

func TestCatalogCoalescesMissingFields(t *testing.T) {
	got := Catalog([]recommender.JobRecord{
		{JobID: "7", Title: "Analyst"},
	})

	if strings.Contains(got, "null") || strings.Contains(got, "<nil>") {
		t.Fatalf("missing fields must render empty, got %q", got)
	}
}

func TestCatalogPreservesFetchOrder(t *testing.T) {
	got := Catalog([]recommender.JobRecord{
		{JobID: "9", Title: "Zebra Trainer"},
		{JobID: "1", Title: "Aardvark Keeper"},
	})

	if strings.Index(got, "Zebra Trainer") > strings.Index(got, "Aardvark Keeper") {
		t.Fatalf("expected rows in fetch order, got %q", got)
	}
}
