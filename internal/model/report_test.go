package model

import (
	"testing"
	"time"
)

// TestLine tests the line marker.
func TestLine(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in       int
		expected string
		known    bool
	}{
		{10, "10", true},
		{0, "0", true},
		{-1, "N/A", false},
		{-42, "N/A", false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			l := NewLine(tc.in)
			if l.String() != tc.expected {
				t.Errorf("NewLine(%d).String() = %q, expected %q", tc.in, l.String(), tc.expected)
			}
			if l.Known() != tc.known {
				t.Errorf("NewLine(%d).Known() = %v, expected %v", tc.in, l.Known(), tc.known)
			}
		})
	}
}

// TestFindingWithDefaults tests placeholder defaulting.
func TestFindingWithDefaults(t *testing.T) {
	t.Parallel()

	t.Run("fills missing fields", func(t *testing.T) {
		t.Parallel()

		f := Finding{Line: UnknownLine}.WithDefaults()
		if f.RuleID != NotAvailable {
			t.Errorf("expected rule id %q, got %q", NotAvailable, f.RuleID)
		}
		if f.Path != NotAvailable {
			t.Errorf("expected path %q, got %q", NotAvailable, f.Path)
		}
		if f.Message != NoMessage {
			t.Errorf("expected message %q, got %q", NoMessage, f.Message)
		}
		if f.Location() != "N/A:N/A" {
			t.Errorf("expected location N/A:N/A, got %q", f.Location())
		}
	})

	t.Run("keeps present fields", func(t *testing.T) {
		t.Parallel()

		f := Finding{RuleID: "r1", Path: "a.py", Message: "bad", Line: 10}.WithDefaults()
		if f.RuleID != "r1" || f.Path != "a.py" || f.Message != "bad" {
			t.Errorf("unexpected finding after defaults: %+v", f)
		}
		if f.Location() != "a.py:10" {
			t.Errorf("expected location a.py:10, got %q", f.Location())
		}
	})
}

// TestTally tests per-bucket counting.
func TestTally(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		labels   []string
		expected []int
	}{
		{"empty", nil, []int{0, 0, 0}},
		{"one of each", []string{"ERROR", "WARNING", "INFO"}, []int{1, 1, 1}},
		{"unknown goes low", []string{"BOGUS", "", "ERROR"}, []int{1, 0, 2}},
		{"case insensitive", []string{"error", "Error", "warning"}, []int{2, 1, 0}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			findings := make([]Finding, len(tc.labels))
			for i, l := range tc.labels {
				findings[i] = Finding{Severity: l}
			}

			got := Tally(findings, StandardTaxonomy)
			if len(got) != len(tc.expected) {
				t.Fatalf("expected %d counts, got %d", len(tc.expected), len(got))
			}
			sum := 0
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("count[%d] = %d, expected %d", i, got[i], tc.expected[i])
				}
				sum += got[i]
			}
			if sum != len(findings) {
				t.Errorf("sum of counts %d != total %d", sum, len(findings))
			}
		})
	}
}

// TestNewReport tests report assembly.
func TestNewReport(t *testing.T) {
	t.Parallel()

	generatedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("single error finding", func(t *testing.T) {
		t.Parallel()

		findings := []Finding{{RuleID: "r1", Path: "a.py", Line: 10, Severity: "ERROR", Message: "bad"}}
		r := NewReport("Report", findings, StandardTaxonomy, generatedAt)

		if r.Total != 1 {
			t.Errorf("expected total 1, got %d", r.Total)
		}
		if r.CountOf("High") != 1 || r.CountOf("Medium") != 0 || r.CountOf("Low") != 0 {
			t.Errorf("unexpected counts: %+v", r.Summary)
		}
		if len(r.Rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(r.Rows))
		}
		if r.Rows[0].Bucket.Name != "High" {
			t.Errorf("expected High row, got %q", r.Rows[0].Bucket.Name)
		}
		if !r.GeneratedAt.Equal(generatedAt) {
			t.Errorf("expected generated at %v, got %v", generatedAt, r.GeneratedAt)
		}
		if r.Taxonomy != TaxonomyStandard {
			t.Errorf("expected taxonomy %q, got %q", TaxonomyStandard, r.Taxonomy)
		}
	})

	t.Run("bogus severity counted under lowest bucket", func(t *testing.T) {
		t.Parallel()

		findings := []Finding{
			{RuleID: "r1", Severity: "ERROR"},
			{RuleID: "r2", Severity: "BOGUS"},
		}
		r := NewReport("Report", findings, StandardTaxonomy, generatedAt)

		if r.Total != 2 {
			t.Errorf("expected total 2, got %d", r.Total)
		}
		if r.CountOf("Low") != 1 {
			t.Errorf("expected Low=1, got %d", r.CountOf("Low"))
		}
		if r.Rows[1].Bucket.Name != "Low" {
			t.Errorf("expected second row Low, got %q", r.Rows[1].Bucket.Name)
		}
	})

	t.Run("preserves input order and summary order", func(t *testing.T) {
		t.Parallel()

		findings := []Finding{
			{RuleID: "c", Severity: "INFO"},
			{RuleID: "a", Severity: "ERROR"},
			{RuleID: "b", Severity: "WARNING"},
		}
		r := NewReport("Report", findings, ExtendedTaxonomy, generatedAt)

		for i, want := range []string{"c", "a", "b"} {
			if r.Rows[i].Finding.RuleID != want {
				t.Errorf("row %d rule = %q, expected %q", i, r.Rows[i].Finding.RuleID, want)
			}
		}
		for i, want := range []string{"Critical", "High", "Medium", "Low", "Info"} {
			if r.Summary[i].Bucket.Name != want {
				t.Errorf("summary %d = %q, expected %q", i, r.Summary[i].Bucket.Name, want)
			}
		}
	})

	t.Run("sum of summary equals total", func(t *testing.T) {
		t.Parallel()

		labels := []string{"ERROR", "WARNING", "INFO", "BOGUS", "CRITICAL", "low", "", "HIGH"}
		findings := make([]Finding, 0, len(labels))
		for _, l := range labels {
			findings = append(findings, Finding{Severity: l})
		}

		for _, tax := range []*Taxonomy{StandardTaxonomy, ExtendedTaxonomy} {
			r := NewReport("Report", findings, tax, generatedAt)
			sum := 0
			for _, s := range r.Summary {
				sum += s.Count
			}
			if sum != r.Total || r.Total != len(r.Rows) {
				t.Errorf("%s: sum=%d total=%d rows=%d", tax.Name(), sum, r.Total, len(r.Rows))
			}
		}
	})

	t.Run("has findings", func(t *testing.T) {
		t.Parallel()

		if NewReport("Report", nil, StandardTaxonomy, generatedAt).HasFindings() {
			t.Error("expected empty report to have no findings")
		}
		if NewReport("Report", nil, StandardTaxonomy, generatedAt).CountOf("Unknown") != 0 {
			t.Error("expected unknown bucket count to be 0")
		}
	})
}
