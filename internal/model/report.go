package model

import (
	"strings"
	"time"
)

// BucketCount is one row of the severity summary.
type BucketCount struct {
	Bucket Bucket `json:"bucket"`
	Count  int    `json:"count"`
}

// Row is one row of the detailed findings section.
type Row struct {
	Bucket  Bucket  `json:"bucket"`
	Finding Finding `json:"finding"`
}

// Report is the derived, write-once view of a findings list.
// It is recomputed from scratch on every run.
//
// Invariant: the sum of Summary counts equals Total, and Total equals len(Rows).
type Report struct {
	// Title is the document heading.
	Title string `json:"title"`

	// Taxonomy is the name of the taxonomy used for classification.
	Taxonomy string `json:"taxonomy"`

	// GeneratedAt is when the report was built.
	GeneratedAt time.Time `json:"generated_at"`

	// Total is the number of findings.
	Total int `json:"total"`

	// Summary holds one entry per bucket in descending severity order.
	Summary []BucketCount `json:"summary"`

	// Rows holds one entry per finding, in input order.
	Rows []Row `json:"rows"`
}

// Tally counts findings per bucket of the taxonomy in a single pass.
// The returned slice is indexed like Taxonomy.Buckets().
func Tally(findings []Finding, taxonomy *Taxonomy) []int {
	counts := make([]int, len(taxonomy.buckets))
	for _, f := range findings {
		counts[taxonomy.Index(f.Severity)]++
	}
	return counts
}

// NewReport classifies and counts findings and assembles a Report.
// Input order is preserved; nothing is sorted or dropped.
func NewReport(title string, findings []Finding, taxonomy *Taxonomy, generatedAt time.Time) *Report {
	counts := Tally(findings, taxonomy)

	summary := make([]BucketCount, len(taxonomy.buckets))
	for i, b := range taxonomy.buckets {
		summary[i] = BucketCount{Bucket: b, Count: counts[i]}
	}

	rows := make([]Row, len(findings))
	for i, f := range findings {
		rows[i] = Row{Bucket: taxonomy.Classify(f.Severity), Finding: f}
	}

	return &Report{
		Title:       title,
		Taxonomy:    taxonomy.Name(),
		GeneratedAt: generatedAt,
		Total:       len(findings),
		Summary:     summary,
		Rows:        rows,
	}
}

// CountOf returns the count for the named bucket, or 0 if it is not part of
// the report's taxonomy.
func (r *Report) CountOf(bucketName string) int {
	for _, s := range r.Summary {
		if strings.EqualFold(s.Bucket.Name, bucketName) {
			return s.Count
		}
	}
	return 0
}

// HasFindings reports whether the report contains any finding.
func (r *Report) HasFindings() bool {
	return r.Total > 0
}
