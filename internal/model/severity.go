package model

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Bucket is a display-level severity class that raw tool labels map onto.
type Bucket struct {
	// Name is the human-readable bucket name (e.g. "High").
	Name string `json:"name"`

	// Color is a CSS color used when rendering the bucket.
	Color string `json:"color"`

	// Glyph is a short visual marker (an emoji) for the bucket.
	Glyph string `json:"glyph"`
}

// Taxonomy classifies raw severity labels into a fixed, ordered set of buckets.
// Buckets are kept in descending severity order; the last bucket is the
// fallback for any label the taxonomy does not know.
//
// Design decision: classification is a table lookup with a default value
// rather than a chain of conditionals, so the mapping is total and a new
// taxonomy is a data change, not a code change.
type Taxonomy struct {
	name    string
	buckets []Bucket
	labels  map[string]int
}

// Names of the built-in taxonomies.
const (
	// TaxonomyStandard is the three bucket High/Medium/Low model.
	TaxonomyStandard = "standard"

	// TaxonomyExtended is the five bucket Critical/High/Medium/Low/Info model.
	TaxonomyExtended = "extended"
)

var (
	bucketCritical = Bucket{Name: "Critical", Color: "darkred", Glyph: "🟣"}
	bucketHigh     = Bucket{Name: "High", Color: "red", Glyph: "🔴"}
	bucketMedium   = Bucket{Name: "Medium", Color: "orange", Glyph: "🟠"}
	bucketLow      = Bucket{Name: "Low", Color: "green", Glyph: "🟢"}
	bucketInfo     = Bucket{Name: "Info", Color: "gray", Glyph: "⚪"}
)

// StandardTaxonomy maps semgrep's ERROR and WARNING labels onto High and
// Medium. Every other label, INFO included, lands in Low.
var StandardTaxonomy = NewTaxonomy(TaxonomyStandard,
	[]Bucket{bucketHigh, bucketMedium, bucketLow},
	map[string]string{
		"ERROR":   "High",
		"WARNING": "Medium",
		"INFO":    "Low",
	},
)

// ExtendedTaxonomy understands both semgrep labels and the generic
// CRITICAL..LOW scale used by other scanners.
var ExtendedTaxonomy = NewTaxonomy(TaxonomyExtended,
	[]Bucket{bucketCritical, bucketHigh, bucketMedium, bucketLow, bucketInfo},
	map[string]string{
		"CRITICAL": "Critical",
		"ERROR":    "High",
		"HIGH":     "High",
		"WARNING":  "Medium",
		"MEDIUM":   "Medium",
		"LOW":      "Low",
		"INFO":     "Info",
	},
)

var taxonomies = map[string]*Taxonomy{
	TaxonomyStandard: StandardTaxonomy,
	TaxonomyExtended: ExtendedTaxonomy,
}

// NewTaxonomy builds a Taxonomy from buckets in descending severity order and
// a map of raw label to bucket name. Labels are matched case-insensitively.
// It panics if buckets is empty or a label refers to an unknown bucket, since
// taxonomies are package-level tables fixed at compile time.
func NewTaxonomy(name string, buckets []Bucket, labels map[string]string) *Taxonomy {
	if len(buckets) == 0 {
		panic("model: taxonomy " + name + " has no buckets")
	}

	index := make(map[string]int, len(buckets))
	for i, b := range buckets {
		index[b.Name] = i
	}

	t := &Taxonomy{
		name:    name,
		buckets: append([]Bucket(nil), buckets...),
		labels:  make(map[string]int, len(labels)),
	}
	for label, bucketName := range labels {
		i, ok := index[bucketName]
		if !ok {
			panic(fmt.Sprintf("model: taxonomy %s maps %q to unknown bucket %q", name, label, bucketName))
		}
		t.labels[foldLabel(label)] = i
	}
	return t
}

// LookupTaxonomy returns the built-in taxonomy with the given name.
func LookupTaxonomy(name string) (*Taxonomy, error) {
	if t, ok := taxonomies[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("unknown taxonomy %q (available: %s)", name, strings.Join(TaxonomyNames(), ", "))
}

// TaxonomyNames returns the names of the built-in taxonomies, sorted.
func TaxonomyNames() []string {
	names := make([]string, 0, len(taxonomies))
	for name := range taxonomies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the taxonomy name.
func (t *Taxonomy) Name() string {
	return t.name
}

// Buckets returns the buckets in descending severity order.
func (t *Taxonomy) Buckets() []Bucket {
	return append([]Bucket(nil), t.buckets...)
}

// Lowest returns the fallback bucket.
func (t *Taxonomy) Lowest() Bucket {
	return t.buckets[len(t.buckets)-1]
}

// Index returns the position of the bucket a raw label maps to.
// Unknown labels return the index of the lowest bucket.
func (t *Taxonomy) Index(label string) int {
	if i, ok := t.labels[foldLabel(label)]; ok {
		return i
	}
	return len(t.buckets) - 1
}

// Classify returns the bucket for a raw severity label.
// It never fails: labels outside the known set resolve to the lowest bucket.
func (t *Taxonomy) Classify(label string) Bucket {
	return t.buckets[t.Index(label)]
}

// foldLabel normalizes a raw label for lookup.
// A Caser is stateful, so a fresh one is created per call.
func foldLabel(label string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(label))
}
