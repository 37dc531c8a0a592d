// Package aggregate computes the chart-facing summaries: frequency tables,
// grouped means and the study's fixed rollups. All functions are pure over
// the record slice they receive; filters are applied by the caller.
package aggregate

import (
	"sort"
	"strconv"
	"strings"

	"github.com/digcul/surveyscope/internal/dataset"
	"github.com/digcul/surveyscope/internal/derive"
	"github.com/digcul/surveyscope/internal/normalize"
	"github.com/digcul/surveyscope/internal/schema"
)

// Entry is one category row of a frequency table.
type Entry struct {
	Category string
	Count    int
	Percent  float64
}

// Table is a frequency table over one field. For multi-select fields Total
// counts selected-token occurrences, not respondents, and percentages are
// of that token total.
type Table struct {
	Field   string
	Entries []Entry
	Total   int
}

// Transform rewrites a single normalized token before counting (bucketing,
// label shortening). Nil means count the token as-is.
type Transform func(string) string

// TransformFor returns the conventional per-field transform: age grouping,
// time bucketing, emotion bucketing for the compact variant and the label
// shortenings used by the study's charts.
func TransformFor(d schema.Descriptor) Transform {
	switch d.Column {
	case schema.ColAge:
		return normalize.AgeGroup
	case schema.ColTimeSpent:
		return normalize.TimeBucket
	case schema.ColContentTypes:
		return normalize.ShortenContentType
	case schema.ColInfoSource:
		return normalize.ShortenInfoSource
	case schema.ColEmotion:
		// Only the compact variant buckets; the comprehensive field keeps
		// the raw answers.
		if d.Label == schema.CompactEmotionLabel {
			return normalize.EmotionBucket
		}
	}
	return nil
}

// Frequency builds the frequency table for a categorical field. Each cell is
// stripped to its English half; multi-select cells contribute one count per
// selected token. topN > 0 keeps only the topN most frequent categories
// (after ordering).
func Frequency(records []dataset.Record, d schema.Descriptor, tf Transform, topN int) Table {
	counts := make(map[string]int)
	var values []string
	total := 0
	for _, rec := range records {
		raw := rec.Get(d.Column)
		if raw == "" {
			continue
		}
		var tokens []string
		if schema.MultiSelect(d.Column) {
			tokens = normalize.SplitMulti(raw)
		} else {
			tokens = []string{raw}
		}
		for _, tok := range tokens {
			cat := normalize.StripBilingual(tok)
			if cat == "" {
				continue
			}
			if tf != nil {
				cat = tf(cat)
			}
			counts[cat]++
			values = append(values, cat)
			total++
		}
	}

	order := CategoryOrder(values, d.Label)
	entries := make([]Entry, 0, len(order))
	for _, cat := range order {
		c := counts[cat]
		pct := 0.0
		if total > 0 {
			pct = float64(c) * 100 / float64(total)
		}
		entries = append(entries, Entry{Category: cat, Count: c, Percent: pct})
	}
	if topN > 0 && len(entries) > topN {
		// Keep the topN most frequent categories but preserve the axis
		// ordering among the survivors.
		ranked := append([]Entry(nil), entries...)
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
		keep := make(map[string]bool, topN)
		for _, e := range ranked[:topN] {
			keep[e.Category] = true
		}
		kept := make([]Entry, 0, topN)
		for _, e := range entries {
			if keep[e.Category] {
				kept = append(kept, e)
			}
		}
		entries = kept
	}
	return Table{Field: d.Label, Entries: entries, Total: total}
}

// GroupMean is the mean of a derived variable within one category group.
// Empty marks groups with no valid observations; their Mean is reported as
// 0 so existing renderers keep their shape, but consumers should suppress
// flagged groups rather than plot the zero.
type GroupMean struct {
	Group string
	Mean  float64
	Count int
	Empty bool
}

// GroupedMeans averages a derived variable per category of a grouping
// field. Groups appear in the field's canonical category order.
func GroupedMeans(records []dataset.Record, group schema.Descriptor, tf Transform, value schema.Descriptor) []GroupMean {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var seen []string
	for _, rec := range records {
		raw := rec.Get(group.Column)
		if raw == "" {
			continue
		}
		cat := normalize.StripBilingual(raw)
		if tf != nil {
			cat = tf(cat)
		}
		if cat == "" {
			continue
		}
		seen = append(seen, cat)
		if v := derive.Numeric(rec, value); v.Valid {
			sums[cat] += v.F
			counts[cat]++
		}
	}
	order := CategoryOrder(seen, group.Label)
	out := make([]GroupMean, 0, len(order))
	for _, cat := range order {
		n := counts[cat]
		gm := GroupMean{Group: cat, Count: n}
		if n > 0 {
			gm.Mean = sums[cat] / float64(n)
		} else {
			gm.Empty = true
		}
		out = append(out, gm)
	}
	return out
}

// likertOrder is the canonical support-to-oppose axis ordering.
var likertOrder = []string{
	"Strongly Support",
	"Support",
	"Somewhat Support",
	"Neither Oppose nor Support",
	"Somewhat Oppose",
	"Oppose",
	"Strongly Oppose",
}

// CategoryOrder decides axis ordering for a field's categories. Time fields
// follow the canonical bucket order, alignment fields the support-to-oppose
// scale, age fields sort numerically and everything else sorts by
// descending frequency. Values outside a canonical list are appended after
// it in first-encountered order, deduplicated.
func CategoryOrder(values []string, fieldLabel string) []string {
	unique := make([]string, 0, 16)
	seen := make(map[string]bool)
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		unique = append(unique, v)
	}

	label := strings.ToLower(fieldLabel)
	switch {
	case strings.Contains(label, "time"):
		return canonicalFirst(unique, normalize.TimeOrder())
	case strings.Contains(label, "alignment") || strings.Contains(label, "aligned"):
		return canonicalFirst(unique, likertOrder)
	case strings.Contains(label, "age"):
		sorted := append([]string(nil), unique...)
		sort.SliceStable(sorted, func(i, j int) bool {
			a, errA := strconv.Atoi(leadingInt(sorted[i]))
			b, errB := strconv.Atoi(leadingInt(sorted[j]))
			if errA == nil && errB == nil {
				return a < b
			}
			return sorted[i] < sorted[j]
		})
		return sorted
	default:
		counts := make(map[string]int)
		for _, v := range values {
			counts[v]++
		}
		sorted := append([]string(nil), unique...)
		sort.SliceStable(sorted, func(i, j int) bool { return counts[sorted[i]] > counts[sorted[j]] })
		return sorted
	}
}

// canonicalFirst places values matching the canonical sequence first (by
// substring containment, as raw cells may carry extra phrasing), then the
// rest in first-encountered order.
func canonicalFirst(unique, canonical []string) []string {
	used := make(map[string]bool)
	out := make([]string, 0, len(unique))
	for _, want := range canonical {
		for _, v := range unique {
			if !used[v] && strings.Contains(v, want) {
				out = append(out, v)
				used[v] = true
				break
			}
		}
	}
	for _, v := range unique {
		if !used[v] {
			out = append(out, v)
		}
	}
	return out
}

// leadingInt extracts the leading digit run of s ("18-21" -> "18").
func leadingInt(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return s
	}
	return s[:i]
}
