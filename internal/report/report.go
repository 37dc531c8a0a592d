// Package report assembles the study findings into a markdown document and
// optionally renders that document to PDF.
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/digcul/surveyscope/internal/aggregate"
	"github.com/digcul/surveyscope/internal/chartdata"
	"github.com/digcul/surveyscope/internal/dataset"
	"github.com/digcul/surveyscope/internal/derive"
	"github.com/digcul/surveyscope/internal/stats"
)

// Options controls report contents.
type Options struct {
	// Title of the generated document.
	Title string
	// TopN limits frequency sections; 0 means unlimited.
	TopN int
	// Correlations includes the correlation section.
	Correlations bool
	// Regressions includes the time-vs-engagement regression section.
	Regressions bool
}

// DefaultOptions returns the standard full report.
func DefaultOptions() Options {
	return Options{
		Title:        "Social Media and Youth Political Engagement",
		TopN:         10,
		Correlations: true,
		Regressions:  true,
	}
}

// Markdown builds the full report for a dataset.
func Markdown(ds *dataset.Dataset, opt Options) string {
	sc := ds.Schema
	records := ds.Records
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", opt.Title)
	fmt.Fprintf(&b, "Respondents: %d\n\n", len(records))

	// Frequency sections.
	timeField, _ := sc.FieldByName("time-spent")
	freqSections := []struct {
		title string
		table aggregate.Table
	}{
		{"Platforms", aggregate.Frequency(records, sc.Platform(), nil, 0)},
		{"Age Groups", aggregate.Frequency(records, sc.Age(), aggregate.TransformFor(sc.Age()), 0)},
		{"Time Spent", aggregate.Frequency(records, timeField, aggregate.TransformFor(timeField), 0)},
		{"Content Types", aggregate.Frequency(records, sc.ContentTypes(), aggregate.TransformFor(sc.ContentTypes()), opt.TopN)},
		{"Emotional Response", aggregate.Frequency(records, sc.EmotionCompact(), aggregate.TransformFor(sc.EmotionCompact()), 0)},
		{"Political Information Sources", aggregate.Frequency(records, sc.InfoSource(), aggregate.TransformFor(sc.InfoSource()), 0)},
		{"Trusted Accounts", aggregate.Frequency(records, sc.TrustedAccounts(), nil, opt.TopN)},
	}
	for _, s := range freqSections {
		writeFrequency(&b, s.title, s.table)
	}

	// Platform ideology rollup.
	b.WriteString("## Ideology by Platform\n\n")
	b.WriteString("| Platform | Social | Economic | n |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, p := range aggregate.PlatformIdeologies(records, sc) {
		fmt.Fprintf(&b, "| %s | %.2f | %.2f | %d |\n", p.Platform, p.SocialMean, p.EconomicMean, p.Count)
	}
	b.WriteString("\n")

	// Engagement by exposure.
	b.WriteString("## Engagement Effectiveness by Political Exposure\n\n")
	writeEngagement(&b, aggregate.ExposureEngagement(records, sc))

	// Engagement by time bucket.
	b.WriteString("## Engagement Effectiveness by Time Spent\n\n")
	writeEngagement(&b, aggregate.TimeEngagement(records, sc))

	if opt.Correlations {
		writeCorrelations(&b, records, ds)
	}
	if opt.Regressions {
		writeRegressions(&b, records, ds)
	}
	return b.String()
}

func writeFrequency(b *strings.Builder, title string, t aggregate.Table) {
	fmt.Fprintf(b, "## %s\n\n", title)
	if len(t.Entries) == 0 {
		b.WriteString("No responses.\n\n")
		return
	}
	b.WriteString("| Category | Count | % |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, e := range t.Entries {
		fmt.Fprintf(b, "| %s | %d | %.1f%% |\n", e.Category, e.Count, e.Percent)
	}
	fmt.Fprintf(b, "\nTotal selections: %d\n\n", t.Total)
}

func writeEngagement(b *strings.Builder, groups []aggregate.EngagementGroup) {
	for _, g := range groups {
		fmt.Fprintf(b, "**%s** (n=%d, overall %.2f)\n\n", g.Group, g.Count, g.Overall)
		for _, m := range g.Methods {
			if m.Empty {
				fmt.Fprintf(b, "- %s: no data\n", m.Method)
				continue
			}
			fmt.Fprintf(b, "- %s: %.2f\n", m.Method, m.Mean)
		}
		b.WriteString("\n")
	}
}

func writeCorrelations(b *strings.Builder, records []dataset.Record, ds *dataset.Dataset) {
	b.WriteString("## Correlations\n\n")
	m := chartdata.CorrelationMatrix(records, ds.Schema.CorrelationVariables())

	// Top pairs by |r|, upper triangle only.
	type pair struct {
		a, b string
		r    float64
	}
	var pairs []pair
	for i := range m.Labels {
		for j := i + 1; j < len(m.Labels); j++ {
			if !m.Defined[i][j] {
				continue
			}
			pairs = append(pairs, pair{m.Labels[i], m.Labels[j], m.Values[i][j]})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return math.Abs(pairs[i].r) > math.Abs(pairs[j].r)
	})
	limit := 10
	if len(pairs) < limit {
		limit = len(pairs)
	}
	for i := 0; i < limit; i++ {
		fmt.Fprintf(b, "- %s ~ %s: r=%.3f\n", pairs[i].a, pairs[i].b, pairs[i].r)
	}
	b.WriteString("\n")
}

func writeRegressions(b *strings.Builder, records []dataset.Record, ds *dataset.Dataset) {
	b.WriteString("## Time Spent vs Engagement\n\n")
	sc := ds.Schema
	timeSeries := derive.Series(records, sc.TimeSpent())
	for _, m := range sc.EngagementMethods() {
		xs, ys := derive.AlignPairs(timeSeries, derive.Series(records, m))
		fit, ok := stats.Linear(xs, ys)
		if !ok {
			fmt.Fprintf(b, "- %s: insufficient data\n", m.Label)
			continue
		}
		fmt.Fprintf(b, "- %s: slope %.3f, R²=%.3f (n=%d)\n", m.Label, fit.Slope, fit.R2, fit.N)
	}
	b.WriteString("\n")
}
