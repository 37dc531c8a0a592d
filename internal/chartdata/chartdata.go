// Package chartdata reshapes aggregates and statistics into the parallel
// array and matrix forms a charting layer consumes. No aggregation logic
// lives here beyond the documented special cases (unit diagonal, undefined
// cells rendered as 0 behind a mask).
package chartdata

import (
	"strconv"

	"github.com/digcul/surveyscope/internal/aggregate"
	"github.com/digcul/surveyscope/internal/dataset"
	"github.com/digcul/surveyscope/internal/derive"
	"github.com/digcul/surveyscope/internal/normalize"
	"github.com/digcul/surveyscope/internal/schema"
	"github.com/digcul/surveyscope/internal/stats"
)

// BarSeries is a frequency or mean series as parallel arrays, in axis
// order.
type BarSeries struct {
	Labels []string
	Values []float64
	Counts []int
}

// FromTable flattens a frequency table into percentage bars.
func FromTable(t aggregate.Table) BarSeries {
	s := BarSeries{
		Labels: make([]string, len(t.Entries)),
		Values: make([]float64, len(t.Entries)),
		Counts: make([]int, len(t.Entries)),
	}
	for i, e := range t.Entries {
		s.Labels[i] = e.Category
		s.Values[i] = e.Percent
		s.Counts[i] = e.Count
	}
	return s
}

// FromGroupMeans flattens grouped means into bars. Empty groups keep their
// reported 0 so the series stays aligned with the category axis; callers
// wanting suppression should filter on the GroupMean flags first.
func FromGroupMeans(gs []aggregate.GroupMean) BarSeries {
	s := BarSeries{
		Labels: make([]string, len(gs)),
		Values: make([]float64, len(gs)),
		Counts: make([]int, len(gs)),
	}
	for i, g := range gs {
		s.Labels[i] = g.Group
		s.Values[i] = g.Mean
		s.Counts[i] = g.Count
	}
	return s
}

// Matrix is a square correlation matrix indexed by variable label. Defined
// mirrors Values: cells whose pairwise correlation is undefined hold 0 and
// a false mask entry.
type Matrix struct {
	Labels  []string
	Values  [][]float64
	Defined [][]bool
}

// CorrelationMatrix computes the pairwise-complete correlation of every
// variable pair. The diagonal is 1.0 by definition, independent of the
// variable's variance.
func CorrelationMatrix(records []dataset.Record, vars []schema.Descriptor) Matrix {
	n := len(vars)
	series := make([][]derive.Value, n)
	labels := make([]string, n)
	for i, d := range vars {
		series[i] = derive.Series(records, d)
		labels[i] = d.Label
	}

	values := make([][]float64, n)
	defined := make([][]bool, n)
	for i := 0; i < n; i++ {
		values[i] = make([]float64, n)
		defined[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			if i == j {
				values[i][j] = 1
				defined[i][j] = true
				continue
			}
			xs, ys := derive.AlignPairs(series[i], series[j])
			if r, ok := stats.Correlation(xs, ys); ok {
				values[i][j] = r
				defined[i][j] = true
			}
		}
	}
	return Matrix{Labels: labels, Values: values, Defined: defined}
}

// Trendline is a fitted line sampled at the ends of the observed x-range.
type Trendline struct {
	X []float64
	Y []float64
}

// LineTrend samples a linear fit at xMin and xMax.
func LineTrend(fit stats.LinearFit, xMin, xMax float64) Trendline {
	return Trendline{
		X: []float64{xMin, xMax},
		Y: []float64{fit.Slope*xMin + fit.Intercept, fit.Slope*xMax + fit.Intercept},
	}
}

// Fixed palette for the platform color channel.
var platformColors = map[string]string{
	"Instagram":                 "#FF006E",
	"Tiktok":                    "#9D4EDD",
	"Facebook":                  "#00A8FF",
	"Pinterest":                 "#FF1744",
	"Other":                     "#FFA500",
	"I do not use social media": "#E0E0E0",
}

// unknownColor marks platforms outside the palette.
const unknownColor = "#FFD700"

// PlatformColor maps a raw platform cell to its chart color.
func PlatformColor(raw string) string {
	p := normalize.StripBilingual(raw)
	if c, ok := platformColors[p]; ok {
		return c
	}
	return unknownColor
}

// Scatter3D is a 3D scatter series: time spent against two ordinal
// variables, colored by platform. Only respondents with all three values
// present appear.
type Scatter3D struct {
	X, Y, Z []float64
	Colors  []string
	Labels  []string
}

// Scatter builds the 3D scatter series for the given y and z variables.
func Scatter(records []dataset.Record, sc *schema.Schema, y, z schema.Descriptor) Scatter3D {
	timeDesc := sc.TimeSpent()
	var out Scatter3D
	for i, rec := range records {
		xv := derive.Numeric(rec, timeDesc)
		yv := derive.Numeric(rec, y)
		zv := derive.Numeric(rec, z)
		if !xv.Valid || !yv.Valid || !zv.Valid {
			continue
		}
		out.X = append(out.X, xv.F)
		out.Y = append(out.Y, yv.F)
		out.Z = append(out.Z, zv.F)
		out.Colors = append(out.Colors, PlatformColor(rec.Get(schema.ColPlatform)))
		out.Labels = append(out.Labels, "Respondent "+strconv.Itoa(i+1))
	}
	return out
}

// Dimension is one axis of a parallel-categories plot: the ordered category
// list plus each respondent's category on that axis.
type Dimension struct {
	Label      string
	Categories []string
	Values     []string
}

// Dimensions builds parallel-categories axes for the given fields, applying
// each field's conventional transform.
func Dimensions(records []dataset.Record, fields []schema.Descriptor) []Dimension {
	out := make([]Dimension, 0, len(fields))
	for _, d := range fields {
		tf := aggregate.TransformFor(d)
		values := make([]string, len(records))
		for i, rec := range records {
			v := normalize.StripBilingual(rec.Get(d.Column))
			if tf != nil && v != "" {
				v = tf(v)
			}
			values[i] = v
		}
		out = append(out, Dimension{
			Label:      d.Label,
			Categories: aggregate.CategoryOrder(values, d.Label),
			Values:     values,
		})
	}
	return out
}
