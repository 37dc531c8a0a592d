// Package derive converts raw survey cells into numeric observations. Every
// conversion yields either a finite number or an explicit missing value;
// NaN never enters the pipeline.
package derive

import (
	"math"
	"strconv"
	"strings"

	"github.com/digcul/surveyscope/internal/dataset"
	"github.com/digcul/surveyscope/internal/schema"
)

// Value is an optional numeric observation.
type Value struct {
	F     float64
	Valid bool
}

// Some wraps a finite float. Non-finite input yields Missing.
func Some(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{F: f, Valid: true}
}

// Missing is the absent observation.
func Missing() Value { return Value{} }

// Numeric midpoints for the canonical time buckets.
var timeMidpoints = []struct {
	phrase string
	value  float64
}{
	{"Less than 1 hour", 0.5},
	{"Between 1 and 3 hours", 2},
	{"Between 3 and 5 hours", 4},
	{"Between 5 and 7 hours", 6},
	{"More than 7 hours", 8},
}

// TimeNumeric maps a raw time-spent cell to its bucket midpoint. Anything
// outside the five known phrases is missing.
func TimeNumeric(s string) Value {
	t := strings.TrimSpace(s)
	if t == "" {
		return Missing()
	}
	for _, m := range timeMidpoints {
		if strings.Contains(t, m.phrase) {
			return Some(m.value)
		}
	}
	return Missing()
}

// likertScale is the exact 7-point mapping used throughout the study. The
// spacing is deliberately non-uniform: "Neither" sits at 2.5, between
// Somewhat Oppose (2) and Somewhat Support (3).
var likertScale = map[string]float64{
	"Strongly Support":           5,
	"Support":                    4,
	"Somewhat Support":           3,
	"Neither Oppose nor Support": 2.5,
	"Somewhat Oppose":            2,
	"Oppose":                     1,
	"Strongly Oppose":            0,
}

// LikertNumeric maps a Likert answer to its scale position. "Don't Know",
// empty and unrecognized answers are missing.
func LikertNumeric(s string) Value {
	t := strings.TrimSpace(s)
	if t == "" {
		return Missing()
	}
	if v, ok := likertScale[t]; ok {
		return Some(v)
	}
	return Missing()
}

// ParseNumeric parses a plain numeric cell (the 1-8 engagement ranks).
func ParseNumeric(s string) Value {
	t := strings.TrimSpace(s)
	if t == "" {
		return Missing()
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return Missing()
	}
	return Some(f)
}

// Numeric derives the observation for one record under one descriptor. It
// never fails: conversion problems are missing values, excluded per
// computation by every consumer.
func Numeric(rec dataset.Record, d schema.Descriptor) Value {
	raw := rec.Get(d.Column)
	switch d.Kind {
	case schema.Time:
		return TimeNumeric(raw)
	case schema.Likert:
		return LikertNumeric(raw)
	case schema.Numeric:
		return ParseNumeric(raw)
	default:
		return Missing()
	}
}

// Series derives one observation per record, preserving record order.
func Series(records []dataset.Record, d schema.Descriptor) []Value {
	out := make([]Value, len(records))
	for i, rec := range records {
		out[i] = Numeric(rec, d)
	}
	return out
}

// AlignPairs keeps the positions where both series are present, producing
// aligned xs/ys for pairwise-complete statistics. Different variable pairs
// may therefore cover different respondent subsets.
func AlignPairs(xs, ys []Value) (ax, ay []float64) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	for i := 0; i < n; i++ {
		if xs[i].Valid && ys[i].Valid {
			ax = append(ax, xs[i].F)
			ay = append(ay, ys[i].F)
		}
	}
	return ax, ay
}

// AlignTriples keeps positions where all three series are present.
func AlignTriples(xs, ys, zs []Value) (ax, ay, az []float64) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if len(zs) < n {
		n = len(zs)
	}
	for i := 0; i < n; i++ {
		if xs[i].Valid && ys[i].Valid && zs[i].Valid {
			ax = append(ax, xs[i].F)
			ay = append(ay, ys[i].F)
			az = append(az, zs[i].F)
		}
	}
	return ax, ay, az
}

// Mean averages the valid observations of a series. The second return is
// the count of valid observations; zero count means no mean exists.
func Mean(vs []Value) (float64, int) {
	var sum float64
	var n int
	for _, v := range vs {
		if v.Valid {
			sum += v.F
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}

// IdeologyScore averages a respondent's answers across a set of Likert
// items, skipping missing answers. All items missing yields Missing.
func IdeologyScore(rec dataset.Record, items []schema.Descriptor) Value {
	var sum float64
	var n int
	for _, d := range items {
		if v := Numeric(rec, d); v.Valid {
			sum += v.F
			n++
		}
	}
	if n == 0 {
		return Missing()
	}
	return Some(sum / float64(n))
}
