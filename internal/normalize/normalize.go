package normalize

import (
	"strconv"
	"strings"
)

// bilingualSep separates the English and French halves of a survey label.
const bilingualSep = " / "

// StripBilingual returns the English half of a bilingual label: the text
// before the first " / " separator, trimmed. Input without the separator is
// returned unchanged.
func StripBilingual(s string) string {
	if s == "" {
		return s
	}
	if i := strings.Index(s, bilingualSep); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}

// SplitMulti splits a multi-select cell on ";" into trimmed tokens, dropping
// empty segments. Used for fields that allow multiple selections (content
// types, info sources, trusted accounts).
func SplitMulti(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// bucketRule maps a set of case-insensitive substrings to a category.
// Rules are evaluated in order; the first match wins.
type bucketRule struct {
	category string
	words    []string
}

// Emotion buckets. Word lists cover both English and French responses;
// anything unmatched is "Mixed" (a catch-all for complex answers, not an
// error).
var emotionRules = []bucketRule{
	{"Good", []string{"happy", "heureux", "informed", "included", "motivated", "hopeful"}},
	{"Bad", []string{"sad", "triste", "angry", "colère", "anxious", "defeated", "uncomfortable", "upsetting"}},
	{"Neutral", []string{"indifferent", "indifférent", "depends"}},
}

// EmotionBucket categorizes a free-text emotional response into one of
// Good, Bad, Neutral or Mixed. Empty input passes through unchanged.
func EmotionBucket(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	for _, r := range emotionRules {
		for _, w := range r.words {
			if strings.Contains(lower, w) {
				return r.category
			}
		}
	}
	return "Mixed"
}

// Canonical time buckets, in display order. The phrase is the stable English
// fragment matched against raw cells; the bucket is the full canonical label.
var timeRules = []struct {
	phrase string
	bucket string
}{
	{"Less than 1", "Less than 1 hour per day"},
	{"Between 1 and 3", "Between 1 and 3 hours per day"},
	{"Between 3 and 5", "Between 3 and 5 hours per day"},
	{"Between 5 and 7", "Between 5 and 7 hours per day"},
	{"More than 7", "More than 7 hours per day"},
}

// TimeOrder returns the canonical time-bucket labels in ascending order.
func TimeOrder() []string {
	out := make([]string, len(timeRules))
	for i, r := range timeRules {
		out[i] = r.bucket
	}
	return out
}

// TimeBucket maps a raw time-spent cell to its canonical bucket label.
// Unmatched input passes through unchanged and becomes its own category
// downstream.
func TimeBucket(s string) string {
	for _, r := range timeRules {
		if strings.Contains(s, r.phrase) {
			return r.bucket
		}
	}
	return s
}

// AgeGroups lists the age-group labels in ascending order.
var AgeGroups = []string{"Under 18", "18-21", "22-25", "26-29", "30-34", "35-39", "40+"}

// AgeGroup maps a raw age cell to its group label. Empty input maps to
// "Unknown"; non-numeric input passes through as its own group.
func AgeGroup(s string) string {
	if s == "" {
		return "Unknown"
	}
	age, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return s
	}
	switch {
	case age < 18:
		return "Under 18"
	case age < 22:
		return "18-21"
	case age < 26:
		return "22-25"
	case age < 30:
		return "26-29"
	case age < 35:
		return "30-34"
	case age < 40:
		return "35-39"
	default:
		return "40+"
	}
}

// Display shortenings for long answer labels, keyed by a contained fragment.
var contentShortenings = []struct{ fragment, short string }{
	{"Makeup", "Beauty"},
	{"Health", "Health/Fitness"},
	{"Entrepreneurship", "Business"},
	{"Advertisements", "Ads"},
	{"Gaming", "Gaming"},
}

var sourceShortenings = []struct{ fragment, short string }{
	{"Social media", "Social Media"},
	{"Newpapers", "Newspapers"}, // typo is in the questionnaire itself
	{"Family", "Family/Friends"},
}

// ShortenContentType rewrites known long content-type labels to their
// compact display form. Unknown labels are returned unchanged.
func ShortenContentType(s string) string {
	for _, r := range contentShortenings {
		if strings.Contains(s, r.fragment) {
			return r.short
		}
	}
	return s
}

// ShortenInfoSource rewrites known long info-source labels to their compact
// display form.
func ShortenInfoSource(s string) string {
	for _, r := range sourceShortenings {
		if strings.Contains(s, r.fragment) {
			return r.short
		}
	}
	return s
}
