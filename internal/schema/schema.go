// Package schema pins the survey's positional column contract to named
// fields. The questionnaire export assigns meaning by column position, not by
// header text; resolving the schema once at load time turns a reordered or
// truncated file into an immediate, descriptive error instead of silently
// corrupted aggregates.
package schema

import (
	"fmt"
	"regexp"

	"github.com/digcul/surveyscope/internal/normalize"
)

// Kind describes how a column's raw cells convert to analysis values.
type Kind int

const (
	// Categorical columns stay as (normalized) string categories.
	Categorical Kind = iota
	// Time columns hold the time-spent answer, converted to bucket midpoints.
	Time
	// Likert columns hold 7-point support/oppose answers.
	Likert
	// Numeric columns hold plain numbers (the 1-8 engagement ranks).
	Numeric
)

func (k Kind) String() string {
	switch k {
	case Categorical:
		return "categorical"
	case Time:
		return "time"
	case Likert:
		return "likert"
	case Numeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// Fixed column positions of the questionnaire export. Column 0 is the
// submission timestamp and is never analyzed.
const (
	ColAge             = 1
	ColGender          = 2
	ColSocialSciences  = 3
	ColPlatform        = 4
	ColTimeSpent       = 5
	ColContentTypes    = 6 // multi-select
	ColEmotion         = 7
	ColAlignment       = 8
	ColInfoSource      = 9 // multi-select
	ColTrustedAccounts = 10
	// Engagement-method effectiveness ranks, one column per method.
	ColEngagementFirst = 11
	ColEngagementLast  = 18
	// Ideology Likert items.
	ColSocialFirst   = 19
	ColSocialLast    = 21
	ColEconomicFirst = 22
	ColEconomicLast  = 24
)

// minColumns is the smallest header the schema can be resolved against.
const minColumns = ColEconomicLast + 1

// Descriptor identifies one analyzable variable: a display label, the column
// it reads, and how cells convert.
type Descriptor struct {
	Label  string
	Column int
	Kind   Kind
}

// Schema is the resolved column contract for one loaded dataset.
type Schema struct {
	Header []string
}

// Resolve validates the header row against the positional contract.
func Resolve(header []string) (*Schema, error) {
	if len(header) < minColumns {
		return nil, fmt.Errorf("header has %d columns, need at least %d: file does not match the survey export layout", len(header), minColumns)
	}
	return &Schema{Header: header}, nil
}

// Columns returns the header width.
func (s *Schema) Columns() int { return len(s.Header) }

// TimeSpent returns the descriptor for the time-spent variable. The raw
// header is a full question sentence; it is replaced with a short display
// label.
func (s *Schema) TimeSpent() Descriptor {
	return Descriptor{Label: "Time Spent on Social Media", Column: ColTimeSpent, Kind: Time}
}

// bracketRe extracts the method name from engagement-rank headers shaped
// like "Rank the following ... [Signing petitions / Signer des pétitions]".
var bracketRe = regexp.MustCompile(`\[([^\]]+)\]`)

// EngagementMethods returns descriptors for the eight engagement-method rank
// columns, labeled by the method name inside the header's brackets.
func (s *Schema) EngagementMethods() []Descriptor {
	out := make([]Descriptor, 0, ColEngagementLast-ColEngagementFirst+1)
	for col := ColEngagementFirst; col <= ColEngagementLast; col++ {
		h := s.Header[col]
		label := h
		if m := bracketRe.FindStringSubmatch(h); m != nil {
			label = m[1]
		} else if len(label) > 50 {
			label = label[:50]
		}
		label = normalize.StripBilingual(label)
		out = append(out, Descriptor{Label: label, Column: col, Kind: Numeric})
	}
	return out
}

// SocialIdeology returns descriptors for the three social-ideology Likert
// items.
func (s *Schema) SocialIdeology() []Descriptor {
	return s.likertRange(ColSocialFirst, ColSocialLast)
}

// EconomicIdeology returns descriptors for the three economic-ideology
// Likert items.
func (s *Schema) EconomicIdeology() []Descriptor {
	return s.likertRange(ColEconomicFirst, ColEconomicLast)
}

func (s *Schema) likertRange(first, last int) []Descriptor {
	out := make([]Descriptor, 0, last-first+1)
	for col := first; col <= last; col++ {
		label := normalize.StripBilingual(s.Header[col])
		if len(label) > 50 {
			label = label[:50]
		}
		out = append(out, Descriptor{Label: label, Column: col, Kind: Likert})
	}
	return out
}

// Ordinal returns every variable usable on a numeric axis: the eight
// engagement ranks followed by the six ideology Likert items.
func (s *Schema) Ordinal() []Descriptor {
	out := s.EngagementMethods()
	out = append(out, s.SocialIdeology()...)
	out = append(out, s.EconomicIdeology()...)
	return out
}

// CorrelationVariables returns the variable set of the correlation matrix:
// time spent first, then all ordinal variables.
func (s *Schema) CorrelationVariables() []Descriptor {
	out := []Descriptor{s.TimeSpent()}
	return append(out, s.Ordinal()...)
}

// Categorical descriptors for the demographic and single-answer fields.

func (s *Schema) Age() Descriptor {
	return Descriptor{Label: "Age Group", Column: ColAge, Kind: Categorical}
}

func (s *Schema) Gender() Descriptor {
	return Descriptor{Label: "Gender", Column: ColGender, Kind: Categorical}
}

func (s *Schema) SocialSciences() Descriptor {
	return Descriptor{Label: "Studies Social Sciences", Column: ColSocialSciences, Kind: Categorical}
}

func (s *Schema) Platform() Descriptor {
	return Descriptor{Label: "Social Media Platform", Column: ColPlatform, Kind: Categorical}
}

func (s *Schema) ContentTypes() Descriptor {
	return Descriptor{Label: "Content Types", Column: ColContentTypes, Kind: Categorical}
}

func (s *Schema) Emotion() Descriptor {
	return Descriptor{Label: "Emotional Response", Column: ColEmotion, Kind: Categorical}
}

// CompactEmotionLabel marks the bucketed variant of the emotion field. The
// comprehensive variant keeps the raw answers; the compact one groups them
// into Good/Bad/Neutral/Mixed.
const CompactEmotionLabel = "Emotional Response (Compact)"

func (s *Schema) EmotionCompact() Descriptor {
	return Descriptor{Label: CompactEmotionLabel, Column: ColEmotion, Kind: Categorical}
}

func (s *Schema) Alignment() Descriptor {
	return Descriptor{Label: "Content Aligned with Own Opinions", Column: ColAlignment, Kind: Categorical}
}

func (s *Schema) InfoSource() Descriptor {
	return Descriptor{Label: "Political Info Source", Column: ColInfoSource, Kind: Categorical}
}

func (s *Schema) TrustedAccounts() Descriptor {
	return Descriptor{Label: "Trusted Accounts", Column: ColTrustedAccounts, Kind: Categorical}
}

// MultiSelect reports whether a column holds semicolon-joined multiple
// selections.
func MultiSelect(col int) bool {
	return col == ColContentTypes || col == ColInfoSource || col == ColTrustedAccounts
}

// FieldByName maps a CLI-facing field name to its categorical descriptor.
func (s *Schema) FieldByName(name string) (Descriptor, bool) {
	switch name {
	case "age":
		return s.Age(), true
	case "gender":
		return s.Gender(), true
	case "social-sciences":
		return s.SocialSciences(), true
	case "platform":
		return s.Platform(), true
	case "time-spent":
		return Descriptor{Label: "Time Spent on Social Media", Column: ColTimeSpent, Kind: Categorical}, true
	case "content-types":
		return s.ContentTypes(), true
	case "emotion":
		return s.Emotion(), true
	case "emotion-compact":
		return s.EmotionCompact(), true
	case "alignment":
		return s.Alignment(), true
	case "info-source":
		return s.InfoSource(), true
	case "trusted-accounts":
		return s.TrustedAccounts(), true
	}
	return Descriptor{}, false
}

// FieldNames lists the names accepted by FieldByName, for CLI help output.
func FieldNames() []string {
	return []string{
		"age", "gender", "social-sciences", "platform", "time-spent",
		"content-types", "emotion", "emotion-compact", "alignment",
		"info-source", "trusted-accounts",
	}
}
