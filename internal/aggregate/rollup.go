package aggregate

import (
	"strconv"
	"strings"

	"github.com/digcul/surveyscope/internal/dataset"
	"github.com/digcul/surveyscope/internal/derive"
	"github.com/digcul/surveyscope/internal/normalize"
	"github.com/digcul/surveyscope/internal/schema"
)

// Fixed rollups mirroring the study's headline charts. Unlike the generic
// Frequency/GroupedMeans they bake in the study's own grouping conventions
// (platform coarsening, political-exposure split, inverted rank scores).

// PlatformIdeology is the mean social and economic ideology score of one
// platform's users.
type PlatformIdeology struct {
	Platform     string
	SocialMean   float64
	EconomicMean float64
	Count        int
}

// PlatformIdeologies groups respondents by primary platform and averages
// their per-respondent ideology scores. Platforms other than Instagram and
// Tiktok are coarsened to "Other"; non-users are skipped.
func PlatformIdeologies(records []dataset.Record, sc *schema.Schema) []PlatformIdeology {
	social := sc.SocialIdeology()
	economic := sc.EconomicIdeology()

	type acc struct {
		social, economic []float64
	}
	stats := make(map[string]*acc)
	var order []string
	for _, rec := range records {
		platform := NormalizePlatform(rec.Get(schema.ColPlatform))
		if platform == "" {
			continue
		}
		a := stats[platform]
		if a == nil {
			a = &acc{}
			stats[platform] = a
			order = append(order, platform)
		}
		if v := derive.IdeologyScore(rec, social); v.Valid {
			a.social = append(a.social, v.F)
		}
		if v := derive.IdeologyScore(rec, economic); v.Valid {
			a.economic = append(a.economic, v.F)
		}
	}

	out := make([]PlatformIdeology, 0, len(order))
	for _, platform := range order {
		a := stats[platform]
		p := PlatformIdeology{Platform: platform, Count: len(a.social)}
		if len(a.social) > 0 {
			p.SocialMean = mean(a.social)
		}
		if len(a.economic) > 0 {
			p.EconomicMean = mean(a.economic)
		}
		out = append(out, p)
	}
	return out
}

// NormalizePlatform coarsens a raw platform cell to Instagram, Tiktok or
// Other. Respondents who do not use social media map to "" and are
// excluded from platform groupings.
func NormalizePlatform(raw string) string {
	p := normalize.StripBilingual(raw)
	if p == "" || p == "I do not use social media" {
		return ""
	}
	if p == "TikTok" {
		p = "Tiktok"
	}
	if p != "Instagram" && p != "Tiktok" {
		p = "Other"
	}
	return p
}

// MethodMean is the mean effectiveness score of one engagement method
// within a group. Scores are inverted ranks (9 - rank), so higher means
// more effective.
type MethodMean struct {
	Method string
	Mean   float64
	Count  int
	Empty  bool
}

// EngagementGroup aggregates method effectiveness for one group of
// respondents.
type EngagementGroup struct {
	Group   string
	Methods []MethodMean
	Overall float64
	Count   int
}

// Exposure group labels.
const (
	HighExposure = "High Political Exposure"
	LowExposure  = "Low Political Exposure"
)

// ExposureEngagement splits respondents by whether politics appears among
// their content types and averages each method's inverted rank per side.
func ExposureEngagement(records []dataset.Record, sc *schema.Schema) []EngagementGroup {
	methods := sc.EngagementMethods()
	grouper := func(rec dataset.Record) (string, bool) {
		content := rec.Get(schema.ColContentTypes)
		if content == "" {
			return "", false
		}
		if strings.Contains(strings.ToLower(content), "politi") {
			return HighExposure, true
		}
		return LowExposure, true
	}
	return engagementBy(records, methods, []string{HighExposure, LowExposure}, grouper)
}

// TimeEngagement averages each method's inverted rank per canonical
// time-spent bucket.
func TimeEngagement(records []dataset.Record, sc *schema.Schema) []EngagementGroup {
	methods := sc.EngagementMethods()
	buckets := normalize.TimeOrder()
	known := make(map[string]bool, len(buckets))
	for _, b := range buckets {
		known[b] = true
	}
	grouper := func(rec dataset.Record) (string, bool) {
		raw := rec.Get(schema.ColTimeSpent)
		if raw == "" {
			return "", false
		}
		bucket := normalize.TimeBucket(raw)
		if !known[bucket] {
			return "", false
		}
		return bucket, true
	}
	return engagementBy(records, methods, buckets, grouper)
}

func engagementBy(records []dataset.Record, methods []schema.Descriptor, groups []string, grouper func(dataset.Record) (string, bool)) []EngagementGroup {
	type acc struct {
		scores [][]float64
		count  int
	}
	stats := make(map[string]*acc, len(groups))
	for _, g := range groups {
		stats[g] = &acc{scores: make([][]float64, len(methods))}
	}
	for _, rec := range records {
		g, ok := grouper(rec)
		if !ok {
			continue
		}
		a := stats[g]
		a.count++
		for i, m := range methods {
			if v := derive.Numeric(rec, m); v.Valid {
				// Raw ranks run 1 (most effective) to 8 (least); invert so
				// higher plots as more effective.
				a.scores[i] = append(a.scores[i], 9-v.F)
			}
		}
	}

	out := make([]EngagementGroup, 0, len(groups))
	for _, g := range groups {
		a := stats[g]
		eg := EngagementGroup{Group: g, Count: a.count, Methods: make([]MethodMean, len(methods))}
		var sum float64
		var n int
		for i, m := range methods {
			mm := MethodMean{Method: m.Label, Count: len(a.scores[i])}
			if len(a.scores[i]) > 0 {
				mm.Mean = mean(a.scores[i])
				sum += mm.Mean
				n++
			} else {
				mm.Empty = true
			}
			eg.Methods[i] = mm
		}
		if n > 0 {
			eg.Overall = sum / float64(n)
		}
		out = append(out, eg)
	}
	return out
}

// IdeologyPoint is one respondent's position on the two ideology axes.
type IdeologyPoint struct {
	Economic float64
	Social   float64
	Label    string
}

// IdeologyScatter returns one point per respondent with both ideology
// scores present, in record order.
func IdeologyScatter(records []dataset.Record, sc *schema.Schema) []IdeologyPoint {
	social := sc.SocialIdeology()
	economic := sc.EconomicIdeology()
	var out []IdeologyPoint
	for i, rec := range records {
		sv := derive.IdeologyScore(rec, social)
		ev := derive.IdeologyScore(rec, economic)
		if !sv.Valid || !ev.Valid {
			continue
		}
		out = append(out, IdeologyPoint{
			Economic: ev.F,
			Social:   sv.F,
			Label:    respondentLabel(i),
		})
	}
	return out
}

func respondentLabel(i int) string {
	return "Respondent " + strconv.Itoa(i+1)
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
