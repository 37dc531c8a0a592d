package aggregate

import (
	"math"
	"testing"

	"github.com/digcul/surveyscope/internal/dataset"
	"github.com/digcul/surveyscope/internal/schema"
)

func TestNormalizePlatform(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Instagram / Instagram", "Instagram"},
		{"Tiktok", "Tiktok"},
		{"TikTok", "Tiktok"},
		{"Facebook / Facebook", "Other"},
		{"Pinterest", "Other"},
		{"I do not use social media", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizePlatform(c.in); got != c.want {
			t.Errorf("NormalizePlatform(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPlatformIdeologies(t *testing.T) {
	sc := testSchema(t)
	records := []dataset.Record{
		record(map[int]string{
			schema.ColPlatform: "Instagram",
			19:                 "Support", 20: "Support", 21: "Support", // social mean 4
			22: "Oppose", 23: "Oppose", 24: "Oppose", // economic mean 1
		}),
		record(map[int]string{
			schema.ColPlatform: "Instagram / Instagram",
			19:                 "Strongly Support", 20: "Strongly Support", 21: "Strongly Support", // 5
			22: "Somewhat Support", 23: "Somewhat Support", 24: "Somewhat Support", // 3
		}),
		record(map[int]string{schema.ColPlatform: "I do not use social media"}),
	}
	got := PlatformIdeologies(records, sc)
	if len(got) != 1 {
		t.Fatalf("got %d platforms, want 1 (non-users excluded)", len(got))
	}
	p := got[0]
	if p.Platform != "Instagram" || p.Count != 2 {
		t.Errorf("platform = %+v", p)
	}
	if math.Abs(p.SocialMean-4.5) > 1e-9 {
		t.Errorf("social mean = %v, want 4.5", p.SocialMean)
	}
	if math.Abs(p.EconomicMean-2) > 1e-9 {
		t.Errorf("economic mean = %v, want 2", p.EconomicMean)
	}
}

func TestExposureEngagement(t *testing.T) {
	sc := testSchema(t)
	records := []dataset.Record{
		// Politics in content types: high exposure. Petition rank 1 -> score 8.
		record(map[int]string{
			schema.ColContentTypes:    "Politics;Sports",
			schema.ColEngagementFirst: "1",
		}),
		// No politics: low exposure. Petition rank 8 -> score 1.
		record(map[int]string{
			schema.ColContentTypes:    "Music",
			schema.ColEngagementFirst: "8",
		}),
		// No content answer: excluded from either side.
		record(map[int]string{schema.ColEngagementFirst: "4"}),
	}
	groups := ExposureEngagement(records, sc)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Group != HighExposure || groups[1].Group != LowExposure {
		t.Fatalf("group order = %s, %s", groups[0].Group, groups[1].Group)
	}
	high, low := groups[0], groups[1]
	if high.Count != 1 || low.Count != 1 {
		t.Errorf("counts = %d, %d; want 1, 1", high.Count, low.Count)
	}
	if high.Methods[0].Mean != 8 {
		t.Errorf("high petition score = %v, want 8 (inverted rank)", high.Methods[0].Mean)
	}
	if low.Methods[0].Mean != 1 {
		t.Errorf("low petition score = %v, want 1", low.Methods[0].Mean)
	}
	// Methods no respondent ranked are flagged, not plotted as real zeros.
	if !high.Methods[1].Empty {
		t.Errorf("unranked method not flagged empty: %+v", high.Methods[1])
	}
}

func TestTimeEngagement(t *testing.T) {
	sc := testSchema(t)
	records := []dataset.Record{
		record(map[int]string{
			schema.ColTimeSpent:       "Less than 1 hour per day",
			schema.ColEngagementFirst: "1",
		}),
		record(map[int]string{
			schema.ColTimeSpent:       "Less than 1 hour per day / Moins d'une heure",
			schema.ColEngagementFirst: "3",
		}),
		record(map[int]string{
			schema.ColTimeSpent:       "no idea",
			schema.ColEngagementFirst: "5",
		}),
	}
	groups := TimeEngagement(records, sc)
	if len(groups) != 5 {
		t.Fatalf("got %d buckets, want 5", len(groups))
	}
	first := groups[0]
	if first.Group != "Less than 1 hour per day" || first.Count != 2 {
		t.Fatalf("first bucket = %+v", first)
	}
	// Ranks 1 and 3 invert to 8 and 6.
	if first.Methods[0].Mean != 7 {
		t.Errorf("mean inverted rank = %v, want 7", first.Methods[0].Mean)
	}
	// Unanswered buckets stay present with zero count.
	if groups[4].Count != 0 {
		t.Errorf("last bucket count = %d, want 0", groups[4].Count)
	}
}

func TestIdeologyScatter(t *testing.T) {
	sc := testSchema(t)
	records := []dataset.Record{
		record(map[int]string{
			19: "Support", 20: "Support", 21: "Support",
			22: "Oppose", 23: "Oppose", 24: "Oppose",
		}),
		// Missing economic answers: excluded.
		record(map[int]string{19: "Support", 20: "Support", 21: "Support"}),
	}
	pts := IdeologyScatter(records, sc)
	if len(pts) != 1 {
		t.Fatalf("got %d points, want 1", len(pts))
	}
	if pts[0].Social != 4 || pts[0].Economic != 1 {
		t.Errorf("point = %+v", pts[0])
	}
	if pts[0].Label != "Respondent 1" {
		t.Errorf("label = %q", pts[0].Label)
	}
}
