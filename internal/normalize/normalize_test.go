package normalize

import (
	"reflect"
	"testing"
)

func TestStripBilingual(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Yes / Oui", "Yes"},
		{"NoSeparatorHere", "NoSeparatorHere"},
		{"", ""},
		{"Instagram / Instagram", "Instagram"},
		{"A / B / C", "A"},
		{"  Spaced / Espacé", "Spaced"},
	}
	for _, c := range cases {
		if got := StripBilingual(c.in); got != c.want {
			t.Errorf("StripBilingual(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSplitMulti(t *testing.T) {
	got := SplitMulti("Politics;Sports; Music ")
	want := []string{"Politics", "Sports", "Music"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitMulti = %v, want %v", got, want)
	}
	if got := SplitMulti(";;"); got != nil {
		t.Errorf("SplitMulti(\";;\") = %v, want nil", got)
	}
	if got := SplitMulti(""); got != nil {
		t.Errorf("SplitMulti(\"\") = %v, want nil", got)
	}
	if got := SplitMulti("Solo"); !reflect.DeepEqual(got, []string{"Solo"}) {
		t.Errorf("SplitMulti(\"Solo\") = %v", got)
	}
}

func TestEmotionBucket(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Happy / Heureux", "Good"},
		{"It keeps me informed", "Good"},
		{"Angry", "Bad"},
		{"en colère", "Bad"},
		{"Uncomfortable and upsetting", "Bad"},
		{"Indifferent / Indifférent", "Neutral"},
		{"It depends on the content", "Neutral"},
		{"A bit of everything honestly", "Mixed"},
		{"", ""},
	}
	for _, c := range cases {
		if got := EmotionBucket(c.in); got != c.want {
			t.Errorf("EmotionBucket(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTimeBucket(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Less than 1 hour per day / Moins d'une heure par jour", "Less than 1 hour per day"},
		{"Between 1 and 3 hours per day", "Between 1 and 3 hours per day"},
		{"Between 3 and 5 hours", "Between 3 and 5 hours per day"},
		{"Between 5 and 7 hours per day", "Between 5 and 7 hours per day"},
		{"More than 7 hours per day", "More than 7 hours per day"},
		// Unmatched input passes through and becomes its own category.
		{"all day long", "all day long"},
		{"", ""},
	}
	for _, c := range cases {
		if got := TimeBucket(c.in); got != c.want {
			t.Errorf("TimeBucket(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTimeOrder(t *testing.T) {
	order := TimeOrder()
	if len(order) != 5 {
		t.Fatalf("TimeOrder has %d entries, want 5", len(order))
	}
	if order[0] != "Less than 1 hour per day" || order[4] != "More than 7 hours per day" {
		t.Errorf("unexpected order: %v", order)
	}
}

func TestAgeGroup(t *testing.T) {
	cases := []struct{ in, want string }{
		{"17", "Under 18"},
		{"18", "18-21"},
		{"21", "18-21"},
		{"22", "22-25"},
		{"25", "22-25"},
		{"26", "26-29"},
		{"30", "30-34"},
		{"35", "35-39"},
		{"39", "35-39"},
		{"40", "40+"},
		{"65", "40+"},
		{"abc", "abc"}, // passthrough, not an error
		{"", "Unknown"},
	}
	for _, c := range cases {
		if got := AgeGroup(c.in); got != c.want {
			t.Errorf("AgeGroup(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestShortenings(t *testing.T) {
	if got := ShortenContentType("Makeup and skincare tutorials"); got != "Beauty" {
		t.Errorf("ShortenContentType makeup = %q", got)
	}
	if got := ShortenContentType("Politics"); got != "Politics" {
		t.Errorf("ShortenContentType politics = %q", got)
	}
	if got := ShortenInfoSource("Social media platforms"); got != "Social Media" {
		t.Errorf("ShortenInfoSource = %q", got)
	}
	if got := ShortenInfoSource("Newpapers and news sites"); got != "Newspapers" {
		t.Errorf("ShortenInfoSource = %q", got)
	}
}
