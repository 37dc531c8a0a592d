package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/digcul/surveyscope/internal/dataset"
)

func testDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	header := []string{
		"Timestamp",
		"What is your age?",
		"Gender",
		"Do you study social sciences?",
		"Which platform do you use the most?",
		"How much time do you spend on social media per day?",
		"What type of content do you see the most?",
		"How does political content make you feel?",
		"Is the content aligned with your own opinions?",
		"Where do you get political information?",
		"Which accounts do you trust?",
		"Rank [Signing petitions]",
		"Rank [Sharing activist media]",
		"Rank [Joining a political party]",
		"Rank [Attending protests]",
		"Rank [Contacting elected officials]",
		"Rank [Voting]",
		"Rank [Debating online]",
		"Rank [Staying informed]",
		"Same-sex marriage",
		"Abortion",
		"Immigration",
		"Taxes on the wealthy",
		"Public healthcare",
		"Income inequality",
	}
	rows := [][]string{
		{"t", "19", "Female", "Yes", "Instagram", "Between 1 and 3 hours per day",
			"Politics;Sports", "Happy", "Somewhat Support", "Social media platforms", "Friends",
			"1", "2", "3", "4", "5", "6", "7", "8",
			"Support", "Support", "Support", "Oppose", "Oppose", "Oppose"},
		{"t", "24", "Male", "No", "Tiktok", "More than 7 hours per day",
			"Music", "Angry", "Oppose", "TV", "Journalists",
			"8", "7", "6", "5", "4", "3", "2", "1",
			"Oppose", "Oppose", "Oppose", "Support", "Support", "Support"},
		{"t", "31", "Female", "No", "Facebook", "Between 3 and 5 hours per day",
			"Sports;Politics", "It depends", "Support", "TV", "Friends",
			"2", "3", "4", "5", "6", "7", "8", "1",
			"Somewhat Support", "Support", "Somewhat Oppose", "Neither Oppose nor Support", "Support", "Oppose"},
	}
	var b strings.Builder
	b.WriteString(strings.Join(header, ",") + "\n")
	for _, r := range rows {
		b.WriteString(strings.Join(r, ",") + "\n")
	}
	ds, err := dataset.Parse(strings.NewReader(b.String()), 0)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return ds
}

func TestMarkdownSections(t *testing.T) {
	ds := testDataset(t)
	md := Markdown(ds, DefaultOptions())

	for _, want := range []string{
		"# Social Media and Youth Political Engagement",
		"Respondents: 3",
		"## Platforms",
		"## Age Groups",
		"## Time Spent",
		"## Content Types",
		"## Emotional Response",
		"## Ideology by Platform",
		"## Engagement Effectiveness by Political Exposure",
		"High Political Exposure",
		"## Correlations",
		"## Time Spent vs Engagement",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if strings.Contains(md, "NaN") {
		t.Error("report contains NaN")
	}
}

func TestMarkdownOptions(t *testing.T) {
	ds := testDataset(t)
	opt := DefaultOptions()
	opt.Title = "Custom Title"
	opt.Correlations = false
	opt.Regressions = false
	md := Markdown(ds, opt)
	if !strings.Contains(md, "# Custom Title") {
		t.Error("custom title not applied")
	}
	if strings.Contains(md, "## Correlations") {
		t.Error("correlation section present despite being disabled")
	}
}

func TestWritePDF(t *testing.T) {
	ds := testDataset(t)
	md := Markdown(ds, DefaultOptions())
	out := filepath.Join(t.TempDir(), "report.pdf")
	if err := WritePDF(md, out); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if len(b) == 0 || !strings.HasPrefix(string(b), "%PDF") {
		t.Errorf("output does not look like a PDF (%d bytes)", len(b))
	}
}
