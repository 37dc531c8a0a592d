// Package dataset loads the survey CSV into an immutable in-memory record
// set. All downstream computation re-reads this set; nothing mutates it.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/digcul/surveyscope/internal/normalize"
	"github.com/digcul/surveyscope/internal/schema"
)

// Record holds one respondent's raw cells, indexed by schema column.
type Record []string

// Get returns the cell at col, or "" when the row is narrower than the
// header.
func (r Record) Get(col int) string {
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Dataset is a parsed survey file: the resolved schema plus one record per
// respondent, in file order.
type Dataset struct {
	Schema  *schema.Schema
	Records []Record
}

// Load reads and parses the survey CSV at path. A missing or unreadable file
// is fatal for the caller; there is no partial result.
func Load(path string, delimiter rune) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open survey data: %w", err)
	}
	defer f.Close()
	ds, err := Parse(f, delimiter)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return ds, nil
}

// Parse reads delimited text with a header row. Row-shape policy: short rows
// are padded with empty cells and long rows truncated to the header width —
// a missing trailing field is an empty answer, not a fatal error. Empty
// lines are skipped.
func Parse(r io.Reader, delimiter rune) (*Dataset, error) {
	cr := csv.NewReader(r)
	if delimiter != 0 {
		cr.Comma = delimiter
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file: no header row")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	sc, err := schema.Resolve(header)
	if err != nil {
		return nil, err
	}

	ncol := len(header)
	var records []Record
	for {
		row, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(records)+2, err)
		}
		rec := make(Record, ncol)
		copy(rec, row)
		records = append(records, rec)
	}
	return &Dataset{Schema: sc, Records: records}, nil
}

// Filter narrows a record set for interactive views. Zero values mean "no
// constraint" for each dimension.
type Filter struct {
	Platforms      []string // normalized platform names
	AgeMin, AgeMax int      // inclusive; both zero disables the range, unparseable ages fail an active range
	Genders        []string // normalized gender labels
	SocialSciences string   // "", "yes" or "no"
	ContentType    string   // a single content-type tag the respondent selected
}

// Apply returns the records passing every active constraint. The input slice
// is never modified.
func (ds *Dataset) Apply(f Filter) []Record {
	out := make([]Record, 0, len(ds.Records))
	for _, rec := range ds.Records {
		if !f.matches(rec) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func (f Filter) matches(rec Record) bool {
	if len(f.Platforms) > 0 {
		p := normalize.StripBilingual(rec.Get(schema.ColPlatform))
		if p == "" || !contains(f.Platforms, p) {
			return false
		}
	}
	if f.AgeMin != 0 || f.AgeMax != 0 {
		// An active age range admits only parseable ages inside it.
		age, err := strconv.Atoi(strings.TrimSpace(rec.Get(schema.ColAge)))
		if err != nil || age < f.AgeMin || age > f.AgeMax {
			return false
		}
	}
	if len(f.Genders) > 0 {
		g := normalize.StripBilingual(rec.Get(schema.ColGender))
		if g == "" || !contains(f.Genders, g) {
			return false
		}
	}
	if f.SocialSciences != "" {
		want := "No"
		if strings.EqualFold(f.SocialSciences, "yes") {
			want = "Yes"
		}
		if normalize.StripBilingual(rec.Get(schema.ColSocialSciences)) != want {
			return false
		}
	}
	if f.ContentType != "" {
		found := false
		for _, tok := range normalize.SplitMulti(rec.Get(schema.ColContentTypes)) {
			if normalize.StripBilingual(tok) == f.ContentType {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
