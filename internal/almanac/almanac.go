// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package almanac converts lists of civil dates in bulk. Input is a
// YAML file naming the dates; output is a YAML report with one entry
// per date and a summary.
package almanac

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ddate/internal/civil"
	"github.com/pdiddy/ddate/pkg/discordian"
)

// InputFile is the on-disk form of a batch request.
type InputFile struct {
	Dates []string `yaml:"dates"`
}

// Entry is the conversion result for a single civil date. Exactly one
// of Discordian or Error is set.
type Entry struct {
	Civil      string `yaml:"civil" json:"civil"`
	Discordian string `yaml:"discordian,omitempty" json:"discordian,omitempty"`
	Holyday    string `yaml:"holyday,omitempty" json:"holyday,omitempty"`
	StTibs     bool   `yaml:"st_tibs,omitempty" json:"st_tibs,omitempty"`
	Error      string `yaml:"error,omitempty" json:"error,omitempty"`
}

// Summary holds batch statistics.
type Summary struct {
	Total     int       `yaml:"total" json:"total"`
	Converted int       `yaml:"converted" json:"converted"`
	Failed    int       `yaml:"failed" json:"failed"`
	StTibs    int       `yaml:"st_tibs" json:"st_tibs"`
	Timestamp time.Time `yaml:"timestamp" json:"timestamp"`
}

// Report is the on-disk form of a batch result.
type Report struct {
	Entries []Entry `yaml:"entries" json:"entries"`
	Summary Summary `yaml:"summary" json:"summary"`
}

// Read loads the civil date strings from a batch input file.
func Read(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading almanac input: %w", err)
	}
	var in InputFile
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parsing almanac input: %w", err)
	}
	if len(in.Dates) == 0 {
		return nil, fmt.Errorf("almanac input %s lists no dates", path)
	}
	return in.Dates, nil
}

// Convert converts each civil date string to its Discordian form. A
// date that fails to parse produces an entry with Error set; the batch
// itself always succeeds.
func Convert(dates []string) Report {
	r := Report{Entries: make([]Entry, 0, len(dates))}
	for _, s := range dates {
		e := Entry{Civil: s}
		t, err := civil.Parse(s)
		if err != nil {
			e.Error = err.Error()
			r.Summary.Failed++
		} else {
			d := discordian.FromDate(t)
			e.Civil = t.Format(civil.DateFmt)
			e.Discordian = d.String()
			e.StTibs = d.StTibs
			if h, ok := d.Holyday(); ok {
				e.Holyday = h
			}
			r.Summary.Converted++
			if d.StTibs {
				r.Summary.StTibs++
			}
		}
		r.Entries = append(r.Entries, e)
	}
	r.Summary.Total = len(dates)
	r.Summary.Timestamp = time.Now()
	return r
}

// Write saves a report to a YAML file.
func Write(path string, r Report) error {
	data, err := yaml.Marshal(&r)
	if err != nil {
		return fmt.Errorf("marshaling almanac report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
