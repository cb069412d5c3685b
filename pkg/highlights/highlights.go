// Package highlights turns the highlighted date ranges from the configuration
// into values the page renderers can query by day.
package highlights

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/klokku/planner/pkg/dates"
)

var ErrInvalidHighlight = errors.New("invalid highlight")

// Spec is a highlight as written in the configuration, dates in YYYY-MM-DD form.
// An empty End makes a single-day highlight.
type Spec struct {
	Title string
	Start string
	End   string
}

type Range struct {
	Title string
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the range, both ends included.
func (r Range) Contains(d time.Time) bool {
	d = dates.Truncate(d)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days is the inclusive length of the range.
func (r Range) Days() int {
	return dates.DaysBetween(r.Start, r.End) + 1
}

// Set is a list of ranges sorted by start date.
type Set []Range

func Parse(specs []Spec) (Set, error) {
	set := make(Set, 0, len(specs))
	for i, spec := range specs {
		r, err := parseOne(spec)
		if err != nil {
			return nil, fmt.Errorf("highlight %d (%q): %w", i+1, spec.Title, err)
		}
		set = append(set, r)
	}
	sort.SliceStable(set, func(i, j int) bool {
		return set[i].Start.Before(set[j].Start)
	})
	return set, nil
}

func parseOne(spec Spec) (Range, error) {
	title := strings.TrimSpace(spec.Title)
	if title == "" {
		return Range{}, fmt.Errorf("%w: title is required", ErrInvalidHighlight)
	}
	start, err := time.Parse(time.DateOnly, strings.TrimSpace(spec.Start))
	if err != nil {
		return Range{}, fmt.Errorf("%w: start: %v", ErrInvalidHighlight, err)
	}
	end := start
	if strings.TrimSpace(spec.End) != "" {
		end, err = time.Parse(time.DateOnly, strings.TrimSpace(spec.End))
		if err != nil {
			return Range{}, fmt.Errorf("%w: end: %v", ErrInvalidHighlight, err)
		}
	}
	if end.Before(start) {
		return Range{}, fmt.Errorf("%w: end %s is before start %s", ErrInvalidHighlight,
			end.Format(time.DateOnly), start.Format(time.DateOnly))
	}
	return Range{Title: title, Start: dates.Truncate(start), End: dates.Truncate(end)}, nil
}

// On returns the ranges covering d.
func (s Set) On(d time.Time) []Range {
	var out []Range
	for _, r := range s {
		if r.Contains(d) {
			out = append(out, r)
		}
	}
	return out
}

// Titles returns the titles of the ranges covering d.
func (s Set) Titles(d time.Time) []string {
	var out []string
	for _, r := range s.On(d) {
		out = append(out, r.Title)
	}
	return out
}

// InYear keeps the ranges that touch the calendar year.
func (s Set) InYear(year int) Set {
	first := dates.Date(year, time.January, 1)
	last := dates.Date(year, time.December, 31)
	var out Set
	for _, r := range s {
		if r.End.Before(first) || r.Start.After(last) {
			continue
		}
		out = append(out, r)
	}
	return out
}
