package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Week identifies one week page of a planner year. It is a value derived purely
// from Year and Number.
type Week struct {
	Year   int
	Number int
}

// WeekOf returns the week of year that contains d, computed against d's own year.
func WeekOf(d time.Time) Week {
	return Week{Year: d.Year(), Number: WeekNumberForDate(d)}
}

// Weeks returns every week of the planner year in order.
func Weeks(year int) []Week {
	total := TotalWeeks(year)
	weeks := make([]Week, 0, total)
	for n := 1; n <= total; n++ {
		weeks = append(weeks, Week{Year: year, Number: n})
	}
	return weeks
}

// WeekFromString parses the "2025-W03" form produced by String.
func WeekFromString(s string) (Week, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 || !strings.HasPrefix(parts[1], "W") {
		return Week{}, fmt.Errorf("invalid week format: %s", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Week{}, fmt.Errorf("invalid year: %w", err)
	}
	number, err := strconv.Atoi(parts[1][1:])
	if err != nil {
		return Week{}, fmt.Errorf("invalid week: %w", err)
	}
	return Week{Year: year, Number: number}, nil
}

func (w Week) Start() time.Time {
	return WeekStart(w.Year, w.Number)
}

func (w Week) End() time.Time {
	return WeekEnd(w.Year, w.Number)
}

// Days returns Monday through Sunday.
func (w Week) Days() [7]time.Time {
	var days [7]time.Time
	start := w.Start()
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// Contains reports whether d falls between Start and End inclusive.
func (w Week) Contains(d time.Time) bool {
	d = Truncate(d)
	return !d.Before(w.Start()) && !d.After(w.End())
}

// Months returns the months of the week's own year touched by the week, in order.
// Days that spill into the neighbouring years are skipped.
func (w Week) Months() []time.Month {
	var months []time.Month
	for _, d := range w.Days() {
		if d.Year() != w.Year {
			continue
		}
		if len(months) == 0 || months[len(months)-1] != d.Month() {
			months = append(months, d.Month())
		}
	}
	return months
}

// Valid reports whether the week exists in its year.
func (w Week) Valid() bool {
	return w.Number >= 1 && w.Number <= TotalWeeks(w.Year)
}

// Previous returns the week before w within the same planner year.
func (w Week) Previous() (Week, bool) {
	p := Week{Year: w.Year, Number: w.Number - 1}
	return p, p.Valid()
}

// Next returns the week after w within the same planner year.
func (w Week) Next() (Week, bool) {
	n := Week{Year: w.Year, Number: w.Number + 1}
	return n, n.Valid()
}

// Destination is the name of the week page's jump target.
func (w Week) Destination() string {
	return WeekDestination(w.Number)
}

// WeekDestination returns "week_<n>".
func WeekDestination(n int) string {
	return "week_" + strconv.Itoa(n)
}

// String returns the week in "2025-W03" form.
func (w Week) String() string {
	return fmt.Sprintf("%04d-W%02d", w.Year, w.Number)
}
