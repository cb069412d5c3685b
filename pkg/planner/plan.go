package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klokku/planner/pkg/canvas"
	"github.com/klokku/planner/pkg/dates"
	"github.com/klokku/planner/pkg/pages"
)

// Sections group pages in the outline and in progress events.
const (
	SectionSeasonal    = "seasonal"
	SectionYear        = "year"
	SectionIndex       = "index"
	SectionFutureLog   = "future_log"
	SectionQuarter     = "quarter"
	SectionWeeks       = "weeks"
	SectionReview      = "review"
	SectionCollections = "collections"
	SectionReference   = "reference"
	SectionDots        = "dots"
)

const maxFutureLogPages = 12 / pages.FutureLogMonths

type Collection struct {
	Id    string
	Title string
}

// Options selects the optional page groups of a planner.
type Options struct {
	IndexPages     int
	FutureLogPages int
	Quarterly      bool
	Reviews        bool
	Collections    []Collection
}

func DefaultOptions() Options {
	return Options{
		IndexPages:     2,
		FutureLogPages: 2,
		Quarterly:      true,
		Reviews:        true,
	}
}

type Bookmark struct {
	Title string
	Level int
}

// Page is one entry of the page plan. Its destination is placed on page Number.
type Page struct {
	Number    int
	Dest      string
	Section   string
	Bookmarks []Bookmark
	draw      func(c canvas.Canvas, e pages.Env)
}

var collectionNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("planner/collections"))

// CollectionId derives a stable id from a collection title, for collections
// configured without one.
func CollectionId(title string) string {
	return uuid.NewSHA1(collectionNamespace, []byte(strings.ToLower(strings.TrimSpace(title)))).String()[:8]
}

// Plan lists every page of the planner for year in output order. Every page
// carries a destination so any page can be linked to before it is drawn.
func Plan(year int, opts Options) []Page {
	var plan []Page
	add := func(dest, section string, draw func(canvas.Canvas, pages.Env), bookmarks ...Bookmark) {
		plan = append(plan, Page{
			Number:    len(plan) + 1,
			Dest:      dest,
			Section:   section,
			Bookmarks: bookmarks,
			draw:      draw,
		})
	}

	add(pages.DestSeasonal, SectionSeasonal, pages.Seasonal, Bookmark{Title: "Seasons"})
	add(pages.DestYearEvents, SectionYear, pages.YearEvents, Bookmark{Title: "Events"})
	add(pages.DestYearHighlights, SectionYear, pages.YearHighlights, Bookmark{Title: "Highlights"})

	for n := 1; n <= opts.IndexPages; n++ {
		total := opts.IndexPages
		add(pages.IndexDestination(n), SectionIndex, func(c canvas.Canvas, e pages.Env) {
			pages.Index(c, e, n, total)
		}, sectionStart(n, "Index")...)
	}

	futureLog := min(opts.FutureLogPages, maxFutureLogPages)
	for n := 1; n <= futureLog; n++ {
		add(pages.FutureLogDestination(n), SectionFutureLog, func(c canvas.Canvas, e pages.Env) {
			pages.FutureLog(c, e, n, futureLog)
		}, sectionStart(n, "Future Log")...)
	}

	if opts.Quarterly {
		for q := 1; q <= 4; q++ {
			bookmarks := append(sectionStart(q, "Quarters"), Bookmark{Title: fmt.Sprintf("Q%d", q), Level: 1})
			add(pages.QuarterDestination(q), SectionQuarter, func(c canvas.Canvas, e pages.Env) {
				pages.Quarter(c, e, q)
			}, bookmarks...)
		}
	}

	monthStarts := make(map[int]time.Month, 12)
	for m := time.December; m >= time.January; m-- {
		monthStarts[dates.FirstWeekOfMonth(year, m)] = m
	}
	for _, week := range dates.Weeks(year) {
		bookmarks := sectionStart(week.Number, "Weeks")
		if m, ok := monthStarts[week.Number]; ok {
			bookmarks = append(bookmarks, Bookmark{Title: m.String(), Level: 1})
		}
		bookmarks = append(bookmarks, Bookmark{Title: fmt.Sprintf("Week %d", week.Number), Level: 2})
		add(week.Destination(), SectionWeeks, func(c canvas.Canvas, e pages.Env) {
			pages.Weekly(c, e, week)
		}, bookmarks...)
	}

	if opts.Reviews {
		for m := time.January; m <= time.December; m++ {
			bookmarks := append(sectionStart(int(m), "Reviews"), Bookmark{Title: m.String(), Level: 1})
			add(pages.ReviewDestination(m), SectionReview, func(c canvas.Canvas, e pages.Env) {
				pages.Review(c, e, m)
			}, bookmarks...)
		}
	}

	for i, col := range opts.Collections {
		bookmarks := append(sectionStart(i+1, "Collections"), Bookmark{Title: col.Title, Level: 1})
		add(pages.CollectionDestination(col.Id), SectionCollections, func(c canvas.Canvas, e pages.Env) {
			pages.Collection(c, e, col.Id, col.Title)
		}, bookmarks...)
	}

	add(pages.DestReference, SectionReference, pages.Reference, Bookmark{Title: "Reference"})
	add(pages.DestDots, SectionDots, pages.DotGrid, Bookmark{Title: "Dot Grid"})
	return plan
}

// sectionStart returns the top level bookmark of a section on its first page.
func sectionStart(n int, title string) []Bookmark {
	if n != 1 {
		return nil
	}
	return []Bookmark{{Title: title}}
}

// Tabs returns the navigation tabs for the enabled page groups.
func Tabs(opts Options) []pages.Tab {
	tabs := []pages.Tab{
		{Label: "Seasons", Dest: pages.DestSeasonal},
		{Label: "Events", Dest: pages.DestYearEvents},
		{Label: "Highlights", Dest: pages.DestYearHighlights},
	}
	if opts.IndexPages > 0 {
		tabs = append(tabs, pages.Tab{Label: "Index", Dest: pages.IndexDestination(1)})
	}
	if opts.FutureLogPages > 0 {
		tabs = append(tabs, pages.Tab{Label: "Future", Dest: pages.FutureLogDestination(1)})
	}
	if opts.Quarterly {
		tabs = append(tabs, pages.Tab{Label: "Quarters", Dest: pages.QuarterDestination(1)})
	}
	tabs = append(tabs, pages.Tab{Label: "Weeks", Dest: dates.WeekDestination(1)})
	if opts.Reviews {
		tabs = append(tabs, pages.Tab{Label: "Reviews", Dest: pages.ReviewDestination(time.January)})
	}
	if len(opts.Collections) > 0 {
		tabs = append(tabs, pages.Tab{Label: "Lists", Dest: pages.CollectionDestination(opts.Collections[0].Id)})
	}
	return append(tabs,
		pages.Tab{Label: "Ref", Dest: pages.DestReference},
		pages.Tab{Label: "Dots", Dest: pages.DestDots},
	)
}

// NewManifest assigns every planned destination to its page.
func NewManifest(plan []Page) (*canvas.Manifest, error) {
	m := canvas.NewManifest()
	for _, p := range plan {
		if err := m.Register(p.Dest, p.Number); err != nil {
			return nil, fmt.Errorf("page %d: %w", p.Number, err)
		}
	}
	return m, nil
}
