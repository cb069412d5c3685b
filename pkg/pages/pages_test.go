package pages

import (
	"testing"
	"time"

	"github.com/klokku/planner/pkg/canvas"
	"github.com/klokku/planner/pkg/dates"
	"github.com/klokku/planner/pkg/highlights"
	"github.com/klokku/planner/pkg/layout"
	"github.com/klokku/planner/pkg/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTabs = []Tab{
	{Label: "Seasons", Dest: DestSeasonal},
	{Label: "Events", Dest: DestYearEvents},
	{Label: "Highlights", Dest: DestYearHighlights},
	{Label: "Weeks", Dest: dates.WeekDestination(1)},
	{Label: "Reference", Dest: DestReference},
	{Label: "Dots", Dest: DestDots},
}

func newTestEnv(t *testing.T, year int) Env {
	t.Helper()
	set, err := highlights.Parse([]highlights.Spec{
		{Title: "Vacation", Start: "2024-07-08", End: "2024-07-12"},
		{Title: "Birthday", Start: "2024-03-15"},
	})
	require.NoError(t, err)
	return NewEnv(year, theme.Default(), set, testTabs)
}

// newTestCanvas returns a recorder with one open page whose manifest knows every
// destination a planner of year can link to.
func newTestCanvas(t *testing.T, year int) *canvas.Recorder {
	t.Helper()
	m := canvas.NewManifest()
	names := []string{DestSeasonal, DestYearEvents, DestYearHighlights, DestReference, DestDots,
		IndexDestination(1), FutureLogDestination(1), FutureLogDestination(2), CollectionDestination("books")}
	for n := 1; n <= dates.TotalWeeks(year); n++ {
		names = append(names, dates.WeekDestination(n))
	}
	for q := 1; q <= 4; q++ {
		names = append(names, QuarterDestination(q))
	}
	for month := time.January; month <= time.December; month++ {
		names = append(names, ReviewDestination(month))
	}
	for i, name := range names {
		require.NoError(t, m.Register(name, i+1))
	}
	r := canvas.NewRecorder(m)
	r.NewPage()
	return r
}

func TestYearEventsDayLinks(t *testing.T) {
	for _, year := range []int{2023, 2024, 2025} {
		e := newTestEnv(t, year)
		r := newTestCanvas(t, year)
		YearEvents(r, e)
		require.NoError(t, r.Err())

		l := layout.YearGrid(layout.YearGridArea(e.Frame))
		march15 := e.Grid.CellRect(l.Cells[time.March-1][14])
		x, y := march15.X+march15.Width/2, march15.Y-march15.Height/2
		dest, ok := r.LinkAt(1, x, y)
		require.True(t, ok, "year %d", year)
		assert.Equal(t, dates.WeekDestination(dates.WeekNumberForDate(dates.Date(year, time.March, 15))), dest)

		feb30 := e.Grid.CellRect(l.Cells[time.February-1][29])
		_, ok = r.LinkAt(1, feb30.X+feb30.Width/2, feb30.Y-feb30.Height/2)
		assert.False(t, ok, "Feb 30 is not clickable")

		placeholders := 0
		for _, rect := range r.Page(1).Rects {
			if rect.Style.Fill != nil && *rect.Style.Fill == e.Theme.PlaceholderFill {
				placeholders++
			}
		}
		invalid := 372 - 365
		if dates.DaysInMonth(year, time.February) == 29 {
			invalid = 372 - 366
		}
		assert.Equal(t, invalid, placeholders)
	}
}

func TestYearGridMonthHeaders(t *testing.T) {
	e := newTestEnv(t, 2024)
	r := newTestCanvas(t, 2024)
	YearEvents(r, e)

	l := layout.YearGrid(layout.YearGridArea(e.Frame))
	for i, header := range l.MonthHeaders {
		month := time.Month(i + 1)
		rect := e.Grid.CellRect(header)
		dest, ok := r.LinkAt(1, rect.X+rect.Width/2, rect.Y-rect.Height/2)
		require.True(t, ok)
		assert.Equal(t, dates.WeekDestination(dates.FirstWeekOfMonth(2024, month)), dest, month.String())
	}
}

func TestYearHighlightsFill(t *testing.T) {
	e := newTestEnv(t, 2024)
	r := newTestCanvas(t, 2024)
	YearHighlights(r, e)
	require.NoError(t, r.Err())

	l := layout.YearGrid(layout.YearGridArea(e.Frame))
	want := map[[2]int]bool{{3, 15}: true, {7, 8}: true, {7, 12}: true}
	filled := map[[2]int]bool{}
	for m := 0; m < 12; m++ {
		for d := 0; d < 31; d++ {
			cell := e.Grid.CellRect(l.Cells[m][d])
			for _, rect := range r.Page(1).Rects {
				if rect.Rect == cell && rect.Style.Fill != nil && *rect.Style.Fill == e.Theme.HighlightFill {
					filled[[2]int{m + 1, d + 1}] = true
				}
			}
		}
	}
	assert.Len(t, filled, 6)
	for k := range want {
		assert.True(t, filled[k], "%v", k)
	}
	assert.Contains(t, r.Page(1).Strings(), "Birthday (Mar 15); Vacation (Jul 8 - Jul 12)")
}

func TestSeasonalMiniMonthLinks(t *testing.T) {
	e := newTestEnv(t, 2024)
	r := newTestCanvas(t, 2024)
	Seasonal(r, e)
	require.NoError(t, r.Err())

	quadrants := layout.Seasonal(2024, layout.SeasonalArea(e.Frame))
	spring := quadrants[1]
	require.Equal(t, time.March, spring.Months[0].Month)
	day := spring.Months[0].Days[14]
	rect := e.Grid.CellRect(day.Cell)
	dest, ok := r.LinkAt(1, rect.X+rect.Width/2, rect.Y-rect.Height/2)
	require.True(t, ok)
	assert.Equal(t, "week_11", dest)

	texts := r.Page(1).Strings()
	for _, s := range []string{"Winter", "Spring", "Summer", "Fall", "2024"} {
		assert.Contains(t, texts, s)
	}
}

func TestWeeklyPage(t *testing.T) {
	e := newTestEnv(t, 2024)

	tests := []struct {
		name     string
		week     int
		wantPrev bool
		wantNext bool
	}{
		{name: "first week", week: 1, wantPrev: false, wantNext: true},
		{name: "middle week", week: 11, wantPrev: true, wantNext: true},
		{name: "last week", week: e.TotalWeeks, wantPrev: true, wantNext: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestCanvas(t, 2024)
			Weekly(r, e, dates.Week{Year: 2024, Number: tt.week})
			require.NoError(t, r.Err())

			page := r.Page(1)
			dests := map[string]bool{}
			for _, l := range page.Links {
				dests[l.Dest] = true
			}
			assert.Equal(t, tt.wantPrev, dests[dates.WeekDestination(tt.week-1)] && containsText(page, "< prev"))
			assert.Equal(t, tt.wantNext, containsText(page, "next >"))

			texts := page.Strings()
			for _, label := range layout.TimeLabels {
				assert.Equal(t, 1, count(texts, label), label)
			}
			for _, label := range []string{"Cues", "Notes", "Summary"} {
				assert.Contains(t, texts, label)
			}
		})
	}
}

func TestWeeklyWeekendAndHighlights(t *testing.T) {
	e := newTestEnv(t, 2024)
	r := newTestCanvas(t, 2024)
	week := dates.Week{Year: 2024, Number: 11}
	Weekly(r, e, week)

	p := layout.Weekly(e.Frame.Content, week, e.Weekly)
	weekendFills := 0
	for _, rect := range r.Page(1).Rects {
		if rect.Style.Fill != nil && *rect.Style.Fill == e.Theme.WeekendFill {
			weekendFills++
			assert.True(t, rect.Rect == e.Grid.CellRect(p.Days[5].Cell) || rect.Rect == e.Grid.CellRect(p.Days[6].Cell))
		}
	}
	assert.Equal(t, 2, weekendFills)
	assert.Contains(t, r.Page(1).Strings(), "Birthday")
	assert.Contains(t, r.Page(1).Strings(), "Fri 15")
	assert.Contains(t, r.Page(1).Strings(), "2024-W11")
}

func TestActiveMonth(t *testing.T) {
	assert.Equal(t, time.January, ActiveMonth(2025, dates.Week{Year: 2025, Number: 1}))
	assert.Equal(t, time.March, ActiveMonth(2024, dates.Week{Year: 2024, Number: 11}))
	assert.Equal(t, time.December, ActiveMonth(2024, dates.Week{Year: 2024, Number: 53}))
}

func TestNavigationTabs(t *testing.T) {
	e := newTestEnv(t, 2024)
	r := newTestCanvas(t, 2024)
	DotGrid(r, e)
	require.NoError(t, r.Err())

	for i, cell := range e.Frame.NavTabCells(len(e.Tabs)) {
		rect := e.Grid.CellRect(cell)
		dest, ok := r.LinkAt(1, rect.X+rect.Width/2, rect.Y-rect.Height/2)
		require.True(t, ok)
		assert.Equal(t, e.Tabs[i].Dest, dest)
	}
	for i, cell := range e.Frame.MonthTabCells() {
		rect := e.Grid.CellRect(cell)
		dest, ok := r.LinkAt(1, rect.X+rect.Width/2, rect.Y-rect.Height/2)
		require.True(t, ok)
		assert.Equal(t, e.MonthDestination(time.Month(i+1)), dest)
	}
	assert.NotEmpty(t, r.Page(1).Dots)
}

func TestFrontMatter(t *testing.T) {
	e := newTestEnv(t, 2024)

	r := newTestCanvas(t, 2024)
	FutureLog(r, e, 2, 2)
	texts := r.Page(1).Strings()
	for month := time.July; month <= time.December; month++ {
		assert.Contains(t, texts, month.String())
	}
	assert.NotContains(t, texts, "June")

	r = newTestCanvas(t, 2024)
	Quarter(r, e, 2)
	require.NoError(t, r.Err())
	texts = r.Page(1).Strings()
	assert.Contains(t, texts, "Q2 2024")
	for _, s := range []string{"April", "May", "June", "Goals", "Notes"} {
		assert.Contains(t, texts, s)
	}

	r = newTestCanvas(t, 2024)
	Index(r, e, 1, 1)
	require.NoError(t, r.Err())
	assert.Contains(t, r.Page(1).Strings(), "Index")
}

func TestBackMatter(t *testing.T) {
	e := newTestEnv(t, 2024)

	r := newTestCanvas(t, 2024)
	Review(r, e, time.March)
	require.NoError(t, r.Err())
	texts := r.Page(1).Strings()
	assert.Contains(t, texts, "March Review")
	for _, s := range reviewSections {
		assert.Contains(t, texts, s)
	}

	r = newTestCanvas(t, 2024)
	Collection(r, e, "books", "Books to read")
	require.NoError(t, r.Err())
	assert.Contains(t, r.Page(1).Strings(), "Books to read")

	r = newTestCanvas(t, 2024)
	Reference(r, e)
	require.NoError(t, r.Err())
	texts = r.Page(1).Strings()
	for _, b := range BulletKey {
		assert.Contains(t, texts, b.Meaning)
	}
	linked := map[string]bool{}
	for _, l := range r.Page(1).Links {
		linked[l.Dest] = true
	}
	for _, tab := range e.Tabs {
		assert.True(t, linked[tab.Dest], tab.Dest)
	}
}

func TestLinksToUnknownDestinationFail(t *testing.T) {
	e := newTestEnv(t, 2024)
	e.Tabs = append(e.Tabs, Tab{Label: "Missing", Dest: "collection_missing"})
	r := newTestCanvas(t, 2024)
	DotGrid(r, e)
	assert.ErrorIs(t, r.Err(), canvas.ErrUnresolvedDestination)
}

func containsText(p *canvas.RecordedPage, s string) bool {
	return count(p.Strings(), s) > 0
}

func count(texts []string, s string) int {
	n := 0
	for _, t := range texts {
		if t == s {
			n++
		}
	}
	return n
}
