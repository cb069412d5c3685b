// Package pages draws the individual planner pages onto a canvas.Canvas. Each
// renderer draws onto the current page; creating the page, placing its
// destination and adding bookmarks is left to the caller.
package pages

import (
	"time"

	"github.com/klokku/planner/pkg/canvas"
	"github.com/klokku/planner/pkg/dates"
	"github.com/klokku/planner/pkg/grid"
	"github.com/klokku/planner/pkg/highlights"
	"github.com/klokku/planner/pkg/layout"
	"github.com/klokku/planner/pkg/theme"
)

// Destination names shared by every planner.
const (
	DestSeasonal       = "seasonal"
	DestYearEvents     = "year_events"
	DestYearHighlights = "year_highlights"
	DestReference      = "reference"
	DestDots           = "dots"
)

// Tab is one entry of the left navigation strip.
type Tab struct {
	Label string
	Dest  string
}

// Env is what every renderer needs to know about the document being drawn.
type Env struct {
	Grid       grid.Config
	Frame      layout.Frame
	Theme      theme.Theme
	Year       int
	TotalWeeks int
	Highlights highlights.Set
	Tabs       []Tab
	Weekly     layout.WeeklyOptions
}

func NewEnv(year int, th theme.Theme, hl highlights.Set, tabs []Tab) Env {
	return Env{
		Grid:       grid.DefaultConfig(),
		Frame:      layout.DefaultFrame(),
		Theme:      th,
		Year:       year,
		TotalWeeks: dates.TotalWeeks(year),
		Highlights: hl.InYear(year),
		Tabs:       tabs,
		Weekly:     layout.DefaultWeeklyOptions(),
	}
}

func (e Env) rect(c grid.Cell) grid.Rect {
	return e.Grid.CellRect(c)
}

func (e Env) text(size float64) canvas.TextStyle {
	return canvas.TextStyle{Size: size, Color: e.Theme.Text}
}

func (e Env) muted(size float64) canvas.TextStyle {
	return canvas.TextStyle{Size: size, Color: e.Theme.Muted}
}

func (e Env) stroke() canvas.RectStyle {
	c := e.Theme.Lines
	return canvas.RectStyle{Stroke: &c, LineWidth: 0.5}
}

func (e Env) fill(c canvas.Color) canvas.RectStyle {
	return canvas.RectStyle{Fill: &c}
}

// MonthDestination is the week page a month tab or header jumps to.
func (e Env) MonthDestination(month time.Month) string {
	return dates.WeekDestination(dates.FirstWeekOfMonth(e.Year, month))
}
