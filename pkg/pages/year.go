package pages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/klokku/planner/pkg/canvas"
	"github.com/klokku/planner/pkg/dates"
	"github.com/klokku/planner/pkg/grid"
	"github.com/klokku/planner/pkg/layout"
)

// Seasonal draws the four season quadrants with their mini month calendars.
func Seasonal(c canvas.Canvas, e Env) {
	drawChrome(c, e, Chrome{Active: DestSeasonal})
	drawTitle(c, e, strconv.Itoa(e.Year), "Seasons")

	ts := e.text(11)
	ts.Bold = true
	ts.Color = e.Theme.Accent
	ts.Padding = 2
	for _, q := range layout.Seasonal(e.Year, layout.SeasonalArea(e.Frame)) {
		c.DrawRect(e.rect(q.Frame), e.stroke())
		c.DrawText(e.rect(q.Title), q.Season.String(), ts)
		for _, m := range q.Months {
			drawMiniMonth(c, e, m)
		}
		drawRuled(c, e, q.Notes, layout.BoxRows(q.Notes))
	}
}

// YearEvents draws the year-at-a-glance grid with a blank cell per day for
// noting events.
func YearEvents(c canvas.Canvas, e Env) {
	drawChrome(c, e, Chrome{Active: DestYearEvents})
	drawTitle(c, e, "Events", strconv.Itoa(e.Year))
	drawYearGrid(c, e, func(cell layout.DayCell) *canvas.Color {
		if dates.IsWeekend(cell.Date) {
			fill := e.Theme.WeekendFill
			return &fill
		}
		return nil
	})
}

// YearHighlights draws the year-at-a-glance grid with the configured highlight
// ranges filled in and listed under the grid.
func YearHighlights(c canvas.Canvas, e Env) {
	drawChrome(c, e, Chrome{Active: DestYearHighlights})
	drawTitle(c, e, "Highlights", strconv.Itoa(e.Year))
	bottom := drawYearGrid(c, e, func(cell layout.DayCell) *canvas.Color {
		if len(e.Highlights.On(cell.Date)) > 0 {
			fill := e.Theme.HighlightFill
			return &fill
		}
		return nil
	})

	if len(e.Highlights) == 0 {
		return
	}
	legend := make([]string, 0, len(e.Highlights))
	for _, r := range e.Highlights {
		span := r.Start.Format("Jan 2")
		if r.Days() > 1 {
			span += " - " + r.End.Format("Jan 2")
		}
		legend = append(legend, fmt.Sprintf("%s (%s)", r.Title, span))
	}
	content := e.Frame.Content
	area := grid.Cell{Col: content.Col, Row: bottom + 0.5, Width: content.Width, Height: content.Bottom() - bottom - 0.5}
	style := e.muted(7)
	style.Fit = true
	c.DrawText(e.rect(area), strings.Join(legend, "; "), style)
}

// drawYearGrid draws the 12x31 grid and returns its bottom row. fill picks the
// background of a valid day; invalid positions get the placeholder fill and no
// link.
func drawYearGrid(c canvas.Canvas, e Env, fill func(layout.DayCell) *canvas.Color) float64 {
	l := layout.YearGrid(layout.YearGridArea(e.Frame))
	cells := layout.YearCells(e.Year)

	hs := e.text(8)
	hs.Bold = true
	hs.Align = canvas.AlignCenter
	for i, header := range l.MonthHeaders {
		month := cells[i][0].Month
		r := e.rect(header)
		c.DrawText(r, month.String()[:3], hs)
		c.AddLink(r, e.MonthDestination(month))
	}

	ls := e.muted(6)
	ls.Align = canvas.AlignCenter
	for day, label := range l.DayLabels {
		c.DrawText(e.rect(label), strconv.Itoa(day+1), ls)
	}

	for m := range cells {
		for d, cell := range cells[m] {
			r := e.rect(l.Cells[m][d])
			if !cell.Valid {
				c.DrawRect(r, e.fill(e.Theme.PlaceholderFill))
				continue
			}
			if f := fill(cell); f != nil {
				c.DrawRect(r, canvas.RectStyle{Fill: f})
			}
			c.DrawRect(r, e.stroke())
			c.AddLink(r, cell.Destination)
		}
	}
	return l.Bottom
}
