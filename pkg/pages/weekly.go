package pages

import (
	"fmt"
	"strings"
	"time"

	"github.com/klokku/planner/pkg/canvas"
	"github.com/klokku/planner/pkg/dates"
	"github.com/klokku/planner/pkg/grid"
	"github.com/klokku/planner/pkg/layout"
)

// Weekly draws the page of one week: a header with links to the neighbouring
// weeks, the daily strip and the Cornell notes block.
func Weekly(c canvas.Canvas, e Env, week dates.Week) {
	p := layout.Weekly(e.Frame.Content, week, e.Weekly)
	drawChrome(c, e, Chrome{Active: dates.WeekDestination(1), Month: ActiveMonth(e.Year, week)})

	drawWeekHeader(c, e, p)
	for _, day := range p.Days {
		drawDay(c, e, day)
	}
	drawCornell(c, e, p)

	fs := e.muted(7)
	c.DrawText(e.rect(p.Footer), week.String(), fs)
	fs.Align = canvas.AlignRight
	months := week.Months()
	names := make([]string, 0, len(months))
	for _, m := range months {
		names = append(names, m.String())
	}
	c.DrawText(e.rect(p.Footer), strings.Join(names, " / "), fs)
}

// ActiveMonth is the month tab highlighted on a week page: the month of the
// first day of the week that falls inside year.
func ActiveMonth(year int, week dates.Week) time.Month {
	for _, d := range week.Days() {
		if d.Year() == year {
			return d.Month()
		}
	}
	return time.January
}

func drawWeekHeader(c canvas.Canvas, e Env, p layout.WeeklyPage) {
	header := e.rect(p.Header)
	ts := e.text(18)
	ts.Bold = true
	c.DrawText(grid.Rect{X: header.X, Y: header.Y, Width: header.Width, Height: header.Height * 0.6},
		fmt.Sprintf("Week %d", p.Week.Number), ts)

	start, end := p.Week.Start(), p.Week.End()
	ss := e.muted(9)
	c.DrawText(grid.Rect{X: header.X, Y: header.Y - header.Height*0.6, Width: header.Width, Height: header.Height * 0.4},
		start.Format("Mon Jan 2, 2006")+" - "+end.Format("Mon Jan 2, 2006"), ss)

	nav := e.text(9)
	nav.Color = e.Theme.Accent
	nav.Align = canvas.AlignCenter
	navWidth := 3.0
	if prev, ok := p.Week.Previous(); ok {
		cell := grid.Cell{Col: p.Header.Right() - 2*navWidth, Row: p.Header.Row, Width: navWidth, Height: 1.5}
		r := e.rect(cell)
		c.DrawText(r, "< prev", nav)
		c.AddLink(r, prev.Destination())
	}
	if next, ok := p.Week.Next(); ok {
		cell := grid.Cell{Col: p.Header.Right() - navWidth, Row: p.Header.Row, Width: navWidth, Height: 1.5}
		r := e.rect(cell)
		c.DrawText(r, "next >", nav)
		c.AddLink(r, next.Destination())
	}
}

func drawDay(c canvas.Canvas, e Env, day layout.DayColumn) {
	r := e.rect(day.Cell)
	if day.Weekend {
		c.DrawRect(r, e.fill(e.Theme.WeekendFill))
	}
	c.DrawRect(r, e.stroke())

	hs := e.text(8)
	hs.Bold = true
	hs.Padding = 3
	if day.Date.Year() != e.Year {
		hs.Color = e.Theme.Muted
	}
	c.DrawText(e.rect(day.Header), day.Date.Format("Mon 2"), hs)

	if titles := e.Highlights.Titles(day.Date); len(titles) > 0 {
		band := grid.Cell{Col: day.Body.Col, Row: day.Body.Row, Width: day.Body.Width, Height: 0.8}
		c.DrawRect(e.rect(band), e.fill(e.Theme.HighlightFill))
		ls := e.muted(6)
		ls.Fit = true
		ls.Padding = 2
		c.DrawText(e.rect(band), strings.Join(titles, ", "), ls)
	}

	drawRuled(c, e, day.Body, day.LineRows)

	if !day.TimeLabels {
		return
	}
	ls := e.muted(5)
	ls.Padding = 2
	bands := append([]float64{day.Body.Row}, day.LineRows...)
	for i, label := range layout.TimeLabels {
		if i >= len(bands) {
			break
		}
		c.DrawText(e.rect(grid.Cell{Col: day.Body.Col, Row: bands[i], Width: day.Body.Width, Height: 0.8}), label, ls)
	}
}

func drawCornell(c canvas.Canvas, e Env, p layout.WeeklyPage) {
	drawSection(c, e, p.Cues, "Cues")
	drawSection(c, e, p.Notes, "Notes")
	drawRuled(c, e, p.Notes, layout.BoxRows(p.Notes))
	drawSection(c, e, p.Summary, "Summary")
	drawRuled(c, e, p.Summary, layout.BoxRows(p.Summary))
}
