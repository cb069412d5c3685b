package pages

import (
	"strconv"
	"time"

	"github.com/klokku/planner/pkg/canvas"
	"github.com/klokku/planner/pkg/dates"
	"github.com/klokku/planner/pkg/grid"
	"github.com/klokku/planner/pkg/layout"
)

const dotRadius = 0.6

// Chrome is what surrounds the page content: the active navigation tab and the
// month whose tab is highlighted. Zero values highlight nothing.
type Chrome struct {
	Active string
	Month  time.Month
}

// drawChrome draws the navigation and month tabs with their links.
func drawChrome(c canvas.Canvas, e Env, chrome Chrome) {
	drawNavTabs(c, e, chrome.Active)
	drawMonthTabs(c, e, chrome.Month)
}

func drawNavTabs(c canvas.Canvas, e Env, active string) {
	cells := e.Frame.NavTabCells(len(e.Tabs))
	for i, tab := range e.Tabs {
		r := e.rect(cells[i])
		fill, ink := e.Theme.TabFill, e.Theme.TabText
		if tab.Dest == active {
			fill, ink = e.Theme.Accent, e.Theme.TabFill
		}
		c.DrawRect(r, e.fill(fill))
		c.DrawText(r, tab.Label, canvas.TextStyle{Size: 8, Bold: true, Color: ink, Rotation: 90, Fit: true, Padding: 2})
		c.AddLink(r, tab.Dest)
	}
}

func drawMonthTabs(c canvas.Canvas, e Env, active time.Month) {
	for i, cell := range e.Frame.MonthTabCells() {
		month := time.Month(i + 1)
		r := e.rect(grid.Margins(cell, grid.Insets{Top: grid.Side(0.1), Bottom: grid.Side(0.1)}))
		fill, ink := e.Theme.TabFill, e.Theme.TabText
		if month == active {
			fill, ink = e.Theme.Accent, e.Theme.TabFill
		}
		c.DrawRect(r, e.fill(fill))
		c.DrawText(r, month.String()[:3], canvas.TextStyle{Size: 8, Bold: true, Color: ink, Rotation: -90, Fit: true, Padding: 2})
		c.AddLink(r, e.MonthDestination(month))
	}
}

// drawTitle writes the page title on the left of the title band and an optional
// subtitle on the right, and rules the band off from the body.
func drawTitle(c canvas.Canvas, e Env, title, subtitle string) grid.Rect {
	band := e.Frame.Title()
	r := e.rect(band)
	style := e.text(18)
	style.Bold = true
	c.DrawText(r, title, style)
	if subtitle != "" {
		sub := e.muted(10)
		sub.Align = canvas.AlignRight
		c.DrawText(r, subtitle, sub)
	}
	c.DrawLine(r.X, r.Bottom(), r.Right(), r.Bottom(), canvas.LineStyle{Color: e.Theme.Accent, Width: 1})
	return r
}

// drawDots puts a dot on every whole box intersection inside cell.
func drawDots(c canvas.Canvas, e Env, cell grid.Cell) {
	for row := cell.Row; row <= cell.Bottom()+1e-9; row++ {
		for col := cell.Col; col <= cell.Right()+1e-9; col++ {
			c.DrawDot(e.Grid.X(col), e.Grid.Y(row), dotRadius, e.Theme.Dots)
		}
	}
}

// drawRuled draws a horizontal line across cell at each row.
func drawRuled(c canvas.Canvas, e Env, cell grid.Cell, rows []float64) {
	x1, x2 := e.Grid.X(cell.Col), e.Grid.X(cell.Right())
	for _, row := range rows {
		y := e.Grid.Y(row)
		c.DrawLine(x1, y, x2, y, canvas.LineStyle{Color: e.Theme.Lines, Width: 0.4})
	}
}

// drawSection outlines cell and writes a small label in its top left corner.
func drawSection(c canvas.Canvas, e Env, cell grid.Cell, label string) {
	c.DrawRect(e.rect(cell), e.stroke())
	if label == "" {
		return
	}
	labelStyle := e.muted(8)
	labelStyle.Bold = true
	labelStyle.Padding = 4
	c.DrawText(e.rect(grid.Cell{Col: cell.Col, Row: cell.Row, Width: cell.Width, Height: 1}), label, labelStyle)
}

// drawMiniMonth draws a small calendar whose header and days link to week pages.
func drawMiniMonth(c canvas.Canvas, e Env, m layout.MiniMonth) {
	header := e.rect(m.Header)
	hs := e.text(8)
	hs.Bold = true
	hs.Align = canvas.AlignCenter
	hs.Fit = true
	c.DrawText(header, m.Month.String(), hs)
	c.AddLink(header, m.Destination)

	ws := e.muted(6)
	ws.Align = canvas.AlignCenter
	for i, cell := range m.Weekdays {
		c.DrawText(e.rect(cell), layout.WeekdayLetters[i], ws)
	}
	ds := e.text(7)
	ds.Align = canvas.AlignCenter
	ds.Fit = true
	for _, d := range m.Days {
		r := e.rect(d.Cell)
		if dates.IsWeekend(d.Date) {
			c.DrawRect(r, e.fill(e.Theme.WeekendFill))
		}
		c.DrawText(r, strconv.Itoa(d.Date.Day()), ds)
		c.AddLink(r, d.Destination)
	}
}
