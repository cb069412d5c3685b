package pages

import (
	"fmt"
	"strconv"
	"time"

	"github.com/klokku/planner/pkg/canvas"
	"github.com/klokku/planner/pkg/dates"
	"github.com/klokku/planner/pkg/grid"
	"github.com/klokku/planner/pkg/layout"
)

const (
	// FutureLogMonths is the number of months on one future log page.
	FutureLogMonths = 6
	indexPageWidth  = 3.0
)

func IndexDestination(n int) string {
	return fmt.Sprintf("index_%d", n)
}

func FutureLogDestination(n int) string {
	return fmt.Sprintf("future_log_%d", n)
}

func QuarterDestination(q int) string {
	return fmt.Sprintf("quarter_%d", q)
}

// Index draws an index page of n: two columns of topic lines, each with a page
// number box on its right.
func Index(c canvas.Canvas, e Env, n, total int) {
	drawChrome(c, e, Chrome{Active: IndexDestination(1)})
	drawTitle(c, e, "Index", pageOf(n, total))

	for _, col := range grid.DivideColumns(e.Frame.Body().Col, e.Frame.Body().Width, 2, 1) {
		area := grid.Cell{Col: col.Col, Row: e.Frame.Body().Row, Width: col.Width, Height: e.Frame.Body().Height}
		drawSection(c, e, area, "")
		pages := grid.Cell{Col: area.Right() - indexPageWidth, Row: area.Row, Width: indexPageWidth, Height: area.Height}
		x := e.Grid.X(pages.Col)
		c.DrawLine(x, e.Grid.Y(pages.Row), x, e.Grid.Y(pages.Bottom()), canvas.LineStyle{Color: e.Theme.Lines, Width: 0.4})
		drawRuled(c, e, area, layout.BoxRows(area))
	}
}

// FutureLog draws page n of the future log: six months in a 2x3 grid.
func FutureLog(c canvas.Canvas, e Env, n, total int) {
	first := time.Month((n-1)*FutureLogMonths + 1)
	last := first + FutureLogMonths - 1
	if last > time.December {
		last = time.December
	}
	drawChrome(c, e, Chrome{Active: FutureLogDestination(1)})
	drawTitle(c, e, "Future Log", fmt.Sprintf("%s - %s %d", first.String()[:3], last.String()[:3], e.Year))

	body := e.Frame.Body()
	cells := grid.DivideGrid(body.Col, body.Row, body.Width, body.Height, 2, 3, 1, 1)
	hs := e.text(10)
	hs.Bold = true
	hs.Color = e.Theme.Accent
	hs.Padding = 4
	for i := 0; i < FutureLogMonths; i++ {
		month := first + time.Month(i)
		if month > time.December {
			break
		}
		cell := cells[i/2][i%2]
		c.DrawRect(e.rect(cell), e.stroke())
		header := grid.Cell{Col: cell.Col, Row: cell.Row, Width: cell.Width, Height: 1.5}
		r := e.rect(header)
		c.DrawText(r, month.String(), hs)
		c.AddLink(r, e.MonthDestination(month))
		lines := grid.Cell{Col: cell.Col, Row: header.Bottom(), Width: cell.Width, Height: cell.Height - header.Height}
		drawRuled(c, e, lines, layout.BoxRows(lines))
	}
}

// Quarter draws the planning page of quarter q: its three months as calendars,
// then goals and notes areas.
func Quarter(c canvas.Canvas, e Env, q int) {
	months := dates.MonthsOfQuarter(q)
	drawChrome(c, e, Chrome{Active: QuarterDestination(1), Month: months[0]})
	drawTitle(c, e, fmt.Sprintf("Q%d %d", q, e.Year), months[0].String()+" - "+months[len(months)-1].String())

	body := e.Frame.Body()
	bottom := body.Row
	for i, col := range grid.DivideColumns(body.Col, body.Width, len(months), 1) {
		m := layout.MonthCalendar(e.Year, months[i], grid.Cell{Col: col.Col, Row: body.Row, Width: col.Width, Height: body.Height}, 1.5)
		drawMiniMonth(c, e, m)
		if m.Bottom > bottom {
			bottom = m.Bottom
		}
	}

	rest := grid.Cell{Col: body.Col, Row: bottom + 1, Width: body.Width, Height: body.Bottom() - bottom - 1}
	for i, col := range grid.DivideColumns(rest.Col, rest.Width, 2, 1) {
		area := grid.Cell{Col: col.Col, Row: rest.Row, Width: col.Width, Height: rest.Height}
		label := "Goals"
		if i == 1 {
			label = "Notes"
		}
		drawSection(c, e, area, label)
		lines := grid.Cell{Col: area.Col, Row: area.Row + 1, Width: area.Width, Height: area.Height - 1}
		drawRuled(c, e, lines, layout.BoxRows(lines))
	}
}

func pageOf(n, total int) string {
	if total <= 1 {
		return ""
	}
	return strconv.Itoa(n) + " / " + strconv.Itoa(total)
}
