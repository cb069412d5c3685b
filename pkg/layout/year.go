package layout

import (
	"time"

	"github.com/klokku/planner/pkg/dates"
	"github.com/klokku/planner/pkg/grid"
)

const (
	yearLabelWidth   = 1.0
	yearHeaderHeight = 1.5
	yearRowHeight    = 1.5
)

// DayCell is one (month, day) position of the year-at-a-glance grid. Invalid
// positions such as Feb 30 carry no date and no destination.
type DayCell struct {
	Month       time.Month
	Day         int
	Valid       bool
	Date        time.Time
	Week        int
	Destination string
}

// YearCells returns the 12x31 grid of day positions for year, indexed
// [month-1][day-1]. Day validity is checked before any date is built.
func YearCells(year int) [12][31]DayCell {
	var cells [12][31]DayCell
	for m := time.January; m <= time.December; m++ {
		for day := 1; day <= 31; day++ {
			c := DayCell{Month: m, Day: day}
			if dates.IsValidDay(year, m, day) {
				c.Valid = true
				c.Date = dates.Date(year, m, day)
				week := dates.WeekOf(c.Date)
				c.Week = week.Number
				c.Destination = week.Destination()
			}
			cells[m-1][day-1] = c
		}
	}
	return cells
}

// YearGridLayout places 12 month columns and 31 day rows.
type YearGridLayout struct {
	DayLabels    [31]grid.Cell
	MonthHeaders [12]grid.Cell
	Cells        [12][31]grid.Cell
	Bottom       float64
}

// YearGrid lays the grid out in area: a one box label column followed by
// twelve month columns of whole boxes each.
func YearGrid(area grid.Cell) YearGridLayout {
	var l YearGridLayout

	months := grid.DivideColumns(area.Col+yearLabelWidth, area.Width-yearLabelWidth, 12, 0)
	for i, col := range months {
		l.MonthHeaders[i] = grid.Cell{Col: col.Col, Row: area.Row, Width: col.Width, Height: yearHeaderHeight}
	}

	firstRow := area.Row + yearHeaderHeight
	for day := 0; day < 31; day++ {
		row := firstRow + float64(day)*yearRowHeight
		l.DayLabels[day] = grid.Cell{Col: area.Col, Row: row, Width: yearLabelWidth, Height: yearRowHeight}
		for m, col := range months {
			l.Cells[m][day] = grid.Cell{Col: col.Col, Row: row, Width: col.Width, Height: yearRowHeight}
		}
	}
	l.Bottom = firstRow + 31*yearRowHeight
	return l
}

// YearGridArea is the area a year-at-a-glance page uses for its grid: it starts
// one column left of the content so the month columns divide evenly.
func YearGridArea(f Frame) grid.Cell {
	body := f.Body()
	return grid.Cell{Col: body.Col - 1, Row: body.Row, Width: body.Width + 2, Height: yearHeaderHeight + 31*yearRowHeight}
}
