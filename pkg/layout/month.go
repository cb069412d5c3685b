package layout

import (
	"time"

	"github.com/klokku/planner/pkg/dates"
	"github.com/klokku/planner/pkg/grid"
)

// MiniDay is one day cell of a month calendar.
type MiniDay struct {
	Date        time.Time
	Cell        grid.Cell
	Week        int
	Destination string
}

// MiniMonth is a Monday-first month calendar: a header, a weekday label row and
// up to six week rows.
type MiniMonth struct {
	Year        int
	Month       time.Month
	Header      grid.Cell
	Weekdays    [7]grid.Cell
	Days        []MiniDay
	Aligned     bool
	Bottom      float64
	Destination string
}

// MonthCalendar lays out month inside area. Day rows are as tall as the day
// columns are wide, so the calendar only uses the top of a tall area.
func MonthCalendar(year int, month time.Month, area grid.Cell, headerHeight float64) MiniMonth {
	columns, aligned := grid.WeekColumns(area.Col, area.Width)
	rowHeight := area.Width / 7

	m := MiniMonth{
		Year:        year,
		Month:       month,
		Header:      grid.Cell{Col: area.Col, Row: area.Row, Width: area.Width, Height: headerHeight},
		Aligned:     aligned,
		Destination: dates.WeekDestination(dates.FirstWeekOfMonth(year, month)),
	}
	labelRow := m.Header.Bottom()
	for i, col := range columns {
		m.Weekdays[i] = grid.Cell{Col: col.Col, Row: labelRow, Width: col.Width, Height: rowHeight}
	}

	first := dates.Date(year, month, 1)
	offset := dates.WeekdayIndex(first)
	firstRow := labelRow + rowHeight
	days := dates.DaysInMonth(year, month)
	m.Days = make([]MiniDay, 0, days)
	for day := 1; day <= days; day++ {
		date := dates.Date(year, month, day)
		slot := offset + day - 1
		col := columns[slot%7]
		week := dates.WeekOf(date)
		m.Days = append(m.Days, MiniDay{
			Date:        date,
			Cell:        grid.Cell{Col: col.Col, Row: firstRow + float64(slot/7)*rowHeight, Width: col.Width, Height: rowHeight},
			Week:        week.Number,
			Destination: week.Destination(),
		})
	}
	weeks := (offset + days + 6) / 7
	m.Bottom = firstRow + float64(weeks)*rowHeight
	return m
}

// WeekdayLetters are the Monday-first labels of a month calendar.
var WeekdayLetters = [7]string{"M", "T", "W", "T", "F", "S", "S"}
