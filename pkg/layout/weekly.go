package layout

import (
	"time"

	"github.com/klokku/planner/pkg/dates"
	"github.com/klokku/planner/pkg/grid"
)

const (
	DailyShare   = 0.175
	CornellShare = 0.825
	CuesShare    = 0.25
	NotesShare   = 0.75
	SummaryShare = 0.20
	MainShare    = 0.80
)

type WeeklyOptions struct {
	HeaderHeight float64
	FooterHeight float64
	// SectionGap separates the main notes area from the summary strip.
	SectionGap float64
	// DayHeaderHeight is the band holding the day name and date.
	DayHeaderHeight float64
	Lines           int
}

func DefaultWeeklyOptions() WeeklyOptions {
	return WeeklyOptions{
		HeaderHeight:    3,
		FooterHeight:    1,
		SectionGap:      0.5,
		DayHeaderHeight: 1.5,
		Lines:           3,
	}
}

// DayColumn is one day of the daily strip.
type DayColumn struct {
	Date    time.Time
	Cell    grid.Cell
	Header  grid.Cell
	Body    grid.Cell
	Weekend bool
	// TimeLabels marks the Monday column, the only one with AM/PM/EVE labels.
	TimeLabels bool
	LineRows   []float64
}

// WeeklyPage is the split of a week page into the daily strip and the Cornell
// notes block.
type WeeklyPage struct {
	Week    dates.Week
	Header  grid.Cell
	Footer  grid.Cell
	Daily   grid.Cell
	Days    [7]DayColumn
	Aligned bool
	Cornell grid.Cell
	Cues    grid.Cell
	Notes   grid.Cell
	Summary grid.Cell
}

// Weekly partitions content for week. The daily strip takes 17.5% of the usable
// height and the Cornell block the remaining 82.5%; cues and notes split the
// Cornell width 25/75 and the summary strip takes the bottom 20% of it.
func Weekly(content grid.Cell, week dates.Week, opts WeeklyOptions) WeeklyPage {
	usable := content.Height - opts.HeaderHeight - opts.FooterHeight
	dailyHeight := usable * DailyShare
	cornellHeight := usable * CornellShare

	p := WeeklyPage{Week: week}
	p.Header = grid.Cell{Col: content.Col, Row: content.Row, Width: content.Width, Height: opts.HeaderHeight}
	p.Daily = grid.Cell{Col: content.Col, Row: p.Header.Bottom(), Width: content.Width, Height: dailyHeight}
	p.Cornell = grid.Cell{Col: content.Col, Row: p.Daily.Bottom(), Width: content.Width, Height: cornellHeight}
	p.Footer = grid.Cell{Col: content.Col, Row: content.Bottom() - opts.FooterHeight, Width: content.Width, Height: opts.FooterHeight}

	columns, aligned := grid.WeekColumns(p.Daily.Col, p.Daily.Width)
	p.Aligned = aligned
	days := week.Days()
	for i, col := range columns {
		cell := grid.Cell{Col: col.Col, Row: p.Daily.Row, Width: col.Width, Height: p.Daily.Height}
		header := grid.Cell{Col: cell.Col, Row: cell.Row, Width: cell.Width, Height: opts.DayHeaderHeight}
		body := grid.Cell{Col: cell.Col, Row: header.Bottom(), Width: cell.Width, Height: cell.Height - opts.DayHeaderHeight}
		p.Days[i] = DayColumn{
			Date:       days[i],
			Cell:       cell,
			Header:     header,
			Body:       body,
			Weekend:    dates.IsWeekend(days[i]),
			TimeLabels: days[i].Weekday() == time.Monday,
			LineRows:   LineRows(body, opts.Lines),
		}
	}

	mainHeight := p.Cornell.Height*MainShare - opts.SectionGap
	cuesWidth := p.Cornell.Width * CuesShare
	p.Cues = grid.Cell{Col: p.Cornell.Col, Row: p.Cornell.Row, Width: cuesWidth, Height: mainHeight}
	p.Notes = grid.Cell{Col: p.Cornell.Col + cuesWidth, Row: p.Cornell.Row, Width: p.Cornell.Width * NotesShare, Height: mainHeight}
	p.Summary = grid.Cell{
		Col:    p.Cornell.Col,
		Row:    p.Cornell.Row + p.Cornell.Height*MainShare,
		Width:  p.Cornell.Width,
		Height: p.Cornell.Height * SummaryShare,
	}
	return p
}

// TimeLabels are the labels of the Monday column, one per ruled band.
var TimeLabels = []string{"AM", "PM", "EVE"}
