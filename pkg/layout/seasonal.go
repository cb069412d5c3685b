package layout

import (
	"github.com/klokku/planner/pkg/dates"
	"github.com/klokku/planner/pkg/grid"
)

const (
	seasonTitleHeight = 2.0
	seasonMonthGap    = 1.0
	miniHeaderHeight  = 1.0
)

type SeasonQuadrant struct {
	Season dates.Season
	Frame  grid.Cell
	Title  grid.Cell
	Months []MiniMonth
	// Notes is the free area under the month calendars.
	Notes grid.Cell
}

// Seasonal splits area into a 2x2 grid of seasons, winter top-left, each with
// the three month calendars of that season side by side.
func Seasonal(year int, area grid.Cell) [4]SeasonQuadrant {
	var out [4]SeasonQuadrant
	quadrants := grid.DivideGrid(area.Col, area.Row, area.Width, area.Height, 2, 2, 1, 1)

	for i, season := range dates.Seasons {
		frame := quadrants[i/2][i%2]
		q := SeasonQuadrant{
			Season: season,
			Frame:  frame,
			Title:  grid.Cell{Col: frame.Col, Row: frame.Row, Width: frame.Width, Height: seasonTitleHeight},
		}

		months := dates.MonthsOfSeason(season)
		columns := grid.DivideColumns(frame.Col, frame.Width, len(months), seasonMonthGap)
		bottom := q.Title.Bottom()
		for j, month := range months {
			col := columns[j]
			mini := MonthCalendar(year, month, grid.Cell{
				Col:    col.Col,
				Row:    q.Title.Bottom(),
				Width:  col.Width,
				Height: frame.Bottom() - q.Title.Bottom(),
			}, miniHeaderHeight)
			q.Months = append(q.Months, mini)
			if mini.Bottom > bottom {
				bottom = mini.Bottom
			}
		}
		q.Notes = grid.Cell{Col: frame.Col, Row: bottom + 0.5, Width: frame.Width, Height: frame.Bottom() - bottom - 0.5}
		out[i] = q
	}
	return out
}

// SeasonalArea is the part of the frame body the seasonal page divides into
// quadrants. Its height leaves whole-box quadrants after the row gap.
func SeasonalArea(f Frame) grid.Cell {
	body := f.Body()
	return grid.Cell{Col: body.Col, Row: body.Row, Width: body.Width, Height: 49}
}
