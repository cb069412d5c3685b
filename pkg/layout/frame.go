// Package layout computes where things go on each page, in grid boxes. It does
// no drawing; renderers convert the cells with grid.Config.CellRect.
package layout

import (
	"github.com/klokku/planner/pkg/grid"
)

const (
	navTabHeight   = 5.0
	navTabGap      = 0.5
	monthTabHeight = 4.0
)

// Frame is the area shared by every page: the left navigation tabs, the right
// month tabs and the content between them.
type Frame struct {
	Content   grid.Cell
	NavTabs   grid.Cell
	MonthTabs grid.Cell
}

// DefaultFrame places 2-box wide tab strips at both edges of the 43x55 grid and
// a 35x53 content area between them. The content width is a multiple of 7 so
// week columns stay on box edges.
func DefaultFrame() Frame {
	return Frame{
		Content:   grid.Cell{Col: 4, Row: 1, Width: 35, Height: 53},
		NavTabs:   grid.Cell{Col: 0.5, Row: 3, Width: 2, Height: 48},
		MonthTabs: grid.Cell{Col: 40.5, Row: 3, Width: 2, Height: 48},
	}
}

// Title is the band at the top of the content used for page titles.
func (f Frame) Title() grid.Cell {
	return grid.Cell{Col: f.Content.Col, Row: f.Content.Row, Width: f.Content.Width, Height: 2.5}
}

// Body is the content below the title band.
func (f Frame) Body() grid.Cell {
	title := f.Title()
	return grid.Cell{
		Col:    f.Content.Col,
		Row:    title.Bottom() + 0.5,
		Width:  f.Content.Width,
		Height: f.Content.Bottom() - title.Bottom() - 0.5,
	}
}

// NavTabCells stacks n tabs from the top of the left strip. Tabs keep a fixed
// height until they no longer fit, then share the strip evenly.
func (f Frame) NavTabCells(n int) []grid.Cell {
	if n <= 0 {
		return nil
	}
	height := navTabHeight
	if span := float64(n)*navTabHeight + float64(n-1)*navTabGap; span > f.NavTabs.Height {
		height = (f.NavTabs.Height - float64(n-1)*navTabGap) / float64(n)
	}
	out := make([]grid.Cell, 0, n)
	for i := 0; i < n; i++ {
		row := f.NavTabs.Row + float64(i)*(height+navTabGap)
		out = append(out, grid.Cell{Col: f.NavTabs.Col, Row: row, Width: f.NavTabs.Width, Height: height})
	}
	return out
}

// MonthTabCells returns the twelve month tabs of the right strip.
func (f Frame) MonthTabCells() []grid.Cell {
	rows := grid.DivideRows(f.MonthTabs.Row, 12*monthTabHeight, 12, 0)
	return withColumn(rows, f.MonthTabs)
}

func withColumn(rows []grid.Cell, column grid.Cell) []grid.Cell {
	out := make([]grid.Cell, 0, len(rows))
	for _, r := range rows {
		out = append(out, grid.Cell{Col: column.Col, Row: r.Row, Width: column.Width, Height: r.Height})
	}
	return out
}

// LineRows returns the rows of n evenly spaced lines strictly inside cell.
func LineRows(cell grid.Cell, n int) []float64 {
	if n <= 0 {
		return nil
	}
	step := cell.Height / float64(n+1)
	rows := make([]float64, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, cell.Row+float64(i)*step)
	}
	return rows
}

// BoxRows returns a line row at every whole box below the top of cell, up to
// and excluding its bottom edge.
func BoxRows(cell grid.Cell) []float64 {
	var rows []float64
	for r := cell.Row + 1; r < cell.Bottom()-1e-9; r++ {
		rows = append(rows, r)
	}
	return rows
}
