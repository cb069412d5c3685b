// Package grid converts between the box grid every page layout is written in and
// the point coordinates of the drawing surface.
//
// The drawing surface has its origin in the bottom-left corner with y growing
// upwards, while grid rows grow downwards from the top edge of the page. A Rect
// returned by this package is anchored by its TOP-left corner: Y is the top edge
// and the bottom edge is Y - Height. Every layout in the planner relies on this
// convention, so nothing outside this package should touch raw page coordinates.
package grid

import "math"

const (
	DefaultCols       = 43
	DefaultRows       = 55
	DefaultBoxSize    = 72.0 / 25.4 * 5 // 5mm in points
	DefaultPageWidth  = 612.0
	DefaultPageHeight = 792.0
)

// Config describes the grid overlaid on a page. It is a plain value and is
// passed to every layout and renderer explicitly.
type Config struct {
	Cols       int
	Rows       int
	BoxSize    float64
	PageWidth  float64
	PageHeight float64
}

// DefaultConfig returns the 43x55 grid of 5mm boxes on a US Letter page.
func DefaultConfig() Config {
	return Config{
		Cols:       DefaultCols,
		Rows:       DefaultRows,
		BoxSize:    DefaultBoxSize,
		PageWidth:  DefaultPageWidth,
		PageHeight: DefaultPageHeight,
	}
}

// Rect is a rectangle in page points. Y is the top edge.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Bottom returns the y coordinate of the lower edge.
func (r Rect) Bottom() float64 {
	return r.Y - r.Height
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y <= r.Y && y >= r.Bottom()
}

// Cell is a rectangle expressed in boxes. Fractional values are allowed.
type Cell struct {
	Col    float64
	Row    float64
	Width  float64
	Height float64
}

// Right returns the column just past the cell.
func (c Cell) Right() float64 {
	return c.Col + c.Width
}

// Bottom returns the row just below the cell.
func (c Cell) Bottom() float64 {
	return c.Row + c.Height
}

func (g Config) X(col float64) float64 {
	return col * g.BoxSize
}

// Y maps a row to the page coordinate of its top edge. Row 0 is the top of the page.
func (g Config) Y(row float64) float64 {
	return g.PageHeight - row*g.BoxSize
}

func (g Config) Width(boxes float64) float64 {
	return boxes * g.BoxSize
}

func (g Config) Height(boxes float64) float64 {
	return boxes * g.BoxSize
}

// Rect converts a box rectangle to points. The resulting Y is the top edge.
func (g Config) Rect(col, row, width, height float64) Rect {
	return Rect{
		X:      g.X(col),
		Y:      g.Y(row),
		Width:  g.Width(width),
		Height: g.Height(height),
	}
}

// CellRect is Rect for a Cell.
func (g Config) CellRect(c Cell) Rect {
	return g.Rect(c.Col, c.Row, c.Width, c.Height)
}

// Full returns the whole grid as a single cell.
func (g Config) Full() Cell {
	return Cell{Col: 0, Row: 0, Width: float64(g.Cols), Height: float64(g.Rows)}
}

// DivideColumns splits a horizontal span into count cells separated by gap boxes.
// When the available width does not divide into whole boxes, every cell gets the
// floor and the last cell absorbs the remainder. Only Col and Width are set.
func DivideColumns(col, width float64, count int, gap float64) []Cell {
	sizes := divide(width, count, gap)
	cells := make([]Cell, 0, len(sizes))
	pos := col
	for _, size := range sizes {
		cells = append(cells, Cell{Col: pos, Width: size})
		pos += size + gap
	}
	return cells
}

// DivideRows is DivideColumns along the vertical axis. Only Row and Height are set.
func DivideRows(row, height float64, count int, gap float64) []Cell {
	sizes := divide(height, count, gap)
	cells := make([]Cell, 0, len(sizes))
	pos := row
	for _, size := range sizes {
		cells = append(cells, Cell{Row: pos, Height: size})
		pos += size + gap
	}
	return cells
}

// DivideGrid splits a rectangle into rows x cols cells, indexed [row][col].
func DivideGrid(col, row, width, height float64, cols, rows int, colGap, rowGap float64) [][]Cell {
	columns := DivideColumns(col, width, cols, colGap)
	lines := DivideRows(row, height, rows, rowGap)

	out := make([][]Cell, 0, len(lines))
	for _, line := range lines {
		cells := make([]Cell, 0, len(columns))
		for _, column := range columns {
			cells = append(cells, Cell{
				Col:    column.Col,
				Row:    line.Row,
				Width:  column.Width,
				Height: line.Height,
			})
		}
		out = append(out, cells)
	}
	return out
}

func divide(span float64, count int, gap float64) []float64 {
	if count <= 0 {
		return []float64{}
	}
	avail := span - gap*float64(count-1)
	size := avail / float64(count)

	sizes := make([]float64, count)
	if size == math.Trunc(size) {
		for i := range sizes {
			sizes[i] = size
		}
		return sizes
	}

	base := math.Floor(size)
	for i := 0; i < count-1; i++ {
		sizes[i] = base
	}
	sizes[count-1] = avail - base*float64(count-1)
	return sizes
}

// Insets describes margins for Margins. All is the default for every side and
// any explicitly set side overrides it.
type Insets struct {
	All    float64
	Left   *float64
	Right  *float64
	Top    *float64
	Bottom *float64
}

// Side is a helper for building Insets literals.
func Side(v float64) *float64 {
	return &v
}

// Margins insets a cell.
func Margins(c Cell, in Insets) Cell {
	pick := func(side *float64) float64 {
		if side != nil {
			return *side
		}
		return in.All
	}
	left, right := pick(in.Left), pick(in.Right)
	top, bottom := pick(in.Top), pick(in.Bottom)

	return Cell{
		Col:    c.Col + left,
		Row:    c.Row + top,
		Width:  c.Width - left - right,
		Height: c.Height - top - bottom,
	}
}

// WeekColumns splits a span into the 7 day columns of a week. A width that is a
// multiple of 7 gives whole-box columns and aligned is true; any other width
// falls back to equal fractional columns that do not sit on box edges.
func WeekColumns(col, width float64) (cells []Cell, aligned bool) {
	if math.Mod(width, 7) == 0 {
		return DivideColumns(col, width, 7, 0), true
	}

	size := width / 7
	cells = make([]Cell, 0, 7)
	for i := 0; i < 7; i++ {
		cells = append(cells, Cell{Col: col + float64(i)*size, Width: size})
	}
	return cells, false
}
