package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigFitsLetterPage(t *testing.T) {
	g := DefaultConfig()

	assert.InDelta(t, 14.17, g.BoxSize, 0.01)
	assert.LessOrEqual(t, float64(g.Cols)*g.BoxSize, g.PageWidth)
	assert.LessOrEqual(t, float64(g.Rows)*g.BoxSize, g.PageHeight)
	assert.Less(t, g.PageWidth-float64(g.Cols)*g.BoxSize, g.BoxSize)
	assert.Less(t, g.PageHeight-float64(g.Rows)*g.BoxSize, g.BoxSize)
}

func TestCoordinates(t *testing.T) {
	g := DefaultConfig()

	assert.Equal(t, 0.0, g.X(0))
	assert.InDelta(t, 3*g.BoxSize, g.X(3), 1e-9)
	assert.InDelta(t, 1.5*g.BoxSize, g.X(1.5), 1e-9)
	assert.Equal(t, g.PageHeight, g.Y(0))
	assert.InDelta(t, g.PageHeight-10*g.BoxSize, g.Y(10), 1e-9)
	assert.Greater(t, g.Y(1), g.Y(2), "y decreases as row increases")
	assert.InDelta(t, 44*g.BoxSize, g.X(44), 1e-9, "columns past the grid are not clamped")
}

func TestRectComposition(t *testing.T) {
	g := DefaultConfig()
	tests := []struct {
		name           string
		col, row, w, h float64
	}{
		{"origin", 0, 0, 1, 1},
		{"content block", 4, 3, 35, 10},
		{"fractional", 2.5, 7.25, 3.5, 0.75},
		{"sidebar past last column", 42, 0, 2, 55},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := g.Rect(tt.col, tt.row, tt.w, tt.h)

			assert.InDelta(t, g.X(tt.col), r.X, 1e-9)
			assert.InDelta(t, g.Y(tt.row), r.Y, 1e-9, "y is the top edge")
			assert.InDelta(t, g.Y(tt.row+tt.h), r.Y-g.Height(tt.h), 1e-9, "bottom edge meets the next row")
			assert.InDelta(t, r.Y-r.Height, r.Bottom(), 1e-9)
		})
	}
}

func TestDivideColumns(t *testing.T) {
	tests := []struct {
		name       string
		col, width float64
		count      int
		gap        float64
		wantCols   []float64
		wantWidths []float64
	}{
		{"even split", 0, 9, 3, 0, []float64{0, 3, 6}, []float64{3, 3, 3}},
		{"last cell absorbs remainder", 0, 10, 3, 0, []float64{0, 3, 6}, []float64{3, 3, 4}},
		{"with gaps", 2, 11, 3, 1, []float64{2, 6, 10}, []float64{3, 3, 3}},
		{"gaps and remainder", 0, 12, 3, 1, []float64{0, 4, 8}, []float64{3, 3, 4}},
		{"single cell", 5, 7.5, 1, 2, []float64{5}, []float64{7.5}},
		{"fractional remainder", 0, 7.5, 2, 0, []float64{0, 3}, []float64{3, 4.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := DivideColumns(tt.col, tt.width, tt.count, tt.gap)
			require.Len(t, cells, tt.count)

			var total float64
			for i, c := range cells {
				assert.InDelta(t, tt.wantCols[i], c.Col, 1e-9, "col of cell %d", i)
				assert.InDelta(t, tt.wantWidths[i], c.Width, 1e-9, "width of cell %d", i)
				total += c.Width
			}
			assert.InDelta(t, tt.width-tt.gap*float64(tt.count-1), total, 1e-9)
		})
	}
}

func TestDivideColumnsNoCells(t *testing.T) {
	assert.Empty(t, DivideColumns(0, 10, 0, 0))
	assert.Empty(t, DivideRows(0, 10, -1, 0))
}

func TestDivideRows(t *testing.T) {
	cells := DivideRows(4, 10, 3, 0)
	require.Len(t, cells, 3)

	assert.Equal(t, []Cell{
		{Row: 4, Height: 3},
		{Row: 7, Height: 3},
		{Row: 10, Height: 4},
	}, cells)
}

func TestDivideGrid(t *testing.T) {
	cells := DivideGrid(2, 3, 21, 10, 2, 2, 1, 2)
	require.Len(t, cells, 2)
	require.Len(t, cells[0], 2)

	assert.Equal(t, Cell{Col: 2, Row: 3, Width: 10, Height: 4}, cells[0][0])
	assert.Equal(t, Cell{Col: 13, Row: 3, Width: 10, Height: 4}, cells[0][1])
	assert.Equal(t, Cell{Col: 2, Row: 9, Width: 10, Height: 4}, cells[1][0])
	assert.Equal(t, Cell{Col: 13, Row: 9, Width: 10, Height: 4}, cells[1][1])
}

func TestMargins(t *testing.T) {
	base := Cell{Col: 2, Row: 2, Width: 20, Height: 30}

	tests := []struct {
		name string
		in   Insets
		want Cell
	}{
		{"no margins", Insets{}, base},
		{"all sides", Insets{All: 1}, Cell{Col: 3, Row: 3, Width: 18, Height: 28}},
		{"explicit side overrides all", Insets{All: 1, Left: Side(3)}, Cell{Col: 5, Row: 3, Width: 16, Height: 28}},
		{"explicit zero overrides all", Insets{All: 2, Top: Side(0), Bottom: Side(0)}, Cell{Col: 4, Row: 2, Width: 16, Height: 30}},
		{"only one side", Insets{Right: Side(0.5)}, Cell{Col: 2, Row: 2, Width: 19.5, Height: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Margins(base, tt.in))
		})
	}
}

func TestWeekColumns(t *testing.T) {
	t.Run("multiple of seven is quantized", func(t *testing.T) {
		cells, aligned := WeekColumns(4, 35)
		require.Len(t, cells, 7)
		assert.True(t, aligned)
		for i, c := range cells {
			assert.Equal(t, 4+float64(i)*5, c.Col)
			assert.Equal(t, 5.0, c.Width)
		}
	})

	t.Run("other widths are proportional", func(t *testing.T) {
		cells, aligned := WeekColumns(0, 38)
		require.Len(t, cells, 7)
		assert.False(t, aligned)
		for i, c := range cells {
			assert.InDelta(t, 38.0/7, c.Width, 1e-9)
			assert.InDelta(t, float64(i)*38.0/7, c.Col, 1e-9)
		}
		assert.InDelta(t, 38, cells[6].Right(), 1e-9)
	})
}

func TestRectContains(t *testing.T) {
	g := DefaultConfig()
	r := g.Rect(1, 1, 2, 2)

	assert.True(t, r.Contains(g.X(2), g.Y(2)))
	assert.True(t, r.Contains(r.X, r.Y))
	assert.False(t, r.Contains(g.X(4), g.Y(2)))
	assert.False(t, r.Contains(g.X(2), g.Y(0.5)))
}
