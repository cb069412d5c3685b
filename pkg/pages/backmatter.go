package pages

import (
	"fmt"
	"time"

	"github.com/klokku/planner/pkg/canvas"
	"github.com/klokku/planner/pkg/grid"
	"github.com/klokku/planner/pkg/layout"
)

func ReviewDestination(month time.Month) string {
	return fmt.Sprintf("review_%d", int(month))
}

func CollectionDestination(id string) string {
	return "collection_" + id
}

var reviewSections = []string{"Highlights", "Lessons", "Next month"}

// Review draws the end of month review page.
func Review(c canvas.Canvas, e Env, month time.Month) {
	drawChrome(c, e, Chrome{Active: ReviewDestination(time.January), Month: month})
	title := drawTitle(c, e, month.String()+" Review", fmt.Sprint(e.Year))
	c.AddLink(title, e.MonthDestination(month))

	body := e.Frame.Body()
	for i, row := range grid.DivideRows(body.Row, body.Height, len(reviewSections), 1) {
		area := grid.Cell{Col: body.Col, Row: row.Row, Width: body.Width, Height: row.Height}
		drawSection(c, e, area, reviewSections[i])
		lines := grid.Cell{Col: area.Col, Row: area.Row + 1, Width: area.Width, Height: area.Height - 1}
		drawRuled(c, e, lines, layout.BoxRows(lines))
	}
}

// Collection draws a titled dot grid page for a user collection.
func Collection(c canvas.Canvas, e Env, id, title string) {
	drawChrome(c, e, Chrome{Active: CollectionDestination(id)})
	drawTitle(c, e, title, "Collection")
	drawDots(c, e, e.Frame.Body())
}

// BulletKey is the legend printed on the reference page.
var BulletKey = []struct {
	Symbol  string
	Meaning string
}{
	{"•", "Task"},
	{"x", "Task done"},
	{">", "Task migrated"},
	{"<", "Task scheduled"},
	{"o", "Event"},
	{"-", "Note"},
	{"*", "Priority"},
	{"!", "Inspiration"},
}

// Reference draws the bullet key and a clickable directory of the planner's
// sections.
func Reference(c canvas.Canvas, e Env) {
	drawChrome(c, e, Chrome{Active: DestReference})
	drawTitle(c, e, "Reference", fmt.Sprint(e.Year))

	body := e.Frame.Body()
	cols := grid.DivideColumns(body.Col, body.Width, 2, 1)
	key := grid.Cell{Col: cols[0].Col, Row: body.Row, Width: cols[0].Width, Height: float64(len(BulletKey)+2) * 1.5}
	drawSection(c, e, key, "Bullet key")
	ss := e.text(12)
	ss.Bold = true
	ss.Align = canvas.AlignCenter
	ms := e.text(9)
	for i, b := range BulletKey {
		row := key.Row + 1.5 + float64(i)*1.5
		c.DrawText(e.rect(grid.Cell{Col: key.Col, Row: row, Width: 2, Height: 1.5}), b.Symbol, ss)
		c.DrawText(e.rect(grid.Cell{Col: key.Col + 2, Row: row, Width: key.Width - 2, Height: 1.5}), b.Meaning, ms)
	}

	dir := grid.Cell{Col: cols[1].Col, Row: body.Row, Width: cols[1].Width, Height: body.Height}
	drawSection(c, e, dir, "Sections")
	ls := e.text(9)
	ls.Color = e.Theme.Accent
	ls.Padding = 4
	row := dir.Row + 1.5
	for _, tab := range e.Tabs {
		r := e.rect(grid.Cell{Col: dir.Col, Row: row, Width: dir.Width, Height: 1.5})
		c.DrawText(r, tab.Label, ls)
		c.AddLink(r, tab.Dest)
		row += 1.5
	}
	row += 1
	for m := time.January; m <= time.December; m++ {
		r := e.rect(grid.Cell{Col: dir.Col, Row: row, Width: dir.Width, Height: 1.5})
		c.DrawText(r, m.String(), ls)
		c.AddLink(r, e.MonthDestination(m))
		row += 1.5
	}

	notes := grid.Cell{Col: key.Col, Row: key.Bottom() + 1, Width: key.Width, Height: body.Bottom() - key.Bottom() - 1}
	drawSection(c, e, notes, "Notes")
	drawDots(c, e, grid.Cell{Col: notes.Col, Row: notes.Row + 1, Width: notes.Width, Height: notes.Height - 1})
}

// DotGrid draws a blank dot grid over the whole content area.
func DotGrid(c canvas.Canvas, e Env) {
	drawChrome(c, e, Chrome{Active: DestDots})
	drawDots(c, e, e.Frame.Content)
}
