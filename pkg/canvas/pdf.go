package canvas

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/klokku/planner/pkg/grid"
	log "github.com/sirupsen/logrus"
)

const fontFamily = "Helvetica"

// Metadata is written to the document information dictionary.
type Metadata struct {
	Title   string
	Author  string
	Subject string
	Creator string
	// CreationDate pins the embedded timestamp; zero uses the time of writing.
	CreationDate time.Time
	Compress     bool
}

// PDFCanvas draws onto a gofpdf document. fpdf places the origin at the top-left
// corner with y growing downwards, so every y coordinate goes through flip.
type PDFCanvas struct {
	pdf   *fpdf.Fpdf
	grid  grid.Config
	track tracker
	links map[string]int
	tr    func(string) string
}

// NewPDFCanvas creates an empty document sized to the grid's page and registers
// one internal link per manifest destination, pointing at its planned page.
func NewPDFCanvas(g grid.Config, m *Manifest, meta Metadata) *PDFCanvas {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: g.PageWidth, Ht: g.PageHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetCompression(meta.Compress)
	if meta.Title != "" {
		pdf.SetTitle(meta.Title, true)
	}
	if meta.Author != "" {
		pdf.SetAuthor(meta.Author, true)
	}
	if meta.Subject != "" {
		pdf.SetSubject(meta.Subject, true)
	}
	if meta.Creator != "" {
		pdf.SetCreator(meta.Creator, true)
	}
	if !meta.CreationDate.IsZero() {
		pdf.SetCreationDate(meta.CreationDate)
		pdf.SetModificationDate(meta.CreationDate)
	}
	pdf.SetFont(fontFamily, "", 9)

	c := &PDFCanvas{
		pdf:   pdf,
		grid:  g,
		track: newTracker(m),
		links: make(map[string]int),
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
	}
	for _, name := range c.track.manifest.Names() {
		page, _ := c.track.manifest.Page(name)
		id := pdf.AddLink()
		pdf.SetLink(id, 0, page)
		c.links[name] = id
	}
	return c
}

func (c *PDFCanvas) flip(y float64) float64 {
	return c.grid.PageHeight - y
}

func (c *PDFCanvas) failed() bool {
	return c.track.err != nil || c.pdf.Err()
}

func (c *PDFCanvas) NewPage() {
	if c.failed() {
		return
	}
	c.pdf.AddPage()
	c.track.newPage()
}

func (c *PDFCanvas) PageCount() int {
	return c.pdf.PageCount()
}

func (c *PDFCanvas) DrawRect(r grid.Rect, style RectStyle) {
	if c.failed() {
		return
	}
	op := ""
	if style.Fill != nil {
		c.pdf.SetFillColor(style.Fill.R, style.Fill.G, style.Fill.B)
		op += "F"
	}
	if style.Stroke != nil {
		c.pdf.SetDrawColor(style.Stroke.R, style.Stroke.G, style.Stroke.B)
		c.pdf.SetLineWidth(lineWidth(style.LineWidth))
		op += "D"
	}
	if op == "" {
		return
	}
	c.pdf.Rect(r.X, c.flip(r.Y), r.Width, r.Height, op)
}

func (c *PDFCanvas) DrawLine(x1, y1, x2, y2 float64, style LineStyle) {
	if c.failed() {
		return
	}
	c.pdf.SetDrawColor(style.Color.R, style.Color.G, style.Color.B)
	c.pdf.SetLineWidth(lineWidth(style.Width))
	if len(style.Dash) > 0 {
		c.pdf.SetDashPattern(style.Dash, 0)
		defer c.pdf.SetDashPattern([]float64{}, 0)
	}
	c.pdf.Line(x1, c.flip(y1), x2, c.flip(y2))
}

func (c *PDFCanvas) DrawDot(x, y, radius float64, col Color) {
	if c.failed() {
		return
	}
	c.pdf.SetFillColor(col.R, col.G, col.B)
	c.pdf.Circle(x, c.flip(y), radius, "F")
}

func (c *PDFCanvas) DrawText(r grid.Rect, text string, style TextStyle) {
	if c.failed() || text == "" {
		return
	}
	s := c.tr(text)
	size := style.size()
	c.pdf.SetFont(fontFamily, style.fontStyle(), size)
	c.pdf.SetTextColor(style.Color.R, style.Color.G, style.Color.B)

	avail := r.Width - 2*style.Padding
	if style.Rotation != 0 {
		avail = r.Height - 2*style.Padding
	}
	width := c.pdf.GetStringWidth(s)
	if style.Fit && width > avail && avail > 0 {
		size = size * avail / width
		c.pdf.SetFont(fontFamily, style.fontStyle(), size)
		width = c.pdf.GetStringWidth(s)
	}

	top := c.flip(r.Y)
	cx := r.X + r.Width/2
	cy := top + r.Height/2
	baseline := cy + size*0.35

	if style.Rotation != 0 {
		c.pdf.TransformBegin()
		c.pdf.TransformRotate(style.Rotation, cx, cy)
		c.pdf.Text(cx-width/2, baseline, s)
		c.pdf.TransformEnd()
		return
	}

	x := r.X + style.Padding
	switch style.Align {
	case AlignCenter:
		x = cx - width/2
	case AlignRight:
		x = r.Right() - style.Padding - width
	}
	c.pdf.Text(x, baseline, s)
}

func (c *PDFCanvas) AddLink(r grid.Rect, dest string) {
	if c.failed() || !c.track.target(dest) {
		return
	}
	c.pdf.Link(r.X, c.flip(r.Y), r.Width, r.Height, c.links[dest])
}

func (c *PDFCanvas) AddDestination(name string) {
	if c.failed() {
		return
	}
	c.track.place(name)
}

func (c *PDFCanvas) AddBookmark(title string, level int) {
	if c.failed() {
		return
	}
	if c.track.page == 0 {
		c.track.fail(ErrNoPage)
		return
	}
	c.pdf.Bookmark(title, level, 0)
}

func (c *PDFCanvas) Err() error {
	if c.track.err != nil {
		return c.track.err
	}
	if c.pdf.Err() {
		return fmt.Errorf("pdf: %w", c.pdf.Error())
	}
	return nil
}

func (c *PDFCanvas) Finish(w io.Writer) error {
	if err := c.track.finish(); err != nil {
		log.Errorf("refusing to write planner document: %v", err)
		return err
	}
	if err := c.Err(); err != nil {
		return err
	}
	if err := c.pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: writing output: %w", err)
	}
	return nil
}

func lineWidth(w float64) float64 {
	if w <= 0 {
		return 0.5
	}
	return w
}
