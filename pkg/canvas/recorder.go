package canvas

import (
	"fmt"
	"io"

	"github.com/klokku/planner/pkg/grid"
)

type RecordedRect struct {
	Rect  grid.Rect
	Style RectStyle
}

type RecordedLine struct {
	X1, Y1, X2, Y2 float64
	Style          LineStyle
}

type RecordedDot struct {
	X, Y, Radius float64
	Color        Color
}

type RecordedText struct {
	Rect  grid.Rect
	Text  string
	Style TextStyle
}

type RecordedLink struct {
	Rect grid.Rect
	Dest string
}

type RecordedBookmark struct {
	Title string
	Level int
	Page  int
}

// RecordedPage holds everything drawn on one page.
type RecordedPage struct {
	Number       int
	Rects        []RecordedRect
	Lines        []RecordedLine
	Dots         []RecordedDot
	Texts        []RecordedText
	Links        []RecordedLink
	Destinations []string
}

// Recorder is an in-memory Canvas. It enforces the same manifest contract as the
// PDF backend and lets tests inspect what a renderer drew.
type Recorder struct {
	Pages     []*RecordedPage
	Bookmarks []RecordedBookmark
	track     tracker
	finished  bool
}

func NewRecorder(m *Manifest) *Recorder {
	return &Recorder{track: newTracker(m)}
}

func (r *Recorder) current() *RecordedPage {
	if len(r.Pages) == 0 {
		r.track.fail(ErrNoPage)
		return &RecordedPage{}
	}
	return r.Pages[len(r.Pages)-1]
}

func (r *Recorder) NewPage() {
	r.track.newPage()
	r.Pages = append(r.Pages, &RecordedPage{Number: len(r.Pages) + 1})
}

func (r *Recorder) PageCount() int {
	return len(r.Pages)
}

func (r *Recorder) DrawRect(rect grid.Rect, style RectStyle) {
	p := r.current()
	p.Rects = append(p.Rects, RecordedRect{Rect: rect, Style: style})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64, style LineStyle) {
	p := r.current()
	p.Lines = append(p.Lines, RecordedLine{X1: x1, Y1: y1, X2: x2, Y2: y2, Style: style})
}

func (r *Recorder) DrawDot(x, y, radius float64, c Color) {
	p := r.current()
	p.Dots = append(p.Dots, RecordedDot{X: x, Y: y, Radius: radius, Color: c})
}

func (r *Recorder) DrawText(rect grid.Rect, text string, style TextStyle) {
	p := r.current()
	p.Texts = append(p.Texts, RecordedText{Rect: rect, Text: text, Style: style})
}

func (r *Recorder) AddLink(rect grid.Rect, dest string) {
	p := r.current()
	if !r.track.target(dest) {
		return
	}
	p.Links = append(p.Links, RecordedLink{Rect: rect, Dest: dest})
}

func (r *Recorder) AddDestination(name string) {
	p := r.current()
	if r.track.place(name) {
		p.Destinations = append(p.Destinations, name)
	}
}

func (r *Recorder) AddBookmark(title string, level int) {
	p := r.current()
	r.Bookmarks = append(r.Bookmarks, RecordedBookmark{Title: title, Level: level, Page: p.Number})
}

func (r *Recorder) Err() error {
	return r.track.err
}

// Finish validates the manifest contract and writes a one line summary per page.
func (r *Recorder) Finish(w io.Writer) error {
	if r.finished {
		return fmt.Errorf("canvas: recorder already finished")
	}
	r.finished = true
	if err := r.track.finish(); err != nil {
		return err
	}
	if w == nil {
		return nil
	}
	for _, p := range r.Pages {
		if _, err := fmt.Fprintf(w, "page %d: %v links=%d texts=%d\n", p.Number, p.Destinations, len(p.Links), len(p.Texts)); err != nil {
			return err
		}
	}
	return nil
}

// Page returns the 1-based page, or nil.
func (r *Recorder) Page(n int) *RecordedPage {
	if n < 1 || n > len(r.Pages) {
		return nil
	}
	return r.Pages[n-1]
}

// PageOf returns the page holding the named destination, or nil.
func (r *Recorder) PageOf(dest string) *RecordedPage {
	for _, p := range r.Pages {
		for _, d := range p.Destinations {
			if d == dest {
				return p
			}
		}
	}
	return nil
}

// LinkAt resolves a click at (x, y) on page n. When link areas overlap the one
// added last wins, matching how viewers stack annotations.
func (r *Recorder) LinkAt(page int, x, y float64) (string, bool) {
	p := r.Page(page)
	if p == nil {
		return "", false
	}
	for i := len(p.Links) - 1; i >= 0; i-- {
		if p.Links[i].Rect.Contains(x, y) {
			return p.Links[i].Dest, true
		}
	}
	return "", false
}

// Strings returns the text drawn on the page in drawing order.
func (p *RecordedPage) Strings() []string {
	out := make([]string, 0, len(p.Texts))
	for _, t := range p.Texts {
		out = append(out, t.Text)
	}
	return out
}
