// Package canvas defines the drawing primitives page renderers use and the
// backends that implement them.
//
// Coordinates are page points in the grid convention: origin at the bottom-left
// corner, y growing upwards, rectangles anchored by their top edge. Backends that
// use a different convention convert in one place.
//
// Jump targets are symbolic. Every destination name is assigned to a page in a
// Manifest before the first page is drawn, so links may point forward to pages
// that have not been drawn yet.
package canvas

import (
	"errors"
	"io"

	"github.com/klokku/planner/pkg/grid"
)

var (
	ErrUnresolvedDestination = errors.New("canvas: link target is not a registered destination")
	ErrDuplicateDestination  = errors.New("canvas: destination registered twice")
	ErrDestinationMismatch   = errors.New("canvas: destination placed on a different page than planned")
	ErrDestinationMissing    = errors.New("canvas: planned destination was never placed")
	ErrNoPage                = errors.New("canvas: no page has been added")
)

// Canvas is the set of drawing capabilities a page renderer needs. Drawing calls
// do not return errors; the first failure is kept and reported by Err and Finish.
type Canvas interface {
	NewPage()
	PageCount() int

	DrawRect(r grid.Rect, style RectStyle)
	DrawLine(x1, y1, x2, y2 float64, style LineStyle)
	DrawDot(x, y, radius float64, c Color)
	DrawText(r grid.Rect, text string, style TextStyle)

	// AddLink makes r jump to the named destination.
	AddLink(r grid.Rect, dest string)
	// AddDestination marks the current page as the target of name.
	AddDestination(name string)
	// AddBookmark adds an outline entry pointing at the current page.
	AddBookmark(title string, level int)

	Err() error
	// Finish resolves every link and writes the document. It must be called once,
	// after the last page.
	Finish(w io.Writer) error
}

// Color is an RGB color with 0-255 components.
type Color struct {
	R, G, B int
}

type RectStyle struct {
	Fill      *Color
	Stroke    *Color
	LineWidth float64
}

type LineStyle struct {
	Color Color
	Width float64
	// Dash is the on/off pattern in points; empty draws a solid line.
	Dash []float64
}

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type TextStyle struct {
	Size   float64
	Bold   bool
	Italic bool
	Color  Color
	Align  Align
	// Padding is the horizontal inset in points for left and right aligned text.
	Padding float64
	// Rotation in degrees, counter-clockwise around the rectangle's center.
	// Rotated text is always centered.
	Rotation float64
	// Fit shrinks the font so the text fits the available length.
	Fit bool
}

func (s TextStyle) fontStyle() string {
	switch {
	case s.Bold && s.Italic:
		return "BI"
	case s.Bold:
		return "B"
	case s.Italic:
		return "I"
	}
	return ""
}

func (s TextStyle) size() float64 {
	if s.Size <= 0 {
		return 9
	}
	return s.Size
}
